package framework

import (
	"fmt"
	"path/filepath"
	"reflect"
	"runtime"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidArgument is returned for mistakes in how a suite is configured, such as a nil hook. It is
// never recorded as a test failure.
var ErrInvalidArgument = errors.New("invalid argument")

const defaultDescription = "No description"

// Results is the summary returned by Suite.Aggregate, and the only thing reporters consume. Runs is
// ordered by test ID; Passed and Failed are the ordered subsets of Runs.
type Results struct {
	SuiteName string
	Runs      []TestResult
	Passed    []TestResult
	Failed    []TestResult
}

func (r Results) OK() bool {
	return len(r.Failed) == 0
}

// TestResult is the outcome of a single test execution. It is created once, when the test body and
// its hooks have finished, and does not change afterward.
type TestResult struct {
	id          int
	passed      bool
	body        TestFunc
	failure     *AssertionError
	duration    time.Duration
	description string
}

// NewTestResult creates a TestResult. The id must not be negative. A failed result always carries a
// failure, and a passed one never does.
func NewTestResult(
	id int,
	passed bool,
	body TestFunc,
	failure *AssertionError,
	duration time.Duration,
	description string,
) (TestResult, error) {
	if id < 0 {
		return TestResult{}, errors.Wrapf(ErrInvalidArgument, "test id should be a non-negative number, got %d", id)
	}
	if duration < 0 {
		duration = 0
	}
	if passed {
		failure = nil
	} else if failure == nil {
		failure = NewAssertionError(nil, nil, "test failed with no failure message", nil)
	}
	return TestResult{
		id:          id,
		passed:      passed,
		body:        body,
		failure:     failure,
		duration:    duration,
		description: description,
	}, nil
}

func (r TestResult) ID() int { return r.id }

func (r TestResult) Passed() bool { return r.passed }

// Body returns the test function that was run.
func (r TestResult) Body() TestFunc { return r.body }

// BodyName returns a displayable form of the test function: its symbol name and where it is
// defined.
func (r TestResult) BodyName() string { return funcDisplayName(r.body) }

// Failure returns the reason the test failed, or nil if it passed.
func (r TestResult) Failure() *AssertionError { return r.failure }

func (r TestResult) Duration() time.Duration { return r.duration }

// DurationMs returns the duration in fractional milliseconds.
func (r TestResult) DurationMs() float64 {
	return float64(r.duration) / float64(time.Millisecond)
}

func (r TestResult) Description() string { return r.description }

func (r TestResult) String() string {
	status := "PASS"
	if !r.passed {
		status = "FAIL"
	}
	return fmt.Sprintf("#%d %s: %s (%.2fms)", r.id, status, r.description, r.DurationMs())
}

func funcDisplayName(fn interface{}) string {
	v := reflect.ValueOf(fn)
	if fn == nil || v.Kind() != reflect.Func || v.IsNil() {
		return "<nil>"
	}
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return "<unknown>"
	}
	file, line := f.FileLine(f.Entry())
	return fmt.Sprintf("%s (%s:%d)", f.Name(), filepath.Base(file), line)
}

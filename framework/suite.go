package framework

import (
	"sort"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

const defaultSuiteName = "Test"

// TestFunc is the body of a test. It makes its checks through the Assert it is given; it can also
// fail by returning an error or by panicking.
type TestFunc func(Assert) error

// TestInfo describes a test that is about to run, or has just run, and is passed to the beforeEach
// and afterEach hooks. End is only set for afterEach.
type TestInfo struct {
	ID          int
	Start       time.Time
	End         time.Time
	Body        TestFunc
	Description string

	// Logger writes to the test's own debug output.
	Logger Logger
}

// Suite registers tests, runs them under its lifecycle hooks, and aggregates their results.
//
// Every test runs on its own goroutine. The first call to Test starts the beforeAll hook, and no test
// begins until that hook has returned; past that point tests are not ordered relative to each other.
// A caller that wants tests to run one at a time waits on each Handle before registering the next
// test. Test IDs are still assigned in registration order when tests run concurrently.
//
// There is no timeout: a test body that never returns makes Aggregate wait forever.
type Suite struct {
	name        string
	clock       clock.Clock
	debugLogger Logger
	testLogger  TestLogger
	assert      Assert

	lock        sync.Mutex
	sequence    int
	handles     []*Handle
	lastTicket  chan struct{}
	initialized bool
	finalizing  bool
	finalized   bool
	beforeEach  func(TestInfo) error
	afterEach   func(TestInfo) error
	beforeAll   func() error
	afterAll    func() error

	setupDone chan struct{}
	setupErr  error

	teardownOnce sync.Once
	teardownErr  error

	reportLock sync.Mutex
	finished   *resultSortingQueue
}

// Option configures a Suite.
type Option func(*Suite)

// WithClock sets the clock used to time tests. It should be monotonic; the default is the system
// clock.
func WithClock(c clock.Clock) Option {
	return func(s *Suite) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithDebugLogger sets a logger for lifecycle events and for the debug output of every test.
func WithDebugLogger(l Logger) Option {
	return func(s *Suite) {
		if l != nil {
			s.debugLogger = l
		}
	}
}

// WithTestLogger sets an observer that is notified as tests start and finish.
func WithTestLogger(l TestLogger) Option {
	return func(s *Suite) {
		if l != nil {
			s.testLogger = l
		}
	}
}

// NewSuite creates an empty suite. If name is empty, "Test" is used.
func NewSuite(name string, opts ...Option) *Suite {
	if name == "" {
		name = defaultSuiteName
	}
	noHook := func() error { return nil }
	noTestHook := func(TestInfo) error { return nil }
	firstTicket := make(chan struct{})
	close(firstTicket)
	s := &Suite{
		name:        name,
		clock:       clock.New(),
		debugLogger: NullLogger(),
		testLogger:  nullTestLogger{},
		assert:      assertions{},
		lastTicket:  firstTicket,
		beforeEach:  noTestHook,
		afterEach:   noTestHook,
		beforeAll:   noHook,
		afterAll:    noHook,
		setupDone:   make(chan struct{}),
		finished:    newResultSortingQueue(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Suite) Name() string {
	return s.name
}

// Test registers a test and schedules it to run. If description is empty, a placeholder is used.
//
// The returned Handle resolves to the test's result. A failing test, including one whose body panics
// or whose hooks fail, always produces a failed TestResult rather than an error.
func (s *Suite) Test(body TestFunc, description string) *Handle {
	if description == "" {
		description = defaultDescription
	}
	h := newHandle()
	ticket := make(chan struct{})

	s.lock.Lock()
	s.setup()
	prev := s.lastTicket
	s.lastTicket = ticket
	s.handles = append(s.handles, h)
	s.lock.Unlock()

	go s.run(h, body, description, prev, ticket)
	return h
}

// Aggregate waits for every test registered before the call to finish, runs the afterAll hook if it
// has not run yet, and returns the results ordered by test ID.
//
// It is safe to call Aggregate more than once. Later calls include any tests registered since, but
// never run afterAll again. The returned error is the afterAll hook's failure, if any; the Results
// are complete either way.
func (s *Suite) Aggregate() (Results, error) {
	s.lock.Lock()
	handles := append([]*Handle(nil), s.handles...)
	s.lock.Unlock()

	runs := make([]TestResult, 0, len(handles))
	for _, h := range handles {
		runs = append(runs, h.Wait())
	}
	sort.SliceStable(runs, func(i, j int) bool { return runs[i].ID() < runs[j].ID() })

	results := Results{
		SuiteName: s.name,
		Runs:      runs,
		Passed:    []TestResult{},
		Failed:    []TestResult{},
	}
	for _, r := range runs {
		if r.Passed() {
			results.Passed = append(results.Passed, r)
		} else {
			results.Failed = append(results.Failed, r)
		}
	}

	return results, s.teardown()
}

// setup starts the beforeAll hook the first time it is called. The caller must hold s.lock.
func (s *Suite) setup() {
	if s.initialized {
		return
	}
	s.initialized = true
	beforeAll := s.beforeAll
	s.debugLogger.Printf("Running beforeAll hook for suite %q", s.name)
	go func() {
		s.setupErr = callHook(beforeAll)
		if s.setupErr != nil {
			s.debugLogger.Printf("beforeAll hook for suite %q failed: %s", s.name, s.setupErr)
		}
		close(s.setupDone)
	}()
}

func (s *Suite) teardown() error {
	s.teardownOnce.Do(func() {
		s.lock.Lock()
		s.finalizing = true
		afterAll := s.afterAll
		s.lock.Unlock()

		s.debugLogger.Printf("Running afterAll hook for suite %q", s.name)
		if err := callHook(afterAll); err != nil {
			s.debugLogger.Printf("afterAll hook for suite %q failed: %s", s.name, err)
			s.teardownErr = wrapHookError(err, "afterAll")
		}

		s.lock.Lock()
		s.finalized = true
		s.lock.Unlock()
	})
	return s.teardownErr
}

// Package reporters turns the Results of a framework.Suite into something people can read. Reporters
// only read the results they are given; they never run tests or change results.
package reporters

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/launchdarkly/async-test-suite/framework"

	"github.com/pkg/errors"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const (
	// DefaultSlowThresholdMS is the duration over which the HTML and JSON reporters mark a test as slow.
	DefaultSlowThresholdMS = 1000
	// DefaultConsoleSlowThresholdMS is the equivalent threshold for console output.
	DefaultConsoleSlowThresholdMS = 100
)

// Reporter renders the summary produced by Suite.Aggregate.
type Reporter interface {
	Generate(w io.Writer, results framework.Results) error
}

// Options are settings shared by all reporters.
type Options struct {
	// SlowThresholdMS overrides the reporter's default threshold for marking a test as slow.
	SlowThresholdMS ldvalue.OptionalInt `json:"slowThresholdMs,omitempty"`
}

func (o Options) slowThreshold(defaultMS int) time.Duration {
	return time.Duration(o.SlowThresholdMS.OrElse(defaultMS)) * time.Millisecond
}

// WriteFile renders results with a reporter and writes them to a file.
func WriteFile(r Reporter, path string, results framework.Results) error {
	var buf bytes.Buffer
	if err := r.Generate(&buf, results); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, "failed to write report %s", path)
	}
	return nil
}

type statusDisplay struct {
	Text  string
	Class string
}

func getStatusDisplay(r framework.TestResult) statusDisplay {
	if r.Passed() {
		return statusDisplay{Text: "PASS", Class: "pass"}
	}
	return statusDisplay{Text: "FAIL", Class: "fail"}
}

func formatDuration(r framework.TestResult) string {
	return fmt.Sprintf("%.2fms", r.DurationMs())
}

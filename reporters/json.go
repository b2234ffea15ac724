package reporters

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/launchdarkly/async-test-suite/framework"

	"github.com/pkg/errors"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// JSONReporter writes results as a JSON document, for tools that post-process a test run.
type JSONReporter struct {
	Options Options
}

func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{Options: opts}
}

func (r *JSONReporter) Generate(w io.Writer, results framework.Results) error {
	doc := r.Build(results)
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(doc.JSONString()), "", "  "); err != nil {
		return errors.Wrap(err, "failed to format JSON report")
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(w)
	return err
}

// Build returns the report as an ldvalue.Value.
func (r *JSONReporter) Build(results framework.Results) ldvalue.Value {
	slow := r.Options.slowThreshold(DefaultSlowThresholdMS)
	tests := ldvalue.ArrayBuild()
	for _, run := range results.Runs {
		test := ldvalue.ObjectBuild().
			Set("id", ldvalue.Int(run.ID())).
			Set("status", ldvalue.String(getStatusDisplay(run).Text)).
			Set("passed", ldvalue.Bool(run.Passed())).
			Set("description", ldvalue.String(run.Description())).
			Set("durationMs", ldvalue.Float64(run.DurationMs())).
			Set("slow", ldvalue.Bool(run.Duration() > slow)).
			Set("testCode", ldvalue.String(run.BodyName()))
		if f := run.Failure(); f != nil {
			actual, expected := f.Serialized()
			failure := ldvalue.ObjectBuild().
				Set("message", ldvalue.String(f.Message())).
				Set("actual", ldvalue.String(actual)).
				Set("expected", ldvalue.String(expected))
			if cause := f.Cause(); cause != nil {
				failure = failure.Set("cause", ldvalue.String(cause.Error()))
			}
			test = test.Set("failure", failure.Build())
		}
		tests = tests.Add(test.Build())
	}
	return ldvalue.ObjectBuild().
		Set("suiteName", ldvalue.String(results.SuiteName)).
		Set("total", ldvalue.Int(len(results.Runs))).
		Set("passed", ldvalue.Int(len(results.Passed))).
		Set("failed", ldvalue.Int(len(results.Failed))).
		Set("tests", tests.Build()).
		Build()
}

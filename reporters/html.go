package reporters

import (
	"html/template"
	"io"

	"github.com/launchdarkly/async-test-suite/framework"

	"github.com/pkg/errors"
)

// HTMLReporter renders results as a self-contained HTML fragment, suitable for embedding in a page.
type HTMLReporter struct {
	Options Options
}

func NewHTMLReporter(opts Options) *HTMLReporter {
	return &HTMLReporter{Options: opts}
}

type htmlReportData struct {
	SuiteName string
	Total     int
	Passed    int
	Failed    int
	Tests     []htmlTestData
}

type htmlTestData struct {
	ID          int
	Status      statusDisplay
	Description string
	Duration    string
	Slow        bool
	TestCode    string
	Failure     *htmlFailureData
}

type htmlFailureData struct {
	Expected string
	Actual   string
	Message  string
}

var htmlReportTemplate = template.Must(template.New("report").Parse(htmlReportSource))

func (r *HTMLReporter) Generate(w io.Writer, results framework.Results) error {
	slow := r.Options.slowThreshold(DefaultSlowThresholdMS)
	data := htmlReportData{
		SuiteName: results.SuiteName,
		Total:     len(results.Runs),
		Passed:    len(results.Passed),
		Failed:    len(results.Failed),
	}
	for _, run := range results.Runs {
		t := htmlTestData{
			ID:          run.ID(),
			Status:      getStatusDisplay(run),
			Description: run.Description(),
			Duration:    formatDuration(run),
			Slow:        run.Duration() > slow,
			TestCode:    run.BodyName(),
		}
		if f := run.Failure(); f != nil {
			actual, expected := f.Serialized()
			t.Failure = &htmlFailureData{Expected: expected, Actual: actual, Message: f.Message()}
		}
		data.Tests = append(data.Tests, t)
	}
	if err := htmlReportTemplate.Execute(w, data); err != nil {
		return errors.Wrap(err, "failed to render HTML report")
	}
	return nil
}

const htmlReportSource = `<div class="test-report">
<style>
.test-report { font-family: system-ui, sans-serif; max-width: 900px; margin: 20px auto; border: 1px solid #ddd; border-radius: 12px; overflow: hidden; }
.report-header { background: #2d3436; color: #fff; padding: 24px; }
.report-header h1 { margin: 0; font-size: 24px; }
.summary-cards { display: flex; gap: 15px; margin-top: 15px; }
.card { background: rgba(255,255,255,0.1); padding: 10px 20px; border-radius: 8px; }
.card.passed { color: #55efc4; }
.card.failed { color: #ff7675; }
.test-item { border-bottom: 1px solid #eee; padding: 20px; }
.test-header { display: flex; justify-content: space-between; align-items: center; margin-bottom: 12px; }
.status-badge { padding: 4px 10px; border-radius: 20px; font-size: 10px; font-weight: bold; color: #fff; }
.pass .status-badge { background: #00b894; }
.fail .status-badge { background: #d63031; }
.test-id { color: #b2bec3; font-family: monospace; margin: 0 8px; }
.duration { font-family: monospace; color: #636e72; }
.duration.slow { color: #e17055; font-weight: bold; }
.label { font-size: 11px; color: #b2bec3; font-weight: bold; text-transform: uppercase; margin: 10px 0 5px; }
pre { background: #f8f9fa; border: 1px solid #dfe6e9; border-radius: 6px; padding: 12px; margin: 0; overflow-x: auto; }
.error-container { margin-top: 15px; background: #fff5f5; border: 1px solid #fab1a0; border-radius: 6px; padding: 15px; }
.diff-table { width: 100%; border-collapse: collapse; margin-bottom: 10px; }
.diff-table th { text-align: left; width: 100px; color: #636e72; padding: 5px; }
.diff-table td { font-family: monospace; padding: 5px; white-space: pre-wrap; }
.expected { background: #e3fcef; color: #008a52; }
.actual { background: #ffe9e9; color: #bf2600; }
.full-message { font-size: 12px; color: #95a5a6; white-space: pre-wrap; margin-top: 10px; padding-top: 10px; border-top: 1px dashed #fab1a0; }
</style>
<div class="report-header">
<h1>{{.SuiteName}}</h1>
<div class="summary-cards">
<div class="card">Total: <strong>{{.Total}}</strong></div>
<div class="card passed">Passed: <strong>{{.Passed}}</strong></div>
<div class="card failed">Failed: <strong>{{.Failed}}</strong></div>
</div>
</div>
<div class="report-body">
{{- range .Tests}}
<div class="test-item {{.Status.Class}}">
<div class="test-header">
<div><span class="status-badge">{{.Status.Text}}</span><span class="test-id">#{{.ID}}</span><strong class="test-desc">{{.Description}}</strong></div>
<span class="duration{{if .Slow}} slow{{end}}">{{.Duration}}</span>
</div>
<div class="test-details">
<div class="label">Test Code:</div>
<pre><code>{{.TestCode}}</code></pre>
{{- with .Failure}}
<div class="error-container">
<div class="label">Failure Details:</div>
<table class="diff-table">
<tr><th>Expected</th><td class="expected">{{.Expected}}</td></tr>
<tr><th>Actual</th><td class="actual">{{.Actual}}</td></tr>
</table>
<div class="full-message">{{.Message}}</div>
</div>
{{- end}}
</div>
</div>
{{- end}}
</div>
</div>
`

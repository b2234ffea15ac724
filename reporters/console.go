package reporters

import (
	"fmt"
	"io"
	"strings"

	"github.com/launchdarkly/async-test-suite/framework"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

var (
	headerColor   = color.New(color.FgHiWhite, color.BgHiBlack, color.Bold)
	passColor     = color.New(color.FgGreen, color.Bold)
	failColor     = color.New(color.FgRed, color.Bold)
	slowColor     = color.New(color.FgYellow, color.Bold)
	labelColor    = color.New(color.FgCyan, color.Bold)
	expectedColor = color.New(color.FgGreen)
	actualColor   = color.New(color.FgRed)
)

// ConsoleReporter writes a summary table followed by the details of every failed test.
type ConsoleReporter struct {
	Options Options
}

func NewConsoleReporter(opts Options) *ConsoleReporter {
	return &ConsoleReporter{Options: opts}
}

func (r *ConsoleReporter) Generate(w io.Writer, results framework.Results) error {
	slow := r.Options.slowThreshold(DefaultConsoleSlowThresholdMS)

	fmt.Fprintln(w)
	headerColor.Fprintf(w, " Test Suite: %s ", results.SuiteName)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Summary: %s, %s (%d Total)\n",
		passColor.Sprintf("%d Passed", len(results.Passed)),
		failColor.Sprintf("%d Failed", len(results.Failed)),
		len(results.Runs),
	)

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Status", "Description", "Duration", "Test Code"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "#", Align: text.AlignRight},
		{Name: "Description", WidthMax: 60, WidthMaxEnforcer: text.WrapSoft},
		{Name: "Duration", Align: text.AlignRight},
	})
	for _, run := range results.Runs {
		duration := formatDuration(run)
		if run.Duration() > slow {
			duration = slowColor.Sprint(duration)
		}
		t.AppendRow(table.Row{run.ID(), colorStatus(run), run.Description(), duration, run.BodyName()})
	}
	fmt.Fprintln(w, t.Render())

	if len(results.Failed) == 0 {
		return nil
	}
	fmt.Fprintln(w)
	labelColor.Fprintln(w, "[Failure Details]")
	for _, run := range results.Failed {
		writeFailure(w, run)
	}
	return nil
}

func colorStatus(r framework.TestResult) string {
	status := getStatusDisplay(r)
	if r.Passed() {
		return passColor.Sprint(status.Text)
	}
	return failColor.Sprint(status.Text)
}

func writeFailure(w io.Writer, run framework.TestResult) {
	failure := run.Failure()
	fmt.Fprintf(w, "%s #%d: %s\n", failColor.Sprint("FAIL"), run.ID(), run.Description())
	if failure == nil {
		return
	}
	actual, expected := failure.Serialized()
	fmt.Fprintf(w, "  Expected: %s\n", expectedColor.Sprint(indentContinuation(expected, "            ")))
	fmt.Fprintf(w, "  Actual:   %s\n", actualColor.Sprint(indentContinuation(actual, "            ")))
	fmt.Fprintf(w, "  Message:  %s\n", indentContinuation(failure.Message(), "            "))
	if cause := failure.Cause(); cause != nil {
		if _, isAssertion := cause.(*framework.AssertionError); !isAssertion {
			fmt.Fprintf(w, "  Cause:    %s\n", indentContinuation(fmt.Sprintf("%+v", cause), "    "))
		}
	}
}

func indentContinuation(s, indent string) string {
	return strings.ReplaceAll(s, "\n", "\n"+indent)
}

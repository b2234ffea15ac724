package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/launchdarkly/async-test-suite/framework"

	"github.com/fatih/color"
)

var (
	startedColor = color.New(color.FgCyan)
	failedColor  = color.New(color.FgRed, color.Bold)
)

// ConsoleTestLogger prints progress as the suite runs. The Suite never calls it concurrently, so it
// needs no locking of its own.
type ConsoleTestLogger struct {
	Out                  io.Writer
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleTestLogger) TestStarted(info framework.TestInfo) {
	startedColor.Fprintf(c.Out, "[#%d %s]\n", info.ID, info.Description)
}

func (c *ConsoleTestLogger) TestFinished(result framework.TestResult, debugOutput framework.CapturedOutput) {
	failed := !result.Passed()
	if failed {
		fmt.Fprintf(c.Out, "  %s #%d: %s\n", failedColor.Sprint("FAILED"), result.ID(), result.Description())
		for _, line := range strings.Split(result.Failure().Message(), "\n") {
			fmt.Fprintf(c.Out, "    %s\n", line)
		}
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(c.Out, "    DEBUG ")
	}
}

package main

import (
	"flag"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/launchdarkly/async-test-suite/framework"
	"github.com/launchdarkly/async-test-suite/reporters"

	"github.com/alessio/shellescape"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const defaultSuiteName = "Example Test Suite"

type commandParams struct {
	suiteName  string
	filters    framework.RegexFilters
	sequential bool
	htmlFile   string
	jsonFile   string
	servePort  int
	slowMS     int
	debug      bool
	debugAll   bool
}

func (c *commandParams) Read(args []string, errOut io.Writer) bool {
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&c.suiteName, "name", defaultSuiteName, "name of the test suite")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.sequential, "sequential", false, "wait for each test to finish before starting the next")
	fs.StringVar(&c.htmlFile, "html", "", "write an HTML report to this file")
	fs.StringVar(&c.jsonFile, "json", "", "write a JSON report to this file")
	fs.IntVar(&c.servePort, "serve", 0, "serve the HTML report on this port until interrupted")
	fs.IntVar(&c.slowMS, "slow", 0, "threshold in milliseconds for marking a test as slow")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		return false
	}
	if c.slowMS < 0 || c.servePort < 0 {
		fmt.Fprintln(errOut, "-slow and -serve must not be negative")
		fs.Usage()
		return false
	}
	return true
}

func (c commandParams) reporterOptions() reporters.Options {
	if c.slowMS == 0 {
		return reporters.Options{}
	}
	return reporters.Options{SlowThresholdMS: ldvalue.NewOptionalInt(c.slowMS)}
}

// rerunCommand returns a command line that runs only the given failed tests again.
func (c commandParams) rerunCommand(program string, failed []framework.TestResult) string {
	var cmd commandBuilder
	cmd.add(program)
	if c.suiteName != defaultSuiteName {
		cmd.add("-name", c.suiteName)
	}
	if c.sequential {
		cmd.add("-sequential")
	}
	seen := make(map[string]bool)
	for _, r := range failed {
		if seen[r.Description()] {
			continue
		}
		seen[r.Description()] = true
		cmd.add("-run", "^"+regexp.QuoteMeta(r.Description())+"$")
	}
	return cmd.String()
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

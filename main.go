package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/launchdarkly/async-test-suite/framework"
	"github.com/launchdarkly/async-test-suite/reporters"

	"github.com/sirupsen/logrus"
)

func main() {
	var params commandParams
	if !params.Read(os.Args, os.Stderr) {
		os.Exit(1)
	}

	results, err := runSuite(params, exampleTests(), newDebugLogger(params, os.Stdout), os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Test suite error: %s\n", err)
		os.Exit(1)
	}
	if err := writeReports(params, results); err != nil {
		fmt.Fprintf(os.Stderr, "Report error: %s\n", err)
		os.Exit(1)
	}
	if !results.OK() {
		fmt.Printf("\nTo run only the failed tests again:\n  %s\n", params.rerunCommand(os.Args[0], results.Failed))
	}

	if params.servePort != 0 {
		var buf bytes.Buffer
		if err := reporters.NewHTMLReporter(params.reporterOptions()).Generate(&buf, results); err != nil {
			fmt.Fprintf(os.Stderr, "Report error: %s\n", err)
			os.Exit(1)
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		fmt.Printf("\nServing HTML report at http://localhost:%d (interrupt to stop)\n", params.servePort)
		err := serveReport(ctx, params.servePort, htmlPage(results.SuiteName, buf.Bytes()))
		stop()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Server error: %s\n", err)
			os.Exit(1)
		}
	}

	if !results.OK() {
		os.Exit(1)
	}
}

func newDebugLogger(params commandParams, out io.Writer) framework.Logger {
	if !params.debugAll {
		return framework.NullLogger()
	}
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return logger
}

// runSuite registers the selected tests, waits for all of them, and prints the console report.
func runSuite(
	params commandParams,
	tests []exampleTest,
	debugLogger framework.Logger,
	out io.Writer,
) (framework.Results, error) {
	testLogger := &ConsoleTestLogger{
		Out:                  out,
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}
	suite := framework.NewSuite(
		params.suiteName,
		framework.WithDebugLogger(debugLogger),
		framework.WithTestLogger(testLogger),
	)

	fmt.Fprintln(out)
	framework.PrintFilterDescription(out, params.filters)
	fmt.Fprintln(out, "Running test suite")

	count := registerTests(suite, tests, params.filters.AsFilter, params.sequential)
	debugLogger.Printf("Registered %d of %d tests", count, len(tests))

	results, err := suite.Aggregate()
	if err != nil {
		return results, err
	}
	if err := reporters.NewConsoleReporter(params.reporterOptions()).Generate(out, results); err != nil {
		return results, err
	}
	return results, nil
}

func writeReports(params commandParams, results framework.Results) error {
	opts := params.reporterOptions()
	if params.htmlFile != "" {
		if err := reporters.WriteFile(reporters.NewHTMLReporter(opts), params.htmlFile, results); err != nil {
			return err
		}
	}
	if params.jsonFile != "" {
		if err := reporters.WriteFile(reporters.NewJSONReporter(opts), params.jsonFile, results); err != nil {
			return err
		}
	}
	return nil
}

// Package framework contains the in-process test orchestration engine.
//
// The general model is:
//
// 1. A Suite is created with a name and, optionally, a clock, a debug logger and a TestLogger that
// observes progress. Lifecycle hooks can be installed with SetBeforeAll, SetAfterAll, SetBeforeEach
// and SetAfterEach.
//
// 2. Tests are registered with Suite.Test. Each test body receives an Assert, whose checks stop the
// test with an *AssertionError when they do not hold. Registering does not wait for the test to run;
// it returns a Handle that can be waited on.
//
// 3. Suite.Aggregate waits for all registered tests and returns Results, which reporters render.
//
// Anything that goes wrong while a test runs, in its body or its per-test hooks, is turned into a
// failed TestResult whose AssertionError keeps the original error as its cause. Mistakes in setting
// up a suite, such as passing a nil hook, are returned to the caller as ErrInvalidArgument instead.
package framework

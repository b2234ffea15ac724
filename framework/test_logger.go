package framework

// TestLogger receives progress notifications from a Suite. TestStarted is called when a test takes
// its ID, just before its beforeEach hook. TestFinished is called once per test, in ID order, even
// when tests run concurrently and finish out of order. Calls are never made concurrently.
type TestLogger interface {
	TestStarted(info TestInfo)
	TestFinished(result TestResult, debugOutput CapturedOutput)
}

type nullTestLogger struct{}

func (n nullTestLogger) TestStarted(TestInfo)                     {}
func (n nullTestLogger) TestFinished(TestResult, CapturedOutput) {}

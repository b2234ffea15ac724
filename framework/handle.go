package framework

// Handle is a registered test that may not have finished yet.
type Handle struct {
	done   chan struct{}
	result TestResult
}

func newHandle() *Handle {
	return &Handle{done: make(chan struct{})}
}

// Done returns a channel that is closed when the test's result is available.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Wait blocks until the test has finished and returns its result.
func (h *Handle) Wait() TestResult {
	<-h.done
	return h.result
}

// Result returns the test's result without blocking. The second return value is false if the test
// has not finished.
func (h *Handle) Result() (TestResult, bool) {
	select {
	case <-h.done:
		return h.result, true
	default:
		return TestResult{}, false
	}
}

func (h *Handle) resolve(result TestResult) {
	h.result = result
	close(h.done)
}

package framework

import (
	"github.com/pkg/errors"
)

// run executes one registered test. prev is closed once the previously registered test has taken its
// ID; ticket is closed once this one has, so IDs follow registration order.
func (s *Suite) run(h *Handle, body TestFunc, description string, prev, ticket chan struct{}) {
	<-s.setupDone
	<-prev

	s.lock.Lock()
	id := s.sequence
	s.sequence++
	beforeEach, afterEach := s.beforeEach, s.afterEach
	s.lock.Unlock()

	logger := newCapturingLogger(s.clock, s.debugLogger, id)
	info := TestInfo{
		ID:          id,
		Body:        body,
		Description: description,
		Logger:      logger,
		Start:       s.clock.Now(),
	}
	s.reportStarted(info)
	close(ticket)
	info.Start = s.clock.Now()

	var failure *AssertionError
	if s.setupErr != nil {
		failure = NormalizeFailure(wrapHookError(s.setupErr, "beforeAll"))
		logger.Printf("Not running test: %s", failure)
	} else {
		failure = s.execute(info, beforeEach, body)
		info.End = s.clock.Now()
		if err := callHook(func() error { return afterEach(info) }); err != nil {
			logger.Printf("afterEach hook failed: %s", err)
			if failure == nil {
				failure = NormalizeFailure(err)
			}
		}
	}
	if info.End.IsZero() {
		info.End = info.Start
	}

	result := TestResult{
		id:          id,
		passed:      failure == nil,
		body:        body,
		failure:     failure,
		duration:    info.End.Sub(info.Start),
		description: description,
	}
	if failure != nil {
		logger.Printf("Test failed: %s", failure)
	}
	s.reportFinished(result, logger.Output())
	h.resolve(result)
}

// execute runs the beforeEach hook and the test body, and returns the normalized failure if either
// one fails.
func (s *Suite) execute(info TestInfo, beforeEach func(TestInfo) error, body TestFunc) (failure *AssertionError) {
	defer func() {
		if r := recover(); r != nil {
			failure = NormalizeFailure(panicError(r))
		}
	}()
	if err := beforeEach(info); err != nil {
		info.Logger.Printf("beforeEach hook failed: %s", err)
		return NormalizeFailure(err)
	}
	if body == nil {
		return NormalizeFailure(errors.Wrap(ErrInvalidArgument, "test body must be a function"))
	}
	if err := body(s.assert); err != nil {
		return NormalizeFailure(err)
	}
	return nil
}

func (s *Suite) reportStarted(info TestInfo) {
	s.reportLock.Lock()
	defer s.reportLock.Unlock()
	s.debugLogger.Printf("Starting test #%d: %s", info.ID, info.Description)
	s.testLogger.TestStarted(info)
}

func (s *Suite) reportFinished(result TestResult, output CapturedOutput) {
	s.reportLock.Lock()
	defer s.reportLock.Unlock()
	for _, f := range s.finished.Accept(finishedTest{result: result, output: output}) {
		s.testLogger.TestFinished(f.result, f.output)
	}
}

package framework

import (
	"github.com/pkg/errors"
)

// SuiteState is the lifecycle stage of a Suite.
type SuiteState int

const (
	// SuiteFresh means no test has been registered and Aggregate has not been called.
	SuiteFresh SuiteState = iota
	// SuiteInitialized means the beforeAll hook has been started.
	SuiteInitialized
	// SuiteFinalized means the afterAll hook has returned. Tests can still be registered.
	SuiteFinalized
)

func (st SuiteState) String() string {
	switch st {
	case SuiteFresh:
		return "fresh"
	case SuiteInitialized:
		return "initialized"
	case SuiteFinalized:
		return "finalized"
	default:
		return "unknown"
	}
}

func (s *Suite) State() SuiteState {
	s.lock.Lock()
	defer s.lock.Unlock()
	switch {
	case s.finalized:
		return SuiteFinalized
	case s.initialized:
		return SuiteInitialized
	default:
		return SuiteFresh
	}
}

// SetBeforeEach sets a hook that runs before each test body. If it fails, the body is not run and
// the test fails.
func (s *Suite) SetBeforeEach(hook func(TestInfo) error) error {
	if hook == nil {
		return errors.Wrap(ErrInvalidArgument, "beforeEach hook must be a function")
	}
	s.lock.Lock()
	s.beforeEach = hook
	s.lock.Unlock()
	return nil
}

// SetAfterEach sets a hook that runs after each test body, whether or not the test failed. If it
// fails, a test that had passed is marked as failed.
func (s *Suite) SetAfterEach(hook func(TestInfo) error) error {
	if hook == nil {
		return errors.Wrap(ErrInvalidArgument, "afterEach hook must be a function")
	}
	s.lock.Lock()
	s.afterEach = hook
	s.lock.Unlock()
	return nil
}

// SetBeforeAll sets the hook that runs once, before the first test. Once a test has been registered
// the hook can no longer be changed, and SetBeforeAll returns false.
func (s *Suite) SetBeforeAll(hook func() error) (bool, error) {
	if hook == nil {
		return false, errors.Wrap(ErrInvalidArgument, "beforeAll hook must be a function")
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.initialized {
		s.debugLogger.Printf("beforeAll hook for suite %q not applied: suite is already initialized", s.name)
		return false, nil
	}
	s.beforeAll = hook
	return true, nil
}

// SetAfterAll sets the hook that runs once, after the first Aggregate call has seen all of its tests
// finish. Once the hook has been started it can no longer be changed, and SetAfterAll returns false.
func (s *Suite) SetAfterAll(hook func() error) (bool, error) {
	if hook == nil {
		return false, errors.Wrap(ErrInvalidArgument, "afterAll hook must be a function")
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.finalizing {
		s.debugLogger.Printf("afterAll hook for suite %q not applied: suite is already finalizing", s.name)
		return false, nil
	}
	s.afterAll = hook
	return true, nil
}

// callHook runs a hook, turning a panic into an error.
func callHook(hook func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = panicError(r)
		}
	}()
	return hook()
}

func panicError(r interface{}) error {
	switch v := r.(type) {
	case *AssertionError:
		return v
	case error:
		return errors.WithStack(v)
	default:
		return errors.Errorf("unexpected panic in test: %+v", r)
	}
}

func wrapHookError(err error, hookName string) error {
	return errors.Wrapf(err, "%s hook failed", hookName)
}

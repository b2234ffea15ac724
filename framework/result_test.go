package framework

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBody(a Assert) error {
	a.Equals(1, 1)
	return nil
}

func TestNewTestResult(t *testing.T) {
	r, err := NewTestResult(3, true, sampleBody, nil, 1500*time.Microsecond, "adds")
	require.NoError(t, err)
	assert.Equal(t, 3, r.ID())
	assert.True(t, r.Passed())
	assert.Nil(t, r.Failure())
	assert.Equal(t, 1.5, r.DurationMs())
	assert.Equal(t, "adds", r.Description())
	assert.NotNil(t, r.Body())
	assert.Equal(t, "#3 PASS: adds (1.50ms)", r.String())
}

func TestNewTestResultRejectsNegativeID(t *testing.T) {
	_, err := NewTestResult(-1, true, sampleBody, nil, 0, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestNewTestResultFailureIsPresentIffFailed(t *testing.T) {
	failure := NewAssertionError(1, 2, "", nil)

	r, err := NewTestResult(0, true, sampleBody, failure, 0, "")
	require.NoError(t, err)
	assert.Nil(t, r.Failure())

	r, err = NewTestResult(0, false, sampleBody, nil, 0, "")
	require.NoError(t, err)
	require.NotNil(t, r.Failure())
	assert.Equal(t, "test failed with no failure message", r.Failure().Message())

	r, err = NewTestResult(0, false, sampleBody, failure, 0, "")
	require.NoError(t, err)
	assert.Same(t, failure, r.Failure())
}

func TestBodyName(t *testing.T) {
	r, err := NewTestResult(0, true, sampleBody, nil, 0, "")
	require.NoError(t, err)
	assert.Regexp(t, `framework\.sampleBody \(result_test\.go:\d+\)`, r.BodyName())

	r, err = NewTestResult(0, true, nil, nil, 0, "")
	require.NoError(t, err)
	assert.Equal(t, "<nil>", r.BodyName())
}

func TestResultsOK(t *testing.T) {
	assert.True(t, Results{}.OK())
	failed, _ := NewTestResult(0, false, nil, nil, 0, "")
	assert.False(t, Results{Runs: []TestResult{failed}, Failed: []TestResult{failed}}.OK())
}

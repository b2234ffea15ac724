package framework

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// ComparisonFailure is implemented by any error that carries the two values of a failed comparison.
// AssertionError implements it, but so can errors from other assertion helpers; NormalizeFailure
// preserves the values of anything that does.
type ComparisonFailure interface {
	error
	Actual() interface{}
	Expected() interface{}
	Unwrap() error
}

// AssertionError describes why a test failed: the actual and expected values of the check that did
// not hold, a human-readable message, and optionally the error that originally caused it.
//
// An AssertionError is immutable. The serialized forms of the two values are computed once, when the
// error is created, so that what a reporter shows is what the values looked like at failure time.
type AssertionError struct {
	actual             interface{}
	expected           interface{}
	message            string
	cause              error
	serializedActual   string
	serializedExpected string
}

// NewAssertionError creates an AssertionError. If message is empty, a two-line message containing
// both serialized values is used.
func NewAssertionError(actual, expected interface{}, message string, cause error) *AssertionError {
	sa, se := serializeValue(actual), serializeValue(expected)
	if message == "" {
		message = defaultFailureMessage(sa, se)
	}
	return &AssertionError{
		actual:             actual,
		expected:           expected,
		message:            message,
		cause:              cause,
		serializedActual:   sa,
		serializedExpected: se,
	}
}

// AssertionErrorOf builds an AssertionError equivalent to some other comparison failure.
func AssertionErrorOf(src ComparisonFailure) *AssertionError {
	return NewAssertionError(src.Actual(), src.Expected(), src.Error(), src.Unwrap())
}

// NormalizeFailure converts anything that made a test fail into an AssertionError. If the error
// chain contains a ComparisonFailure, its values and message are kept; otherwise the values are nil.
// In both cases the original error becomes the cause.
func NormalizeFailure(err error) *AssertionError {
	var cf ComparisonFailure
	if errors.As(err, &cf) {
		return NewAssertionError(cf.Actual(), cf.Expected(), cf.Error(), err)
	}
	return NewAssertionError(nil, nil, err.Error(), err)
}

func (e *AssertionError) Error() string { return e.message }

func (e *AssertionError) Unwrap() error { return e.cause }

func (e *AssertionError) Actual() interface{} { return e.actual }

func (e *AssertionError) Expected() interface{} { return e.expected }

func (e *AssertionError) Message() string { return e.message }

func (e *AssertionError) Cause() error { return e.cause }

func (e *AssertionError) SerializedActual() string { return e.serializedActual }

func (e *AssertionError) SerializedExpected() string { return e.serializedExpected }

// Serialized returns the display forms of the actual and expected values.
func (e *AssertionError) Serialized() (actual, expected string) {
	return e.serializedActual, e.serializedExpected
}

// Format supports %+v, which also prints the cause chain (including any stack trace recorded by
// github.com/pkg/errors).
func (e *AssertionError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprint(s, e.message)
			if e.cause != nil {
				fmt.Fprintf(s, "\ncaused by: %+v", e.cause)
			}
			return
		}
		fmt.Fprint(s, e.message)
	case 's':
		fmt.Fprint(s, e.message)
	case 'q':
		fmt.Fprintf(s, "%q", e.message)
	}
}

func defaultFailureMessage(serializedActual, serializedExpected string) string {
	return fmt.Sprintf("actual:::%s\nexpected:::%s", serializedActual, serializedExpected)
}

func serializeValue(v interface{}) string {
	if !isComposite(v) {
		return fmt.Sprint(v)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(data)
}

// isComposite reports whether a value is object-like rather than a primitive. An untyped nil counts
// as composite, in the same way that null is an object for display purposes.
func isComposite(v interface{}) bool {
	if v == nil {
		return true
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct, reflect.Ptr, reflect.Interface:
		return true
	default:
		return false
	}
}

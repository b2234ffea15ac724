package framework

import (
	"fmt"
	"reflect"
)

const notObjectMessage = "target should be 'object'."

// Assert is the set of checks available to a test body. Each check either returns normally or stops
// the test by panicking with an *AssertionError, which the Suite recovers and records; so, like the
// FailNow method of *testing.T, the checks must be called from the goroutine running the test body.
type Assert interface {
	// Equals checks strict equality: both values must have the same dynamic type, and be equal by ==
	// if that type is comparable or be the very same map or slice if it is not. Funcs are only
	// equal when both are nil.
	Equals(actual, expected interface{})

	// HasEqualProperties checks that two object-like values have exactly the same keys mapped to
	// strictly equal values. The comparison is shallow.
	HasEqualProperties(actual, expected interface{})

	// IsSubsetOf checks that every key of actual is present in expected with a strictly equal value.
	// The expected value may have keys that actual does not.
	IsSubsetOf(actual, expected interface{})

	// ContainsOf checks that every key of expected is present in actual with a strictly equal value.
	// The actual value may have keys that expected does not.
	ContainsOf(actual, expected interface{})

	// Condition checks that the predicate returns true.
	Condition(predicate func() bool)
}

type assertions struct{}

func (assertions) Equals(actual, expected interface{}) {
	if !strictEqual(actual, expected) {
		panic(NewAssertionError(actual, expected, "", nil))
	}
}

func (assertions) HasEqualProperties(actual, expected interface{}) {
	a, e := requireObjects(actual, expected)
	if !a.within(e) || !e.within(a) {
		panic(NewAssertionError(actual, expected, "", nil))
	}
}

func (assertions) IsSubsetOf(actual, expected interface{}) {
	a, e := requireObjects(actual, expected)
	if !a.within(e) {
		panic(NewAssertionError(actual, expected, "", nil))
	}
}

func (assertions) ContainsOf(actual, expected interface{}) {
	a, e := requireObjects(actual, expected)
	if !e.within(a) {
		panic(NewAssertionError(actual, expected, "", nil))
	}
}

func (assertions) Condition(predicate func() bool) {
	if !predicate() {
		panic(NewAssertionError(false, true, "", nil))
	}
}

// properties is the set of own keys of an object-like value, with their values. A nil properties
// means the value itself was nil or a nil pointer; nil maps and slices are just empty.
type properties map[string]interface{}

// within reports whether every key of p is present in other with a strictly equal value.
func (p properties) within(other properties) bool {
	for k, v := range p {
		ov, ok := other[k]
		if !ok || !strictEqual(v, ov) {
			return false
		}
	}
	return true
}

func requireObjects(actual, expected interface{}) (properties, properties) {
	a, aOK := propertiesOf(actual)
	e, eOK := propertiesOf(expected)
	if !aOK || !eOK {
		panic(NewAssertionError(actual, expected, notObjectMessage, nil))
	}
	if (a == nil) != (e == nil) {
		panic(NewAssertionError(actual, expected, "", nil))
	}
	return a, e
}

// propertiesOf returns the own keys of an object-like value. The second return value is false if the
// value is a primitive.
func propertiesOf(value interface{}) (properties, bool) {
	if value == nil {
		return nil, true
	}
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil, isObjectKind(v.Type().Elem().Kind())
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Map:
		props := make(properties, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			props[fmt.Sprint(iter.Key().Interface())] = iter.Value().Interface()
		}
		return props, true
	case reflect.Struct:
		props := make(properties)
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			if f := t.Field(i); f.IsExported() {
				props[f.Name] = v.Field(i).Interface()
			}
		}
		return props, true
	case reflect.Slice, reflect.Array:
		props := make(properties, v.Len())
		for i := 0; i < v.Len(); i++ {
			props[fmt.Sprint(i)] = v.Index(i).Interface()
		}
		return props, true
	default:
		return nil, false
	}
}

func isObjectKind(k reflect.Kind) bool {
	switch k {
	case reflect.Map, reflect.Struct, reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

func strictEqual(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	if va.Comparable() {
		return va.Equal(vb)
	}
	switch va.Kind() {
	case reflect.Func:
		return va.IsNil() && vb.IsNil()
	case reflect.Map:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	default:
		return false
	}
}

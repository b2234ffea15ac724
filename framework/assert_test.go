package framework

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkFailure runs a check and returns the AssertionError it panicked with, or nil if it passed.
func checkFailure(check func(Assert)) (failure *AssertionError) {
	defer func() {
		if r := recover(); r != nil {
			failure = r.(*AssertionError)
		}
	}()
	check(assertions{})
	return nil
}

func requirePass(t *testing.T, check func(Assert)) {
	t.Helper()
	if f := checkFailure(check); f != nil {
		require.Fail(t, "check should have passed", "%s", f)
	}
}

func requireFail(t *testing.T, check func(Assert)) *AssertionError {
	t.Helper()
	f := checkFailure(check)
	require.NotNil(t, f, "check should have failed")
	return f
}

type person struct {
	Name string
	Age  int
	note string
}

func TestEquals(t *testing.T) {
	requirePass(t, func(a Assert) { a.Equals(1, 1) })
	requirePass(t, func(a Assert) { a.Equals("x", "x") })
	requirePass(t, func(a Assert) { a.Equals(nil, nil) })
	requirePass(t, func(a Assert) { a.Equals(person{Name: "Alice"}, person{Name: "Alice"}) })

	f := requireFail(t, func(a Assert) { a.Equals(1, 2) })
	assert.Equal(t, 1, f.Actual())
	assert.Equal(t, 2, f.Expected())
	assert.Equal(t, "actual:::1\nexpected:::2", f.Message())

	t.Run("no type coercion", func(t *testing.T) {
		requireFail(t, func(a Assert) { a.Equals(1, int64(1)) })
		requireFail(t, func(a Assert) { a.Equals(1, "1") })
		requireFail(t, func(a Assert) { a.Equals(0, nil) })
	})

	t.Run("NaN is not equal to itself", func(t *testing.T) {
		requireFail(t, func(a Assert) { a.Equals(math.NaN(), math.NaN()) })
	})

	t.Run("maps and slices compare by identity", func(t *testing.T) {
		m1 := map[string]int{"a": 1}
		m2 := map[string]int{"a": 1}
		requirePass(t, func(a Assert) { a.Equals(m1, m1) })
		requireFail(t, func(a Assert) { a.Equals(m1, m2) })

		s := []int{1, 2, 3}
		requirePass(t, func(a Assert) { a.Equals(s, s) })
		requireFail(t, func(a Assert) { a.Equals(s, []int{1, 2, 3}) })
		requireFail(t, func(a Assert) { a.Equals(s, s[:2]) })
	})

	t.Run("funcs are only equal when nil", func(t *testing.T) {
		makeCounter := func(n int) func() int { return func() int { return n } }
		c := makeCounter(1)
		requireFail(t, func(a Assert) { a.Equals(makeCounter(1), makeCounter(2)) })
		requireFail(t, func(a Assert) { a.Equals(c, c) })
		requirePass(t, func(a Assert) { a.Equals((func() int)(nil), (func() int)(nil)) })
		requireFail(t, func(a Assert) {
			a.HasEqualProperties(
				map[string]interface{}{"next": makeCounter(1)},
				map[string]interface{}{"next": makeCounter(2)},
			)
		})
	})

	t.Run("pointers compare by identity", func(t *testing.T) {
		p1, p2 := &person{Name: "Alice"}, &person{Name: "Alice"}
		requirePass(t, func(a Assert) { a.Equals(p1, p1) })
		requireFail(t, func(a Assert) { a.Equals(p1, p2) })
	})
}

func TestHasEqualProperties(t *testing.T) {
	alice := map[string]interface{}{"name": "Alice", "age": 30}
	requirePass(t, func(a Assert) {
		a.HasEqualProperties(alice, map[string]interface{}{"name": "Alice", "age": 30})
	})
	requireFail(t, func(a Assert) {
		a.HasEqualProperties(alice, map[string]interface{}{"name": "Alice", "age": 31})
	})
	requireFail(t, func(a Assert) {
		a.HasEqualProperties(alice, map[string]interface{}{"name": "Alice"})
	})
	requireFail(t, func(a Assert) {
		a.HasEqualProperties(map[string]interface{}{"name": "Alice"}, alice)
	})

	t.Run("structs compare exported fields", func(t *testing.T) {
		requirePass(t, func(a Assert) {
			a.HasEqualProperties(person{"Alice", 30, "x"}, &person{"Alice", 30, "y"})
		})
		requireFail(t, func(a Assert) {
			a.HasEqualProperties(person{"Alice", 30, ""}, person{"Alice", 31, ""})
		})
	})

	t.Run("comparison is shallow", func(t *testing.T) {
		requireFail(t, func(a Assert) {
			a.HasEqualProperties(
				map[string]interface{}{"tags": []string{"a"}},
				map[string]interface{}{"tags": []string{"a"}},
			)
		})
	})

	t.Run("slices compare by index", func(t *testing.T) {
		requirePass(t, func(a Assert) { a.HasEqualProperties([]int{1, 2}, [2]int{1, 2}) })
		requireFail(t, func(a Assert) { a.HasEqualProperties([]int{1, 2}, []int{1, 2, 3}) })
	})

	t.Run("primitives are rejected", func(t *testing.T) {
		f := requireFail(t, func(a Assert) { a.HasEqualProperties(1, alice) })
		assert.Equal(t, "target should be 'object'.", f.Message())
		f = requireFail(t, func(a Assert) { a.HasEqualProperties(alice, "x") })
		assert.Equal(t, "target should be 'object'.", f.Message())
	})

	t.Run("nil", func(t *testing.T) {
		requirePass(t, func(a Assert) { a.HasEqualProperties(nil, nil) })
		f := requireFail(t, func(a Assert) { a.HasEqualProperties(nil, alice) })
		assert.Nil(t, f.Actual())
		requireFail(t, func(a Assert) { a.HasEqualProperties(alice, (*person)(nil)) })
		requirePass(t, func(a Assert) { a.HasEqualProperties(map[string]int(nil), map[string]int{}) })
	})
}

func TestIsSubsetOf(t *testing.T) {
	requirePass(t, func(a Assert) {
		a.IsSubsetOf(map[string]int{"a": 1}, map[string]int{"a": 1, "b": 2})
	})
	requireFail(t, func(a Assert) {
		a.IsSubsetOf(map[string]int{"a": 1, "b": 2}, map[string]int{"a": 1})
	})
	requireFail(t, func(a Assert) {
		a.IsSubsetOf(map[string]int{"a": 2}, map[string]int{"a": 1, "b": 2})
	})
	f := requireFail(t, func(a Assert) { a.IsSubsetOf(map[string]int{"a": 1}, 5) })
	assert.Equal(t, notObjectMessage, f.Message())
}

func TestContainsOf(t *testing.T) {
	requirePass(t, func(a Assert) {
		a.ContainsOf(map[string]int{"a": 1, "b": 2}, map[string]int{"a": 1})
	})
	requireFail(t, func(a Assert) {
		a.ContainsOf(map[string]int{"a": 1}, map[string]int{"a": 1, "b": 2})
	})
	requirePass(t, func(a Assert) {
		a.ContainsOf(person{Name: "Alice", Age: 30}, map[string]interface{}{"Name": "Alice"})
	})
	f := requireFail(t, func(a Assert) { a.ContainsOf(true, map[string]int{}) })
	assert.Equal(t, notObjectMessage, f.Message())
}

func TestCondition(t *testing.T) {
	requirePass(t, func(a Assert) { a.Condition(func() bool { return true }) })

	f := requireFail(t, func(a Assert) { a.Condition(func() bool { return false }) })
	assert.Equal(t, false, f.Actual())
	assert.Equal(t, true, f.Expected())
}

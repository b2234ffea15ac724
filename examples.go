package main

import (
	"errors"
	"time"

	"github.com/launchdarkly/async-test-suite/framework"
)

const asyncExampleDelay = 50 * time.Millisecond

type exampleTest struct {
	description string
	body        framework.TestFunc
}

type person struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// exampleTests is the demonstration suite run by this command. Some of these tests fail on purpose,
// to show what failures look like in each report.
func exampleTests() []exampleTest {
	return []exampleTest{
		{
			description: "Simple addition test",
			body: func(a framework.Assert) error {
				sum := 1 + 1
				a.Equals(sum, 2)
				return nil
			},
		},
		{
			description: "Object property equality test",
			body: func(a framework.Assert) error {
				p1 := &person{Name: "Alice", Age: 30}
				p2 := &person{Name: "Alice", Age: 30}
				a.Condition(func() bool { return p1 != p2 })
				a.HasEqualProperties(p1, p2)
				return nil
			},
		},
		{
			description: "Should fail.",
			body: func(a framework.Assert) error {
				a.Equals(1, 2)
				return nil
			},
		},
		{
			description: "Should fail(Object property equality test)",
			body: func(a framework.Assert) error {
				a.HasEqualProperties(
					map[string]interface{}{"name": "Alice", "age": 30},
					map[string]interface{}{"name": "Alice", "age": 31},
				)
				return nil
			},
		},
		{
			description: "Subset and contains test",
			body: func(a framework.Assert) error {
				full := map[string]interface{}{"name": "Alice", "age": 30, "city": "Paris"}
				partial := map[string]interface{}{"name": "Alice"}
				a.IsSubsetOf(partial, full)
				a.ContainsOf(full, partial)
				return nil
			},
		},
		{
			description: "Should fail(plain error)",
			body: func(a framework.Assert) error {
				return errors.New("lookup failed: record not found")
			},
		},
		{
			description: "Delayed async test",
			body: func(a framework.Assert) error {
				ready := make(chan int, 1)
				go func() {
					time.Sleep(asyncExampleDelay)
					ready <- 42
				}()
				a.Equals(<-ready, 42)
				return nil
			},
		},
	}
}

// registerTests adds every test that passes the filter to the suite. In sequential mode each test
// finishes before the next one is registered.
func registerTests(suite *framework.Suite, tests []exampleTest, filter framework.Filter, sequential bool) int {
	count := 0
	for _, t := range tests {
		if filter != nil && !filter(t.description) {
			continue
		}
		h := suite.Test(t.body, t.description)
		count++
		if sequential {
			h.Wait()
		}
	}
	return count
}

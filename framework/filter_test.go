package framework

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegexFilters(t *testing.T) {
	var filters RegexFilters
	assert.True(t, filters.AsFilter("anything"))

	require.NoError(t, filters.MustMatch.Set("^Object"))
	require.NoError(t, filters.MustNotMatch.Set("fail"))

	assert.True(t, filters.AsFilter("Object property equality test"))
	assert.False(t, filters.AsFilter("Simple addition test"))
	assert.False(t, filters.AsFilter("Object property equality test (should fail)"))
}

func TestRegexListRejectsInvalidPattern(t *testing.T) {
	var list RegexList
	assert.Error(t, list.Set("("))
	assert.False(t, list.IsDefined())
}

func TestPrintFilterDescription(t *testing.T) {
	var buf bytes.Buffer
	PrintFilterDescription(&buf, RegexFilters{})
	assert.Empty(t, buf.String())

	var filters RegexFilters
	require.NoError(t, filters.MustMatch.Set("a"))
	require.NoError(t, filters.MustMatch.Set("b"))
	PrintFilterDescription(&buf, filters)
	assert.Contains(t, buf.String(), `skip any not matching "a" or "b"`)
	assert.NotContains(t, buf.String(), "skip any matching")
}

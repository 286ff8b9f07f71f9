package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatcherRequiresFallback(t *testing.T) {
	m, err := NewMatcher("", Case{Pattern: "a", Message: "b"})
	assert.ErrorIs(t, err, ErrMissingFallback)
	assert.Nil(t, m)
}

func TestMatcherMatch(t *testing.T) {
	m, err := NewMatcher("nice to meet you!",
		Case{Pattern: "Jayson", Message: "that is my name"},
		Case{Pattern: "Bob", Message: "not my name"},
		Case{Pattern: "Alice", Message: "hello alice"},
	)
	require.NoError(t, err)

	tests := []struct {
		input string
		want  string
	}{
		{input: "Bob", want: "not my name"},
		{input: "Jayson", want: "that is my name"},
		{input: "Alice", want: "hello alice"},
		{input: "Zoe", want: "nice to meet you!"},
		{input: "bob", want: "nice to meet you!"},
		{input: "", want: "nice to meet you!"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Match(tt.input))
		})
	}
}

func TestMatcherFirstCaseWins(t *testing.T) {
	m, err := NewMatcher("fallback",
		Case{Pattern: "x", Message: "first"},
		Case{Pattern: "x", Message: "second"},
	)
	require.NoError(t, err)
	assert.Equal(t, "first", m.Match("x"))
}

func TestMatcherCasesIsACopy(t *testing.T) {
	cases := []Case{{Pattern: "a", Message: "1"}}
	m, err := NewMatcher("none", cases...)
	require.NoError(t, err)

	cases[0].Message = "changed"
	got := m.Cases()
	got[0].Message = "changed again"

	assert.Equal(t, "1", m.Match("a"))
	assert.Equal(t, "none", m.Fallback())
}

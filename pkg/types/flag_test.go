package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBig(t *testing.T) {
	tests := []struct {
		name  string
		value int
		want  bool
	}{
		{name: "below threshold", value: 42, want: false},
		{name: "threshold counts as small", value: 100, want: false},
		{name: "just above threshold", value: 101, want: true},
		{name: "negative", value: -1, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBig(tt.value))
		})
	}
}

func TestSizeMessage(t *testing.T) {
	assert.Equal(t, "it's big", SizeMessage(true))
	assert.Equal(t, "it's small", SizeMessage(false))
	assert.Equal(t, "it's small", SizeMessage(IsBig(100)))
}

func TestSalutation(t *testing.T) {
	assert.Equal(t, "hello", Salutation(true))
	assert.Equal(t, "goodbye", Salutation(false))
}

package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNormalize tests trimming, whitespace collapsing and lowercasing.
func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "already canonical", input: "zoom", want: "zoom"},
		{name: "uppercase", input: "Zoom Meetings", want: "zoom meetings"},
		{name: "surrounding whitespace", input: "  GitHub  ", want: "github"},
		{name: "internal run", input: "Foo   App", want: "foo app"},
		{name: "tabs and newlines", input: "\tFoo\n\tApp\n", want: "foo app"},
		{name: "empty", input: "", want: ""},
		{name: "whitespace only", input: "   \t\n", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

// TestNormalize_Idempotent tests that normalizing an already normalized
// string is a no-op.
func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"Zoom",
		"  Foo   App  ",
		"MIXED case\twith\nruns",
		"already normalized",
	}

	for _, s := range inputs {
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once))
	}
}

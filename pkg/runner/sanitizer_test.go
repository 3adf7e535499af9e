package runner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeInput_SizeLimit(t *testing.T) {
	limit := DefaultMaxInputSize

	tests := []struct {
		name      string
		inputSize int
		wantErr   bool
	}{
		{"Under Limit", limit - 1, false},
		{"Exact Limit", limit, false},
		{"Over Limit", limit + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SanitizeInput(strings.Repeat("A", tt.inputSize))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInputTooLarge)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSanitizeInput_EnvOverride(t *testing.T) {
	t.Setenv(EnvMaxInputSize, "3")

	_, err := SanitizeInput("ABAB")
	assert.ErrorIs(t, err, ErrInputTooLarge)

	got, err := SanitizeInput("ABA")
	require.NoError(t, err)
	assert.Equal(t, "ABA", got)
}

func TestSanitizeInput_Cleaning(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Plain", "ABBA", "ABBA"},
		{"Empty", "", ""},
		{"Trailing Newline", "AB\n", "AB"},
		{"ANSI Code", "\x1b[31mA\x1b[0m", "[31mA[0m"},
		{"Null Byte", "A\x00B", "AB"},
		{"Foreign Symbols Kept", "AxB", "AxB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeInput(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSanitizeInput_Rejections(t *testing.T) {
	_, err := SanitizeInput("A⊣B")
	assert.ErrorIs(t, err, ErrReservedSymbol)

	_, err = SanitizeInput("⊢")
	assert.ErrorIs(t, err, ErrReservedSymbol)

	_, err = SanitizeInput("A\xffB")
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}

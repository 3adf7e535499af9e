package runner

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aretw0/twoway/pkg/domain"
)

var (
	// DefaultMaxInputSize is the longest tape input, in symbols, a UI layer accepts.
	DefaultMaxInputSize = 256
	// EnvMaxInputSize is the environment variable to override the default
	EnvMaxInputSize = "TWOWAY_MAX_INPUT_SIZE"
)

var (
	ErrInputTooLarge  = errors.New("input exceeds maximum allowed size")
	ErrInvalidUTF8    = errors.New("input contains invalid UTF-8 sequences")
	ErrReservedSymbol = errors.New("input contains a boundary symbol")
)

// SanitizeInput prepares human-entered text for Initialize.
// It trims surrounding whitespace, strips control characters and rejects
// oversized input, invalid UTF-8 and the reserved ⊢/⊣ sentinels.
// Symbols outside a program's alphabet are kept: the engine reports them as
// Rejected when the head reaches them.
func SanitizeInput(input string) (string, error) {
	// 1. Validate UTF-8
	if !utf8.ValidString(input) {
		return "", ErrInvalidUTF8
	}

	// 2. Strip control characters (newlines from form fields, ANSI escapes...)
	input = strings.TrimSpace(input)
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if unicode.IsControl(r) {
			continue
		}
		if domain.Symbol(r).IsBoundary() {
			return "", fmt.Errorf("%w: %q", ErrReservedSymbol, r)
		}
		b.WriteRune(r)
	}
	clean := b.String()

	// 3. Enforce Size Limit
	// We explicitly reject rather than truncate to ensure deterministic runs.
	limit := getMaxInputSize()
	if n := utf8.RuneCountInString(clean); n > limit {
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, n, limit)
	}

	return clean, nil
}

func getMaxInputSize() int {
	if val := os.Getenv(EnvMaxInputSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxInputSize
}

package domain

import "strings"

// Symbol is a single tape cell.
type Symbol rune

// Boundary sentinels framing every tape.
// They are read by the engine but never written to output.
const (
	LeftEnd  Symbol = '⊢'
	RightEnd Symbol = '⊣'
)

// IsBoundary reports whether s is one of the tape sentinels.
func (s Symbol) IsBoundary() bool {
	return s == LeftEnd || s == RightEnd
}

func (s Symbol) String() string {
	return string(rune(s))
}

// Alphabet is the ordered set of ordinary symbols a program declares.
type Alphabet []Symbol

// NewAlphabet builds an alphabet from the runes of letters.
func NewAlphabet(letters string) Alphabet {
	a := make(Alphabet, 0, len(letters))
	for _, r := range letters {
		a = append(a, Symbol(r))
	}
	return a
}

// Contains reports whether s belongs to the alphabet.
func (a Alphabet) Contains(s Symbol) bool {
	for _, x := range a {
		if x == s {
			return true
		}
	}
	return false
}

func (a Alphabet) String() string {
	var sb strings.Builder
	for _, s := range a {
		sb.WriteRune(rune(s))
	}
	return sb.String()
}

package domain

import "strings"

// Tape is an input framed by the LeftEnd and RightEnd sentinels.
// Its content never changes; the head position is owned by the engine.
type Tape struct {
	cells []Symbol
}

// NewTape frames input as [⊢, s1 … sn, ⊣].
func NewTape(input string) Tape {
	cells := make([]Symbol, 0, len(input)+2)
	cells = append(cells, LeftEnd)
	for _, r := range input {
		cells = append(cells, Symbol(r))
	}
	cells = append(cells, RightEnd)
	return Tape{cells: cells}
}

// Len returns the framed length, n+2 for an input of n symbols.
func (t Tape) Len() int {
	return len(t.cells)
}

// In reports whether i indexes a cell of the framed tape.
func (t Tape) In(i int) bool {
	return i >= 0 && i < len(t.cells)
}

// At returns the symbol at index i. i must satisfy In.
func (t Tape) At(i int) Symbol {
	return t.cells[i]
}

// Cells returns a copy of the framed tape.
func (t Tape) Cells() []Symbol {
	out := make([]Symbol, len(t.cells))
	copy(out, t.cells)
	return out
}

// Input returns the tape content without the sentinels.
func (t Tape) Input() string {
	if len(t.cells) < 2 {
		return ""
	}
	var sb strings.Builder
	for _, s := range t.cells[1 : len(t.cells)-1] {
		sb.WriteRune(rune(s))
	}
	return sb.String()
}

func (t Tape) String() string {
	var sb strings.Builder
	for _, s := range t.cells {
		sb.WriteRune(rune(s))
	}
	return sb.String()
}

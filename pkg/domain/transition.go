package domain

import "strconv"

// Move is the head displacement of a transition.
type Move int8

const (
	Left  Move = -1
	Stay  Move = 0
	Right Move = 1
)

// Valid reports whether m is one of Left, Stay or Right.
func (m Move) Valid() bool {
	return m >= Left && m <= Right
}

func (m Move) String() string {
	return strconv.Itoa(int(m))
}

// Emit is the optional output symbol of a transition.
// The zero value is Silent.
type Emit struct {
	Symbol  Symbol
	Present bool
}

// Silent advances without producing output.
var Silent = Emit{}

// Emits returns an emission of s.
func Emits(s Symbol) Emit {
	return Emit{Symbol: s, Present: true}
}

// Epsilon is how a silent emission is displayed.
const Epsilon = "ε"

// String renders the emission, using Epsilon when silent.
func (e Emit) String() string {
	if !e.Present {
		return Epsilon
	}
	return e.Symbol.String()
}

// Transition is the action bound to a (state, symbol) pair.
type Transition struct {
	Next StateID
	Emit Emit
	Move Move
}

// Rule binds a transition to the (state, symbol) pair that triggers it.
type Rule struct {
	From StateID
	Read Symbol
	Transition
}

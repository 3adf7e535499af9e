package domain

import "errors"

// ErrDuplicateRule is returned when two rules share the same (state, symbol) pair.
var ErrDuplicateRule = errors.New("duplicate rule")

// ErrInvalidMove is returned when a rule moves the head by more than one cell.
var ErrInvalidMove = errors.New("invalid move")

// ErrSentinelEmit is returned when a rule would emit a boundary sentinel.
var ErrSentinelEmit = errors.New("boundary symbols cannot be emitted")

// ErrTerminalHasRules is returned when a rule leaves the terminal state.
var ErrTerminalHasRules = errors.New("terminal state has outgoing rules")

// ErrMissingState is returned when the initial or terminal state is empty.
var ErrMissingState = errors.New("missing state")

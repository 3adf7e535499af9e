package domain

import "fmt"

type ruleKey struct {
	state  StateID
	symbol Symbol
}

// Table is the fixed (state, symbol) -> Transition mapping of a program.
// A Table is immutable once built and safe to share between engines.
type Table struct {
	initial  StateID
	terminal StateID
	states   []StateID
	rules    []Rule
	index    map[ruleKey]Transition
}

// NewTable validates rules and builds a Table.
// States are collected in first-seen order, starting with initial and ending with
// terminal when the terminal state is only ever a target.
func NewTable(initial, terminal StateID, rules ...Rule) (*Table, error) {
	if initial == "" || terminal == "" {
		return nil, fmt.Errorf("table needs both initial and terminal states: %w", ErrMissingState)
	}

	t := &Table{
		initial:  initial,
		terminal: terminal,
		index:    make(map[ruleKey]Transition, len(rules)),
	}

	seen := make(map[StateID]bool)
	addState := func(s StateID) {
		if !seen[s] {
			seen[s] = true
			t.states = append(t.states, s)
		}
	}
	addState(initial)

	for _, r := range rules {
		if r.From == "" || r.Next == "" {
			return nil, fmt.Errorf("rule (%s, %s): %w", r.From, r.Read, ErrMissingState)
		}
		if r.From == terminal {
			return nil, fmt.Errorf("rule (%s, %s): %w", r.From, r.Read, ErrTerminalHasRules)
		}
		if !r.Move.Valid() {
			return nil, fmt.Errorf("rule (%s, %s) moves %d: %w", r.From, r.Read, r.Move, ErrInvalidMove)
		}
		if r.Emit.Present && r.Emit.Symbol.IsBoundary() {
			return nil, fmt.Errorf("rule (%s, %s): %w", r.From, r.Read, ErrSentinelEmit)
		}
		k := ruleKey{state: r.From, symbol: r.Read}
		if _, dup := t.index[k]; dup {
			return nil, fmt.Errorf("rule (%s, %s): %w", r.From, r.Read, ErrDuplicateRule)
		}
		t.index[k] = r.Transition
		t.rules = append(t.rules, r)
		addState(r.From)
		addState(r.Next)
	}
	addState(terminal)

	return t, nil
}

// Lookup returns the transition for (state, symbol), if one exists.
func (t *Table) Lookup(state StateID, symbol Symbol) (Transition, bool) {
	tr, ok := t.index[ruleKey{state: state, symbol: symbol}]
	return tr, ok
}

// Initial returns the state every run starts from.
func (t *Table) Initial() StateID { return t.initial }

// Terminal returns the state that ends a run.
func (t *Table) Terminal() StateID { return t.terminal }

// IsTerminal reports whether s is the terminal state.
func (t *Table) IsTerminal(s StateID) bool { return s == t.terminal }

// States returns every state mentioned by the table.
func (t *Table) States() []StateID {
	out := make([]StateID, len(t.states))
	copy(out, t.states)
	return out
}

// Has reports whether s is a member of the state set.
func (t *Table) Has(s StateID) bool {
	for _, x := range t.states {
		if x == s {
			return true
		}
	}
	return false
}

// Rules returns the rules in the order they were declared.
func (t *Table) Rules() []Rule {
	out := make([]Rule, len(t.rules))
	copy(out, t.rules)
	return out
}

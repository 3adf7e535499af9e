package dsl

import (
	"fmt"

	"github.com/aretw0/twoway/pkg/domain"
)

// Builder manages the table construction.
type Builder struct {
	initial  domain.StateID
	terminal domain.StateID
	order    []domain.StateID
	states   map[domain.StateID]*StateBuilder
}

// New creates a new table builder for a program running from initial to terminal.
func New(initial, terminal domain.StateID) *Builder {
	return &Builder{
		initial:  initial,
		terminal: terminal,
		states:   make(map[domain.StateID]*StateBuilder),
	}
}

// State starts (or resumes) the rules leaving a state.
// If the state already exists, it returns the existing builder.
func (b *Builder) State(id domain.StateID) *StateBuilder {
	if sb, ok := b.states[id]; ok {
		return sb
	}
	sb := &StateBuilder{id: id, builder: b}
	b.states[id] = sb
	b.order = append(b.order, id)
	return sb
}

// Build validates the collected rules and compiles them into a Table.
func (b *Builder) Build() (*domain.Table, error) {
	var rules []domain.Rule
	for _, id := range b.order {
		rules = append(rules, b.states[id].rules...)
	}

	table, err := domain.NewTable(b.initial, b.terminal, rules...)
	if err != nil {
		return nil, fmt.Errorf("failed to build table: %w", err)
	}
	return table, nil
}

// MustBuild is like Build but panics on error.
// It is meant for tables declared as package-level programs.
func (b *Builder) MustBuild() *domain.Table {
	t, err := b.Build()
	if err != nil {
		panic(err)
	}
	return t
}

package dsl

import "github.com/aretw0/twoway/pkg/domain"

// StateBuilder collects the rules leaving one state.
type StateBuilder struct {
	id      domain.StateID
	builder *Builder
	rules   []domain.Rule
}

// On starts a rule group triggered by any of the given symbols.
// The group is committed by Go.
func (s *StateBuilder) On(symbols ...domain.Symbol) *RuleBuilder {
	return &RuleBuilder{state: s, symbols: symbols, move: domain.Stay}
}

// OnEach is On for every symbol of an alphabet.
func (s *StateBuilder) OnEach(alphabet domain.Alphabet) *RuleBuilder {
	return s.On(alphabet...)
}

// Builder returns the owning table builder.
func (s *StateBuilder) Builder() *Builder {
	return s.builder
}

// RuleBuilder provides a fluent API for configuring one group of rules.
type RuleBuilder struct {
	state   *StateBuilder
	symbols []domain.Symbol
	echo    bool
	emit    domain.Emit
	move    domain.Move
}

// Echo emits the symbol that was read.
func (r *RuleBuilder) Echo() *RuleBuilder {
	r.echo = true
	r.emit = domain.Silent
	return r
}

// Write emits a fixed symbol regardless of what was read.
func (r *RuleBuilder) Write(s domain.Symbol) *RuleBuilder {
	r.echo = false
	r.emit = domain.Emits(s)
	return r
}

// Left moves the head one cell to the left.
func (r *RuleBuilder) Left() *RuleBuilder {
	r.move = domain.Left
	return r
}

// Right moves the head one cell to the right.
func (r *RuleBuilder) Right() *RuleBuilder {
	r.move = domain.Right
	return r
}

// Stay keeps the head in place. This is the default.
func (r *RuleBuilder) Stay() *RuleBuilder {
	r.move = domain.Stay
	return r
}

// Go commits the group with next as the target state and returns the state
// builder so further groups can be chained.
func (r *RuleBuilder) Go(next domain.StateID) *StateBuilder {
	for _, sym := range r.symbols {
		emit := r.emit
		if r.echo {
			emit = domain.Emits(sym)
		}
		r.state.rules = append(r.state.rules, domain.Rule{
			From: r.state.id,
			Read: sym,
			Transition: domain.Transition{
				Next: next,
				Emit: emit,
				Move: r.move,
			},
		})
	}
	return r.state
}

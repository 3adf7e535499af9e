/*
Package dsl provides a fluent builder for transducer tables.

It lets programs be declared in Go code instead of hand-writing every
(state, symbol) rule, and validates the result through domain.NewTable.

	b := dsl.New("q0", "q2")
	b.State("q0").
		On(domain.LeftEnd).Right().Go("q1")
	b.State("q1").
		OnEach(domain.NewAlphabet("AB")).Echo().Right().Go("q1").
		On(domain.RightEnd).Go("q2")
	table, err := b.Build()
*/
package dsl

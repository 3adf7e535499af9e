// Package programs declares the transducer programs shipped with twoway.
package programs

import (
	"github.com/aretw0/twoway/pkg/domain"
	"github.com/aretw0/twoway/pkg/dsl"
	"github.com/aretw0/twoway/pkg/registry"
)

// DefaultName is the program used when none is selected.
const DefaultName = "double"

var ab = domain.NewAlphabet("AB")

// Doubling copies its input twice: forward, rewind, forward again.
// It halts after 3n+4 transitions with output s+s.
func Doubling() domain.Program {
	b := dsl.New("q0", "q4")

	b.State("q0").
		On(domain.LeftEnd).Right().Go("q1")

	b.State("q1").
		OnEach(ab).Echo().Right().Go("q1").
		On(domain.RightEnd).Left().Go("q2")

	b.State("q2").
		OnEach(ab).Left().Go("q2").
		On(domain.LeftEnd).Right().Go("q3")

	b.State("q3").
		OnEach(ab).Echo().Right().Go("q3").
		On(domain.RightEnd).Stay().Go("q4")

	return domain.Program{
		Name:     DefaultName,
		Summary:  "Copies the input twice (s -> ss)",
		Alphabet: ab,
		Table:    b.MustBuild(),
		Description: `# double

Reads the tape in four passes:

1. **q0** consumes the left boundary and enters the first copy.
2. **q1** emits every symbol while moving right, then turns around at the right boundary.
3. **q2** rewinds silently to the left boundary.
4. **q3** emits every symbol a second time and stops in **q4** at the right boundary.

The output is the input concatenated with itself.`,
	}
}

// Reverse emits its input backwards on the way back from the right boundary.
func Reverse() domain.Program {
	b := dsl.New("q0", "q3")

	b.State("q0").
		On(domain.LeftEnd).Right().Go("q1")

	b.State("q1").
		OnEach(ab).Right().Go("q1").
		On(domain.RightEnd).Left().Go("q2")

	b.State("q2").
		OnEach(ab).Echo().Left().Go("q2").
		On(domain.LeftEnd).Stay().Go("q3")

	return domain.Program{
		Name:     "reverse",
		Summary:  "Emits the input backwards (s -> reverse(s))",
		Alphabet: ab,
		Table:    b.MustBuild(),
		Description: `# reverse

Walks silently to the right boundary, then emits every symbol while moving
left and stops in **q3** at the left boundary.`,
	}
}

// Identity emits its input unchanged in a single pass.
func Identity() domain.Program {
	b := dsl.New("q0", "q2")

	b.State("q0").
		On(domain.LeftEnd).Right().Go("q1")

	b.State("q1").
		OnEach(ab).Echo().Right().Go("q1").
		On(domain.RightEnd).Stay().Go("q2")

	return domain.Program{
		Name:     "identity",
		Summary:  "Emits the input unchanged (s -> s)",
		Alphabet: ab,
		Table:    b.MustBuild(),
		Description: `# identity

A one-way pass: every symbol is emitted while the head moves right.`,
	}
}

// Catalog returns a registry holding every shipped program.
func Catalog() *registry.Registry {
	r := registry.NewRegistry()
	r.Register(Doubling())
	r.Register(Reverse())
	r.Register(Identity())
	return r
}

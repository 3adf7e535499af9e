/*
Package twoway simulates deterministic two-way finite-state transducers (2DFT).

A transducer reads a tape framed by the ⊢ and ⊣ sentinels. On every step it looks
up the (state, symbol) pair under the head, moves the head left, right or not at
all, and optionally emits one output symbol. The default program copies its input
twice, so "AB" produces "ABAB".

# Concept

The engine only evaluates. Stepping is cooperative: each call to Step performs
exactly one transition attempt and returns. Running to completion, rendering the
state diagram or highlighting the head are the caller's business (see pkg/runner,
cmd/twoway and the HTTP and MCP adapters), and they only observe the engine.

# Usage

	package main

	import (
		"context"
		"fmt"

		"github.com/aretw0/twoway"
		"github.com/aretw0/twoway/pkg/domain"
	)

	func main() {
		ctx := context.Background()
		eng := twoway.New()
		eng.Initialize(ctx, "AB")

		for !eng.Terminal() {
			out, trace := eng.Step(ctx)
			fmt.Println(trace)
			if out.Kind == domain.Rejected {
				break
			}
		}
		fmt.Println("Output:", eng.OutputString())
	}

Calling Step again once the terminal state is reached re-arms the engine at the
initial state and reports Halted. Use WithStrictCompletion to get AlreadyComplete
and an untouched engine instead.
*/
package twoway

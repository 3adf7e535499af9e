/*
Package domain contains the core domain models of the two-way transducer.

It defines the alphabet and its boundary sentinels, the states, the transitions
and the table that maps a (state, symbol) pair to a transition, plus the framed
tape the engine reads from. This package is kept pure and free of I/O, so the
engine shell in internal/runtime and every presentation layer share one vocabulary.

# Key Entities

  - Symbol: a rune of the input alphabet, or one of the LeftEnd/RightEnd sentinels.
  - Transition: next state, optional emission and a head displacement (Move).
  - Table: the fixed (state, symbol) -> Transition mapping of a program.
  - Tape: the input framed by sentinels. Content never changes after construction.
  - Outcome: what a single step did (Transitioned, Halted, Rejected).
*/
package domain

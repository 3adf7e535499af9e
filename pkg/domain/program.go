package domain

// Program is a named transition table over a declared alphabet.
type Program struct {
	Name string
	// Summary is a one-line description used in listings.
	Summary string
	// Description is markdown shown by presentation layers.
	Description string
	Alphabet    Alphabet
	Table       *Table
}

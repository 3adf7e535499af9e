package domain

// StateID identifies a state of the transducer.
type StateID string

func (s StateID) String() string {
	return string(s)
}

// Snapshot is a read-only copy of the engine's observable state.
// Adapters serialise it; it is never fed back into the engine.
type Snapshot struct {
	// Program is the name of the loaded transition table.
	Program string `json:"program" yaml:"program"`

	// State is the current state of the transducer.
	State StateID `json:"state" yaml:"state"`

	// Head is the index into the framed tape (0 is the left sentinel).
	Head int `json:"head" yaml:"head"`

	// Tape is the framed tape rendered as a string.
	Tape string `json:"tape" yaml:"tape"`

	// Output joins the emitted symbols; silent steps contribute nothing.
	Output string `json:"output" yaml:"output"`

	// Emissions is the raw per-step output, with "" for silent steps.
	Emissions []string `json:"emissions" yaml:"emissions"`

	// Steps counts step attempts since the last initialization.
	Steps int `json:"steps" yaml:"steps"`

	// Terminal is true when State is the program's terminal state.
	Terminal bool `json:"terminal" yaml:"terminal"`
}

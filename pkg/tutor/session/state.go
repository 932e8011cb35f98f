package session

import (
	"prompt-tutor-be/pkg/tutor/phase"
	"prompt-tutor-be/pkg/tutor/slots"
)

// State is the mutable per-session record the turn cycle operates on.
// The persistence layer owns its storage; this package owns its rules.
type State struct {
	Phase            phase.Phase
	Info             slots.SlotSet
	IdentifiedIssues []string
	IterationCount   int
	ConfidenceScore  float64
}

// NewState returns the canonical starting state for a fresh session.
func NewState() *State {
	return &State{
		Phase: phase.Analyze,
		Info:  slots.New(),
	}
}

// TurnResult summarizes one processed turn for the surrounding system.
type TurnResult struct {
	Phase      phase.Phase
	Confidence float64
	Draft      string
	Extracted  bool // false on the very first turn, where extraction is skipped
}

package phase

import (
	"fmt"
	"strings"

	"prompt-tutor-be/pkg/tutor/slots"
)

// Phase is a stage of the refinement dialogue.
type Phase string

const (
	Analyze        Phase = "analyze"
	Interview      Phase = "interview"
	DataCollection Phase = "data_collection"
	Refine         Phase = "refine"
	Validate       Phase = "validate"
	Complete       Phase = "complete"
)

// Confidence thresholds governing phase transitions.
const (
	ThresholdInterviewToRefine  = 20.0 // minimum to leave pure interview mode
	ThresholdRefineToValidate   = 65.0 // "good enough" bar
	ThresholdValidateToComplete = 80.0 // "excellent" bar
	ThresholdForceInterview     = 40.0 // below this, always route back to data collection
)

// Keyword sets checked against the user's latest message during validation.
// Substring match, case-insensitive.
var (
	revisionKeywords = []string{"modify", "change", "add", "remove", "improve", "but", "however", "instead"}
	approvalKeywords = []string{"ok", "okay", "fine", "good", "perfect", "great", "yes", "proceed", "looks good"}
)

// ErrTerminalPhase is returned when Next is called on a completed session.
// That is a caller bug: the lifecycle must stop invoking the policy once the
// session reaches Complete.
var ErrTerminalPhase = fmt.Errorf("phase policy invoked on terminal phase %q", Complete)

// Next computes the phase for the upcoming turn.
//
// The rules are evaluated top to bottom per current phase and the first
// match wins. Threshold ranges overlap, so rule order is load-bearing:
// the higher threshold is always checked before the lower one.
func Next(current Phase, info slots.SlotSet, confidence float64, iterationCount int, userText string) (Phase, error) {
	switch current {
	case Analyze:
		// The very first turn always goes through initial analysis.
		if iterationCount == 0 {
			return Analyze, nil
		}
		if confidence >= ThresholdValidateToComplete {
			// Opening prompt was already excellent, skip straight to validation.
			return Validate, nil
		}
		if confidence >= ThresholdRefineToValidate {
			return Refine, nil
		}
		if confidence >= ThresholdForceInterview && info.Has(slots.CategoryObjective) {
			// Objective is clear, only details are missing.
			return DataCollection, nil
		}
		return Interview, nil

	case Interview:
		if info.Has(slots.CategoryObjective) && confidence < ThresholdRefineToValidate {
			return DataCollection, nil
		}
		if confidence >= ThresholdRefineToValidate {
			return Refine, nil
		}
		// Stay: the interviewer asks exactly one more clarifying question.
		return Interview, nil

	case DataCollection:
		// One collection round, then attempt refinement.
		return Refine, nil

	case Refine:
		if confidence < ThresholdForceInterview {
			// Refinement revealed a gap.
			return DataCollection, nil
		}
		if confidence >= ThresholdRefineToValidate && info.Has(slots.CategoryObjective) {
			return Validate, nil
		}
		return DataCollection, nil

	case Validate:
		if containsAny(userText, revisionKeywords) {
			return DataCollection, nil
		}
		if confidence >= ThresholdValidateToComplete {
			return Complete, nil
		}
		if confidence >= ThresholdRefineToValidate && containsAny(userText, approvalKeywords) {
			return Complete, nil
		}
		return DataCollection, nil

	case Complete:
		return Complete, ErrTerminalPhase

	default:
		return current, fmt.Errorf("unknown phase %q", current)
	}
}

// IsTerminal reports whether p has no outgoing transitions.
func IsTerminal(p Phase) bool {
	return p == Complete
}

// Valid reports whether p is one of the defined phases.
func Valid(p Phase) bool {
	switch p {
	case Analyze, Interview, DataCollection, Refine, Validate, Complete:
		return true
	}
	return false
}

func containsAny(text string, keywords []string) bool {
	lowered := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

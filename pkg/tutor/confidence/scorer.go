package confidence

import (
	"prompt-tutor-be/pkg/tutor/phase"
	"prompt-tutor-be/pkg/tutor/slots"
)

// Per-slot weights. The objective dominates: without it no usable prompt
// can be assembled. Weights sum to 100.
var weights = map[string]float64{
	slots.CategoryObjective:    35.0,
	slots.CategoryContext:      25.0,
	slots.CategoryConstraints:  20.0,
	slots.CategoryOutputFormat: 10.0,
	slots.CategoryRole:         10.0,
}

const (
	// Values longer than this earn a 20% detail bonus on their weight.
	detailThreshold = 20
	detailBonusRate = 0.2

	// Sessions in refine/validate without an objective are untrustworthy.
	missingObjectivePenalty = 0.3
)

// Score estimates completeness of the collected slots as a value in [0, 100].
// Pure and deterministic: same inputs always produce the same score.
func Score(info slots.SlotSet, current phase.Phase) float64 {
	score := 0.0

	for category, weight := range weights {
		value := info.Get(category)
		if value == "" {
			continue
		}
		score += weight
		if len(value) > detailThreshold {
			score += weight * detailBonusRate
		}
	}

	// Severe penalty: an advanced phase without a core objective.
	if (current == phase.Refine || current == phase.Validate) && !info.Has(slots.CategoryObjective) {
		score *= missingObjectivePenalty
	}

	// Completeness bonus for breadth of collected information.
	switch count := info.PopulatedCount(); {
	case count >= 4:
		score += 10
	case count == 3:
		score += 5
	}

	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

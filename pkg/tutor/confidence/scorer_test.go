package confidence

import (
	"strings"
	"testing"

	"prompt-tutor-be/pkg/tutor/phase"
	"prompt-tutor-be/pkg/tutor/slots"

	"github.com/stretchr/testify/assert"
)

func TestScoreEmptySet(t *testing.T) {
	assert.Equal(t, 0.0, Score(slots.New(), phase.Analyze))
}

func TestScoreDetailedObjective(t *testing.T) {
	s := slots.New()
	// Over 20 characters: base weight plus the 20% detail bonus.
	s.Merge(slots.CategoryObjective, "write a blog post about container gardening")

	assert.InDelta(t, 42.0, Score(s, phase.Interview), 0.001)
}

func TestScoreShortObjectiveNoBonus(t *testing.T) {
	s := slots.New()
	s.Merge(slots.CategoryObjective, "write a poem") // 12 chars

	assert.InDelta(t, 35.0, Score(s, phase.Interview), 0.001)
}

func TestScoreMissingObjectivePenalty(t *testing.T) {
	s := slots.New()
	s.Merge(slots.CategoryContext, "for students") // short, no bonus
	s.Merge(slots.CategoryConstraints, "formal")

	// (25 + 20) * 0.3, no breadth bonus at two slots.
	assert.InDelta(t, 13.5, Score(s, phase.Refine), 0.001)
	assert.InDelta(t, 13.5, Score(s, phase.Validate), 0.001)

	// Same slots outside refine/validate score unpenalized.
	assert.InDelta(t, 45.0, Score(s, phase.Interview), 0.001)
}

func TestScoreBreadthBonus(t *testing.T) {
	three := slots.New()
	three.Merge(slots.CategoryObjective, "write a poem")
	three.Merge(slots.CategoryContext, "for children")
	three.Merge(slots.CategoryRole, "poet")
	assert.InDelta(t, 75.0, Score(three, phase.Interview), 0.001) // 35+25+10+5

	four := three.Clone()
	four.Merge(slots.CategoryOutputFormat, "haiku")
	assert.InDelta(t, 90.0, Score(four, phase.Interview), 0.001) // 35+25+10+10+10
}

func TestScoreClampedAt100(t *testing.T) {
	s := slots.New()
	long := strings.Repeat("x", 30)
	for _, cat := range slots.Categories {
		s[cat] = long
	}

	// 100 * 1.2 + 10 would exceed the ceiling.
	assert.Equal(t, 100.0, Score(s, phase.Validate))
}

func TestScoreDeterministic(t *testing.T) {
	s := slots.New()
	s.Merge(slots.CategoryObjective, "draft a product announcement for a developer tool")
	s.Merge(slots.CategoryConstraints, "under 300 words")

	first := Score(s, phase.Refine)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Score(s, phase.Refine))
	}
}

package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeConstraintsAccumulate(t *testing.T) {
	s := New()

	s.Merge(CategoryConstraints, "max 500 words")
	assert.Equal(t, "max 500 words", s.Get(CategoryConstraints))

	s.Merge(CategoryConstraints, "formal tone")
	assert.Equal(t, "max 500 words | formal tone", s.Get(CategoryConstraints))

	// Identical values append again; dedupe is the caller's problem.
	s.Merge(CategoryConstraints, "formal tone")
	assert.Equal(t, "max 500 words | formal tone | formal tone", s.Get(CategoryConstraints))
}

func TestMergeKeepsLongerValue(t *testing.T) {
	s := New()

	s.Merge(CategoryObjective, "write an article")
	assert.Equal(t, "write an article", s.Get(CategoryObjective))

	// Shorter value loses.
	s.Merge(CategoryObjective, "write")
	assert.Equal(t, "write an article", s.Get(CategoryObjective))

	// Equal length loses too: the new value must be strictly longer.
	s.Merge(CategoryObjective, "draft an article")
	assert.Equal(t, "write an article", s.Get(CategoryObjective))

	s.Merge(CategoryObjective, "write an article about urban gardening")
	assert.Equal(t, "write an article about urban gardening", s.Get(CategoryObjective))
}

func TestMergeIgnoresNoneAndUnknown(t *testing.T) {
	s := New()

	s.Merge(CategoryNone, "should not land anywhere")
	s.Merge("mood", "should not land anywhere")

	assert.Empty(t, s)
}

func TestFromMapFiltersUnknownKeys(t *testing.T) {
	s := FromMap(map[string]string{
		CategoryObjective: "write a poem",
		"legacy_field":    "junk",
	})

	assert.Equal(t, "write a poem", s.Get(CategoryObjective))
	assert.Len(t, s, 1)
}

func TestCloneIsIndependent(t *testing.T) {
	s := New()
	s.Merge(CategoryRole, "marketing expert")

	c := s.Clone()
	c.Merge(CategoryRole, "senior marketing strategist")

	assert.Equal(t, "marketing expert", s.Get(CategoryRole))
	assert.Equal(t, "senior marketing strategist", c.Get(CategoryRole))
}

func TestPopulatedCountAndHas(t *testing.T) {
	s := New()
	assert.Equal(t, 0, s.PopulatedCount())
	assert.False(t, s.Has(CategoryObjective))

	s.Merge(CategoryObjective, "summarize a report")
	s.Merge(CategoryContext, "for executives")
	s[CategoryRole] = "" // empty value counts as absent

	assert.Equal(t, 2, s.PopulatedCount())
	assert.True(t, s.Has(CategoryObjective))
	assert.False(t, s.Has(CategoryRole))
}

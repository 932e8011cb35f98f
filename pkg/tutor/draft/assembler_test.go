package draft

import (
	"testing"

	"prompt-tutor-be/pkg/tutor/slots"

	"github.com/stretchr/testify/assert"
)

func TestAssembleEmpty(t *testing.T) {
	assert.Equal(t, "", Assemble(slots.New()))
}

func TestAssembleSectionOrder(t *testing.T) {
	s := slots.New()
	// Insert out of display order on purpose.
	s.Merge(slots.CategoryOutputFormat, "bullet list")
	s.Merge(slots.CategoryObjective, "summarize the quarterly report")
	s.Merge(slots.CategoryRole, "financial analyst")
	s.Merge(slots.CategoryContext, "for the executive team")
	s.Merge(slots.CategoryConstraints, "max 200 words")

	want := "**Role**: financial analyst\n" +
		"**Context**: for the executive team\n" +
		"**Objective**: summarize the quarterly report\n" +
		"**Constraints**: max 200 words\n" +
		"**Output Format**: bullet list"

	assert.Equal(t, want, Assemble(s))
}

func TestAssemblePartial(t *testing.T) {
	s := slots.New()
	s.Merge(slots.CategoryObjective, "write a haiku")

	assert.Equal(t, "**Objective**: write a haiku", Assemble(s))
}

func TestAssembleSkipsEmptyValues(t *testing.T) {
	s := slots.New()
	s.Merge(slots.CategoryObjective, "draft an email")
	s[slots.CategoryRole] = ""

	assert.Equal(t, "**Objective**: draft an email", Assemble(s))
}

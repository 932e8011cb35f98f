package prompts

import (
	"strings"
	"testing"

	"prompt-tutor-be/pkg/tutor/phase"
	"prompt-tutor-be/pkg/tutor/slots"

	"github.com/stretchr/testify/assert"
)

func TestRenderInterviewDefaults(t *testing.T) {
	got := Render(phase.Interview, Context{})

	assert.Contains(t, got, "N/A")
	assert.Contains(t, got, "(none)")
	assert.Contains(t, got, "(nothing collected yet)")
	assert.NotContains(t, got, "{original_prompt}")
	assert.NotContains(t, got, "{identified_issues}")
	assert.NotContains(t, got, "{collected_info}")
	assert.NotContains(t, got, "{iteration_count}")
}

func TestRenderSubstitutesContext(t *testing.T) {
	info := slots.New()
	info.Merge(slots.CategoryObjective, "write a cover letter")

	got := Render(phase.Validate, Context{
		OriginalPrompt:  "help me with a letter",
		CollectedInfo:   info,
		RefinedPrompt:   "**Objective**: write a cover letter",
		ConfidenceScore: 72.5,
	})

	assert.Contains(t, got, "help me with a letter")
	assert.Contains(t, got, "**Objective**: write a cover letter")
	assert.Contains(t, got, "72.5")
	assert.NotContains(t, got, "{refined_prompt}")
	assert.NotContains(t, got, "{confidence_score}")
}

func TestRenderIssuesAsBullets(t *testing.T) {
	got := Render(phase.Interview, Context{
		IdentifiedIssues: []string{"no target audience", "no length limit"},
	})

	assert.Contains(t, got, "- no target audience")
	assert.Contains(t, got, "- no length limit")
}

func TestRenderCollectedInfoSorted(t *testing.T) {
	info := slots.New()
	info.Merge(slots.CategoryRole, "historian")
	info.Merge(slots.CategoryContext, "for a museum exhibit")

	got := Render(phase.Refine, Context{CollectedInfo: info})

	ctxIdx := strings.Index(got, "- context: for a museum exhibit")
	roleIdx := strings.Index(got, "- role: historian")
	assert.Greater(t, ctxIdx, -1)
	assert.Greater(t, roleIdx, ctxIdx)
}

func TestRenderStaticPhasesUntouched(t *testing.T) {
	ctx := Context{OriginalPrompt: "irrelevant", ConfidenceScore: 99}

	assert.Equal(t, Template(phase.Analyze), Render(phase.Analyze, ctx))
	assert.Equal(t, Template(phase.Complete), Render(phase.Complete, ctx))
}

func TestRenderUnknownPhase(t *testing.T) {
	assert.Equal(t, "", Render(phase.Phase("daydream"), Context{}))
}

func TestTemplatesExistForAllPhases(t *testing.T) {
	for _, p := range []phase.Phase{
		phase.Analyze, phase.Interview, phase.DataCollection,
		phase.Refine, phase.Validate, phase.Complete,
	} {
		assert.NotEmpty(t, Template(p), string(p))
	}
}

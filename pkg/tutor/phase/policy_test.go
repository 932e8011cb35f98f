package phase

import (
	"testing"

	"prompt-tutor-be/pkg/tutor/slots"

	"github.com/stretchr/testify/assert"
)

func withObjective() slots.SlotSet {
	s := slots.New()
	s.Merge(slots.CategoryObjective, "write a launch announcement")
	return s
}

func TestNextTransitions(t *testing.T) {
	tests := []struct {
		name       string
		current    Phase
		info       slots.SlotSet
		confidence float64
		iteration  int
		userText   string
		want       Phase
	}{
		{"analyze first turn stays", Analyze, slots.New(), 0, 0, "help me write a prompt", Analyze},
		{"analyze excellent prompt skips to validate", Analyze, withObjective(), 85, 1, "", Validate},
		{"analyze good prompt goes to refine", Analyze, withObjective(), 70, 1, "", Refine},
		{"analyze clear objective collects details", Analyze, withObjective(), 45, 1, "", DataCollection},
		{"analyze vague prompt interviews", Analyze, slots.New(), 45, 1, "", Interview},
		{"analyze low confidence interviews", Analyze, withObjective(), 30, 1, "", Interview},

		{"interview objective found collects", Interview, withObjective(), 42, 2, "I want a summary", DataCollection},
		{"interview high confidence refines", Interview, slots.New(), 70, 2, "", Refine},
		{"interview no objective stays", Interview, slots.New(), 42, 2, "hmm", Interview},

		{"data collection always refines", DataCollection, slots.New(), 10, 3, "", Refine},

		{"refine low confidence collects again", Refine, withObjective(), 30, 4, "", DataCollection},
		{"refine ready validates", Refine, withObjective(), 70, 4, "", Validate},
		{"refine ready but no objective collects", Refine, slots.New(), 70, 4, "", DataCollection},
		{"refine middling confidence collects", Refine, withObjective(), 50, 4, "", DataCollection},

		{"validate revision wins over confidence", Validate, withObjective(), 90, 5, "great, but shorten it", DataCollection},
		{"validate excellent completes without approval", Validate, withObjective(), 85, 5, "thanks", Complete},
		{"validate approval completes", Validate, withObjective(), 70, 5, "looks good to me", Complete},
		{"validate neutral reply collects", Validate, withObjective(), 70, 5, "thanks", DataCollection},
		{"validate approval below bar collects", Validate, withObjective(), 50, 5, "ok", DataCollection},
		{"validate approval is case-insensitive", Validate, withObjective(), 70, 5, "PERFECT", Complete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Next(tt.current, tt.info, tt.confidence, tt.iteration, tt.userText)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextTerminal(t *testing.T) {
	got, err := Next(Complete, slots.New(), 100, 9, "one more thing")
	assert.ErrorIs(t, err, ErrTerminalPhase)
	assert.Equal(t, Complete, got)
}

func TestNextUnknownPhase(t *testing.T) {
	_, err := Next(Phase("daydream"), slots.New(), 50, 1, "")
	assert.Error(t, err)
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(Complete))
	assert.False(t, IsTerminal(Validate))
	assert.False(t, IsTerminal(Analyze))
}

func TestValid(t *testing.T) {
	for _, p := range []Phase{Analyze, Interview, DataCollection, Refine, Validate, Complete} {
		assert.True(t, Valid(p), string(p))
	}
	assert.False(t, Valid(Phase("daydream")))
	assert.False(t, Valid(Phase("")))
}

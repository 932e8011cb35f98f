package session

import (
	"context"
	"io"
	"log"
	"testing"

	"prompt-tutor-be/pkg/tutor/extract"
	"prompt-tutor-be/pkg/tutor/phase"
	"prompt-tutor-be/pkg/tutor/slots"

	"github.com/stretchr/testify/assert"
)

func newTestManager() *Manager {
	logger := log.New(io.Discard, "", 0)
	return NewManager(extract.NewExtractor(nil, logger), logger)
}

func TestProcessTurnFirstTurnSkipsExtraction(t *testing.T) {
	m := newTestManager()
	state := NewState()

	result, err := m.ProcessTurn(context.Background(), "s-1", state, "write something about gardening")

	assert.NoError(t, err)
	assert.False(t, result.Extracted)
	assert.Equal(t, phase.Analyze, result.Phase)
	assert.Equal(t, 1, state.IterationCount)
	assert.Empty(t, state.Info)
}

func TestProcessTurnExtractsAfterFirstTurn(t *testing.T) {
	m := newTestManager()
	state := NewState()

	_, err := m.ProcessTurn(context.Background(), "s-1", state, "help me with a prompt")
	assert.NoError(t, err)

	result, err := m.ProcessTurn(context.Background(), "s-1", state, "I want to create a study guide for students")
	assert.NoError(t, err)

	assert.True(t, result.Extracted)
	assert.Equal(t, 2, state.IterationCount)
	assert.True(t, state.Info.Has(slots.CategoryObjective))
	assert.Equal(t, state.ConfidenceScore, result.Confidence)
	assert.Equal(t, state.Phase, result.Phase)
}

func TestProcessTurnDraftReflectsSlots(t *testing.T) {
	m := newTestManager()
	state := NewState()
	state.IterationCount = 1
	state.Phase = phase.Interview
	state.Info.Merge(slots.CategoryObjective, "write a study guide")

	result, err := m.ProcessTurn(context.Background(), "s-1", state, "it is for students")
	assert.NoError(t, err)

	assert.Contains(t, result.Draft, "**Objective**: write a study guide")
	assert.Equal(t, result.Draft, m.Draft(state))
}

func TestProcessTurnTerminalSession(t *testing.T) {
	m := newTestManager()
	state := NewState()
	state.Phase = phase.Complete
	state.IterationCount = 5

	_, err := m.ProcessTurn(context.Background(), "s-1", state, "one more tweak")

	assert.ErrorIs(t, err, phase.ErrTerminalPhase)
	assert.Equal(t, 5, state.IterationCount)
}

func TestProcessTurnConcurrentSessions(t *testing.T) {
	m := newTestManager()

	done := make(chan error, 2)
	for _, id := range []string{"s-a", "s-b"} {
		go func(id string) {
			state := NewState()
			for i := 0; i < 3; i++ {
				if _, err := m.ProcessTurn(context.Background(), id, state, "I want to write a short guide"); err != nil {
					done <- err
					return
				}
			}
			done <- nil
		}(id)
	}

	for i := 0; i < 2; i++ {
		assert.NoError(t, <-done)
	}
}

func TestReleaseSession(t *testing.T) {
	m := newTestManager()
	state := NewState()

	_, err := m.ProcessTurn(context.Background(), "s-1", state, "help me")
	assert.NoError(t, err)

	m.ReleaseSession("s-1")

	// A released id can be reused with a fresh state.
	_, err = m.ProcessTurn(context.Background(), "s-1", NewState(), "help me again")
	assert.NoError(t, err)
}

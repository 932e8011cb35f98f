package session

import (
	"context"
	"log"
	"sync"

	"prompt-tutor-be/pkg/tutor/confidence"
	"prompt-tutor-be/pkg/tutor/draft"
	"prompt-tutor-be/pkg/tutor/extract"
	"prompt-tutor-be/pkg/tutor/phase"
)

// Manager runs the per-turn update cycle and enforces per-session mutual
// exclusion. Different sessions proceed in parallel; turns on the same
// session are strictly sequential because the cycle reads pre-turn state
// that it later overwrites.
type Manager struct {
	extractor *extract.Extractor
	logger    *log.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewManager(extractor *extract.Extractor, logger *log.Logger) *Manager {
	return &Manager{
		extractor: extractor,
		logger:    logger,
		locks:     make(map[string]*sync.Mutex),
	}
}

// ProcessTurn applies one user turn to the session state:
//
//  1. compute the next phase from the pre-turn state
//  2. extract slot values from the user text (skipped on the first turn)
//  3. recompute confidence from the updated slots and the next phase
//  4. increment the iteration count
//  5. commit phase and confidence
//  6. assemble the draft
//
// The whole cycle runs under the session's lock, so a concurrent reader
// never observes a half-applied turn. Returns phase.ErrTerminalPhase if
// the session is already complete.
func (m *Manager) ProcessTurn(ctx context.Context, sessionID string, state *State, userText string) (*TurnResult, error) {
	lock := m.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	nextPhase, err := phase.Next(state.Phase, state.Info, state.ConfidenceScore, state.IterationCount, userText)
	if err != nil {
		return nil, err
	}

	// The first turn is itself the subject of analysis; there is no prior
	// context to merge against.
	extracted := false
	if state.IterationCount > 0 {
		state.Info = m.extractor.Extract(ctx, userText, state.Phase, state.Info)
		extracted = true
	}

	score := confidence.Score(state.Info, nextPhase)

	state.IterationCount++
	state.Phase = nextPhase
	state.ConfidenceScore = score

	m.logger.Printf("[SESSION] %s: phase=%s confidence=%.1f%% iteration=%d slots=%d",
		sessionID, nextPhase, score, state.IterationCount, state.Info.PopulatedCount())

	return &TurnResult{
		Phase:      nextPhase,
		Confidence: score,
		Draft:      draft.Assemble(state.Info),
		Extracted:  extracted,
	}, nil
}

// Draft renders the current draft without advancing the session.
func (m *Manager) Draft(state *State) string {
	return draft.Assemble(state.Info)
}

func (m *Manager) sessionLock(sessionID string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	lock, ok := m.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[sessionID] = lock
	}
	return lock
}

// ReleaseSession drops the lock entry for a finished session.
func (m *Manager) ReleaseSession(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.locks, sessionID)
}

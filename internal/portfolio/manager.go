package portfolio

import (
	"sync"

	"github.com/MikeSquared-Agency/Compass/internal/scoring"
)

// SessionState bundles one caller's editing session with its private
// portfolio. Methods on State must be called while holding the state's own
// lock via WithState.
type SessionState struct {
	mu        sync.Mutex
	Session   *Session
	Portfolio *Store
}

// Manager owns all per-session state, keyed by an opaque session id. Each
// session gets an independent session + portfolio pair; nothing is shared
// across sessions.
type Manager struct {
	mu         sync.Mutex
	sessions   map[string]*SessionState
	weights    scoring.WeightSet
	thresholds scoring.ThresholdSet
	created    func(sessionID string)
}

// NewManager creates a Manager seeding new sessions from the given defaults.
// The optional created hook fires once per new session id.
func NewManager(weights scoring.WeightSet, thresholds scoring.ThresholdSet, created func(sessionID string)) *Manager {
	return &Manager{
		sessions:   make(map[string]*SessionState),
		weights:    weights,
		thresholds: thresholds,
		created:    created,
	}
}

// GetOrCreate returns the state for the session id, creating it on first use.
func (m *Manager) GetOrCreate(sessionID string) *SessionState {
	m.mu.Lock()
	state, ok := m.sessions[sessionID]
	if !ok {
		state = &SessionState{
			Session:   NewSession(m.weights, m.thresholds),
			Portfolio: NewStore(),
		}
		m.sessions[sessionID] = state
	}
	m.mu.Unlock()

	if !ok && m.created != nil {
		m.created(sessionID)
	}
	return state
}

// Defaults returns the weight/threshold defaults new sessions are seeded with.
func (m *Manager) Defaults() (scoring.WeightSet, scoring.ThresholdSet) {
	return m.weights.Clone(), m.thresholds
}

// WithState runs fn while holding the session state's lock, serializing all
// access to the session and its portfolio.
func (s *SessionState) WithState(fn func(*Session, *Store)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.Session, s.Portfolio)
}

// Stats summarizes the manager for the admin endpoint.
type Stats struct {
	Sessions int `json:"sessions"`
	Records  int `json:"records"`
}

// Stats counts live sessions and saved records across all sessions.
func (m *Manager) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	st := Stats{Sessions: len(m.sessions)}
	for _, state := range m.sessions {
		st.Records += state.Portfolio.Len()
	}
	return st
}

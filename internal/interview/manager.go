package interview

import (
	"sync"

	"github.com/santhoshini-18/interview-assistance/internal/model"
)

// Manager hands out one Flow per candidate. A candidate has at most one
// active flow at a time; finishing a session resets it.
type Manager struct {
	store      Store
	cfg        model.SessionConfig
	startTimer TimerStarter

	mu    sync.Mutex
	flows map[int64]*Flow
}

// NewManager creates a flow manager sharing one store and config.
func NewManager(store Store, cfg model.SessionConfig, startTimer TimerStarter) *Manager {
	return &Manager{
		store:      store,
		cfg:        cfg,
		startTimer: startTimer,
		flows:      make(map[int64]*Flow),
	}
}

// Flow returns the candidate's current flow, creating one on first use
// and replacing a completed one with a fresh flow.
func (m *Manager) Flow(candidateID int64) *Flow {
	m.mu.Lock()
	defer m.mu.Unlock()

	f, ok := m.flows[candidateID]
	if !ok || f.State() == StateComplete {
		f = NewFlow(m.store, m.cfg, candidateID, m.startTimer)
		m.flows[candidateID] = f
	}
	return f
}

// Reset discards the candidate's flow, e.g. on sign-out.
func (m *Manager) Reset(candidateID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if f, ok := m.flows[candidateID]; ok {
		f.mu.Lock()
		f.disarmTimer()
		f.mu.Unlock()
		delete(m.flows, candidateID)
	}
}

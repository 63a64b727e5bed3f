package editing

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
)

// Manager holds the single active editing session. Switching to another estimate tears
// the current session down before the new one is opened, so no dirty or backup state
// crosses estimates.
type Manager struct {
	mu      sync.Mutex
	cfg     Config
	deps    Dependencies
	current *Session
}

func NewManager(cfg Config, deps Dependencies) *Manager {
	return &Manager{cfg: cfg, deps: deps}
}

// Activate makes estimateID the active estimate. Activating the estimate that is already
// active returns its session unchanged. mode decides what happens to the work of the
// session being replaced.
func (m *Manager) Activate(ctx context.Context, estimateID string, mode CloseMode) (*Session, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return nil, ErrEstimateNotFound
	}
	if !mode.Valid() {
		return nil, ErrInvalidCloseMode
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil && !m.current.Closed() && m.current.EstimateID() == estimateID {
		return m.current, nil
	}

	estimate, err := m.deps.Estimates.GetByID(ctx, estimateID)
	if err != nil {
		return nil, err
	}
	if estimate.ID == "" {
		return nil, ErrEstimateNotFound
	}
	lines, err := m.deps.Lines.List(ctx, estimateID)
	if err != nil {
		return nil, fmt.Errorf("list lines: %w", err)
	}

	if err := m.closeCurrentLocked(ctx, mode); err != nil {
		log.Printf("[session][manager] previous session closed with error estimate_id=%s err=%v", m.current.EstimateID(), err)
	}

	m.current = Open(ctx, m.cfg, m.deps, estimate, lines)
	log.Printf("[session][manager] activated session_id=%s estimate_id=%s", m.current.ID(), estimateID)
	return m.current, nil
}

// Current returns the active session.
func (m *Manager) Current() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil || m.current.Closed() {
		return nil, ErrNoActiveSession
	}
	return m.current, nil
}

// Close ends the active session.
func (m *Manager) Close(ctx context.Context, mode CloseMode) error {
	if !mode.Valid() {
		return ErrInvalidCloseMode
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil || m.current.Closed() {
		return ErrNoActiveSession
	}
	err := m.closeCurrentLocked(ctx, mode)
	m.current = nil
	return err
}

func (m *Manager) closeCurrentLocked(ctx context.Context, mode CloseMode) error {
	if m.current == nil {
		return nil
	}
	return m.current.Close(ctx, mode)
}

// Package editing implements the estimate-line editing session: an optimistic local
// line set that accepts field edits immediately, writes them to the line service in
// debounced batches and merges server snapshots back without losing unsynchronized
// edits.
//
// A Session serializes every mutation, timer callback and write result behind one
// mutex. Calls to the line service run outside of it, so edits keep flowing while a
// write is outstanding.
package editing

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"estimate_editor/internal/domain/entities"
	"estimate_editor/internal/domain/pricing"
	"estimate_editor/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrSessionClosed    = errors.New("editing session closed")
	ErrLineNotFound     = errors.New("line not found in session")
	ErrNoActiveSession  = errors.New("no active editing session")
	ErrEstimateNotFound = errors.New("estimate not found")
	ErrInvalidCloseMode = errors.New("invalid close mode")
	ErrUnsyncedChanges  = errors.New("session closed with unsynchronized changes")
)

// Dependencies are the collaborators of a session. Estimates, Backups and Listener are
// optional.
type Dependencies struct {
	Lines     interfaces.ILineService
	Estimates interfaces.IEstimateProvider
	Backups   interfaces.IBackupStore
	Scheduler interfaces.IScheduler
	Listener  Listener
	NewID     func() string
}

// Session is the editing state of one estimate.
type Session struct {
	mu sync.Mutex
	wg sync.WaitGroup

	token      string
	estimateID string
	cfg        Config

	lines     interfaces.ILineService
	estimates interfaces.IEstimateProvider
	backups   interfaces.IBackupStore
	sched     interfaces.IScheduler
	listener  Listener

	ctx    context.Context
	cancel context.CancelFunc

	store   *Store
	engine  *syncEngine
	rates   entities.RateConfig
	totals  entities.Totals
	refresh interfaces.ITimer

	notes  []Notification
	outbox []Notification

	draining bool
	closed   bool
}

// LineView is a display line together with its synchronization state.
type LineView struct {
	Line          entities.EstimateLine `json:"line"`
	Status        SyncStatus            `json:"status"`
	DirtyFields   []entities.Field      `json:"dirty_fields"`
	Error         string                `json:"error,omitempty"`
	PendingCreate bool                  `json:"pending_create"`
}

// View is a consistent copy of the session state.
type View struct {
	SessionID  string              `json:"session_id"`
	EstimateID string              `json:"estimate_id"`
	Status     SyncStatus          `json:"status"`
	Lines      []LineView          `json:"lines"`
	Rates      entities.RateConfig `json:"rates"`
	Totals     entities.Totals     `json:"totals"`
	Pending    int                 `json:"pending_changes"`
	Unsaved    bool                `json:"has_unsaved_changes"`
	Issues     []ValidationIssue   `json:"validation_issues"`
	Focus      *FocusKey           `json:"focus,omitempty"`
}

// Open creates a session for an estimate from its current lines, restores backed-up
// edits and starts the periodic refresh.
func Open(ctx context.Context, cfg Config, deps Dependencies, estimate entities.Estimate, lines []entities.EstimateLine) *Session {
	cfg = cfg.withDefaults()
	newID := deps.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	sctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s := &Session{
		token:      newID(),
		estimateID: estimate.ID,
		cfg:        cfg,
		lines:      deps.Lines,
		estimates:  deps.Estimates,
		backups:    deps.Backups,
		sched:      deps.Scheduler,
		listener:   deps.Listener,
		ctx:        sctx,
		cancel:     cancel,
		store:      NewStore(estimate.ID, newID),
		engine:     newSyncEngine(cfg, deps.Scheduler),
		rates:      estimate.Rates,
	}

	s.mu.Lock()
	s.recoverLocked(lines)
	s.recomputeLocked()
	s.scheduleRefreshLocked()
	s.mu.Unlock()
	s.dispatch()

	log.Printf("[session][open] session_id=%s estimate_id=%s lines=%d", s.token, s.estimateID, len(lines))
	return s
}

func (s *Session) ID() string         { return s.token }
func (s *Session) EstimateID() string { return s.estimateID }

func (s *Session) recomputeLocked() {
	s.totals = pricing.ComputeTotals(s.store.DisplayLines(), s.rates)
}

func (s *Session) checkOpenLocked() error {
	if s.closed {
		return ErrSessionClosed
	}
	return nil
}

// SetField records a user edit: the display value changes at once, the field turns
// dirty and a write is scheduled.
func (s *Session) SetField(lineID string, f entities.Field, v entities.Value) (entities.EstimateLine, error) {
	defer s.dispatch()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpenLocked(); err != nil {
		return entities.EstimateLine{}, err
	}

	changed, err := s.store.SetField(lineID, f, v)
	if err != nil {
		return entities.EstimateLine{}, err
	}
	st, _ := s.store.line(lineID)
	if !changed {
		return st.display, nil
	}

	if !st.temp {
		delay := s.engine.noteEdit(lineID, f, s.sched.Now())
		s.backupFieldLocked(lineID, f, v)
		if !st.status.NeedsAttention() {
			s.engine.arm(delay, s.onDebounce)
		}
	}
	if f.AffectsPricing() {
		s.recomputeLocked()
	}
	return st.display, nil
}

// AddLine inserts an optimistic line and schedules its creation.
func (s *Session) AddLine() (entities.EstimateLine, error) {
	defer s.dispatch()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpenLocked(); err != nil {
		return entities.EstimateLine{}, err
	}

	l := s.store.AddLine()
	s.engine.row(l.ID).create = true
	s.engine.arm(s.cfg.Debounce, s.onDebounce)
	s.recomputeLocked()
	return l, nil
}

// RemoveLine hides a line immediately and schedules its deletion. A line whose create
// was not sent yet is simply forgotten.
func (s *Session) RemoveLine(lineID string) error {
	defer s.dispatch()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpenLocked(); err != nil {
		return err
	}
	st, err := s.store.visible(lineID)
	if err != nil {
		return err
	}

	r := s.engine.row(lineID)
	if st.temp && r.inFlight == nil {
		s.store.DropLine(lineID)
		s.engine.drop(lineID)
		s.recomputeLocked()
		return nil
	}

	if err := s.store.RemoveLine(lineID); err != nil {
		return err
	}
	if st.status.NeedsAttention() {
		s.store.setStatus(st, StatusIdle)
	}
	r.del = true
	r.create = false
	r.stopRetry()
	r.backoff = nil
	s.engine.arm(s.cfg.Debounce, s.onDebounce)
	s.recomputeLocked()
	return nil
}

func (s *Session) Focus(lineID string, f entities.Field) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpenLocked(); err != nil {
		return err
	}
	return s.store.Focus(lineID, f)
}

// Blur releases focus. Snapshot values that arrived while the field was focused are not
// applied; the next snapshot brings the current server value.
func (s *Session) Blur() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Blur()
}

// DiscardChanges reverts every dirty field to the confirmed value and drops the queued
// writes for them. Pending creates and deletes go ahead.
func (s *Session) DiscardChanges() (int, error) {
	defer s.dispatch()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpenLocked(); err != nil {
		return 0, err
	}

	reverted := s.store.DiscardChanges()
	n := 0
	for lineID, fields := range reverted {
		n += len(fields)
		s.eraseBackupLocked(lineID, fields...)
	}
	for lineID, r := range s.engine.rows {
		st, ok := s.store.line(lineID)
		if !ok || st.temp {
			continue
		}
		r.queued = map[entities.Field]struct{}{}
		if r.del {
			continue
		}
		r.stopRetry()
		r.backoff = nil
		if r.inFlight == nil && st.status == StatusSyncing {
			s.store.setStatus(st, StatusIdle)
		}
		s.engine.gc(lineID)
	}
	s.recomputeLocked()
	if n > 0 {
		s.notifyLocked(LevelInfo, "", "discard", fmt.Sprintf("discarded %d unsaved change(s)", n))
	}
	return n, nil
}

// Retry clears the error or conflict state of the given lines (all lines when none are
// given) and sends their pending work immediately.
func (s *Session) Retry(ctx context.Context, lineIDs ...string) error {
	s.mu.Lock()
	if err := s.checkOpenLocked(); err != nil {
		s.mu.Unlock()
		return err
	}
	only := map[string]bool{}
	for id, st := range s.store.lines {
		if len(lineIDs) > 0 && !contains(lineIDs, id) {
			continue
		}
		if !st.status.NeedsAttention() {
			continue
		}
		s.store.setStatus(st, StatusIdle)
		r := s.engine.row(id)
		r.backoff = nil
		r.stopRetry()
		for _, f := range st.dirtyFields() {
			if !st.temp {
				r.queued[f] = struct{}{}
			}
		}
		if st.temp {
			r.create = true
		}
		if !r.idle() || len(st.dirty) > 0 {
			s.store.setStatus(st, StatusDirty)
		}
		only[id] = true
	}
	s.mu.Unlock()

	if len(only) == 0 {
		s.dispatch()
		return nil
	}
	return s.flush(ctx, only, true, false)
}

// Flush sends every queued write now, including rows waiting for a retry.
func (s *Session) Flush(ctx context.Context) error {
	return s.flush(ctx, nil, true, false)
}

// Refresh lists the lines of the estimate and merges them into the session.
func (s *Session) Refresh(ctx context.Context) error {
	defer s.dispatch()
	s.mu.Lock()
	if err := s.checkOpenLocked(); err != nil {
		s.mu.Unlock()
		return err
	}
	since := s.store.Version()
	s.mu.Unlock()

	var rates *entities.RateConfig
	if s.estimates != nil {
		est, err := s.estimates.GetByID(ctx, s.estimateID)
		if err == nil && est.ID != "" {
			rates = &est.Rates
		}
	}

	cctx, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout)
	lines, err := s.lines.List(cctx, s.estimateID)
	cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	if err != nil {
		s.notifyLocked(LevelWarning, "", "refresh", "could not refresh lines: "+err.Error())
		return err
	}
	if rates != nil {
		s.rates = *rates
	}
	s.applySnapshotLocked(lines, since)
	return nil
}

func (s *Session) applySnapshotLocked(lines []entities.EstimateLine, since uint64) {
	res := s.store.loadSnapshot(lines, since, nil)
	for _, rm := range res.Removed {
		s.engine.drop(rm.LineID)
		s.eraseLineBackupsLocked(rm.LineID)
		if len(rm.LostChanges) > 0 {
			s.notifyLocked(LevelWarning, rm.LineID, "not_found", "line was deleted remotely; its pending changes were dropped")
		}
	}
	s.recomputeLocked()
}

// Close ends the session. With CloseFlush pending writes are sent first; if some could
// not be synchronized the session still closes and ErrUnsyncedChanges is returned.
func (s *Session) Close(ctx context.Context, mode CloseMode) error {
	if !mode.Valid() {
		return ErrInvalidCloseMode
	}
	s.mu.Lock()
	if s.closed || s.draining {
		s.mu.Unlock()
		return nil
	}
	s.draining = true
	s.mu.Unlock()

	var pending int
	if mode == CloseFlush {
		s.wg.Wait()
		_ = s.flush(ctx, nil, true, true)
		s.wg.Wait()
	}

	s.mu.Lock()
	s.closed = true
	s.engine.stopAll()
	if s.refresh != nil {
		s.refresh.Stop()
		s.refresh = nil
	}
	s.cancel()
	if mode == CloseAbandon {
		s.clearBackupsLocked()
	}
	pending = s.store.PendingChangesCount()
	s.mu.Unlock()
	s.dispatch()

	log.Printf("[session][close] session_id=%s estimate_id=%s mode=%s pending=%d", s.token, s.estimateID, mode, pending)
	if mode == CloseFlush && pending > 0 {
		return fmt.Errorf("%w: %d pending", ErrUnsyncedChanges, pending)
	}
	return nil
}

func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Session) DisplayLines() []entities.EstimateLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.DisplayLines()
}

func (s *Session) HasUnsavedChanges() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.HasUnsavedChanges()
}

func (s *Session) PendingChangesCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.PendingChangesCount()
}

func (s *Session) Totals() entities.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totals
}

func (s *Session) ValidationIssues() []ValidationIssue {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.ValidationIssues()
}

// LineStatus returns the sync status of a visible line.
func (s *Session) LineStatus(lineID string) (SyncStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.store.visible(lineID)
	if err != nil {
		return "", err
	}
	return st.status, nil
}

// Status aggregates the line statuses, including lines pending deletion.
func (s *Session) Status() SyncStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statusLocked()
}

func (s *Session) statusLocked() SyncStatus {
	statuses := make([]SyncStatus, 0, len(s.store.lines))
	for _, st := range s.store.lines {
		statuses = append(statuses, st.status)
	}
	return Worst(statuses...)
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		SessionID:  s.token,
		EstimateID: s.estimateID,
		Status:     s.statusLocked(),
		Rates:      s.rates,
		Totals:     s.totals,
		Pending:    s.store.PendingChangesCount(),
		Unsaved:    s.store.HasUnsavedChanges(),
		Issues:     s.store.ValidationIssues(),
	}
	if fk, ok := s.store.Focused(); ok {
		v.Focus = &fk
	}
	for _, l := range s.store.DisplayLines() {
		st, _ := s.store.line(l.ID)
		v.Lines = append(v.Lines, LineView{
			Line:          l,
			Status:        st.status,
			DirtyFields:   st.dirtyFields(),
			Error:         st.lastErr,
			PendingCreate: st.temp,
		})
	}
	return v
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

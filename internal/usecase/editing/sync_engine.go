package editing

import (
	"sort"
	"time"

	"estimate_editor/internal/domain/entities"
	"estimate_editor/internal/usecase/interfaces"

	"github.com/cenkalti/backoff/v4"
)

type opKind int

const (
	opCreate opKind = iota + 1
	opUpdate
	opDelete
)

func (k opKind) String() string {
	switch k {
	case opCreate:
		return "create"
	case opUpdate:
		return "update"
	case opDelete:
		return "delete"
	}
	return "unknown"
}

// flight is one write handed to the line service. A row has at most one flight.
type flight struct {
	id      uint64
	session string
	kind    opKind
	lineID  string
	sent    entities.FieldSet
	payload entities.EstimateLine
}

// rowState is the write queue of one line.
type rowState struct {
	queued   map[entities.Field]struct{}
	create   bool
	del      bool
	inFlight *flight
	lastEdit time.Time
	backoff  backoff.BackOff
	retry    interfaces.ITimer
	retryAt  time.Time
}

func (r *rowState) idle() bool {
	return len(r.queued) == 0 && !r.create && !r.del && r.inFlight == nil && r.retry == nil
}

func (r *rowState) stopRetry() {
	if r.retry != nil {
		r.retry.Stop()
		r.retry = nil
	}
}

// syncEngine owns the per-row queues and the timers that drive them. Like Store it relies
// on the session lock.
type syncEngine struct {
	cfg       Config
	sched     interfaces.IScheduler
	rows      map[string]*rowState
	debounce  interfaces.ITimer
	deadline  time.Time
	armGen    uint64
	flightSeq uint64
}

func newSyncEngine(cfg Config, sched interfaces.IScheduler) *syncEngine {
	return &syncEngine{cfg: cfg, sched: sched, rows: map[string]*rowState{}}
}

func (e *syncEngine) row(lineID string) *rowState {
	r, ok := e.rows[lineID]
	if !ok {
		r = &rowState{queued: map[entities.Field]struct{}{}}
		e.rows[lineID] = r
	}
	return r
}

func (e *syncEngine) lookup(lineID string) (*rowState, bool) {
	r, ok := e.rows[lineID]
	return r, ok
}

// noteEdit queues a field of a row and returns the debounce delay the edit asks for.
// A row edited again within the active-edit window waits longer.
func (e *syncEngine) noteEdit(lineID string, f entities.Field, now time.Time) time.Duration {
	r := e.row(lineID)
	r.queued[f] = struct{}{}
	delay := e.cfg.Debounce
	if !r.lastEdit.IsZero() && now.Sub(r.lastEdit) <= e.cfg.ActiveEditWindow {
		delay = time.Duration(float64(delay) * e.cfg.ActiveEditMultiplier)
	}
	r.lastEdit = now
	return delay
}

// arm (re)schedules the debounce timer so that it fires no earlier than now+delay.
// fire receives the generation of the timer; a callback whose generation is no longer
// current belongs to a replaced timer.
func (e *syncEngine) arm(delay time.Duration, fire func(gen uint64)) {
	at := e.sched.Now().Add(delay)
	if e.debounce != nil && !at.After(e.deadline) {
		return
	}
	if e.debounce != nil {
		e.debounce.Stop()
	}
	e.armGen++
	gen := e.armGen
	e.deadline = at
	e.debounce = e.sched.Schedule(delay, func() { fire(gen) })
}

func (e *syncEngine) disarm() {
	if e.debounce != nil {
		e.debounce.Stop()
		e.debounce = nil
	}
}

// nextRetry returns the delay before the next attempt of a row, or false once the retry
// budget is spent.
func (e *syncEngine) nextRetry(r *rowState) (time.Duration, bool) {
	if r.backoff == nil {
		r.backoff = e.newBackoff()
	}
	d := r.backoff.NextBackOff()
	if d == backoff.Stop {
		return 0, false
	}
	return d, true
}

// takeDueRetries cancels the retry timers that have fallen due and returns their rows.
func (e *syncEngine) takeDueRetries(now time.Time) map[string]bool {
	due := map[string]bool{}
	for id, r := range e.rows {
		if r.retry == nil || r.retryAt.After(now) {
			continue
		}
		r.stopRetry()
		due[id] = true
	}
	return due
}

func (e *syncEngine) newBackoff() backoff.BackOff {
	if e.cfg.MaxRetries <= 0 {
		return &backoff.StopBackOff{}
	}
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = e.cfg.RetryInitial
	b.MaxInterval = e.cfg.RetryMax
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0
	b.Reset()
	return backoff.WithMaxRetries(b, uint64(e.cfg.MaxRetries))
}

func (e *syncEngine) newFlight(session string, kind opKind, lineID string) *flight {
	e.flightSeq++
	return &flight{id: e.flightSeq, session: session, kind: kind, lineID: lineID}
}

func (e *syncEngine) remap(oldID, newID string) {
	r, ok := e.rows[oldID]
	if !ok {
		return
	}
	delete(e.rows, oldID)
	e.rows[newID] = r
	if r.inFlight != nil {
		r.inFlight.lineID = newID
	}
}

func (e *syncEngine) drop(lineID string) {
	if r, ok := e.rows[lineID]; ok {
		r.stopRetry()
		delete(e.rows, lineID)
	}
}

func (e *syncEngine) gc(lineID string) {
	if r, ok := e.rows[lineID]; ok && r.idle() {
		delete(e.rows, lineID)
	}
}

func (e *syncEngine) stopAll() {
	e.disarm()
	for _, r := range e.rows {
		r.stopRetry()
	}
}

// orderedRows returns the ids of rows with a queue, ordered like the display set.
func (e *syncEngine) orderedRows(store *Store) []string {
	ids := make([]string, 0, len(e.rows))
	for id := range e.rows {
		ids = append(ids, id)
	}
	seq := func(id string) int {
		if st, ok := store.line(id); ok {
			return st.display.SequenceNumber
		}
		return 0
	}
	sort.Slice(ids, func(i, j int) bool {
		si, sj := seq(ids[i]), seq(ids[j])
		if si == sj {
			return ids[i] < ids[j]
		}
		return si < sj
	})
	return ids
}

// chunk splits update flights into batches bounded by row and field count.
func (e *syncEngine) chunk(updates []*flight) [][]*flight {
	var batches [][]*flight
	var cur []*flight
	fields := 0
	for _, f := range updates {
		if len(cur) > 0 && (len(cur) >= e.cfg.MaxBatchRows || fields+len(f.sent) > e.cfg.MaxBatchFields) {
			batches = append(batches, cur)
			cur, fields = nil, 0
		}
		cur = append(cur, f)
		fields += len(f.sent)
	}
	if len(cur) > 0 {
		batches = append(batches, cur)
	}
	return batches
}

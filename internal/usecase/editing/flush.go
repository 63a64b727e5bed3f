package editing

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"estimate_editor/internal/domain/entities"
	"estimate_editor/internal/domain/lineerr"
	"estimate_editor/internal/domain/pricing"
)

var errMissingResult = errors.New("no result for line in bulk response")

type flushOutcome struct {
	written bool
	refresh bool
	retries []retryNote
}

// retryNote is a row of a batch that was scheduled for another attempt.
type retryNote struct {
	lineID string
	kind   lineerr.Kind
	delay  time.Duration
	err    error
}

func (s *Session) onDebounce(gen uint64) {
	s.mu.Lock()
	if s.engine.armGen != gen {
		s.mu.Unlock()
		return
	}
	s.engine.debounce = nil
	stop := s.closed || s.draining
	s.mu.Unlock()
	if stop {
		return
	}
	_ = s.flush(s.ctx, nil, false, false)
}

// onRetry sends every row whose retry has fallen due, so that rows of a failed batch go
// out together again instead of one request per row.
func (s *Session) onRetry(lineID string, r *rowState) {
	s.mu.Lock()
	cur, ok := s.engine.lookup(lineID)
	if s.closed || s.draining || !ok || cur != r || r.retry == nil {
		s.mu.Unlock()
		return
	}
	r.stopRetry()
	due := s.engine.takeDueRetries(s.sched.Now())
	due[lineID] = true
	s.mu.Unlock()
	_ = s.flush(s.ctx, due, false, false)
}

func (s *Session) scheduleRefreshLocked() {
	if s.cfg.RefreshInterval <= 0 {
		return
	}
	s.refresh = s.sched.Schedule(s.cfg.RefreshInterval, s.onRefresh)
}

func (s *Session) onRefresh() {
	s.mu.Lock()
	stop := s.closed || s.draining
	s.mu.Unlock()
	if stop {
		return
	}
	_ = s.Refresh(s.ctx)

	s.mu.Lock()
	if !s.closed && !s.draining {
		s.scheduleRefreshLocked()
	}
	s.mu.Unlock()
}

// flush sends the queued work of the selected rows (all rows when only is nil). Rows
// waiting for a retry are included only when force is set. closing lets Close flush
// while the session refuses any other work.
func (s *Session) flush(ctx context.Context, only map[string]bool, force, closing bool) error {
	defer s.dispatch()
	s.mu.Lock()
	if s.closed || (s.draining && !closing) {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	creates, batches, deletes := s.planLocked(only, force)
	if len(creates)+len(batches)+len(deletes) == 0 {
		s.mu.Unlock()
		return nil
	}
	s.wg.Add(1)
	s.mu.Unlock()
	defer s.wg.Done()

	out := &flushOutcome{}
	for _, f := range creates {
		s.sendCreate(ctx, f, out)
	}
	for _, b := range batches {
		s.sendBatch(ctx, b, out)
	}
	for _, f := range deletes {
		s.sendDelete(ctx, f, out)
	}

	if out.refresh {
		_ = s.Refresh(ctx)
	}
	if out.written {
		s.recordTotals(ctx)
	}
	return nil
}

// planLocked turns queued work into flights. A row with a flight outstanding, or one
// waiting for the user after an error or conflict, is left out.
func (s *Session) planLocked(only map[string]bool, force bool) (creates []*flight, batches [][]*flight, deletes []*flight) {
	var updates []*flight
	for _, id := range s.engine.orderedRows(s.store) {
		if only != nil && !only[id] {
			continue
		}
		r := s.engine.rows[id]
		st, ok := s.store.line(id)
		if !ok {
			s.engine.drop(id)
			continue
		}
		if r.inFlight != nil || st.status.NeedsAttention() {
			continue
		}
		if r.retry != nil {
			if !force {
				continue
			}
			r.stopRetry()
		}

		var f *flight
		switch {
		case r.create:
			f = s.engine.newFlight(s.token, opCreate, id)
			f.payload = st.display
			f.payload.ID = ""
			r.create = false
			s.store.beginCreate()
			creates = append(creates, f)
		case r.del:
			if st.temp {
				continue
			}
			f = s.engine.newFlight(s.token, opDelete, id)
			r.del = false
			deletes = append(deletes, f)
		case len(r.queued) > 0:
			f = s.engine.newFlight(s.token, opUpdate, id)
			f.sent = entities.FieldSet{}
			for fld := range r.queued {
				f.sent[fld] = st.display.Get(fld)
			}
			r.queued = map[entities.Field]struct{}{}
			updates = append(updates, f)
		default:
			s.engine.gc(id)
			continue
		}
		r.inFlight = f
		s.store.setStatus(st, StatusSyncing)
	}
	if only == nil {
		s.engine.disarm()
	}
	return creates, s.engine.chunk(updates), deletes
}

// acceptLocked reports whether a write result still belongs to this session and to the
// outstanding flight of its row. Late or duplicate results are dropped.
func (s *Session) acceptLocked(f *flight) (*rowState, bool) {
	if s.closed || f.session != s.token {
		return nil, false
	}
	r, ok := s.engine.lookup(f.lineID)
	if !ok || r.inFlight != f {
		return nil, false
	}
	return r, true
}

func (s *Session) sendCreate(ctx context.Context, f *flight, out *flushOutcome) {
	cctx, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout)
	created, err := s.lines.Create(cctx, f.payload)
	cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.endCreate()
	r, ok := s.acceptLocked(f)
	if !ok {
		log.Printf("[session][sync] stale create result dropped session_id=%s line_id=%s", f.session, f.lineID)
		return
	}
	r.inFlight = nil
	tempID := f.lineID
	defer s.recomputeLocked()

	if err == nil {
		st, ok := s.store.Remap(tempID, f.payload, created)
		if !ok {
			s.engine.drop(tempID)
			return
		}
		s.engine.remap(tempID, created.ID)
		r.backoff = nil
		for _, fld := range st.dirtyFields() {
			r.queued[fld] = struct{}{}
		}
		s.backupDirtyLocked(created.ID)
		s.finishRowLocked(created.ID, st, r)
		out.written = true
		log.Printf("[session][sync] line created estimate_id=%s temp_id=%s line_id=%s seq=%d", s.estimateID, tempID, created.ID, created.SequenceNumber)
		return
	}

	st, ok := s.store.line(tempID)
	if !ok {
		s.engine.drop(tempID)
		return
	}
	kind := lineerr.Classify(err)
	switch {
	case kind == lineerr.KindValidation:
		sent := entities.FieldSet{}
		for _, fld := range lineerr.RejectedFields(err) {
			sent[fld] = f.payload.Get(fld)
		}
		reverted := s.store.RevertUnchanged(tempID, sent)
		r.create = true
		if len(sent) > 0 && len(reverted) == 0 {
			s.resendLocked(st, tempID, kind, err)
			return
		}
		s.markFailedLocked(st, StatusConflict, err)
		s.notifyLocked(LevelWarning, tempID, kind.String(), "new line rejected: "+err.Error())
	case kind.Retryable():
		r.create = true
		if kind == lineerr.KindConflict {
			out.refresh = true
		}
		if d, ok := s.scheduleRetryLocked(tempID, r); ok {
			s.notifyRetryLocked(retryNote{lineID: tempID, kind: kind, delay: d, err: err})
			return
		}
		s.markFailedLocked(st, StatusError, err)
		s.notifyLocked(LevelError, tempID, kind.String(), "new line could not be saved: "+err.Error())
	default:
		s.store.DropLine(tempID)
		s.engine.drop(tempID)
		s.notifyLocked(LevelError, tempID, kind.String(), "new line discarded: "+err.Error())
	}
}

func (s *Session) sendBatch(ctx context.Context, batch []*flight, out *flushOutcome) {
	items := make([]entities.LineUpdate, 0, len(batch))
	fields := 0
	for _, f := range batch {
		items = append(items, entities.LineUpdate{LineID: f.lineID, Fields: f.sent.Clone()})
		fields += len(f.sent)
	}
	log.Printf("[session][sync] batch sent estimate_id=%s rows=%d fields=%d", s.estimateID, len(items), fields)

	cctx, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout)
	results, err := s.lines.BulkUpdate(cctx, s.estimateID, items)
	cancel()
	if err != nil {
		log.Printf("[session][sync] batch failed estimate_id=%s rows=%d err=%v", s.estimateID, len(items), err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	out.retries = nil
	byID := make(map[string]entities.LineUpdateResult, len(results))
	for _, res := range results {
		if _, dup := byID[res.LineID]; !dup {
			byID[res.LineID] = res
		}
	}
	for _, f := range batch {
		r, ok := s.acceptLocked(f)
		if !ok {
			continue
		}
		itemErr := err
		var server entities.EstimateLine
		if itemErr == nil {
			res, found := byID[f.lineID]
			if !found {
				itemErr = lineerr.Network(errMissingResult)
			} else {
				itemErr, server = res.Err, res.Line
			}
		}
		s.applyUpdateLocked(f, r, server, itemErr, out)
	}
	s.notifyRetryLocked(out.retries...)
	out.retries = nil
	s.recomputeLocked()
}

func (s *Session) applyUpdateLocked(f *flight, r *rowState, server entities.EstimateLine, err error, out *flushOutcome) {
	r.inFlight = nil
	st, ok := s.store.line(f.lineID)
	if !ok {
		s.engine.drop(f.lineID)
		return
	}

	kind := lineerr.Classify(err)
	switch kind {
	case lineerr.KindNone:
		cleared := s.store.Confirm(f.lineID, f.sent, server)
		s.eraseBackupLocked(f.lineID, cleared...)
		r.backoff = nil
		out.written = true
		s.finishRowLocked(f.lineID, st, r)
	case lineerr.KindValidation:
		rejected := entities.FieldSet{}
		for _, fld := range rejectedOf(err, f.sent) {
			rejected[fld] = f.sent[fld]
		}
		reverted := s.store.RevertUnchanged(f.lineID, rejected)
		s.eraseBackupLocked(f.lineID, reverted...)
		s.requeueLocked(st, r, f.sent)
		r.backoff = nil
		if len(reverted) == 0 {
			s.resendLocked(st, f.lineID, kind, err)
			return
		}
		s.markFailedLocked(st, StatusConflict, err)
		s.notifyLocked(LevelWarning, f.lineID, kind.String(), fmt.Sprintf("reverted %s: %v", joinFields(reverted), err))
	case lineerr.KindNotFound:
		s.store.DropLine(f.lineID)
		s.engine.drop(f.lineID)
		s.eraseLineBackupsLocked(f.lineID)
		s.notifyLocked(LevelWarning, f.lineID, kind.String(), "line was deleted remotely; its pending changes were dropped")
	case lineerr.KindPermission:
		s.requeueLocked(st, r, f.sent)
		r.backoff = nil
		s.markFailedLocked(st, StatusError, err)
		s.notifyLocked(LevelError, f.lineID, kind.String(), "changes not saved: "+err.Error())
	default:
		s.requeueLocked(st, r, f.sent)
		if kind == lineerr.KindConflict {
			out.refresh = true
		}
		if d, ok := s.scheduleRetryLocked(f.lineID, r); ok {
			out.retries = append(out.retries, retryNote{lineID: f.lineID, kind: kind, delay: d, err: err})
			return
		}
		status := StatusError
		if kind == lineerr.KindConflict {
			status = StatusConflict
		}
		s.markFailedLocked(st, status, err)
		s.notifyLocked(LevelError, f.lineID, kind.String(), "changes not saved after retries: "+err.Error())
	}
}

func (s *Session) sendDelete(ctx context.Context, f *flight, out *flushOutcome) {
	cctx, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout)
	err := s.lines.Delete(cctx, s.estimateID, f.lineID)
	cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.acceptLocked(f)
	if !ok {
		return
	}
	r.inFlight = nil
	st, ok := s.store.line(f.lineID)
	if !ok {
		s.engine.drop(f.lineID)
		return
	}
	defer s.recomputeLocked()

	kind := lineerr.Classify(err)
	if kind == lineerr.KindNone || kind == lineerr.KindNotFound {
		s.store.DropLine(f.lineID)
		s.engine.drop(f.lineID)
		s.eraseLineBackupsLocked(f.lineID)
		out.written = true
		log.Printf("[session][sync] line deleted estimate_id=%s line_id=%s", s.estimateID, f.lineID)
		return
	}
	if kind.Retryable() {
		r.del = true
		if d, ok := s.scheduleRetryLocked(f.lineID, r); ok {
			s.notifyRetryLocked(retryNote{lineID: f.lineID, kind: kind, delay: d, err: err})
			return
		}
		r.del = false
	}
	s.store.RestoreLine(f.lineID)
	s.markFailedLocked(st, StatusError, err)
	s.notifyLocked(LevelError, f.lineID, kind.String(), "line could not be deleted and was restored: "+err.Error())
}

// scheduleRetryLocked arms the backoff timer of a row and returns its delay. It reports
// false once the retry budget is spent.
func (s *Session) scheduleRetryLocked(lineID string, r *rowState) (time.Duration, bool) {
	d, ok := s.engine.nextRetry(r)
	if !ok {
		r.backoff = nil
		return 0, false
	}
	r.retryAt = s.sched.Now().Add(d)
	r.retry = s.sched.Schedule(d, func() { s.onRetry(lineID, r) })
	return d, true
}

// notifyRetryLocked emits one warning per error kind for rows scheduled together.
func (s *Session) notifyRetryLocked(notes ...retryNote) {
	var order []lineerr.Kind
	byKind := map[lineerr.Kind][]retryNote{}
	for _, n := range notes {
		if _, ok := byKind[n.kind]; !ok {
			order = append(order, n.kind)
		}
		byKind[n.kind] = append(byKind[n.kind], n)
	}
	for _, kind := range order {
		group := byKind[kind]
		first := group[0]
		if len(group) == 1 {
			s.notifyLocked(LevelWarning, first.lineID, kind.String(), fmt.Sprintf("write failed, retrying in %s: %v", first.delay, first.err))
			continue
		}
		s.notifyLocked(LevelWarning, "", kind.String(), fmt.Sprintf("write of %d lines failed, retrying in %s: %v", len(group), first.delay, first.err))
	}
}

// resendLocked handles a rejection whose every rejected value was already replaced by a
// newer edit. The newer values stay dirty and go out with the next write.
func (s *Session) resendLocked(st *lineState, lineID string, kind lineerr.Kind, err error) {
	s.store.setStatus(st, StatusDirty)
	s.engine.arm(s.cfg.Debounce, s.onDebounce)
	log.Printf("[session][sync] rejected value already replaced estimate_id=%s line_id=%s err=%v", s.estimateID, lineID, err)
	s.notifyLocked(LevelInfo, lineID, kind.String(), "previous value rejected, sending the newer edit: "+err.Error())
}

// finishRowLocked settles the status of a row after a successful write.
func (s *Session) finishRowLocked(lineID string, st *lineState, r *rowState) {
	if len(r.queued) > 0 || r.del || r.create {
		s.store.setStatus(st, StatusDirty)
		s.engine.arm(s.cfg.Debounce, s.onDebounce)
		return
	}
	s.store.setStatus(st, StatusIdle)
	s.engine.gc(lineID)
}

func (s *Session) requeueLocked(st *lineState, r *rowState, sent entities.FieldSet) {
	for fld := range sent {
		if st.isDirty(fld) {
			r.queued[fld] = struct{}{}
		}
	}
}

func (s *Session) markFailedLocked(st *lineState, status SyncStatus, err error) {
	s.store.setStatus(st, status)
	if err != nil {
		st.lastErr = err.Error()
	}
}

func (s *Session) recordTotals(ctx context.Context) {
	if s.estimates == nil {
		return
	}
	s.mu.Lock()
	totals := pricing.ComputeTotals(s.store.ConfirmedLines(), s.rates)
	s.mu.Unlock()
	if err := s.estimates.RecordTotals(ctx, s.estimateID, totals); err != nil {
		log.Printf("[session][sync] record totals failed estimate_id=%s err=%v", s.estimateID, err)
	}
}

// rejectedOf lists the sent fields named by a validation error. When the error names
// none of them, every sent field counts as rejected.
func rejectedOf(err error, sent entities.FieldSet) []entities.Field {
	var out []entities.Field
	for _, f := range lineerr.RejectedFields(err) {
		if _, ok := sent[f]; ok {
			out = append(out, f)
		}
	}
	if len(out) > 0 {
		return out
	}
	for f := range sent {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func joinFields(fields []entities.Field) string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

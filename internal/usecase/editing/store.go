package editing

import (
	"fmt"
	"log"
	"sort"

	"estimate_editor/internal/domain/entities"
)

// FocusKey identifies the field the user is currently editing.
type FocusKey struct {
	LineID string         `json:"line_id"`
	Field  entities.Field `json:"field"`
}

type lineState struct {
	confirmed entities.EstimateLine
	display   entities.EstimateLine
	dirty     map[entities.Field]struct{}
	status    SyncStatus
	lastErr   string
	temp      bool
	removed   bool
	ackedAt   uint64
}

func newLineState(l entities.EstimateLine) *lineState {
	return &lineState{confirmed: l, display: l, dirty: map[entities.Field]struct{}{}, status: StatusIdle}
}

func (st *lineState) isDirty(f entities.Field) bool {
	_, ok := st.dirty[f]
	return ok
}

func (st *lineState) dirtyFields() []entities.Field {
	out := make([]entities.Field, 0, len(st.dirty))
	for _, f := range entities.Fields() {
		if st.isDirty(f) {
			out = append(out, f)
		}
	}
	return out
}

// SnapshotResult reports what a snapshot merge changed.
type SnapshotResult struct {
	Added    []string
	Removed  []RemovedLine
	Restored map[string][]entities.Field
	Skipped  []string
}

// RemovedLine is a line that disappeared from the remote service.
type RemovedLine struct {
	LineID      string
	LostChanges []entities.Field
}

// ValidationIssue is a reportable inconsistency of the display set.
type ValidationIssue struct {
	SequenceNumber int      `json:"sequence_number"`
	LineIDs        []string `json:"line_ids"`
	Message        string   `json:"message"`
}

// Store holds the display line set of one estimate: the confirmed server snapshot
// merged with local, not yet synchronized edits. It is not safe for concurrent use;
// the owning Session serializes access.
type Store struct {
	estimateID string
	lines      map[string]*lineState
	seqCursor  int
	focus      *FocusKey
	version    uint64
	creating   int
	newTempID  func() string
}

func NewStore(estimateID string, newTempID func() string) *Store {
	return &Store{
		estimateID: estimateID,
		lines:      map[string]*lineState{},
		newTempID:  newTempID,
	}
}

func (s *Store) EstimateID() string { return s.estimateID }

func (s *Store) line(id string) (*lineState, bool) {
	st, ok := s.lines[id]
	return st, ok
}

func (s *Store) visible(id string) (*lineState, error) {
	st, ok := s.lines[id]
	if !ok || st.removed {
		return nil, fmt.Errorf("%w: %s", ErrLineNotFound, id)
	}
	return st, nil
}

func (s *Store) setStatus(st *lineState, to SyncStatus) {
	if !CanTransition(st.status, to) {
		log.Printf("[session][store] ignored status transition line_id=%s from=%s to=%s", st.display.ID, st.status, to)
		return
	}
	st.status = to
	if !to.NeedsAttention() {
		st.lastErr = ""
	}
}

// Version increases with every acknowledgement applied to the store.
func (s *Store) Version() uint64 { return s.version }

// LoadSnapshot merges a fresh server snapshot into the store.
func (s *Store) LoadSnapshot(lines []entities.EstimateLine) SnapshotResult {
	return s.loadSnapshot(lines, s.version, nil)
}

// beginCreate and endCreate bracket a create request. While one is outstanding the
// server may already list the new line under an id the store does not know yet.
func (s *Store) beginCreate() { s.creating++ }

func (s *Store) endCreate() {
	if s.creating > 0 {
		s.creating--
	}
}

// loadSnapshot merges a snapshot requested when the store was at version since. Lines
// acknowledged after that point are left alone, the snapshot being older than them.
// Unknown lines are held back while a create is outstanding; they show up with the next
// snapshot once the create has been remapped.
func (s *Store) loadSnapshot(lines []entities.EstimateLine, since uint64, backup func(lineID string, f entities.Field) (entities.Value, bool)) SnapshotResult {
	res := SnapshotResult{Restored: map[string][]entities.Field{}}
	seen := make(map[string]bool, len(lines))

	for _, in := range lines {
		if in.EstimateID != "" && in.EstimateID != s.estimateID {
			log.Printf("[session][store] snapshot line of another estimate ignored line_id=%s estimate_id=%s", in.ID, in.EstimateID)
			continue
		}
		in.EstimateID = s.estimateID
		seen[in.ID] = true

		st, ok := s.lines[in.ID]
		if !ok && s.creating > 0 {
			res.Skipped = append(res.Skipped, in.ID)
			continue
		}
		if !ok {
			st = newLineState(in)
			s.lines[in.ID] = st
			res.Added = append(res.Added, in.ID)
			if backup == nil {
				continue
			}
		} else if st.ackedAt > since {
			res.Skipped = append(res.Skipped, in.ID)
			continue
		}

		merged := Resolve(st.display, in, func(f entities.Field) FieldState {
			fs := FieldState{
				Focused:     s.focus != nil && s.focus.LineID == in.ID && s.focus.Field == f,
				Outstanding: st.isDirty(f),
			}
			if backup != nil && !fs.Focused && !fs.Outstanding {
				fs.Backup, fs.HasBackup = backup(in.ID, f)
			}
			return fs
		})
		st.confirmed = in
		st.display = merged.Line
		for _, f := range merged.Restored {
			st.dirty[f] = struct{}{}
		}
		if len(merged.Restored) > 0 {
			res.Restored[in.ID] = merged.Restored
			if st.status == StatusIdle {
				s.setStatus(st, StatusDirty)
			}
		}
	}

	for id, st := range s.lines {
		if seen[id] || st.temp || st.ackedAt > since {
			continue
		}
		res.Removed = append(res.Removed, RemovedLine{LineID: id, LostChanges: st.dirtyFields()})
		delete(s.lines, id)
		if s.focus != nil && s.focus.LineID == id {
			s.focus = nil
		}
	}
	sort.Slice(res.Removed, func(i, j int) bool { return res.Removed[i].LineID < res.Removed[j].LineID })
	return res
}

// SetField records a local edit. Setting a field to its current display value is a no-op
// and reports false.
func (s *Store) SetField(lineID string, f entities.Field, v entities.Value) (bool, error) {
	st, err := s.visible(lineID)
	if err != nil {
		return false, err
	}
	if st.display.Get(f).Equal(v) {
		return false, nil
	}
	if err := st.display.Set(f, v); err != nil {
		return false, err
	}
	st.dirty[f] = struct{}{}
	if st.status == StatusIdle {
		s.setStatus(st, StatusDirty)
	}
	return true, nil
}

// AddLine inserts an optimistic blank line with a temporary id and the next free
// sequence number.
func (s *Store) AddLine() entities.EstimateLine {
	seq := s.nextSequence()
	id := entities.TemporaryID(s.newTempID())
	l := entities.NewBlankLine(id, s.estimateID, seq)
	st := newLineState(l)
	st.temp = true
	st.status = StatusDirty
	s.lines[id] = st
	return l
}

// nextSequence allocates from a monotonic cursor so that rapid adds never reuse a
// number, even before the server has assigned any of them.
func (s *Store) nextSequence() int {
	highest := s.seqCursor
	for _, st := range s.lines {
		if st.display.SequenceNumber > highest {
			highest = st.display.SequenceNumber
		}
		if st.confirmed.SequenceNumber > highest {
			highest = st.confirmed.SequenceNumber
		}
	}
	s.seqCursor = highest + 1
	return s.seqCursor
}

// RemoveLine hides a line from the display set until the delete is confirmed or
// RestoreLine brings it back.
func (s *Store) RemoveLine(lineID string) error {
	st, err := s.visible(lineID)
	if err != nil {
		return err
	}
	st.removed = true
	if s.focus != nil && s.focus.LineID == lineID {
		s.focus = nil
	}
	return nil
}

func (s *Store) RestoreLine(lineID string) {
	if st, ok := s.lines[lineID]; ok {
		st.removed = false
	}
}

// DropLine forgets a line entirely.
func (s *Store) DropLine(lineID string) {
	delete(s.lines, lineID)
	if s.focus != nil && s.focus.LineID == lineID {
		s.focus = nil
	}
}

// DiscardChanges reverts every dirty field of server-known lines to the confirmed value
// and clears error and conflict markers. Pending creates and deletes are not affected.
// It returns the reverted fields per line.
func (s *Store) DiscardChanges() map[string][]entities.Field {
	out := map[string][]entities.Field{}
	for id, st := range s.lines {
		if st.temp {
			continue
		}
		fields := st.dirtyFields()
		for _, f := range fields {
			_ = st.display.Set(f, st.confirmed.Get(f))
			delete(st.dirty, f)
		}
		if len(fields) > 0 {
			out[id] = fields
		}
		if st.status != StatusSyncing {
			s.setStatus(st, StatusIdle)
		}
	}
	return out
}

// Confirm applies an acknowledged write. Only the sent fields are taken from the server
// line. A field edited again while the write was in flight stays dirty. Applying the
// same acknowledgement twice leaves the store unchanged.
func (s *Store) Confirm(lineID string, sent entities.FieldSet, server entities.EstimateLine) []entities.Field {
	st, ok := s.lines[lineID]
	if !ok {
		return nil
	}
	var cleared []entities.Field
	for _, f := range entities.Fields() {
		v, ok := sent[f]
		if !ok {
			continue
		}
		sv := server.Get(f)
		_ = st.confirmed.Set(f, sv)
		switch {
		case !st.isDirty(f):
			_ = st.display.Set(f, sv)
		case st.display.Get(f).Equal(v):
			_ = st.display.Set(f, sv)
			delete(st.dirty, f)
			cleared = append(cleared, f)
		}
	}
	st.confirmed.Subtotals = server.Subtotals
	st.display.Subtotals = server.Subtotals
	st.confirmed.UpdatedAt = server.UpdatedAt
	st.display.UpdatedAt = server.UpdatedAt
	s.version++
	st.ackedAt = s.version
	return cleared
}

// Remap re-addresses a temporary line to its server-assigned id, carrying forward edits
// made after the create was sent.
func (s *Store) Remap(tempID string, sent entities.EstimateLine, created entities.EstimateLine) (*lineState, bool) {
	st, ok := s.lines[tempID]
	if !ok {
		return nil, false
	}
	delete(s.lines, tempID)

	fields := entities.FieldSet{}
	for _, f := range entities.Fields() {
		fields[f] = sent.Get(f)
		st.dirty[f] = struct{}{}
	}
	st.temp = false
	st.confirmed = created
	st.confirmed.EstimateID = s.estimateID
	st.display.ID = created.ID
	s.lines[created.ID] = st
	s.Confirm(created.ID, fields, created)

	if s.focus != nil && s.focus.LineID == tempID {
		s.focus.LineID = created.ID
	}
	return st, true
}

// RevertUnchanged puts the confirmed value back into the rejected fields that still show
// the rejected value. A field edited again since keeps the newer value and stays dirty.
// It returns the reverted fields.
func (s *Store) RevertUnchanged(lineID string, rejected entities.FieldSet) []entities.Field {
	st, ok := s.lines[lineID]
	if !ok {
		return nil
	}
	var out []entities.Field
	for _, f := range entities.Fields() {
		v, ok := rejected[f]
		if !ok || !st.display.Get(f).Equal(v) {
			continue
		}
		_ = st.display.Set(f, st.confirmed.Get(f))
		delete(st.dirty, f)
		out = append(out, f)
	}
	return out
}

func (s *Store) Focus(lineID string, f entities.Field) error {
	if _, err := s.visible(lineID); err != nil {
		return err
	}
	if _, ok := f.Spec(); !ok {
		return fmt.Errorf("%w: %q", entities.ErrUnknownField, f)
	}
	s.focus = &FocusKey{LineID: lineID, Field: f}
	return nil
}

func (s *Store) Blur() { s.focus = nil }

func (s *Store) Focused() (FocusKey, bool) {
	if s.focus == nil {
		return FocusKey{}, false
	}
	return *s.focus, true
}

// DisplayLines returns the effective view ordered by sequence number.
func (s *Store) DisplayLines() []entities.EstimateLine {
	out := make([]entities.EstimateLine, 0, len(s.lines))
	for _, st := range s.lines {
		if !st.removed {
			out = append(out, st.display)
		}
	}
	sortLines(out)
	return out
}

// ConfirmedLines returns the server-known lines as last confirmed.
func (s *Store) ConfirmedLines() []entities.EstimateLine {
	out := make([]entities.EstimateLine, 0, len(s.lines))
	for _, st := range s.lines {
		if !st.temp {
			out = append(out, st.confirmed)
		}
	}
	sortLines(out)
	return out
}

func (s *Store) HasUnsavedChanges() bool {
	return s.PendingChangesCount() > 0
}

// PendingChangesCount counts dirty fields plus pending creates and deletes.
func (s *Store) PendingChangesCount() int {
	n := 0
	for _, st := range s.lines {
		if st.temp || st.removed {
			n++
			continue
		}
		n += len(st.dirty)
	}
	return n
}

// ValidationIssues reports duplicate sequence numbers in the display set.
func (s *Store) ValidationIssues() []ValidationIssue {
	bySeq := map[int][]string{}
	for _, l := range s.DisplayLines() {
		bySeq[l.SequenceNumber] = append(bySeq[l.SequenceNumber], l.ID)
	}
	var out []ValidationIssue
	for seq, ids := range bySeq {
		if len(ids) < 2 {
			continue
		}
		out = append(out, ValidationIssue{
			SequenceNumber: seq,
			LineIDs:        ids,
			Message:        fmt.Sprintf("sequence number %d is used by %d lines", seq, len(ids)),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SequenceNumber < out[j].SequenceNumber })
	return out
}

func sortLines(lines []entities.EstimateLine) {
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].SequenceNumber == lines[j].SequenceNumber {
			return lines[i].ID < lines[j].ID
		}
		return lines[i].SequenceNumber < lines[j].SequenceNumber
	})
}

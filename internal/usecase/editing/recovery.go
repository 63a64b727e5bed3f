package editing

import (
	"fmt"
	"log"

	"estimate_editor/internal/domain/entities"
	"estimate_editor/internal/usecase/interfaces"
)

// Backup writes are best effort: failures are logged and never fail an edit.

func (s *Session) backupKey(lineID string, f entities.Field) interfaces.BackupKey {
	return interfaces.BackupKey{EstimateID: s.estimateID, LineID: lineID, Field: f}
}

func (s *Session) backupFieldLocked(lineID string, f entities.Field, v entities.Value) {
	if s.backups == nil || entities.IsTemporaryID(lineID) {
		return
	}
	if err := s.backups.Put(s.backupKey(lineID, f), v, s.sched.Now()); err != nil {
		log.Printf("[session][backup] put failed estimate_id=%s line_id=%s field=%s err=%v", s.estimateID, lineID, f, err)
	}
}

// backupDirtyLocked saves every dirty field of a line, used once a temporary line gets
// its permanent id.
func (s *Session) backupDirtyLocked(lineID string) {
	st, ok := s.store.line(lineID)
	if !ok {
		return
	}
	for _, f := range st.dirtyFields() {
		s.backupFieldLocked(lineID, f, st.display.Get(f))
	}
}

func (s *Session) eraseBackupLocked(lineID string, fields ...entities.Field) {
	if s.backups == nil || entities.IsTemporaryID(lineID) {
		return
	}
	for _, f := range fields {
		if err := s.backups.Delete(s.backupKey(lineID, f)); err != nil {
			log.Printf("[session][backup] delete failed estimate_id=%s line_id=%s field=%s err=%v", s.estimateID, lineID, f, err)
		}
	}
}

func (s *Session) eraseLineBackupsLocked(lineID string) {
	s.eraseBackupLocked(lineID, entities.Fields()...)
}

func (s *Session) clearBackupsLocked() {
	if s.backups == nil {
		return
	}
	if err := s.backups.ClearEstimate(s.estimateID); err != nil {
		log.Printf("[session][backup] clear failed estimate_id=%s err=%v", s.estimateID, err)
	}
}

// recoverLocked loads the first snapshot of the session and restores edits that were
// backed up by an earlier session of the same estimate but never acknowledged.
func (s *Session) recoverLocked(lines []entities.EstimateLine) {
	saved := map[string]map[entities.Field]entities.Value{}
	if s.backups != nil {
		entries, err := s.backups.ListEstimate(s.estimateID, s.sched.Now())
		if err != nil {
			log.Printf("[session][backup] list failed estimate_id=%s err=%v", s.estimateID, err)
		}
		for _, e := range entries {
			if saved[e.Key.LineID] == nil {
				saved[e.Key.LineID] = map[entities.Field]entities.Value{}
			}
			saved[e.Key.LineID][e.Key.Field] = e.Value
		}
	}

	var lookup func(string, entities.Field) (entities.Value, bool)
	if len(saved) > 0 {
		lookup = func(lineID string, f entities.Field) (entities.Value, bool) {
			v, ok := saved[lineID][f]
			return v, ok
		}
	}
	res := s.store.loadSnapshot(lines, s.store.Version(), lookup)

	restored := 0
	for lineID, fields := range saved {
		keep := map[entities.Field]bool{}
		for _, f := range res.Restored[lineID] {
			keep[f] = true
		}
		for f := range fields {
			if !keep[f] {
				s.eraseBackupLocked(lineID, f)
			}
		}
	}
	for lineID, fields := range res.Restored {
		for _, f := range fields {
			s.engine.row(lineID).queued[f] = struct{}{}
			restored++
		}
	}
	if restored > 0 {
		s.engine.arm(s.cfg.Debounce, s.onDebounce)
		s.notifyLocked(LevelInfo, "", "recovery", fmt.Sprintf("restored %d unsaved change(s) from backup", restored))
	}
}

package jobs

import (
	"fmt"
	"log"
	"time"

	"estimate_editor/internal/usecase/interfaces"

	"github.com/robfig/cron/v3"
)

// BackupPruneJob erases expired field-edit backups.
type BackupPruneJob struct {
	store interfaces.IBackupStore
	now   func() time.Time
}

var _ cron.Job = (*BackupPruneJob)(nil)

func NewBackupPruneJob(store interfaces.IBackupStore) *BackupPruneJob {
	return &BackupPruneJob{store: store, now: time.Now}
}

func (j *BackupPruneJob) Run() {
	removed, err := j.store.Prune(j.now())
	if err != nil {
		log.Printf("[jobs][backup_prune] prune failed err=%v", err)
		return
	}
	if removed > 0 {
		log.Printf("[jobs][backup_prune] removed=%d", removed)
	}
}

// StartBackupPrune schedules the prune job and starts the scheduler. schedule accepts
// standard 5-field expressions and descriptors such as "@every 15m". The caller stops
// the returned scheduler on shutdown.
func StartBackupPrune(store interfaces.IBackupStore, schedule string) (*cron.Cron, error) {
	sched, err := cron.ParseStandard(schedule)
	if err != nil {
		return nil, fmt.Errorf("jobs: invalid prune schedule %q: %w", schedule, err)
	}
	c := cron.New()
	c.Schedule(sched, NewBackupPruneJob(store))
	c.Start()
	log.Printf("[jobs][backup_prune] scheduled schedule=%q", schedule)
	return c, nil
}

package interfaces

import (
	"time"

	"estimate_editor/internal/domain/entities"
)

// BackupKey addresses one backed-up field value.
type BackupKey struct {
	EstimateID string
	LineID     string
	Field      entities.Field
}

// BackupEntry is a field value saved at a point in time.
type BackupEntry struct {
	Key     BackupKey
	Value   entities.Value
	SavedAt time.Time
}

// IBackupStore keeps unsaved field edits across process restarts.
//
// Entries older than the store's retention window are treated as absent.

type IBackupStore interface {
	Put(key BackupKey, value entities.Value, at time.Time) error
	Get(key BackupKey, now time.Time) (BackupEntry, bool)
	Delete(key BackupKey) error
	ListEstimate(estimateID string, now time.Time) ([]BackupEntry, error)
	ClearEstimate(estimateID string) error
	Prune(now time.Time) (int, error)
}

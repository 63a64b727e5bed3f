package editing

// SyncStatus is the synchronization state of a line or of a whole session.
type SyncStatus string

const (
	StatusIdle     SyncStatus = "idle"
	StatusDirty    SyncStatus = "dirty"
	StatusSyncing  SyncStatus = "syncing"
	StatusError    SyncStatus = "error"
	StatusConflict SyncStatus = "conflict"
)

var transitions = map[SyncStatus][]SyncStatus{
	StatusIdle:     {StatusDirty, StatusSyncing},
	StatusDirty:    {StatusSyncing, StatusIdle},
	StatusSyncing:  {StatusIdle, StatusDirty, StatusError, StatusConflict},
	StatusError:    {StatusIdle},
	StatusConflict: {StatusIdle},
}

// CanTransition reports whether a line may move from one status to another.
// Staying in the same status is always allowed.
//
//	idle -> dirty -> syncing -> idle | error | conflict
//	syncing -> dirty      (edits landed while the write was in flight)
//	dirty -> idle         (discard)
//	error | conflict -> idle (user retry or discard)
//
// idle -> syncing covers structural writes (create, delete) that skip the dirty state.
func CanTransition(from, to SyncStatus) bool {
	if from == to {
		return true
	}
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func (s SyncStatus) severity() int {
	switch s {
	case StatusConflict:
		return 4
	case StatusError:
		return 3
	case StatusSyncing:
		return 2
	case StatusDirty:
		return 1
	}
	return 0
}

// NeedsAttention reports whether the status carries a persistent indicator.
func (s SyncStatus) NeedsAttention() bool {
	return s == StatusError || s == StatusConflict
}

// Worst aggregates line statuses into a session status:
// conflict > error > syncing > dirty > idle.
func Worst(statuses ...SyncStatus) SyncStatus {
	out := StatusIdle
	for _, s := range statuses {
		if s.severity() > out.severity() {
			out = s
		}
	}
	return out
}

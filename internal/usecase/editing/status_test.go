package editing

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to SyncStatus
		want     bool
	}{
		{StatusIdle, StatusDirty, true},
		{StatusDirty, StatusSyncing, true},
		{StatusSyncing, StatusIdle, true},
		{StatusSyncing, StatusError, true},
		{StatusSyncing, StatusConflict, true},
		{StatusSyncing, StatusDirty, true},
		{StatusError, StatusIdle, true},
		{StatusConflict, StatusIdle, true},
		{StatusDirty, StatusIdle, true},
		{StatusIdle, StatusError, false},
		{StatusDirty, StatusConflict, false},
		{StatusError, StatusSyncing, false},
		{StatusConflict, StatusDirty, false},
		{StatusError, StatusError, true},
	}
	for _, tc := range cases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			if got := CanTransition(tc.from, tc.to); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestWorst(t *testing.T) {
	if got := Worst(); got != StatusIdle {
		t.Fatalf("expected idle, got %s", got)
	}
	if got := Worst(StatusDirty, StatusSyncing, StatusIdle); got != StatusSyncing {
		t.Fatalf("expected syncing, got %s", got)
	}
	if got := Worst(StatusError, StatusConflict, StatusSyncing); got != StatusConflict {
		t.Fatalf("expected conflict, got %s", got)
	}
}

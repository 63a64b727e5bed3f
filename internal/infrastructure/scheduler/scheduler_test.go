package scheduler

import (
	"testing"
	"time"
)

func TestManual_AdvanceRunsDueTasksInOrder(t *testing.T) {
	m := NewManual(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	var got []string
	m.Schedule(2*time.Second, func() { got = append(got, "b") })
	m.Schedule(time.Second, func() { got = append(got, "a") })
	m.Schedule(5*time.Second, func() { got = append(got, "c") })

	m.Advance(2 * time.Second)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("unexpected order: %v", got)
	}
	if m.Pending() != 1 {
		t.Fatalf("expected 1 pending task, got %d", m.Pending())
	}
}

func TestManual_StopPreventsRun(t *testing.T) {
	m := NewManual(time.Now())
	ran := false
	timer := m.Schedule(time.Second, func() { ran = true })
	if !timer.Stop() {
		t.Fatalf("expected first stop to succeed")
	}
	if timer.Stop() {
		t.Fatalf("expected second stop to report false")
	}
	m.Advance(time.Minute)
	if ran {
		t.Fatalf("stopped task must not run")
	}
}

func TestManual_NestedScheduleWithinWindow(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewManual(start)
	var at []time.Time
	m.Schedule(time.Second, func() {
		at = append(at, m.Now())
		m.Schedule(time.Second, func() { at = append(at, m.Now()) })
	})

	m.Advance(3 * time.Second)
	if len(at) != 2 {
		t.Fatalf("expected nested task to run, got %d runs", len(at))
	}
	if !at[1].Equal(start.Add(2 * time.Second)) {
		t.Fatalf("nested task ran at %v", at[1])
	}
	if !m.Now().Equal(start.Add(3 * time.Second)) {
		t.Fatalf("clock should end at target, got %v", m.Now())
	}
}

func TestReal_Schedule(t *testing.T) {
	done := make(chan struct{})
	NewReal().Schedule(time.Millisecond, func() { close(done) })
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("real scheduler did not fire")
	}
}

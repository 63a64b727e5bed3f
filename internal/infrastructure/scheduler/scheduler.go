// Package scheduler provides the timers used by editing sessions.
//
// Real runs callbacks on time.AfterFunc goroutines. Manual keeps a virtual clock and runs
// due callbacks synchronously from Advance, which makes debounce/retry behavior testable.
package scheduler

import (
	"sort"
	"sync"
	"time"

	"estimate_editor/internal/usecase/interfaces"
)

type Real struct{}

var _ interfaces.IScheduler = Real{}

func NewReal() Real { return Real{} }

func (Real) Schedule(delay time.Duration, fn func()) interfaces.ITimer {
	return time.AfterFunc(delay, fn)
}

func (Real) Now() time.Time { return time.Now().UTC() }

type manualTask struct {
	at      time.Time
	seq     uint64
	fn      func()
	stopped bool
	fired   bool
	owner   *Manual
}

func (t *manualTask) Stop() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Manual is a deterministic scheduler driven by Advance.
type Manual struct {
	mu    sync.Mutex
	now   time.Time
	seq   uint64
	tasks []*manualTask
}

var _ interfaces.IScheduler = (*Manual)(nil)

func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Schedule(delay time.Duration, fn func()) interfaces.ITimer {
	m.mu.Lock()
	defer m.mu.Unlock()
	if delay < 0 {
		delay = 0
	}
	m.seq++
	t := &manualTask{at: m.now.Add(delay), seq: m.seq, fn: fn, owner: m}
	m.tasks = append(m.tasks, t)
	return t
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock forward by d, running every callback that falls due in order.
// Callbacks scheduled by a running callback also run if they fall inside the window.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	for {
		m.mu.Lock()
		next := m.nextDueLocked(target)
		if next == nil {
			m.now = target
			m.mu.Unlock()
			return
		}
		next.fired = true
		if next.at.After(m.now) {
			m.now = next.at
		}
		m.mu.Unlock()
		next.fn()
	}
}

// Pending returns the number of scheduled callbacks that have not run or been stopped.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.tasks {
		if !t.fired && !t.stopped {
			n++
		}
	}
	return n
}

func (m *Manual) nextDueLocked(target time.Time) *manualTask {
	live := m.tasks[:0]
	for _, t := range m.tasks {
		if !t.fired && !t.stopped {
			live = append(live, t)
		}
	}
	m.tasks = live
	sort.Slice(m.tasks, func(i, j int) bool {
		if m.tasks[i].at.Equal(m.tasks[j].at) {
			return m.tasks[i].seq < m.tasks[j].seq
		}
		return m.tasks[i].at.Before(m.tasks[j].at)
	})
	if len(m.tasks) == 0 || m.tasks[0].at.After(target) {
		return nil
	}
	return m.tasks[0]
}

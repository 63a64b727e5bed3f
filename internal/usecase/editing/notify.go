package editing

import (
	"log"
	"time"
)

type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification is a non-blocking message about synchronization.
type Notification struct {
	At      time.Time `json:"at"`
	Level   Level     `json:"level"`
	LineID  string    `json:"line_id,omitempty"`
	Kind    string    `json:"kind,omitempty"`
	Message string    `json:"message"`
}

// Listener receives notifications outside of the session lock.
type Listener func(sessionID string, n Notification)

func (s *Session) notifyLocked(level Level, lineID, kind, msg string) {
	n := Notification{At: s.sched.Now(), Level: level, LineID: lineID, Kind: kind, Message: msg}
	s.notes = append(s.notes, n)
	if over := len(s.notes) - s.cfg.NotificationLimit; over > 0 {
		s.notes = append(s.notes[:0:0], s.notes[over:]...)
	}
	if s.listener != nil {
		s.outbox = append(s.outbox, n)
	}
	log.Printf("[session][notify] level=%s session_id=%s estimate_id=%s line_id=%s kind=%s msg=%q", level, s.token, s.estimateID, lineID, kind, msg)
}

// dispatch hands queued notifications to the listener. It must be called without the lock.
func (s *Session) dispatch() {
	s.mu.Lock()
	out := s.outbox
	s.outbox = nil
	listener := s.listener
	s.mu.Unlock()

	for _, n := range out {
		listener(s.token, n)
	}
}

// Notifications returns the most recent notifications, oldest first.
func (s *Session) Notifications() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Notification, len(s.notes))
	copy(out, s.notes)
	return out
}

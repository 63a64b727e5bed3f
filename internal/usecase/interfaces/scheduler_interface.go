package interfaces

import "time"

// ITimer is a scheduled callback.
type ITimer interface {
	// Stop cancels the callback. It reports false if the callback already ran or was stopped.
	Stop() bool
}

// IScheduler runs callbacks after a delay and provides the current time.

type IScheduler interface {
	Schedule(delay time.Duration, fn func()) ITimer
	Now() time.Time
}

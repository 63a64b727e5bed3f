package editing

import "time"

// Config tunes the sync engine of editing sessions.
type Config struct {
	Debounce             time.Duration
	ActiveEditWindow     time.Duration
	ActiveEditMultiplier float64
	MaxBatchRows         int
	MaxBatchFields       int
	MaxRetries           int
	RetryInitial         time.Duration
	RetryMax             time.Duration
	RefreshInterval      time.Duration
	RequestTimeout       time.Duration
	NotificationLimit    int
}

func DefaultConfig() Config {
	return Config{
		Debounce:             2 * time.Second,
		ActiveEditWindow:     time.Second,
		ActiveEditMultiplier: 2.5,
		MaxBatchRows:         25,
		MaxBatchFields:       200,
		MaxRetries:           3,
		RetryInitial:         time.Second,
		RetryMax:             30 * time.Second,
		RefreshInterval:      30 * time.Second,
		RequestTimeout:       10 * time.Second,
		NotificationLimit:    50,
	}
}

// withDefaults fills zero values. RefreshInterval and MaxRetries keep zero, which
// disables periodic refresh and retries respectively.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Debounce <= 0 {
		c.Debounce = d.Debounce
	}
	if c.ActiveEditWindow <= 0 {
		c.ActiveEditWindow = d.ActiveEditWindow
	}
	if c.ActiveEditMultiplier < 1 {
		c.ActiveEditMultiplier = 1
	}
	if c.MaxBatchRows <= 0 {
		c.MaxBatchRows = d.MaxBatchRows
	}
	if c.MaxBatchFields <= 0 {
		c.MaxBatchFields = d.MaxBatchFields
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	if c.RetryInitial <= 0 {
		c.RetryInitial = d.RetryInitial
	}
	if c.RetryMax < c.RetryInitial {
		c.RetryMax = c.RetryInitial
	}
	if c.RefreshInterval < 0 {
		c.RefreshInterval = 0
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = d.RequestTimeout
	}
	if c.NotificationLimit <= 0 {
		c.NotificationLimit = d.NotificationLimit
	}
	return c
}

// CloseMode says what happens to unsynchronized work when a session ends.
type CloseMode string

const (
	// CloseFlush sends every pending write before closing. Edits that still fail stay
	// in the backup store for recovery.
	CloseFlush CloseMode = "flush"
	// CloseAbandon cancels timers and in-flight results and clears the backup store.
	CloseAbandon CloseMode = "abandon"
)

func (m CloseMode) Valid() bool {
	return m == CloseFlush || m == CloseAbandon
}

// Package alerts implements the process-wide transient notification queue.
// Alerts are ordered newest first and auto-dismissed after a fixed delay.
package alerts

import (
	"fmt"
	"sync"
	"time"
)

// Severity classifies an alert for rendering.
type Severity string

const (
	Info    Severity = "info"
	Success Severity = "success"
	Warning Severity = "warning"
	Error   Severity = "error"
)

// DefaultTTL is how long an alert stays visible before auto-dismissal.
const DefaultTTL = 5 * time.Second

// Alert is a single transient message.
type Alert struct {
	ID       string
	Severity Severity
	Message  string
}

// Store holds the ordered alert list. Safe for concurrent use; all pending
// dismissal timers are cancelled by Close so no callback fires afterwards.
type Store struct {
	mu      sync.Mutex
	ttl     time.Duration
	alerts  []Alert
	timers  map[string]*time.Timer
	counter uint64
	closed  bool

	onChange func([]Alert)
	onPush   func(Alert)
}

// Option configures a Store.
type Option func(*Store)

// WithTTL overrides the auto-dismissal delay.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) { s.ttl = ttl }
}

// WithOnChange registers a callback invoked with a snapshot of the list
// after every push or dismissal.
func WithOnChange(fn func([]Alert)) Option {
	return func(s *Store) { s.onChange = fn }
}

// WithOnPush registers a callback invoked for each new alert.
func WithOnPush(fn func(Alert)) Option {
	return func(s *Store) { s.onPush = fn }
}

// NewStore creates an empty alert store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		ttl:    DefaultTTL,
		timers: make(map[string]*time.Timer),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Push inserts an alert at the head of the list and schedules its removal.
// Returns the assigned id.
func (s *Store) Push(severity Severity, message string) string {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ""
	}

	// Millisecond timestamp plus a monotonic counter so two alerts pushed
	// in the same millisecond still get distinct ids.
	s.counter++
	id := fmt.Sprintf("%d-%d", time.Now().UnixMilli(), s.counter)

	alert := Alert{ID: id, Severity: severity, Message: message}
	s.alerts = append([]Alert{alert}, s.alerts...)
	s.timers[id] = time.AfterFunc(s.ttl, func() { s.Dismiss(id) })

	snapshot := s.snapshotLocked()
	onChange, onPush := s.onChange, s.onPush
	s.mu.Unlock()

	if onPush != nil {
		onPush(alert)
	}
	if onChange != nil {
		onChange(snapshot)
	}
	return id
}

// Pushf is Push with formatting.
func (s *Store) Pushf(severity Severity, format string, args ...interface{}) string {
	return s.Push(severity, fmt.Sprintf(format, args...))
}

// Dismiss removes an alert immediately. Unknown ids are ignored.
func (s *Store) Dismiss(id string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}

	if timer, ok := s.timers[id]; ok {
		timer.Stop()
		delete(s.timers, id)
	}

	found := false
	for i, a := range s.alerts {
		if a.ID == id {
			s.alerts = append(s.alerts[:i], s.alerts[i+1:]...)
			found = true
			break
		}
	}

	snapshot := s.snapshotLocked()
	onChange := s.onChange
	s.mu.Unlock()

	if found && onChange != nil {
		onChange(snapshot)
	}
}

// Alerts returns a snapshot of the current list, newest first.
func (s *Store) Alerts() []Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Close cancels every pending dismissal timer. After Close no callback
// fires and pushes are ignored.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
	s.alerts = nil
}

func (s *Store) snapshotLocked() []Alert {
	out := make([]Alert, len(s.alerts))
	copy(out, s.alerts)
	return out
}

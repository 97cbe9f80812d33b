package controller

import (
	"sync"
	"time"
)

// DefaultEventLogSize is the default number of events to retain.
const DefaultEventLogSize = 100

// EventKind classifies event log entries.
type EventKind int

const (
	EventSync EventKind = iota
	EventSyncFailed
	EventCommand
	EventCommandFailed
)

// String returns a human-readable event kind name.
func (k EventKind) String() string {
	switch k {
	case EventSync:
		return "sync"
	case EventSyncFailed:
		return "sync-failed"
	case EventCommand:
		return "command"
	case EventCommandFailed:
		return "command-failed"
	default:
		return "unknown"
	}
}

// Event is one entry in the dashboard's activity history.
type Event struct {
	Time time.Time
	Kind EventKind
	Port string // empty for dashboard-wide events
	Text string
}

// Failed reports whether the event records a failure.
func (e Event) Failed() bool {
	return e.Kind == EventSyncFailed || e.Kind == EventCommandFailed
}

// EventLog is a fixed-size, thread-safe ring of dashboard events feeding
// the detail view's recent-activity section. When full, the oldest entry
// drops first.
type EventLog struct {
	mu    sync.Mutex
	ring  []Event
	head  int
	count int
}

// NewEventLog creates an event log retaining up to size entries.
func NewEventLog(size int) *EventLog {
	if size <= 0 {
		size = DefaultEventLogSize
	}
	return &EventLog{ring: make([]Event, size)}
}

// Add appends an event stamped with the current time.
func (l *EventLog) Add(kind EventKind, portID, text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ring[l.head] = Event{Time: time.Now(), Kind: kind, Port: portID, Text: text}
	l.head = (l.head + 1) % len(l.ring)
	if l.count < len(l.ring) {
		l.count++
	}
}

// Len returns the number of retained events.
func (l *EventLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count
}

// Recent returns up to n events, newest first.
func (l *EventLog) Recent(n int) []Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n > l.count {
		n = l.count
	}
	out := make([]Event, 0, n)
	for i := 1; i <= n; i++ {
		idx := (l.head - i + len(l.ring)) % len(l.ring)
		out = append(out, l.ring[idx])
	}
	return out
}

// ForPort returns up to n events for one port, newest first. Dashboard-
// wide events (sync results) are included so a port's history shows what
// refreshed it.
func (l *EventLog) ForPort(portID string, n int) []Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Event, 0, n)
	for i := 1; i <= l.count && len(out) < n; i++ {
		idx := (l.head - i + len(l.ring)) % len(l.ring)
		e := l.ring[idx]
		if e.Port == "" || e.Port == portID {
			out = append(out, e)
		}
	}
	return out
}

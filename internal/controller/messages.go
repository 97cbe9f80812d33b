package controller

import (
	"sync"
	"time"
)

// Display windows for user-facing messages. Per-port messages hide after
// four seconds but stay in their slot until replaced; global messages
// hide after five seconds and leave the stack shortly after.
const (
	PortMessageTTL    = 4 * time.Second
	GlobalMessageTTL  = 5 * time.Second
	GlobalRemoveDelay = 400 * time.Millisecond
)

// Kind classifies a message for styling.
type Kind int

const (
	KindInfo Kind = iota
	KindSuccess
	KindError
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindError:
		return "error"
	default:
		return "info"
	}
}

// PortMessage is the one message slot a port card shows.
type PortMessage struct {
	Port   string
	Text   string
	Kind   Kind
	HideAt time.Time
}

// GlobalMessage is one entry in the dashboard-wide message stack.
type GlobalMessage struct {
	Text     string
	Kind     Kind
	HideAt   time.Time
	RemoveAt time.Time
}

// Bus holds per-port message slots and the global message stack. Expiry
// is plain data: each message carries its deadlines, computed from the
// bus clock when it is shown. Nothing holds timers, so a message being
// replaced or already expired makes the old deadline a harmless no-op.
type Bus struct {
	mu     sync.Mutex
	now    func() time.Time
	ports  map[string]PortMessage
	global []GlobalMessage
}

// NewBus creates an empty message bus using the wall clock.
func NewBus() *Bus {
	return &Bus{
		now:   time.Now,
		ports: make(map[string]PortMessage),
	}
}

// ShowPort sets a port's message slot, replacing whatever was there.
func (b *Bus) ShowPort(id, text string, kind Kind) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ports[id] = PortMessage{
		Port:   id,
		Text:   text,
		Kind:   kind,
		HideAt: b.now().Add(PortMessageTTL),
	}
}

// ShowGlobal appends a message to the global stack. Identical messages
// are not deduplicated; each call appends its own entry with its own
// deadlines.
func (b *Bus) ShowGlobal(text string, kind Kind) {
	b.mu.Lock()
	defer b.mu.Unlock()
	now := b.now()
	b.global = append(b.global, GlobalMessage{
		Text:     text,
		Kind:     kind,
		HideAt:   now.Add(GlobalMessageTTL),
		RemoveAt: now.Add(GlobalMessageTTL + GlobalRemoveDelay),
	})
}

// PortVisible returns the port's message while it is inside its display
// window.
func (b *Bus) PortVisible(id string) (PortMessage, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	m, ok := b.ports[id]
	if !ok || !b.now().Before(m.HideAt) {
		return PortMessage{}, false
	}
	return m, true
}

// PortRetained returns the port's message slot regardless of visibility.
// A hidden message stays in its slot until the next ShowPort replaces it.
func (b *Bus) PortRetained(id string) (PortMessage, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	m, ok := b.ports[id]
	return m, ok
}

// GlobalVisible returns the global messages inside their display window,
// oldest first.
func (b *Bus) GlobalVisible() []GlobalMessage {
	b.mu.Lock()
	defer b.mu.Unlock()
	now := b.now()
	var out []GlobalMessage
	for _, m := range b.global {
		if now.Before(m.HideAt) {
			out = append(out, m)
		}
	}
	return out
}

// GlobalLen returns the stack size including hidden entries that have
// not been pruned yet.
func (b *Bus) GlobalLen() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.global)
}

// Prune drops global messages past their removal deadline. Idempotent;
// calling it on an already-pruned stack changes nothing.
func (b *Bus) Prune() {
	b.mu.Lock()
	defer b.mu.Unlock()
	now := b.now()
	kept := b.global[:0]
	for _, m := range b.global {
		if now.Before(m.RemoveAt) {
			kept = append(kept, m)
		}
	}
	b.global = kept
}

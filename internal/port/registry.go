package port

import "sort"

// Registry holds the client's view of every port the server reported.
// It is replaced wholesale on each successful sync; a successful
// configure or disconnect replaces exactly one entry.
type Registry struct {
	states map[string]State
}

// NewRegistry returns an empty registry.
func NewRegistry() Registry {
	return Registry{states: make(map[string]State)}
}

// ReplaceAll swaps the entire registry contents for the given states.
// Ports absent from the new set are gone; there is no merging.
func (r *Registry) ReplaceAll(states []State) {
	next := make(map[string]State, len(states))
	for _, s := range states {
		next[s.ID] = s
	}
	r.states = next
}

// Set replaces the entry for a single port, adding it if absent.
func (r *Registry) Set(s State) {
	if r.states == nil {
		r.states = make(map[string]State)
	}
	r.states[s.ID] = s
}

// Get returns the state for a port and whether it exists.
func (r *Registry) Get(id string) (State, bool) {
	s, ok := r.states[id]
	return s, ok
}

// IDs returns all port identifiers in sorted order so render passes
// and table output are deterministic.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.states))
	for id := range r.states {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of ports in the registry.
func (r *Registry) Len() int {
	return len(r.states)
}

// Empty reports whether the registry has no ports.
func (r *Registry) Empty() bool {
	return len(r.states) == 0
}

// Snapshot returns a deep copy for render passes, so the view can keep
// drawing a stable state while the live registry changes underneath.
func (r *Registry) Snapshot() Registry {
	copied := make(map[string]State, len(r.states))
	for id, s := range r.states {
		copied[id] = s
	}
	return Registry{states: copied}
}

// Tally holds the three dashboard counters.
type Tally struct {
	Connected    int
	Disconnected int
	Errors       int
}

// Total returns the sum of all three counters, which always equals
// the registry size the tally was derived from.
func (t Tally) Total() int {
	return t.Connected + t.Disconnected + t.Errors
}

// Tally buckets every port's status into the three counters.
func (r *Registry) Tally() Tally {
	var t Tally
	for _, s := range r.states {
		switch s.Status.Bucket() {
		case StatusConnected:
			t.Connected++
		case StatusError:
			t.Errors++
		default:
			t.Disconnected++
		}
	}
	return t
}

package port

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryReplaceAll(t *testing.T) {
	r := NewRegistry()
	r.ReplaceAll([]State{
		{ID: "/dev/ttyAMA0", BaudRate: 9600, Parity: ParityNone, Status: StatusDisconnected},
		{ID: "/dev/ttyAMA1", BaudRate: 115200, Parity: ParityEven, Status: StatusConnected},
	})

	require.Equal(t, 2, r.Len())

	// A second replace drops ports absent from the new set
	r.ReplaceAll([]State{
		{ID: "/dev/ttyUSB0", BaudRate: 57600, Parity: ParityOdd, Status: StatusError},
	})

	assert.Equal(t, 1, r.Len())
	_, ok := r.Get("/dev/ttyAMA0")
	assert.False(t, ok, "old ports should be gone after wholesale replace")

	s, ok := r.Get("/dev/ttyUSB0")
	require.True(t, ok)
	assert.Equal(t, 57600, s.BaudRate)
}

func TestRegistrySet(t *testing.T) {
	r := NewRegistry()
	r.ReplaceAll([]State{
		{ID: "/dev/ttyAMA0", BaudRate: 9600, Parity: ParityNone, Status: StatusDisconnected},
		{ID: "/dev/ttyAMA1", BaudRate: 9600, Parity: ParityNone, Status: StatusDisconnected},
	})

	// Replacing one entry leaves the others alone
	r.Set(State{ID: "/dev/ttyAMA0", BaudRate: 115200, Parity: ParityEven, Status: StatusConnected})

	s, ok := r.Get("/dev/ttyAMA0")
	require.True(t, ok)
	assert.Equal(t, 115200, s.BaudRate)
	assert.Equal(t, ParityEven, s.Parity)

	other, ok := r.Get("/dev/ttyAMA1")
	require.True(t, ok)
	assert.Equal(t, 9600, other.BaudRate)

	// Set on an unknown port adds it
	r.Set(State{ID: "/dev/ttyUSB0", BaudRate: 9600, Parity: ParityNone, Status: StatusDisconnected})
	assert.Equal(t, 3, r.Len())
}

func TestRegistrySetOnZeroValue(t *testing.T) {
	var r Registry
	r.Set(State{ID: "/dev/ttyAMA0", BaudRate: 9600, Parity: ParityNone, Status: StatusDisconnected})
	assert.Equal(t, 1, r.Len())
}

func TestRegistryIDsSorted(t *testing.T) {
	r := NewRegistry()
	r.ReplaceAll([]State{
		{ID: "/dev/ttyAMA2"},
		{ID: "/dev/ttyAMA0"},
		{ID: "/dev/ttyAMA1"},
	})

	assert.Equal(t, []string{"/dev/ttyAMA0", "/dev/ttyAMA1", "/dev/ttyAMA2"}, r.IDs())
}

func TestRegistrySnapshotIsIsolated(t *testing.T) {
	r := NewRegistry()
	r.ReplaceAll([]State{
		{ID: "/dev/ttyAMA0", BaudRate: 9600, Parity: ParityNone, Status: StatusDisconnected},
	})

	snap := r.Snapshot()

	// Mutating the live registry must not change the snapshot
	r.Set(State{ID: "/dev/ttyAMA0", BaudRate: 921600, Parity: ParityOdd, Status: StatusConnected})

	s, ok := snap.Get("/dev/ttyAMA0")
	require.True(t, ok)
	assert.Equal(t, 9600, s.BaudRate)
	assert.Equal(t, ParityNone, s.Parity)
}

func TestRegistryTally(t *testing.T) {
	tests := []struct {
		name   string
		states []State
		want   Tally
	}{
		{
			name:   "empty registry",
			states: nil,
			want:   Tally{},
		},
		{
			name: "one of each",
			states: []State{
				{ID: "a", Status: StatusConnected},
				{ID: "b", Status: StatusDisconnected},
				{ID: "c", Status: StatusError},
			},
			want: Tally{Connected: 1, Disconnected: 1, Errors: 1},
		},
		{
			name: "unknown status counts as disconnected",
			states: []State{
				{ID: "a", Status: StatusConnected},
				{ID: "b", Status: Status("warming-up")},
				{ID: "c", Status: Status("")},
			},
			want: Tally{Connected: 1, Disconnected: 2, Errors: 0},
		},
		{
			name: "all connected",
			states: []State{
				{ID: "a", Status: StatusConnected},
				{ID: "b", Status: StatusConnected},
			},
			want: Tally{Connected: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			r.ReplaceAll(tt.states)

			got := r.Tally()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, r.Len(), got.Total(), "counters must sum to registry size")
		})
	}
}

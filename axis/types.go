package axis

import "github.com/katalvlaran/cueseq/interval"

// Cue associates a unique key with an interval and an opaque payload.
type Cue[K comparable, D any] struct {
	Key      K
	Interval interval.Interval
	Data     D
}

// Record is one entry of an Update batch. A nil Cue deletes Key; a
// non-nil Cue inserts Key (if absent) or replaces it (if present).
type Record[K comparable, D any] struct {
	Key K
	Cue *Cue[K, D]
}

// DeltaKind classifies the overall effect of one key's change.
type DeltaKind int

const (
	// DeltaNoop: the key's cue was touched by the batch but neither its
	// interval nor its data actually changed.
	DeltaNoop DeltaKind = iota
	// DeltaInsert: the key did not previously exist.
	DeltaInsert
	// DeltaDelete: the key existed and was removed.
	DeltaDelete
	// DeltaChange: the key existed and was replaced, with a changed
	// interval and/or a changed payload.
	DeltaChange
)

func (k DeltaKind) String() string {
	switch k {
	case DeltaNoop:
		return "NOOP"
	case DeltaInsert:
		return "INSERT"
	case DeltaDelete:
		return "DELETE"
	case DeltaChange:
		return "CHANGE"
	default:
		return "UNKNOWN"
	}
}

// SubDelta reports whether one facet (interval or data) of a cue
// changed, independent of the other.
type SubDelta int

const (
	SubNoop SubDelta = iota
	SubChange
)

func (s SubDelta) String() string {
	if s == SubChange {
		return "CHANGE"
	}
	return "NOOP"
}

// Delta reports, per key, whether the interval and/or the data changed,
// alongside the overall classification.
type Delta struct {
	Kind     DeltaKind
	Interval SubDelta
	Data     SubDelta
}

// Event describes one key's outcome within an Update batch.
type Event[K comparable, D any] struct {
	Key   K
	New   *Cue[K, D]
	Old   *Cue[K, D]
	Delta Delta
}

// EventMap is the result of one Update call: a map from key to Event,
// with a stable iteration order (the order keys first appeared in the
// batch) so subscribers observe a deterministic sequence.
type EventMap[K comparable, D any] struct {
	keys   []K
	events map[K]Event[K, D]
}

// Get returns the event for key, if the batch touched it.
func (m EventMap[K, D]) Get(key K) (Event[K, D], bool) {
	ev, ok := m.events[key]
	return ev, ok
}

// Keys returns the batch's keys, in first-appearance order.
func (m EventMap[K, D]) Keys() []K {
	out := make([]K, len(m.keys))
	copy(out, m.keys)
	return out
}

// All returns every event, in the same deterministic order as Keys.
func (m EventMap[K, D]) All() []Event[K, D] {
	out := make([]Event[K, D], 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, m.events[k])
	}
	return out
}

// Len reports how many keys the batch touched.
func (m EventMap[K, D]) Len() int {
	return len(m.keys)
}

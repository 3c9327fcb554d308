package scheduler

import (
	"github.com/katalvlaran/cueseq/axis"
	"github.com/katalvlaran/cueseq/interval"
)

// State is the scheduler's observable lifecycle state.
type State int

const (
	// Idle: no vector has been set yet. A Scheduler never returns to Idle
	// after a successful SetVector.
	Idle State = iota
	// Armed: a timer is pending for the next due entry (or the queue is
	// empty but SetVector has been called at least once).
	Armed
	// Firing: the scheduler is in the middle of draining a due batch.
	Firing
)

func (s State) String() string {
	switch s {
	case Armed:
		return "ARMED"
	case Firing:
		return "FIRING"
	default:
		return "IDLE"
	}
}

// EndpointItem is one projected endpoint crossing: the boundary
// crossed, the cue it belongs to, the due time (on the Clock's axis),
// and the direction of travel at the moment of crossing (positive or
// negative; never zero for a genuine crossing).
type EndpointItem[K comparable, D any] struct {
	Endpoint  interval.Endpoint
	Cue       axis.Cue[K, D]
	Direction float64
	Due       float64
}

// queueOrder reports whether a sorts before b: by Due time first, then
// by endpoint order, matching spec's "endpoint order (§4.1)" tie-break
// for entries due at the same instant.
func queueOrder[K comparable, D any](a, b EndpointItem[K, D]) bool {
	if a.Due != b.Due {
		return a.Due < b.Due
	}
	return interval.Cmp(a.Endpoint, b.Endpoint) < 0
}

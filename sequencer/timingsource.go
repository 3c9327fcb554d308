package sequencer

import (
	"github.com/katalvlaran/cueseq/clock"
	"github.com/katalvlaran/cueseq/eventbus"
	"github.com/katalvlaran/cueseq/motion"
)

// TimingSource supplies the playhead trajectory the sequencer tracks.
// Implementations own their own clock and readiness policy; the
// sequencer only observes them.
type TimingSource interface {
	// Vector returns the current motion vector.
	Vector() motion.Vector
	// OldVector returns the vector in effect immediately before the
	// most recent change, for delta classification.
	OldVector() motion.Vector
	// Clock returns the clock.Clock this source (and the sequencer's
	// internal scheduler) should time against.
	Clock() clock.Clock
	// Range bounds the axis positions this source can ever reach.
	Range() (low, high float64)
	// OnChange registers fn to run on every vector change, including
	// the initial snapshot (VectorChange.Init true).
	OnChange(fn func(VectorChange)) eventbus.Handle
	// IsReady reports whether the source has delivered its initial
	// snapshot yet.
	IsReady() bool
	// Ready returns a channel that closes exactly once IsReady becomes
	// true.
	Ready() <-chan struct{}
}

// VectorChange is delivered to TimingSource subscribers on every
// vector update. Init marks the source's initial snapshot.
type VectorChange struct {
	Init bool
	New  motion.Vector
}

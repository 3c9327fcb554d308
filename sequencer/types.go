package sequencer

import "github.com/katalvlaran/cueseq/axis"

// Transition describes one key's change in active status. New == nil
// marks an exit, Old == nil marks an enter, both present marks a
// change (payload or interval replaced while the key stayed active).
type Transition[K comparable, D any] struct {
	Key K
	New *axis.Cue[K, D]
	Old *axis.Cue[K, D]
}

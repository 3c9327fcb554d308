package sequencer_test

import (
	"github.com/katalvlaran/cueseq/clock"
	"github.com/katalvlaran/cueseq/eventbus"
	"github.com/katalvlaran/cueseq/motion"
	"github.com/katalvlaran/cueseq/sequencer"
)

// fakeTimingSource is a minimal, test-driven sequencer.TimingSource:
// the test calls initVector/setVector directly instead of the source
// computing its own trajectory.
type fakeTimingSource struct {
	vector, old motion.Vector
	clk         clock.Clock
	low, high   float64
	bus         *eventbus.Bus[sequencer.VectorChange]
	ready       bool
	readyCh     chan struct{}
}

func newFakeTimingSource(clk clock.Clock) *fakeTimingSource {
	return &fakeTimingSource{
		clk:     clk,
		bus:     eventbus.New[sequencer.VectorChange](),
		readyCh: make(chan struct{}),
	}
}

func (f *fakeTimingSource) Vector() motion.Vector    { return f.vector }
func (f *fakeTimingSource) OldVector() motion.Vector { return f.old }
func (f *fakeTimingSource) Clock() clock.Clock       { return f.clk }
func (f *fakeTimingSource) Range() (float64, float64) {
	return f.low, f.high
}
func (f *fakeTimingSource) OnChange(fn func(sequencer.VectorChange)) eventbus.Handle {
	return f.bus.Subscribe(fn)
}
func (f *fakeTimingSource) IsReady() bool          { return f.ready }
func (f *fakeTimingSource) Ready() <-chan struct{} { return f.readyCh }

func (f *fakeTimingSource) initVector(v motion.Vector) {
	f.old = v
	f.vector = v
	f.ready = true
	close(f.readyCh)
	f.bus.Emit(sequencer.VectorChange{Init: true, New: v})
}

func (f *fakeTimingSource) setVector(v motion.Vector) {
	f.old = f.vector
	f.vector = v
	f.bus.Emit(sequencer.VectorChange{Init: false, New: v})
}

package scheduler_test

import (
	"fmt"
	"time"

	"github.com/katalvlaran/cueseq/axis"
	"github.com/katalvlaran/cueseq/clock"
	"github.com/katalvlaran/cueseq/interval"
	"github.com/katalvlaran/cueseq/motion"
	"github.com/katalvlaran/cueseq/scheduler"
)

// ExampleScheduler demonstrates a stationary scheduler firing once a
// constant-velocity vector is set, as the manual clock advances past
// the cue's entry point.
func ExampleScheduler() {
	ax := axis.New[string, string]()
	_, err := ax.Update([]axis.Record[string, string]{
		{Key: "A", Cue: &axis.Cue[string, string]{
			Key:      "A",
			Interval: interval.Interval{Low: 10, High: 20, LowInclude: true, HighInclude: true},
		}},
	})
	if err != nil {
		panic(err)
	}

	clk := clock.NewManual(0)
	sched := scheduler.New[string, string](ax, clk, scheduler.WithLookahead(20*time.Second))
	sched.AddCallback(func(items []scheduler.EndpointItem[string, string]) {
		for _, item := range items {
			fmt.Printf("t=%.0f cue=%s\n", clk.Now(), item.Cue.Key)
		}
	})

	if err := sched.SetVector(motion.Vector{Position: 0, Velocity: 1}); err != nil {
		panic(err)
	}
	clk.Advance(10 * time.Second)
	// Output:
	// t=10 cue=A
}

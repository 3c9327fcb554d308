package motion_test

import (
	"fmt"

	"github.com/katalvlaran/cueseq/motion"
)

// ExampleCalculateDelta demonstrates solving for the time until a
// uniformly moving vector reaches one of several target positions.
func ExampleCalculateDelta() {
	v := motion.Vector{Position: 0, Velocity: 2}
	dt, idx := motion.CalculateDelta(v, []float64{10, 4, 100})
	fmt.Printf("dt=%.1f targetIdx=%d\n", dt, idx)
	// Output:
	// dt=2.0 targetIdx=1
}

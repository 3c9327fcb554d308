package motion_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/cueseq/motion"
)

func TestCalculateDelta_LinearMotion(t *testing.T) {
	v := motion.Vector{Position: 0, Velocity: 2, Acceleration: 0, Timestamp: 0}
	dt, idx := motion.CalculateDelta(v, []float64{10, 4})
	assert.InDelta(t, 2.0, dt, 1e-9)
	assert.Equal(t, 1, idx) // target 4 reached first
}

func TestCalculateDelta_Stationary_NeverReaches(t *testing.T) {
	v := motion.Vector{Position: 0, Velocity: 0, Acceleration: 0, Timestamp: 0}
	dt, idx := motion.CalculateDelta(v, []float64{5})
	assert.True(t, math.IsInf(dt, 1))
	assert.Equal(t, -1, idx)
}

func TestCalculateDelta_StationaryAtTarget_DoesNotReportZero(t *testing.T) {
	v := motion.Vector{Position: 5, Velocity: 0, Acceleration: 0, Timestamp: 0}
	dt, idx := motion.CalculateDelta(v, []float64{5})
	assert.True(t, math.IsInf(dt, 1))
	assert.Equal(t, -1, idx)
}

func TestCalculateDelta_NegativeVelocityMovesAway_NeverReaches(t *testing.T) {
	v := motion.Vector{Position: 0, Velocity: -1, Acceleration: 0, Timestamp: 0}
	dt, idx := motion.CalculateDelta(v, []float64{10})
	assert.True(t, math.IsInf(dt, 1))
	assert.Equal(t, -1, idx)
}

func TestCalculateDelta_QuadraticMotion_PicksSmallestPositiveRoot(t *testing.T) {
	// p(t) = 0.5*2*t^2 = t^2, starting at rest, accelerating toward +.
	v := motion.Vector{Position: 0, Velocity: 0, Acceleration: 2, Timestamp: 0}
	dt, idx := motion.CalculateDelta(v, []float64{8})
	assert.InDelta(t, math.Sqrt(8), dt, 1e-9)
	assert.Equal(t, 0, idx)
}

func TestCalculateDelta_Deceleration_UnreachableTarget(t *testing.T) {
	// Decelerating from v=1 with a=-1 tops out at position 0.5, never reaching 10.
	v := motion.Vector{Position: 0, Velocity: 1, Acceleration: -1, Timestamp: 0}
	dt, idx := motion.CalculateDelta(v, []float64{10})
	assert.True(t, math.IsInf(dt, 1))
	assert.Equal(t, -1, idx)
}

func TestCalculateDelta_TieBreaksByLowestIndex(t *testing.T) {
	v := motion.Vector{Position: 0, Velocity: 1, Acceleration: 0, Timestamp: 0}
	dt, idx := motion.CalculateDelta(v, []float64{5, 5})
	assert.InDelta(t, 5.0, dt, 1e-9)
	assert.Equal(t, 0, idx)
}

func TestCalculateDelta_EmptyTargets(t *testing.T) {
	v := motion.Vector{Position: 0, Velocity: 1}
	dt, idx := motion.CalculateDelta(v, nil)
	assert.True(t, math.IsInf(dt, 1))
	assert.Equal(t, -1, idx)
}

func TestMotionDelta_PositionAndMoveClassification(t *testing.T) {
	tests := []struct {
		name     string
		old, new motion.Vector
		wantPos  motion.PosDelta
		wantMove motion.MoveDelta
	}{
		{
			name:     "identical",
			old:      motion.Vector{Position: 1, Velocity: 2},
			new:      motion.Vector{Position: 1, Velocity: 2},
			wantPos:  motion.PosNoop,
			wantMove: motion.MoveNoop,
		},
		{
			name:     "position jump only",
			old:      motion.Vector{Position: 1},
			new:      motion.Vector{Position: 2},
			wantPos:  motion.PosChange,
			wantMove: motion.MoveNoop,
		},
		{
			name:     "starts moving",
			old:      motion.Vector{Velocity: 0},
			new:      motion.Vector{Velocity: 3},
			wantPos:  motion.PosNoop,
			wantMove: motion.MoveStart,
		},
		{
			name:     "stops moving",
			old:      motion.Vector{Velocity: 3},
			new:      motion.Vector{Velocity: 0},
			wantPos:  motion.PosNoop,
			wantMove: motion.MoveStop,
		},
		{
			name:     "velocity changes while moving",
			old:      motion.Vector{Velocity: 1},
			new:      motion.Vector{Velocity: 2},
			wantPos:  motion.PosNoop,
			wantMove: motion.MoveChange,
		},
		{
			name:     "acceleration changes while moving",
			old:      motion.Vector{Velocity: 1, Acceleration: 0},
			new:      motion.Vector{Velocity: 1, Acceleration: 1},
			wantPos:  motion.PosNoop,
			wantMove: motion.MoveChange,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos, move := motion.Delta(tc.old, tc.new)
			assert.Equal(t, tc.wantPos, pos)
			assert.Equal(t, tc.wantMove, move)
		})
	}
}

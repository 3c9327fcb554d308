package motion

import "math"

// Vector is a kinematic state anchored at Timestamp: Position,
// Velocity, and Acceleration describe motion along a single real axis.
type Vector struct {
	Position     float64
	Velocity     float64
	Acceleration float64
	Timestamp    float64
}

// Validate rejects a Vector with any NaN or infinite component.
func (v Vector) Validate() error {
	for _, f := range []float64{v.Position, v.Velocity, v.Acceleration, v.Timestamp} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return ErrInvalidVector
		}
	}
	return nil
}

// Evaluate returns v's position and velocity at wall-clock t, using
// the constant-acceleration kinematic equations with Δ = t - v.Timestamp.
func (v Vector) Evaluate(t float64) (position, velocity float64) {
	delta := t - v.Timestamp
	position = v.Position + v.Velocity*delta + 0.5*v.Acceleration*delta*delta
	velocity = v.Velocity + v.Acceleration*delta
	return position, velocity
}

// IsMoving reports whether v has nonzero velocity or acceleration.
func (v Vector) IsMoving() bool {
	return v.Velocity != 0 || v.Acceleration != 0
}

// CalculateVector evaluates v at t and returns a new Vector re-anchored
// there: same acceleration, position and velocity taken from Evaluate(t).
func CalculateVector(v Vector, t float64) Vector {
	position, velocity := v.Evaluate(t)
	return Vector{
		Position:     position,
		Velocity:     velocity,
		Acceleration: v.Acceleration,
		Timestamp:    t,
	}
}

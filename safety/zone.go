// Package safety answers point-safety and safe-position queries against
// a time-gated set of forbidden zones inside an optional arena.
package safety

import (
	"github.com/ShoOtaku/HaiyaBox/sdf"
)

// Zone is a forbidden region with an activation time. It is active at
// query time t iff Activation <= t; timestamps are seconds on whatever
// monotonic clock the caller uses, compared but never read by the
// engine.
type Zone struct {
	Shape      sdf.Shape
	Activation float64
}

// NewZone wraps a distance field and its activation time.
func NewZone(shape sdf.Shape, activation float64) Zone {
	return Zone{Shape: shape, Activation: activation}
}

// Active reports whether the zone is active at time t.
func (z Zone) Active(t float64) bool {
	return z.Activation <= t
}

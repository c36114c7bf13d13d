// Package arena models the playfield's navigable region. Positions
// outside the bounds are treated as unsafe by the calculator.
package arena

import (
	"math"

	"github.com/ShoOtaku/HaiyaBox/geom"
)

// Bounds is a playfield region. DistanceToBorder is positive inside and
// negative outside, measuring to the nearest border point.
type Bounds interface {
	Contains(p geom.Vec2) bool
	DistanceToBorder(p geom.Vec2) float64
	Center() geom.Vec2
	ApproximateRadius() float64
}

// Circle is a circular playfield.
type Circle struct {
	center geom.Vec2
	radius float64
}

// NewCircle returns a circular playfield.
func NewCircle(center geom.Vec2, radius float64) *Circle {
	return &Circle{center: center, radius: radius}
}

func (c *Circle) Contains(p geom.Vec2) bool {
	return p.DistanceSqTo(c.center) <= c.radius*c.radius
}

func (c *Circle) DistanceToBorder(p geom.Vec2) float64 {
	return c.radius - p.DistanceTo(c.center)
}

func (c *Circle) Center() geom.Vec2 { return c.center }

func (c *Circle) ApproximateRadius() float64 { return c.radius }

// Rect is a rectangular playfield. A zero-length direction falls back
// to unit +X.
type Rect struct {
	center     geom.Vec2
	dir        geom.Vec2 // unit, along the half-length axis
	halfWidth  float64
	halfLength float64
}

// NewRect returns a rectangular playfield oriented along direction.
func NewRect(center, direction geom.Vec2, halfWidth, halfLength float64) *Rect {
	dir := direction.Normalize()
	if dir.IsZero() {
		dir = geom.Vec2{X: 1}
	}
	return &Rect{center: center, dir: dir, halfWidth: halfWidth, halfLength: halfLength}
}

func (r *Rect) local(p geom.Vec2) (lx, lz float64) {
	off := p.Sub(r.center)
	return off.Dot(r.dir), off.Dot(r.dir.Left())
}

func (r *Rect) Contains(p geom.Vec2) bool {
	lx, lz := r.local(p)
	return math.Abs(lx) <= r.halfLength && math.Abs(lz) <= r.halfWidth
}

func (r *Rect) DistanceToBorder(p geom.Vec2) float64 {
	lx, lz := r.local(p)
	dx := math.Abs(lx) - r.halfLength
	dz := math.Abs(lz) - r.halfWidth

	switch {
	case dx <= 0 && dz <= 0:
		return math.Min(-dx, -dz)
	case dx > 0 && dz > 0:
		return -math.Hypot(dx, dz)
	default:
		return -math.Max(dx, dz)
	}
}

func (r *Rect) Center() geom.Vec2 { return r.center }

func (r *Rect) ApproximateRadius() float64 {
	return math.Hypot(r.halfWidth, r.halfLength)
}

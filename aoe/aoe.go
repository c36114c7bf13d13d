// Package aoe provides the high-level attack-footprint shapes that UI
// panels and recorders deal in. A Shape is a plain value bundling the
// footprint parameters, its orientation, and whether the safe side is
// inverted; the origin is supplied per query so a moving caster reuses
// one Shape.
package aoe

import (
	"github.com/ShoOtaku/HaiyaBox/geom"
	"github.com/ShoOtaku/HaiyaBox/sdf"
)

// Kind names the footprint family of a Shape.
type Kind uint8

const (
	KindCircle Kind = iota
	KindCone
	KindDonut
	KindDonutSector
	KindRect
	KindCross
	KindTriCone
	KindCapsule
	KindArcCapsule
)

// Shape is an attack footprint. Zero values of unused fields are
// ignored by the kind's distance construction.
type Shape struct {
	Kind Kind

	// Direction is the facing of oriented kinds, as a bearing.
	Direction geom.Angle

	Radius      float64 // outer radius, rect front, arm or capsule length
	InnerRadius float64 // donut family inner radius, rect back extent
	HalfWidth   float64 // rect/cross half-width, capsule/arc tube radius
	HalfAngle   geom.Angle

	// OrbitOffset places the arc-capsule orbit center relative to the
	// query origin; the origin itself is the arc start.
	OrbitOffset geom.Vec2
	// SweepLength is the signed angular length of the arc-capsule.
	SweepLength geom.Angle

	// InvertForbidden flips the danger side: the footprint interior
	// becomes the only safe ground.
	InvertForbidden bool
}

// NewCircle returns a circular footprint.
func NewCircle(radius float64) Shape {
	return Shape{Kind: KindCircle, Radius: radius}
}

// NewCone returns a circular-sector footprint facing direction.
func NewCone(radius float64, direction, halfAngle geom.Angle) Shape {
	return Shape{Kind: KindCone, Radius: radius, Direction: direction, HalfAngle: halfAngle}
}

// NewDonut returns an annular footprint.
func NewDonut(inner, outer float64) Shape {
	return Shape{Kind: KindDonut, InnerRadius: inner, Radius: outer}
}

// NewDonutSector returns an annular-sector footprint facing direction.
func NewDonutSector(inner, outer float64, direction, halfAngle geom.Angle) Shape {
	return Shape{
		Kind:        KindDonutSector,
		InnerRadius: inner,
		Radius:      outer,
		Direction:   direction,
		HalfAngle:   halfAngle,
	}
}

// NewRect returns a line-style rectangle footprint: front units ahead of
// the origin, back units behind, halfWidth to either side.
func NewRect(direction geom.Angle, front, back, halfWidth float64) Shape {
	return Shape{
		Kind:        KindRect,
		Direction:   direction,
		Radius:      front,
		InnerRadius: back,
		HalfWidth:   halfWidth,
	}
}

// NewCross returns a plus-shaped footprint of two perpendicular arms.
func NewCross(direction geom.Angle, armLength, halfWidth float64) Shape {
	return Shape{Kind: KindCross, Direction: direction, Radius: armLength, HalfWidth: halfWidth}
}

// NewTriCone returns the triangle-fan approximation of a cone: apex at
// the origin, two far vertices at the sector rim.
func NewTriCone(radius float64, direction, halfAngle geom.Angle) Shape {
	return Shape{Kind: KindTriCone, Radius: radius, Direction: direction, HalfAngle: halfAngle}
}

// NewCapsule returns a thick-segment footprint extending length along
// direction from the origin.
func NewCapsule(direction geom.Angle, length, radius float64) Shape {
	return Shape{Kind: KindCapsule, Direction: direction, Radius: length, HalfWidth: radius}
}

// NewArcCapsule returns a swept-tube footprint. The query origin is the
// arc start, orbiting origin+orbitOffset over sweep radians.
func NewArcCapsule(orbitOffset geom.Vec2, sweep geom.Angle, tubeRadius float64) Shape {
	return Shape{Kind: KindArcCapsule, OrbitOffset: orbitOffset, SweepLength: sweep, HalfWidth: tubeRadius}
}

// Rotated returns the shape turned by the given angle. Arc-capsule orbit
// offsets rotate with the shape.
func (s Shape) Rotated(by geom.Angle) Shape {
	s.Direction += by
	s.OrbitOffset = s.OrbitOffset.Rotate(by)
	return s
}

// Inverted returns the shape with InvertForbidden toggled.
func (s Shape) Inverted() Shape {
	s.InvertForbidden = !s.InvertForbidden
	return s
}

// Distance returns the signed distance field of the footprint anchored
// at origin, already inverted when InvertForbidden is set.
func (s Shape) Distance(origin geom.Vec2) sdf.Shape {
	var field sdf.Shape
	dir := s.Direction.Dir()

	switch s.Kind {
	case KindCircle:
		field = sdf.Circle(origin, s.Radius)
	case KindCone:
		field = sdf.Cone(origin, s.Radius, dir, s.HalfAngle)
	case KindDonut:
		field = sdf.Donut(origin, s.InnerRadius, s.Radius)
	case KindDonutSector:
		field = sdf.DonutSector(origin, s.InnerRadius, s.Radius, dir, s.HalfAngle)
	case KindRect:
		field = sdf.Rect(origin, dir, s.Radius, s.InnerRadius, s.HalfWidth)
	case KindCross:
		field = sdf.Cross(origin, dir, s.Radius, s.HalfWidth)
	case KindTriCone:
		left := (s.Direction - s.HalfAngle).Dir().Scale(s.Radius)
		right := (s.Direction + s.HalfAngle).Dir().Scale(s.Radius)
		field = sdf.Triangle(origin, geom.Vec2{}, left, right)
	case KindCapsule:
		field = sdf.Capsule(origin, dir, s.Radius, s.HalfWidth)
	case KindArcCapsule:
		field = sdf.ArcCapsule(origin, origin.Add(s.OrbitOffset), s.SweepLength, s.HalfWidth)
	default:
		field = sdf.Circle(origin, 0)
	}

	if s.InvertForbidden {
		return field.Inverted()
	}
	return field
}

// Check reports whether p falls on the forbidden side of the footprint
// anchored at origin.
func (s Shape) Check(p, origin geom.Vec2) bool {
	return s.Distance(origin).Contains(p)
}

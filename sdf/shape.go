// Package sdf implements signed distance fields for 2D danger regions.
//
// A Shape is a tagged variant rather than an interface hierarchy: the
// distance dispatch is a single switch, which keeps the innermost query
// loops free of dynamic calls and lets shapes share a cheap bounding
// rejection. Distances follow the usual sign convention: negative
// inside, zero on the boundary, positive outside.
package sdf

import (
	"math"

	"github.com/ShoOtaku/HaiyaBox/geom"
)

// Epsilon is the boundary tolerance used by distance-based containment.
const Epsilon = 1e-5

// Field evaluates a signed distance at a point. Shape implements it;
// consumers such as the contour builder accept any Field.
type Field interface {
	Distance(p geom.Vec2) float64
}

type kind uint8

const (
	kindCircle kind = iota
	kindRect
	kindCone
	kindDonut
	kindDonutSector
	kindCross
	kindTriangle
	kindCapsule
	kindArcCapsule
	kindUnion
	kindIntersection
)

// defaultForward is the substitute orientation for zero-length
// directions; bearing zero points along +Z.
var defaultForward = geom.Vec2{X: 0, Z: 1}

// Shape is a signed distance field over the (X, Z) plane.
// The zero value is a zero-radius circle at the origin, which contains
// only the origin itself.
type Shape struct {
	kind     kind
	inverted bool

	origin geom.Vec2 // center, apex, segment start, or arc start
	dir    geom.Vec2 // unit forward for oriented kinds; arc orbit center

	radius    float64 // outer radius, arm length, or segment length
	inner     float64 // inner radius (donut family), back extent (rect)
	halfWidth float64 // half-width or tube radius
	halfAngle float64 // sector half-angle or signed arc sweep

	verts    [3]geom.Vec2 // triangle vertices, relative to origin
	children []Shape
}

func unitOr(dir, fallback geom.Vec2) geom.Vec2 {
	u := dir.Normalize()
	if u.IsZero() {
		return fallback
	}
	return u
}

// Circle returns the SDF of a circle.
func Circle(origin geom.Vec2, radius float64) Shape {
	return Shape{kind: kindCircle, origin: origin, radius: radius}
}

// Rect returns the SDF of an oriented rectangle extending front along
// dir and back against it, with the given half-width to either side.
func Rect(origin, dir geom.Vec2, front, back, halfWidth float64) Shape {
	return Shape{
		kind:      kindRect,
		origin:    origin,
		dir:       unitOr(dir, defaultForward),
		radius:    front,
		inner:     back,
		halfWidth: halfWidth,
	}
}

// Cone returns the SDF of a circular sector of the given radius centered
// on dir. A half-angle of Pi or more collapses to a circle.
func Cone(origin geom.Vec2, radius float64, dir geom.Vec2, halfAngle geom.Angle) Shape {
	return Shape{
		kind:      kindCone,
		origin:    origin,
		dir:       unitOr(dir, defaultForward),
		radius:    radius,
		halfAngle: float64(halfAngle),
	}
}

// Donut returns the SDF of the annulus [inner, outer] around origin.
func Donut(origin geom.Vec2, inner, outer float64) Shape {
	return Shape{kind: kindDonut, origin: origin, inner: inner, radius: outer}
}

// DonutSector returns the SDF of the annular sector spanned by the donut
// [inner, outer] and the cone of the given half-angle around dir.
func DonutSector(origin geom.Vec2, inner, outer float64, dir geom.Vec2, halfAngle geom.Angle) Shape {
	return Shape{
		kind:      kindDonutSector,
		origin:    origin,
		dir:       unitOr(dir, defaultForward),
		inner:     inner,
		radius:    outer,
		halfAngle: float64(halfAngle),
	}
}

// Cross returns the SDF of two perpendicular rectangles of the same
// half-width centered on origin, arms extending armLength each way.
func Cross(origin, dir geom.Vec2, armLength, halfWidth float64) Shape {
	return Shape{
		kind:      kindCross,
		origin:    origin,
		dir:       unitOr(dir, defaultForward),
		radius:    armLength,
		halfWidth: halfWidth,
	}
}

// Triangle returns the SDF of the triangle with vertices v0, v1, v2
// given relative to origin.
func Triangle(origin, v0, v1, v2 geom.Vec2) Shape {
	return Shape{kind: kindTriangle, origin: origin, verts: [3]geom.Vec2{v0, v1, v2}}
}

// Capsule returns the SDF of the segment extending length along dir from
// origin, thickened by radius.
func Capsule(origin, dir geom.Vec2, length, radius float64) Shape {
	return Shape{
		kind:      kindCapsule,
		origin:    origin,
		dir:       unitOr(dir, defaultForward),
		radius:    length,
		halfWidth: radius,
	}
}

// ArcCapsule returns the SDF of a tube of the given radius swept along
// the circular arc starting at start, orbiting orbitCenter, spanning
// angularLength radians. The sign of angularLength fixes the sweep
// direction; the ends carry hemispheric caps.
func ArcCapsule(start, orbitCenter geom.Vec2, angularLength geom.Angle, tubeRadius float64) Shape {
	return Shape{
		kind:      kindArcCapsule,
		origin:    start,
		dir:       orbitCenter,
		halfAngle: float64(angularLength),
		halfWidth: tubeRadius,
	}
}

// Union returns the SDF min over children: inside any child is inside.
// An empty union contains nothing.
func Union(children ...Shape) Shape {
	return Shape{kind: kindUnion, children: children}
}

// Intersection returns the SDF max over children: only points inside
// every child are inside. An empty intersection contains nothing.
func Intersection(children ...Shape) Shape {
	return Shape{kind: kindIntersection, children: children}
}

// Inverted returns the shape with inside and outside flipped; its
// distance is the negation of the receiver's.
func (s Shape) Inverted() Shape {
	s.inverted = !s.inverted
	return s
}

// InvertedCircle is the complement of Circle.
func InvertedCircle(origin geom.Vec2, radius float64) Shape {
	return Circle(origin, radius).Inverted()
}

// InvertedRect is the complement of Rect.
func InvertedRect(origin, dir geom.Vec2, front, back, halfWidth float64) Shape {
	return Rect(origin, dir, front, back, halfWidth).Inverted()
}

// InvertedCone is the complement of Cone.
func InvertedCone(origin geom.Vec2, radius float64, dir geom.Vec2, halfAngle geom.Angle) Shape {
	return Cone(origin, radius, dir, halfAngle).Inverted()
}

// InvertedDonut is the complement of Donut.
func InvertedDonut(origin geom.Vec2, inner, outer float64) Shape {
	return Donut(origin, inner, outer).Inverted()
}

// InvertedDonutSector is the complement of DonutSector.
func InvertedDonutSector(origin geom.Vec2, inner, outer float64, dir geom.Vec2, halfAngle geom.Angle) Shape {
	return DonutSector(origin, inner, outer, dir, halfAngle).Inverted()
}

// InvertedCross is the complement of Cross.
func InvertedCross(origin, dir geom.Vec2, armLength, halfWidth float64) Shape {
	return Cross(origin, dir, armLength, halfWidth).Inverted()
}

// InvertedTriangle is the complement of Triangle.
func InvertedTriangle(origin, v0, v1, v2 geom.Vec2) Shape {
	return Triangle(origin, v0, v1, v2).Inverted()
}

// InvertedCapsule is the complement of Capsule.
func InvertedCapsule(origin, dir geom.Vec2, length, radius float64) Shape {
	return Capsule(origin, dir, length, radius).Inverted()
}

// InvertedArcCapsule is the complement of ArcCapsule.
func InvertedArcCapsule(start, orbitCenter geom.Vec2, angularLength geom.Angle, tubeRadius float64) Shape {
	return ArcCapsule(start, orbitCenter, angularLength, tubeRadius).Inverted()
}

// InvertedUnion treats the complement of the union as the danger region.
// It is equivalent to the intersection of the inverted children.
func InvertedUnion(children ...Shape) Shape {
	return Union(children...).Inverted()
}

// InvertedIntersection treats the complement of the intersection as the
// danger region.
func InvertedIntersection(children ...Shape) Shape {
	return Intersection(children...).Inverted()
}

// Contains reports whether p is inside or on the boundary.
func (s Shape) Contains(p geom.Vec2) bool {
	return s.Distance(p) <= 0
}

// Distance returns the signed distance from p to the shape boundary.
// It is total: every input, including NaN coordinates, yields a value
// without panicking.
func (s Shape) Distance(p geom.Vec2) float64 {
	d := s.distance(p)
	if s.inverted {
		return -d
	}
	return d
}

func (s Shape) distance(p geom.Vec2) float64 {
	switch s.kind {
	case kindCircle:
		return p.Sub(s.origin).Length() - s.radius
	case kindRect:
		return boxDistance(p.Sub(s.origin), s.dir, s.radius, s.inner, s.halfWidth)
	case kindCone:
		return sectorDistance(p.Sub(s.origin), s.dir, s.radius, s.halfAngle)
	case kindDonut:
		return donutDistance(p.Sub(s.origin).Length(), s.inner, s.radius)
	case kindDonutSector:
		off := p.Sub(s.origin)
		d := donutDistance(off.Length(), s.inner, s.radius)
		return math.Max(d, sectorDistance(off, s.dir, s.radius, s.halfAngle))
	case kindCross:
		d1 := boxDistance(p.Sub(s.origin), s.dir, s.radius, s.radius, s.halfWidth)
		d2 := boxDistance(p.Sub(s.origin), s.dir.Left(), s.radius, s.radius, s.halfWidth)
		return math.Min(d1, d2)
	case kindTriangle:
		return triangleDistance(p,
			s.origin.Add(s.verts[0]),
			s.origin.Add(s.verts[1]),
			s.origin.Add(s.verts[2]))
	case kindCapsule:
		return segmentDistance(p, s.origin, s.dir, s.radius) - s.halfWidth
	case kindArcCapsule:
		return arcDistance(p, s.origin, s.dir, s.halfAngle) - s.halfWidth
	case kindUnion:
		d := math.Inf(1)
		for _, c := range s.children {
			if cd := c.Distance(p); cd < d {
				d = cd
			}
		}
		return d
	case kindIntersection:
		if len(s.children) == 0 {
			return math.Inf(1)
		}
		d := math.Inf(-1)
		for _, c := range s.children {
			if cd := c.Distance(p); cd > d {
				d = cd
			}
		}
		return d
	}
	return math.Inf(1)
}

package sdf

import (
	"math"

	"github.com/ShoOtaku/HaiyaBox/geom"
)

// BoundingCircle returns a circle guaranteed to enclose the shape, when
// one exists. Inverted shapes and empty intersections are unbounded; an
// empty union reports a zero-radius circle at the plane origin.
func (s Shape) BoundingCircle() (center geom.Vec2, radius float64, ok bool) {
	if s.inverted {
		return geom.Vec2{}, 0, false
	}

	switch s.kind {
	case kindCircle, kindCone:
		return s.origin, s.radius, true
	case kindDonut, kindDonutSector:
		return s.origin, s.radius, true
	case kindRect:
		c := s.origin.Add(s.dir.Scale((s.radius - s.inner) / 2))
		return c, math.Hypot((s.radius+s.inner)/2, s.halfWidth), true
	case kindCross:
		return s.origin, math.Hypot(s.radius, s.halfWidth), true
	case kindTriangle:
		r := 0.0
		for _, v := range s.verts {
			if l := v.Length(); l > r {
				r = l
			}
		}
		return s.origin, r, true
	case kindCapsule:
		c := s.origin.Add(s.dir.Scale(s.radius / 2))
		return c, s.radius/2 + s.halfWidth, true
	case kindArcCapsule:
		orbit := s.origin.Sub(s.dir).Length()
		return s.dir, orbit + s.halfWidth, true
	case kindUnion:
		return enclosingCircle(s.children)
	case kindIntersection:
		// Any child bound encloses the intersection; use the smallest.
		best := math.Inf(1)
		var bc geom.Vec2
		for _, ch := range s.children {
			if c, r, chOK := ch.BoundingCircle(); chOK && r < best {
				bc, best = c, r
			}
		}
		if math.IsInf(best, 1) {
			return geom.Vec2{}, 0, false
		}
		return bc, best, true
	}
	return geom.Vec2{}, 0, false
}

func enclosingCircle(children []Shape) (geom.Vec2, float64, bool) {
	if len(children) == 0 {
		return geom.Vec2{}, 0, true
	}
	c0, r0, ok := children[0].BoundingCircle()
	if !ok {
		return geom.Vec2{}, 0, false
	}
	for _, ch := range children[1:] {
		c, r, chOK := ch.BoundingCircle()
		if !chOK {
			return geom.Vec2{}, 0, false
		}
		if reach := c0.DistanceTo(c) + r; reach > r0 {
			r0 = reach
		}
	}
	return c0, r0, true
}

// RowIntersects reports whether the shape could intersect the row of the
// given width starting at start and spanning dx along +X, padded by
// cushion. It is a conservative fast reject: true means "maybe".
func (s Shape) RowIntersects(start geom.Vec2, dx, width, cushion float64) bool {
	center, radius, ok := s.BoundingCircle()
	if !ok {
		return true
	}

	reach := radius + width/2 + cushion
	end := start.Add(geom.Vec2{X: dx})
	return segmentPointDistanceSq(start, end, center) <= reach*reach
}

func segmentPointDistanceSq(a, b, p geom.Vec2) float64 {
	ab := b.Sub(a)
	ap := p.Sub(a)
	lenSq := ab.LengthSq()
	if lenSq == 0 {
		return ap.LengthSq()
	}
	t := clamp(ap.Dot(ab)/lenSq, 0, 1)
	return ap.Sub(ab.Scale(t)).LengthSq()
}

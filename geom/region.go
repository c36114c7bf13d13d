package geom

import "math"

// Region predicates answer "is p inside this footprint" using squared
// distances and dot products; no square roots on the common paths.

// InCircle reports whether p lies within radius of origin.
func InCircle(p, origin Vec2, radius float64) bool {
	return p.DistanceSqTo(origin) <= radius*radius
}

// InDonut reports whether p lies in the annulus [inner, outer] around origin.
func InDonut(p, origin Vec2, inner, outer float64) bool {
	d := p.DistanceSqTo(origin)
	return d >= inner*inner && d <= outer*outer
}

// InCone reports whether p lies in the unbounded angular sector centered
// on dir with the given half-angle. The apex itself counts as inside.
func InCone(p, origin, dir Vec2, halfAngle Angle) bool {
	off := p.Sub(origin).Normalize()
	if off.IsZero() {
		return true
	}
	return off.Dot(dir.Normalize()) >= math.Cos(float64(halfAngle))
}

// InCircleCone reports whether p lies in the circular sector of the given
// radius centered on dir.
func InCircleCone(p, origin Vec2, radius float64, dir Vec2, halfAngle Angle) bool {
	return InCircle(p, origin, radius) && InCone(p, origin, dir, halfAngle)
}

// InDonutCone reports whether p lies in the annular sector spanned by
// [inner, outer] and the cone around dir.
func InDonutCone(p, origin Vec2, inner, outer float64, dir Vec2, halfAngle Angle) bool {
	return InDonut(p, origin, inner, outer) && InCone(p, origin, dir, halfAngle)
}

// InDonutSector is InDonutCone with the sector center given as a bearing.
func InDonutSector(p, origin Vec2, inner, outer float64, center, halfAngle Angle) bool {
	return InDonutCone(p, origin, inner, outer, center.Dir(), halfAngle)
}

// InRect reports whether p lies in the oriented rectangle that extends
// front units along dir and back units against it from origin, with the
// given half-width to either side.
func InRect(p, origin, dir Vec2, front, back, halfWidth float64) bool {
	f := dir.Normalize()
	if f.IsZero() {
		return false
	}
	off := p.Sub(origin)
	u := off.Dot(f)
	v := off.Dot(f.Left())
	return u >= -back && u <= front && v >= -halfWidth && v <= halfWidth
}

// InRectSpan reports whether p lies in the rectangle spanned from start
// along startToEnd with the given half-width. A zero-length span has no
// interior.
func InRectSpan(p, start, startToEnd Vec2, halfWidth float64) bool {
	length := startToEnd.Length()
	if length == 0 {
		return false
	}
	return InRect(p, start, startToEnd, length, 0, halfWidth)
}

// InCross reports whether p lies in the union of two perpendicular
// rectangles of the same half-width centered on origin.
func InCross(p, origin, dir Vec2, armLength, halfWidth float64) bool {
	return InRect(p, origin, dir, armLength, armLength, halfWidth) ||
		InRect(p, origin, dir.Left(), armLength, armLength, halfWidth)
}

// InTri reports whether p lies in the triangle (a, b, c) using the
// barycentric sign test. Vertex winding does not matter.
func InTri(p, a, b, c Vec2) bool {
	d1 := p.Sub(a).Cross(b.Sub(a))
	d2 := p.Sub(b).Cross(c.Sub(b))
	d3 := p.Sub(c).Cross(a.Sub(c))

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// InCapsule reports whether p lies within radius of the segment that
// extends length units along dir from origin.
func InCapsule(p, origin, dir Vec2, length, radius float64) bool {
	f := dir.Normalize()
	off := p.Sub(origin)
	t := off.Dot(f)
	if t < 0 {
		t = 0
	} else if t > length {
		t = length
	}
	return off.Sub(f.Scale(t)).LengthSq() <= radius*radius
}

// InArcCapsule reports whether p lies within the tube swept along the
// circular arc that starts at start, orbits orbitCenter and spans
// angularLength radians. The sign of angularLength fixes the sweep
// direction; both ends carry hemispheric caps.
func InArcCapsule(p, start, orbitCenter Vec2, angularLength Angle, tubeRadius float64) bool {
	spoke := start.Sub(orbitCenter)
	orbitRadius := spoke.Length()
	if orbitRadius == 0 {
		return InCircle(p, orbitCenter, tubeRadius)
	}

	w := p.Sub(orbitCenter)
	delta := NormalizeRad(float64(w.Angle() - spoke.Angle()))
	sweep := float64(angularLength)
	if sweep < 0 {
		delta = -delta
		sweep = -sweep
	}
	if delta < 0 {
		delta += Tau
	}

	if delta <= sweep {
		return math.Abs(w.Length()-orbitRadius) <= tubeRadius
	}

	end := orbitCenter.Add((spoke.Angle() + angularLength).Dir().Scale(orbitRadius))
	rSq := tubeRadius * tubeRadius
	return p.DistanceSqTo(start) <= rSq || p.DistanceSqTo(end) <= rSq
}

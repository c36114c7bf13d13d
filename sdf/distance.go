package sdf

import (
	"math"

	"github.com/ShoOtaku/HaiyaBox/geom"
)

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// boxDistance is the exact SDF of the oriented box spanning [-back,
// front] along fwd and [-halfWidth, halfWidth] across it, evaluated at
// the offset from the box origin. fwd must be unit length.
func boxDistance(off, fwd geom.Vec2, front, back, halfWidth float64) float64 {
	u := off.Dot(fwd)
	v := off.Dot(fwd.Left())

	// Recenter: the box center sits between front and back.
	dx := math.Abs(u-(front-back)/2) - (front+back)/2
	dz := math.Abs(v) - halfWidth

	outside := math.Hypot(math.Max(dx, 0), math.Max(dz, 0))
	inside := math.Min(math.Max(dx, dz), 0)
	return outside + inside
}

// sectorDistance is the exact SDF of a circular sector ("pie") of the
// given radius centered on fwd with the given half-angle, evaluated at
// the offset from the apex. Half-angles of Pi or more collapse to a
// circle. fwd must be unit length.
func sectorDistance(off, fwd geom.Vec2, radius, halfAngle float64) float64 {
	if halfAngle >= math.Pi {
		return off.Length() - radius
	}
	if halfAngle <= 0 {
		// Degenerate sector: a segment of the given radius along fwd.
		return segmentDistance(off, geom.Vec2{}, fwd, radius)
	}

	// Local frame with the symmetry axis along +Z; fold onto px >= 0.
	px := math.Abs(off.Dot(fwd.Left()))
	pz := off.Dot(fwd)

	sin, cos := math.Sincos(halfAngle)

	l := math.Hypot(px, pz) - radius
	t := clamp(px*sin+pz*cos, 0, radius)
	m := math.Hypot(px-sin*t, pz-cos*t)
	if cos*px-sin*pz < 0 {
		m = -m
	}
	return math.Max(l, m)
}

func donutDistance(dist, inner, outer float64) float64 {
	return math.Max(inner-dist, dist-outer)
}

// segmentDistance is the distance from p to the segment extending length
// along fwd from start. fwd must be unit length.
func segmentDistance(p, start, fwd geom.Vec2, length float64) float64 {
	off := p.Sub(start)
	t := clamp(off.Dot(fwd), 0, length)
	return off.Sub(fwd.Scale(t)).Length()
}

// triangleDistance is the exact SDF of the triangle (a, b, c) with
// absolute vertices. Winding does not matter.
func triangleDistance(p, a, b, c geom.Vec2) float64 {
	e0 := b.Sub(a)
	e1 := c.Sub(b)
	e2 := a.Sub(c)
	v0 := p.Sub(a)
	v1 := p.Sub(b)
	v2 := p.Sub(c)

	pq0 := v0.Sub(e0.Scale(clampDiv(v0.Dot(e0), e0.LengthSq())))
	pq1 := v1.Sub(e1.Scale(clampDiv(v1.Dot(e1), e1.LengthSq())))
	pq2 := v2.Sub(e2.Scale(clampDiv(v2.Dot(e2), e2.LengthSq())))

	s := math.Copysign(1, e0.Cross(e2))
	dSq := math.Min(pq0.LengthSq(), math.Min(pq1.LengthSq(), pq2.LengthSq()))
	side := math.Min(s*v0.Cross(e0), math.Min(s*v1.Cross(e1), s*v2.Cross(e2)))

	if side > 0 {
		return -math.Sqrt(dSq)
	}
	return math.Sqrt(dSq)
}

func clampDiv(num, denom float64) float64 {
	if denom == 0 {
		return 0
	}
	return clamp(num/denom, 0, 1)
}

// arcDistance is the distance from p to the arc curve starting at start,
// orbiting orbitCenter, spanning sweep radians (signed). Points whose
// angular projection falls outside the sweep measure to the nearer
// endpoint, which yields hemispheric caps once a tube radius is
// subtracted.
func arcDistance(p, start, orbitCenter geom.Vec2, sweep float64) float64 {
	spoke := start.Sub(orbitCenter)
	orbitRadius := spoke.Length()
	if orbitRadius == 0 {
		return p.Sub(orbitCenter).Length()
	}

	w := p.Sub(orbitCenter)
	delta := geom.NormalizeRad(float64(w.Angle() - spoke.Angle()))
	span := sweep
	if span < 0 {
		delta = -delta
		span = -span
	}
	if delta < 0 {
		delta += geom.Tau
	}

	if delta <= span {
		return math.Abs(w.Length() - orbitRadius)
	}

	end := orbitCenter.Add((spoke.Angle() + geom.Angle(sweep)).Dir().Scale(orbitRadius))
	return math.Min(p.DistanceTo(start), p.DistanceTo(end))
}

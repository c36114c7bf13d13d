// Package contour extracts iso-contour polylines from a signed distance
// field by marching squares, for the overlay renderer to draw.
package contour

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ShoOtaku/HaiyaBox/geom"
	"github.com/ShoOtaku/HaiyaBox/sdf"
)

// Segment is one polyline edge of the zero contour, in input-space
// coordinates. Y carries the overlay height the caller supplied; the
// builder itself never interprets it.
type Segment struct {
	A, B      geom.Vec2
	Y         float64
	Color     rl.Color
	Thickness float32
}

// Build marches a square lattice of the given step over the window
// [center-radius, center+radius]^2 and returns the line segments
// approximating the iso-contour field(p) = 0. Saddle cells (two
// opposite corners inside) emit two independent segments; callers who
// need topological consistency there reduce the step instead.
// Non-positive or NaN radius/step return an empty list.
func Build(field sdf.Field, center geom.Vec2, radius, step, height float64, col rl.Color, thickness float32) []Segment {
	if !(radius > 0) || !(step > 0) {
		return nil
	}

	cells := int(math.Ceil(2 * radius / step))
	minX := center.X - radius
	minZ := center.Z - radius

	var segments []Segment
	emit := func(a, b geom.Vec2) {
		segments = append(segments, Segment{A: a, B: b, Y: height, Color: col, Thickness: thickness})
	}

	for ix := 0; ix < cells; ix++ {
		x := minX + float64(ix)*step
		for iz := 0; iz < cells; iz++ {
			z := minZ + float64(iz)*step

			a := geom.Vec2{X: x, Z: z}
			b := geom.Vec2{X: x + step, Z: z}
			c := geom.Vec2{X: x + step, Z: z + step}
			d := geom.Vec2{X: x, Z: z + step}

			da := field.Distance(a)
			db := field.Distance(b)
			dc := field.Distance(c)
			dd := field.Distance(d)

			mask := 0
			if da <= 0 {
				mask |= 1
			}
			if db <= 0 {
				mask |= 2
			}
			if dc <= 0 {
				mask |= 4
			}
			if dd <= 0 {
				mask |= 8
			}
			if mask == 0 || mask == 15 {
				continue
			}

			ab := crossing(a, b, da, db)
			bc := crossing(b, c, db, dc)
			cd := crossing(c, d, dc, dd)
			daE := crossing(d, a, dd, da)

			switch mask {
			case 1, 14:
				emit(ab, daE)
			case 2, 13:
				emit(ab, bc)
			case 3, 12:
				emit(daE, bc)
			case 4, 11:
				emit(bc, cd)
			case 6, 9:
				emit(ab, cd)
			case 7, 8:
				emit(daE, cd)
			case 5:
				emit(ab, daE)
				emit(bc, cd)
			case 10:
				emit(ab, bc)
				emit(cd, daE)
			}
		}
	}
	return segments
}

// crossing linearly interpolates the zero of the field along the edge
// from p (distance dp) to q (distance dq). Ill-conditioned ratios fall
// back to the midpoint.
func crossing(p, q geom.Vec2, dp, dq float64) geom.Vec2 {
	t := dp / (dp - dq)
	if math.IsNaN(t) || math.IsInf(t, 0) {
		t = 0.5
	} else if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.Add(q.Sub(p).Scale(t))
}

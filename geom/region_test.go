package geom

import (
	"math"
	"testing"
)

func TestInCircle(t *testing.T) {
	origin := Vec2{2, 3}
	if !InCircle(Vec2{2, 3}, origin, 0) {
		t.Error("zero-radius circle should contain its center")
	}
	if InCircle(Vec2{2.1, 3}, origin, 0) {
		t.Error("zero-radius circle should contain only its center")
	}
	if !InCircle(Vec2{5, 7}, origin, 5) {
		t.Error("point on boundary should be inside")
	}
	if InCircle(Vec2{5, 7.01}, origin, 5) {
		t.Error("point past boundary should be outside")
	}
}

func TestInDonut(t *testing.T) {
	o := Vec2{}
	cases := []struct {
		p    Vec2
		want bool
	}{
		{Vec2{0, 0}, false},
		{Vec2{3, 0}, false},
		{Vec2{5, 0}, true},
		{Vec2{10, 0}, true},
		{Vec2{15, 0}, true},
		{Vec2{15.1, 0}, false},
	}
	for _, tc := range cases {
		if got := InDonut(tc.p, o, 5, 15); got != tc.want {
			t.Errorf("InDonut(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestInCone(t *testing.T) {
	o := Vec2{}
	fwd := Vec2{0, 1}

	if !InCone(o, o, fwd, FromDeg(10)) {
		t.Error("apex should count as inside")
	}
	if !InCone(Vec2{0, 5}, o, fwd, FromDeg(45)) {
		t.Error("point on axis should be inside")
	}
	if !InCone(Vec2{4.9, 5}, o, fwd, FromDeg(45)) {
		t.Error("point just inside the edge should be inside")
	}
	if InCone(Vec2{5.1, 5}, o, fwd, FromDeg(45)) {
		t.Error("point just past the edge should be outside")
	}
	// A half-angle of Pi accepts everything.
	if !InCone(Vec2{0, -9}, o, fwd, math.Pi) {
		t.Error("full cone should accept the opposite direction")
	}
}

func TestInRect(t *testing.T) {
	o := Vec2{}
	fwd := Vec2{0, 1}

	cases := []struct {
		name string
		p    Vec2
		want bool
	}{
		{"center", Vec2{0, 0}, true},
		{"front edge", Vec2{0, 10}, true},
		{"past front", Vec2{0, 10.1}, false},
		{"back edge", Vec2{0, -4}, true},
		{"past back", Vec2{0, -4.1}, false},
		{"side edge", Vec2{2, 3}, true},
		{"past side", Vec2{2.1, 3}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := InRect(tc.p, o, fwd, 10, 4, 2); got != tc.want {
				t.Errorf("InRect(%v) = %v, want %v", tc.p, got, tc.want)
			}
		})
	}

	if InRect(Vec2{0, 0}, o, Vec2{}, 10, 4, 2) {
		t.Error("zero direction should reject everything")
	}
}

func TestInRectSpan(t *testing.T) {
	start := Vec2{1, 1}
	if !InRectSpan(Vec2{1, 4}, start, Vec2{0, 6}, 1) {
		t.Error("point on span axis should be inside")
	}
	if InRectSpan(Vec2{1, 0.9}, start, Vec2{0, 6}, 1) {
		t.Error("point behind start should be outside")
	}
	if InRectSpan(start, start, Vec2{}, 5) {
		t.Error("zero-length span has no interior")
	}
}

func TestInCross(t *testing.T) {
	o := Vec2{}
	fwd := Vec2{0, 1}
	if !InCross(Vec2{0, 7}, o, fwd, 8, 1) {
		t.Error("point on forward arm should be inside")
	}
	if !InCross(Vec2{7, 0}, o, fwd, 8, 1) {
		t.Error("point on side arm should be inside")
	}
	if InCross(Vec2{5, 5}, o, fwd, 8, 1) {
		t.Error("point between arms should be outside")
	}
}

func TestInTri(t *testing.T) {
	a, b, c := Vec2{0, 0}, Vec2{4, 0}, Vec2{0, 4}
	if !InTri(Vec2{1, 1}, a, b, c) {
		t.Error("interior point should be inside")
	}
	if !InTri(Vec2{2, 0}, a, b, c) {
		t.Error("edge point should be inside")
	}
	if InTri(Vec2{3, 3}, a, b, c) {
		t.Error("exterior point should be outside")
	}
	// Winding must not matter.
	if !InTri(Vec2{1, 1}, a, c, b) {
		t.Error("reversed winding should give the same answer")
	}
}

func TestInCapsule(t *testing.T) {
	o := Vec2{}
	fwd := Vec2{1, 0}
	if !InCapsule(Vec2{5, 1.9}, o, fwd, 10, 2) {
		t.Error("point near segment middle should be inside")
	}
	if !InCapsule(Vec2{-1.9, 0}, o, fwd, 10, 2) {
		t.Error("point in start cap should be inside")
	}
	if !InCapsule(Vec2{11.9, 0}, o, fwd, 10, 2) {
		t.Error("point in end cap should be inside")
	}
	if InCapsule(Vec2{5, 2.1}, o, fwd, 10, 2) {
		t.Error("point beyond the tube should be outside")
	}
}

func TestInArcCapsule(t *testing.T) {
	// Quarter arc from (10, 0) sweeping clockwise-positive a quarter
	// turn around the origin.
	center := Vec2{}
	start := Vec2{10, 0}
	sweep := Angle(HalfPi)

	mid := Angle(HalfPi + math.Pi/4).Dir().Scale(10) // halfway along the arc
	if !InArcCapsule(mid, start, center, sweep, 2) {
		t.Error("point on arc curve should be inside")
	}
	if !InArcCapsule(mid.Scale(1.15), start, center, sweep, 2) {
		t.Error("point within tube of arc should be inside")
	}
	if InArcCapsule(mid.Scale(1.3), start, center, sweep, 2) {
		t.Error("point beyond tube should be outside")
	}

	// End caps extend past the angular span.
	end := Angle(math.Pi).Dir().Scale(10)
	capPoint := end.Add(Vec2{0, -1.5})
	if !InArcCapsule(capPoint, start, center, sweep, 2) {
		t.Error("point in end cap should be inside")
	}

	// A point on the opposite side of the sweep is outside.
	if InArcCapsule(Vec2{-10, 0}, start, center, sweep, 2) {
		t.Error("point opposite the sweep should be outside")
	}

	// Negative sweep mirrors the arc: it runs from bearing Pi/2 down to
	// bearing 0, covering (7.07, 7.07) instead of (7.07, -7.07).
	if !InArcCapsule(Vec2{7.07, 7.07}, start, center, -sweep, 2) {
		t.Error("negative sweep should cover the mirrored side")
	}
	if InArcCapsule(Vec2{7.07, -7.07}, start, center, -sweep, 2) {
		t.Error("negative sweep should not cover the positive side")
	}
}

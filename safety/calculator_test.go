package safety

import (
	"math"
	"testing"

	"github.com/ShoOtaku/HaiyaBox/arena"
	"github.com/ShoOtaku/HaiyaBox/geom"
	"github.com/ShoOtaku/HaiyaBox/sdf"
)

const eps = 1e-5

func newTestCalculator() *Calculator {
	return NewCalculator(Options{Seed: 1})
}

func TestPointInAndOutOfCircle(t *testing.T) {
	c := newTestCalculator()
	c.AddZone(NewZone(sdf.Circle(geom.Vec2{}, 10), 0))

	if c.IsSafe(geom.Vec2{X: 5}, 0) {
		t.Error("point inside the circle should be unsafe")
	}
	if !c.IsSafe(geom.Vec2{X: 15}, 0) {
		t.Error("point outside the circle should be safe")
	}
	if got := c.DistanceToNearestDanger(geom.Vec2{X: 5}, 0); math.Abs(got+5) > eps {
		t.Errorf("inside distance: got %f, want -5", got)
	}
	if got := c.DistanceToNearestDanger(geom.Vec2{X: 15}, 0); math.Abs(got-5) > eps {
		t.Errorf("outside distance: got %f, want 5", got)
	}
}

func TestDelayedActivation(t *testing.T) {
	c := newTestCalculator()
	c.AddZones([]Zone{
		NewZone(sdf.Circle(geom.Vec2{}, 8), 0),
		NewZone(sdf.Circle(geom.Vec2{X: 15}, 8), 3),
	})

	if !c.IsSafe(geom.Vec2{X: 15}, 0) {
		t.Error("second zone must not gate before activation")
	}
	if c.IsSafe(geom.Vec2{X: 15}, 3) {
		t.Error("second zone must gate at its activation time")
	}
	if got := c.ActiveZoneCount(0); got != 1 {
		t.Errorf("ActiveZoneCount(0) = %d, want 1", got)
	}
	if got := c.ActiveZoneCount(3); got != 2 {
		t.Errorf("ActiveZoneCount(3) = %d, want 2", got)
	}
	if got := len(c.ActiveZones(0)); got != 1 {
		t.Errorf("ActiveZones(0) has %d zones, want 1", got)
	}
}

func TestDonutSafeInside(t *testing.T) {
	c := newTestCalculator()
	c.AddZone(NewZone(sdf.Donut(geom.Vec2{}, 5, 15), 0))

	cases := []struct {
		p    geom.Vec2
		safe bool
	}{
		{geom.Vec2{}, true},
		{geom.Vec2{X: 3}, true},
		{geom.Vec2{X: 10}, false},
		{geom.Vec2{X: 20}, true},
	}
	for _, tc := range cases {
		if got := c.IsSafe(tc.p, 0); got != tc.safe {
			t.Errorf("IsSafe(%v) = %v, want %v", tc.p, got, tc.safe)
		}
	}
	if got := c.DistanceToNearestDanger(geom.Vec2{X: 10}, 0); math.Abs(got+5) > eps {
		t.Errorf("deepest annulus point: got %f, want -5", got)
	}
}

func TestNoZonesMeansEverywhereSafe(t *testing.T) {
	c := newTestCalculator()
	if !c.IsSafe(geom.Vec2{X: 123, Z: -456}, 0) {
		t.Error("empty registry should be safe everywhere")
	}
	if got := c.DistanceToNearestDanger(geom.Vec2{}, 0); !math.IsInf(got, 1) {
		t.Errorf("no zones should yield +Inf, got %f", got)
	}
}

func TestArenaOutIsUnsafe(t *testing.T) {
	c := newTestCalculator()
	c.SetArena(arena.NewCircle(geom.Vec2{}, 20))

	if !c.IsSafe(geom.Vec2{X: 19}, 0) {
		t.Error("inside arena with no zones should be safe")
	}
	if c.IsSafe(geom.Vec2{X: 21}, 0) {
		t.Error("outside arena should be unsafe")
	}
	if got := c.DistanceToNearestDanger(geom.Vec2{X: 25}, 0); math.Abs(got+5) > eps {
		t.Errorf("outside arena should measure depth past border, got %f", got)
	}
}

func TestClearAndGeneration(t *testing.T) {
	c := newTestCalculator()
	gen := c.Generation()

	c.AddZone(NewZone(sdf.Circle(geom.Vec2{}, 5), 0))
	if c.Generation() == gen {
		t.Error("AddZone should bump the generation")
	}
	gen = c.Generation()

	c.SetArena(arena.NewCircle(geom.Vec2{}, 30))
	if c.Generation() == gen {
		t.Error("SetArena should bump the generation")
	}
	gen = c.Generation()

	c.Clear()
	if c.Generation() == gen {
		t.Error("Clear should bump the generation")
	}
	if got := c.ActiveZoneCount(100); got != 0 {
		t.Errorf("after Clear: %d active zones", got)
	}

	// Re-adding after clear counts activation-gated zones regardless of
	// insertion order.
	c.AddZones([]Zone{
		NewZone(sdf.Circle(geom.Vec2{X: 9}, 1), 5),
		NewZone(sdf.Circle(geom.Vec2{}, 1), 0),
		NewZone(sdf.Circle(geom.Vec2{X: 5}, 1), 2),
	})
	if got := c.ActiveZoneCount(2); got != 2 {
		t.Errorf("ActiveZoneCount(2) = %d, want 2", got)
	}
}

func TestFindSafestDirection(t *testing.T) {
	c := newTestCalculator()
	// Danger to the +Z side: the safest probe points away from it.
	c.AddZone(NewZone(sdf.Circle(geom.Vec2{Z: 4}, 3), 0))

	dir := c.FindSafestDirection(geom.Vec2{}, 0, 8)
	if math.Abs(dir.Length()-1) > eps {
		t.Errorf("direction should be unit length, got %v", dir)
	}
	if dir.Z >= 0 {
		t.Errorf("safest direction should point away from danger, got %v", dir)
	}
}

func TestFindSafestDirectionTieBreak(t *testing.T) {
	c := newTestCalculator()
	// No zones: every direction scores +Inf, so the first sample wins.
	dir := c.FindSafestDirection(geom.Vec2{}, 0, 8)
	want := geom.Angle(0).Dir()
	if math.Abs(dir.X-want.X) > eps || math.Abs(dir.Z-want.Z) > eps {
		t.Errorf("tie should go to sample 0, got %v", dir)
	}
}

func TestFindSafestPosition(t *testing.T) {
	c := newTestCalculator()
	c.SetArena(arena.NewCircle(geom.Vec2{}, 30))
	c.AddZone(NewZone(sdf.Circle(geom.Vec2{X: -10}, 12), 0))

	p := c.FindSafestPosition(geom.Vec2{}, 25, 0, 30)
	if !c.IsSafe(p, 0) {
		t.Errorf("safest position %v should be safe", p)
	}
	if p.X <= 0 {
		t.Errorf("safest position should flee the zone, got %v", p)
	}
	if !c.Arena().Contains(p) {
		t.Errorf("safest position %v should stay in the arena", p)
	}
}

func BenchmarkDistanceToNearestDanger(b *testing.B) {
	c := newTestCalculator()
	for i := 0; i < 64; i++ {
		origin := geom.Vec2{X: float64(i%8) * 10, Z: float64(i/8) * 10}
		c.AddZone(NewZone(sdf.Donut(origin, 2, 6), float64(i%4)))
	}
	p := geom.Vec2{X: 33, Z: 41}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.DistanceToNearestDanger(p, 2)
	}
}

func TestFindSafestPositionDegenerateRadius(t *testing.T) {
	c := newTestCalculator()
	center := geom.Vec2{X: 3, Z: 4}
	if got := c.FindSafestPosition(center, 0, 0, 10); got != center {
		t.Errorf("non-positive radius should return the center, got %v", got)
	}
	if got := c.FindSafestPosition(center, math.NaN(), 0, 10); got != center {
		t.Errorf("NaN radius should return the center, got %v", got)
	}
}

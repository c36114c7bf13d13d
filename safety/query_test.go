package safety

import (
	"testing"

	"github.com/ShoOtaku/HaiyaBox/arena"
	"github.com/ShoOtaku/HaiyaBox/geom"
	"github.com/ShoOtaku/HaiyaBox/sdf"
)

func TestPoissonSpread(t *testing.T) {
	c := NewCalculator(Options{Seed: 7})
	c.SetArena(arena.NewCircle(geom.Vec2{}, 40))

	points := c.FindSafePositions(8, 0).MinDistanceBetween(5).Execute()

	if len(points) == 0 || len(points) > 8 {
		t.Fatalf("expected 1..8 points, got %d", len(points))
	}
	for i, p := range points {
		if !c.Arena().Contains(p) {
			t.Errorf("point %v outside arena", p)
		}
		for j := i + 1; j < len(points); j++ {
			if d := p.DistanceTo(points[j]); d < 5 {
				t.Errorf("points %v and %v are %f apart, want >= 5", p, points[j], d)
			}
		}
	}
}

func TestNearTargetOrdering(t *testing.T) {
	c := NewCalculator(Options{Seed: 11})
	c.AddZone(NewZone(sdf.Circle(geom.Vec2{}, 8), 0))

	points := c.FindSafePositions(5, 0).
		Within(geom.Vec2{}, 40).
		MinDistanceBetween(1).
		NearTarget(geom.Vec2{}, 20).
		Execute()

	if len(points) == 0 {
		t.Fatal("expected at least one point")
	}
	prev := 0.0
	for i, p := range points {
		r := p.Length()
		if r <= 8 || r > 20+eps {
			t.Errorf("point %v has range %f, want in (8, 20]", p, r)
		}
		if i > 0 && r < prev-eps {
			t.Errorf("points not ascending by target distance: %f after %f", r, prev)
		}
		prev = r
	}
}

func TestResultsAreSafe(t *testing.T) {
	c := NewCalculator(Options{Seed: 3})
	c.SetArena(arena.NewCircle(geom.Vec2{}, 30))
	c.AddZones([]Zone{
		NewZone(sdf.Donut(geom.Vec2{}, 6, 14), 0),
		NewZone(sdf.Cone(geom.Vec2{}, 30, geom.Vec2{Z: 1}, geom.FromDeg(35)), 2),
	})

	points := c.FindSafePositions(6, 2).MinDistanceBetween(2).Execute()
	for _, p := range points {
		if !c.IsSafe(p, 2) {
			t.Errorf("result %v is not safe at query time", p)
		}
	}
}

func TestAngularConstraint(t *testing.T) {
	c := NewCalculator(Options{Seed: 5})
	c.SetArena(arena.NewCircle(geom.Vec2{}, 40))

	center := geom.Vec2{}
	minAngle := geom.FromDeg(40)
	points := c.FindSafePositions(6, 0).
		MinDistanceBetween(3).
		WithMinAngle(center, minAngle).
		Execute()

	if len(points) < 2 {
		t.Fatalf("expected at least two points, got %d", len(points))
	}
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			a := points[i].Sub(center).Angle()
			b := points[j].Sub(center).Angle()
			if got := geom.AbsDiff(a, b); got < float64(minAngle)-eps {
				t.Errorf("points %d and %d subtend %f rad, want >= %f",
					i, j, got, float64(minAngle))
			}
		}
	}
}

func TestMinDistanceFloor(t *testing.T) {
	c := NewCalculator(Options{Seed: 9})
	q := c.FindSafePositions(4, 0).Within(geom.Vec2{}, 10)

	q.MinDistanceBetween(0)
	if q.minSpacing != 0.1 {
		t.Errorf("zero spacing should clamp to 0.1, got %f", q.minSpacing)
	}
	q.MinDistanceBetween(-5)
	if q.minSpacing != 0.1 {
		t.Errorf("negative spacing should clamp to 0.1, got %f", q.minSpacing)
	}
	q.MinDistanceBetween(2)
	if q.minSpacing != 2 {
		t.Errorf("valid spacing should stick, got %f", q.minSpacing)
	}
}

func TestDeterministicUnderSeed(t *testing.T) {
	run := func() []geom.Vec2 {
		c := NewCalculator(Options{Seed: 42})
		c.SetArena(arena.NewCircle(geom.Vec2{}, 25))
		c.AddZone(NewZone(sdf.Circle(geom.Vec2{X: 5}, 6), 0))
		return c.FindSafePositions(5, 0).MinDistanceBetween(3).Execute()
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("runs disagree on count: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("runs diverge at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestUnderfillIsNotAnError(t *testing.T) {
	c := NewCalculator(Options{Seed: 13})
	// The whole arena is forbidden.
	c.SetArena(arena.NewCircle(geom.Vec2{}, 10))
	c.AddZone(NewZone(sdf.Circle(geom.Vec2{}, 50), 0))

	points := c.FindSafePositions(5, 0).MinDistanceBetween(2).Execute()
	if len(points) != 0 {
		t.Errorf("fully forbidden arena should yield no points, got %d", len(points))
	}
}

func TestNoRegionYieldsNothing(t *testing.T) {
	c := NewCalculator(Options{Seed: 17})
	// No arena and no Within: there is nowhere to sample.
	if points := c.FindSafePositions(5, 0).Execute(); len(points) != 0 {
		t.Errorf("query without a region should be empty, got %d points", len(points))
	}
}

func TestExecuteWithStats(t *testing.T) {
	c := NewCalculator(Options{Seed: 23})
	c.SetArena(arena.NewCircle(geom.Vec2{}, 20))
	c.AddZone(NewZone(sdf.Circle(geom.Vec2{}, 10), 0))

	points, stats := c.FindSafePositions(4, 0).MinDistanceBetween(2).ExecuteWithStats()
	if stats.Candidates < stats.Safe || stats.Safe < stats.Selected {
		t.Errorf("stage counts should be monotone: %+v", stats)
	}
	if stats.Selected != len(points) {
		t.Errorf("Selected = %d, got %d points", stats.Selected, len(points))
	}
	if stats.Candidates == 0 {
		t.Error("expected candidates to be generated")
	}
}

func TestOrderByDistanceToOverride(t *testing.T) {
	c := NewCalculator(Options{Seed: 29})
	c.SetArena(arena.NewCircle(geom.Vec2{}, 30))

	ref := geom.Vec2{X: 20}
	points := c.FindSafePositions(6, 0).
		MinDistanceBetween(3).
		OrderByDistanceTo(ref).
		Execute()

	for i := 1; i < len(points); i++ {
		if points[i].DistanceSqTo(ref) < points[i-1].DistanceSqTo(ref)-eps {
			t.Fatalf("results not ascending by distance to %v", ref)
		}
	}
}

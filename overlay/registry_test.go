package overlay

import (
	"testing"

	"github.com/ShoOtaku/HaiyaBox/geom"
	"github.com/ShoOtaku/HaiyaBox/safety"
	"github.com/ShoOtaku/HaiyaBox/sdf"
)

func TestPublishAndLatest(t *testing.T) {
	r := NewRegistry()
	c := safety.NewCalculator(safety.Options{Seed: 1})
	id := r.Register(c)

	if _, ok := r.Latest(id); ok {
		t.Error("no update published yet")
	}

	pts := []geom.Vec2{{X: 1}, {X: 2}}
	r.Publish(id, Update{Generation: c.Generation(), Points: pts})

	got, ok := r.Latest(id)
	if !ok {
		t.Fatal("expected a published update")
	}
	if len(got.Points) != 2 {
		t.Errorf("got %d points", len(got.Points))
	}
}

func TestStaleGenerationIgnored(t *testing.T) {
	r := NewRegistry()
	c := safety.NewCalculator(safety.Options{Seed: 1})
	id := r.Register(c)

	old := c.Generation()
	c.AddZone(safety.NewZone(sdf.Circle(geom.Vec2{}, 5), 0))

	// A result computed before the mutation must not surface.
	r.Publish(id, Update{Generation: old, Points: []geom.Vec2{{X: 9}}})
	if _, ok := r.Latest(id); ok {
		t.Error("stale publish should have been dropped")
	}

	r.Publish(id, Update{Generation: c.Generation(), Points: []geom.Vec2{{X: 3}}})
	if got, ok := r.Latest(id); !ok || got.Points[0].X != 3 {
		t.Errorf("fresh publish should surface, got %+v ok=%v", got, ok)
	}
}

func TestLatestInvalidatedByMutation(t *testing.T) {
	r := NewRegistry()
	c := safety.NewCalculator(safety.Options{Seed: 1})
	id := r.Register(c)

	r.Publish(id, Update{Generation: c.Generation(), Points: []geom.Vec2{{X: 1}}})
	c.Clear() // bumps the generation past the published update

	if _, ok := r.Latest(id); ok {
		t.Error("update published before a mutation should be invisible")
	}
}

func TestUnregister(t *testing.T) {
	r := NewRegistry()
	c := safety.NewCalculator(safety.Options{Seed: 1})
	id := r.Register(c)
	r.Unregister(id)

	r.Publish(id, Update{Generation: c.Generation()})
	if _, ok := r.Latest(id); ok {
		t.Error("unregistered calculator should not accept updates")
	}
	for _, live := range r.Live() {
		if live == id {
			t.Error("unregistered ID still listed as live")
		}
	}
}

func TestLiveListsRegistered(t *testing.T) {
	r := NewRegistry()
	a := safety.NewCalculator(safety.Options{Seed: 1})
	b := safety.NewCalculator(safety.Options{Seed: 2})
	r.Register(a)
	r.Register(b)

	live := r.Live()
	if len(live) != 2 {
		t.Errorf("expected 2 live calculators, got %d", len(live))
	}
}

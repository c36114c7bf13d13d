package safety

import (
	"math"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/ShoOtaku/HaiyaBox/arena"
	"github.com/ShoOtaku/HaiyaBox/geom"
)

// Params holds the engine tuning knobs. The zero value is not usable;
// start from DefaultParams.
type Params struct {
	// DirectionSamples is how many evenly spaced unit vectors
	// FindSafestDirection probes.
	DirectionSamples int
	// DirectionProbe is how far along each sampled direction the probe
	// point is placed.
	DirectionProbe float64
	// GridResolution is the per-axis cell count of FindSafestPosition.
	GridResolution int
	// PoissonAttempts is the candidate budget per active sample.
	PoissonAttempts int
	// MinSpacingFloor is the lower bound on inter-point spacing.
	MinSpacingFloor float64
	// DangerWeight and TargetWeight are the scoring coefficients:
	// score = DangerWeight*nearestDanger - TargetWeight*targetDistance.
	DangerWeight float64
	TargetWeight float64
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		DirectionSamples: 8,
		DirectionProbe:   1.0,
		GridResolution:   24,
		PoissonAttempts:  30,
		MinSpacingFloor:  0.1,
		DangerWeight:     10,
		TargetWeight:     5,
	}
}

// Options configures a Calculator.
type Options struct {
	// Seed seeds the sampling RNG; zero picks a time-based seed.
	Seed int64
	// Params overrides the tuning; the zero value means DefaultParams.
	Params Params
	// Arena is the initial playfield, may be nil.
	Arena arena.Bounds
}

var nextCalculatorID atomic.Uint64

// Calculator owns an append-only list of forbidden zones and an
// optional arena, and answers all safety queries against them. It is
// single-owner: no internal locking, callers must not mutate it while a
// query runs.
type Calculator struct {
	id         uint64
	zones      []Zone
	arena      arena.Bounds
	generation uint64
	params     Params
	rng        *rand.Rand
}

// NewCalculator returns an empty calculator.
func NewCalculator(opts Options) *Calculator {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	params := opts.Params
	if params == (Params{}) {
		params = DefaultParams()
	}
	return &Calculator{
		id:     nextCalculatorID.Add(1),
		arena:  opts.Arena,
		params: params,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// ID returns the calculator's process-unique identifier, used by
// overlay registries to key weak handles.
func (c *Calculator) ID() uint64 { return c.id }

// Generation returns the mutation counter. Any SetArena, AddZone,
// AddZones or Clear bumps it; cached query results keyed to an older
// generation are stale.
func (c *Calculator) Generation() uint64 { return c.generation }

// Params returns the active tuning.
func (c *Calculator) Params() Params { return c.params }

// Arena returns the current playfield, or nil.
func (c *Calculator) Arena() arena.Bounds { return c.arena }

// SetArena replaces the playfield. nil removes it.
func (c *Calculator) SetArena(b arena.Bounds) {
	c.arena = b
	c.generation++
}

// AddZone registers one forbidden zone.
func (c *Calculator) AddZone(z Zone) {
	c.zones = append(c.zones, z)
	c.generation++
}

// AddZones registers forbidden zones in order.
func (c *Calculator) AddZones(zones []Zone) {
	c.zones = append(c.zones, zones...)
	c.generation++
}

// Clear removes every zone.
func (c *Calculator) Clear() {
	c.zones = c.zones[:0]
	c.generation++
}

// ZoneCount returns the number of registered zones, active or not.
func (c *Calculator) ZoneCount() int { return len(c.zones) }

// ActiveZoneCount returns how many zones are active at time t.
func (c *Calculator) ActiveZoneCount(t float64) int {
	n := 0
	for _, z := range c.zones {
		if z.Active(t) {
			n++
		}
	}
	return n
}

// ActiveZones returns the zones active at time t, in registration order.
func (c *Calculator) ActiveZones(t float64) []Zone {
	var active []Zone
	for _, z := range c.zones {
		if z.Active(t) {
			active = append(active, z)
		}
	}
	return active
}

// IsSafe reports whether p is inside the arena (when set) and strictly
// outside every zone active at time t.
func (c *Calculator) IsSafe(p geom.Vec2, t float64) bool {
	if c.arena != nil && !c.arena.Contains(p) {
		return false
	}
	for _, z := range c.zones {
		if z.Active(t) && z.Shape.Distance(p) <= 0 {
			return false
		}
	}
	return true
}

// DistanceToNearestDanger returns the smallest signed distance from p
// to any zone active at time t, or +Inf when none are. Outside the
// arena it returns the negated depth past the border.
func (c *Calculator) DistanceToNearestDanger(p geom.Vec2, t float64) float64 {
	if c.arena != nil && !c.arena.Contains(p) {
		return -math.Abs(c.arena.DistanceToBorder(p))
	}
	nearest := math.Inf(1)
	for _, z := range c.zones {
		if !z.Active(t) {
			continue
		}
		if d := z.Shape.Distance(p); d < nearest {
			nearest = d
		}
	}
	return nearest
}

// FindSafestDirection probes sampleCount evenly spaced unit vectors
// around p and returns the one whose probe point maximizes the nearest
// danger distance. Ties go to the lowest sample index; sampleCount <= 0
// uses the configured default.
func (c *Calculator) FindSafestDirection(p geom.Vec2, t float64, sampleCount int) geom.Vec2 {
	if sampleCount <= 0 {
		sampleCount = c.params.DirectionSamples
	}

	best := geom.Vec2{Z: 1}
	bestScore := math.Inf(-1)
	for i := 0; i < sampleCount; i++ {
		dir := geom.Angle(float64(i) * geom.Tau / float64(sampleCount)).Dir()
		score := c.DistanceToNearestDanger(p.Add(dir.Scale(c.params.DirectionProbe)), t)
		if score > bestScore {
			best, bestScore = dir, score
		}
	}
	return best
}

// FindSafestPosition scans a uniform grid over the disk of the given
// radius and returns the cell center with the greatest nearest-danger
// distance that lies inside the arena. Ties go to the first cell in
// scan order, most-negative X then most-negative Z. resolution <= 0
// uses the configured default; when no cell qualifies the center is
// returned unchanged.
func (c *Calculator) FindSafestPosition(center geom.Vec2, radius float64, t float64, resolution int) geom.Vec2 {
	if resolution <= 0 {
		resolution = c.params.GridResolution
	}
	if radius <= 0 || math.IsNaN(radius) {
		return center
	}

	step := 2 * radius / float64(resolution)
	radiusSq := radius * radius

	best := center
	bestScore := math.Inf(-1)
	for ix := 0; ix < resolution; ix++ {
		x := center.X - radius + (float64(ix)+0.5)*step
		for iz := 0; iz < resolution; iz++ {
			p := geom.Vec2{X: x, Z: center.Z - radius + (float64(iz)+0.5)*step}
			if p.DistanceSqTo(center) > radiusSq {
				continue
			}
			if c.arena != nil && !c.arena.Contains(p) {
				continue
			}
			if score := c.DistanceToNearestDanger(p, t); score > bestScore {
				best, bestScore = p, score
			}
		}
	}
	return best
}

// FindSafePositions starts a safe-position query for count points at
// time t. The search region defaults to the arena; chain Within to
// override it.
func (c *Calculator) FindSafePositions(count int, t float64) *PositionQuery {
	q := &PositionQuery{
		calc:       c,
		count:      count,
		at:         t,
		minSpacing: c.params.MinSpacingFloor,
	}
	if c.arena != nil {
		q.center = c.arena.Center()
		q.radius = c.arena.ApproximateRadius()
		q.hasRegion = true
	}
	return q
}

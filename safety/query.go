package safety

import (
	"sort"

	"github.com/ShoOtaku/HaiyaBox/geom"
)

// PositionQuery is a chainable builder over one calculator. The stages
// of Execute run in fixed order: Poisson-disk candidate generation,
// safety filtering, scoring, selection under the angular constraint,
// and final ordering. Queries are transient: build, execute once, drop.
type PositionQuery struct {
	calc  *Calculator
	count int
	at    float64

	center    geom.Vec2
	radius    float64
	hasRegion bool

	target        geom.Vec2
	hasTarget     bool
	maxTargetDist float64 // 0 = unbounded

	minSpacing float64

	angleCenter geom.Vec2
	minAngle    float64
	hasAngle    bool

	orderRef geom.Vec2
	hasOrder bool
}

// QueryStats reports what each pipeline stage produced. All counts are
// per-execution; instrumentation layers record them.
type QueryStats struct {
	Candidates int
	Safe       int
	Selected   int
}

// Within sets the search disk explicitly, overriding the arena-derived
// default.
func (q *PositionQuery) Within(center geom.Vec2, radius float64) *PositionQuery {
	q.center = center
	q.radius = radius
	q.hasRegion = true
	return q
}

// NearTarget keeps only candidates within maxDist of target (maxDist <=
// 0 means unbounded), biases scoring toward it, and orders the final
// list by distance to it unless OrderByDistanceTo overrides.
func (q *PositionQuery) NearTarget(target geom.Vec2, maxDist float64) *PositionQuery {
	q.target = target
	q.hasTarget = true
	q.maxTargetDist = maxDist
	if !q.hasOrder {
		q.orderRef = target
		q.hasOrder = true
	}
	return q
}

// MinDistanceBetween sets the minimum spacing between result points,
// clamped to the configured floor.
func (q *PositionQuery) MinDistanceBetween(d float64) *PositionQuery {
	if d < q.calc.params.MinSpacingFloor {
		d = q.calc.params.MinSpacingFloor
	}
	q.minSpacing = d
	return q
}

// WithMinAngle requires every pair of result points to subtend at least
// minAngle as seen from center.
func (q *PositionQuery) WithMinAngle(center geom.Vec2, minAngle geom.Angle) *PositionQuery {
	q.angleCenter = center
	q.minAngle = float64(minAngle)
	q.hasAngle = true
	return q
}

// OrderByDistanceTo sorts the final list ascending by distance to ref.
func (q *PositionQuery) OrderByDistanceTo(ref geom.Vec2) *PositionQuery {
	q.orderRef = ref
	q.hasOrder = true
	return q
}

// Execute runs the pipeline and returns up to count safe points. An
// underfilled result is not an error; callers relax constraints and
// re-query.
func (q *PositionQuery) Execute() []geom.Vec2 {
	points, _ := q.ExecuteWithStats()
	return points
}

// ExecuteWithStats is Execute plus per-stage counts.
func (q *PositionQuery) ExecuteWithStats() ([]geom.Vec2, QueryStats) {
	var stats QueryStats
	if q.count <= 0 || !q.hasRegion {
		return nil, stats
	}

	candidates := poissonDisk(q.calc.rng, q.center, q.radius, q.minSpacing,
		q.calc.arena, q.calc.params.PoissonAttempts)
	stats.Candidates = len(candidates)

	safe := q.filterSafe(candidates)
	stats.Safe = len(safe)

	scored := q.score(safe)
	selected := q.selectUnderAngle(scored)
	stats.Selected = len(selected)

	if q.hasOrder {
		sort.SliceStable(selected, func(i, j int) bool {
			return selected[i].DistanceSqTo(q.orderRef) < selected[j].DistanceSqTo(q.orderRef)
		})
	}
	return selected, stats
}

func (q *PositionQuery) filterSafe(candidates []geom.Vec2) []geom.Vec2 {
	safe := candidates[:0:0]
	maxSq := q.maxTargetDist * q.maxTargetDist
	for _, c := range candidates {
		if !q.calc.IsSafe(c, q.at) {
			continue
		}
		if q.hasTarget && q.maxTargetDist > 0 && c.DistanceSqTo(q.target) > maxSq {
			continue
		}
		safe = append(safe, c)
	}
	return safe
}

type scoredPoint struct {
	p     geom.Vec2
	score float64
}

// score ranks candidates: deeper safety is worth DangerWeight per unit,
// proximity to the target recovers TargetWeight per unit.
func (q *PositionQuery) score(points []geom.Vec2) []scoredPoint {
	scored := make([]scoredPoint, 0, len(points))
	for _, p := range points {
		s := q.calc.params.DangerWeight * q.calc.DistanceToNearestDanger(p, q.at)
		if q.hasTarget {
			s -= q.calc.params.TargetWeight * p.DistanceTo(q.target)
		}
		scored = append(scored, scoredPoint{p: p, score: s})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	return scored
}

// selectUnderAngle walks the scored list in descending order, accepting
// a candidate only when its bearing from the angular-constraint center
// differs by at least minAngle from every already selected point.
func (q *PositionQuery) selectUnderAngle(scored []scoredPoint) []geom.Vec2 {
	selected := make([]geom.Vec2, 0, q.count)
	for _, sp := range scored {
		if len(selected) >= q.count {
			break
		}
		if q.hasAngle && !q.angularlyClear(sp.p, selected) {
			continue
		}
		selected = append(selected, sp.p)
	}
	return selected
}

func (q *PositionQuery) angularlyClear(p geom.Vec2, selected []geom.Vec2) bool {
	bearing := p.Sub(q.angleCenter).Angle()
	for _, s := range selected {
		if geom.AbsDiff(bearing, s.Sub(q.angleCenter).Angle()) < q.minAngle {
			return false
		}
	}
	return true
}

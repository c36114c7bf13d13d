package main

import (
	"github.com/ShoOtaku/HaiyaBox/aoe"
	"github.com/ShoOtaku/HaiyaBox/arena"
	"github.com/ShoOtaku/HaiyaBox/geom"
	"github.com/ShoOtaku/HaiyaBox/safety"
)

// trial is one synthetic fight the evaluator places positions in.
type trial struct {
	zones  []safety.Zone
	target geom.Vec2
	count  int
	at     float64
}

// evaluatorTrials builds the fixed fight set: a center burst with a
// safe ring, a cleave plus crossing line, and a late arc sweep. The mix
// punishes parameter sets that either hug danger or scatter so far from
// the target that the placement is useless.
func evaluatorTrials() []trial {
	return []trial{
		{
			zones: []safety.Zone{
				safety.NewZone(aoe.NewCircle(12).Distance(geom.Vec2{}), 0),
				safety.NewZone(aoe.NewDonut(22, 40).Distance(geom.Vec2{}), 0),
			},
			target: geom.Vec2{},
			count:  8,
			at:     0,
		},
		{
			zones: []safety.Zone{
				safety.NewZone(aoe.NewCone(35, geom.FromDeg(0), geom.FromDeg(55)).Distance(geom.Vec2{}), 0),
				safety.NewZone(aoe.NewRect(geom.FromDeg(90), 40, 40, 5).Distance(geom.Vec2{}), 1),
			},
			target: geom.Vec2{Z: -15},
			count:  6,
			at:     1,
		},
		{
			zones: []safety.Zone{
				safety.NewZone(aoe.NewArcCapsule(geom.Vec2{X: -20}, geom.FromDeg(200), 6).Distance(geom.Vec2{X: 20}), 2),
				safety.NewZone(aoe.NewCross(geom.FromDeg(45), 38, 4).Distance(geom.Vec2{}), 2),
			},
			target: geom.Vec2{X: 10, Z: 10},
			count:  4,
			at:     2,
		},
	}
}

// FitnessEvaluator scores a parameter vector by running the trial
// fights under several seeds and measuring placement quality.
type FitnessEvaluator struct {
	params *ParamVector
	seeds  []int64
	trials []trial

	lastQuality float64
}

// NewFitnessEvaluator creates an evaluator over the given seeds.
func NewFitnessEvaluator(params *ParamVector, seeds []int64) *FitnessEvaluator {
	return &FitnessEvaluator{
		params: params,
		seeds:  seeds,
		trials: evaluatorTrials(),
	}
}

// Evaluate returns the fitness (lower is better) for raw parameter
// values: negated mean safety margin of placed points, plus penalties
// for underfilled placements and for drifting from the target.
func (e *FitnessEvaluator) Evaluate(raw []float64) float64 {
	clamped := e.params.Clamp(raw)
	engineParams := safety.DefaultParams()
	engineParams.DangerWeight = clamped[0]
	engineParams.TargetWeight = clamped[1]
	engineParams.MinSpacingFloor = clamped[2]
	engineParams.DirectionProbe = clamped[3]

	var marginSum, targetSum float64
	var placed, requested int

	for _, seed := range e.seeds {
		for _, tr := range e.trials {
			calc := safety.NewCalculator(safety.Options{
				Seed:   seed,
				Params: engineParams,
				Arena:  arena.NewCircle(geom.Vec2{}, 40),
			})
			calc.AddZones(tr.zones)

			points := calc.FindSafePositions(tr.count, tr.at).
				MinDistanceBetween(clamped[2]).
				NearTarget(tr.target, 0).
				Execute()

			requested += tr.count
			placed += len(points)
			for _, p := range points {
				marginSum += calc.DistanceToNearestDanger(p, tr.at)
				targetSum += p.DistanceTo(tr.target)
			}
		}
	}

	if placed == 0 {
		e.lastQuality = 0
		return 1e6
	}

	meanMargin := marginSum / float64(placed)
	meanTarget := targetSum / float64(placed)
	fillRate := float64(placed) / float64(requested)
	e.lastQuality = fillRate

	// Reward deep safety, demand fills, keep placements usable.
	return -meanMargin + 40*(1-fillRate) + 0.15*meanTarget
}

// LastQuality returns the fill rate of the most recent evaluation.
func (e *FitnessEvaluator) LastQuality() float64 {
	return e.lastQuality
}

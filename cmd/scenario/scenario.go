package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ShoOtaku/HaiyaBox/aoe"
	"github.com/ShoOtaku/HaiyaBox/arena"
	"github.com/ShoOtaku/HaiyaBox/geom"
	"github.com/ShoOtaku/HaiyaBox/safety"
)

// Scenario is the YAML description of one headless run: a playfield,
// a set of timed zones, and the queries to execute against them.
type Scenario struct {
	Arena   *ArenaSpec  `yaml:"arena"`
	Zones   []ZoneSpec  `yaml:"zones"`
	Queries []QuerySpec `yaml:"queries"`
}

// PointSpec is a 2D point in scenario files.
type PointSpec struct {
	X float64 `yaml:"x"`
	Z float64 `yaml:"z"`
}

func (p PointSpec) vec() geom.Vec2 { return geom.Vec2{X: p.X, Z: p.Z} }

// ArenaSpec describes the playfield.
type ArenaSpec struct {
	Type       string    `yaml:"type"` // circle or rect
	Center     PointSpec `yaml:"center"`
	Radius     float64   `yaml:"radius"`
	Direction  PointSpec `yaml:"direction"`
	HalfWidth  float64   `yaml:"half_width"`
	HalfLength float64   `yaml:"half_length"`
}

// ZoneSpec describes one forbidden zone as an AOE footprint plus its
// anchor and activation time.
type ZoneSpec struct {
	Kind       string  `yaml:"kind"`
	Activation float64 `yaml:"activation"`

	Origin       PointSpec `yaml:"origin"`
	DirectionDeg float64   `yaml:"direction_deg"`
	Radius       float64   `yaml:"radius"`
	InnerRadius  float64   `yaml:"inner_radius"`
	HalfAngleDeg float64   `yaml:"half_angle_deg"`
	HalfWidth    float64   `yaml:"half_width"`
	Front        float64   `yaml:"front"`
	Back         float64   `yaml:"back"`
	Length       float64   `yaml:"length"`
	OrbitOffset  PointSpec `yaml:"orbit_offset"`
	SweepDeg     float64   `yaml:"sweep_deg"`
	Invert       bool      `yaml:"invert"`
}

// QuerySpec describes one safe-position query.
type QuerySpec struct {
	Count      int     `yaml:"count"`
	Time       float64 `yaml:"time"`
	MinSpacing float64 `yaml:"min_spacing"`

	Center *PointSpec `yaml:"center"`
	Radius float64    `yaml:"radius"`

	Target    *PointSpec `yaml:"target"`
	TargetMax float64    `yaml:"target_max"`

	AngleCenter *PointSpec `yaml:"angle_center"`
	MinAngleDeg float64    `yaml:"min_angle_deg"`

	OrderBy *PointSpec `yaml:"order_by"`
}

// LoadScenario parses a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &sc, nil
}

// BuildArena converts the arena spec, or returns nil when absent.
func (s *Scenario) BuildArena() (arena.Bounds, error) {
	spec := s.Arena
	if spec == nil {
		return nil, nil
	}
	switch spec.Type {
	case "circle":
		return arena.NewCircle(spec.Center.vec(), spec.Radius), nil
	case "rect":
		return arena.NewRect(spec.Center.vec(), spec.Direction.vec(),
			spec.HalfWidth, spec.HalfLength), nil
	default:
		return nil, fmt.Errorf("unknown arena type %q", spec.Type)
	}
}

// BuildZones converts every zone spec into a registered forbidden zone.
func (s *Scenario) BuildZones() ([]safety.Zone, error) {
	zones := make([]safety.Zone, 0, len(s.Zones))
	for i, spec := range s.Zones {
		shape, err := spec.footprint()
		if err != nil {
			return nil, fmt.Errorf("zone %d: %w", i, err)
		}
		zones = append(zones, safety.NewZone(shape.Distance(spec.Origin.vec()), spec.Activation))
	}
	return zones, nil
}

func (z ZoneSpec) footprint() (aoe.Shape, error) {
	dir := geom.FromDeg(z.DirectionDeg)
	half := geom.FromDeg(z.HalfAngleDeg)

	var shape aoe.Shape
	switch z.Kind {
	case "circle":
		shape = aoe.NewCircle(z.Radius)
	case "cone":
		shape = aoe.NewCone(z.Radius, dir, half)
	case "donut":
		shape = aoe.NewDonut(z.InnerRadius, z.Radius)
	case "donut_sector":
		shape = aoe.NewDonutSector(z.InnerRadius, z.Radius, dir, half)
	case "rect":
		shape = aoe.NewRect(dir, z.Front, z.Back, z.HalfWidth)
	case "cross":
		shape = aoe.NewCross(dir, z.Length, z.HalfWidth)
	case "tri_cone":
		shape = aoe.NewTriCone(z.Radius, dir, half)
	case "capsule":
		shape = aoe.NewCapsule(dir, z.Length, z.HalfWidth)
	case "arc_capsule":
		shape = aoe.NewArcCapsule(z.OrbitOffset.vec(), geom.FromDeg(z.SweepDeg), z.HalfWidth)
	default:
		return aoe.Shape{}, fmt.Errorf("unknown zone kind %q", z.Kind)
	}

	if z.Invert {
		shape = shape.Inverted()
	}
	return shape, nil
}

// Build assembles the query against the calculator.
func (q QuerySpec) Build(calc *safety.Calculator) *safety.PositionQuery {
	query := calc.FindSafePositions(q.Count, q.Time)
	if q.Center != nil {
		query.Within(q.Center.vec(), q.Radius)
	}
	if q.MinSpacing > 0 {
		query.MinDistanceBetween(q.MinSpacing)
	}
	if q.Target != nil {
		query.NearTarget(q.Target.vec(), q.TargetMax)
	}
	if q.AngleCenter != nil {
		query.WithMinAngle(q.AngleCenter.vec(), geom.FromDeg(q.MinAngleDeg))
	}
	if q.OrderBy != nil {
		query.OrderByDistanceTo(q.OrderBy.vec())
	}
	return query
}

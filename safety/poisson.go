package safety

import (
	"math"
	"math/rand"

	"github.com/ShoOtaku/HaiyaBox/arena"
	"github.com/ShoOtaku/HaiyaBox/geom"
)

// poissonGrid is the background acceleration grid for Bridson-style
// Poisson-disk sampling: cell size minDist/sqrt(2) guarantees at most
// one sample per cell, so the 5x5 neighborhood of a cell covers every
// sample that could violate the spacing.
type poissonGrid struct {
	cellSize float64
	min      geom.Vec2
	cols     int
	cells    []int // index into the sample slice, -1 for empty
}

func newPoissonGrid(center geom.Vec2, radius, minDist float64) *poissonGrid {
	cellSize := minDist / math.Sqrt2
	cols := int(2*radius/cellSize) + 1
	cells := make([]int, cols*cols)
	for i := range cells {
		cells[i] = -1
	}
	return &poissonGrid{
		cellSize: cellSize,
		min:      center.Sub(geom.Vec2{X: radius, Z: radius}),
		cols:     cols,
		cells:    cells,
	}
}

func (g *poissonGrid) cell(p geom.Vec2) (col, row int) {
	return int((p.X - g.min.X) / g.cellSize), int((p.Z - g.min.Z) / g.cellSize)
}

func (g *poissonGrid) insert(p geom.Vec2, idx int) {
	col, row := g.cell(p)
	if col >= 0 && col < g.cols && row >= 0 && row < g.cols {
		g.cells[row*g.cols+col] = idx
	}
}

// tooClose reports whether any accepted sample within the 5x5
// neighborhood of p's cell is closer than minDist.
func (g *poissonGrid) tooClose(p geom.Vec2, samples []geom.Vec2, minDist float64) bool {
	col, row := g.cell(p)
	minDistSq := minDist * minDist
	for dr := -2; dr <= 2; dr++ {
		r := row + dr
		if r < 0 || r >= g.cols {
			continue
		}
		for dc := -2; dc <= 2; dc++ {
			c := col + dc
			if c < 0 || c >= g.cols {
				continue
			}
			if idx := g.cells[r*g.cols+c]; idx >= 0 {
				if p.DistanceSqTo(samples[idx]) < minDistSq {
					return true
				}
			}
		}
	}
	return false
}

// poissonDisk fills the disk of the given radius around center with
// samples no closer than minDist to each other, seeded at center. When
// bounds is non-nil new samples must also fall inside it. attempts is
// the per-sample candidate budget before an active sample retires.
func poissonDisk(rng *rand.Rand, center geom.Vec2, radius, minDist float64, bounds arena.Bounds, attempts int) []geom.Vec2 {
	if radius <= 0 || minDist <= 0 || math.IsNaN(radius) || math.IsNaN(minDist) {
		return nil
	}

	grid := newPoissonGrid(center, radius, minDist)
	samples := []geom.Vec2{center}
	active := []int{0}
	grid.insert(center, 0)

	radiusSq := radius * radius
	for len(active) > 0 {
		pick := rng.Intn(len(active))
		base := samples[active[pick]]

		accepted := false
		for k := 0; k < attempts; k++ {
			dir := geom.Angle(rng.Float64() * geom.Tau).Dir()
			cand := base.Add(dir.Scale(minDist * (1 + rng.Float64())))

			if cand.DistanceSqTo(center) > radiusSq {
				continue
			}
			if bounds != nil && !bounds.Contains(cand) {
				continue
			}
			if grid.tooClose(cand, samples, minDist) {
				continue
			}

			idx := len(samples)
			samples = append(samples, cand)
			grid.insert(cand, idx)
			active = append(active, idx)
			accepted = true
			break
		}

		if !accepted {
			active[pick] = active[len(active)-1]
			active = active[:len(active)-1]
		}
	}
	return samples
}

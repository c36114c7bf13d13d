// Package telemetry records safe-position query activity for headless
// runs and tuning sessions.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// QueryRecord captures one executed safe-position query.
type QueryRecord struct {
	Time       float64 `csv:"t"`          // Query timestamp (caller clock)
	Generation uint64  `csv:"generation"` // Calculator generation at execution
	Requested  int     `csv:"requested"`
	Candidates int     `csv:"candidates"`
	Safe       int     `csv:"safe"`
	Selected   int     `csv:"selected"`
	DurationUS int64   `csv:"duration_us"`
}

// WindowStats holds aggregated statistics for a window of queries.
type WindowStats struct {
	Queries int `csv:"queries"`

	// Fill rate: selected / requested across the window.
	FillRate float64 `csv:"fill_rate"`

	CandidateMean float64 `csv:"candidate_mean"`
	SafeMean      float64 `csv:"safe_mean"`

	DurationMeanUS float64 `csv:"duration_mean_us"`
	DurationP50US  float64 `csv:"duration_p50_us"`
	DurationP90US  float64 `csv:"duration_p90_us"`
}

// Recorder accumulates query records and aggregates them per window.
type Recorder struct {
	windowSize int
	window     []QueryRecord
	total      int
}

// NewRecorder creates a recorder that aggregates windowSize queries at
// a time. windowSize < 1 defaults to 64.
func NewRecorder(windowSize int) *Recorder {
	if windowSize < 1 {
		windowSize = 64
	}
	return &Recorder{windowSize: windowSize}
}

// Record adds one query record. It returns aggregated stats and true
// each time a full window completes.
func (r *Recorder) Record(rec QueryRecord) (WindowStats, bool) {
	r.window = append(r.window, rec)
	r.total++
	if len(r.window) < r.windowSize {
		return WindowStats{}, false
	}
	stats := computeWindow(r.window)
	r.window = r.window[:0]
	return stats, true
}

// Flush aggregates and clears any partial window.
func (r *Recorder) Flush() (WindowStats, bool) {
	if len(r.window) == 0 {
		return WindowStats{}, false
	}
	stats := computeWindow(r.window)
	r.window = r.window[:0]
	return stats, true
}

// Total returns the number of records seen since construction.
func (r *Recorder) Total() int { return r.total }

func computeWindow(records []QueryRecord) WindowStats {
	n := len(records)
	candidates := make([]float64, n)
	safe := make([]float64, n)
	durations := make([]float64, n)
	var requested, selected int

	for i, rec := range records {
		candidates[i] = float64(rec.Candidates)
		safe[i] = float64(rec.Safe)
		durations[i] = float64(rec.DurationUS)
		requested += rec.Requested
		selected += rec.Selected
	}
	sort.Float64s(durations)

	fill := 0.0
	if requested > 0 {
		fill = float64(selected) / float64(requested)
	}

	return WindowStats{
		Queries:        n,
		FillRate:       fill,
		CandidateMean:  stat.Mean(candidates, nil),
		SafeMean:       stat.Mean(safe, nil),
		DurationMeanUS: stat.Mean(durations, nil),
		DurationP50US:  stat.Quantile(0.5, stat.Empirical, durations, nil),
		DurationP90US:  stat.Quantile(0.9, stat.Empirical, durations, nil),
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("queries", s.Queries),
		slog.Float64("fill_rate", s.FillRate),
		slog.Float64("candidate_mean", s.CandidateMean),
		slog.Float64("safe_mean", s.SafeMean),
		slog.Float64("duration_mean_us", s.DurationMeanUS),
		slog.Float64("duration_p50_us", s.DurationP50US),
		slog.Float64("duration_p90_us", s.DurationP90US),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("query_stats",
		"queries", s.Queries,
		"fill_rate", s.FillRate,
		"candidate_mean", s.CandidateMean,
		"safe_mean", s.SafeMean,
		"duration_mean_us", s.DurationMeanUS,
		"duration_p50_us", s.DurationP50US,
		"duration_p90_us", s.DurationP90US,
	)
}

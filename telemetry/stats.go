package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated motion statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Population at window end
	WormCount int `csv:"worms"`

	// Events during window
	WrapEvents int `csv:"wrap_events"`

	// Fraction of coverage grid cells any head visited during the window
	Coverage float64 `csv:"coverage"`

	// Per-tick heading perturbation magnitude (radians)
	TurnMean float64 `csv:"turn_mean"`
	TurnStd  float64 `csv:"turn_std"`

	// Per-worm forward speed (pixels per tick)
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
}

// ComputeSampleStats returns the mean and standard deviation of values.
// Returns zeros for an empty slice.
func ComputeSampleStats(values []float64) (mean, std float64) {
	if len(values) == 0 {
		return 0, 0
	}
	mean = stat.Mean(values, nil)
	if len(values) > 1 {
		std = stat.StdDev(values, nil)
	}
	return mean, std
}

// LogStats logs the window stats via slog.
func (s WindowStats) LogStats() {
	slog.Info("window",
		"tick", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"worms", s.WormCount,
		"wraps", s.WrapEvents,
		"coverage", s.Coverage,
		"turn_mean", s.TurnMean,
		"turn_std", s.TurnStd,
		"speed_mean", s.SpeedMean,
	)
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_end", int64(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("worms", s.WormCount),
		slog.Int("wrap_events", s.WrapEvents),
		slog.Float64("coverage", s.Coverage),
		slog.Float64("turn_mean", s.TurnMean),
		slog.Float64("turn_std", s.TurnStd),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_std", s.SpeedStd),
	)
}

// Package main provides CMA-ES optimization of worm motion parameters for
// screen coverage.
package main

import (
	"github.com/pthm-cable/worms/config"
)

// ParamSpec defines a single optimizable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all optimizable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of optimizable parameters: the
// seed-to-kinematics mapping that shapes how worms wander.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "turn_speed_base", Path: "worm.turn_speed_base", Min: 0.005, Max: 0.10, Default: 0.03},
			{Name: "turn_speed_range", Path: "worm.turn_speed_range", Min: 0.0, Max: 0.15, Default: 0.04},
			{Name: "speed_base", Path: "worm.speed_base", Min: 0.5, Max: 3.0, Default: 1.2},
			{Name: "speed_range", Path: "worm.speed_range", Min: 0.0, Max: 3.0, Default: 1.0},
			{Name: "wobble_rate_base", Path: "worm.wobble_rate_base", Min: 0.5, Max: 6.0, Default: 2.0},
			{Name: "wobble_rate_range", Path: "worm.wobble_rate_range", Min: 0.0, Max: 6.0, Default: 3.0},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		val := v[i]
		if val < spec.Min {
			val = spec.Min
		}
		if val > spec.Max {
			val = spec.Max
		}
		clamped[i] = val
	}
	return clamped
}

// ApplyToConfig applies parameter values to a Config struct.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)

	// Order must match Specs order
	cfg.Worm.TurnSpeedBase = clamped[0]
	cfg.Worm.TurnSpeedRange = clamped[1]
	cfg.Worm.SpeedBase = clamped[2]
	cfg.Worm.SpeedRange = clamped[3]
	cfg.Worm.WobbleRateBase = clamped[4]
	cfg.Worm.WobbleRateRange = clamped[5]
}

// ExtractFromConfig extracts current parameter values from a Config struct.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	return []float64{
		cfg.Worm.TurnSpeedBase,
		cfg.Worm.TurnSpeedRange,
		cfg.Worm.SpeedBase,
		cfg.Worm.SpeedRange,
		cfg.Worm.WobbleRateBase,
		cfg.Worm.WobbleRateRange,
	}
}

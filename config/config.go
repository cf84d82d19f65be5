// Package config provides configuration loading and access for the animation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all animation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	World     WorldConfig     `yaml:"world"`
	Worm      WormConfig      `yaml:"worm"`
	Render    RenderConfig    `yaml:"render"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds world population and boundary parameters.
type WorldConfig struct {
	NumWorms   int     `yaml:"num_worms"`   // Worms spawned at startup, fixed for the run
	WrapMargin float64 `yaml:"wrap_margin"` // Off-screen distance before snapping to the opposite edge
}

// WormConfig holds per-worm kinematic and body parameters.
// Per-worm values are derived from a seed in [0,1): value = base + seed*range.
type WormConfig struct {
	Segments        int     `yaml:"segments"`        // Trail length in segments
	Radius          float64 `yaml:"radius"`          // Head segment radius in pixels
	Spacing         float64 `yaml:"spacing"`         // Initial trail spacing in pixels
	TurnSpeedBase   float64 `yaml:"turn_speed_base"` // Wobble turn amplitude (radians per tick)
	TurnSpeedRange  float64 `yaml:"turn_speed_range"`
	SpeedBase       float64 `yaml:"speed_base"` // Forward speed (pixels per tick)
	SpeedRange      float64 `yaml:"speed_range"`
	WobbleRateBase  float64 `yaml:"wobble_rate_base"` // Wobble oscillation rate (radians per tick)
	WobbleRateRange float64 `yaml:"wobble_rate_range"`
}

// RenderConfig holds compositing and title parameters.
type RenderConfig struct {
	FadeAlpha  float64     `yaml:"fade_alpha"` // Per-frame background fade opacity (motion trails)
	Background ColorConfig `yaml:"background"` // Fade/startup fill color
	Title      string      `yaml:"title"`
	TitleSize  int         `yaml:"title_size"` // Title font size in pixels
	TitleY     int         `yaml:"title_y"`    // Title baseline offset from the top
}

// ColorConfig is an RGB triple in [0,255].
type ColorConfig struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`          // Seconds of sim time per stats window
	PerfCollectorWindow int     `yaml:"perf_collector_window"` // Ticks in the rolling perf window
	CoverageCellSize    float64 `yaml:"coverage_cell_size"`    // Coverage grid cell size in pixels
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32      float32 // Screen.Width as float32
	ScreenH32      float32 // Screen.Height as float32
	TicksPerWindow int     // Telemetry window length in ticks at TargetFPS
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	fps := c.Screen.TargetFPS
	if fps <= 0 {
		fps = 60
	}
	c.Derived.TicksPerWindow = int(c.Telemetry.StatsWindow * float64(fps))
	if c.Derived.TicksPerWindow < 1 {
		c.Derived.TicksPerWindow = 1
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

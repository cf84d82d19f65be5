// Package game owns the animation state and the per-frame tick/draw cycle.
package game

import (
	"log/slog"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/worms/components"
	"github.com/pthm-cable/worms/config"
	"github.com/pthm-cable/worms/renderer"
	"github.com/pthm-cable/worms/systems"
	"github.com/pthm-cable/worms/telemetry"
)

// Options configures a game instance.
type Options struct {
	Seed           int64   // 0 = deterministic index-based spawn seeds
	LogStats       bool    // Log window and perf stats via slog
	StatsWindowSec float64 // Stats window length in sim seconds (<= 0 disables auto flush)
	OutputDir      string  // CSV output directory ("" disables)
	Headless       bool    // Skip all graphics resources
	StepsPerUpdate int     // Simulation ticks per Update call
	ShowStats      bool    // On-screen perf overlay

	// Config overrides the global config for this instance (nil = use Cfg()).
	Config *config.Config

	// StatsCallback, if set, receives every flushed stats window.
	StatsCallback func(telemetry.WindowStats)
}

// Game holds the complete animation state.
type Game struct {
	world *ecs.World
	cfg   *config.Config

	wormMapper *ecs.Map5[
		components.Position,
		components.Heading,
		components.Motion,
		components.Tint,
		components.Trail,
	]
	wormFilter *ecs.Filter5[
		components.Position,
		components.Heading,
		components.Motion,
		components.Tint,
		components.Trail,
	]

	// Rendering (nil in headless mode)
	canvas *renderer.Canvas

	// Telemetry
	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	output    *telemetry.OutputManager

	opts           Options
	tick           int32
	ticksPerWindow int32

	// Cached config values for the hot path
	width, height float32
	margin        float32
	segments      int
	radius        float32
	wormCount     int
}

// NewGameWithOptions creates a game instance. Call after config.Init, and
// after rl.InitWindow unless opts.Headless is set.
func NewGameWithOptions(opts Options) *Game {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}
	world := ecs.NewWorld()

	if opts.StepsPerUpdate < 1 {
		opts.StepsPerUpdate = 1
	}

	g := &Game{
		world: world,
		cfg:   cfg,
		opts:  opts,
		wormMapper: ecs.NewMap5[
			components.Position,
			components.Heading,
			components.Motion,
			components.Tint,
			components.Trail,
		](world),
		wormFilter: ecs.NewFilter5[
			components.Position,
			components.Heading,
			components.Motion,
			components.Tint,
			components.Trail,
		](world),
		width:    cfg.Derived.ScreenW32,
		height:   cfg.Derived.ScreenH32,
		margin:   float32(cfg.World.WrapMargin),
		segments: cfg.Worm.Segments,
		radius:   float32(cfg.Worm.Radius),
	}

	// Telemetry
	g.perf = telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow)
	g.collector = telemetry.NewCollector(
		float64(cfg.Screen.Width), float64(cfg.Screen.Height),
		cfg.Telemetry.CoverageCellSize,
	)
	if opts.StatsWindowSec > 0 {
		fps := cfg.Screen.TargetFPS
		if fps <= 0 {
			fps = 60
		}
		g.ticksPerWindow = int32(opts.StatsWindowSec * float64(fps))
		if g.ticksPerWindow < 1 {
			g.ticksPerWindow = 1
		}
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
	} else {
		g.output = output
		if err := g.output.WriteConfig(cfg); err != nil {
			slog.Warn("failed to write config snapshot", "error", err)
		}
	}

	// Accumulation canvas, seeded with the opaque background fill
	if !opts.Headless {
		bg := cfg.Render.Background
		g.canvas = renderer.NewCanvas(
			int32(cfg.Screen.Width), int32(cfg.Screen.Height),
			rl.Color{R: bg.R, G: bg.G, B: bg.B, A: 255},
		)
	}

	g.spawnWorms(cfg)

	return g
}

// spawnWorms creates the full population once. With Seed 0, worm i gets the
// deterministic seed i/n; a non-zero Seed scatters seeds randomly instead.
func (g *Game) spawnWorms(cfg *config.Config) {
	n := cfg.World.NumWorms
	var rng *rand.Rand
	if g.opts.Seed != 0 {
		rng = rand.New(rand.NewSource(g.opts.Seed))
	}

	for i := 0; i < n; i++ {
		seed := float64(i) / float64(n)
		if rng != nil {
			seed = rng.Float64()
		}
		g.spawnWorm(seed, cfg)
	}
	g.wormCount = n
}

// spawnWorm derives one worm's full state from its seed.
func (g *Game) spawnWorm(seed float64, cfg *config.Config) ecs.Entity {
	pos := systems.ScatterPosition(seed, g.width, g.height)
	heading := components.Heading{Angle: systems.DeriveHeading(seed)}
	motion := systems.DeriveMotion(seed, cfg.Worm)
	tint := components.Tint{Hue: systems.DeriveHue(seed)}

	var trail components.Trail
	trail.Fill(pos, heading.Angle, float32(cfg.Worm.Spacing), cfg.Worm.Segments)

	return g.wormMapper.NewEntity(&pos, &heading, &motion, &tint, &trail)
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.tick
}

// WormCount returns the number of worms in the world.
func (g *Game) WormCount() int {
	return g.wormCount
}

// WormState is a read-only copy of one worm's state, for telemetry, tooling
// and tests.
type WormState struct {
	X, Y      float32
	Angle     float32
	Hue       float32
	Speed     float32
	TrailLen  int
	TrailHead components.Position
}

// Snapshot copies the current state of every worm, in creation order.
func (g *Game) Snapshot() []WormState {
	out := make([]WormState, 0, g.wormCount)
	query := g.wormFilter.Query()
	for query.Next() {
		pos, heading, motion, tint, trail := query.Get()
		out = append(out, WormState{
			X:         pos.X,
			Y:         pos.Y,
			Angle:     heading.Angle,
			Hue:       tint.Hue,
			Speed:     motion.Speed,
			TrailLen:  trail.Count,
			TrailHead: trail.At(0),
		})
	}
	return out
}

// Unload releases all resources.
func (g *Game) Unload() {
	if g.canvas != nil {
		g.canvas.Unload()
	}
	if g.output != nil {
		if err := g.output.Close(); err != nil {
			slog.Warn("failed to close output files", "error", err)
		}
	}
}

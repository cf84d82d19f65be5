package game

import (
	"math"
	"testing"

	"github.com/pthm-cable/worms/config"
)

func init() {
	// Initialize config for tests
	config.MustInit("")
}

func newHeadless(opts Options) *Game {
	opts.Headless = true
	return NewGameWithOptions(opts)
}

func TestNewGameSpawnsConfiguredWorms(t *testing.T) {
	g := newHeadless(Options{})
	defer g.Unload()

	if g.WormCount() != 12 {
		t.Fatalf("expected 12 worms, got %d", g.WormCount())
	}
	snap := g.Snapshot()
	if len(snap) != 12 {
		t.Fatalf("expected 12 worms in snapshot, got %d", len(snap))
	}
}

func TestNewGameHueSpread(t *testing.T) {
	g := newHeadless(Options{})
	defer g.Unload()

	// Worm i gets hue i*30: an even spread around the color wheel
	for i, w := range g.Snapshot() {
		want := float32(i * 30)
		if w.Hue != want {
			t.Errorf("worm %d: expected hue %v, got %v", i, want, w.Hue)
		}
	}
}

func TestTickIncrementsPerStep(t *testing.T) {
	g := newHeadless(Options{})
	defer g.Unload()

	if g.Tick() != 0 {
		t.Fatalf("expected tick 0 at start, got %d", g.Tick())
	}

	last := g.Tick()
	for i := 0; i < 50; i++ {
		g.UpdateHeadless()
		if g.Tick() != last+1 {
			t.Fatalf("expected tick %d, got %d", last+1, g.Tick())
		}
		last = g.Tick()
	}
}

func TestStepsPerUpdate(t *testing.T) {
	g := newHeadless(Options{StepsPerUpdate: 7})
	defer g.Unload()

	g.UpdateHeadless()
	if g.Tick() != 7 {
		t.Errorf("expected tick 7 after one update, got %d", g.Tick())
	}
}

func TestTrailInvariantsOverRun(t *testing.T) {
	g := newHeadless(Options{})
	defer g.Unload()

	segments := config.Cfg().Worm.Segments
	margin := config.Cfg().World.WrapMargin
	w := float64(config.Cfg().Screen.Width)
	h := float64(config.Cfg().Screen.Height)

	for i := 0; i < 2000; i++ {
		g.UpdateHeadless()
	}

	for i, worm := range g.Snapshot() {
		// Trail starts pre-filled, so it is always exactly full
		if worm.TrailLen != segments {
			t.Errorf("worm %d: expected trail length %d, got %d", i, segments, worm.TrailLen)
		}
		// Trail head always matches the current head position
		if worm.TrailHead.X != worm.X || worm.TrailHead.Y != worm.Y {
			t.Errorf("worm %d: trail head (%v, %v) does not match head (%v, %v)",
				i, worm.TrailHead.X, worm.TrailHead.Y, worm.X, worm.Y)
		}
		// Head stays within the wrap bounds
		if float64(worm.X) < -margin || float64(worm.X) > w+margin ||
			float64(worm.Y) < -margin || float64(worm.Y) > h+margin {
			t.Errorf("worm %d: head (%v, %v) outside wrap bounds", i, worm.X, worm.Y)
		}
	}
}

func TestDeterministicRuns(t *testing.T) {
	run := func() []WormState {
		g := newHeadless(Options{})
		defer g.Unload()
		for i := 0; i < 1000; i++ {
			g.UpdateHeadless()
		}
		return g.Snapshot()
	}

	a := run()
	b := run()
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("worm %d diverged between identical runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSeededScatterDiffersFromDefault(t *testing.T) {
	def := newHeadless(Options{})
	defer def.Unload()
	seeded := newHeadless(Options{Seed: 99})
	defer seeded.Unload()

	a := def.Snapshot()
	b := seeded.Snapshot()

	same := 0
	for i := range a {
		if a[i].X == b[i].X && a[i].Y == b[i].Y {
			same++
		}
	}
	if same == len(a) {
		t.Error("seeded run produced identical placement to the deterministic default")
	}
}

func TestFlushStats(t *testing.T) {
	g := newHeadless(Options{})
	defer g.Unload()

	for i := 0; i < 300; i++ {
		g.UpdateHeadless()
	}
	stats := g.FlushStats()

	if stats.WindowEndTick != 300 {
		t.Errorf("expected window end 300, got %d", stats.WindowEndTick)
	}
	if stats.WormCount != 12 {
		t.Errorf("expected 12 worms, got %d", stats.WormCount)
	}
	if stats.Coverage <= 0 {
		t.Errorf("expected positive coverage after 300 ticks, got %v", stats.Coverage)
	}
	// Default worm speeds span 1.2..2.116 with mean near 1.66
	if stats.SpeedMean < 1.2 || stats.SpeedMean > 2.2 {
		t.Errorf("speed mean %v outside expected range", stats.SpeedMean)
	}
	if math.IsNaN(stats.TurnStd) {
		t.Error("turn std is NaN")
	}
	// 5 seconds of sim time at 60 fps
	if math.Abs(stats.SimTimeSec-5.0) > 1e-9 {
		t.Errorf("expected sim time 5.0, got %v", stats.SimTimeSec)
	}
}

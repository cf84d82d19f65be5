package game

import (
	"log/slog"

	"github.com/pthm-cable/worms/systems"
	"github.com/pthm-cable/worms/telemetry"
)

// Update runs one or more simulation ticks based on the configured speed.
func (g *Game) Update() {
	for i := 0; i < g.opts.StepsPerUpdate; i++ {
		g.simulationStep()
	}
}

// UpdateHeadless is Update for runs without a window.
func (g *Game) UpdateHeadless() {
	g.Update()
}

// simulationStep advances the whole world by exactly one tick.
func (g *Game) simulationStep() {
	g.perf.StartTick()
	g.tick++

	// 1. Wobble headings, move heads, wrap at the edges
	g.perf.StartPhase(telemetry.PhaseMotion)
	query := g.wormFilter.Query()
	for query.Next() {
		pos, heading, motion, _, _ := query.Get()

		delta := systems.Wobble(*motion, g.tick)
		heading.Angle += delta
		systems.Advance(pos, heading.Angle, motion.Speed)
		if systems.Wrap(pos, g.width, g.height, g.margin) {
			g.collector.RecordWrap()
		}
		g.collector.RecordTurn(float64(delta))
	}

	// 2. Record the new head positions in the trails
	g.perf.StartPhase(telemetry.PhaseTrail)
	query = g.wormFilter.Query()
	for query.Next() {
		pos, _, _, _, trail := query.Get()
		trail.PushFront(*pos, g.segments)
		g.collector.RecordVisit(float64(pos.X), float64(pos.Y))
	}

	// 3. Window bookkeeping
	g.perf.StartPhase(telemetry.PhaseTelemetry)
	if g.ticksPerWindow > 0 && g.tick%g.ticksPerWindow == 0 {
		g.flushWindow()
	}
	g.perf.EndTick()
}

// flushWindow emits the stats for the window that just ended.
func (g *Game) flushWindow() {
	stats := g.FlushStats()
	perfStats := g.perf.Stats()

	if g.opts.LogStats {
		stats.LogStats()
		perfStats.LogStats()
	}
	if g.opts.StatsCallback != nil {
		g.opts.StatsCallback(stats)
	}

	if g.output != nil {
		if err := g.output.WriteTelemetry(stats); err != nil {
			slog.Warn("failed to write telemetry", "error", err)
		}
		if err := g.output.WritePerf(perfStats, g.tick); err != nil {
			slog.Warn("failed to write perf", "error", err)
		}
	}
}

// FlushStats builds the window stats for the ticks since the last flush and
// resets the collector.
func (g *Game) FlushStats() telemetry.WindowStats {
	speeds := make([]float64, 0, g.wormCount)
	query := g.wormFilter.Query()
	for query.Next() {
		_, _, motion, _, _ := query.Get()
		speeds = append(speeds, float64(motion.Speed))
	}

	fps := g.cfg.Screen.TargetFPS
	if fps <= 0 {
		fps = 60
	}
	simTime := float64(g.tick) / float64(fps)

	return g.collector.Flush(g.tick, simTime, speeds)
}

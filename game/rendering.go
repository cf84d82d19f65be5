package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/worms/renderer"
)

// Draw composes one frame: fade the accumulation canvas, paint every worm in
// creation order, paint the glowing title, then present the canvas.
func (g *Game) Draw() {
	g.perf.RecordFrame()
	cfg := g.cfg

	g.canvas.Begin()

	// Translucent fade instead of a clear: previous frames persist and decay,
	// which is what produces the streaks.
	bg := cfg.Render.Background
	g.canvas.Fade(rl.Color{R: bg.R, G: bg.G, B: bg.B, A: uint8(cfg.Render.FadeAlpha * 255)})

	query := g.wormFilter.Query()
	for query.Next() {
		_, heading, _, tint, trail := query.Get()
		renderer.DrawWorm(trail, heading.Angle, tint.Hue, g.radius)
	}

	renderer.DrawTitle(
		cfg.Render.Title,
		int32(cfg.Screen.Width)/2,
		int32(cfg.Render.TitleY),
		int32(cfg.Render.TitleSize),
	)

	g.canvas.End()

	rl.BeginDrawing()
	g.canvas.Present()
	if g.opts.ShowStats {
		g.drawStatsOverlay()
	}
	rl.EndDrawing()
}

// drawStatsOverlay renders a small perf readout in the corner, on the screen
// rather than the canvas so it does not smear into the trails.
func (g *Game) drawStatsOverlay() {
	stats := g.perf.Stats()
	rl.DrawText(fmt.Sprintf("tick %d", g.tick), 10, 10, 10, rl.Gray)
	rl.DrawText(fmt.Sprintf("%.0f fps  %.0f tps", stats.FPS, stats.TicksPerSecond), 10, 22, 10, rl.Gray)
	rl.DrawText(fmt.Sprintf("coverage %.0f%%", g.collector.Coverage()*100), 10, 34, 10, rl.Gray)
}

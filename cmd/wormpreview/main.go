// Worm parameter preview tool - interactive visualization with sliders.
//
// Usage: go run ./cmd/wormpreview
package main

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/worms/components"
	"github.com/pthm-cable/worms/config"
	"github.com/pthm-cable/worms/renderer"
	"github.com/pthm-cable/worms/systems"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 512
	panelWidth   = windowWidth - previewSize - 30
	previewWorms = 6
	wrapMargin   = 20
)

// WormParams holds the slider-adjustable parameters.
type WormParams struct {
	TurnSpeedBase   float32
	TurnSpeedRange  float32
	SpeedBase       float32
	SpeedRange      float32
	WobbleRateBase  float32
	WobbleRateRange float32
	Segments        int
	Radius          float32
	FadeAlpha       float32
}

// previewWorm is one simulated worm in the preview pane.
type previewWorm struct {
	pos     components.Position
	heading components.Heading
	motion  components.Motion
	hue     float32
	trail   components.Trail
}

func defaultParams(cfg *config.Config) WormParams {
	return WormParams{
		TurnSpeedBase:   float32(cfg.Worm.TurnSpeedBase),
		TurnSpeedRange:  float32(cfg.Worm.TurnSpeedRange),
		SpeedBase:       float32(cfg.Worm.SpeedBase),
		SpeedRange:      float32(cfg.Worm.SpeedRange),
		WobbleRateBase:  float32(cfg.Worm.WobbleRateBase),
		WobbleRateRange: float32(cfg.Worm.WobbleRateRange),
		Segments:        cfg.Worm.Segments,
		Radius:          float32(cfg.Worm.Radius),
		FadeAlpha:       float32(cfg.Render.FadeAlpha),
	}
}

// wormConfig converts slider state back into the config form the kinematics
// derivation consumes.
func (p WormParams) wormConfig() config.WormConfig {
	return config.WormConfig{
		Segments:        p.Segments,
		Radius:          float64(p.Radius),
		Spacing:         10.0,
		TurnSpeedBase:   float64(p.TurnSpeedBase),
		TurnSpeedRange:  float64(p.TurnSpeedRange),
		SpeedBase:       float64(p.SpeedBase),
		SpeedRange:      float64(p.SpeedRange),
		WobbleRateBase:  float64(p.WobbleRateBase),
		WobbleRateRange: float64(p.WobbleRateRange),
	}
}

// spawnWorms rebuilds the preview population from the current parameters.
func spawnWorms(params WormParams) []previewWorm {
	wc := params.wormConfig()
	worms := make([]previewWorm, previewWorms)
	for i := range worms {
		seed := float64(i) / float64(previewWorms)
		w := &worms[i]
		w.pos = systems.ScatterPosition(seed, previewSize, previewSize)
		w.heading.Angle = systems.DeriveHeading(seed)
		w.motion = systems.DeriveMotion(seed, wc)
		w.hue = systems.DeriveHue(seed)
		w.trail.Fill(w.pos, w.heading.Angle, float32(wc.Spacing), params.Segments)
	}
	return worms
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Worm Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	config.MustInit("")
	cfg := config.Cfg()
	bg := cfg.Render.Background
	bgColor := rl.Color{R: bg.R, G: bg.G, B: bg.B, A: 255}

	params := defaultParams(cfg)
	worms := spawnWorms(params)

	canvas := renderer.NewCanvas(previewSize, previewSize, bgColor)
	defer canvas.Unload()

	var tick int32
	respawn := false

	for !rl.WindowShouldClose() {
		if respawn {
			worms = spawnWorms(params)
			canvas.Begin()
			rl.ClearBackground(bgColor)
			canvas.End()
			tick = 0
			respawn = false
		}

		// Simulate one tick
		tick++
		for i := range worms {
			w := &worms[i]
			systems.Step(&w.pos, &w.heading, &w.trail, w.motion,
				previewSize, previewSize, wrapMargin, params.Segments, tick)
		}

		// Draw onto the accumulation canvas
		canvas.Begin()
		canvas.Fade(rl.Color{R: bg.R, G: bg.G, B: bg.B, A: uint8(params.FadeAlpha * 255)})
		for i := range worms {
			w := &worms[i]
			renderer.DrawWorm(&w.trail, w.heading.Angle, w.hue, params.Radius)
		}
		canvas.End()

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Draw preview
		rl.DrawTexturePro(
			canvas.Texture(),
			rl.Rectangle{X: 0, Y: 0, Width: previewSize, Height: -previewSize},
			rl.Rectangle{X: 10, Y: 10, Width: previewSize, Height: previewSize},
			rl.Vector2{},
			0,
			rl.White,
		)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		statsY := int32(previewSize + 25)
		rl.DrawText(fmt.Sprintf("Tick: %d  Worms: %d", tick, len(worms)), 15, statsY, 16, rl.DarkGray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Worm Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		params.TurnSpeedBase, respawn = slider(&panelY, panelX,
			"Turn speed base (wobble amplitude, rad/tick)",
			params.TurnSpeedBase, 0.005, 0.10, "%.3f", respawn)
		params.TurnSpeedRange, respawn = slider(&panelY, panelX,
			"Turn speed range (per-seed spread)",
			params.TurnSpeedRange, 0.0, 0.15, "%.3f", respawn)
		params.SpeedBase, respawn = slider(&panelY, panelX,
			"Speed base (px/tick)",
			params.SpeedBase, 0.5, 3.0, "%.2f", respawn)
		params.SpeedRange, respawn = slider(&panelY, panelX,
			"Speed range (per-seed spread)",
			params.SpeedRange, 0.0, 3.0, "%.2f", respawn)
		params.WobbleRateBase, respawn = slider(&panelY, panelX,
			"Wobble rate base (rad/tick)",
			params.WobbleRateBase, 0.5, 6.0, "%.2f", respawn)
		params.WobbleRateRange, respawn = slider(&panelY, panelX,
			"Wobble rate range (per-seed spread)",
			params.WobbleRateRange, 0.0, 6.0, "%.2f", respawn)

		// Segments slider, integer-valued
		rl.DrawText("Segments (trail length)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newSegments := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"4", "32",
			float32(params.Segments), 4, 32,
		)
		rl.DrawText(fmt.Sprintf("%d", params.Segments), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if int(newSegments) != params.Segments {
			params.Segments = int(newSegments)
			respawn = true
		}
		panelY += 35

		params.Radius, _ = slider(&panelY, panelX,
			"Radius (head segment, px)",
			params.Radius, 2.0, 14.0, "%.1f", false)

		params.FadeAlpha, _ = slider(&panelY, panelX,
			"Fade alpha (trail persistence, lower = longer streaks)",
			params.FadeAlpha, 0.02, 1.0, "%.2f", false)

		panelY += 10

		// Buttons
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Respawn") {
			respawn = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaultParams(cfg)
			respawn = true
		}
		panelY += 55

		// Output YAML
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		for _, line := range yamlLines(params) {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			var yaml string
			for _, line := range yamlLines(params) {
				yaml += line + "\n"
			}
			rl.SetClipboardText(yaml)
		}

		rl.EndDrawing()
	}
}

// slider draws one labeled slider row and advances the panel cursor. Returns
// the new value and whether the respawn flag should now be set.
func slider(panelY *float32, panelX float32, label string, value, min, max float32, format string, respawn bool) (float32, bool) {
	rl.DrawText(label, int32(panelX), int32(*panelY), 14, rl.Gray)
	*panelY += 18
	newValue := gui.SliderBar(
		rl.Rectangle{X: panelX, Y: *panelY, Width: float32(panelWidth - 80), Height: 20},
		fmt.Sprintf(format, min), fmt.Sprintf(format, max),
		value, min, max,
	)
	rl.DrawText(fmt.Sprintf(format, value), int32(panelX+float32(panelWidth-70)), int32(*panelY+2), 16, rl.DarkGray)
	*panelY += 35
	if newValue != value {
		return newValue, true
	}
	return value, respawn
}

func yamlLines(p WormParams) []string {
	return []string{
		"worm:",
		fmt.Sprintf("  segments: %d", p.Segments),
		fmt.Sprintf("  radius: %.1f", p.Radius),
		fmt.Sprintf("  turn_speed_base: %.3f", p.TurnSpeedBase),
		fmt.Sprintf("  turn_speed_range: %.3f", p.TurnSpeedRange),
		fmt.Sprintf("  speed_base: %.2f", p.SpeedBase),
		fmt.Sprintf("  speed_range: %.2f", p.SpeedRange),
		fmt.Sprintf("  wobble_rate_base: %.2f", p.WobbleRateBase),
		fmt.Sprintf("  wobble_rate_range: %.2f", p.WobbleRateRange),
		"render:",
		fmt.Sprintf("  fade_alpha: %.2f", p.FadeAlpha),
	}
}

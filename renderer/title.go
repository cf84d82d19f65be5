package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Title glow look: a purple halo behind a pale fill.
var (
	titleFill = rl.Color{R: 240, G: 224, B: 255, A: 255}
	titleGlow = rl.Color{R: 180, G: 100, B: 255, A: 255}
)

// glowRing offsets approximating a blur: 8 directions per radius step.
var glowOffsets = [8][2]int32{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// DrawTitle draws the title centered at centerX with its baseline near
// baselineY, with a soft glow behind the fill. raylib has no shadow blur, so
// the glow is layered translucent passes; it carries no state to reset.
func DrawTitle(text string, centerX, baselineY, size int32) {
	width := rl.MeasureText(text, size)
	x := centerX - width/2
	y := baselineY - size

	// Widest, faintest ring first so the core glow stacks brighter
	rings := [3]struct {
		radius int32
		alpha  uint8
	}{
		{radius: 6, alpha: 25},
		{radius: 4, alpha: 45},
		{radius: 2, alpha: 70},
	}
	for _, ring := range rings {
		glow := titleGlow
		glow.A = ring.alpha
		for _, off := range glowOffsets {
			rl.DrawText(text, x+off[0]*ring.radius, y+off[1]*ring.radius, size, glow)
		}
	}

	rl.DrawText(text, x, y, size, titleFill)
}

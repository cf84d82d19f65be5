package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HSLA converts an HSL color to an rl.Color. raylib only ships HSV, and the
// worm shading is specified in HSL lightness terms.
// h in degrees (wraps), s and l in [0,100], a in [0,1].
func HSLA(h, s, l, a float32) rl.Color {
	hue := math.Mod(float64(h), 360)
	if hue < 0 {
		hue += 360
	}
	sat := clamp01(float64(s) / 100)
	light := clamp01(float64(l) / 100)

	c := (1 - math.Abs(2*light-1)) * sat
	x := c * (1 - math.Abs(math.Mod(hue/60, 2)-1))
	m := light - c/2

	var r, g, b float64
	switch {
	case hue < 60:
		r, g, b = c, x, 0
	case hue < 120:
		r, g, b = x, c, 0
	case hue < 180:
		r, g, b = 0, c, x
	case hue < 240:
		r, g, b = 0, x, c
	case hue < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return rl.Color{
		R: uint8((r + m) * 255),
		G: uint8((g + m) * 255),
		B: uint8((b + m) * 255),
		A: uint8(clamp01(float64(a)) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

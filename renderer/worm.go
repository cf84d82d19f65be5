package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/worms/components"
)

// Eye geometry, relative to the head segment.
const (
	eyeRadius    = 3.0
	pupilRadius  = 1.5
	eyeForward   = 3.0 // eye center nudge along the heading
	pupilForward = 1.2 // extra pupil nudge, "looking where it's going"
)

// DrawWorm renders a worm body as shaded circles from head to tail, then the
// eyes on the head. radius is the head segment radius; the tail shrinks to
// 40% of it, lightens, and fades.
func DrawWorm(trail *components.Trail, angle, hue, radius float32) {
	total := float32(trail.Count)
	if total == 0 {
		return
	}

	for i := 0; i < trail.Count; i++ {
		t := float32(i) / total
		p := trail.At(i)
		segRadius := radius * (1 - t*0.6)
		lightness := 45 + t*20
		alpha := 1 - t*0.3
		rl.DrawCircleV(rl.Vector2{X: p.X, Y: p.Y}, segRadius, HSLA(hue, 70, lightness, alpha))
	}

	drawEyes(trail.At(0), angle, radius)
}

// drawEyes draws two eyes offset perpendicular to the heading, pupils nudged
// slightly further forward.
func drawEyes(head components.Position, angle, radius float32) {
	cosA := float32(math.Cos(float64(angle)))
	sinA := float32(math.Sin(float64(angle)))
	perp := angle + math.Pi/2
	cosP := float32(math.Cos(float64(perp)))
	sinP := float32(math.Sin(float64(perp)))
	eyeOffset := radius * 0.5

	for _, side := range [2]float32{-1, 1} {
		ex := head.X + cosP*eyeOffset*side + cosA*eyeForward
		ey := head.Y + sinP*eyeOffset*side + sinA*eyeForward

		rl.DrawCircleV(rl.Vector2{X: ex, Y: ey}, eyeRadius, rl.White)
		rl.DrawCircleV(rl.Vector2{X: ex + cosA*pupilForward, Y: ey + sinA*pupilForward}, pupilRadius, rl.Black)
	}
}

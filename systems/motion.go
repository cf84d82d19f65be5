// Package systems implements the per-tick kinematics of the animation,
// kept free of ECS and rendering concerns so it can be tested headless.
package systems

import (
	"math"

	"github.com/pthm-cable/worms/components"
	"github.com/pthm-cable/worms/config"
)

// DeriveMotion maps a spawn seed in [0,1) to a worm's fixed kinematic
// constants. Larger seeds give faster, twitchier worms.
func DeriveMotion(seed float64, wc config.WormConfig) components.Motion {
	return components.Motion{
		TurnSpeed:   float32(wc.TurnSpeedBase + seed*wc.TurnSpeedRange),
		Speed:       float32(wc.SpeedBase + seed*wc.SpeedRange),
		WobblePhase: float32(seed * 2 * math.Pi),
		WobbleRate:  float32(wc.WobbleRateBase + seed*wc.WobbleRateRange),
	}
}

// DeriveHeading maps a spawn seed to an initial heading.
func DeriveHeading(seed float64) float32 {
	return float32(seed * 2 * math.Pi)
}

// DeriveHue maps a spawn seed to a hue in degrees, spreading worms evenly
// around the color wheel.
func DeriveHue(seed float64) float32 {
	return float32(seed * 360.0)
}

// ScatterPosition maps a spawn seed to an initial position. The y factor is a
// low-discrepancy scramble of the seed, not true randomness.
func ScatterPosition(seed float64, width, height float32) components.Position {
	return components.Position{
		X: float32(seed) * width,
		Y: float32(math.Mod(seed*3.7, 1.0)) * height,
	}
}

// Wobble returns the heading perturbation for one tick: a smooth
// deterministic wander, fully reproducible given the tick counter.
func Wobble(m components.Motion, time int32) float32 {
	return float32(math.Sin(float64(time)*float64(m.WobbleRate)+float64(m.WobblePhase))) * m.TurnSpeed
}

// Advance moves pos one tick forward along angle.
func Advance(pos *components.Position, angle, speed float32) {
	pos.X += float32(math.Cos(float64(angle))) * speed
	pos.Y += float32(math.Sin(float64(angle))) * speed
}

// Wrap snaps a position that drifted past the margin to the opposite edge.
// Returns true if either axis wrapped. The trail is left untouched, so the
// frame after a wrap carries one stretched segment.
func Wrap(pos *components.Position, width, height, margin float32) bool {
	wrapped := false
	if pos.X < -margin {
		pos.X = width + margin
		wrapped = true
	} else if pos.X > width+margin {
		pos.X = -margin
		wrapped = true
	}
	if pos.Y < -margin {
		pos.Y = height + margin
		wrapped = true
	} else if pos.Y > height+margin {
		pos.Y = -margin
		wrapped = true
	}
	return wrapped
}

// Step advances one worm by exactly one tick: wobble the heading, move the
// head, wrap at the edges, then record the new head in the trail.
// Returns true if the head wrapped this tick.
func Step(pos *components.Position, heading *components.Heading, trail *components.Trail,
	m components.Motion, width, height, margin float32, segments int, time int32) bool {

	heading.Angle += Wobble(m, time)
	Advance(pos, heading.Angle, m.Speed)
	wrapped := Wrap(pos, width, height, margin)
	trail.PushFront(*pos, segments)
	return wrapped
}

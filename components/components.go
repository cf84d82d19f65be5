// Package components defines ECS components for the worm animation.
package components

import "math"

// Position represents a point in surface space.
type Position struct {
	X, Y float32
}

// Heading represents a worm's direction of travel in radians.
type Heading struct {
	Angle float32
}

// Motion holds a worm's kinematic constants, derived from its seed at spawn
// and fixed for its lifetime.
type Motion struct {
	TurnSpeed   float32 // Wobble amplitude (radians per tick)
	Speed       float32 // Forward speed (pixels per tick)
	WobblePhase float32 // Wobble oscillation phase offset
	WobbleRate  float32 // Wobble oscillation rate (radians per tick)
}

// Tint holds a worm's fixed color hue in degrees [0, 360).
type Tint struct {
	Hue float32
}

// MaxTrailPoints is the trail ring capacity. The configured segment count may
// be anything up to this.
const MaxTrailPoints = 32

// Trail holds a worm's recent head positions, newest first.
// Using a fixed-size ring for better cache locality; segments have no
// identity beyond their recency index.
type Trail struct {
	Points [MaxTrailPoints]Position
	Head   int // ring index of the newest point
	Count  int
}

// PushFront inserts a new head position and truncates the trail to limit.
func (t *Trail) PushFront(p Position, limit int) {
	if limit > MaxTrailPoints {
		limit = MaxTrailPoints
	}
	t.Head = (t.Head - 1 + MaxTrailPoints) % MaxTrailPoints
	t.Points[t.Head] = p
	t.Count++
	if t.Count > limit {
		t.Count = limit
	}
}

// At returns the i-th most recent point. At(0) is the current head.
func (t *Trail) At(i int) Position {
	return t.Points[(t.Head+i)%MaxTrailPoints]
}

// Fill resets the trail to n points extending backward from head along angle,
// spaced evenly. Avoids a visible snap on the first frames after spawn.
func (t *Trail) Fill(head Position, angle, spacing float32, n int) {
	if n > MaxTrailPoints {
		n = MaxTrailPoints
	}
	cos := float32(math.Cos(float64(angle)))
	sin := float32(math.Sin(float64(angle)))

	t.Head = 0
	t.Count = n
	for i := 0; i < n; i++ {
		offset := float32(i) * spacing
		t.Points[i] = Position{
			X: head.X - cos*offset,
			Y: head.Y - sin*offset,
		}
	}
}

package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/worms/components"
	"github.com/pthm-cable/worms/config"
)

func init() {
	// Initialize config for tests
	config.MustInit("")
}

func TestDeriveMotionSeedZero(t *testing.T) {
	m := DeriveMotion(0, config.Cfg().Worm)

	if m.TurnSpeed != 0.03 {
		t.Errorf("expected turn speed 0.03, got %v", m.TurnSpeed)
	}
	if m.Speed != 1.2 {
		t.Errorf("expected speed 1.2, got %v", m.Speed)
	}
	if m.WobblePhase != 0 {
		t.Errorf("expected wobble phase 0, got %v", m.WobblePhase)
	}
	if m.WobbleRate != 2.0 {
		t.Errorf("expected wobble rate 2.0, got %v", m.WobbleRate)
	}
}

func TestDeriveMotionSeedRanges(t *testing.T) {
	wc := config.Cfg().Worm
	tests := []struct {
		name      string
		seed      float64
		turnSpeed float32
		speed     float32
	}{
		{name: "half", seed: 0.5, turnSpeed: 0.05, speed: 1.7},
		{name: "near one", seed: 0.999, turnSpeed: float32(0.03 + 0.999*0.04), speed: float32(1.2 + 0.999*1.0)},
	}

	for _, tt := range tests {
		m := DeriveMotion(tt.seed, wc)
		if math.Abs(float64(m.TurnSpeed-tt.turnSpeed)) > 1e-6 {
			t.Errorf("%s: expected turn speed %v, got %v", tt.name, tt.turnSpeed, m.TurnSpeed)
		}
		if math.Abs(float64(m.Speed-tt.speed)) > 1e-6 {
			t.Errorf("%s: expected speed %v, got %v", tt.name, tt.speed, m.Speed)
		}
	}
}

func TestStepWobbleSeedZero(t *testing.T) {
	// Seed 0 worm at the origin, one tick at time 1: the heading must be
	// exactly sin(1*2.0 + 0) * 0.03.
	wc := config.Cfg().Worm
	m := DeriveMotion(0, wc)
	pos := components.Position{}
	heading := components.Heading{Angle: DeriveHeading(0)}
	var trail components.Trail
	trail.Fill(pos, heading.Angle, float32(wc.Spacing), wc.Segments)

	Step(&pos, &heading, &trail, m, 1000, 1000, 20, wc.Segments, 1)

	want := float32(math.Sin(1*2.0)) * 0.03
	if heading.Angle != want {
		t.Errorf("expected angle %v, got %v", want, heading.Angle)
	}
}

func TestStepDeterminism(t *testing.T) {
	wc := config.Cfg().Worm
	run := func() (components.Position, float32) {
		m := DeriveMotion(0.37, wc)
		pos := components.Position{X: 123, Y: 456}
		heading := components.Heading{Angle: DeriveHeading(0.37)}
		var trail components.Trail
		trail.Fill(pos, heading.Angle, float32(wc.Spacing), wc.Segments)
		for time := int32(1); time <= 500; time++ {
			Step(&pos, &heading, &trail, m, 800, 600, 20, wc.Segments, time)
		}
		return pos, heading.Angle
	}

	p1, a1 := run()
	p2, a2 := run()
	if p1 != p2 || a1 != a2 {
		t.Errorf("identical inputs diverged: (%v, %v) vs (%v, %v)", p1, a1, p2, a2)
	}
}

func TestWrapSnapsToOppositeEdge(t *testing.T) {
	tests := []struct {
		name    string
		in      components.Position
		want    components.Position
		wrapped bool
	}{
		{name: "right overflow", in: components.Position{X: 821, Y: 300}, want: components.Position{X: -20, Y: 300}, wrapped: true},
		{name: "left overflow", in: components.Position{X: -21, Y: 300}, want: components.Position{X: 820, Y: 300}, wrapped: true},
		{name: "bottom overflow", in: components.Position{X: 400, Y: 621}, want: components.Position{X: 400, Y: -20}, wrapped: true},
		{name: "top overflow", in: components.Position{X: 400, Y: -20.5}, want: components.Position{X: 400, Y: 620}, wrapped: true},
		{name: "inside margin", in: components.Position{X: 819, Y: 599}, want: components.Position{X: 819, Y: 599}, wrapped: false},
		{name: "exactly at margin", in: components.Position{X: 820, Y: 620}, want: components.Position{X: 820, Y: 620}, wrapped: false},
	}

	for _, tt := range tests {
		pos := tt.in
		got := Wrap(&pos, 800, 600, 20)
		if pos != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, pos)
		}
		if got != tt.wrapped {
			t.Errorf("%s: expected wrapped=%v, got %v", tt.name, tt.wrapped, got)
		}
	}
}

func TestStepHeadStaysInBounds(t *testing.T) {
	wc := config.Cfg().Worm
	m := DeriveMotion(0.9, wc) // fastest default worm
	pos := components.Position{X: 790, Y: 590}
	heading := components.Heading{Angle: DeriveHeading(0.9)}
	var trail components.Trail
	trail.Fill(pos, heading.Angle, float32(wc.Spacing), wc.Segments)

	const margin = 20
	for time := int32(1); time <= 5000; time++ {
		Step(&pos, &heading, &trail, m, 800, 600, margin, wc.Segments, time)
		if pos.X < -margin || pos.X > 800+margin || pos.Y < -margin || pos.Y > 600+margin {
			t.Fatalf("tick %d: head (%v, %v) outside wrap bounds", time, pos.X, pos.Y)
		}
	}
}

func TestStepTrailTracksHead(t *testing.T) {
	wc := config.Cfg().Worm
	m := DeriveMotion(0.5, wc)
	pos := components.Position{X: 100, Y: 100}
	heading := components.Heading{Angle: DeriveHeading(0.5)}
	var trail components.Trail
	trail.Fill(pos, heading.Angle, float32(wc.Spacing), wc.Segments)

	for time := int32(1); time <= 100; time++ {
		Step(&pos, &heading, &trail, m, 800, 600, 20, wc.Segments, time)

		if trail.Count != wc.Segments {
			t.Fatalf("tick %d: expected trail count %d, got %d", time, wc.Segments, trail.Count)
		}
		if trail.At(0) != pos {
			t.Fatalf("tick %d: trail head %v does not match position %v", time, trail.At(0), pos)
		}
	}
}

func TestScatterPosition(t *testing.T) {
	// seed=0.5: x = 0.5*800 = 400, y = (0.5*3.7 mod 1)*600 = 0.85*600 = 510
	p := ScatterPosition(0.5, 800, 600)
	if p.X != 400 {
		t.Errorf("expected x 400, got %v", p.X)
	}
	if math.Abs(float64(p.Y)-510) > 1e-3 {
		t.Errorf("expected y 510, got %v", p.Y)
	}
}

func TestDeriveHue(t *testing.T) {
	for i := 0; i < 12; i++ {
		hue := DeriveHue(float64(i) / 12.0)
		want := float32(i * 30)
		if hue != want {
			t.Errorf("seed %d/12: expected hue %v, got %v", i, want, hue)
		}
	}
}

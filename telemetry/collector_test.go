package telemetry

import (
	"math"
	"testing"
)

func TestCollectorCoverage(t *testing.T) {
	c := NewCollector(100, 100, 20) // 5x5 grid

	if c.Coverage() != 0 {
		t.Errorf("expected zero coverage before visits, got %v", c.Coverage())
	}

	c.RecordVisit(10, 10)
	c.RecordVisit(15, 15) // same cell
	c.RecordVisit(90, 90)

	want := 2.0 / 25.0
	if math.Abs(c.Coverage()-want) > 1e-9 {
		t.Errorf("expected coverage %v, got %v", want, c.Coverage())
	}
}

func TestCollectorClampsMarginVisits(t *testing.T) {
	c := NewCollector(100, 100, 20)

	// Heads in the wrap margin sit outside the surface
	c.RecordVisit(-15, 50)
	c.RecordVisit(115, 50)
	c.RecordVisit(50, -15)
	c.RecordVisit(50, 115)

	// Four distinct border cells
	want := 4.0 / 25.0
	if math.Abs(c.Coverage()-want) > 1e-9 {
		t.Errorf("expected coverage %v, got %v", want, c.Coverage())
	}
}

func TestCollectorFlushResets(t *testing.T) {
	c := NewCollector(100, 100, 20)

	c.RecordVisit(10, 10)
	c.RecordWrap()
	c.RecordWrap()
	c.RecordTurn(0.02)
	c.RecordTurn(-0.04)

	stats := c.Flush(300, 5.0, []float64{1.2, 1.7, 2.2})

	if stats.WindowStartTick != 0 || stats.WindowEndTick != 300 {
		t.Errorf("expected window [0, 300], got [%d, %d]", stats.WindowStartTick, stats.WindowEndTick)
	}
	if stats.WrapEvents != 2 {
		t.Errorf("expected 2 wrap events, got %d", stats.WrapEvents)
	}
	if stats.WormCount != 3 {
		t.Errorf("expected 3 worms, got %d", stats.WormCount)
	}
	// Turn samples are recorded as magnitudes
	if math.Abs(stats.TurnMean-0.03) > 1e-9 {
		t.Errorf("expected turn mean 0.03, got %v", stats.TurnMean)
	}
	if math.Abs(stats.SpeedMean-1.7) > 1e-9 {
		t.Errorf("expected speed mean 1.7, got %v", stats.SpeedMean)
	}

	// Next window starts fresh
	next := c.Flush(600, 10.0, nil)
	if next.WindowStartTick != 300 {
		t.Errorf("expected next window to start at 300, got %d", next.WindowStartTick)
	}
	if next.WrapEvents != 0 || next.Coverage != 0 || next.TurnMean != 0 {
		t.Errorf("expected reset window, got wraps=%d coverage=%v turn=%v",
			next.WrapEvents, next.Coverage, next.TurnMean)
	}
}

func TestComputeSampleStats(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		mean   float64
		std    float64
	}{
		{name: "empty", values: nil, mean: 0, std: 0},
		{name: "single", values: []float64{2.5}, mean: 2.5, std: 0},
		{name: "spread", values: []float64{1, 2, 3, 4, 5}, mean: 3, std: math.Sqrt(2.5)},
	}

	for _, tt := range tests {
		mean, std := ComputeSampleStats(tt.values)
		if math.Abs(mean-tt.mean) > 1e-9 {
			t.Errorf("%s: expected mean %v, got %v", tt.name, tt.mean, mean)
		}
		if math.Abs(std-tt.std) > 1e-9 {
			t.Errorf("%s: expected std %v, got %v", tt.name, tt.std, std)
		}
	}
}

package telemetry

import "math"

// Collector accumulates per-tick motion events over a stats window.
// Single-threaded, like the simulation that feeds it.
type Collector struct {
	width, height float64
	cellSize      float64
	cols, rows    int

	windowStart int32

	visited      []bool
	visitedCount int
	wrapEvents   int
	turnSamples  []float64
}

// NewCollector creates a collector with a coverage grid of cellSize pixels
// over a width x height surface.
func NewCollector(width, height, cellSize float64) *Collector {
	if cellSize <= 0 {
		cellSize = 20
	}
	cols := int(math.Ceil(width / cellSize))
	rows := int(math.Ceil(height / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &Collector{
		width:    width,
		height:   height,
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		visited:  make([]bool, cols*rows),
	}
}

// RecordVisit marks the coverage cell under a head position. Positions in the
// wrap margin outside the surface clamp to the border cells.
func (c *Collector) RecordVisit(x, y float64) {
	cx := int(x / c.cellSize)
	cy := int(y / c.cellSize)
	if cx < 0 {
		cx = 0
	} else if cx >= c.cols {
		cx = c.cols - 1
	}
	if cy < 0 {
		cy = 0
	} else if cy >= c.rows {
		cy = c.rows - 1
	}
	idx := cy*c.cols + cx
	if !c.visited[idx] {
		c.visited[idx] = true
		c.visitedCount++
	}
}

// RecordWrap counts one edge wrap event.
func (c *Collector) RecordWrap() {
	c.wrapEvents++
}

// RecordTurn records the magnitude of one tick's heading perturbation.
func (c *Collector) RecordTurn(delta float64) {
	c.turnSamples = append(c.turnSamples, math.Abs(delta))
}

// Coverage returns the fraction of grid cells visited so far this window.
func (c *Collector) Coverage() float64 {
	return float64(c.visitedCount) / float64(len(c.visited))
}

// Flush builds the window stats and resets the collector for the next window.
// speeds are the per-worm forward speeds sampled at window end.
func (c *Collector) Flush(windowEnd int32, simTimeSec float64, speeds []float64) WindowStats {
	turnMean, turnStd := ComputeSampleStats(c.turnSamples)
	speedMean, speedStd := ComputeSampleStats(speeds)

	stats := WindowStats{
		WindowStartTick: c.windowStart,
		WindowEndTick:   windowEnd,
		SimTimeSec:      simTimeSec,
		WormCount:       len(speeds),
		WrapEvents:      c.wrapEvents,
		Coverage:        c.Coverage(),
		TurnMean:        turnMean,
		TurnStd:         turnStd,
		SpeedMean:       speedMean,
		SpeedStd:        speedStd,
	}

	c.windowStart = windowEnd
	c.wrapEvents = 0
	c.visitedCount = 0
	for i := range c.visited {
		c.visited[i] = false
	}
	c.turnSamples = c.turnSamples[:0]

	return stats
}

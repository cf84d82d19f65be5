package main

import (
	"sync"

	"github.com/pthm-cable/worms/config"
	"github.com/pthm-cable/worms/game"
	"github.com/pthm-cable/worms/telemetry"
)

// Per-tick turn magnitude above this reads as visible jitter rather than a
// wander; coverage gains past it are not worth it.
const jitterThreshold = 0.06

// FitnessEvaluator runs headless simulations and computes fitness.
type FitnessEvaluator struct {
	params      *ParamVector
	maxTicks    int32
	seeds       []int64
	baseConfig  *config.Config
	statsWindow float64

	mu           sync.Mutex
	lastCoverage float64 // coverage from most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int32, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		maxTicks:    maxTicks,
		seeds:       seeds,
		baseConfig:  baseCfg,
		statsWindow: 10.0, // 10 seconds per window
	}
}

// LastCoverage returns the mean coverage from the most recent evaluation.
func (fe *FitnessEvaluator) LastCoverage() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastCoverage
}

// seedResult holds the result from one seed evaluation.
type seedResult struct {
	coverage float64
	turnMean float64
}

// Evaluate computes fitness for a parameter vector (lower = better).
// Fitness rewards window coverage and penalizes turn rates past the jitter
// threshold.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	// Run all seeds in parallel; each run gets its own config copy
	results := make([]seedResult, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = fe.runSimulation(x, s)
		}(i, seed)
	}
	wg.Wait()

	var totalCoverage, totalPenalty float64
	for _, r := range results {
		totalCoverage += r.coverage
		if r.turnMean > jitterThreshold {
			totalPenalty += (r.turnMean - jitterThreshold) * 2.0
		}
	}

	n := float64(len(fe.seeds))
	avgCoverage := totalCoverage / n

	fe.mu.Lock()
	fe.lastCoverage = avgCoverage
	fe.mu.Unlock()

	return -avgCoverage + totalPenalty/n
}

// runSimulation executes a single headless simulation run and averages the
// per-window stats.
func (fe *FitnessEvaluator) runSimulation(x []float64, seed int64) seedResult {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	var windows []telemetry.WindowStats
	g := game.NewGameWithOptions(game.Options{
		Seed:           seed,
		Headless:       true,
		StatsWindowSec: fe.statsWindow,
		StepsPerUpdate: 1,
		Config:         cfg,
		StatsCallback: func(stats telemetry.WindowStats) {
			windows = append(windows, stats)
		},
	})
	defer g.Unload()

	for g.Tick() < fe.maxTicks {
		g.UpdateHeadless()
	}

	if len(windows) == 0 {
		// Run shorter than one window; take the partial stats
		windows = append(windows, g.FlushStats())
	}

	var result seedResult
	for _, w := range windows {
		result.coverage += w.Coverage
		result.turnMean += w.TurnMean
	}
	result.coverage /= float64(len(windows))
	result.turnMean /= float64(len(windows))
	return result
}

// copyConfig returns a fresh copy of the base config.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}

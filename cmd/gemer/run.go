package main

import (
	"context"
	"log/slog"
	"time"

	"gem-optimizer/internal/optimizer"
	"gem-optimizer/internal/scenario"
)

// ScenarioResult holds the outcome and timing of one scenario run.
type ScenarioResult struct {
	Name   string  `json:"name"`
	Gain   float64 `json:"gain"`
	Food   string  `json:"food,omitempty"`
	TimeMs int64   `json:"timeMs"`
	Report string  `json:"report"`
}

func runScenario(ctx context.Context, sc *scenario.Scenario, pool *optimizer.Pool, cfg optimizer.Config, log *slog.Logger) (ScenarioResult, error) {
	st, err := sc.Resolve(pool)
	if err != nil {
		return ScenarioResult{Name: sc.Name}, err
	}
	sim := st.Simulator(pool, optimizer.WithConfig(cfg), optimizer.WithLogger(log.With("scenario", sc.Name)))

	start := time.Now()
	if err := sim.Run(ctx, st.Options); err != nil {
		return ScenarioResult{Name: sc.Name}, err
	}
	r := ScenarioResult{
		Name:   sc.Name,
		Gain:   sim.Gain(),
		TimeMs: time.Since(start).Milliseconds(),
		Report: sim.Report(),
	}
	if d, ok := sim.Result(); ok {
		if f, fed := d.Food(); fed {
			r.Food = f.Name
		}
	}
	return r, nil
}

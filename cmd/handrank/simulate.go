package main

import (
	"fmt"
	"time"

	"github.com/coder/quartz"

	"github.com/lox/handrank/cmd/handrank/shared"
	"github.com/lox/handrank/internal/report"
	"github.com/lox/handrank/internal/simulate"
)

// SimulateCmd reports category frequencies over many dealt hands
type SimulateCmd struct {
	Hands   int    `kong:"help='Number of hands to deal (overrides config)'"`
	Cards   int    `kong:"help='Cards per hand (overrides config)'"`
	Workers int    `kong:"help='Number of parallel workers (overrides config)'"`
	Seed    *int64 `kong:"help='Simulation seed (overrides config; 0 derives one from the clock)'"`
	Out     string `kong:"help='Also write a JSON report to this path'"`

	clock quartz.Clock
}

func (c *SimulateCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}

	sim := *e.config.Simulation
	if c.Hands > 0 {
		sim.Hands = c.Hands
	}
	if c.Cards > 0 {
		sim.CardsPerHand = c.Cards
	}
	if c.Workers > 0 {
		sim.Workers = c.Workers
	}
	if c.Seed != nil {
		sim.Seed = *c.Seed
	}

	clock := c.clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	if sim.Seed == 0 {
		sim.Seed = clock.Now().UnixNano()
	}

	ctx, cancel := shared.SetupSignalHandler(e.logger)
	defer cancel()

	e.logger.Info("Starting simulation",
		"hands", sim.Hands,
		"cards", sim.CardsPerHand,
		"workers", sim.Workers,
		"seed", sim.Seed)

	start := clock.Now()
	opts := simulate.Options{
		Hands:        sim.Hands,
		CardsPerHand: sim.CardsPerHand,
		Workers:      sim.Workers,
		Seed:         sim.Seed,
	}
	tally, err := simulate.Run(ctx, opts, e.logger)
	if err != nil {
		return err
	}

	e.logger.Info("Simulation complete", "hands", tally.Total(), "elapsed", clock.Since(start).Round(time.Millisecond))
	e.renderer.Println(e.renderer.Tally(tally))

	if c.Out != "" {
		if err := report.Write(c.Out, report.New(opts, tally)); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		e.logger.Info("Wrote report", "path", c.Out)
	}
	return nil
}

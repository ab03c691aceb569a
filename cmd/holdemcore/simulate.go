package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/holdemcore/internal/config"
	"github.com/lox/holdemcore/internal/simulator"
	"github.com/lox/holdemcore/internal/statistics"
)

// SimulateCmd plays bot-vs-bot hands and reports the hero's winrate.
type SimulateCmd struct {
	Config   string `short:"c" help:"Path to HCL session config (overrides the flags below)"`
	Hands    int    `default:"10000" help:"Number of hands to simulate"`
	Seats    int    `default:"6" help:"Seats at the table"`
	Hero     string `default:"chart" help:"Hero strategy: fold, call, rand, chart"`
	Opponent  string `default:"call" help:"Opponent strategy: fold, call, rand, chart"`
	Seed      int64  `help:"RNG seed (0 derives one from the clock)"`
	RecordDir string `help:"Write a .phh hand history file per hand to this directory"`
}

func (c *SimulateCmd) Run(logger *log.Logger) error {
	cfg := simulator.Config{
		Hands:        c.Hands,
		Seats:        c.Seats,
		HeroStrategy: c.Hero,
		OppStrategy:  c.Opponent,
		Seed:         c.Seed,
		RecordDir:    c.RecordDir,
		Logger:       logger,
	}

	if c.Config != "" {
		sessionCfg, err := config.LoadSessionConfig(c.Config)
		if err != nil {
			return err
		}
		// The first configured player is the hero; the second supplies the
		// opponent strategy for the remaining seats.
		cfg.Hands = sessionCfg.Session.Hands
		cfg.Seats = len(sessionCfg.Players)
		cfg.SmallBlind = sessionCfg.Session.SmallBlind
		cfg.BigBlind = sessionCfg.Session.BigBlind
		cfg.StartingStack = sessionCfg.Session.StartingStack
		cfg.Seed = sessionCfg.Session.Seed
		cfg.HeroStrategy = sessionCfg.Players[0].Strategy
		cfg.OppStrategy = sessionCfg.Players[1].Strategy
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger.Info("starting simulation", "hands", cfg.Hands, "seats", cfg.Seats,
		"hero", cfg.HeroStrategy, "opponents", cfg.OppStrategy, "seed", cfg.Seed)

	start := time.Now()
	stats, err := simulator.New(cfg).Run()
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	printReport(stats, cfg, elapsed)
	return nil
}

func printReport(stats *statistics.Statistics, cfg simulator.Config, elapsed time.Duration) {
	low, high := stats.ConfidenceInterval95()

	fmt.Printf("simulated %d hands (%s hero vs %s x%d) in %v\n\n",
		stats.Hands, cfg.HeroStrategy, cfg.OppStrategy, cfg.Seats-1, elapsed.Round(time.Millisecond))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "winrate\t%.3f bb/hand\n", stats.Mean())
	fmt.Fprintf(w, "95%% CI\t%.3f to %.3f\n", low, high)
	fmt.Fprintf(w, "std dev\t%.3f\n", stats.StdDev())
	fmt.Fprintf(w, "median\t%.3f\n", stats.Median())
	fmt.Fprintf(w, "showdown\t%d wins, %.1f bb\n", stats.ShowdownWins, stats.ShowdownBB)
	fmt.Fprintf(w, "fold equity\t%d wins, %.1f bb\n", stats.NonShowdownWins, stats.NonShowdownBB)
	fmt.Fprintf(w, "biggest pot\t%.1f bb\n", stats.MaxPotBB)
	w.Flush()

	fmt.Println("\nby seat (relative to button):")
	seatW := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for seat := 0; seat < statistics.MaxSeats; seat++ {
		if stats.SeatResults[seat].Hands == 0 {
			continue
		}
		fmt.Fprintf(seatW, "seat %d\t%d hands\t%.3f bb/hand\n", seat, stats.SeatResults[seat].Hands, stats.SeatMean(seat))
	}
	seatW.Flush()
}

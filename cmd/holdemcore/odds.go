package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/holdemcore/internal/equity"
	"github.com/lox/holdemcore/poker"
)

// OddsCmd estimates hero equity against random opponents.
type OddsCmd struct {
	Hole      string `arg:"" help:"Hero hole cards, e.g. 'AsKd'"`
	Board     string `short:"b" help:"Community cards, e.g. 'Td7s8h'"`
	Opponents int    `short:"o" default:"1" help:"Number of random opponents"`
	Samples   int    `short:"n" default:"100000" help:"Monte Carlo samples"`
	Seed      *int64 `help:"Random seed for reproducible results"`
}

var (
	oddsHandStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	oddsWinStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	oddsInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

func (c *OddsCmd) Run(logger *log.Logger) error {
	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}
	rng := rand.New(rand.NewSource(seed))

	hole, err := poker.ParseCards(c.Hole)
	if err != nil {
		return fmt.Errorf("parsing hole cards: %w", err)
	}
	if len(hole) != 2 {
		return fmt.Errorf("hole must be exactly 2 cards, got %d", len(hole))
	}

	var board []poker.Card
	if c.Board != "" {
		board, err = poker.ParseCards(c.Board)
		if err != nil {
			return fmt.Errorf("parsing board: %w", err)
		}
	}
	if err := validateNoDuplicates(hole, board); err != nil {
		return err
	}

	logger.Debug("estimating equity", "hole", poker.CardsString(hole),
		"board", poker.CardsString(board), "opponents", c.Opponents, "samples", c.Samples)

	start := time.Now()
	eq, err := equity.Estimate(equity.Request{
		Hole:      hole,
		Board:     board,
		Opponents: c.Opponents,
		Samples:   c.Samples,
	}, rng)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	boardLabel := "preflop"
	if len(board) > 0 {
		boardLabel = poker.CardsString(board)
	}
	fmt.Printf("%s on %s vs %d random: %s\n",
		oddsHandStyle.Render(poker.CardsString(hole)),
		boardLabel,
		c.Opponents,
		oddsWinStyle.Render(fmt.Sprintf("%.1f%% equity", eq*100)))
	fmt.Println(oddsInfoStyle.Render(fmt.Sprintf("%d samples in %v (seed %d)", c.Samples, elapsed.Round(time.Millisecond), seed)))

	return nil
}

func validateNoDuplicates(hole, board []poker.Card) error {
	seen := make(map[poker.Card]bool)
	for _, card := range append(append([]poker.Card{}, hole...), board...) {
		if seen[card] {
			return fmt.Errorf("duplicate card: %s", card)
		}
		seen[card] = true
	}
	return nil
}

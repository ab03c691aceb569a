// Package simulator plays bot-vs-bot sessions and aggregates the hero
// seat's results. Each hand runs on a fresh table with its own seed so any
// single hand can be replayed in isolation.
package simulator

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/holdemcore/internal/bot"
	"github.com/lox/holdemcore/internal/game"
	"github.com/lox/holdemcore/internal/handid"
	"github.com/lox/holdemcore/internal/phh"
	"github.com/lox/holdemcore/internal/statistics"
)

// Config holds simulation parameters.
type Config struct {
	Hands         int
	Seats         int // total seats including the hero
	HeroStrategy  string
	OppStrategy   string
	SmallBlind    int
	BigBlind      int
	StartingStack int
	Seed          int64
	Timeout       time.Duration // per-hand hang protection
	RecordDir     string        // write a .phh file per hand when set
	Logger        *log.Logger
}

// Simulator runs poker hand simulations.
type Simulator struct {
	config Config
}

// New creates a simulator. Zero-value config fields get defaults: 6 seats,
// 10/20 blinds, 2000 stacks, 5s hand timeout.
func New(config Config) *Simulator {
	if config.Seats == 0 {
		config.Seats = 6
	}
	if config.SmallBlind == 0 {
		config.SmallBlind = 10
	}
	if config.BigBlind == 0 {
		config.BigBlind = 2 * config.SmallBlind
	}
	if config.StartingStack == 0 {
		config.StartingStack = 100 * config.BigBlind
	}
	if config.Timeout == 0 {
		config.Timeout = 5 * time.Second
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	return &Simulator{config: config}
}

// Run plays the configured number of hands and returns hero statistics.
// The hero seat rotates each hand to remove positional bias.
func (s *Simulator) Run() (*statistics.Statistics, error) {
	stats := statistics.New(s.config.BigBlind)

	for hand := 0; hand < s.config.Hands; hand++ {
		handSeed := s.config.Seed + int64(hand)
		heroSeat := hand % s.config.Seats

		result, err := s.playHandWithTimeout(handSeed, heroSeat)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", hand+1, err)
		}
		stats.Add(result)
	}

	if stats.Hands > 0 {
		if err := stats.Validate(); err != nil {
			return nil, fmt.Errorf("statistics validation failed: %w", err)
		}
	}
	return stats, nil
}

// playHandWithTimeout bounds a single hand so a stuck decision loop fails
// the run instead of hanging it.
func (s *Simulator) playHandWithTimeout(handSeed int64, heroSeat int) (statistics.HandResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.Timeout)
	defer cancel()

	resultCh := make(chan statistics.HandResult, 1)
	errCh := make(chan error, 1)

	go func() {
		result, err := s.playHand(handSeed, heroSeat)
		if err != nil {
			errCh <- err
			return
		}
		resultCh <- result
	}()

	select {
	case result := <-resultCh:
		return result, nil
	case err := <-errCh:
		return statistics.HandResult{}, err
	case <-ctx.Done():
		return statistics.HandResult{}, fmt.Errorf("hand timed out after %v (seed %d, hero seat %d)",
			s.config.Timeout, handSeed, heroSeat)
	}
}

func (s *Simulator) playHand(handSeed int64, heroSeat int) (statistics.HandResult, error) {
	handRng := rand.New(rand.NewSource(handSeed))

	names := make([]string, s.config.Seats)
	for i := range names {
		names[i] = fmt.Sprintf("opp-%d", i)
	}
	names[heroSeat] = "hero"

	table, err := game.NewTable(handRng, names, game.TableConfig{
		SmallBlind:    s.config.SmallBlind,
		BigBlind:      s.config.BigBlind,
		StartingStack: s.config.StartingStack,
	})
	if err != nil {
		return statistics.HandResult{}, err
	}

	agents := make([]game.Agent, s.config.Seats)
	for seat := range agents {
		strategy := s.config.OppStrategy
		if seat == heroSeat {
			strategy = s.config.HeroStrategy
		}
		agent, err := bot.New(strategy, handRng, s.config.Logger)
		if err != nil {
			return statistics.HandResult{}, err
		}
		agents[seat] = agent
	}

	g, err := game.NewGame(table, agents, s.config.Logger)
	if err != nil {
		return statistics.HandResult{}, err
	}

	starting := make([]int, len(table.Players))
	for i, p := range table.Players {
		starting[i] = p.Stack
	}

	handResult, err := g.PlayHand()
	if err != nil {
		return statistics.HandResult{}, err
	}

	if s.config.RecordDir != "" {
		record := phh.FromHand(table, starting, handResult, handid.New())
		if err := phh.Save(s.config.RecordDir, record); err != nil {
			return statistics.HandResult{}, err
		}
	}

	net := table.Players[heroSeat].Stack - starting[heroSeat]
	return statistics.HandResult{
		NetBB:          float64(net) / float64(s.config.BigBlind),
		Seed:           handSeed,
		Seat:           heroSeat,
		WentToShowdown: !handResult.WonByFold && handResult.StreetReached == game.ShowdownStreet,
		FinalPot:       handResult.Pot,
		StreetReached:  handResult.StreetReached.String(),
	}, nil
}

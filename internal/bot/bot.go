// Package bot provides decision strategies for automated seats. Every bot
// satisfies game.Agent and decides from the read-only table view alone.
package bot

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/lox/holdemcore/internal/game"
)

// Strategy names accepted by New and by session config files.
const (
	StrategyFold  = "fold"
	StrategyCall  = "call"
	StrategyRand  = "rand"
	StrategyChart = "chart"
)

// New builds a bot by strategy name. The rng is only used by strategies
// that randomize; deterministic bots ignore it.
func New(strategy string, rng *rand.Rand, logger *log.Logger) (game.Agent, error) {
	switch strategy {
	case StrategyFold:
		return NewFoldBot(logger), nil
	case StrategyCall:
		return NewCallBot(logger), nil
	case StrategyRand:
		return NewRandBot(rng, logger), nil
	case StrategyChart:
		return NewChartBot(logger), nil
	default:
		return nil, fmt.Errorf("unknown bot strategy %q", strategy)
	}
}

// Strategies returns the recognized strategy names.
func Strategies() []string {
	return []string{StrategyFold, StrategyCall, StrategyRand, StrategyChart}
}

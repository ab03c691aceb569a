package bot

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/lox/holdemcore/internal/game"
)

// RandBot makes uniform random legal actions. Raises are sized randomly
// between a min-raise and a pot-sized raise.
type RandBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewRandBot creates a new RandBot instance. The rng must not be nil;
// inject a seeded source for reproducible simulations.
func NewRandBot(rng *rand.Rand, logger *log.Logger) *RandBot {
	if rng == nil {
		panic("bot: nil rng")
	}
	return &RandBot{rng: rng, logger: logger.WithPrefix("rand-bot")}
}

func (b *RandBot) MakeDecision(view game.TableView) game.Decision {
	actions := legalActions(view)
	choice := actions[b.rng.Intn(len(actions))]

	var amount int
	if choice == game.Raise {
		amount = b.raiseAmount(view)
	}

	b.logger.Debug("random action", "seat", view.Seat, "action", choice, "amount", amount)
	return game.Decision{Action: choice, Amount: amount}
}

func (b *RandBot) raiseAmount(view game.TableView) int {
	min := view.BigBlind
	max := view.Pot
	if max < min {
		max = min
	}
	budget := view.Stack - view.ToCall
	if max > budget {
		max = budget
	}
	if max <= min {
		return min
	}
	return min + b.rng.Intn(max-min+1)
}

// legalActions lists the actions worth distinguishing for this view. Fold
// is only offered when facing a bet; folding a free hand is never useful.
func legalActions(view game.TableView) []game.Action {
	if view.ToCall == 0 {
		return []game.Action{game.Check, game.Raise}
	}
	if view.Stack <= view.ToCall {
		return []game.Action{game.Fold, game.Call}
	}
	return []game.Action{game.Fold, game.Call, game.Raise}
}

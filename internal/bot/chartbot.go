package bot

import (
	"github.com/charmbracelet/log"

	"github.com/lox/holdemcore/internal/game"
	"github.com/lox/holdemcore/poker"
)

// ChartBot plays a fixed preflop chart by hole-card category and a simple
// made-hand policy after the flop: bet a pair or better, check or fold
// everything else.
type ChartBot struct {
	logger *log.Logger
}

// NewChartBot creates a new ChartBot instance
func NewChartBot(logger *log.Logger) *ChartBot {
	return &ChartBot{logger: logger.WithPrefix("chart-bot")}
}

func (b *ChartBot) MakeDecision(view game.TableView) game.Decision {
	if view.Street == game.Preflop {
		return b.preflop(view)
	}
	return b.postflop(view)
}

func (b *ChartBot) preflop(view game.TableView) game.Decision {
	if len(view.Hole) != 2 {
		return checkOrFold(view)
	}
	category := poker.CategorizeHoleCards(view.Hole[0], view.Hole[1])
	b.logger.Debug("preflop chart", "seat", view.Seat, "hole", poker.CardsString(view.Hole), "category", category)

	switch category {
	case poker.CategoryPremium:
		// Short stacks shove, deep stacks raise three big blinds.
		if view.Stack <= 20*view.BigBlind {
			return game.Decision{Action: game.AllIn}
		}
		return game.Decision{Action: game.Raise, Amount: 3 * view.BigBlind}
	case poker.CategoryStrong:
		return game.Decision{Action: game.Raise, Amount: 2 * view.BigBlind}
	case poker.CategoryMedium, poker.CategoryWeak:
		// Speculative hands see a cheap flop but never build the pot.
		if view.ToCall <= 2*view.BigBlind {
			return checkOrCall(view)
		}
		return game.Decision{Action: game.Fold}
	default:
		return checkOrFold(view)
	}
}

func (b *ChartBot) postflop(view game.TableView) game.Decision {
	eval, _, err := poker.EvaluateBest(append(append([]poker.Card{}, view.Hole...), view.Board...))
	if err != nil {
		return checkOrFold(view)
	}
	b.logger.Debug("postflop strength", "seat", view.Seat, "street", view.Street, "made", eval.Category)

	switch {
	case eval.Category >= poker.ThreeOfAKind:
		if view.ToCall == 0 {
			return game.Decision{Action: game.Raise, Amount: view.Pot / 2}
		}
		return game.Decision{Action: game.Raise, Amount: view.ToCall}
	case eval.Category >= poker.OnePair:
		return checkOrCall(view)
	default:
		return checkOrFold(view)
	}
}

func checkOrCall(view game.TableView) game.Decision {
	if view.ToCall == 0 {
		return game.Decision{Action: game.Check}
	}
	return game.Decision{Action: game.Call}
}

func checkOrFold(view game.TableView) game.Decision {
	if view.ToCall == 0 {
		return game.Decision{Action: game.Check}
	}
	return game.Decision{Action: game.Fold}
}

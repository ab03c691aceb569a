package bot

import (
	"github.com/charmbracelet/log"

	"github.com/lox/holdemcore/internal/game"
)

// CallBot is a passive station: it checks when free and calls any bet it
// can afford, never raising.
type CallBot struct {
	logger *log.Logger
}

// NewCallBot creates a new CallBot instance
func NewCallBot(logger *log.Logger) *CallBot {
	return &CallBot{logger: logger.WithPrefix("call-bot")}
}

func (b *CallBot) MakeDecision(view game.TableView) game.Decision {
	if view.ToCall == 0 {
		return game.Decision{Action: game.Check}
	}
	b.logger.Debug("calling", "seat", view.Seat, "toCall", view.ToCall, "stack", view.Stack)
	return game.Decision{Action: game.Call}
}

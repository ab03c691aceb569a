package bot

import (
	"github.com/charmbracelet/log"

	"github.com/lox/holdemcore/internal/game"
)

// FoldBot checks when the action is free and folds to any bet. Useful as a
// simulation baseline: any strategy should beat it.
type FoldBot struct {
	logger *log.Logger
}

// NewFoldBot creates a new FoldBot instance
func NewFoldBot(logger *log.Logger) *FoldBot {
	return &FoldBot{logger: logger.WithPrefix("fold-bot")}
}

func (b *FoldBot) MakeDecision(view game.TableView) game.Decision {
	if view.ToCall == 0 {
		return game.Decision{Action: game.Check}
	}
	b.logger.Debug("folding to bet", "seat", view.Seat, "toCall", view.ToCall)
	return game.Decision{Action: game.Fold}
}

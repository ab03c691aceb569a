package game

import (
	"github.com/lox/holdemcore/poker"
)

// Decision is an agent's chosen action. Amount is the raise-by amount and
// is meaningful only for Raise; it is ignored otherwise.
type Decision struct {
	Action Action
	Amount int
}

// TableView is the read-only snapshot handed to an agent when it is asked
// to act. Only the acting seat's hole cards are included.
type TableView struct {
	Seat       int
	Name       string
	Stack      int
	Bet        int
	Hole       []poker.Card
	Board      []poker.Card
	Street     Street
	Pot        int
	CurrentBet int
	ToCall     int
	BigBlind   int
}

// Agent is any entity that can make decisions for a seat: a human-input
// adapter, a scripted bot, or a learned-strategy adapter. The engine is
// polymorphic over this single capability and does not care how the
// decision was produced.
type Agent interface {
	MakeDecision(view TableView) Decision
}

// AgentFunc adapts a plain function to the Agent interface.
type AgentFunc func(view TableView) Decision

func (f AgentFunc) MakeDecision(view TableView) Decision {
	return f(view)
}

package game

import (
	"github.com/lox/holdemcore/poker"
)

// Player represents a seat in a hand. Stack and Bet are owned exclusively
// by the engine while a hand is in progress; Bet is the amount committed
// during the current street only.
type Player struct {
	Seat   int
	Name   string
	Stack  int
	Hole   []poker.Card
	InHand bool
	Bet    int
}

// ResetForHand clears per-hand state while preserving the stack. Seats
// with no chips sit the hand out.
func (p *Player) ResetForHand() {
	p.Hole = nil
	p.InHand = p.Stack > 0
	p.Bet = 0
}

// CanAct returns true if the player still owes decisions: contesting the
// pot with chips behind.
func (p *Player) CanAct() bool {
	return p.InHand && p.Stack > 0
}

package game

import (
	"github.com/charmbracelet/log"
)

// BettingRound drives one street of betting to completion. Termination is
// tracked with a single counter of seats that still owe a decision since
// the last raise; a raise re-opens the action for every other in-hand seat.
type BettingRound struct {
	table      *Table
	street     Street
	currentBet int
	toGo       int
	logger     *log.Logger
}

// NewBettingRound prepares a betting round for one street. currentBet is
// the bet to match at street start: the big blind preflop, zero after.
func NewBettingRound(table *Table, street Street, currentBet int, logger *log.Logger) *BettingRound {
	return &BettingRound{
		table:      table,
		street:     street,
		currentBet: currentBet,
		logger:     logger.WithPrefix("betting").With("street", street),
	}
}

// Run solicits decisions round-robin starting at firstSeat until the
// street closes, mutating stacks, bets and the pot. Agents are indexed by
// seat. Returns the final bet level for the street.
//
// The engine never rejects a well-formed action; a check while owing chips
// is reinterpreted as a call for the owed amount so pot accounting stays
// consistent. Malformed decisions are the agent's responsibility.
func (br *BettingRound) Run(firstSeat int, agents []Agent) int {
	t := br.table
	if t.InHandCount() <= 1 {
		return br.currentBet
	}

	// Every in-hand seat owes one decision to open the street. Seats that
	// are already all-in are counted here and consumed as they are skipped.
	br.toGo = t.InHandCount()

	n := len(t.Players)
	seat := firstSeat % n

	for {
		if t.InHandCount() <= 1 {
			break
		}

		p := t.Players[seat]

		if !p.InHand {
			seat = (seat + 1) % n
			continue
		}

		if p.Stack == 0 {
			// All-in seats cannot act again; they count as having acted.
			br.toGo--
			if br.toGo <= 0 {
				break
			}
			seat = (seat + 1) % n
			continue
		}

		decision := agents[seat].MakeDecision(t.View(seat, br.street, br.currentBet))
		br.apply(p, decision)

		if br.toGo <= 0 {
			break
		}
		seat = (seat + 1) % n
	}

	return br.currentBet
}

// apply mutates the table for a single decision and updates the counter.
func (br *BettingRound) apply(p *Player, decision Decision) {
	t := br.table
	owed := max(0, br.currentBet-p.Bet)

	switch decision.Action {
	case Fold:
		p.InHand = false
		br.toGo--
		br.record(p, Fold, 0)
		br.logger.Debug("fold", "seat", p.Seat, "name", p.Name)

	case Call:
		pay := min(owed, p.Stack)
		t.Commit(p, pay)
		br.toGo--
		br.record(p, Call, pay)
		br.logger.Debug("call", "seat", p.Seat, "name", p.Name, "paid", pay)

	case Raise:
		pay := owed + min(max(0, decision.Amount), p.Stack-owed)
		t.Commit(p, pay)
		if p.Bet > br.currentBet {
			br.currentBet = p.Bet
			br.toGo = t.InHandCount() - 1
			br.record(p, Raise, pay)
			br.logger.Debug("raise", "seat", p.Seat, "name", p.Name, "to", br.currentBet)
		} else {
			// Short raise that cannot beat the bet level counts as a call.
			br.toGo--
			br.record(p, Call, pay)
			br.logger.Debug("raise as call", "seat", p.Seat, "name", p.Name, "paid", pay)
		}

	case AllIn:
		pay := p.Stack
		t.Commit(p, pay)
		if p.Bet > br.currentBet {
			br.currentBet = p.Bet
			br.toGo = t.InHandCount() - 1
			br.record(p, Raise, pay)
			br.logger.Debug("all-in raise", "seat", p.Seat, "name", p.Name, "to", br.currentBet)
		} else {
			br.toGo--
			br.record(p, Call, pay)
			br.logger.Debug("all-in call", "seat", p.Seat, "name", p.Name, "paid", pay)
		}

	default:
		// Check, including any unrecognized action so a buggy agent cannot
		// stall the round. A check while actually behind is an explicit
		// call coercion for the owed amount, capped at the remaining stack.
		if owed > 0 {
			pay := min(owed, p.Stack)
			t.Commit(p, pay)
			br.record(p, Call, pay)
			br.logger.Debug("check coerced to call", "seat", p.Seat, "name", p.Name, "paid", pay)
		} else {
			br.record(p, Check, 0)
			br.logger.Debug("check", "seat", p.Seat, "name", p.Name)
		}
		br.toGo--
	}
}

// record appends the action, normalized by effect, to the hand history.
func (br *BettingRound) record(p *Player, action Action, paid int) {
	br.table.History = append(br.table.History, ActionRecord{
		Street: br.street,
		Seat:   p.Seat,
		Action: action,
		Paid:   paid,
		Bet:    p.Bet,
	})
}

// RunBettingRound is the one-shot form used by the hand driver.
func RunBettingRound(t *Table, street Street, currentBet, firstSeat int, agents []Agent, logger *log.Logger) int {
	return NewBettingRound(t, street, currentBet, logger).Run(firstSeat, agents)
}

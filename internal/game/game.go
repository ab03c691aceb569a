package game

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/lox/holdemcore/poker"
)

// Game drives complete hands over a table with one agent per seat.
type Game struct {
	Table  *Table
	Agents []Agent
	logger *log.Logger
}

// NewGame pairs a table with its decision sources.
func NewGame(table *Table, agents []Agent, logger *log.Logger) (*Game, error) {
	if len(agents) != len(table.Players) {
		return nil, fmt.Errorf("game: %d agents for %d seats", len(agents), len(table.Players))
	}
	return &Game{
		Table:  table,
		Agents: agents,
		logger: logger.WithPrefix("game"),
	}, nil
}

// HandResult reports the outcome of one completed hand.
type HandResult struct {
	Winners       []int
	Share         int
	Pot           int
	Board         []poker.Card
	Evals         map[int]SeatEval // nil when the hand was decided by folds
	WonByFold     bool
	StreetReached Street
	Actions       []ActionRecord
}

// PlayHand runs one full hand: blinds, hole cards, the four betting
// streets and the showdown. It terminates early when folds leave a single
// contestant, awarding that seat the whole pot without a showdown.
// The caller rotates the button between hands.
func (g *Game) PlayHand() (*HandResult, error) {
	t := g.Table
	t.ResetForNewHand()
	t.PostBlinds()
	if err := t.DealHole(); err != nil {
		return nil, err
	}

	g.logger.Debug("hand started", "button", t.Button, "pot", t.Pot)

	streets := []struct {
		street Street
		deal   func() error
	}{
		{Preflop, nil},
		{Flop, t.DealFlop},
		{Turn, t.DealTurn},
		{River, t.DealRiver},
	}

	for _, s := range streets {
		if s.deal != nil {
			if err := s.deal(); err != nil {
				return nil, err
			}
			g.logger.Debug("board dealt", "street", s.street, "board", poker.CardsString(t.Board))
		}

		currentBet := 0
		firstSeat := t.FirstToActPostflop()
		if s.street == Preflop {
			currentBet = t.BigBlind
			firstSeat = t.FirstToActPreflop()
		}

		RunBettingRound(t, s.street, currentBet, firstSeat, g.Agents, g.logger)
		g.resetStreetBets()

		if last := t.LastInHand(); last >= 0 {
			return g.awardByFold(last, s.street), nil
		}
	}

	pot := t.Pot
	showdown, err := t.Showdown()
	if err != nil {
		return nil, err
	}
	g.logger.Debug("showdown", "winners", showdown.Winners, "share", showdown.Share)

	return &HandResult{
		Winners:       showdown.Winners,
		Share:         showdown.Share,
		Pot:           pot,
		Board:         append([]poker.Card(nil), t.Board...),
		Evals:         showdown.Evals,
		StreetReached: ShowdownStreet,
		Actions:       append([]ActionRecord(nil), t.History...),
	}, nil
}

// resetStreetBets zeroes street bets once a street closes; the chips are
// already pooled in the pot.
func (g *Game) resetStreetBets() {
	for _, p := range g.Table.Players {
		p.Bet = 0
	}
}

// awardByFold pays the whole pot to the last contesting seat.
func (g *Game) awardByFold(seat int, street Street) *HandResult {
	t := g.Table
	pot := t.Pot
	t.Players[seat].Stack += pot
	t.Pot = 0
	g.logger.Debug("won by fold", "seat", seat, "name", t.Players[seat].Name, "pot", pot)

	return &HandResult{
		Winners:       []int{seat},
		Share:         pot,
		Pot:           pot,
		Board:         append([]poker.Card(nil), t.Board...),
		WonByFold:     true,
		StreetReached: street,
		Actions:       append([]ActionRecord(nil), t.History...),
	}
}

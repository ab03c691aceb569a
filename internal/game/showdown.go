package game

import (
	"fmt"

	"github.com/lox/holdemcore/poker"
)

// SeatEval is one seat's showdown evaluation, for reporting.
type SeatEval struct {
	Seat     int
	Eval     poker.Eval
	BestFive []poker.Card
}

// String renders a reporting line like "Full House [A K] (A♠ A♥ A♦ K♣ K♠)"
func (se SeatEval) String() string {
	return fmt.Sprintf("%s (%s)", se.Eval, poker.CardsString(se.BestFive))
}

// ShowdownResult holds the winner set and per-seat detail.
type ShowdownResult struct {
	Winners []int
	Share   int
	Evals   map[int]SeatEval
}

// Showdown evaluates every in-hand seat's best hand from hole plus board
// and pays the pot out in equal integer shares to the winners. A remainder
// from an uneven split is dropped, a known simplification of this engine
// rather than true chip conservation.
func (t *Table) Showdown() (*ShowdownResult, error) {
	result := &ShowdownResult{Evals: make(map[int]SeatEval)}

	for _, p := range t.Players {
		if !p.InHand {
			continue
		}
		eval, bestFive, err := poker.EvaluateBest(append(append([]poker.Card(nil), p.Hole...), t.Board...))
		if err != nil {
			return nil, fmt.Errorf("game: evaluating seat %d: %w", p.Seat, err)
		}
		result.Evals[p.Seat] = SeatEval{Seat: p.Seat, Eval: eval, BestFive: bestFive}
	}

	var best poker.Eval
	for _, p := range t.Players {
		se, ok := result.Evals[p.Seat]
		if !ok {
			continue
		}
		switch {
		case len(result.Winners) == 0 || se.Eval.Compare(best) > 0:
			best = se.Eval
			result.Winners = []int{p.Seat}
		case se.Eval.Compare(best) == 0:
			result.Winners = append(result.Winners, p.Seat)
		}
	}

	if len(result.Winners) > 0 {
		result.Share = t.Pot / len(result.Winners)
		for _, seat := range result.Winners {
			t.Players[seat].Stack += result.Share
		}
		t.Pot = 0
	}

	return result, nil
}

// Package equity estimates hero win probability by Monte Carlo simulation:
// deal random opponent holes and board runouts, evaluate everyone, and count
// how often hero wins or chops.
package equity

import (
	"context"
	"errors"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lox/holdemcore/poker"
)

var ErrBadInput = errors.New("equity: need two hole cards and at most five board cards")

// parallelThreshold is the sample count below which worker fan-out costs
// more than it saves.
const parallelThreshold = 500

// CardSet is a 52-bit set, one bit per card.
type CardSet uint64

func cardIndex(c poker.Card) int {
	return int(c.Rank)*4 + int(c.Suit)
}

// Add adds a card to the set.
func (cs *CardSet) Add(c poker.Card) {
	*cs |= 1 << cardIndex(c)
}

// Contains reports whether the card is in the set.
func (cs CardSet) Contains(c poker.Card) bool {
	return cs&(1<<cardIndex(c)) != 0
}

// Request describes one equity estimation.
type Request struct {
	Hole      []poker.Card // exactly two cards
	Board     []poker.Card // zero to five cards
	Opponents int          // random-hand opponents, at least one
	Samples   int
}

type workerResult struct {
	score   float64 // 1 per win, 1/n per n-way chop
	samples int
}

// Estimate returns hero equity in [0, 1]. Ties count as a fractional win
// split evenly among the tied hands. The rng seeds per-worker generators
// so a fixed seed reproduces the estimate exactly.
func Estimate(req Request, rng *rand.Rand) (float64, error) {
	if len(req.Hole) != 2 || len(req.Board) > 5 {
		return 0, ErrBadInput
	}
	if req.Opponents < 1 {
		req.Opponents = 1
	}
	if req.Samples < 1 {
		req.Samples = 1
	}

	remaining := remainingCards(req.Hole, req.Board)
	need := 2*req.Opponents + (5 - len(req.Board))
	if len(remaining) < need {
		return 0, ErrBadInput
	}

	if req.Samples < parallelThreshold {
		r := runWorker(req, remaining, req.Samples, rng)
		return tally(r), nil
	}

	workers := runtime.NumCPU()
	if workers > 8 {
		workers = 8
	}
	perWorker := req.Samples / workers
	remainder := req.Samples % workers

	results := make([]workerResult, workers)
	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < workers; w++ {
		samples := perWorker
		if w < remainder {
			samples++
		}
		seed := rng.Int63()
		slot := &results[w]
		g.Go(func() error {
			workerRng := rand.New(rand.NewSource(seed))
			*slot = runWorker(req, remaining, samples, workerRng)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total workerResult
	for _, r := range results {
		total.score += r.score
		total.samples += r.samples
	}
	return tally(total), nil
}

func tally(r workerResult) float64 {
	if r.samples == 0 {
		return 0
	}
	return r.score / float64(r.samples)
}

// remainingCards lists the deck minus hero's hole and the known board.
func remainingCards(hole, board []poker.Card) []poker.Card {
	var used CardSet
	for _, c := range hole {
		used.Add(c)
	}
	for _, c := range board {
		used.Add(c)
	}

	remaining := make([]poker.Card, 0, 52)
	for suit := poker.Spades; suit <= poker.Clubs; suit++ {
		for rank := poker.Two; rank <= poker.Ace; rank++ {
			c := poker.Card{Rank: rank, Suit: suit}
			if !used.Contains(c) {
				remaining = append(remaining, c)
			}
		}
	}
	return remaining
}

func runWorker(req Request, remaining []poker.Card, samples int, rng *rand.Rand) workerResult {
	var result workerResult

	boardNeeded := 5 - len(req.Board)
	drawNeeded := 2*req.Opponents + boardNeeded

	// Scratch space reused across samples.
	pool := make([]poker.Card, len(remaining))
	finalBoard := make([]poker.Card, 5)
	copy(finalBoard, req.Board)
	hand := make([]poker.Card, 7)

	for i := 0; i < samples; i++ {
		// Partial Fisher-Yates: shuffle only as many cards as we draw.
		copy(pool, remaining)
		for j := 0; j < drawNeeded; j++ {
			k := j + rng.Intn(len(pool)-j)
			pool[j], pool[k] = pool[k], pool[j]
		}
		drawn := pool[:drawNeeded]

		copy(finalBoard[len(req.Board):], drawn[:boardNeeded])
		oppHoles := drawn[boardNeeded:]

		copy(hand[:2], req.Hole)
		copy(hand[2:], finalBoard)
		heroEval, _, err := poker.EvaluateBest(hand)
		if err != nil {
			continue
		}

		best := 1 // 1 hero ahead, 0 tied, -1 behind
		tied := 1 // hands sharing the best eval, hero included
		for o := 0; o < req.Opponents; o++ {
			copy(hand[:2], oppHoles[2*o:2*o+2])
			oppEval, _, err := poker.EvaluateBest(hand)
			if err != nil {
				continue
			}
			switch heroEval.Compare(oppEval) {
			case -1:
				best = -1
			case 0:
				if best == 1 {
					best = 0
				}
				tied++
			}
			if best == -1 {
				break
			}
		}

		result.samples++
		switch best {
		case 1:
			result.score++
		case 0:
			result.score += 1 / float64(tied)
		}
	}

	return result
}

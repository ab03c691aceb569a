package game

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/lox/holdemcore/poker"
)

// ErrInvalidPlayerCount is returned when a table is constructed outside
// the supported 2-9 seats.
var ErrInvalidPlayerCount = errors.New("game: texas hold'em supports 2 to 9 players")

// TableConfig holds the construction parameters for a table.
type TableConfig struct {
	SmallBlind    int
	BigBlind      int
	StartingStack int   // Used when Stacks is nil; defaults to 1000
	Stacks        []int // Optional per-seat stacks, must match player count
}

// Table is the mutable substrate of a hand: the seats, board, pooled pot,
// button and blinds. It is constructed once per session and reset between
// hands; stacks and button survive the reset.
type Table struct {
	Players    []*Player
	Board      []poker.Card
	Pot        int
	Button     int
	SmallBlind int
	BigBlind   int
	Deck       *poker.Deck
	History    []ActionRecord // voluntary actions this hand, in order
}

// ActionRecord is one voluntary action in a hand, normalized by effect: a
// check while owing chips records as a call, an all-in above the bet level
// as a raise.
type ActionRecord struct {
	Street Street
	Seat   int
	Action Action
	Paid   int // chips committed by this action
	Bet    int // the seat's street total after acting
}

// NewTable creates a table with the given seat names. The RNG drives all
// deck shuffles; pass a seeded source for deterministic hands.
func NewTable(rng *rand.Rand, names []string, cfg TableConfig) (*Table, error) {
	if len(names) < 2 || len(names) > 9 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPlayerCount, len(names))
	}
	if cfg.Stacks != nil && len(cfg.Stacks) != len(names) {
		return nil, fmt.Errorf("game: %d stacks for %d players", len(cfg.Stacks), len(names))
	}
	if cfg.StartingStack == 0 {
		cfg.StartingStack = 1000
	}

	players := make([]*Player, len(names))
	for i, name := range names {
		stack := cfg.StartingStack
		if cfg.Stacks != nil {
			stack = cfg.Stacks[i]
		}
		players[i] = &Player{
			Seat:   i,
			Name:   name,
			Stack:  stack,
			InHand: true,
		}
	}

	return &Table{
		Players:    players,
		Button:     0,
		SmallBlind: cfg.SmallBlind,
		BigBlind:   cfg.BigBlind,
		Deck:       poker.NewDeck(rng),
	}, nil
}

// ResetForNewHand reshuffles the deck and clears board, pot and per-hand
// player state. Stacks and button position are preserved; rotating the
// button is the caller's call.
func (t *Table) ResetForNewHand() {
	t.Deck.Shuffle()
	t.Board = nil
	t.Pot = 0
	t.History = nil
	for _, p := range t.Players {
		p.ResetForHand()
	}
}

// RotateButton advances the button one seat.
func (t *Table) RotateButton() {
	t.Button = (t.Button + 1) % len(t.Players)
}

// BlindSeats returns the small and big blind seats for the current button.
// Heads-up the button posts the small blind.
func (t *Table) BlindSeats() (sb, bb int) {
	n := len(t.Players)
	if n == 2 {
		return t.Button, (t.Button + 1) % n
	}
	return (t.Button + 1) % n, (t.Button + 2) % n
}

// PostBlinds commits the blinds, short-stacked seats post what they have.
func (t *Table) PostBlinds() {
	sb, bb := t.BlindSeats()
	t.Commit(t.Players[sb], min(t.SmallBlind, t.Players[sb].Stack))
	t.Commit(t.Players[bb], min(t.BigBlind, t.Players[bb].Stack))
}

// Commit moves chips from a player's stack into their street bet and the
// pot. The amount must not exceed the player's stack.
func (t *Table) Commit(p *Player, amount int) {
	p.Stack -= amount
	p.Bet += amount
	t.Pot += amount
}

// DealHole deals 2 cards to every seat contesting the hand.
func (t *Table) DealHole() error {
	for _, p := range t.Players {
		if !p.InHand {
			continue
		}
		cards, err := t.Deck.Deal(2)
		if err != nil {
			return err
		}
		p.Hole = cards
	}
	return nil
}

// DealFlop burns one card and deals the three flop cards.
func (t *Table) DealFlop() error {
	return t.dealBoard(3)
}

// DealTurn burns one card and deals the turn.
func (t *Table) DealTurn() error {
	return t.dealBoard(1)
}

// DealRiver burns one card and deals the river.
func (t *Table) DealRiver() error {
	return t.dealBoard(1)
}

func (t *Table) dealBoard(n int) error {
	if _, err := t.Deck.Deal(1); err != nil { // burn
		return err
	}
	cards, err := t.Deck.Deal(n)
	if err != nil {
		return err
	}
	t.Board = append(t.Board, cards...)
	return nil
}

// InHandCount returns the number of seats still contesting the pot.
func (t *Table) InHandCount() int {
	count := 0
	for _, p := range t.Players {
		if p.InHand {
			count++
		}
	}
	return count
}

// LastInHand returns the only remaining in-hand seat, or -1 when more than
// one seat is still contesting.
func (t *Table) LastInHand() int {
	last := -1
	for _, p := range t.Players {
		if p.InHand {
			if last >= 0 {
				return -1
			}
			last = p.Seat
		}
	}
	return last
}

// FirstToActPreflop returns the first seat to act before the flop: the
// seat after the big blind, or the button heads-up.
func (t *Table) FirstToActPreflop() int {
	n := len(t.Players)
	if n == 2 {
		return t.Button
	}
	_, bb := t.BlindSeats()
	return (bb + 1) % n
}

// FirstToActPostflop returns the first seat to act after the flop: the
// first seat past the button.
func (t *Table) FirstToActPostflop() int {
	return (t.Button + 1) % len(t.Players)
}

// TotalChips returns stacks plus pot, for conservation checks.
func (t *Table) TotalChips() int {
	total := t.Pot
	for _, p := range t.Players {
		total += p.Stack
	}
	return total
}

// View builds the read-only snapshot an agent sees when the given seat is
// asked to act against currentBet.
func (t *Table) View(seat int, street Street, currentBet int) TableView {
	p := t.Players[seat]
	return TableView{
		Seat:       seat,
		Name:       p.Name,
		Stack:      p.Stack,
		Bet:        p.Bet,
		Hole:       append([]poker.Card(nil), p.Hole...),
		Board:      append([]poker.Card(nil), t.Board...),
		Street:     street,
		Pot:        t.Pot,
		CurrentBet: currentBet,
		ToCall:     max(0, currentBet-p.Bet),
		BigBlind:   t.BigBlind,
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

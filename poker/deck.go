package poker

import (
	"errors"
	"math/rand"
)

// ErrInsufficientCards is returned when a deal asks for more cards than remain.
// It is fatal to the hand in progress; the deck is never reshuffled mid-hand.
var ErrInsufficientCards = errors.New("poker: not enough cards left to deal")

// Deck represents a standard 52-card deck. Dealing is strictly sequential
// and destructive: a dealt card never returns to the deck within a hand.
type Deck struct {
	cards [52]Card
	next  int
	rng   *rand.Rand
}

// NewDeck creates a new shuffled deck. The RNG is required so that shuffles
// are reproducible under a caller-controlled seed; there is no hidden
// global random state.
func NewDeck(rng *rand.Rand) *Deck {
	if rng == nil {
		panic("poker: rng is required for deck creation")
	}

	d := &Deck{rng: rng}

	i := 0
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards[i] = NewCard(rank, suit)
			i++
		}
	}

	d.Shuffle()
	return d
}

// Shuffle restores all 52 cards and reorders them with Fisher-Yates.
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the next n cards.
func (d *Deck) Deal(n int) ([]Card, error) {
	if d.next+n > len(d.cards) {
		return nil, ErrInsufficientCards
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards, nil
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}

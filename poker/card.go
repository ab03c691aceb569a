package poker

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is returned when a rank or suit is outside the legal alphabets.
var ErrInvalidCard = errors.New("poker: invalid card")

// Suit represents a card suit. Suits carry no ordering weight in hand
// evaluation; they exist for identity and display.
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the suit symbol
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank, Two=0 through Ace=12
type Rank int

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const rankChars = "23456789TJQKA"

// String returns the single-character rank notation
func (r Rank) String() string {
	if r < Two || r > Ace {
		return "?"
	}
	return string(rankChars[r])
}

// Card represents a playing card. Cards are immutable value types;
// equality and ordering compare rank first, then suit.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the card notation with a suit symbol (e.g. "A♠")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// Compare orders cards by rank, then suit. Returns -1, 0 or 1.
func (c Card) Compare(o Card) int {
	switch {
	case c.Rank != o.Rank:
		if c.Rank < o.Rank {
			return -1
		}
		return 1
	case c.Suit != o.Suit:
		if c.Suit < o.Suit {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// ParseCard parses letter notation like "As", "Td" or "2c".
// Suit letters are s, h, d, c (case-insensitive).
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	rb := s[0]
	if rb >= 'a' && rb <= 'z' {
		rb -= 'a' - 'A'
	}
	rankIdx := strings.IndexByte(rankChars, rb)
	if rankIdx < 0 {
		return Card{}, fmt.Errorf("%w: unknown rank %q", ErrInvalidCard, s)
	}

	var suit Suit
	switch s[1] | 0x20 {
	case 's':
		suit = Spades
	case 'h':
		suit = Hearts
	case 'd':
		suit = Diamonds
	case 'c':
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("%w: unknown suit %q", ErrInvalidCard, s)
	}

	return NewCard(Rank(rankIdx), suit), nil
}

// MustParseCard is ParseCard that panics on error, for tests and literals.
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCards parses space-separated or concatenated letter notation,
// e.g. "As Kd" or "AsKd".
func ParseCards(s string) ([]Card, error) {
	fields := strings.Fields(s)
	if len(fields) == 1 && len(fields[0]) > 2 && len(fields[0])%2 == 0 {
		// Concatenated form like "AsKdQh"
		joined := fields[0]
		fields = fields[:0]
		for i := 0; i < len(joined); i += 2 {
			fields = append(fields, joined[i:i+2])
		}
	}

	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// CardsString renders cards separated by spaces, e.g. "A♠ K♦"
func CardsString(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

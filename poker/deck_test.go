package poker

import (
	"errors"
	"math/rand"
	"testing"
)

func TestNewDeckHas52UniqueCards(t *testing.T) {
	t.Parallel()
	d := NewDeck(rand.New(rand.NewSource(1)))

	if d.Remaining() != 52 {
		t.Fatalf("expected 52 cards, got %d", d.Remaining())
	}

	seen := make(map[Card]bool)
	cards, err := d.Deal(52)
	if err != nil {
		t.Fatalf("unexpected error dealing full deck: %v", err)
	}
	for _, c := range cards {
		if seen[c] {
			t.Errorf("duplicate card dealt: %v", c)
		}
		seen[c] = true
	}
	if len(seen) != 52 {
		t.Errorf("expected 52 unique cards, got %d", len(seen))
	}
}

func TestDeckDealConsumes(t *testing.T) {
	t.Parallel()
	d := NewDeck(rand.New(rand.NewSource(2)))

	first, err := d.Deal(5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Remaining() != 47 {
		t.Errorf("expected 47 remaining, got %d", d.Remaining())
	}

	second, err := d.Deal(5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, a := range first {
		for _, b := range second {
			if a == b {
				t.Errorf("card %v dealt twice", a)
			}
		}
	}
}

func TestDeckInsufficientCards(t *testing.T) {
	t.Parallel()
	d := NewDeck(rand.New(rand.NewSource(3)))

	if _, err := d.Deal(50); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := d.Deal(3); !errors.Is(err, ErrInsufficientCards) {
		t.Errorf("expected ErrInsufficientCards, got %v", err)
	}
	// The failed deal must not consume anything.
	if d.Remaining() != 2 {
		t.Errorf("expected 2 remaining after failed deal, got %d", d.Remaining())
	}
}

func TestDeckDeterministicWithSeed(t *testing.T) {
	t.Parallel()
	d1 := NewDeck(rand.New(rand.NewSource(42)))
	d2 := NewDeck(rand.New(rand.NewSource(42)))

	c1, _ := d1.Deal(52)
	c2, _ := d2.Deal(52)
	for i := range c1 {
		if c1[i] != c2[i] {
			t.Fatalf("decks with the same seed diverge at %d: %v vs %v", i, c1[i], c2[i])
		}
	}
}

func TestDeckShuffleRestores(t *testing.T) {
	t.Parallel()
	d := NewDeck(rand.New(rand.NewSource(4)))
	_, _ = d.Deal(30)
	d.Shuffle()
	if d.Remaining() != 52 {
		t.Errorf("expected full deck after shuffle, got %d", d.Remaining())
	}
}

func TestNewDeckRequiresRNG(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil rng")
		}
	}()
	NewDeck(nil)
}

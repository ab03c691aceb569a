package poker

import (
	"errors"
	"testing"
)

func TestCardCreation(t *testing.T) {
	t.Parallel()
	aceSpades := NewCard(Ace, Spades)
	if aceSpades.Rank != Ace {
		t.Errorf("Expected rank Ace, got %d", aceSpades.Rank)
	}
	if aceSpades.Suit != Spades {
		t.Errorf("Expected suit Spades, got %d", aceSpades.Suit)
	}
	if aceSpades.String() != "A♠" {
		t.Errorf("Expected 'A♠', got %s", aceSpades.String())
	}

	twoClubs := NewCard(Two, Clubs)
	if twoClubs.String() != "2♣" {
		t.Errorf("Expected '2♣', got %s", twoClubs.String())
	}
}

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		wantCard Card
		wantErr  bool
	}{
		{name: "ace of spades", input: "As", wantCard: NewCard(Ace, Spades)},
		{name: "two of hearts", input: "2h", wantCard: NewCard(Two, Hearts)},
		{name: "king of diamonds", input: "Kd", wantCard: NewCard(King, Diamonds)},
		{name: "ten of clubs", input: "Tc", wantCard: NewCard(Ten, Clubs)},
		{name: "lowercase rank", input: "qs", wantCard: NewCard(Queen, Spades)},
		{name: "uppercase suit", input: "9H", wantCard: NewCard(Nine, Hearts)},
		{name: "bad rank", input: "Xs", wantErr: true},
		{name: "bad suit", input: "Ax", wantErr: true},
		{name: "too short", input: "A", wantErr: true},
		{name: "too long", input: "10s", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCard(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseCard(%q) expected error, got %v", tt.input, got)
				}
				if !errors.Is(err, ErrInvalidCard) {
					t.Errorf("ParseCard(%q) error = %v, want ErrInvalidCard", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCard(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.wantCard {
				t.Errorf("ParseCard(%q) = %v, want %v", tt.input, got, tt.wantCard)
			}
		})
	}
}

func TestParseCards(t *testing.T) {
	t.Parallel()
	cards, err := ParseCards("As Kd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cards) != 2 || cards[0] != NewCard(Ace, Spades) || cards[1] != NewCard(King, Diamonds) {
		t.Errorf("ParseCards spaced form = %v", cards)
	}

	cards, err = ParseCards("AsKdQh")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cards) != 3 || cards[2] != NewCard(Queen, Hearts) {
		t.Errorf("ParseCards concatenated form = %v", cards)
	}

	if _, err := ParseCards("As Zz"); err == nil {
		t.Error("expected error for invalid card in list")
	}
}

func TestCardCompare(t *testing.T) {
	t.Parallel()
	if NewCard(Ace, Spades).Compare(NewCard(King, Spades)) != 1 {
		t.Error("ace should outrank king")
	}
	if NewCard(Five, Spades).Compare(NewCard(Five, Hearts)) != -1 {
		t.Error("same rank orders by suit")
	}
	if NewCard(Five, Clubs).Compare(NewCard(Five, Clubs)) != 0 {
		t.Error("identical cards compare equal")
	}
}

func TestCardsString(t *testing.T) {
	t.Parallel()
	cards := []Card{NewCard(Ace, Spades), NewCard(Ten, Diamonds)}
	if got := CardsString(cards); got != "A♠ T♦" {
		t.Errorf("CardsString = %q", got)
	}
}

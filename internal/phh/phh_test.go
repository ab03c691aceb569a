package phh

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdemcore/internal/game"
	"github.com/lox/holdemcore/poker"
)

func sampleHand(t *testing.T) (*game.Table, []int, *game.HandResult) {
	t.Helper()
	rng := rand.New(rand.NewSource(1))
	table, err := game.NewTable(rng, []string{"alice", "bob", "carol"}, game.TableConfig{
		SmallBlind: 10,
		BigBlind:   20,
	})
	require.NoError(t, err)

	deal := func(s string) []poker.Card {
		cards, err := poker.ParseCards(s)
		require.NoError(t, err)
		return cards
	}
	table.Players[0].Hole = deal("Ah Ks")
	table.Players[1].Hole = deal("2c 2d")
	table.Players[2].Hole = deal("Qs Jd")

	starting := []int{1000, 1000, 1000}
	table.Players[0].Stack = 940
	table.Players[1].Stack = 940
	table.Players[2].Stack = 1120

	result := &game.HandResult{
		Winners:       []int{2},
		Share:         180,
		Pot:           180,
		Board:         deal("Jc 8h 4s 7d 2s"),
		StreetReached: game.ShowdownStreet,
		Actions: []game.ActionRecord{
			{Street: game.Preflop, Seat: 0, Action: game.Call, Paid: 20, Bet: 20},
			{Street: game.Preflop, Seat: 1, Action: game.Raise, Paid: 50, Bet: 60},
			{Street: game.Preflop, Seat: 2, Action: game.Call, Paid: 40, Bet: 60},
			{Street: game.Preflop, Seat: 0, Action: game.Fold},
			{Street: game.Flop, Seat: 1, Action: game.Check},
			{Street: game.Flop, Seat: 2, Action: game.Check},
			{Street: game.Turn, Seat: 1, Action: game.Check},
			{Street: game.Turn, Seat: 2, Action: game.Check},
			{Street: game.River, Seat: 1, Action: game.Check},
			{Street: game.River, Seat: 2, Action: game.Check},
		},
	}
	return table, starting, result
}

func TestFromHand(t *testing.T) {
	table, starting, result := sampleHand(t)

	hand := FromHand(table, starting, result, "01h5n0et5q6mt3v7ms1234abcd")

	assert.Equal(t, "NT", hand.Variant)
	assert.Equal(t, 3, hand.SeatCount)
	assert.Equal(t, []int{0, 0, 0}, hand.Antes)
	assert.Equal(t, []int{0, 10, 20}, hand.BlindsOrStraddles, "button 0 puts the blinds on seats 1 and 2")
	assert.Equal(t, 20, hand.MinBet)
	assert.Equal(t, starting, hand.StartingStacks)
	assert.Equal(t, []int{940, 940, 1120}, hand.FinishingStacks)
	assert.Equal(t, []string{"alice", "bob", "carol"}, hand.Players)

	want := []string{
		"d dh p1 AhKs",
		"d dh p2 2c2d",
		"d dh p3 QsJd",
		"p1 cc",
		"p2 cbr 60",
		"p3 cc",
		"p1 f",
		"d db Jc8h4s",
		"p2 cc",
		"p3 cc",
		"d db 7d",
		"p2 cc",
		"p3 cc",
		"d db 2s",
		"p2 cc",
		"p3 cc",
	}
	assert.Equal(t, want, hand.Actions)
}

func TestFromHandFoldedPreflop(t *testing.T) {
	table, starting, result := sampleHand(t)
	result.Board = nil
	result.WonByFold = true
	result.StreetReached = game.Preflop
	result.Actions = []game.ActionRecord{
		{Street: game.Preflop, Seat: 0, Action: game.Fold},
		{Street: game.Preflop, Seat: 1, Action: game.Fold},
	}

	hand := FromHand(table, starting, result, "01h5n0et5q6mt3v7ms1234abcd")

	assert.Equal(t, []string{
		"d dh p1 AhKs",
		"d dh p2 2c2d",
		"d dh p3 QsJd",
		"p1 f",
		"p2 f",
	}, hand.Actions, "no board lines when the hand never sees a flop")
}

func TestEncode(t *testing.T) {
	table, starting, result := sampleHand(t)
	hand := FromHand(table, starting, result, "01h5n0et5q6mt3v7ms1234abcd")

	data, err := EncodeToBytes(hand)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, `variant = "NT"`)
	assert.Contains(t, text, `hand = "01h5n0et5q6mt3v7ms1234abcd"`)
	assert.Contains(t, text, `min_bet = 20`)
}

func TestEncodeNilHand(t *testing.T) {
	var sb strings.Builder
	assert.Error(t, Encode(&sb, nil))
}

func TestSaveRoundTrips(t *testing.T) {
	table, starting, result := sampleHand(t)
	hand := FromHand(table, starting, result, "01h5n0et5q6mt3v7ms1234abcd")

	dir := filepath.Join(t.TempDir(), "hands")
	require.NoError(t, Save(dir, hand))

	path := filepath.Join(dir, hand.HandID+".phh")
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded HandHistory
	require.NoError(t, toml.Unmarshal(data, &decoded))
	assert.Equal(t, hand.Variant, decoded.Variant)
	assert.Equal(t, hand.Actions, decoded.Actions)
	assert.Equal(t, hand.StartingStacks, decoded.StartingStacks)

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

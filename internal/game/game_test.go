package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkCallAgent checks when free and calls otherwise.
type checkCallAgent struct{}

func (checkCallAgent) MakeDecision(view TableView) Decision {
	if view.ToCall == 0 {
		return Decision{Action: Check}
	}
	return Decision{Action: Call}
}

func TestPlayHandToShowdown(t *testing.T) {
	table := newTestTable(t, []string{"alice", "bob", "carol"}, nil)
	agents := []Agent{checkCallAgent{}, checkCallAgent{}, checkCallAgent{}}
	g, err := NewGame(table, agents, testLogger())
	require.NoError(t, err)

	totalBefore := table.TotalChips()
	result, err := g.PlayHand()
	require.NoError(t, err)

	assert.False(t, result.WonByFold)
	assert.Equal(t, ShowdownStreet, result.StreetReached)
	assert.Len(t, result.Board, 5)
	assert.NotEmpty(t, result.Winners)
	assert.Len(t, result.Evals, 3)
	// Everyone checked or called the blinds, so the pot is 3 big blinds.
	assert.Equal(t, 60, result.Pot)

	// Chips only leak through the documented uneven-split remainder.
	remainder := result.Pot - result.Share*len(result.Winners)
	assert.Equal(t, totalBefore, table.TotalChips()+remainder)
}

func TestPlayHandWonByFold(t *testing.T) {
	table := newTestTable(t, []string{"alice", "bob", "carol"}, nil)
	foldAgent := AgentFunc(func(view TableView) Decision {
		return Decision{Action: Fold}
	})
	agents := []Agent{foldAgent, foldAgent, checkCallAgent{}}
	g, err := NewGame(table, agents, testLogger())
	require.NoError(t, err)

	result, err := g.PlayHand()
	require.NoError(t, err)

	assert.True(t, result.WonByFold)
	assert.Equal(t, []int{2}, result.Winners)
	assert.Nil(t, result.Evals)
	assert.Equal(t, Preflop, result.StreetReached)
	// Big blind seat 2 wins the blinds: its own 20 back plus the 10.
	assert.Equal(t, 1010, table.Players[2].Stack)
}

func TestPlayHandChipConservationAcrossHands(t *testing.T) {
	table := newTestTable(t, []string{"alice", "bob"}, nil)
	g, err := NewGame(table, []Agent{checkCallAgent{}, checkCallAgent{}}, testLogger())
	require.NoError(t, err)

	for hand := 0; hand < 20; hand++ {
		totalBefore := 0
		for _, p := range table.Players {
			totalBefore += p.Stack
		}

		result, err := g.PlayHand()
		require.NoError(t, err)

		totalAfter := 0
		for _, p := range table.Players {
			totalAfter += p.Stack
		}
		remainder := 0
		if !result.WonByFold {
			remainder = result.Pot - result.Share*len(result.Winners)
		}
		require.Equal(t, totalBefore, totalAfter+remainder, "hand %d", hand)

		table.RotateButton()
	}
}

func TestPlayHandDeterministicWithSeed(t *testing.T) {
	play := func() []int {
		table, err := NewTable(rand.New(rand.NewSource(99)), []string{"a", "b", "c"}, TableConfig{
			SmallBlind: 10,
			BigBlind:   20,
		})
		require.NoError(t, err)
		g, err := NewGame(table, []Agent{checkCallAgent{}, checkCallAgent{}, checkCallAgent{}}, testLogger())
		require.NoError(t, err)
		result, err := g.PlayHand()
		require.NoError(t, err)
		return result.Winners
	}

	assert.Equal(t, play(), play(), "same seed must replay identically")
}

func TestNewGameRequiresAgentPerSeat(t *testing.T) {
	table := newTestTable(t, []string{"a", "b"}, nil)
	_, err := NewGame(table, []Agent{checkCallAgent{}}, testLogger())
	assert.Error(t, err)
}

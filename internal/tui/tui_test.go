package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdemcore/internal/game"
	"github.com/lox/holdemcore/poker"
)

func TestParseDecision(t *testing.T) {
	tests := []struct {
		input   string
		want    game.Decision
		wantErr bool
	}{
		{"fold", game.Decision{Action: game.Fold}, false},
		{"check", game.Decision{Action: game.Check}, false},
		{"x", game.Decision{Action: game.Check}, false},
		{"call", game.Decision{Action: game.Call}, false},
		{"  CALL  ", game.Decision{Action: game.Call}, false},
		{"raise 60", game.Decision{Action: game.Raise, Amount: 60}, false},
		{"r 20", game.Decision{Action: game.Raise, Amount: 20}, false},
		{"allin", game.Decision{Action: game.AllIn}, false},
		{"all-in", game.Decision{Action: game.AllIn}, false},
		{"", game.Decision{}, true},
		{"raise", game.Decision{}, true},
		{"raise abc", game.Decision{}, true},
		{"raise -5", game.Decision{}, true},
		{"jam", game.Decision{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDecision(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTestModeCapturesLog(t *testing.T) {
	logger := log.New(io.Discard)
	m := NewTestModel(logger, make(chan game.Decision, 1))

	assert.True(t, m.IsTestMode())
	assert.Empty(t, m.CapturedLog())

	m.AddLogEntry("hand 1 started")
	m.AddLogEntry("flop: 7s 8s 9s")

	captured := m.CapturedLog()
	require.Len(t, captured, 2)
	assert.Equal(t, "hand 1 started", captured[0])
}

func TestProductionModeDoesNotCapture(t *testing.T) {
	logger := log.New(io.Discard)
	m := NewModel(logger, make(chan game.Decision, 1))

	assert.False(t, m.IsTestMode())
	m.AddLogEntry("some entry")
	assert.Nil(t, m.CapturedLog())
}

func TestEnterDeliversDecision(t *testing.T) {
	logger := log.New(io.Discard)
	decisions := make(chan game.Decision, 1)
	m := NewTestModel(logger, decisions)

	m.Update(decisionPromptMsg{view: game.TableView{Seat: 0, ToCall: 20}})
	require.NotNil(t, m.pending)

	m.actionInput.SetValue("call")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	select {
	case d := <-decisions:
		assert.Equal(t, game.Call, d.Action)
	default:
		t.Fatal("expected a decision on the channel")
	}
	assert.Nil(t, m.pending)
}

func TestBadInputKeepsPrompting(t *testing.T) {
	logger := log.New(io.Discard)
	decisions := make(chan game.Decision, 1)
	m := NewTestModel(logger, decisions)

	m.Update(decisionPromptMsg{view: game.TableView{ToCall: 20}})
	m.actionInput.SetValue("raise")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.NotNil(t, m.pending)
	assert.NotEmpty(t, m.errLine)
	assert.Len(t, decisions, 0)
}

func TestFormatCards(t *testing.T) {
	cards, err := poker.ParseCards("Ah Ks")
	require.NoError(t, err)

	out := FormatCards(cards)
	assert.Contains(t, out, "A♥")
	assert.Contains(t, out, "K♠")
	assert.True(t, strings.Contains(out, " "))
}

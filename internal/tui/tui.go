// Package tui renders an interactive table for a human seat: a scrolling
// hand log, the current board and stack state, and a command line for
// actions ("call", "raise 60", "fold"). Decisions flow back to the engine
// through a channel so the game loop stays synchronous.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/holdemcore/internal/game"
)

// decisionPromptMsg asks the model to collect an action for this view.
type decisionPromptMsg struct {
	view game.TableView
}

// logMsg appends a line to the hand log.
type logMsg string

// Model is the Bubble Tea model for an interactive session.
type Model struct {
	logger *log.Logger

	logViewport viewport.Model
	actionInput textinput.Model

	gameLog   []string
	decisions chan<- game.Decision
	pending   *game.TableView // set while waiting for the human to act
	errLine   string

	width       int
	height      int
	initialized bool
	quitting    bool

	testMode    bool
	capturedLog []string // for test assertions
}

// NewModel creates the model. Decisions made at the prompt are delivered
// on the decisions channel.
func NewModel(logger *log.Logger, decisions chan<- game.Decision) *Model {
	return newModel(logger, decisions, false)
}

// NewTestModel creates a model that captures log lines for assertions
// instead of requiring a running terminal.
func NewTestModel(logger *log.Logger, decisions chan<- game.Decision) *Model {
	return newModel(logger, decisions, true)
}

func newModel(logger *log.Logger, decisions chan<- game.Decision, testMode bool) *Model {
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "call, raise 60, check, fold"
	ti.Focus()
	ti.CharLimit = 50
	ti.Prompt = "> "
	ti.PromptStyle = PromptStyle

	return &Model{
		logger:      logger.WithPrefix("tui"),
		logViewport: vp,
		actionInput: ti,
		decisions:   decisions,
		testMode:    testMode,
	}
}

// IsTestMode reports whether log capture is enabled.
func (m *Model) IsTestMode() bool {
	return m.testMode
}

// CapturedLog returns captured log lines, nil outside test mode.
func (m *Model) CapturedLog() []string {
	if !m.testMode {
		return nil
	}
	return m.capturedLog
}

// AddLogEntry appends a line to the hand log.
func (m *Model) AddLogEntry(line string) {
	m.gameLog = append(m.gameLog, line)
	if m.testMode {
		m.capturedLog = append(m.capturedLog, line)
	}
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	m.logViewport.GotoBottom()
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logViewport.Width = msg.Width
		m.logViewport.Height = max(msg.Height-6, 3)
		m.actionInput.Width = msg.Width - 4
		m.initialized = true

	case decisionPromptMsg:
		view := msg.view
		m.pending = &view
		m.errLine = ""

	case logMsg:
		m.AddLogEntry(string(msg))

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			if m.pending != nil {
				m.decisions <- game.Decision{Action: game.Fold}
				m.pending = nil
			}
			return m, tea.Quit

		case "enter":
			if m.pending == nil {
				break
			}
			decision, err := ParseDecision(m.actionInput.Value())
			if err != nil {
				m.errLine = err.Error()
				m.actionInput.SetValue("")
				break
			}
			m.decisions <- decision
			m.pending = nil
			m.errLine = ""
			m.actionInput.SetValue("")
		}
	}

	var cmd tea.Cmd
	m.actionInput, cmd = m.actionInput.Update(msg)
	cmds = append(cmds, cmd)
	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(" holdemcore "))
	b.WriteString("\n")
	b.WriteString(m.logViewport.View())
	b.WriteString("\n")

	if m.pending != nil {
		b.WriteString(HandInfoStyle.Render(m.statusLine(*m.pending)))
		b.WriteString("\n")
		if m.errLine != "" {
			b.WriteString(ErrorStyle.Render(m.errLine))
			b.WriteString("\n")
		}
		b.WriteString(m.actionInput.View())
	} else {
		b.WriteString(InfoStyle.Render("waiting for the action to reach you..."))
	}
	b.WriteString("\n")

	return b.String()
}

func (m *Model) statusLine(view game.TableView) string {
	board := "--"
	if len(view.Board) > 0 {
		board = FormatCards(view.Board)
	}
	return fmt.Sprintf("%s | hole %s | board %s | pot %d | to call %d | stack %d",
		view.Street, FormatCards(view.Hole), board, view.Pot, view.ToCall, view.Stack)
}

// ParseDecision turns a command line into a decision. Raise amounts are
// raise-by sizes on top of the matched bet.
func ParseDecision(input string) (game.Decision, error) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(input)))
	if len(fields) == 0 {
		return game.Decision{}, fmt.Errorf("enter an action: fold, check, call, raise <amount>, allin")
	}

	action, ok := game.ParseAction(fields[0])
	if !ok {
		return game.Decision{}, fmt.Errorf("unknown action %q", fields[0])
	}

	if action != game.Raise {
		return game.Decision{Action: action}, nil
	}
	if len(fields) < 2 {
		return game.Decision{}, fmt.Errorf("raise needs an amount, e.g. %q", "raise 60")
	}
	amount, err := strconv.Atoi(fields[1])
	if err != nil || amount <= 0 {
		return game.Decision{}, fmt.Errorf("bad raise amount %q", fields[1])
	}
	return game.Decision{Action: game.Raise, Amount: amount}, nil
}

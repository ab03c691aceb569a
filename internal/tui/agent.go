package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/holdemcore/internal/game"
)

// Agent bridges a human seat to the engine: it forwards each decision
// request into the running program and blocks until the human answers.
type Agent struct {
	model     *Model
	program   *tea.Program
	decisions chan game.Decision
	logger    *log.Logger
}

// NewAgent creates the TUI and its engine bridge. Call Start before the
// first hand and Close when the session ends.
func NewAgent(logger *log.Logger) *Agent {
	decisions := make(chan game.Decision, 1)
	model := NewModel(logger, decisions)
	program := tea.NewProgram(model, tea.WithAltScreen())

	return &Agent{
		model:     model,
		program:   program,
		decisions: decisions,
		logger:    logger.WithPrefix("tui-agent"),
	}
}

// Start runs the program in the background.
func (a *Agent) Start() {
	go func() {
		if _, err := a.program.Run(); err != nil {
			a.logger.Error("tui stopped", "error", err)
		}
	}()
}

// Close shuts the program down and waits for the terminal to restore.
func (a *Agent) Close() {
	a.program.Quit()
	a.program.Wait()
}

// Log appends a line to the hand log pane.
func (a *Agent) Log(line string) {
	a.program.Send(logMsg(line))
}

// MakeDecision implements game.Agent. It blocks until the human submits
// an action; quitting the TUI folds the hand.
func (a *Agent) MakeDecision(view game.TableView) game.Decision {
	a.program.Send(decisionPromptMsg{view: view})
	return <-a.decisions
}

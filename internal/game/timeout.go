package game

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// TimeoutAgent wraps another agent with a decision deadline. The betting
// engine itself stays synchronous; this wrapper is the place a deployment
// bounds a stalled decision source. On expiry the seat checks when the
// action is free and folds otherwise.
type TimeoutAgent struct {
	inner   Agent
	timeout time.Duration
	clock   quartz.Clock
	logger  *log.Logger
}

// NewTimeoutAgent wraps inner with a deadline on the given clock. Pass
// quartz.NewReal() in production and a mock clock in tests.
func NewTimeoutAgent(inner Agent, timeout time.Duration, clock quartz.Clock, logger *log.Logger) *TimeoutAgent {
	return &TimeoutAgent{
		inner:   inner,
		timeout: timeout,
		clock:   clock,
		logger:  logger.WithPrefix("timeout-agent"),
	}
}

// MakeDecision implements Agent.
func (a *TimeoutAgent) MakeDecision(view TableView) Decision {
	decisionCh := make(chan Decision, 1)
	expired := make(chan struct{})

	timer := a.clock.AfterFunc(a.timeout, func() {
		close(expired)
	})
	defer timer.Stop()

	go func() {
		decisionCh <- a.inner.MakeDecision(view)
	}()

	select {
	case d := <-decisionCh:
		return d
	case <-expired:
		a.logger.Warn("decision timed out", "seat", view.Seat, "name", view.Name, "timeout", a.timeout)
		if view.ToCall == 0 {
			return Decision{Action: Check}
		}
		return Decision{Action: Fold}
	}
}

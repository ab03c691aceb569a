// Package config loads session configuration from HCL files: one session
// block for the game parameters and a player block per seat.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/holdemcore/internal/bot"
)

// SessionConfig represents a complete session configuration.
type SessionConfig struct {
	Session SessionSettings `hcl:"session,block"`
	Players []PlayerConfig  `hcl:"player,block"`
}

// SessionSettings contains the game parameters for a session.
type SessionSettings struct {
	SmallBlind    int   `hcl:"small_blind,optional"`
	BigBlind      int   `hcl:"big_blind,optional"`
	StartingStack int   `hcl:"starting_stack,optional"`
	Hands         int   `hcl:"hands,optional"`
	Seed          int64 `hcl:"seed,optional"`
}

// PlayerConfig defines one seat.
type PlayerConfig struct {
	Name     string `hcl:"name,label"`
	Strategy string `hcl:"strategy,optional"`
	Stack    int    `hcl:"stack,optional"` // overrides starting_stack for this seat
}

// DefaultSessionConfig returns a playable three-seat session.
func DefaultSessionConfig() *SessionConfig {
	return &SessionConfig{
		Session: SessionSettings{
			SmallBlind:    10,
			BigBlind:      20,
			StartingStack: 1000,
			Hands:         100,
		},
		Players: []PlayerConfig{
			{Name: "alice", Strategy: bot.StrategyChart},
			{Name: "bob", Strategy: bot.StrategyCall},
			{Name: "carol", Strategy: bot.StrategyRand},
		},
	}
}

// LoadSessionConfig loads configuration from an HCL file. A missing file
// yields the defaults.
func LoadSessionConfig(filename string) (*SessionConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultSessionConfig(), nil
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseSessionConfig(src, filename)
}

// ParseSessionConfig decodes configuration from HCL source.
func ParseSessionConfig(src []byte, filename string) (*SessionConfig, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}

	var config SessionConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *SessionConfig) applyDefaults() {
	if c.Session.SmallBlind == 0 {
		c.Session.SmallBlind = 10
	}
	if c.Session.BigBlind == 0 {
		c.Session.BigBlind = 2 * c.Session.SmallBlind
	}
	if c.Session.StartingStack == 0 {
		c.Session.StartingStack = 50 * c.Session.BigBlind
	}
	if c.Session.Hands == 0 {
		c.Session.Hands = 100
	}
	for i := range c.Players {
		if c.Players[i].Strategy == "" {
			c.Players[i].Strategy = bot.StrategyCall
		}
	}
}

// Validate checks the configuration describes a playable session.
func (c *SessionConfig) Validate() error {
	if c.Session.SmallBlind <= 0 || c.Session.BigBlind <= 0 {
		return fmt.Errorf("blinds must be positive, got %d/%d", c.Session.SmallBlind, c.Session.BigBlind)
	}
	if c.Session.SmallBlind >= c.Session.BigBlind {
		return fmt.Errorf("small blind %d must be below big blind %d", c.Session.SmallBlind, c.Session.BigBlind)
	}
	if len(c.Players) < 2 || len(c.Players) > 9 {
		return fmt.Errorf("need 2 to 9 players, got %d", len(c.Players))
	}

	seen := make(map[string]bool, len(c.Players))
	for _, p := range c.Players {
		if seen[p.Name] {
			return fmt.Errorf("duplicate player name %q", p.Name)
		}
		seen[p.Name] = true
		if !validStrategy(p.Strategy) {
			return fmt.Errorf("player %q: unknown strategy %q (valid: %v)", p.Name, p.Strategy, bot.Strategies())
		}
		if p.Stack < 0 {
			return fmt.Errorf("player %q: negative stack %d", p.Name, p.Stack)
		}
	}
	return nil
}

// Names returns the seat names in order.
func (c *SessionConfig) Names() []string {
	names := make([]string, len(c.Players))
	for i, p := range c.Players {
		names[i] = p.Name
	}
	return names
}

// Stacks returns per-seat starting stacks, falling back to the session
// default where a player has no override.
func (c *SessionConfig) Stacks() []int {
	stacks := make([]int, len(c.Players))
	for i, p := range c.Players {
		if p.Stack > 0 {
			stacks[i] = p.Stack
		} else {
			stacks[i] = c.Session.StartingStack
		}
	}
	return stacks
}

func validStrategy(s string) bool {
	for _, known := range bot.Strategies() {
		if s == known {
			return true
		}
	}
	return false
}

package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdemcore/internal/bot"
	"github.com/lox/holdemcore/internal/config"
	"github.com/lox/holdemcore/internal/game"
	"github.com/lox/holdemcore/internal/handid"
	"github.com/lox/holdemcore/internal/phh"
	"github.com/lox/holdemcore/internal/tui"
)

// PlayCmd runs an interactive session with the human in seat 0.
type PlayCmd struct {
	Config     string `short:"c" help:"Path to HCL session config (opponents, blinds, stacks)"`
	Opponents  int    `default:"2" help:"Number of bot opponents when no config is given"`
	Strategy   string `default:"chart" help:"Opponent strategy: fold, call, rand, chart"`
	SmallBlind int    `default:"10" help:"Small blind"`
	BigBlind   int    `default:"20" help:"Big blind"`
	Stack      int    `default:"1000" help:"Starting stack"`
	Hands      int    `default:"0" help:"Hands to play (0 plays until someone busts)"`
	BotTimeout time.Duration `default:"5s" help:"Bot decision deadline"`
	Seed       *int64 `help:"RNG seed for reproducible sessions"`
	RecordDir  string `help:"Write a .phh hand history file per hand to this directory"`
}

func (c *PlayCmd) Run(logger *log.Logger) error {
	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}
	rng := rand.New(rand.NewSource(seed))

	names, strategies, tableCfg, hands, err := c.session()
	if err != nil {
		return err
	}

	human := tui.NewAgent(logger)
	agents := make([]game.Agent, len(names))
	agents[0] = human
	for seat := 1; seat < len(names); seat++ {
		b, err := bot.New(strategies[seat], rng, logger)
		if err != nil {
			return err
		}
		agents[seat] = game.NewTimeoutAgent(b, c.BotTimeout, quartz.NewReal(), logger)
	}

	table, err := game.NewTable(rng, names, tableCfg)
	if err != nil {
		return err
	}
	g, err := game.NewGame(table, agents, logger)
	if err != nil {
		return err
	}

	human.Start()
	defer human.Close()

	human.Log(fmt.Sprintf("session started: %d seats, blinds %d/%d, seed %d",
		len(names), tableCfg.SmallBlind, tableCfg.BigBlind, seed))

	for handNum := 1; hands == 0 || handNum <= hands; handNum++ {
		if table.Players[0].Stack == 0 {
			human.Log("you are out of chips")
			break
		}
		if solvent(table) < 2 {
			human.Log("not enough funded seats to continue")
			break
		}

		human.Log(fmt.Sprintf("--- hand %d (button %s) ---", handNum, table.Players[table.Button].Name))
		starting := make([]int, len(table.Players))
		for i, p := range table.Players {
			starting[i] = p.Stack
		}

		result, err := g.PlayHand()
		if err != nil {
			return err
		}
		if c.RecordDir != "" {
			record := phh.FromHand(table, starting, result, handid.New())
			if err := phh.Save(c.RecordDir, record); err != nil {
				return err
			}
		}
		logHandResult(human, table, result)
		table.RotateButton()
	}

	human.Log(fmt.Sprintf("session over: final stack %d", table.Players[0].Stack))
	return nil
}

func (c *PlayCmd) session() (names, strategies []string, cfg game.TableConfig, hands int, err error) {
	if c.Config == "" {
		seats := c.Opponents + 1
		names = make([]string, seats)
		strategies = make([]string, seats)
		names[0] = "you"
		for i := 1; i < seats; i++ {
			names[i] = fmt.Sprintf("%s-%d", c.Strategy, i)
			strategies[i] = c.Strategy
		}
		return names, strategies, game.TableConfig{
			SmallBlind:    c.SmallBlind,
			BigBlind:      c.BigBlind,
			StartingStack: c.Stack,
		}, c.Hands, nil
	}

	sessionCfg, err := config.LoadSessionConfig(c.Config)
	if err != nil {
		return nil, nil, game.TableConfig{}, 0, err
	}

	// The human takes the first seat; the remaining players come from the
	// config as bot opponents.
	names = sessionCfg.Names()
	strategies = make([]string, len(names))
	for i, p := range sessionCfg.Players {
		strategies[i] = p.Strategy
	}
	return names, strategies, game.TableConfig{
		SmallBlind:    sessionCfg.Session.SmallBlind,
		BigBlind:      sessionCfg.Session.BigBlind,
		StartingStack: sessionCfg.Session.StartingStack,
		Stacks:        sessionCfg.Stacks(),
	}, sessionCfg.Session.Hands, nil
}

func solvent(table *game.Table) int {
	count := 0
	for _, p := range table.Players {
		if p.Stack > 0 {
			count++
		}
	}
	return count
}

func logHandResult(human *tui.Agent, table *game.Table, result *game.HandResult) {
	if result.WonByFold {
		winner := table.Players[result.Winners[0]]
		human.Log(fmt.Sprintf("%s wins %d uncontested", winner.Name, result.Pot))
		return
	}

	human.Log(fmt.Sprintf("board: %s", tui.FormatCards(result.Board)))
	for _, winner := range result.Winners {
		eval := result.Evals[winner]
		human.Log(fmt.Sprintf("%s wins %d with %s", table.Players[winner].Name, result.Share, eval.Eval.Category))
	}
}

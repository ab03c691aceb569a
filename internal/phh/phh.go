// Package phh records completed hands in the Poker Hand History file
// format (.phh): one TOML table per hand with stacks, blinds and the
// action sequence, readable by the wider PHH tooling ecosystem.
package phh

import (
	"fmt"
	"time"

	"github.com/lox/holdemcore/internal/game"
	"github.com/lox/holdemcore/poker"
)

// HandHistory is a single hand in PHH form.
type HandHistory struct {
	Variant           string   `toml:"variant"`
	SeatCount         int      `toml:"seat_count"`
	Antes             []int    `toml:"antes"`
	BlindsOrStraddles []int    `toml:"blinds_or_straddles"`
	MinBet            int      `toml:"min_bet"`
	StartingStacks    []int    `toml:"starting_stacks"`
	FinishingStacks   []int    `toml:"finishing_stacks,omitempty"`
	Actions           []string `toml:"actions"`
	Players           []string `toml:"players,omitempty"`
	HandID            string   `toml:"hand"`
	Time              string   `toml:"time,omitempty"`
	Year              int      `toml:"year,omitempty"`
	Month             int      `toml:"month,omitempty"`
	Day               int      `toml:"day,omitempty"`
}

// FromHand builds a PHH record from a finished hand. startingStacks must
// be captured before the hand was played; the table still holds the
// finishing state.
func FromHand(table *game.Table, startingStacks []int, result *game.HandResult, id string) *HandHistory {
	n := len(table.Players)

	blinds := make([]int, n)
	sb, bb := table.BlindSeats()
	blinds[sb] = min(table.SmallBlind, startingStacks[sb])
	blinds[bb] = min(table.BigBlind, startingStacks[bb])

	players := make([]string, n)
	finishing := make([]int, n)
	for i, p := range table.Players {
		players[i] = p.Name
		finishing[i] = p.Stack
	}

	now := time.Now()
	return &HandHistory{
		Variant:           "NT", // no-limit texas hold'em
		SeatCount:         n,
		Antes:             make([]int, n),
		BlindsOrStraddles: blinds,
		MinBet:            table.BigBlind,
		StartingStacks:    startingStacks,
		FinishingStacks:   finishing,
		Actions:           actionLines(table, result),
		Players:           players,
		HandID:            id,
		Time:              now.Format("15:04:05"),
		Year:              now.Year(),
		Month:             int(now.Month()),
		Day:               now.Day(),
	}
}

// actionLines interleaves deals and voluntary actions in PHH notation:
// "d dh p1 AhKs" deals a hole, "d db Jc8h4s" a board street, "p1 f" folds,
// "p2 cc" checks or calls, "p3 cbr 120" bets or raises to 120.
func actionLines(table *game.Table, result *game.HandResult) []string {
	var lines []string

	for i, p := range table.Players {
		if len(p.Hole) == 2 {
			lines = append(lines, fmt.Sprintf("d dh p%d %s%s", i+1, cardCode(p.Hole[0]), cardCode(p.Hole[1])))
		}
	}

	board := result.Board
	streetDealt := map[game.Street]bool{}
	dealBoard := func(street game.Street) {
		if streetDealt[street] {
			return
		}
		streetDealt[street] = true
		switch street {
		case game.Flop:
			if len(board) >= 3 {
				lines = append(lines, "d db "+cardCode(board[0])+cardCode(board[1])+cardCode(board[2]))
			}
		case game.Turn:
			if len(board) >= 4 {
				lines = append(lines, "d db "+cardCode(board[3]))
			}
		case game.River:
			if len(board) >= 5 {
				lines = append(lines, "d db "+cardCode(board[4]))
			}
		}
	}

	for _, action := range result.Actions {
		dealBoard(action.Street)
		player := fmt.Sprintf("p%d", action.Seat+1)
		switch action.Action {
		case game.Fold:
			lines = append(lines, player+" f")
		case game.Raise:
			lines = append(lines, fmt.Sprintf("%s cbr %d", player, action.Bet))
		default: // check or call
			lines = append(lines, player+" cc")
		}
	}

	// Streets dealt after the last voluntary action (all-in runouts).
	for _, street := range []game.Street{game.Flop, game.Turn, game.River} {
		dealBoard(street)
	}

	return lines
}

// cardCode renders a card in PHH letter notation, e.g. "Ah".
func cardCode(c poker.Card) string {
	const ranks = "23456789TJQKA"
	const suits = "shdc"
	return string(ranks[c.Rank]) + string(suits[c.Suit])
}

// Package statistics accumulates per-hand results for a tracked seat and
// reports winrate estimates with confidence bounds. Results are measured in
// big blinds per hand so sessions with different stakes compare directly.
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// MaxSeats bounds per-seat breakdowns.
const MaxSeats = 9

// HandResult is one hand's outcome from the tracked seat's perspective.
type HandResult struct {
	NetBB          float64 // net big blinds won or lost
	Seed           int64   // RNG seed for this hand, for replay
	Seat           int     // tracked seat's position relative to the button
	WentToShowdown bool
	FinalPot       int    // final pot size in chips
	StreetReached  string // furthest street reached
}

// SeatStats tracks results for one position relative to the button.
type SeatStats struct {
	Hands  int
	SumBB  float64
	SumBB2 float64
}

// Statistics tracks simulation results for a single seat.
type Statistics struct {
	BigBlind int // chips per big blind, used to normalize pot sizes

	Hands  int
	SumBB  float64
	SumBB2 float64   // sum of squares for variance
	Values []float64 // all values, for median and percentiles

	ShowdownWins    int
	NonShowdownWins int     // hands won by everyone else folding
	ShowdownBB      float64 // net from hands that reached showdown
	NonShowdownBB   float64 // net from hands that did not
	AllBB           float64 // ledger total for consistency checks

	SeatResults [MaxSeats]SeatStats

	MaxPotChips int
	MaxPotBB    float64
	BigPots     int // pots of 50bb or more
	BigPotsBB   float64
}

// New creates statistics for a session at the given big blind size.
func New(bigBlind int) *Statistics {
	return &Statistics{BigBlind: bigBlind}
}

// Add incorporates a new hand result.
func (s *Statistics) Add(result HandResult) {
	netBB := result.NetBB
	s.Hands++
	s.SumBB += netBB
	s.SumBB2 += netBB * netBB
	s.Values = append(s.Values, netBB)

	if netBB > 0 {
		if result.WentToShowdown {
			s.ShowdownWins++
		} else {
			s.NonShowdownWins++
		}
	}

	if result.WentToShowdown {
		s.ShowdownBB += netBB
	} else {
		s.NonShowdownBB += netBB
	}
	s.AllBB += netBB

	if result.Seat >= 0 && result.Seat < MaxSeats {
		s.SeatResults[result.Seat].Hands++
		s.SeatResults[result.Seat].SumBB += netBB
		s.SeatResults[result.Seat].SumBB2 += netBB * netBB
	}

	potBB := 0.0
	if s.BigBlind > 0 {
		potBB = float64(result.FinalPot) / float64(s.BigBlind)
	}
	if result.FinalPot > s.MaxPotChips {
		s.MaxPotChips = result.FinalPot
		s.MaxPotBB = potBB
	}
	if potBB >= 50 {
		s.BigPots++
		s.BigPotsBB += netBB
	}
}

// Mean returns the arithmetic mean in big blinds per hand.
func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.SumBB / float64(s.Hands)
}

// Variance returns the sample variance.
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumBB2 - float64(s.Hands)*mean*mean) / float64(s.Hands-1)
}

// StdDev returns the sample standard deviation.
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean.
func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median of all results.
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the value at the given percentile (0.0 to 1.0),
// linearly interpolated.
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// SeatMean returns the mean result for a specific seat position.
func (s *Statistics) SeatMean(seat int) float64 {
	if seat < 0 || seat >= MaxSeats {
		return 0
	}
	ss := s.SeatResults[seat]
	if ss.Hands == 0 {
		return 0
	}
	return ss.SumBB / float64(ss.Hands)
}

// IsLedgerBalanced checks that the showdown and non-showdown buckets sum
// to the overall total.
func (s *Statistics) IsLedgerBalanced() bool {
	return math.Abs(s.AllBB-s.ShowdownBB-s.NonShowdownBB) <= 1e-6
}

// Validate checks internal consistency of the accumulated data.
func (s *Statistics) Validate() error {
	if !s.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: all=%.6f showdown=%.6f non-showdown=%.6f",
			s.AllBB, s.ShowdownBB, s.NonShowdownBB)
	}
	if s.Hands <= 0 {
		return fmt.Errorf("invalid hands count: %d", s.Hands)
	}
	if len(s.Values) != s.Hands {
		return fmt.Errorf("values length %d does not match hands count %d", len(s.Values), s.Hands)
	}
	if wins := s.ShowdownWins + s.NonShowdownWins; wins > s.Hands {
		return fmt.Errorf("total wins %d exceeds total hands %d", wins, s.Hands)
	}
	seatHands := 0
	for seat := 0; seat < MaxSeats; seat++ {
		seatHands += s.SeatResults[seat].Hands
	}
	if seatHands != s.Hands {
		return fmt.Errorf("seat hands total %d does not match total hands %d", seatHands, s.Hands)
	}
	return nil
}

// Summary renders a one-line report suitable for logging.
func (s *Statistics) Summary() string {
	low, high := s.ConfidenceInterval95()
	return fmt.Sprintf("%d hands, %.3f bb/hand (95%% CI %.3f to %.3f, stddev %.3f)",
		s.Hands, s.Mean(), low, high, s.StdDev())
}

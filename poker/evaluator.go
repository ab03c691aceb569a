package poker

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidHandSize is returned when the evaluator is given fewer than
// five cards.
var ErrInvalidHandSize = errors.New("poker: need at least five cards to evaluate")

// Category enumerates the hand categories ordered from weakest to strongest.
type Category int

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns the conventional category name
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// Eval is the strength of a five-card hand: a category plus an ordered
// tiebreak sequence for intra-category comparison. Evals compare
// lexicographically, category first.
type Eval struct {
	Category Category
	TieBreak []Rank
}

// Compare returns 1 if e is stronger than o, -1 if weaker, 0 on a tie.
func (e Eval) Compare(o Eval) int {
	if e.Category != o.Category {
		if e.Category > o.Category {
			return 1
		}
		return -1
	}
	n := len(e.TieBreak)
	if len(o.TieBreak) < n {
		n = len(o.TieBreak)
	}
	for i := 0; i < n; i++ {
		if e.TieBreak[i] != o.TieBreak[i] {
			if e.TieBreak[i] > o.TieBreak[i] {
				return 1
			}
			return -1
		}
	}
	// Same category always produces equal-length tiebreaks; defensive tail.
	switch {
	case len(e.TieBreak) > len(o.TieBreak):
		return 1
	case len(e.TieBreak) < len(o.TieBreak):
		return -1
	}
	return 0
}

// String renders the category and tiebreak, e.g. "Full House [A K]"
func (e Eval) String() string {
	parts := make([]string, len(e.TieBreak))
	for i, r := range e.TieBreak {
		parts[i] = r.String()
	}
	return fmt.Sprintf("%s %v", e.Category, parts)
}

// EvaluateFive evaluates exactly 5 distinct cards. The result is
// independent of input order. Behavior is undefined for other sizes.
func EvaluateFive(cards []Card) Eval {
	ranks := make([]Rank, len(cards))
	for i, c := range cards {
		ranks[i] = c.Rank
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] > ranks[j] })

	isFlush := true
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			isFlush = false
			break
		}
	}

	// Straight detection over the 5 distinct ranks, wheel included.
	straightHigh := Rank(-1)
	distinct := distinctDesc(ranks)
	if len(distinct) == 5 {
		if isRun(distinct) {
			straightHigh = distinct[0]
		} else if distinct[0] == Ace && distinct[1] == Five &&
			distinct[2] == Four && distinct[3] == Three && distinct[4] == Two {
			// The wheel ranks as a 5-high straight, not ace-high.
			straightHigh = Five
		}
	}

	counts := map[Rank]int{}
	for _, r := range ranks {
		counts[r]++
	}
	groups := groupsByCountThenRank(counts)

	if straightHigh >= 0 && isFlush {
		return Eval{StraightFlush, []Rank{straightHigh}}
	}
	if groups[0].count == 4 {
		quad := groups[0].rank
		kicker := highestExcept(ranks, quad)
		return Eval{FourOfAKind, []Rank{quad, kicker}}
	}
	if groups[0].count == 3 && groups[1].count == 2 {
		return Eval{FullHouse, []Rank{groups[0].rank, groups[1].rank}}
	}
	if isFlush {
		return Eval{Flush, ranks}
	}
	if straightHigh >= 0 {
		return Eval{Straight, []Rank{straightHigh}}
	}
	if groups[0].count == 3 {
		trips := groups[0].rank
		kickers := kickersExcept(ranks, trips)
		return Eval{ThreeOfAKind, append([]Rank{trips}, kickers[:2]...)}
	}
	if groups[0].count == 2 && groups[1].count == 2 {
		hi, lo := groups[0].rank, groups[1].rank
		if lo > hi {
			hi, lo = lo, hi
		}
		kicker := highestExcept(ranks, hi, lo)
		return Eval{TwoPair, []Rank{hi, lo, kicker}}
	}
	if groups[0].count == 2 {
		pair := groups[0].rank
		kickers := kickersExcept(ranks, pair)
		return Eval{OnePair, append([]Rank{pair}, kickers[:3]...)}
	}
	return Eval{HighCard, ranks}
}

// EvaluateBest finds the best 5-card hand among all C(n,5) subsets of
// 5 to 7 cards. It returns the winning evaluation and the best five
// cards sorted by rank descending. Ties between subsets keep the first
// one found; the score is deterministic either way.
func EvaluateBest(cards []Card) (Eval, []Card, error) {
	if len(cards) < 5 {
		return Eval{}, nil, fmt.Errorf("%w: got %d", ErrInvalidHandSize, len(cards))
	}

	var best Eval
	var bestFive []Card
	found := false

	combo := make([]Card, 5)
	var walk func(start, depth int)
	walk = func(start, depth int) {
		if depth == 5 {
			eval := EvaluateFive(combo)
			if !found || eval.Compare(best) > 0 {
				best = eval
				bestFive = append(bestFive[:0], combo...)
				found = true
			}
			return
		}
		for i := start; i <= len(cards)-(5-depth); i++ {
			combo[depth] = cards[i]
			walk(i+1, depth+1)
		}
	}
	walk(0, 0)

	sort.Slice(bestFive, func(i, j int) bool { return bestFive[i].Rank > bestFive[j].Rank })
	return best, bestFive, nil
}

type rankGroup struct {
	count int
	rank  Rank
}

// groupsByCountThenRank sorts rank multiplicities by count then rank,
// both descending, so the dominant group comes first.
func groupsByCountThenRank(counts map[Rank]int) []rankGroup {
	groups := make([]rankGroup, 0, len(counts))
	for r, c := range counts {
		groups = append(groups, rankGroup{count: c, rank: r})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].rank > groups[j].rank
	})
	return groups
}

func distinctDesc(sortedDesc []Rank) []Rank {
	out := make([]Rank, 0, len(sortedDesc))
	for i, r := range sortedDesc {
		if i == 0 || r != sortedDesc[i-1] {
			out = append(out, r)
		}
	}
	return out
}

func isRun(desc []Rank) bool {
	for i := 0; i < len(desc)-1; i++ {
		if desc[i]-1 != desc[i+1] {
			return false
		}
	}
	return true
}

func highestExcept(ranks []Rank, except ...Rank) Rank {
	best := Rank(-1)
	for _, r := range ranks {
		if containsRank(except, r) {
			continue
		}
		if r > best {
			best = r
		}
	}
	return best
}

func kickersExcept(sortedDesc []Rank, except Rank) []Rank {
	out := make([]Rank, 0, len(sortedDesc))
	for _, r := range sortedDesc {
		if r != except {
			out = append(out, r)
		}
	}
	return out
}

func containsRank(ranks []Rank, r Rank) bool {
	for _, x := range ranks {
		if x == r {
			return true
		}
	}
	return false
}

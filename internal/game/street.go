package game

// Street represents the betting round
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
	ShowdownStreet
)

func (s Street) String() string {
	return [...]string{"preflop", "flop", "turn", "river", "showdown"}[s]
}

// Action represents a player action
type Action int

const (
	Fold Action = iota
	Check
	Call
	Raise
	AllIn
)

func (a Action) String() string {
	return [...]string{"fold", "check", "call", "raise", "allin"}[a]
}

// ParseAction maps an action token to an Action. Returns false for
// unrecognized tokens.
func ParseAction(s string) (Action, bool) {
	switch s {
	case "fold", "f":
		return Fold, true
	case "check", "x":
		return Check, true
	case "call", "c":
		return Call, true
	case "raise", "r":
		return Raise, true
	case "allin", "all-in", "a":
		return AllIn, true
	default:
		return Fold, false
	}
}

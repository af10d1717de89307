package domain

import "fmt"

// Step is one (operation, value) pair, forward or inverse.
type Step struct {
	Operation Operation `json:"operation" msgpack:"op"`
	Value     int       `json:"value" msgpack:"v"`
}

func (s Step) String() string { return fmt.Sprintf("%s %d", s.Operation.Symbol(), s.Value) }

// Range is an inclusive integer interval [min, max]. The zero Range means "not configured".
type Range [2]int

func (r Range) Min() int { return r[0] }
func (r Range) Max() int { return r[1] }

func (r Range) IsZero() bool { return r[0] == 0 && r[1] == 0 }

// Has reports whether v lies inside the interval.
func (r Range) Has(v int) bool { return v >= r[0] && v <= r[1] }

// TierConfig is the generation table for one difficulty.
type TierConfig struct {
	Start      Range       `toml:"start" json:"start"`
	Steps      int         `toml:"steps" json:"steps"`
	Operations []Operation `toml:"operations" json:"operations"`
	Operand    Range       `toml:"operand" json:"operand"`
	Multiplier Range       `toml:"multiplier,omitempty" json:"multiplier,omitempty"`
	Divisor    Range       `toml:"divisor,omitempty" json:"divisor,omitempty"`
	Decoys     int         `toml:"decoys" json:"decoys"`
}

// Allows reports whether op is in the tier's forward operation set.
func (c TierConfig) Allows(op Operation) bool {
	for _, o := range c.Operations {
		if o == op {
			return true
		}
	}
	return false
}

// GameState is the immutable output of one generation call.
type GameState struct {
	ID                  string     `json:"id"`
	Difficulty          Difficulty `json:"difficulty"`
	Seed                int64      `json:"seed"`
	StartNumber         int        `json:"startNumber"`
	Steps               []Step     `json:"steps"`
	IntermediateResults []int      `json:"intermediateResults"`
	Result              int        `json:"result"`
	InverseOperations   []Step     `json:"inverseOperations"`
	DecoyOperations     []Step     `json:"decoyOperations"`
	// Tiles is inverses and decoys in the shuffled order the player sees them.
	Tiles     []Step `json:"tiles"`
	CreatedAt int64  `json:"createdAt"`
}

// LastIndex is the index of the final forward step, where play starts.
func (g *GameState) LastIndex() int { return len(g.Steps) - 1 }

// Entry is a manual-mode numeric answer; the zero Entry means nothing was typed yet.
type Entry struct {
	Value  int
	Filled bool
}

func Typed(v int) Entry { return Entry{Value: v, Filled: true} }

// Progress is the per-session state of one GameState.
type Progress struct {
	Completed []int `json:"completed"`
	// Active is the only step index accepting a submission; -1 once solved.
	Active int `json:"active"`
	// Values holds recovered numbers per chain position; Known marks which are filled in.
	Values   []int       `json:"values"`
	Known    []bool      `json:"known"`
	Awaiting []bool      `json:"awaiting"`
	Tiles    []TileState `json:"tiles"`
	Manual   bool        `json:"manual"`
	Solved   bool        `json:"solved"`
}

// Outcome is the result of one session transition.
type Outcome int

const (
	Ignored        Outcome = iota // not the active step, used tile, or empty entry
	Incorrect                     // wrong tile for the active step
	AwaitingAnswer                // manual mode: operation accepted, number still to type
	WrongAnswer                   // manual mode: typed number does not match
	Advanced                      // step recovered, next step active
	Solved                        // step 0 recovered
)

func (o Outcome) String() string {
	switch o {
	case Ignored:
		return "ignored"
	case Incorrect:
		return "incorrect"
	case AwaitingAnswer:
		return "awaiting-answer"
	case WrongAnswer:
		return "wrong-answer"
	case Advanced:
		return "advanced"
	case Solved:
		return "solved"
	}
	return "unknown"
}

// Violation names a broken invariant at one chain position (-1 when game-wide).
type Violation struct {
	Index int    `json:"index"`
	Rule  string `json:"rule"`
}

func (v Violation) String() string {
	if v.Index < 0 {
		return v.Rule
	}
	return fmt.Sprintf("step %d: %s", v.Index, v.Rule)
}

// Hint describes a suggestion for the client.
type Hint struct {
	Message string `json:"message,omitempty"`
	Step    int    `json:"step"`
	Tile    int    `json:"tile"`
}

package domain

import (
	"fmt"
	"strings"
)

// Operation is one of the four arithmetic operations a step can apply.
type Operation string

const (
	Add      Operation = "add"
	Subtract Operation = "subtract"
	Multiply Operation = "multiply"
	Divide   Operation = "divide"
)

// Operations lists every operation in a stable order.
var Operations = []Operation{Add, Subtract, Multiply, Divide}

// Symbol renders the operation the way the puzzle shows it.
func (o Operation) Symbol() string {
	switch o {
	case Add:
		return "+"
	case Subtract:
		return "−"
	case Multiply:
		return "×"
	case Divide:
		return "÷"
	default:
		return "?"
	}
}

func (o Operation) Valid() bool {
	switch o {
	case Add, Subtract, Multiply, Divide:
		return true
	}
	return false
}

// ParseOperation accepts names and symbols ("add", "+", "x", "/").
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add", "+", "plus":
		return Add, nil
	case "subtract", "sub", "-", "−", "minus":
		return Subtract, nil
	case "multiply", "mul", "*", "x", "×", "times":
		return Multiply, nil
	case "divide", "div", "/", "÷":
		return Divide, nil
	}
	return "", fmt.Errorf("unknown operation %q", s)
}

// Difficulty labels target puzzle generation & scoring.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// Difficulties lists every tier from easiest to hardest.
var Difficulties = []Difficulty{Easy, Medium, Hard}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// Points awarded for solving a puzzle at this tier.
func (d Difficulty) Points() int {
	switch d {
	case Medium:
		return 3
	case Hard:
		return 5
	default:
		return 1
	}
}

func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "e":
		return Easy, nil
	case "medium", "m":
		return Medium, nil
	case "hard", "h":
		return Hard, nil
	}
	return Easy, fmt.Errorf("unknown difficulty %q", s)
}

func (d Difficulty) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *Difficulty) UnmarshalText(b []byte) error {
	v, err := ParseDifficulty(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// TileState is the tri-state of a tile during a session.
type TileState int

const (
	TileAvailable TileState = iota // not used, or reset after a miss
	TileCorrect                    // placed on the right step
	TileIncorrect                  // just placed on the wrong step
)

func (s TileState) Used() bool { return s != TileAvailable }

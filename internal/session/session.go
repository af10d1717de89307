// Package session is the puzzle's state machine. Every transition takes a
// Progress value and returns the next one; nothing is mutated in place.
package session

import (
	"slices"

	"svw.info/reversemath/internal/domain"
	"svw.info/reversemath/internal/operation"
)

// New starts play on g: nothing completed, the last step active and only the
// result known.
func New(g *domain.GameState, manual bool) domain.Progress {
	n := len(g.Steps)
	p := domain.Progress{
		Completed: []int{},
		Active:    n - 1,
		Values:    make([]int, n+1),
		Known:     make([]bool, n+1),
		Awaiting:  make([]bool, n+1),
		Tiles:     make([]domain.TileState, len(g.Tiles)),
		Manual:    manual,
	}
	p.Values[n] = g.Result
	p.Known[n] = true
	return p
}

// EvaluateSubmission reports whether (op, value) is exactly the inverse step at stepIndex.
func EvaluateSubmission(stepIndex int, op domain.Operation, value int, g *domain.GameState) bool {
	if stepIndex < 0 || stepIndex >= len(g.InverseOperations) {
		return false
	}
	want := g.InverseOperations[stepIndex]
	return want.Operation == op && want.Value == value
}

func IsStepComplete(stepIndex int, completed []int) bool {
	return slices.Contains(completed, stepIndex)
}

// Submit places tile tileIndex on step stepIndex.
func Submit(g *domain.GameState, p domain.Progress, stepIndex, tileIndex int) (domain.Progress, domain.Outcome) {
	if p.Solved || stepIndex < 0 || stepIndex != p.Active || tileIndex < 0 || tileIndex >= len(g.Tiles) {
		return p, domain.Ignored
	}
	if p.Tiles[tileIndex].Used() || p.Awaiting[stepIndex] || IsStepComplete(stepIndex, p.Completed) {
		return p, domain.Ignored
	}
	tile := g.Tiles[tileIndex]
	next := clone(p)

	if !EvaluateSubmission(stepIndex, tile.Operation, tile.Value, g) {
		next.Tiles[tileIndex] = domain.TileIncorrect
		return next, domain.Incorrect
	}
	next.Tiles[tileIndex] = domain.TileCorrect
	next.Completed = append(next.Completed, stepIndex)
	if next.Manual {
		next.Awaiting[stepIndex] = true
		return next, domain.AwaitingAnswer
	}
	return advance(next, stepIndex, operation.Recover(next.Values[stepIndex+1], tile.Operation, tile.Value))
}

// SubmitAnswer checks a typed number for a step whose operation was accepted
// in manual mode. An empty entry is ignored.
func SubmitAnswer(g *domain.GameState, p domain.Progress, stepIndex int, e domain.Entry) (domain.Progress, domain.Outcome) {
	if !e.Filled || p.Solved || stepIndex < 0 || stepIndex != p.Active || !p.Awaiting[stepIndex] {
		return p, domain.Ignored
	}
	if e.Value != Expected(g, p, stepIndex) {
		return p, domain.WrongAnswer
	}
	next := clone(p)
	next.Awaiting[stepIndex] = false
	return advance(next, stepIndex, e.Value)
}

// Expected is the number recovered at stepIndex from the known value to its right.
func Expected(g *domain.GameState, p domain.Progress, stepIndex int) int {
	inv := g.InverseOperations[stepIndex]
	return operation.Recover(p.Values[stepIndex+1], inv.Operation, inv.Value)
}

// ResetTile makes a tile that missed available again. The caller decides when.
func ResetTile(p domain.Progress, tileIndex int) domain.Progress {
	if tileIndex < 0 || tileIndex >= len(p.Tiles) || p.Tiles[tileIndex] != domain.TileIncorrect {
		return p
	}
	next := clone(p)
	next.Tiles[tileIndex] = domain.TileAvailable
	return next
}

func advance(p domain.Progress, stepIndex, value int) (domain.Progress, domain.Outcome) {
	p.Values[stepIndex] = value
	p.Known[stepIndex] = true
	if stepIndex == 0 {
		p.Active = -1
		p.Solved = true
		return p, domain.Solved
	}
	p.Active = stepIndex - 1
	return p, domain.Advanced
}

func clone(p domain.Progress) domain.Progress {
	p.Completed = slices.Clone(p.Completed)
	p.Values = slices.Clone(p.Values)
	p.Known = slices.Clone(p.Known)
	p.Awaiting = slices.Clone(p.Awaiting)
	p.Tiles = slices.Clone(p.Tiles)
	return p
}

package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/reversemath/internal/domain"
)

// start 10, +5, ×2 => 30. Tiles: 0 = add 5 (decoy), 1 = ÷2, 2 = −5, 3 = ×3 (decoy)
func sampleGame() *domain.GameState {
	return &domain.GameState{
		Difficulty:          domain.Easy,
		StartNumber:         10,
		Steps:               []domain.Step{{Operation: domain.Add, Value: 5}, {Operation: domain.Multiply, Value: 2}},
		IntermediateResults: []int{10, 15, 30},
		Result:              30,
		InverseOperations:   []domain.Step{{Operation: domain.Subtract, Value: 5}, {Operation: domain.Divide, Value: 2}},
		DecoyOperations:     []domain.Step{{Operation: domain.Add, Value: 5}, {Operation: domain.Multiply, Value: 3}},
		Tiles: []domain.Step{
			{Operation: domain.Add, Value: 5},
			{Operation: domain.Divide, Value: 2},
			{Operation: domain.Subtract, Value: 5},
			{Operation: domain.Multiply, Value: 3},
		},
	}
}

func TestNewStartsAtLastStep(t *testing.T) {
	g := sampleGame()
	p := New(g, false)
	assert.Equal(t, 1, p.Active)
	assert.Empty(t, p.Completed)
	assert.Equal(t, []bool{false, false, true}, p.Known)
	assert.Equal(t, 30, p.Values[2])
	assert.Len(t, p.Tiles, 4)
	assert.False(t, p.Solved)
}

func TestEvaluateSubmission(t *testing.T) {
	g := sampleGame()
	tests := []struct {
		name  string
		idx   int
		op    domain.Operation
		value int
		want  bool
	}{
		{"inverse at last step", 1, domain.Divide, 2, true},
		{"inverse at first step", 0, domain.Subtract, 5, true},
		{"forward op is not the inverse", 1, domain.Add, 5, false},
		{"right op wrong value", 1, domain.Divide, 3, false},
		{"right pair wrong position", 0, domain.Divide, 2, false},
		{"index out of range", 2, domain.Divide, 2, false},
		{"negative index", -1, domain.Divide, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EvaluateSubmission(tt.idx, tt.op, tt.value, g))
		})
	}
}

func TestIsStepComplete(t *testing.T) {
	assert.True(t, IsStepComplete(1, []int{1}))
	assert.False(t, IsStepComplete(0, []int{1}))
	assert.False(t, IsStepComplete(0, nil))
}

func TestSolveAutoMode(t *testing.T) {
	g := sampleGame()
	p := New(g, false)

	p, out := Submit(g, p, 1, 1)
	require.Equal(t, domain.Advanced, out)
	assert.Equal(t, 15, p.Values[1])
	assert.True(t, p.Known[1])
	assert.Equal(t, 0, p.Active)
	assert.True(t, IsStepComplete(1, p.Completed))
	assert.Equal(t, domain.TileCorrect, p.Tiles[1])

	p, out = Submit(g, p, 0, 2)
	require.Equal(t, domain.Solved, out)
	assert.Equal(t, 10, p.Values[0])
	assert.True(t, p.Solved)
	assert.Equal(t, -1, p.Active)
	assert.ElementsMatch(t, []int{0, 1}, p.Completed)

	// nothing accepted after solving
	_, out = Submit(g, p, 0, 0)
	assert.Equal(t, domain.Ignored, out)
}

func TestSubmitForwardOperationFails(t *testing.T) {
	g := sampleGame()
	p := New(g, false)

	next, out := Submit(g, p, 1, 0)
	assert.Equal(t, domain.Incorrect, out)
	assert.Equal(t, 1, next.Active)
	assert.Empty(t, next.Completed)
	assert.Equal(t, domain.TileIncorrect, next.Tiles[0])
	// the input progress is untouched
	assert.Equal(t, domain.TileAvailable, p.Tiles[0])

	// a missed tile cannot be reused until reset
	_, out = Submit(g, next, 1, 0)
	assert.Equal(t, domain.Ignored, out)

	next = ResetTile(next, 0)
	assert.Equal(t, domain.TileAvailable, next.Tiles[0])
	_, out = Submit(g, next, 1, 0)
	assert.Equal(t, domain.Incorrect, out)
}

func TestResetTileLeavesCorrectTiles(t *testing.T) {
	g := sampleGame()
	p, _ := Submit(g, New(g, false), 1, 1)
	assert.Equal(t, domain.TileCorrect, ResetTile(p, 1).Tiles[1])
	assert.Equal(t, p, ResetTile(p, 9))
}

func TestSubmitToInactiveStepIsIgnored(t *testing.T) {
	g := sampleGame()
	p := New(g, false)

	next, out := Submit(g, p, 0, 2)
	assert.Equal(t, domain.Ignored, out)
	assert.Equal(t, p, next)

	_, out = Submit(g, p, 1, 7)
	assert.Equal(t, domain.Ignored, out)
}

func TestManualMode(t *testing.T) {
	g := sampleGame()
	p := New(g, true)

	p, out := Submit(g, p, 1, 1)
	require.Equal(t, domain.AwaitingAnswer, out)
	assert.True(t, IsStepComplete(1, p.Completed))
	assert.False(t, p.Known[1])
	assert.Equal(t, 1, p.Active)
	assert.Equal(t, 15, Expected(g, p, 1))

	// no further tiles while a number is awaited
	_, out = Submit(g, p, 1, 2)
	assert.Equal(t, domain.Ignored, out)

	next, out := SubmitAnswer(g, p, 1, domain.Entry{})
	assert.Equal(t, domain.Ignored, out)
	assert.Equal(t, p, next)

	_, out = SubmitAnswer(g, p, 1, domain.Typed(60))
	assert.Equal(t, domain.WrongAnswer, out)

	p, out = SubmitAnswer(g, p, 1, domain.Typed(15))
	require.Equal(t, domain.Advanced, out)
	assert.Equal(t, 0, p.Active)
	assert.Equal(t, 15, p.Values[1])

	p, out = Submit(g, p, 0, 2)
	require.Equal(t, domain.AwaitingAnswer, out)
	assert.False(t, p.Solved)

	p, out = SubmitAnswer(g, p, 0, domain.Typed(10))
	assert.Equal(t, domain.Solved, out)
	assert.True(t, p.Solved)
	assert.Equal(t, 10, p.Values[0])
}

func TestSubmitAnswerWithoutConfirmedOperation(t *testing.T) {
	g := sampleGame()
	p := New(g, true)
	_, out := SubmitAnswer(g, p, 1, domain.Typed(15))
	assert.Equal(t, domain.Ignored, out)
}

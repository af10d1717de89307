package ports

import (
	"context"
	"time"

	"svw.info/reversemath/internal/domain"
)

// Stats captures how much work a generation took.
type Stats struct {
	Attempts   int
	Rejections int
	Duration   time.Duration
}

// Generator creates new puzzles at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.GameState, Stats, error)
}

// Validator checks a game against its structural invariants.
type Validator interface {
	Validate(ctx context.Context, g *domain.GameState) (ok bool, violations []domain.Violation, err error)
}

// Solver walks a game's inverse chain back to the start number.
type Solver interface {
	Solve(ctx context.Context, g *domain.GameState) ([]int, error)
}

// Hinter points at the tile that solves the active step.
type Hinter interface {
	Hint(ctx context.Context, g *domain.GameState, p *domain.Progress) (domain.Hint, bool, error)
}

// ScoreStore persists the single cumulative score counter.
type ScoreStore interface {
	Load(ctx context.Context) (int, error)
	Add(ctx context.Context, points int) (int, error)
	Reset(ctx context.Context) error
}

package solver

import (
	"context"
	"errors"

	"svw.info/reversemath/internal/domain"
	"svw.info/reversemath/internal/operation"
)

var errMalformed = errors.New("malformed game: inverse chain length mismatch")

// ChainSolver recovers every intermediate by applying the inverse chain from the result.
type ChainSolver struct{}

func NewChainSolver() *ChainSolver { return &ChainSolver{} }

// Solve returns the recovered numbers, start number first and result last.
func (s *ChainSolver) Solve(ctx context.Context, g *domain.GameState) ([]int, error) {
	n := len(g.InverseOperations)
	if n != len(g.Steps) {
		return nil, errMalformed
	}
	out := make([]int, n+1)
	out[n] = g.Result
	for i := n - 1; i >= 0; i-- {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		inv := g.InverseOperations[i]
		if inv.Value == 0 {
			return nil, errors.New("malformed game: zero step value")
		}
		out[i] = operation.ApplyStep(out[i+1], inv)
	}
	return out, nil
}

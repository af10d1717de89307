package hint

import (
	"context"
	"fmt"

	"svw.info/reversemath/internal/domain"
)

// Tiles suggests the available tile that undoes the active step.
type Tiles struct{}

func NewTiles() *Tiles { return &Tiles{} }

// Hint returns the first unused tile equal to the active inverse step.
func (h *Tiles) Hint(ctx context.Context, g *domain.GameState, p *domain.Progress) (domain.Hint, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Hint{}, false, err
	}
	if p.Solved || p.Active < 0 || p.Active >= len(g.InverseOperations) {
		return domain.Hint{}, false, nil
	}
	if p.Awaiting[p.Active] {
		inv := g.InverseOperations[p.Active]
		return domain.Hint{
			Message: fmt.Sprintf("Work out %d %s and type the answer", p.Values[p.Active+1], inv),
			Step:    p.Active,
			Tile:    -1,
		}, true, nil
	}
	want := g.InverseOperations[p.Active]
	for i, t := range g.Tiles {
		if t == want && !p.Tiles[i].Used() {
			return domain.Hint{
				Message: "Try finding the operation that works backwards from the last step",
				Step:    p.Active,
				Tile:    i,
			}, true, nil
		}
	}
	return domain.Hint{}, false, nil
}

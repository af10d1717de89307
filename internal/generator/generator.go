package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"svw.info/reversemath/internal/domain"
	"svw.info/reversemath/internal/operation"
	"svw.info/reversemath/internal/ports"
)

// DefaultMaxStepAttempts bounds the redraws spent on a single chain position or decoy.
const DefaultMaxStepAttempts = 64

// ChainGenerator builds forward chains with their inverse and decoy tiles.
type ChainGenerator struct {
	Tiers           Tiers
	MaxStepAttempts int
}

// NewChainGenerator wires a generator for the given tiers; nil means DefaultTiers.
func NewChainGenerator(t Tiers) *ChainGenerator {
	if t == nil {
		t = DefaultTiers()
	}
	return &ChainGenerator{Tiers: t, MaxStepAttempts: DefaultMaxStepAttempts}
}

var _ ports.Generator = (*ChainGenerator)(nil)

// GenerateGame builds a clock-seeded puzzle with the default tiers.
func GenerateGame(d domain.Difficulty) *domain.GameState {
	g, _, err := NewChainGenerator(nil).Generate(context.Background(), time.Now().UnixNano(), d)
	if err != nil {
		// Only cancellation or an unknown tier fail, neither possible here.
		panic(err)
	}
	return g
}

// Generate creates a solvable puzzle for diff, deterministic for a given seed.
func (g *ChainGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.GameState, ports.Stats, error) {
	start := time.Now()
	cfg, ok := g.Tiers[diff]
	if !ok {
		return nil, ports.Stats{}, fmt.Errorf("no tier configured for %s", diff)
	}
	rng := rand.New(rand.NewSource(seed))
	maxAttempts := g.MaxStepAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxStepAttempts
	}

	// 1) forward chain
	c, st, err := buildChain(ctx, rng, cfg, maxAttempts)
	if err != nil {
		return nil, st, err
	}
	// 2) inverses reuse each forward value
	inverses := make([]domain.Step, len(c.steps))
	for i, s := range c.steps {
		inverses[i] = operation.Invert(s)
	}
	// 3) decoys + shuffled tiles
	decoys := buildDecoys(rng, diff, cfg, inverses, maxAttempts)
	tiles := make([]domain.Step, 0, len(inverses)+len(decoys))
	tiles = append(tiles, inverses...)
	tiles = append(tiles, decoys...)
	rng.Shuffle(len(tiles), func(i, j int) { tiles[i], tiles[j] = tiles[j], tiles[i] })

	gs := &domain.GameState{
		ID:                  uuid.NewString(),
		Difficulty:          diff,
		Seed:                seed,
		StartNumber:         c.results[0],
		Steps:               c.steps,
		IntermediateResults: c.results,
		Result:              c.results[len(c.results)-1],
		InverseOperations:   inverses,
		DecoyOperations:     decoys,
		Tiles:               tiles,
		CreatedAt:           time.Now().UnixNano(),
	}
	st.Duration = time.Since(start)
	return gs, st, nil
}

func between(rng *rand.Rand, r domain.Range) int {
	if r.Max() <= r.Min() {
		return r.Min()
	}
	return r.Min() + rng.Intn(r.Max()-r.Min()+1)
}

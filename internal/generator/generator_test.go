package generator

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/reversemath/internal/domain"
	"svw.info/reversemath/internal/operation"
	"svw.info/reversemath/internal/validator"
)

func TestGenerateAllDifficultiesHoldInvariants(t *testing.T) {
	g := NewChainGenerator(nil)
	v := validator.New()

	cases := []struct {
		name   string
		diff   domain.Difficulty
		steps  int
		decoys int
	}{
		{"easy", domain.Easy, 2, 2},
		{"medium", domain.Medium, 3, 3},
		{"hard", domain.Hard, 4, 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			allowed := DefaultTiers()[tc.diff]

			for seed := int64(1); seed <= 500; seed++ {
				p, _, err := g.Generate(ctx, seed, tc.diff)
				require.NoError(t, err)

				require.Len(t, p.Steps, tc.steps)
				require.Len(t, p.IntermediateResults, tc.steps+1)
				require.Len(t, p.InverseOperations, tc.steps)
				require.Len(t, p.DecoyOperations, tc.decoys)
				require.Len(t, p.Tiles, tc.steps+tc.decoys)
				assert.Equal(t, p.StartNumber, p.IntermediateResults[0])
				assert.Equal(t, p.Result, p.IntermediateResults[tc.steps])

				for i, s := range p.Steps {
					assert.True(t, allowed.Allows(s.Operation), "seed=%d op=%s", seed, s.Operation)
					if s.Operation == domain.Divide {
						assert.Zero(t, p.IntermediateResults[i]%s.Value, "seed=%d", seed)
					}
					inv := p.InverseOperations[i]
					assert.Equal(t, p.IntermediateResults[i], operation.ApplyStep(p.IntermediateResults[i+1], inv), "seed=%d i=%d", seed, i)
				}
				for _, x := range p.IntermediateResults {
					assert.GreaterOrEqual(t, x, 0, "seed=%d", seed)
				}
				for _, d := range p.DecoyOperations {
					assert.False(t, slices.Contains(p.InverseOperations, d), "seed=%d decoy=%v", seed, d)
					if tc.diff == domain.Easy {
						assert.Contains(t, []domain.Operation{domain.Add, domain.Subtract}, d.Operation)
					}
				}

				ok, conf, err := v.Validate(ctx, p)
				require.NoError(t, err)
				require.True(t, ok, "seed=%d violations=%v", seed, conf)
			}
		})
	}
}

func TestGenerateIsDeterministicPerSeed(t *testing.T) {
	g := NewChainGenerator(nil)
	a, _, err := g.Generate(context.Background(), 42, domain.Hard)
	require.NoError(t, err)
	b, _, err := g.Generate(context.Background(), 42, domain.Hard)
	require.NoError(t, err)

	assert.Equal(t, a.StartNumber, b.StartNumber)
	assert.Equal(t, a.Steps, b.Steps)
	assert.Equal(t, a.DecoyOperations, b.DecoyOperations)
	assert.Equal(t, a.Tiles, b.Tiles)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestHardEventuallyUsesEveryOperation(t *testing.T) {
	g := NewChainGenerator(nil)
	seen := map[domain.Operation]bool{}
	for seed := int64(1); seed <= 200; seed++ {
		p, _, err := g.Generate(context.Background(), seed, domain.Hard)
		require.NoError(t, err)
		for _, s := range p.Steps {
			seen[s.Operation] = true
		}
	}
	assert.Len(t, seen, 4)
}

func TestGenerateFallsBackWhenEveryDrawIsRejected(t *testing.T) {
	// Subtracting 50 from a start of 1 can never stay non-negative.
	g := NewChainGenerator(Tiers{domain.Easy: {
		Start:      domain.Range{1, 1},
		Steps:      2,
		Operations: []domain.Operation{domain.Subtract},
		Operand:    domain.Range{50, 50},
		Decoys:     1,
	}})
	g.MaxStepAttempts = 8

	p, st, err := g.Generate(context.Background(), 7, domain.Easy)
	require.NoError(t, err)
	assert.Equal(t, []domain.Step{{Operation: domain.Add, Value: 50}, {Operation: domain.Subtract, Value: 50}}, p.Steps)
	assert.Equal(t, []int{1, 51, 1}, p.IntermediateResults)
	assert.Equal(t, 8+1, st.Attempts)
	assert.Equal(t, 8, st.Rejections)
}

func TestDecoysFallBackToScan(t *testing.T) {
	// The only easy candidates are add 1 and subtract 1; subtract 1 is taken.
	cfg := domain.TierConfig{Operand: domain.Range{1, 1}, Decoys: 3}
	inverses := []domain.Step{{Operation: domain.Subtract, Value: 1}}

	got, ok := firstFreeDecoy(domain.Easy, cfg, inverses)
	require.True(t, ok)
	assert.Equal(t, domain.Step{Operation: domain.Add, Value: 1}, got)

	all := buildDecoys(nil, domain.Easy, cfg, inverses, 0)
	assert.Equal(t, []domain.Step{{Operation: domain.Add, Value: 1}, {Operation: domain.Add, Value: 1}, {Operation: domain.Add, Value: 1}}, all)
}

func TestForcedDivisibilityMovesStartNumber(t *testing.T) {
	g := NewChainGenerator(Tiers{domain.Hard: {
		Start:      domain.Range{7, 7},
		Steps:      1,
		Operations: []domain.Operation{domain.Divide},
		Operand:    domain.Range{1, 1},
		Divisor:    domain.Range{2, 2},
	}})
	p, _, err := g.Generate(context.Background(), 1, domain.Hard)
	require.NoError(t, err)
	assert.Equal(t, 6, p.StartNumber)
	assert.Equal(t, []int{6, 3}, p.IntermediateResults)
	assert.Empty(t, p.DecoyOperations)
}

func TestGenerateHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewChainGenerator(nil).Generate(ctx, 1, domain.Medium)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateUnknownTier(t *testing.T) {
	_, _, err := NewChainGenerator(Tiers{}).Generate(context.Background(), 1, domain.Easy)
	assert.Error(t, err)
}

func TestGenerateGame(t *testing.T) {
	p := GenerateGame(domain.Easy)
	assert.Len(t, p.Steps, 2)
	assert.NotEmpty(t, p.ID)
}

func TestFingerprint(t *testing.T) {
	g := NewChainGenerator(nil)
	a, _, _ := g.Generate(context.Background(), 3, domain.Medium)
	b, _, _ := g.Generate(context.Background(), 3, domain.Medium)
	c, _, _ := g.Generate(context.Background(), 4, domain.Medium)

	fa, err := Fingerprint(a)
	require.NoError(t, err)
	fb, _ := Fingerprint(b)
	assert.Equal(t, fa, fb)

	if a.StartNumber != c.StartNumber || !slices.Equal(a.Steps, c.Steps) {
		fc, _ := Fingerprint(c)
		assert.NotEqual(t, fa, fc)
	}
}

package generator

import (
	"context"
	"math/rand"

	"svw.info/reversemath/internal/domain"
	"svw.info/reversemath/internal/operation"
	"svw.info/reversemath/internal/ports"
)

type chain struct {
	steps   []domain.Step
	results []int
}

// buildChain draws the start number and cfg.Steps forward steps. Each position
// is redrawn until its result is non-negative and, for divide, exact.
func buildChain(ctx context.Context, rng *rand.Rand, cfg domain.TierConfig, maxAttempts int) (chain, ports.Stats, error) {
	var st ports.Stats
	cur := between(rng, cfg.Start)
	c := chain{
		steps:   make([]domain.Step, 0, cfg.Steps),
		results: append(make([]int, 0, cfg.Steps+1), cur),
	}

	for i := 0; i < cfg.Steps; i++ {
		if err := ctx.Err(); err != nil {
			return c, st, err
		}
		step, base, next, ok := drawStep(rng, cfg, cur, i, maxAttempts, &st)
		if !ok {
			// add never goes negative from a non-negative number
			step = domain.Step{Operation: domain.Add, Value: max(cfg.Operand.Min(), 1)}
			base, next = cur, cur+step.Value
		}
		if base != cur {
			// only happens at position 0: the divide moved the start number
			c.results[0] = base
		}
		c.steps = append(c.steps, step)
		c.results = append(c.results, next)
		cur = next
	}
	return c, st, nil
}

// drawStep samples one step for position i from the running number cur.
// base is the running number the step applies to; it differs from cur only
// when a divide forced the start number down to a multiple of the divisor.
func drawStep(rng *rand.Rand, cfg domain.TierConfig, cur, i, maxAttempts int, st *ports.Stats) (step domain.Step, base, next int, ok bool) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		st.Attempts++
		op := cfg.Operations[rng.Intn(len(cfg.Operations))]
		v := between(rng, valueRange(cfg, op))
		if v <= 0 {
			st.Rejections++
			continue
		}
		base = cur
		if op == domain.Divide {
			base = max(cur-cur%v, v)
			if base != cur && i > 0 {
				// the previous step already fixed cur
				st.Rejections++
				continue
			}
		}
		next = operation.Apply(base, op, v)
		if next < 0 || (op == domain.Divide && base%v != 0) {
			st.Rejections++
			continue
		}
		return domain.Step{Operation: op, Value: v}, base, next, true
	}
	return domain.Step{}, cur, cur, false
}

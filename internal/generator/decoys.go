package generator

import (
	"math/rand"
	"slices"

	"svw.info/reversemath/internal/domain"
)

// decoyOperations returns the operations a decoy may use at this tier.
// Medium keeps divide in the pool only 30% of the time.
func decoyOperations(rng *rand.Rand, d domain.Difficulty) []domain.Operation {
	switch d {
	case domain.Easy:
		return []domain.Operation{domain.Add, domain.Subtract}
	case domain.Medium:
		ops := []domain.Operation{domain.Add, domain.Subtract, domain.Multiply}
		if rng.Float64() < 0.3 {
			ops = append(ops, domain.Divide)
		}
		return ops
	default:
		return domain.Operations
	}
}

// buildDecoys draws cfg.Decoys steps that never equal an inverse step.
// Decoys may repeat each other.
func buildDecoys(rng *rand.Rand, d domain.Difficulty, cfg domain.TierConfig, inverses []domain.Step, maxAttempts int) []domain.Step {
	out := make([]domain.Step, 0, cfg.Decoys)
	for len(out) < cfg.Decoys {
		s, ok := drawDecoy(rng, d, cfg, inverses, maxAttempts)
		if !ok {
			if s, ok = firstFreeDecoy(d, cfg, inverses); !ok {
				break
			}
		}
		out = append(out, s)
	}
	return out
}

func drawDecoy(rng *rand.Rand, d domain.Difficulty, cfg domain.TierConfig, inverses []domain.Step, maxAttempts int) (domain.Step, bool) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		ops := decoyOperations(rng, d)
		op := ops[rng.Intn(len(ops))]
		s := domain.Step{Operation: op, Value: between(rng, valueRange(cfg, op))}
		if s.Value > 0 && !slices.Contains(inverses, s) {
			return s, true
		}
	}
	return domain.Step{}, false
}

// firstFreeDecoy scans the whole candidate space in order.
func firstFreeDecoy(d domain.Difficulty, cfg domain.TierConfig, inverses []domain.Step) (domain.Step, bool) {
	ops := domain.Operations
	switch d {
	case domain.Easy:
		ops = ops[:2]
	case domain.Medium:
		ops = ops[:3]
	}
	for _, op := range ops {
		r := valueRange(cfg, op)
		for v := max(r.Min(), 1); v <= r.Max(); v++ {
			s := domain.Step{Operation: op, Value: v}
			if !slices.Contains(inverses, s) {
				return s, true
			}
		}
	}
	return domain.Step{}, false
}

package generator

import "svw.info/reversemath/internal/domain"

// fallbackFactor is used when a tier has no multiplier or divisor range of its own.
var fallbackFactor = domain.Range{2, 5}

// Tiers maps each difficulty to its generation table.
type Tiers map[domain.Difficulty]domain.TierConfig

// DefaultTiers returns the built-in difficulty table.
func DefaultTiers() Tiers {
	return Tiers{
		domain.Easy: {
			Start:      domain.Range{1, 20},
			Steps:      2,
			Operations: []domain.Operation{domain.Add, domain.Subtract},
			Operand:    domain.Range{1, 10},
			Decoys:     2,
		},
		domain.Medium: {
			Start:      domain.Range{1, 50},
			Steps:      3,
			Operations: []domain.Operation{domain.Add, domain.Subtract, domain.Multiply},
			Operand:    domain.Range{1, 20},
			Multiplier: domain.Range{2, 5},
			Decoys:     3,
		},
		domain.Hard: {
			Start:      domain.Range{1, 100},
			Steps:      4,
			Operations: domain.Operations,
			Operand:    domain.Range{1, 50},
			Multiplier: domain.Range{2, 10},
			Divisor:    domain.Range{2, 5},
			Decoys:     4,
		},
	}
}

// Merge overlays non-empty tiers from o onto a copy of t.
func (t Tiers) Merge(o Tiers) Tiers {
	out := make(Tiers, len(t))
	for d, c := range t {
		out[d] = c
	}
	for d, c := range o {
		out[d] = c
	}
	return out
}

// valueRange picks the range a value for op is drawn from.
func valueRange(c domain.TierConfig, op domain.Operation) domain.Range {
	switch op {
	case domain.Multiply:
		if !c.Multiplier.IsZero() {
			return c.Multiplier
		}
		return fallbackFactor
	case domain.Divide:
		if !c.Divisor.IsZero() {
			return c.Divisor
		}
		return fallbackFactor
	default:
		return c.Operand
	}
}

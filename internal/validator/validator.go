package validator

import (
	"context"
	"slices"

	"svw.info/reversemath/internal/domain"
	"svw.info/reversemath/internal/operation"
)

// Rule names reported in violations.
const (
	RuleShape        = "shape"
	RuleStart        = "start number differs from first intermediate"
	RuleResult       = "result differs from last intermediate"
	RuleValue        = "step value must be positive"
	RuleForward      = "forward step does not produce next intermediate"
	RuleNegative     = "negative intermediate"
	RuleIntegral     = "divide is not exact"
	RuleInverse      = "inverse is not the flipped forward step"
	RuleRoundTrip    = "inverse does not recover previous intermediate"
	RuleDecoyOverlap = "decoy equals an inverse step"
	RuleTiles        = "tiles are not inverses plus decoys"
)

type ChainValidator struct{}

func New() *ChainValidator { return &ChainValidator{} }

// Validate checks g against every chain invariant and returns all violations found.
func (v *ChainValidator) Validate(ctx context.Context, g *domain.GameState) (bool, []domain.Violation, error) {
	if err := ctx.Err(); err != nil {
		return false, nil, err
	}
	conf := make([]domain.Violation, 0, 4)
	add := func(i int, rule string) { conf = append(conf, domain.Violation{Index: i, Rule: rule}) }

	n := len(g.Steps)
	if n == 0 || len(g.IntermediateResults) != n+1 || len(g.InverseOperations) != n {
		add(-1, RuleShape)
		return false, conf, nil
	}
	ir := g.IntermediateResults
	if ir[0] != g.StartNumber {
		add(-1, RuleStart)
	}
	if ir[n] != g.Result {
		add(-1, RuleResult)
	}
	for i, x := range ir {
		if x < 0 {
			add(i, RuleNegative)
		}
	}

	// forward + inverse chain
	for i, s := range g.Steps {
		if s.Value <= 0 {
			add(i, RuleValue)
			continue
		}
		if s.Operation == domain.Divide && ir[i]%s.Value != 0 {
			add(i, RuleIntegral)
		}
		if operation.ApplyStep(ir[i], s) != ir[i+1] {
			add(i, RuleForward)
		}
		inv := g.InverseOperations[i]
		if inv != operation.Invert(s) {
			add(i, RuleInverse)
			continue
		}
		if inv.Operation == domain.Divide && ir[i+1]%inv.Value != 0 || operation.ApplyStep(ir[i+1], inv) != ir[i] {
			add(i, RuleRoundTrip)
		}
	}

	// decoys
	for i, d := range g.DecoyOperations {
		if slices.Contains(g.InverseOperations, d) {
			add(i, RuleDecoyOverlap)
		}
	}

	// tiles, when present, are a permutation of inverses ++ decoys
	if len(g.Tiles) > 0 && !samePieces(g.Tiles, append(slices.Clone(g.InverseOperations), g.DecoyOperations...)) {
		add(-1, RuleTiles)
	}
	return len(conf) == 0, conf, nil
}

func samePieces(a, b []domain.Step) bool {
	if len(a) != len(b) {
		return false
	}
	count := make(map[domain.Step]int, len(a))
	for _, s := range a {
		count[s]++
	}
	for _, s := range b {
		count[s]--
		if count[s] < 0 {
			return false
		}
	}
	return true
}

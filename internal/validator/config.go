package validator

import (
	"errors"
	"fmt"

	"svw.info/reversemath/internal/domain"
)

// ValidateTier rejects tables the generator cannot honour, e.g. a zero
// operand that would allow divide-by-zero or a degenerate add.
func ValidateTier(d domain.Difficulty, c domain.TierConfig) error {
	var errs []error
	checkRange := func(name string, r domain.Range, lo int) {
		if r.Min() < lo || r.Max() < r.Min() {
			errs = append(errs, fmt.Errorf("%s: %s range %v must satisfy %d <= min <= max", d, name, [2]int(r), lo))
		}
	}
	checkRange("start", c.Start, 0)
	checkRange("operand", c.Operand, 1)
	if !c.Multiplier.IsZero() {
		checkRange("multiplier", c.Multiplier, 1)
	}
	if !c.Divisor.IsZero() {
		checkRange("divisor", c.Divisor, 1)
	}
	if c.Steps < 1 {
		errs = append(errs, fmt.Errorf("%s: steps must be at least 1", d))
	}
	if c.Decoys < 0 {
		errs = append(errs, fmt.Errorf("%s: decoys must not be negative", d))
	}
	if len(c.Operations) == 0 {
		errs = append(errs, fmt.Errorf("%s: at least one operation is required", d))
	}
	for _, op := range c.Operations {
		if !op.Valid() {
			errs = append(errs, fmt.Errorf("%s: unknown operation %q", d, op))
		}
	}
	return errors.Join(errs...)
}

// ValidateTiers checks every tier in the table.
func ValidateTiers(t map[domain.Difficulty]domain.TierConfig) error {
	var errs []error
	for _, d := range domain.Difficulties {
		c, ok := t[d]
		if !ok {
			errs = append(errs, fmt.Errorf("%s: tier missing", d))
			continue
		}
		errs = append(errs, ValidateTier(d, c))
	}
	return errors.Join(errs...)
}

// Package operation applies and inverts the four puzzle operations.
package operation

import (
	"fmt"

	"svw.info/reversemath/internal/domain"
)

// Apply computes n op v. Division is the integer quotient; generation only
// produces exact divisions. A zero divisor is a programming error and panics.
func Apply(n int, op domain.Operation, v int) int {
	switch op {
	case domain.Add:
		return n + v
	case domain.Subtract:
		return n - v
	case domain.Multiply:
		return n * v
	case domain.Divide:
		if v == 0 {
			panic("operation: divide by zero")
		}
		return n / v
	}
	panic(fmt.Sprintf("operation: unknown operation %q", op))
}

// Inverse returns the operation that undoes op.
func Inverse(op domain.Operation) domain.Operation {
	switch op {
	case domain.Add:
		return domain.Subtract
	case domain.Subtract:
		return domain.Add
	case domain.Multiply:
		return domain.Divide
	case domain.Divide:
		return domain.Multiply
	}
	return op
}

// Invert flips the step's operation and keeps its value.
func Invert(s domain.Step) domain.Step {
	return domain.Step{Operation: Inverse(s.Operation), Value: s.Value}
}

// Recover computes the value one position to the left of known.
func Recover(known int, op domain.Operation, v int) int {
	return Apply(known, op, v)
}

// ApplyStep is Apply for a Step.
func ApplyStep(n int, s domain.Step) int { return Apply(n, s.Operation, s.Value) }

// Package calc evaluates the two-operand expression entered with the hand.
package calc

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Operator is one of the four arithmetic operators.
type Operator rune

const (
	Add      Operator = '+'
	Subtract Operator = '-'
	Multiply Operator = '*'
	Divide   Operator = '/'
)

// ErrMissingOperand is reported when an operand has not been captured.
var ErrMissingOperand = errors.New("missing operand")

// ErrUnknownOperator is reported for an operator outside + - * /.
var ErrUnknownOperator = errors.New("unknown operator")

// Inf is displayed in place of the result of a division by zero.
const Inf = "Inf"

// ParseOperator maps a keyboard key to an operator.
func ParseOperator(key rune) (Operator, bool) {
	switch op := Operator(key); op {
	case Add, Subtract, Multiply, Divide:
		return op, true
	}
	return 0, false
}

func (o Operator) String() string {
	return string(rune(o))
}

// Result is the outcome of evaluating an expression. Exactly one of Value, Inf and Err
// is meaningful.
type Result struct {
	Value *big.Rat
	Inf   bool
	Err   error
}

// String formats the result for display: whole numbers without a fraction, other
// rationals as decimals to four places, "Inf" for division by zero and "Error: ..."
// for anything else.
func (r Result) String() string {
	switch {
	case r.Err != nil:
		return "Error: " + r.Err.Error()
	case r.Inf:
		return Inf
	case r.Value == nil:
		return "Error: " + ErrMissingOperand.Error()
	case r.Value.IsInt():
		return r.Value.Num().String()
	}
	s := r.Value.FloatString(4)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// Compute evaluates first op second. Operands are nil until captured.
func Compute(first, second *int, op Operator) Result {
	if first == nil || second == nil {
		return Result{Err: ErrMissingOperand}
	}

	a := big.NewRat(int64(*first), 1)
	b := big.NewRat(int64(*second), 1)
	v := new(big.Rat)

	switch op {
	case Add:
		v.Add(a, b)
	case Subtract:
		v.Sub(a, b)
	case Multiply:
		v.Mul(a, b)
	case Divide:
		if b.Sign() == 0 {
			return Result{Inf: true}
		}
		v.Quo(a, b)
	default:
		return Result{Err: fmt.Errorf("%w %q", ErrUnknownOperator, rune(op))}
	}

	return Result{Value: v}
}

// Expression formats "first op second = result" for the overlay.
func Expression(first, second *int, op Operator, r Result) string {
	return fmt.Sprintf("%s %s %s = %s", operand(first), op, operand(second), r)
}

func operand(v *int) string {
	if v == nil {
		return "?"
	}
	return fmt.Sprint(*v)
}

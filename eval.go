package main

import "math"

// evaluate computes the value of an expression tree.
// Arithmetic is checked: any result that doesn't fit in an int64 is an Overflow error.
func evaluate(expr Expr) (int64, error) {
	switch e := expr.(type) {
	case *IntExpr:
		return e.Value, nil
	case *BinExpr:
		if !e.Op.isOp() {
			return 0, &EvalError{Kind: InvalidOperandType, Node: e}
		}
		// left before right, so the leftmost failure is the one reported
		x, err := evaluate(e.Left)
		if err != nil {
			return 0, err
		}
		y, err := evaluate(e.Right)
		if err != nil {
			return 0, err
		}
		return arith(e.Op, x, y)
	default:
		return 0, &EvalError{Kind: InvalidOperandType, Node: e}
	}
}

func arith(op Kind, x, y int64) (int64, error) {
	overflow := &EvalError{Kind: Overflow, Op: op, Left: x, Right: y}
	switch op {
	case AddTok:
		if (y > 0 && x > math.MaxInt64-y) || (y < 0 && x < math.MinInt64-y) {
			return 0, overflow
		}
		return x + y, nil
	case SubTok:
		if (y < 0 && x > math.MaxInt64+y) || (y > 0 && x < math.MinInt64+y) {
			return 0, overflow
		}
		return x - y, nil
	case MultTok:
		if x == 0 || y == 0 {
			return 0, nil
		}
		// MinInt64 * -1 wraps back to MinInt64, which the division check can't see
		if (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
			return 0, overflow
		}
		z := x * y
		if z/y != x {
			return 0, overflow
		}
		return z, nil
	case DivTok:
		if y == 0 {
			return 0, &EvalError{Kind: DivideByZero, Op: op, Left: x, Right: y}
		}
		if x == math.MinInt64 && y == -1 {
			return 0, overflow
		}
		return x / y, nil
	}
	return 0, &EvalError{Kind: InvalidOperandType, Op: op}
}

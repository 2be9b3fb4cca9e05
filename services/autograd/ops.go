// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package autograd

import (
	"fmt"
	"math"
)

// Add computes v + other.
func (v *Value) Add(other *Value) *Value {
	out := newResult(v.data+other.data, "+", v, other)
	out.rule = backwardRule{kind: ruleAdd, a: v, b: other}
	return out
}

// AddScalar computes v + scalar, wrapping the literal into a fresh leaf.
func (v *Value) AddScalar(scalar float64) *Value {
	return v.Add(NewValue(scalar))
}

// Mul computes v * other.
func (v *Value) Mul(other *Value) *Value {
	out := newResult(v.data*other.data, "*", v, other)
	out.rule = backwardRule{kind: ruleMul, a: v, b: other}
	return out
}

// MulScalar computes v * scalar, wrapping the literal into a fresh leaf.
func (v *Value) MulScalar(scalar float64) *Value {
	return v.Mul(NewValue(scalar))
}

// Pow computes v raised to a constant exponent.
//
// Description:
//
//	The exponent is a plain number, not a graph node; only the base receives
//	a gradient. d(v^k)/dv = k * v^(k-1).
func (v *Value) Pow(exponent float64) *Value {
	out := newResult(math.Pow(v.data, exponent), fmt.Sprintf("**%g", exponent), v)
	out.rule = backwardRule{kind: rulePow, a: v, exponent: exponent}
	return out
}

// Neg computes -v, expressed as multiplication by the constant -1.
func (v *Value) Neg() *Value {
	return v.MulScalar(-1)
}

// Sub computes v - other, expressed as v + (-other).
func (v *Value) Sub(other *Value) *Value {
	return v.Add(other.Neg())
}

// SubScalar computes v - scalar.
func (v *Value) SubScalar(scalar float64) *Value {
	return v.Sub(NewValue(scalar))
}

// Div computes v / other, expressed as v * other^-1.
//
// Description:
//
//	Division is the only failing construction: a divisor whose forward value
//	is exactly zero aborts at construction time and no node is produced.
//
// Outputs:
//
//	*Value - The quotient node.
//	error  - ErrDivisionByZero when other.Data() == 0.
func (v *Value) Div(other *Value) (*Value, error) {
	if other.data == 0 {
		return nil, fmt.Errorf("div %g by %s: %w", v.data, other, ErrDivisionByZero)
	}
	return v.Mul(other.Pow(-1)), nil
}

// DivScalar computes v / scalar, wrapping the literal into a fresh leaf.
func (v *Value) DivScalar(scalar float64) (*Value, error) {
	return v.Div(NewValue(scalar))
}

// Exp computes e^v. d(e^v)/dv = e^v, read back from the output's own data.
func (v *Value) Exp() *Value {
	out := newResult(math.Exp(v.data), "exp", v)
	out.rule = backwardRule{kind: ruleExp, a: v}
	return out
}

// Tanh computes the hyperbolic tangent of v.
//
// Description:
//
//	The derivative 1 - tanh(v)^2 is read back from the output's own data,
//	so the rule never recomputes the activation.
func (v *Value) Tanh() *Value {
	e2x := math.Exp(2 * v.data)
	t := (e2x - 1) / (e2x + 1)
	out := newResult(t, "tanh", v)
	out.rule = backwardRule{kind: ruleTanh, a: v}
	return out
}

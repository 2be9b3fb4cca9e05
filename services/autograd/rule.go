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

import "math"

// ruleKind identifies which local derivative rule a node carries.
type ruleKind int

const (
	// ruleNone is the leaf rule; dispatch is a no-op.
	ruleNone ruleKind = iota

	// ruleAdd pushes the output gradient unchanged onto both operands.
	ruleAdd

	// ruleMul pushes the output gradient scaled by the other operand's data.
	ruleMul

	// rulePow pushes k * a^(k-1) times the output gradient onto the base.
	rulePow

	// ruleExp pushes the output data (e^a) times the output gradient.
	ruleExp

	// ruleTanh pushes (1 - out^2) times the output gradient.
	ruleTanh
)

// String returns the string representation of the ruleKind.
func (k ruleKind) String() string {
	switch k {
	case ruleNone:
		return "none"
	case ruleAdd:
		return "add"
	case ruleMul:
		return "mul"
	case rulePow:
		return "pow"
	case ruleExp:
		return "exp"
	case ruleTanh:
		return "tanh"
	default:
		return "unknown"
	}
}

// backwardRule is the local derivative rule attached to a node at
// construction time.
//
// Description:
//
//	Instead of an opaque closure, the rule is a small tagged variant holding
//	exactly the handles the chain-rule step needs: the operand pointers and,
//	for pow, the constant exponent. A single interpreter step (apply)
//	dispatches on the kind. This keeps rules inspectable in tests and makes
//	the captured state explicit.
//
//	a and b hold the operands in operation order, which may be the same
//	pointer (e.g. v.Mul(v)); in that case both += contributions land on the
//	one node, which is exactly the doubled gradient the calculus requires.
//	The zero value is the leaf rule.
type backwardRule struct {
	kind     ruleKind
	a        *Value
	b        *Value
	exponent float64
}

// apply performs one chain-rule step: it reads the output node's fully
// accumulated gradient and adds each operand's contribution into that
// operand's accumulator. out is the node carrying this rule.
func (r backwardRule) apply(out *Value) {
	switch r.kind {
	case ruleNone:
		// leaf
	case ruleAdd:
		r.a.grad += out.grad
		r.b.grad += out.grad
	case ruleMul:
		r.a.grad += r.b.data * out.grad
		r.b.grad += r.a.data * out.grad
	case rulePow:
		r.a.grad += r.exponent * math.Pow(r.a.data, r.exponent-1) * out.grad
	case ruleExp:
		r.a.grad += out.data * out.grad
	case ruleTanh:
		r.a.grad += (1 - out.data*out.data) * out.grad
	}
}

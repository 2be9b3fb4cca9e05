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

import "fmt"

// Value is a single scalar in the computation graph.
//
// Description:
//
//	Value carries the eagerly computed forward result (data), an additive
//	gradient accumulator (grad), the deduplicated set of operands it was
//	computed from (prev), a diagnostic operation label, and the backward
//	rule attached by the producing operation.
//
//	Identity is pointer identity: two leaves holding equal data are distinct
//	graph vertices. The prev slice never contains the same pointer twice,
//	even when an operation consumes one operand in both positions; the
//	doubled gradient contribution comes from the rule, not from duplicate
//	edges.
//
// Thread Safety:
//
//	Value is NOT safe for concurrent use. See the package documentation.
type Value struct {
	data  float64
	grad  float64
	prev  []*Value
	op    string
	label string
	rule  backwardRule
}

// NewValue creates a leaf node wrapping a raw number.
//
// Inputs:
//
//	data - The scalar to wrap.
//
// Outputs:
//
//	*Value - A fresh leaf with grad == 0, no operands, and a no-op rule.
func NewValue(data float64) *Value {
	return &Value{data: data}
}

// NewLabeledValue creates a leaf node with a diagnostic label.
// The label is used only by visualization and String; it has no effect on
// gradients.
func NewLabeledValue(data float64, label string) *Value {
	return &Value{data: data, label: label}
}

// newResult constructs an operation output node. Operands are deduplicated
// by pointer identity before being stored.
func newResult(data float64, op string, operands ...*Value) *Value {
	prev := make([]*Value, 0, len(operands))
	for _, operand := range operands {
		seen := false
		for _, p := range prev {
			if p == operand {
				seen = true
				break
			}
		}
		if !seen {
			prev = append(prev, operand)
		}
	}
	return &Value{data: data, prev: prev, op: op}
}

// Data returns the forward value.
func (v *Value) Data() float64 {
	return v.data
}

// SetData overwrites the forward value in place.
//
// Description:
//
//	Intended for parameter updates between training steps. The engine does
//	not recompute downstream nodes after an in-place update; callers must
//	rebuild the expression (or re-run the forward pass) and reset gradients
//	before the next Backward.
func (v *Value) SetData(data float64) {
	v.data = data
}

// Grad returns the accumulated gradient.
func (v *Value) Grad() float64 {
	return v.grad
}

// Op returns the diagnostic label of the operation that produced this node.
// Leaves return the empty string.
func (v *Value) Op() string {
	return v.op
}

// Label returns the caller-assigned diagnostic label, if any.
func (v *Value) Label() string {
	return v.label
}

// SetLabel assigns a diagnostic label after construction.
func (v *Value) SetLabel(label string) {
	v.label = label
}

// Operands returns the deduplicated operand set this node was computed from.
// The returned slice is a copy; mutating it does not affect the graph.
func (v *Value) Operands() []*Value {
	out := make([]*Value, len(v.prev))
	copy(out, v.prev)
	return out
}

// IsLeaf reports whether this node was created directly from a raw number.
func (v *Value) IsLeaf() bool {
	return len(v.prev) == 0
}

// ZeroGrad resets this node's gradient accumulator to 0.
func (v *Value) ZeroGrad() {
	v.grad = 0
}

// String implements fmt.Stringer for diagnostics.
func (v *Value) String() string {
	if v.label != "" {
		return fmt.Sprintf("Value(%s: data=%g, grad=%g)", v.label, v.data, v.grad)
	}
	return fmt.Sprintf("Value(data=%g, grad=%g)", v.data, v.grad)
}

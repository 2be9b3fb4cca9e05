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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fresh leaves start with a zero gradient and no operands
func TestNewValue_Defaults(t *testing.T) {
	v := NewValue(3.5)

	assert.Equal(t, 3.5, v.Data())
	assert.Equal(t, 0.0, v.Grad())
	assert.True(t, v.IsLeaf())
	assert.Empty(t, v.Operands())
	assert.Equal(t, "", v.Op())
}

func TestNewLabeledValue(t *testing.T) {
	v := NewLabeledValue(1.0, "w0")
	assert.Equal(t, "w0", v.Label())

	v.SetLabel("w1")
	assert.Equal(t, "w1", v.Label())
}

// The same operand used in both positions must appear once in the operand
// set; the doubled contribution comes through the rule, not duplicate edges
func TestValue_OperandDeduplication(t *testing.T) {
	a := NewValue(4.0)
	out := a.Mul(a)

	require.Len(t, out.Operands(), 1)
	assert.Same(t, a, out.Operands()[0])
}

// Two distinct leaves holding equal data are different graph vertices
func TestValue_IdentityNotEquality(t *testing.T) {
	a := NewValue(2.0)
	b := NewValue(2.0)
	out := a.Add(b)

	require.Len(t, out.Operands(), 2)
	assert.NotSame(t, out.Operands()[0], out.Operands()[1])
}

// Operands returns a copy; callers cannot mutate graph edges through it
func TestValue_OperandsIsCopy(t *testing.T) {
	a := NewValue(1.0)
	b := NewValue(2.0)
	out := a.Add(b)

	ops := out.Operands()
	ops[0] = nil
	assert.NotNil(t, out.Operands()[0])
}

func TestValue_SetData(t *testing.T) {
	v := NewValue(1.0)
	v.SetData(-0.5)
	assert.Equal(t, -0.5, v.Data())
}

func TestValue_ZeroGrad(t *testing.T) {
	v := NewValue(2.0)
	v.Backward()
	require.Equal(t, 1.0, v.Grad())

	v.ZeroGrad()
	assert.Equal(t, 0.0, v.Grad())
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "Value(data=2, grad=0)", NewValue(2.0).String())
	assert.Equal(t, "Value(x: data=-1.5, grad=0)", NewLabeledValue(-1.5, "x").String())
}

func TestRuleKind_String(t *testing.T) {
	tests := []struct {
		kind ruleKind
		want string
	}{
		{ruleNone, "none"},
		{ruleAdd, "add"},
		{ruleMul, "mul"},
		{rulePow, "pow"},
		{ruleExp, "exp"},
		{ruleTanh, "tanh"},
		{ruleKind(99), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

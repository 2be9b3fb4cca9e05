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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gradTolerance = 1e-6

// For c = a * b, backward must give a.grad == b.data and b.grad == a.data
func TestMul_Gradients(t *testing.T) {
	a := NewValue(3.0)
	b := NewValue(-2.0)
	c := a.Mul(b)

	require.Equal(t, -6.0, c.Data())

	c.Backward()
	assert.Equal(t, -2.0, a.Grad())
	assert.Equal(t, 3.0, b.Grad())
}

func TestAdd_Forward(t *testing.T) {
	out := NewValue(2.0).Add(NewValue(0.5))
	assert.Equal(t, 2.5, out.Data())
	assert.Equal(t, "+", out.Op())
}

// Using the same node on both sides must accumulate, not double-count edges:
// d(a+a)/da == 2
func TestAdd_SharedOperand(t *testing.T) {
	a := NewValue(3.0)
	out := a.Add(a)

	require.Equal(t, 6.0, out.Data())

	out.Backward()
	assert.Equal(t, 2.0, a.Grad())
}

// d(a*a)/da == 2a
func TestMul_SharedOperand(t *testing.T) {
	a := NewValue(3.0)
	out := a.Mul(a)

	out.Backward()
	assert.Equal(t, 6.0, a.Grad())
}

func TestScalarCoercion(t *testing.T) {
	a := NewValue(2.0)

	sum := a.AddScalar(1.5)
	assert.Equal(t, 3.5, sum.Data())
	require.Len(t, sum.Operands(), 2)

	prod := a.MulScalar(-2)
	assert.Equal(t, -4.0, prod.Data())

	diff := a.SubScalar(0.5)
	assert.Equal(t, 1.5, diff.Data())
}

func TestPow_ForwardAndGradient(t *testing.T) {
	a := NewValue(3.0)
	out := a.Pow(2)

	require.Equal(t, 9.0, out.Data())
	require.Len(t, out.Operands(), 1)

	out.Backward()
	// d(a^2)/da = 2a = 6
	assert.InDelta(t, 6.0, a.Grad(), gradTolerance)
}

func TestNeg(t *testing.T) {
	a := NewValue(4.0)
	out := a.Neg()

	require.Equal(t, -4.0, out.Data())

	out.Backward()
	assert.Equal(t, -1.0, a.Grad())
}

func TestSub_Gradients(t *testing.T) {
	a := NewValue(5.0)
	b := NewValue(3.0)
	out := a.Sub(b)

	require.Equal(t, 2.0, out.Data())

	out.Backward()
	assert.Equal(t, 1.0, a.Grad())
	assert.Equal(t, -1.0, b.Grad())
}

func TestDiv_ForwardAndGradient(t *testing.T) {
	a := NewValue(6.0)
	b := NewValue(2.0)
	out, err := a.Div(b)
	require.NoError(t, err)

	assert.InDelta(t, 3.0, out.Data(), gradTolerance)

	out.Backward()
	// d(a/b)/da = 1/b, d(a/b)/db = -a/b^2
	assert.InDelta(t, 0.5, a.Grad(), gradTolerance)
	assert.InDelta(t, -1.5, b.Grad(), gradTolerance)
}

// Dividing by a value whose data is exactly zero must fail at construction
// and produce no node
func TestDiv_ByZero(t *testing.T) {
	a := NewValue(1.0)
	b := NewValue(0.0)

	out, err := a.Div(b)
	require.ErrorIs(t, err, ErrDivisionByZero)
	assert.Nil(t, out)

	out, err = a.DivScalar(0)
	require.ErrorIs(t, err, ErrDivisionByZero)
	assert.Nil(t, out)
}

func TestDivScalar(t *testing.T) {
	out, err := NewValue(7.0).DivScalar(2)
	require.NoError(t, err)
	assert.InDelta(t, 3.5, out.Data(), gradTolerance)
}

func TestExp_ForwardAndGradient(t *testing.T) {
	a := NewValue(1.5)
	out := a.Exp()

	require.InDelta(t, math.Exp(1.5), out.Data(), gradTolerance)

	out.Backward()
	// d(e^a)/da = e^a = out.data
	assert.InDelta(t, out.Data(), a.Grad(), gradTolerance)
}

func TestTanh_ForwardAndGradient(t *testing.T) {
	a := NewValue(0.5)
	out := a.Tanh()

	require.InDelta(t, math.Tanh(0.5), out.Data(), gradTolerance)

	out.Backward()
	// d(tanh a)/da = 1 - tanh(a)^2
	want := 1 - out.Data()*out.Data()
	assert.InDelta(t, want, a.Grad(), gradTolerance)
}

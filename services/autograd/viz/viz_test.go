// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package viz

import (
	"strings"
	"testing"

	"github.com/AleutianAI/AleutianGrad/services/autograd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrace_CollectsNodesAndEdges(t *testing.T) {
	a := autograd.NewLabeledValue(2.0, "a")
	b := autograd.NewLabeledValue(-3.0, "b")
	c := a.Mul(b)

	nodes, edges := Trace(c)
	require.Len(t, nodes, 3)
	require.Len(t, edges, 2)

	assert.Same(t, c, nodes[0])
	for _, e := range edges {
		assert.Same(t, c, e.To)
	}
}

// Shared subexpressions appear once, with one edge per (operand, consumer)
func TestTrace_SharedSubgraph(t *testing.T) {
	a := autograd.NewValue(1.0)
	d := a.Add(a) // a deduplicated into a single operand
	e := d.Mul(autograd.NewValue(2.0))

	nodes, edges := Trace(e)
	assert.Len(t, nodes, 4)
	assert.Len(t, edges, 3)
}

// Tracing must never mutate the graph
func TestTrace_ReadOnly(t *testing.T) {
	a := autograd.NewValue(2.0)
	b := autograd.NewValue(3.0)
	c := a.Mul(b)
	c.Backward()

	Trace(c)
	assert.Equal(t, 6.0, c.Data())
	assert.Equal(t, 3.0, a.Grad())
	assert.Equal(t, 2.0, b.Grad())
}

func TestDotGraph_Structure(t *testing.T) {
	a := autograd.NewLabeledValue(2.0, "a")
	b := autograd.NewLabeledValue(-3.0, "b")
	c := a.Mul(b)
	c.SetLabel("c")

	out := DotGraph(c)

	assert.True(t, strings.HasPrefix(out, "digraph"))
	assert.Contains(t, out, `rankdir="LR"`)
	assert.Contains(t, out, "{a | data 2.0000 | grad 0.0000}")
	assert.Contains(t, out, "{b | data -3.0000 | grad 0.0000}")
	assert.Contains(t, out, "{c | data -6.0000 | grad 0.0000}")
	// one operation node for the multiply
	assert.Contains(t, out, `label="*"`)
}

func TestDotGraph_LeafOnly(t *testing.T) {
	out := DotGraph(autograd.NewValue(1.0))

	assert.True(t, strings.HasPrefix(out, "digraph"))
	assert.Contains(t, out, "{data 1.0000 | grad 0.0000}")
	assert.NotContains(t, out, "->")
}

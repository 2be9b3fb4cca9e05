// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package viz renders computation graphs for inspection.
//
// Everything in this package is a read-only traversal over Operands and Op:
// nothing here mutates values or gradients, so rendering is always safe
// between a forward pass and Backward.
package viz

import "github.com/AleutianAI/AleutianGrad/services/autograd"

// Edge is a directed operand -> consumer relationship.
type Edge struct {
	From *autograd.Value
	To   *autograd.Value
}

// Trace collects every node and edge reachable from root.
//
// Outputs:
//
//	[]*autograd.Value - Distinct nodes, discovery order, root first.
//	[]Edge            - One edge per (operand, consumer) pair.
func Trace(root *autograd.Value) ([]*autograd.Value, []Edge) {
	var nodes []*autograd.Value
	var edges []Edge
	seen := make(map[*autograd.Value]bool)

	var build func(*autograd.Value)
	build = func(v *autograd.Value) {
		if seen[v] {
			return
		}
		seen[v] = true
		nodes = append(nodes, v)
		for _, operand := range v.Operands() {
			edges = append(edges, Edge{From: operand, To: v})
			build(operand)
		}
	}
	build(root)

	return nodes, edges
}

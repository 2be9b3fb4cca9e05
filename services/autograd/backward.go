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

// topoOrder returns every node reachable from root in topological order:
// each operand precedes every node computed from it, and root is last.
//
// Description:
//
//	Depth-first post-order with a pointer-identity visited set. Shared
//	subexpressions and reconvergent (diamond) paths are appended exactly
//	once. Construction guarantees acyclicity, so the walk always terminates
//	in time linear in the number of distinct ancestors.
func topoOrder(root *Value) []*Value {
	order := make([]*Value, 0)
	visited := make(map[*Value]bool)

	var visit func(*Value)
	visit = func(node *Value) {
		if visited[node] {
			return
		}
		visited[node] = true
		for _, operand := range node.prev {
			visit(operand)
		}
		order = append(order, node)
	}
	visit(root)

	return order
}

// Backward runs reverse-mode differentiation from this node.
//
// Description:
//
//	Seeds v.grad = 1 (d(v)/d(v)) and walks the topological order in reverse,
//	dispatching each node's backward rule. Walking in reverse guarantees
//	that by the time a node's rule fires, every consumer of that node has
//	already added its contribution, so the gradient it propagates is
//	complete. This holds for arbitrary DAGs, not just trees.
//
//	Calling Backward on a leaf succeeds trivially: its gradient is seeded to
//	1 and nothing propagates. Calling Backward twice without resetting
//	gradients accumulates on top of the previous pass; resetting via
//	ZeroGradGraph (or ZeroGrad on held parameters) between passes is the
//	caller's responsibility.
func (v *Value) Backward() {
	order := topoOrder(v)

	v.grad = 1.0
	for i := len(order) - 1; i >= 0; i-- {
		node := order[i]
		node.rule.apply(node)
	}
}

// ZeroGradGraph resets the gradient of every node reachable from v to 0.
//
// Description:
//
//	Uses the same topological machinery as Backward, so exactly the nodes a
//	Backward call would touch are reset. Typically called on the previous
//	step's loss node before building the next forward pass.
func (v *Value) ZeroGradGraph() {
	for _, node := range topoOrder(v) {
		node.grad = 0
	}
}

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
	"fmt"

	"github.com/AleutianAI/AleutianGrad/services/autograd"
	"github.com/emicklei/dot"
)

// DotGraph renders the computation graph rooted at root as a Graphviz
// digraph.
//
// Description:
//
//	Each value becomes a record-shaped node showing its label, data, and
//	gradient. Non-leaf values additionally get a small operation node wired
//	between their operands and themselves, mirroring how the expression was
//	written. Layout is left to right.
//
// Outputs:
//
//	string - DOT source, renderable with `dot -Tsvg`.
func DotGraph(root *autograd.Value) string {
	g := dot.NewGraph(dot.Directed)
	g.Attr("rankdir", "LR")

	nodes, edges := Trace(root)

	valueNodes := make(map[*autograd.Value]dot.Node, len(nodes))
	opNodes := make(map[*autograd.Value]dot.Node)

	for _, v := range nodes {
		n := g.Node(nodeID(v)).
			Attr("shape", "record").
			Attr("label", recordLabel(v))
		valueNodes[v] = n

		if v.Op() != "" {
			op := g.Node(nodeID(v) + v.Op()).Attr("label", v.Op())
			opNodes[v] = op
			g.Edge(op, n)
		}
	}

	for _, e := range edges {
		g.Edge(valueNodes[e.From], opNodes[e.To])
	}

	return g.String()
}

func nodeID(v *autograd.Value) string {
	return fmt.Sprintf("n%p", v)
}

func recordLabel(v *autograd.Value) string {
	if v.Label() != "" {
		return fmt.Sprintf("{%s | data %.4f | grad %.4f}", v.Label(), v.Data(), v.Grad())
	}
	return fmt.Sprintf("{data %.4f | grad %.4f}", v.Data(), v.Grad())
}

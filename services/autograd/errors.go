// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package autograd implements scalar reverse-mode automatic differentiation.
//
// The package builds a dynamic computation graph as expressions are
// constructed: every primitive operation eagerly computes its forward value
// and records a backward rule describing how gradient flows back onto its
// operands. Calling Backward on any node seeds that node's gradient to 1 and
// propagates gradients to every ancestor through the chain rule.
//
// # Ownership Model
//
// A Value owns its gradient accumulator and its backward rule. It holds
// non-owning pointers to its operands, which may be shared by any number of
// dependents. Operands are kept alive by ordinary Go references; the engine
// never frees or detaches graph nodes.
//
// # Thread Safety
//
// The graph is NOT safe for concurrent mutation. Forward construction and
// backward traversal are single-threaded operations. Running overlapping
// Backward calls from multiple goroutines races on gradient accumulation and
// is unsupported.
//
// # Lifecycle
//
// A typical graph lifecycle:
//  1. Create leaves with NewValue / NewLabeledValue
//  2. Combine them with Add, Mul, Pow, Exp, Tanh, ...
//  3. Call Backward() on the result
//  4. Read Grad() on the leaves
//  5. Call ZeroGradGraph() before the next Backward
package autograd

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrDivisionByZero is returned by Div and DivScalar when the divisor's
	// forward value is exactly zero. The failure is raised at construction
	// time and no node is produced; the expression is simply invalid.
	ErrDivisionByZero = errors.New("division by zero")
)

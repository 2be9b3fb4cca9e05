// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package train

import "github.com/AleutianAI/AleutianGrad/services/autograd"

// SGD applies plain stochastic gradient descent updates to a fixed
// parameter set.
type SGD struct {
	params       []*autograd.Value
	learningRate float64
}

// NewSGD creates an optimizer over the given parameters.
func NewSGD(params []*autograd.Value, learningRate float64) *SGD {
	return &SGD{params: params, learningRate: learningRate}
}

// Step applies one update: p.data -= lr * p.grad for every parameter.
// Callers run Backward on the loss first.
func (o *SGD) Step() {
	for _, p := range o.params {
		p.SetData(p.Data() - o.learningRate*p.Grad())
	}
}

// ZeroGrad resets every parameter's gradient accumulator. Must run before
// each fresh Backward pass; gradients accumulate otherwise.
func (o *SGD) ZeroGrad() {
	for _, p := range o.params {
		p.ZeroGrad()
	}
}

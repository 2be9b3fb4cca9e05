// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package nn composes autograd scalars into neurons, layers, and multi-layer
// perceptrons.
//
// Nothing here adds graph semantics: every structure is plain composition of
// autograd primitives, and gradients flow through the same Backward
// machinery as any hand-built expression.
package nn

import (
	"math/rand"

	"github.com/AleutianAI/AleutianGrad/services/autograd"
)

// Module is implemented by anything holding trainable parameters.
type Module interface {
	// Parameters returns every trainable scalar in the module.
	Parameters() []*autograd.Value
}

// Neuron is a single unit: nin weights, one bias, tanh activation.
type Neuron struct {
	weights []*autograd.Value
	bias    *autograd.Value
}

// NewNeuron creates a neuron with nin inputs.
//
// Description:
//
//	Weights and bias are drawn uniformly from [-1, 1) using the supplied
//	source, so tests and training runs are reproducible from a seed.
//
// Inputs:
//
//	nin - Number of input connections. Must be >= 1.
//	rng - Random source for initialization. Must not be nil.
//
// Outputs:
//
//	*Neuron - The initialized neuron.
func NewNeuron(nin int, rng *rand.Rand) *Neuron {
	weights := make([]*autograd.Value, nin)
	for i := range weights {
		weights[i] = autograd.NewValue(uniform(rng))
	}
	return &Neuron{
		weights: weights,
		bias:    autograd.NewValue(uniform(rng)),
	}
}

// Forward computes tanh(sum(w_i * x_i) + b).
//
// Inputs:
//
//	inputs - One value per weight; len(inputs) must equal the neuron's nin.
//
// Outputs:
//
//	*autograd.Value - The activation node, wired into the caller's graph.
func (n *Neuron) Forward(inputs []*autograd.Value) *autograd.Value {
	act := n.bias
	for i, w := range n.weights {
		act = act.Add(w.Mul(inputs[i]))
	}
	return act.Tanh()
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*autograd.Value {
	params := make([]*autograd.Value, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	params = append(params, n.bias)
	return params
}

// uniform draws from [-1, 1).
func uniform(rng *rand.Rand) float64 {
	return rng.Float64()*2 - 1
}

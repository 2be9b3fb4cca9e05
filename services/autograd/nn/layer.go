// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package nn

import (
	"math/rand"

	"github.com/AleutianAI/AleutianGrad/services/autograd"
)

// Layer is a fully connected set of neurons sharing the same inputs.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a layer of nout neurons, each with nin inputs.
func NewLayer(nin, nout int, rng *rand.Rand) *Layer {
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(nin, rng)
	}
	return &Layer{neurons: neurons}
}

// Forward feeds the inputs through every neuron, returning one activation
// per neuron.
func (l *Layer) Forward(inputs []*autograd.Value) []*autograd.Value {
	outs := make([]*autograd.Value, len(l.neurons))
	for i, n := range l.neurons {
		outs[i] = n.Forward(inputs)
	}
	return outs
}

// Parameters flattens the parameters of every neuron in the layer.
func (l *Layer) Parameters() []*autograd.Value {
	var params []*autograd.Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

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

// MLP is a multi-layer perceptron: fully connected layers applied in
// sequence.
type MLP struct {
	layers []*Layer
}

// NewMLP creates a network with nin input features and one layer per entry
// in nouts.
//
// Example:
//
//	// 2 inputs -> 4 hidden -> 4 hidden -> 1 output
//	mlp := nn.NewMLP(2, []int{4, 4, 1}, rng)
func NewMLP(nin int, nouts []int, rng *rand.Rand) *MLP {
	sizes := append([]int{nin}, nouts...)
	layers := make([]*Layer, len(nouts))
	for i := range layers {
		layers[i] = NewLayer(sizes[i], sizes[i+1], rng)
	}
	return &MLP{layers: layers}
}

// Forward threads the inputs through every layer in order.
func (m *MLP) Forward(inputs []*autograd.Value) []*autograd.Value {
	x := inputs
	for _, layer := range m.layers {
		x = layer.Forward(x)
	}
	return x
}

// ForwardScalar is Forward for networks with a single output neuron.
func (m *MLP) ForwardScalar(inputs []*autograd.Value) *autograd.Value {
	return m.Forward(inputs)[0]
}

// Parameters flattens the parameters of every layer in the network.
func (m *MLP) Parameters() []*autograd.Value {
	var params []*autograd.Value
	for _, layer := range m.layers {
		params = append(params, layer.Parameters()...)
	}
	return params
}

// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"fmt"
	"math/rand"

	"github.com/AleutianAI/AleutianGrad/services/autograd"
	"github.com/AleutianAI/AleutianGrad/services/autograd/nn"
	"github.com/spf13/cobra"
)

func runNeuronCommand(cmd *cobra.Command, args []string) error {
	rng := rand.New(rand.NewSource(1))
	neuron := nn.NewNeuron(2, rng)

	inputs := []*autograd.Value{
		autograd.NewLabeledValue(1.0, "x0"),
		autograd.NewLabeledValue(-1.0, "x1"),
	}

	out := neuron.Forward(inputs)
	fmt.Printf("tanh neuron output: %g\n\n", out.Data())

	out.Backward()
	fmt.Println("parameter gradients:")
	for i, p := range neuron.Parameters() {
		name := fmt.Sprintf("w%d", i)
		if i == len(neuron.Parameters())-1 {
			name = "b"
		}
		fmt.Printf("  d(out)/d%s = %g (data %g)\n", name, p.Grad(), p.Data())
	}
	fmt.Println("\ninput gradients:")
	for _, in := range inputs {
		fmt.Printf("  d(out)/d%s = %g\n", in.Label(), in.Grad())
	}
	return nil
}

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

	"github.com/AleutianAI/AleutianGrad/services/autograd"
	"github.com/spf13/cobra"
)

// buildDemoGraph constructs the worked example L = (a*b + c) * f.
func buildDemoGraph() (leaves []*autograd.Value, loss *autograd.Value) {
	a := autograd.NewLabeledValue(2.0, "a")
	b := autograd.NewLabeledValue(-3.0, "b")
	c := autograd.NewLabeledValue(10.0, "c")
	f := autograd.NewLabeledValue(-2.0, "f")

	d := a.Mul(b)
	d.SetLabel("d")
	e := d.Add(c)
	e.SetLabel("e")
	loss = e.Mul(f)
	loss.SetLabel("L")

	return []*autograd.Value{a, b, c, f}, loss
}

func runDemoCommand(cmd *cobra.Command, args []string) error {
	leaves, loss := buildDemoGraph()

	fmt.Printf("L = (a*b + c) * f = %g\n\n", loss.Data())

	loss.Backward()
	fmt.Println("gradients after L.Backward():")
	for _, leaf := range leaves {
		fmt.Printf("  dL/d%s = %g\n", leaf.Label(), leaf.Grad())
	}
	return nil
}

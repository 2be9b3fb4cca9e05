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

// Sample pairs one input vector with its target output.
type Sample struct {
	Inputs []float64
	Target float64
}

// XORDataset returns the XOR truth table with targets normalized from {0,1}
// to {-1,1}, which trains better through tanh outputs.
func XORDataset() []Sample {
	return []Sample{
		{Inputs: []float64{0, 0}, Target: -1},
		{Inputs: []float64{0, 1}, Target: 1},
		{Inputs: []float64{1, 0}, Target: 1},
		{Inputs: []float64{1, 1}, Target: -1},
	}
}

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

import "github.com/AleutianAI/AleutianGrad/services/autograd"

// MSELoss computes the sum of squared errors between predictions and
// targets as a graph node, so Backward on the result reaches every
// parameter that fed the predictions.
//
// Inputs:
//
//	preds   - Model outputs, one per sample.
//	targets - Ground-truth values; len(targets) must equal len(preds).
//
// Outputs:
//
//	*autograd.Value - The scalar loss node.
func MSELoss(preds []*autograd.Value, targets []float64) *autograd.Value {
	loss := autograd.NewValue(0)
	for i, pred := range preds {
		diff := pred.SubScalar(targets[i])
		loss = loss.Add(diff.Pow(2))
	}
	return loss
}

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

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/AleutianAI/AleutianGrad/pkg/logging"
	"github.com/AleutianAI/AleutianGrad/services/autograd"
	"github.com/AleutianAI/AleutianGrad/services/autograd/nn"
)

// Sentinel errors for training runs.
var (
	// ErrEmptyDataset is returned when Run is given no samples.
	ErrEmptyDataset = errors.New("empty dataset")
)

// Result summarizes a finished training run.
type Result struct {
	// FinalLoss is the summed squared error over the dataset after the last
	// epoch.
	FinalLoss float64

	// LossHistory holds one entry per completed epoch.
	LossHistory []float64

	// Predictions holds the model's output for each sample, in dataset
	// order, after training.
	Predictions []float64
}

// Trainer drives gradient descent for a single-output MLP over a dataset.
//
// Description:
//
//	Every epoch rebuilds the forward graph from the current parameter
//	values, computes the summed squared error, runs Backward, and applies
//	one SGD step. Parameter gradients are reset before each Backward pass;
//	intermediate nodes are fresh every epoch, so only parameters need the
//	reset.
type Trainer struct {
	cfg    Config
	model  *nn.MLP
	opt    *SGD
	logger *logging.Logger
}

// NewTrainer builds a model from the config and wires the optimizer.
//
// Inputs:
//
//	cfg    - Validated run configuration.
//	nin    - Number of input features per sample.
//	logger - Destination for epoch progress. Must not be nil; use
//	         logging.Default() for stderr output.
//
// Outputs:
//
//	*Trainer - Ready-to-run trainer with a [nin, hidden..., 1] network.
func NewTrainer(cfg Config, nin int, logger *logging.Logger) *Trainer {
	rng := rand.New(rand.NewSource(cfg.Seed))
	sizes := append(append([]int{}, cfg.Hidden...), 1)
	model := nn.NewMLP(nin, sizes, rng)

	return &Trainer{
		cfg:    cfg,
		model:  model,
		opt:    NewSGD(model.Parameters(), cfg.LearningRate),
		logger: logger,
	}
}

// Model returns the underlying network.
func (t *Trainer) Model() *nn.MLP {
	return t.model
}

// Run trains for the configured number of epochs.
//
// Inputs:
//
//	ctx     - Checked once per epoch; cancellation stops the run.
//	dataset - Samples to fit. Must be non-empty, all with nin inputs.
//
// Outputs:
//
//	*Result - Loss history and final predictions.
//	error   - ErrEmptyDataset, or the context error on cancellation.
func (t *Trainer) Run(ctx context.Context, dataset []Sample) (*Result, error) {
	if len(dataset) == 0 {
		return nil, ErrEmptyDataset
	}

	t.logger.Info("training started",
		"epochs", t.cfg.Epochs,
		"learning_rate", t.cfg.LearningRate,
		"parameters", len(t.model.Parameters()),
		"samples", len(dataset))

	history := make([]float64, 0, t.cfg.Epochs)
	for epoch := 0; epoch < t.cfg.Epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("training cancelled at epoch %d: %w", epoch, err)
		}

		loss := t.epochLoss(dataset)

		t.opt.ZeroGrad()
		loss.Backward()
		t.opt.Step()

		history = append(history, loss.Data())
		if t.cfg.LogEvery > 0 && (epoch+1)%t.cfg.LogEvery == 0 {
			t.logger.Info("epoch complete", "epoch", epoch+1, "loss", loss.Data())
		}
	}

	preds := make([]float64, len(dataset))
	for i, s := range dataset {
		preds[i] = t.model.ForwardScalar(wrapInputs(s.Inputs)).Data()
	}

	result := &Result{
		FinalLoss:   history[len(history)-1],
		LossHistory: history,
		Predictions: preds,
	}
	t.logger.Info("training finished", "final_loss", result.FinalLoss)
	return result, nil
}

// epochLoss builds one fresh forward graph over the whole dataset.
func (t *Trainer) epochLoss(dataset []Sample) *autograd.Value {
	preds := make([]*autograd.Value, len(dataset))
	targets := make([]float64, len(dataset))
	for i, s := range dataset {
		preds[i] = t.model.ForwardScalar(wrapInputs(s.Inputs))
		targets[i] = s.Target
	}
	return nn.MSELoss(preds, targets)
}

func wrapInputs(inputs []float64) []*autograd.Value {
	vals := make([]*autograd.Value, len(inputs))
	for i, x := range inputs {
		vals[i] = autograd.NewValue(x)
	}
	return vals
}

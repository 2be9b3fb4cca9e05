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
	"os"
	"os/signal"

	"github.com/AleutianAI/AleutianGrad/pkg/logging"
	"github.com/AleutianAI/AleutianGrad/services/autograd/train"
	"github.com/spf13/cobra"
)

func runTrainCommand(cmd *cobra.Command, args []string) error {
	cfg := train.DefaultConfig()
	if configPath != "" {
		loaded, err := train.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Flag overrides beat the config file
	if epochs > 0 {
		cfg.Epochs = epochs
	}
	if rate > 0 {
		cfg.LearningRate = rate
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level := logging.LevelInfo
	if verbose {
		level = logging.LevelDebug
	}
	logger := logging.New(logging.Config{Level: level, Service: "gradlab"})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	dataset := train.XORDataset()
	trainer := train.NewTrainer(cfg, len(dataset[0].Inputs), logger)
	result, err := trainer.Run(ctx, dataset)
	if err != nil {
		return err
	}

	fmt.Printf("final loss: %.6f\n\n", result.FinalLoss)
	for i, s := range dataset {
		fmt.Printf("  %v -> %+.4f (target %+g)\n", s.Inputs, result.Predictions[i], s.Target)
	}
	return nil
}

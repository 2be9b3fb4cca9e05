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
	"github.com/spf13/cobra"
)

// --- Global Command Variables ---
var (
	configPath string
	epochs     int
	rate       float64
	seed       int64
	dotOutput  string
	verbose    bool

	rootCmd = &cobra.Command{
		Use:   "gradlab",
		Short: "A cli for exploring the AleutianGrad scalar autodiff engine",
		Long: `gradlab builds small scalar computation graphs, runs reverse-mode
automatic differentiation over them, and trains toy networks built
from the same primitives.`,
	}

	demoCmd = &cobra.Command{
		Use:   "demo",
		Short: "Run the worked backprop example and print every gradient",
		RunE:  runDemoCommand, // Defined in cmd_demo.go
	}

	neuronCmd = &cobra.Command{
		Use:   "neuron",
		Short: "Run a single tanh neuron forward and backward",
		RunE:  runNeuronCommand, // Defined in cmd_neuron.go
	}

	trainCmd = &cobra.Command{
		Use:   "train",
		Short: "Train an MLP on the XOR dataset",
		RunE:  runTrainCommand, // Defined in cmd_train.go
	}

	dotCmd = &cobra.Command{
		Use:   "dot",
		Short: "Write the demo expression graph as Graphviz DOT",
		RunE:  runDotCommand, // Defined in cmd_dot.go
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	trainCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML training config (defaults built in)")
	trainCmd.Flags().IntVar(&epochs, "epochs", 0, "override configured epoch count")
	trainCmd.Flags().Float64Var(&rate, "rate", 0, "override configured learning rate")
	trainCmd.Flags().Int64Var(&seed, "seed", 0, "override configured RNG seed")

	dotCmd.Flags().StringVarP(&dotOutput, "output", "o", "graph.dot", "output path for the DOT file")

	rootCmd.AddCommand(demoCmd, neuronCmd, trainCmd, dotCmd)
}

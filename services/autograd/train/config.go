// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package train provides gradient-descent training loops over autograd
// networks: YAML-loaded run configuration, plain SGD parameter updates, and
// an epoch driver with structured logging and context cancellation.
package train

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config describes one training run.
type Config struct {
	// Epochs is the number of full passes over the dataset.
	Epochs int `yaml:"epochs" validate:"required,gt=0"`

	// LearningRate scales each gradient step.
	LearningRate float64 `yaml:"learning_rate" validate:"required,gt=0"`

	// Hidden lists the hidden layer widths; the output layer of width 1 is
	// appended automatically.
	Hidden []int `yaml:"hidden" validate:"required,min=1,dive,gt=0"`

	// Seed initializes the weight RNG so runs are reproducible.
	Seed int64 `yaml:"seed"`

	// LogEvery controls how often epoch progress is logged (0 disables
	// intermediate logging).
	LogEvery int `yaml:"log_every" validate:"gte=0"`
}

// DefaultConfig returns the configuration used by the XOR example: a
// 2 -> 4 -> 4 -> 1 network trained for 500 epochs at rate 0.05.
func DefaultConfig() Config {
	return Config{
		Epochs:       500,
		LearningRate: 0.05,
		Hidden:       []int{4, 4},
		Seed:         1,
		LogEvery:     50,
	}
}

// LoadConfig reads and validates a YAML config file.
//
// Inputs:
//
//	path - Path to the YAML file.
//
// Outputs:
//
//	Config - The parsed configuration.
//	error  - Read, parse, or validation failure.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the struct-tag constraints.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid training config: %w", err)
	}
	return nil
}

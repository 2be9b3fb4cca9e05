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

	"github.com/AleutianAI/AleutianGrad/services/autograd/viz"
	"github.com/spf13/cobra"
)

func runDotCommand(cmd *cobra.Command, args []string) error {
	_, loss := buildDemoGraph()
	loss.Backward()

	source := viz.DotGraph(loss)
	if err := os.WriteFile(dotOutput, []byte(source), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", dotOutput, err)
	}

	fmt.Printf("wrote %s (render with: dot -Tsvg %s -o graph.svg)\n", dotOutput, dotOutput)
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nowaywastaken/AI-Office/pkg/officegen/excel"
	"github.com/nowaywastaken/AI-Office/pkg/officegen/output"
)

func runInspect(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	data, err := os.ReadFile(inputPath)
	if os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	sheets, err := excel.Inspect(data)
	if err != nil {
		return fmt.Errorf("inspection failed: %w", err)
	}

	jsonData, err := output.ToJSON(sheets, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := output.WriteFileAtomic(outputPath, jsonData, 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}

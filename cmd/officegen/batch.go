package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/nowaywastaken/AI-Office/pkg/officegen"
	"github.com/nowaywastaken/AI-Office/pkg/officegen/output"
)

// batchEntry pairs an input file with its result.
type batchEntry struct {
	Input  string            `json:"input"`
	Result *officegen.Result `json:"result"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	if _, err := officegen.ParseDocType(docType); err != nil {
		return err
	}
	if jobs < 1 {
		return fmt.Errorf("--jobs must be at least 1, got %d", jobs)
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	gen := officegen.New(officegen.Options{Config: &cfg, Logger: newLogger()})

	entries := renderBatch(cmd, gen, args)

	failures := 0
	for _, e := range entries {
		if !e.Result.Success {
			failures++
		}
	}
	if printJSON {
		data, err := output.ToJSON(entries, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	} else {
		for _, e := range entries {
			if e.Result.Success {
				status(true, "%s -> %s", e.Input, e.Result.FilePath)
			} else {
				status(false, "%s: %s", e.Input, e.Result.Error)
			}
		}
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d inputs failed", failures, len(entries))
	}
	return nil
}

// renderBatch renders every input with at most jobs renders in flight. Results keep input order.
// A failing input does not stop the others.
func renderBatch(cmd *cobra.Command, gen *officegen.Generator, inputs []string) []batchEntry {
	entries := make([]batchEntry, len(inputs))
	ctx := withContext(cmd)

	var g errgroup.Group
	g.SetLimit(jobs)
	for i, input := range inputs {
		g.Go(func() error {
			entries[i] = batchEntry{Input: input, Result: renderFile(ctx, gen, input, cmd)}
			return nil
		})
	}
	_ = g.Wait()
	return entries
}

func renderFile(ctx context.Context, gen *officegen.Generator, input string, cmd *cobra.Command) *officegen.Result {
	if _, err := os.Stat(input); err != nil {
		return readFailure(err)
	}
	ir, err := readIR(input, cmd.InOrStdin())
	if err != nil {
		return readFailure(err)
	}
	return gen.Generate(ctx, docType, ir, title)
}

func readFailure(err error) *officegen.Result {
	dt, _ := officegen.ParseDocType(docType)
	return &officegen.Result{
		DocType:   dt,
		Message:   "Failed to read input",
		Error:     err.Error(),
		ErrorKind: officegen.ErrorKind(err),
		Err:       err,
	}
}

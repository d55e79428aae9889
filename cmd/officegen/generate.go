package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/nowaywastaken/AI-Office/pkg/officegen"
	"github.com/nowaywastaken/AI-Office/pkg/officegen/output"
)

// readIR reads an IR file, or stdin for "-". YAML input is converted to JSON.
func readIR(path string, stdin io.Reader) ([]byte, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.YAMLToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("convert YAML: %w", err)
		}
	}
	return data, nil
}

// resolveType returns the --type value, or the type implied by the output file extension.
func resolveType(flag, out string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if ext := filepath.Ext(out); ext != "" {
		if _, err := officegen.ParseDocType(ext); err == nil {
			return ext, nil
		}
	}
	return "", errors.New("--type is required unless --output ends in .docx, .xlsx or .pptx")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if inputPath != "-" {
		if _, err := os.Stat(inputPath); os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", inputPath)
		}
	}
	if toStdout && outputPath != "" {
		return errors.New("--stdout and --output are mutually exclusive")
	}
	if toStdout && isatty.IsTerminal(os.Stdout.Fd()) {
		return errors.New("refusing to write a binary container to a terminal; redirect stdout or use --output")
	}
	if toStdout && printJSON {
		return errors.New("--stdout and --json are mutually exclusive")
	}

	dt, err := resolveType(docType, outputPath)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ir, err := readIR(inputPath, cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	opts := officegen.Options{Config: &cfg, Logger: newLogger()}
	if toStdout || outputPath != "" {
		// Explicit destinations are written below; keep the generator in memory.
		opts.Sink = output.NewMemorySink()
	} else if cfg.OutputDir == "" {
		opts.Sink = output.DirSink{Dir: "."}
	}
	gen := officegen.New(opts)

	res := gen.Generate(withContext(cmd), dt, ir, title)
	if res.Success && outputPath != "" {
		if err := output.WriteFileAtomic(outputPath, res.Content, 0o644); err != nil {
			res = failed(res, officegen.NewRenderError(res.DocType, "output", err))
		} else {
			res.FilePath = outputPath
		}
	}

	if printJSON {
		data, err := output.ToJSON(res, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	}
	if !res.Success {
		status(false, "%s", res.Error)
		return fmt.Errorf("generation failed: %w", res.Err)
	}

	if toStdout {
		if _, err := cmd.OutOrStdout().Write(res.Content); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	if !printJSON {
		status(true, "%s (%d bytes)", res.FilePath, res.Size)
	}
	return nil
}

// failed converts a successful result into a failure caused by err.
func failed(res *officegen.Result, err error) *officegen.Result {
	return &officegen.Result{
		DocType:   res.DocType,
		Message:   "Failed to write " + res.DocType.Label(),
		Error:     err.Error(),
		ErrorKind: officegen.ErrorKind(err),
		Err:       err,
	}
}

func withContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

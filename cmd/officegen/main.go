// Package main provides the CLI entry point for officegen.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/nowaywastaken/AI-Office/pkg/officegen"
)

var (
	docType    string
	outputPath string
	outputDir  string
	title      string
	configPath string
	toStdout   bool
	printJSON  bool
	pretty     bool
	jobs       int
	verbose    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "officegen",
		Short: "Render document IR into Word, Excel and PowerPoint files",
		Long: `officegen renders structured document IR (JSON or YAML) into
.docx, .xlsx and .pptx containers.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log engine warnings and debug output")

	rootCmd.AddCommand(newGenerateCmd(), newBatchCmd(), newInspectCmd())
	return rootCmd
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [ir.json|ir.yaml|-]",
		Short: "Render one IR file",
		Args:  cobra.ExactArgs(1),
		RunE:  runGenerate,
	}
	cmd.Flags().StringVarP(&docType, "type", "t", "", "Document type: word, excel, ppt (default: from --output extension)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: <id>.<ext> in the output directory)")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "d", "", "Output directory (overrides config output_dir)")
	cmd.Flags().StringVar(&title, "title", "", "Fallback title when the IR has none")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Write the container to stdout")
	cmd.Flags().BoolVar(&printJSON, "json", false, "Print the result envelope as JSON")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [ir...]",
		Short: "Render many IR files concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runBatch,
	}
	cmd.Flags().StringVarP(&docType, "type", "t", "", "Document type for every input: word, excel, ppt (required)")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "d", "", "Output directory (overrides config output_dir)")
	cmd.Flags().StringVar(&title, "title", "", "Fallback title when an IR has none")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 4, "Maximum number of concurrent renders")
	cmd.Flags().BoolVar(&printJSON, "json", false, "Print the result envelopes as JSON")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [file.xlsx]",
		Short: "Print the cells and formulas of a workbook as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func newLogger() *slog.Logger {
	level := slog.LevelError
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func loadConfig() (officegen.Config, error) {
	cfg := officegen.DefaultConfig()
	if configPath != "" {
		loaded, err := officegen.LoadConfig(configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	return cfg, nil
}

// status prints a coloured status line to stderr.
func status(ok bool, format string, args ...any) {
	c := color.New(color.FgGreen)
	mark := "ok"
	if !ok {
		c = color.New(color.FgRed)
		mark = "error"
	}
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		c.DisableColor()
	}
	c.Fprintf(os.Stderr, "%-5s ", mark)
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

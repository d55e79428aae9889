package officegen

import (
	"log/slog"

	"github.com/nowaywastaken/AI-Office/pkg/officegen/output"
)

// Options configures a Generator.
type Options struct {
	// Config holds rendering defaults. If nil, DefaultConfig is used.
	Config *Config
	// Logger receives engine warnings and one line per generation. If nil, logs are discarded.
	Logger *slog.Logger
	// Sink stores rendered containers. If nil, a DirSink over Config.OutputDir is used when
	// OutputDir is set; otherwise results are kept in memory only.
	Sink output.Sink
}

// NopLogger returns a logger that discards all records.
func NopLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

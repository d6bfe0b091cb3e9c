// Package logging builds the structured zap loggers used across gofixer.
//
// Entries are JSON encoded and written to stderr by default so they never
// interleave with the report printed on stdout.
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures a logger.
type Options struct {
	// Verbose lowers the level from info to debug.
	Verbose bool
	// Output defaults to os.Stderr.
	Output io.Writer
}

// New creates a JSON logger.
func New(opts Options) *zap.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	level := zapcore.InfoLevel
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:     "timestamp",
		LevelKey:    "level",
		MessageKey:  "message",
		EncodeTime:  zapcore.RFC3339NanoTimeEncoder,
		EncodeLevel: zapcore.LowercaseLevelEncoder,
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(out),
		level,
	)

	return zap.New(core)
}

// WithRun returns a child logger carrying the run identity.
func WithRun(logger *zap.Logger, runID string, dryRun bool) *zap.Logger {
	return logger.With(
		zap.String("run_id", runID),
		zap.Bool("dry_run", dryRun),
	)
}

// OrNop returns logger, or a no-op logger when it is nil.
func OrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}

	return logger
}

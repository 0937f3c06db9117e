// Package logging builds the zap logger used by the command.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// Options selects the logger behaviour.
type Options struct {
	Verbose bool
	// Color forces coloured levels; by default they are used when stderr is a
	// terminal.
	Color *bool
}

// New returns a console logger writing to stderr. Info is the default level,
// debug with Verbose.
func New(opts Options) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(Level(opts.Verbose))
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	color := term.IsTerminal(int(os.Stderr.Fd()))
	if opts.Color != nil {
		color = *opts.Color
	}
	if color {
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	return cfg.Build()
}

// Level maps the verbose flag to a zap level.
func Level(verbose bool) zapcore.Level {
	if verbose {
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}

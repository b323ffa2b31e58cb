package cmd

import (
	"context"
	"errors"
	"io"

	"github.com/makebytes/makebytes/internal/args"
	"github.com/makebytes/makebytes/internal/config"
	"github.com/makebytes/makebytes/internal/generator"
	"github.com/makebytes/makebytes/pkg/log"
)

// errShowUsage asks the caller to print usage and exit successfully.
var errShowUsage = errors.New("show usage")

// runSettings carries the root command flags.
type runSettings struct {
	ConfigPath   string
	LogLevel     string
	LogFile      string
	BytesPerLine int
	// Stdout receives console output. Nil means os.Stdout.
	Stdout io.Writer
}

// settings is bound to the root command flags.
var settings runSettings

// runGenerate validates the flags, merges the command line with the optional
// config file and generates every requested language.
//
// Parameters:
//   - ctx: Cancels generation between languages.
//   - positional: The non-flag arguments, e.g. ["c=data;out.h", "in.bin"].
//   - s: Flag values.
//
// Returns:
//   - error: errShowUsage when there is nothing to do, or the first failure.
func runGenerate(ctx context.Context, positional []string, s runSettings) error {
	if err := config.ValidateBytesPerLine(s.BytesPerLine); err != nil {
		return err
	}
	if err := config.ValidateLogLevel(s.LogLevel); err != nil {
		return err
	}

	cli := args.Parse(positional)

	var cfg *config.Config
	if s.ConfigPath != "" {
		var err error
		if cfg, err = config.Load(s.ConfigPath); err != nil {
			return err
		}
	} else if len(positional) == 0 {
		return errShowUsage
	}

	merged := cli
	input, ok := generator.InputFromArgs(cli)
	opts := generator.Options{
		BytesPerLine: s.BytesPerLine,
		Stdout:       s.Stdout,
	}
	level, logFile := s.LogLevel, s.LogFile

	if cfg != nil {
		merged = cli.Merge(cfg.Entries())
		opts.Public = cfg.Public
		if !ok {
			input = cfg.Input
		}
		if opts.BytesPerLine == 0 {
			opts.BytesPerLine = cfg.BytesPerLine
		}
		if level == "" {
			level = cfg.Logging.Level
		}
		if logFile == "" {
			logFile = cfg.Logging.Path
		}
	}

	if !generator.Requested(merged) {
		return errShowUsage
	}
	if input == "" {
		return generator.ErrNoInput
	}
	opts.Input = input

	if err := log.Init(logFile, level); err != nil {
		return err
	}
	defer log.Close()

	g, err := generator.New(merged, opts)
	if err != nil {
		return err
	}
	return g.Generate(ctx)
}

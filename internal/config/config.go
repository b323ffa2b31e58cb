package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sort"
	"strings"

	"github.com/makebytes/makebytes/internal/args"
	"github.com/makebytes/makebytes/internal/generator"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file name written by "makebytes init".
const DefaultFile = "makebytes.yaml"

// Config represents the configuration parsed from makebytes.yaml.
// It names the input file, the requested outputs and formatting settings.
// Command line arguments take precedence over every value in it.
type Config struct {
	// Input is the path of the binary file to convert.
	Input        string            `yaml:"input"`
	// Public makes the generated C# class public.
	Public       bool              `yaml:"public"`
	// BytesPerLine is the number of byte literals per line.
	BytesPerLine int               `yaml:"bytes_per_line"`
	// Outputs maps a language key (c, cpp, csharp, java, python) to its
	// "[namespace:]var;destination" descriptor.
	Outputs      map[string]string `yaml:"outputs"`
	// Logging contains logging configuration.
	Logging      LoggingConfig     `yaml:"logging"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. Empty logs to stderr.
	Path  string `yaml:"path"`
}


// Load reads, defaults and validates the configuration at path.
// Unknown fields are rejected.
//
// Parameters:
//   - path: The YAML file to read.
//
// Returns:
//   - *Config: The parsed configuration.
//   - error: An error if the file cannot be read, parsed or validated.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks the configuration for unsupported output languages,
// a non-positive line width or an unknown logging level.
func Validate(config *Config) error {
	valid := generator.LanguageKeys()
	for lang := range config.Outputs {
		if !slices.Contains(valid, lang) {
			return fmt.Errorf("output language '%s' is not supported (allowed: %s)", lang, strings.Join(valid, ", "))
		}
	}

	if config.BytesPerLine < 1 {
		return fmt.Errorf("bytes_per_line must be positive, got %d", config.BytesPerLine)
	}

	return ValidateLogLevel(config.Logging.Level)
}

// ValidateBytesPerLine rejects a negative line width given on the command line.
// Zero means unset.
func ValidateBytesPerLine(n int) error {
	if n < 0 {
		return fmt.Errorf("bytes_per_line must be positive, got %d", n)
	}
	return nil
}

// ValidateLogLevel rejects unknown logging levels. An empty level is allowed.
func ValidateLogLevel(level string) error {
	if level == "" {
		return nil
	}
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", level)
	}
}

// ApplyDefaults sets default values for configuration fields that are missing.
func ApplyDefaults(config *Config) {
	if config.BytesPerLine == 0 {
		config.BytesPerLine = 20
	}
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
}

// Entries converts the outputs into argument entries sorted by key.
// The input file and the public setting are not included.
func (c *Config) Entries() *args.Arguments {
	keys := make([]string, 0, len(c.Outputs))
	for k := range c.Outputs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]args.Entry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, args.Entry{Key: k, Value: c.Outputs[k]})
	}
	return args.New(entries...)
}

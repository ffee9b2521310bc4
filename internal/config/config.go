// Package config loads the settings of the header-abbrev command from
// defaults, an optional YAML file and HEADER_ABBREV_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sxwebdev/xconfig"
	"github.com/sxwebdev/xconfig/plugins/loader"
	"github.com/sxwebdev/xconfig/plugins/validate"
	"gopkg.in/yaml.v3"

	"header-abbrev/internal/gen"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "HEADER_ABBREV"

// Config holds the input and output settings. The abbreviation rules
// themselves are fixed and not configurable.
type Config struct {
	InputDir    string        `yaml:"input_dir" env:"INPUT_DIR" default:"sample-data" usage:"Directory holding the data files"`
	Pattern     string        `yaml:"pattern" env:"PATTERN" default:"*.txt" usage:"Glob selecting data files inside the input directory"`
	Output      string        `yaml:"output" env:"OUTPUT" default:"header_mappings.ts" usage:"Path of the generated artifact"`
	Format      string        `yaml:"format" env:"FORMAT" usage:"Artifact format (ts, go, yaml, text); inferred from output when empty"`
	VarName     string        `yaml:"var_name" env:"VAR_NAME" usage:"Identifier the mapping is declared under"`
	PackageName string        `yaml:"package_name" env:"PACKAGE_NAME" usage:"Package clause for Go output; derived from the output directory when empty"`
	LogLevel    string        `yaml:"log_level" env:"LOG_LEVEL" default:"info" usage:"Log level (debug, info, warn, error)"`
	Debounce    time.Duration `yaml:"debounce" env:"DEBOUNCE" default:"250ms" usage:"Quiet period before watch regenerates"`
}

// Load builds a Config. path may be empty; a non-empty path must exist.
func Load(path string) (*Config, error) {
	l, err := loader.NewLoader(map[string]loader.Unmarshal{
		"yaml": yaml.Unmarshal,
		"yml":  yaml.Unmarshal,
	})
	if err != nil {
		return nil, fmt.Errorf("creating config loader: %w", err)
	}

	if err := l.AddFile(path, false); err != nil {
		return nil, fmt.Errorf("adding config file: %w", err)
	}

	cfg := &Config{}

	_, err = xconfig.Load(cfg,
		xconfig.WithLoader(l),
		xconfig.WithEnvPrefix(EnvPrefix),
		xconfig.WithSkipFlags(),
		xconfig.WithDisallowUnknownFields(),
		xconfig.WithPlugins(validate.New()),
	)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

// Validate checks the settings.
func (c *Config) Validate() error {
	var errs []error

	if c.InputDir == "" {
		errs = append(errs, errors.New("input_dir is required"))
	}

	if c.Output == "" {
		errs = append(errs, errors.New("output is required"))
	}

	if _, err := c.OutputFormat(); err != nil {
		errs = append(errs, err)
	}

	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}

	if c.Debounce < 0 {
		errs = append(errs, fmt.Errorf("debounce must not be negative, got %s", c.Debounce))
	}

	return errors.Join(errs...)
}

// OutputFormat returns the configured format, falling back to the output
// file extension.
func (c *Config) OutputFormat() (gen.Format, error) {
	if c.Format != "" {
		return gen.ParseFormat(c.Format)
	}

	return gen.FormatForPath(c.Output)
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"aoc2023/internal/solution"
)

// DefaultPath is the configuration file read when none is given.
const DefaultPath = "aoc.yaml"

// Config holds the settings of one aoc invocation.
type Config struct {
	InputDir     string          `yaml:"input_dir"`
	InputPattern string          `yaml:"input_pattern"`
	Workers      int             `yaml:"workers"`
	// Timeout bounds each part. A solver that ignores its context keeps
	// running in the background after the timeout is reported.
	Timeout      Duration        `yaml:"timeout,omitempty"`
	LogLevel     string          `yaml:"log_level"`
	Answers      map[int]Answers `yaml:"answers,omitempty"`
}

// Answers are the known answers of one day.
type Answers struct {
	Part1 *int `yaml:"part1,omitempty"`
	Part2 *int `yaml:"part2,omitempty"`
}

// For returns the known answer for part, if any.
func (a Answers) For(part solution.Part) (int, bool) {
	var p *int

	switch part {
	case solution.Part1:
		p = a.Part1
	case solution.Part2:
		p = a.Part2
	}

	if p == nil {
		return 0, false
	}

	return *p, true
}

// Duration is a time.Duration written as a Go duration string ("1m30s").
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	if s == "" {
		*d = 0
		return nil
	}

	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}

	*d = Duration(v)

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		InputDir:     "inputs",
		InputPattern: "day%02d.txt",
		Workers:      runtime.GOMAXPROCS(0),
		LogLevel:     "info",
	}
}

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Load reads path, falling back to DefaultConfig when path is the default
// location and no file exists there.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	cfg, err := LoadFile(path)
	if errors.Is(err, os.ErrNotExist) && path == DefaultPath {
		return DefaultConfig(), nil
	}

	return cfg, err
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills in default values for fields explicitly left empty.
func applyDefaults(cfg *Config) {
	def := DefaultConfig()

	if cfg.InputDir == "" {
		cfg.InputDir = def.InputDir
	}

	if cfg.InputPattern == "" {
		cfg.InputPattern = def.InputPattern
	}

	if cfg.Workers == 0 {
		cfg.Workers = def.Workers
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error

	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", c.Workers))
	}

	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout must not be negative, got %s", time.Duration(c.Timeout)))
	}

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("invalid log_level: %w", err))
	}

	if !strings.Contains(c.InputPattern, "%") {
		errs = append(errs, fmt.Errorf("input_pattern %q has no verb for the day number", c.InputPattern))
	}

	for day := range c.Answers {
		if day < 1 || day > 25 {
			errs = append(errs, fmt.Errorf("answers: day %d out of range 1..25", day))
		}
	}

	return errors.Join(errs...)
}

// Level returns the configured log level.
func (c *Config) Level() zapcore.Level {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}

	return lvl
}

// InputPath returns the input file of day.
func (c *Config) InputPath(day int) string {
	return filepath.Join(c.InputDir, fmt.Sprintf(c.InputPattern, day))
}

// Expected returns the known answer for day and part, if any.
func (c *Config) Expected(day int, part solution.Part) (int, bool) {
	a, ok := c.Answers[day]
	if !ok {
		return 0, false
	}

	return a.For(part)
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

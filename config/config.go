// SPDX-License-Identifier: MIT

// Package config loads solver settings from YAML and builds the logger used
// by the command-line tools.
//
// Precedence, lowest first: Default() < config file < command-line values.
// The file mirrors cover.Options field by field:
//
//	seed: 0
//	cutoff: 10s
//	sample_size: 50
//	check_interval: 10
//	max_steps: 0
//	target_size: 0
//	clock: cpu          # cpu | wall
//	log:
//	  level: info       # zerolog level name
//	  pretty: true      # console writer instead of JSON lines
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fastvc/cover"
)

// Clock names accepted by Config.Clock.
const (
	ClockCPU  = "cpu"
	ClockWall = "wall"
)

// Sentinel errors for configuration.
var (
	// ErrUnknownClock indicates a clock name other than "cpu" or "wall".
	ErrUnknownClock = errors.New("config: unknown clock")

	// ErrBadLevel indicates a log level zerolog cannot parse.
	ErrBadLevel = errors.New("config: unknown log level")

	// ErrInvalid indicates out-of-range numeric settings.
	ErrInvalid = errors.New("config: invalid value")
)

// Config is the file-level representation of solver and logging settings.
type Config struct {
	Seed          int64         `yaml:"seed"`
	Cutoff        time.Duration `yaml:"cutoff"`
	SampleSize    int           `yaml:"sample_size"`
	CheckInterval int64         `yaml:"check_interval"`
	MaxSteps      int64         `yaml:"max_steps"`
	TargetSize    int           `yaml:"target_size"`
	Clock         string        `yaml:"clock"`
	Log           Log           `yaml:"log"`
}

// Log configures the zerolog logger.
type Log struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// Default returns the built-in settings: the cover.DefaultOptions values,
// CPU clock, info level, console output.
func Default() Config {
	return Config{
		SampleSize:    cover.DefaultSampleSize,
		CheckInterval: cover.DefaultCheckInterval,
		Clock:         ClockCPU,
		Log:           Log{Level: zerolog.LevelInfoValue, Pretty: true},
	}
}

// Load reads and parses the YAML file at path on top of Default().
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// Parse decodes YAML on top of Default(). Unknown keys are rejected; an
// empty document yields Default(). The result is validated.
func Parse(data []byte) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks names and ranges that cover.Options cannot check itself.
func (c Config) Validate() error {
	if c.Clock != ClockCPU && c.Clock != ClockWall {
		return fmt.Errorf("%w: %q", ErrUnknownClock, c.Clock)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %q", ErrBadLevel, c.Log.Level)
	}
	if c.Cutoff < 0 || c.SampleSize < 1 || c.CheckInterval < 1 || c.MaxSteps < 0 || c.TargetSize < 0 {
		return fmt.Errorf("%w: cutoff=%s sample_size=%d check_interval=%d max_steps=%d target_size=%d",
			ErrInvalid, c.Cutoff, c.SampleSize, c.CheckInterval, c.MaxSteps, c.TargetSize)
	}

	return nil
}

// Options converts c into solver options using logger for debug events.
func (c Config) Options(logger zerolog.Logger) cover.Options {
	opts := cover.DefaultOptions()
	opts.Seed = c.Seed
	opts.Cutoff = c.Cutoff
	opts.SampleSize = c.SampleSize
	opts.CheckInterval = c.CheckInterval
	opts.MaxSteps = c.MaxSteps
	opts.TargetSize = c.TargetSize
	opts.Logger = logger
	if c.Clock == ClockWall {
		opts.Clock = cover.NewWallClock()
	} else {
		opts.Clock = cover.NewCPUClock()
	}

	return opts
}

// NewLogger builds a zerolog logger writing to w at the configured level,
// as a console writer when Pretty is set and as JSON lines otherwise.
func (c Config) NewLogger(w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("%w: %q", ErrBadLevel, c.Log.Level)
	}
	if c.Log.Pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Str("service", "fastvc").Logger(), nil
}

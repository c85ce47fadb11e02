package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/plus3/tilematch/board"
	"github.com/plus3/tilematch/game"
)

// EnvPrefix prefixes every environment override, e.g. TILEMATCH_WIDTH.
const EnvPrefix = "TILEMATCH_"

type Config struct {
	Width    int           `yaml:"width"`
	Height   int           `yaml:"height"`
	Seed     uint64        `yaml:"seed"`
	Gravity  string        `yaml:"gravity"`
	Cycles   int           `yaml:"cycles"`
	Interval time.Duration `yaml:"interval"`
	LogLevel string        `yaml:"log_level"`
}

// Default returns the reference configuration: a 12x12 board with
// single-step gravity.
func Default() Config {
	return Config{
		Width:    board.DefaultWidth,
		Height:   board.DefaultHeight,
		Gravity:  string(game.GravityStep),
		Cycles:   10000,
		LogLevel: "info",
	}
}

// Load builds a Config from defaults, then the YAML file at path (skipped
// when path is empty), then a .env file in the working directory if one
// exists, then TILEMATCH_* environment variables. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	ints := map[string]*int{
		"WIDTH":  &c.Width,
		"HEIGHT": &c.Height,
		"CYCLES": &c.Cycles,
	}
	for key, dst := range ints {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
		}
		*dst = n
	}

	if v, ok := lookup(EnvPrefix + "SEED"); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", EnvPrefix, err)
		}
		c.Seed = n
	}
	if v, ok := lookup(EnvPrefix + "INTERVAL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sINTERVAL: %w", EnvPrefix, err)
		}
		c.Interval = d
	}
	if v, ok := lookup(EnvPrefix + "GRAVITY"); ok {
		c.Gravity = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	return nil
}

// Validate rejects configurations the board cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("board size must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.Cycles < 0 {
		errs = append(errs, fmt.Errorf("cycles must not be negative, got %d", c.Cycles))
	}
	if c.Interval < 0 {
		errs = append(errs, fmt.Errorf("interval must not be negative, got %s", c.Interval))
	}
	if _, err := game.ParseGravityMode(c.Gravity); err != nil {
		errs = append(errs, err)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log level: %w", err))
	}
	return errors.Join(errs...)
}

// GravityMode returns the parsed gravity mode. Call after Validate.
func (c Config) GravityMode() game.GravityMode {
	mode, err := game.ParseGravityMode(c.Gravity)
	if err != nil {
		return game.GravityStep
	}
	return mode
}

// Level returns the parsed log level, falling back to info.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

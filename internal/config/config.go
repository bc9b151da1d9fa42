// Package config loads session settings from an optional dotenv file and
// the process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/amalg/go-tetris/internal/game"
)

// Environment variable names.
const (
	EnvCols      = "TETRIS_COLS"
	EnvRows      = "TETRIS_ROWS"
	EnvLookahead = "TETRIS_LOOKAHEAD"
	EnvTickRate  = "TETRIS_TICK_RATE"
	EnvSeed      = "TETRIS_SEED"
	EnvLogFile   = "TETRIS_LOG_FILE"
)

// Config is the resolved configuration for a run.
type Config struct {
	Game    game.GameConfig
	LogFile string // Empty discards log output
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{Game: game.DefaultConfig()}
}

// Load starts from Default, applies values from the dotenv file at path (a
// missing file is not an error, an empty path skips it) and then the process
// environment, which wins over the file.
func Load(path string) (Config, error) {
	values := map[string]string{}
	if path != "" {
		fileValues, err := godotenv.Read(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// The file is optional.
		case err != nil:
			return Config{}, fmt.Errorf("read %s: %w", path, err)
		default:
			values = fileValues
		}
	}
	for _, key := range []string{EnvCols, EnvRows, EnvLookahead, EnvTickRate, EnvSeed, EnvLogFile} {
		if v, ok := os.LookupEnv(key); ok {
			values[key] = v
		}
	}

	cfg := Default()
	if err := apply(&cfg, values); err != nil {
		return Config{}, err
	}
	if err := cfg.Game.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func apply(cfg *Config, values map[string]string) error {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvCols, &cfg.Game.Cols},
		{EnvRows, &cfg.Game.Rows},
		{EnvLookahead, &cfg.Game.Lookahead},
		{EnvTickRate, &cfg.Game.TickRate},
	}
	for _, f := range ints {
		v, ok := values[f.key]
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", f.key, err)
		}
		*f.dst = n
	}

	if v := values[EnvSeed]; v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvSeed, err)
		}
		cfg.Game.Seed = seed
	}
	if v, ok := values[EnvLogFile]; ok {
		cfg.LogFile = v
	}
	return nil
}

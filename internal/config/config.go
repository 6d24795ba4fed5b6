package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

const debugEnv = "BLACKJACK_DEBUG"

type Config struct {
	// Seed fixes the shuffle order when non-zero.
	Seed int64 `env:"BLACKJACK_SEED" envDefault:"0"`
	// Debug enables round diagnostics on stderr.
	Debug bool `env:"BLACKJACK_DEBUG"`
	// ASCII renders suits as H/D/C/S instead of symbols.
	ASCII bool `env:"BLACKJACK_ASCII" envDefault:"false"`
}

var stderrIsTerminal = func() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	// Diagnostics would interleave with the game on a terminal.
	if _, ok := os.LookupEnv(debugEnv); !ok {
		cfg.Debug = !stderrIsTerminal()
	}

	return &cfg, nil
}

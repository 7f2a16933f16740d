// Package config loads CLI configuration: environment defaults first
// (HANGMAN_* variables, optionally from a .env file), then command-line
// flags on top.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/robalobadob/hangman/internal/game"
)

// DefaultCorpusFile is the usual location of the system dictionary.
const DefaultCorpusFile = "/usr/share/dict/words"

const envMaxAttempts = "HANGMAN_MAX_ATTEMPTS"

var (
	ErrWordFile = errors.New("word file not usable")
	ErrAttempts = errors.New("attempt count must be between 1 and 26")
)

// Config holds everything the CLI needs to start a session.
type Config struct {
	WordFile    string `env:"HANGMAN_WORD_FILE"`
	CorpusFile  string `env:"HANGMAN_CORPUS_FILE" envDefault:"/usr/share/dict/words"`
	MaxAttempts int    `env:"HANGMAN_MAX_ATTEMPTS"` // 0 uses the difficulty's budget
	Seed        int64  `env:"HANGMAN_SEED"`         // 0 picks a random seed
	Difficulty  string `env:"HANGMAN_DIFFICULTY" envDefault:"medium"`
	Daily       bool   `env:"HANGMAN_DAILY"`
	DailySalt   string `env:"HANGMAN_DAILY_SALT" envDefault:"hangman"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"warn"`

	// attemptsSet records that an attempt count was given explicitly,
	// so an explicit 0 is rejected rather than treated as "default".
	attemptsSet bool
}

// Load parses the environment and then args (without the program name).
// The returned config has been validated.
func Load(args []string, stderr io.Writer) (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if v, ok := os.LookupEnv(envMaxAttempts); ok && strings.TrimSpace(v) != "" {
		cfg.attemptsSet = true
	}

	fs := cfg.flagSet(stderr)
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "attempts" || f.Name == "max-attempts" {
			cfg.attemptsSet = true
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) flagSet(stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("hangman", flag.ContinueOnError)
	if stderr != nil {
		fs.SetOutput(stderr)
	}
	fs.StringVar(&c.WordFile, "word-file", c.WordFile, "newline-delimited word list (overrides the dictionary corpus)")
	fs.StringVar(&c.CorpusFile, "corpus", c.CorpusFile, "dictionary corpus used when no word file is given (empty to disable)")
	fs.IntVar(&c.MaxAttempts, "attempts", c.MaxAttempts, "incorrect guesses allowed per round (default: per difficulty)")
	fs.IntVar(&c.MaxAttempts, "max-attempts", c.MaxAttempts, "alias for -attempts")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed for reproducible rounds (0 = random)")
	fs.StringVar(&c.Difficulty, "difficulty", c.Difficulty, "easy, medium or hard")
	fs.BoolVar(&c.Daily, "daily", c.Daily, "play the word of the day")
	return fs
}

// Validate reports configuration errors that must stop the program.
func (c *Config) Validate() error {
	if _, err := game.ParseDifficulty(c.Difficulty); err != nil {
		return err
	}
	if c.attemptsSet && c.MaxAttempts <= 0 {
		return fmt.Errorf("%w: got %d", ErrAttempts, c.MaxAttempts)
	}
	if c.MaxAttempts < 0 || c.MaxAttempts > game.MaxAttemptsLimit {
		return fmt.Errorf("%w: got %d", ErrAttempts, c.MaxAttempts)
	}
	if c.WordFile != "" {
		info, err := os.Stat(c.WordFile)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrWordFile, err)
		}
		if info.IsDir() {
			return fmt.Errorf("%w: %s is a directory", ErrWordFile, c.WordFile)
		}
	}
	return nil
}

// Tier returns the configured difficulty. Call after Validate.
func (c *Config) Tier() game.Difficulty {
	d, err := game.ParseDifficulty(c.Difficulty)
	if err != nil {
		return game.DefaultDifficulty
	}
	return d
}

// main.go
//
// Entry point for the Hangman CLI.
// Responsibilities:
//   - Load .env (optional) and the HANGMAN_* configuration plus flags.
//   - Set up zerolog on stderr so logs never mix with the game on stdout.
//   - Load the word list (word file, system dictionary, or bundled words).
//   - Seed the random source and run the console session.

package main

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/config"
	"github.com/robalobadob/hangman/internal/console"
	"github.com/robalobadob/hangman/internal/session"
	"github.com/robalobadob/hangman/internal/words"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := config.Load(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	} else {
		log.Warn().Str("level", cfg.LogLevel).Msg("unknown LOG_LEVEL, keeping default")
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	list, err := words.Load(words.Config{
		WordFile:   cfg.WordFile,
		CorpusFile: cfg.CorpusFile,
		Logger:     log.Logger,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load words")
	}
	log.Info().Str("source", string(list.Source())).Int("words", list.Len()).Msg("words loaded")

	seed := cfg.Seed
	if seed == 0 {
		seed = newSeed()
	}
	log.Debug().Int64("seed", seed).Msg("random source seeded")

	sess, err := session.New(session.Config{
		Words:       list,
		Difficulty:  cfg.Tier(),
		MaxAttempts: cfg.MaxAttempts,
		Rand:        rand.New(rand.NewSource(seed)),
		Daily:       cfg.Daily,
		DailySalt:   cfg.DailySalt,
		Logger:      log.Logger,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start session")
	}

	ui, err := console.New(console.Config{
		Game:   sess,
		In:     os.Stdin,
		Out:    os.Stdout,
		Logger: log.Logger,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start console")
	}
	if err := ui.Run(); err != nil {
		log.Fatal().Err(err).Msg("console exited")
	}
}

// newSeed returns a non-zero seed from crypto/rand, falling back to the clock.
func newSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err == nil {
		if s := int64(binary.LittleEndian.Uint64(b[:])); s != 0 {
			return s
		}
	}
	return time.Now().UnixNano()
}

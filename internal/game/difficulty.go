package game

import (
	"fmt"
	"strings"
)

// Difficulty selects the word length range, attempt budget and scoring of a round.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DefaultDifficulty is used when none is configured.
const DefaultDifficulty = DifficultyMedium

// MaxAttemptsLimit caps attempt budgets: there are only 26 letters to miss.
const MaxAttemptsLimit = 26

// HintPenalty is the points deducted per hint before the multiplier.
const HintPenalty = 10

// Settings are the per-tier parameters.
type Settings struct {
	MinLength   int
	MaxLength   int
	MaxAttempts int
	// HintCost is the tier's advertised price of a hint, shown to players.
	// The score penalty itself is the flat HintPenalty.
	HintCost int
	// multiplierHalves is the score multiplier in halves so the
	// arithmetic stays integral (2 = ×1, 3 = ×1.5, 4 = ×2).
	multiplierHalves int
}

var settings = map[Difficulty]Settings{
	DifficultyEasy:   {MinLength: 4, MaxLength: 6, MaxAttempts: 8, HintCost: 1, multiplierHalves: 2},
	DifficultyMedium: {MinLength: 6, MaxLength: 9, MaxAttempts: 7, HintCost: 2, multiplierHalves: 3},
	DifficultyHard:   {MinLength: 9, MaxLength: 15, MaxAttempts: 6, HintCost: 3, multiplierHalves: 4},
}

// Difficulties lists the tiers from easiest to hardest.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty maps a tier name (any case, surrounding space ignored) to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := settings[d]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
	}
	return d, nil
}

// Valid reports whether d is a known tier.
func (d Difficulty) Valid() bool {
	_, ok := settings[d]
	return ok
}

// Settings returns the parameters for d. Unknown tiers get the default tier's settings.
func (d Difficulty) Settings() Settings {
	if s, ok := settings[d]; ok {
		return s
	}
	return settings[DefaultDifficulty]
}

// Multiplier returns the score multiplier as a float, for display.
func (s Settings) Multiplier() float64 { return float64(s.multiplierHalves) / 2 }

// Fits reports whether a word of length n belongs to this tier.
func (s Settings) Fits(n int) bool { return n >= s.MinLength && n <= s.MaxLength }

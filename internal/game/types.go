// internal/game/types.go
//
// Core type definitions for the Hangman round engine.
// Defines:
//   - Outcome: coarse state of a round (playing/won/lost).
//   - Difficulty: tier that picks word length, attempt budget, hint cost
//     and score multiplier.
//   - Rand: the random source used for hints.
//   - Round: state for a single in-progress or finished round.

package game

//go:generate mockgen -package=mocks -destination=mocks/mock_rand.go github.com/robalobadob/hangman/internal/game Rand

// Outcome is the state of a round.
type Outcome string

const (
	OutcomeInProgress Outcome = "playing"
	OutcomeWon        Outcome = "won"
	OutcomeLost       Outcome = "lost"
)

// Terminal reports whether no further moves are accepted.
func (o Outcome) Terminal() bool { return o == OutcomeWon || o == OutcomeLost }

// MaxHints is the number of hints available in every round.
const MaxHints = 3

// Rand is the subset of *math/rand.Rand the engine needs.
type Rand interface {
	Intn(n int) int
}

// Round holds the state of a single hangman round.
// All fields are unexported; mutate only through GuessLetter and UseHint.
type Round struct {
	id          string
	secret      string // lowercase a–z
	difficulty  Difficulty
	maxAttempts int
	remaining   int
	hintsLeft   int
	guessed     map[byte]struct{} // every accepted guess and hinted letter
	misses      []byte            // incorrect guesses, in order
	hinted      []byte            // letters revealed by hints, in order
	outcome     Outcome
	rnd         Rand
}

// GuessResult describes the effect of one accepted guess.
type GuessResult struct {
	Letter  byte
	Correct bool
	// Occurrences is how many positions of the secret the letter fills.
	Occurrences int
	Outcome     Outcome
}

// HintResult describes the letter revealed by UseHint.
type HintResult struct {
	Letter      byte
	Occurrences int
	HintsLeft   int
	Outcome     Outcome
}

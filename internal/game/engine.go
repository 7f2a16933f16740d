// internal/game/engine.go
//
// Core engine for a single Hangman round.
// Responsibilities:
//   - Create rounds from a secret word and a difficulty tier.
//   - Validate and apply letter guesses (single a–z letter, not repeated).
//   - Reveal hinted letters (at most MaxHints per round).
//   - Track state transitions: playing → won/lost.
//   - Score finished rounds.
//
// Notes:
//   - Secrets come from the words package; the engine only checks they are
//     alphabetic.
//   - Rejected input never changes counters.
package game

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Options tune a new round. The zero value uses the tier's attempt budget,
// a time-seeded random source and a fresh UUID.
type Options struct {
	MaxAttempts int  // 0 uses the difficulty's budget
	Rand        Rand // source for hint positions
	ID          string
}

// New constructs a round for secret at difficulty d.
// The secret is trimmed and lowercased and must then be letters a–z only.
func New(secret string, d Difficulty, opts Options) (*Round, error) {
	secret = strings.ToLower(strings.TrimSpace(secret))
	if secret == "" || !isAlpha(secret) {
		return nil, ErrInvalidSecret
	}
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDifficulty, string(d))
	}

	attempts := opts.MaxAttempts
	if attempts == 0 {
		attempts = d.Settings().MaxAttempts
	}
	if attempts < 0 || attempts > MaxAttemptsLimit {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAttempts, attempts)
	}

	rnd := opts.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	id := opts.ID
	if id == "" {
		id = uuid.New().String()
	}

	return &Round{
		id:          id,
		secret:      secret,
		difficulty:  d,
		maxAttempts: attempts,
		remaining:   attempts,
		hintsLeft:   MaxHints,
		guessed:     make(map[byte]struct{}),
		outcome:     OutcomeInProgress,
		rnd:         rnd,
	}, nil
}

// GuessLetter validates and applies a single-letter guess.
//
// Validation rules:
//   - Round must not be finished.
//   - Input (trimmed, lowercased) must be exactly one letter a–z.
//   - The letter must not have been guessed or hinted before.
//
// A letter absent from the secret costs one attempt.
func (r *Round) GuessLetter(input string) (GuessResult, error) {
	if r.outcome.Terminal() {
		return GuessResult{Outcome: r.outcome}, ErrRoundOver
	}
	s := strings.ToLower(strings.TrimSpace(input))
	if len(s) != 1 || !isAlpha(s) {
		return GuessResult{Outcome: r.outcome}, ErrInvalidGuess
	}
	c := s[0]
	if r.Has(c) {
		return GuessResult{Letter: c, Outcome: r.outcome}, ErrAlreadyGuessed
	}

	r.guessed[c] = struct{}{}
	n := strings.Count(r.secret, s)
	if n == 0 {
		r.misses = append(r.misses, c)
		r.remaining--
	}
	r.updateOutcome()

	return GuessResult{
		Letter:      c,
		Correct:     n > 0,
		Occurrences: n,
		Outcome:     r.outcome,
	}, nil
}

// UseHint reveals one hidden letter of the secret, picked uniformly over the
// hidden positions, so letters that occur more often are likelier.
// Every occurrence of the chosen letter becomes visible.
func (r *Round) UseHint() (HintResult, error) {
	if r.outcome.Terminal() {
		return HintResult{Outcome: r.outcome, HintsLeft: r.hintsLeft}, ErrRoundOver
	}
	if r.hintsLeft <= 0 {
		return HintResult{Outcome: r.outcome}, ErrNoHintsLeft
	}

	hidden := make([]int, 0, len(r.secret))
	for i := 0; i < len(r.secret); i++ {
		if !r.Has(r.secret[i]) {
			hidden = append(hidden, i)
		}
	}

	c := r.secret[hidden[r.rnd.Intn(len(hidden))]]
	r.guessed[c] = struct{}{}
	r.hinted = append(r.hinted, c)
	r.hintsLeft--
	r.updateOutcome()

	return HintResult{
		Letter:      c,
		Occurrences: strings.Count(r.secret, string(c)),
		HintsLeft:   r.hintsLeft,
		Outcome:     r.outcome,
	}, nil
}

// Score computes
//
//	(len(secret)*10 + remaining*5 - hintsUsed*HintPenalty) * multiplier
//
// truncated toward zero. While the round is in progress this is the
// provisional score; use FinalScore once it is over.
func (r *Round) Score() int {
	s := r.difficulty.Settings()
	raw := len(r.secret)*10 + r.remaining*5 - r.HintsUsed()*HintPenalty
	return raw * s.multiplierHalves / 2
}

// FinalScore returns Score for a finished round.
func (r *Round) FinalScore() (int, error) {
	if !r.outcome.Terminal() {
		return 0, ErrRoundInPlay
	}
	return r.Score(), nil
}

// updateOutcome applies the win check before the loss check, so a guess or
// hint that completes the word always wins.
func (r *Round) updateOutcome() {
	if r.revealed() {
		r.outcome = OutcomeWon
	} else if r.remaining <= 0 {
		r.remaining = 0
		r.outcome = OutcomeLost
	}
}

// revealed reports whether every letter of the secret has been guessed.
func (r *Round) revealed() bool {
	for i := 0; i < len(r.secret); i++ {
		if !r.Has(r.secret[i]) {
			return false
		}
	}
	return true
}

// ---------------------------- read-only views ------------------------------

func (r *Round) ID() string             { return r.id }
func (r *Round) Difficulty() Difficulty { return r.difficulty }
func (r *Round) Outcome() Outcome       { return r.outcome }
func (r *Round) Over() bool             { return r.outcome.Terminal() }
func (r *Round) MaxAttempts() int       { return r.maxAttempts }
func (r *Round) Remaining() int         { return r.remaining }
func (r *Round) AttemptsUsed() int      { return r.maxAttempts - r.remaining }
func (r *Round) HintsLeft() int         { return r.hintsLeft }
func (r *Round) HintsUsed() int         { return MaxHints - r.hintsLeft }
func (r *Round) Len() int               { return len(r.secret) }

// Secret returns the secret word. Front-ends should only show it once the
// round is over.
func (r *Round) Secret() string { return r.secret }

// Has reports whether letter c has been guessed or hinted.
func (r *Round) Has(c byte) bool {
	_, ok := r.guessed[c]
	return ok
}

// Masked returns the secret with hidden letters replaced by '_'.
func (r *Round) Masked() string {
	b := []byte(r.secret)
	for i := range b {
		if !r.Has(b[i]) {
			b[i] = '_'
		}
	}
	return string(b)
}

// Misses returns the incorrect guesses in the order they were made.
func (r *Round) Misses() string { return string(r.misses) }

// Hinted returns the letters revealed by hints, in order.
func (r *Round) Hinted() string { return string(r.hinted) }

// Guessed returns every guessed or hinted letter, sorted.
func (r *Round) Guessed() string {
	out := make([]byte, 0, len(r.guessed))
	for c := range r.guessed {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return string(out)
}

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

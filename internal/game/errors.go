package game

import "errors"

// Input errors leave the round untouched; the caller reports them and carries on.
var (
	ErrInvalidGuess   = errors.New("guess must be a single letter a-z")
	ErrAlreadyGuessed = errors.New("letter already guessed")
	ErrNoHintsLeft    = errors.New("no hints left")
	ErrRoundOver      = errors.New("round is over")
	ErrRoundInPlay    = errors.New("round is still in progress")
)

// Construction errors.
var (
	ErrInvalidSecret     = errors.New("secret word must be non-empty and contain only letters a-z")
	ErrInvalidAttempts   = errors.New("attempt count must be between 1 and 26")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

// internal/session/session.go
//
// In-memory session for a sequence of rounds played by one person.
// This is the only state kept beyond a single round, and it is lost when
// the process exits.
//
// Characteristics:
//   - Owns at most one current *game.Round.
//   - Draws secrets from a WordSource: random, or the word of the day.
//   - Tallies games played/won and total score; only won rounds score.
//   - Not safe for concurrent use; one front-end drives it.

package session

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/robalobadob/hangman/internal/game"
)

var (
	ErrNoRound       = errors.New("no round started")
	ErrDailyFinished = errors.New("today's word has already been played")
)

// WordSource supplies secrets. *words.List implements it.
type WordSource interface {
	Pick(d game.Difficulty, r game.Rand) string
	Daily(d game.Difficulty, date time.Time, salt string) string
}

// Config wires a Session.
type Config struct {
	Words       WordSource
	Difficulty  game.Difficulty
	MaxAttempts int       // 0 uses the difficulty's budget
	Rand        game.Rand // shared by word picks and hints
	Daily       bool
	DailySalt   string
	Now         func() time.Time
	Logger      zerolog.Logger
}

// Stats is the running tally.
type Stats struct {
	GamesPlayed int
	GamesWon    int
	TotalScore  int
	BestScore   int
}

// Result is what Finish records for one round.
type Result struct {
	RoundID string
	Secret  string
	Outcome game.Outcome
	Score   int // 0 for lost rounds
}

// Session bundles the word source, the current round and the tally.
type Session struct {
	cfg       Config
	current   *game.Round
	recorded  bool // current round already added to stats
	dailyDone bool
	stats     Stats
}

// New validates cfg and returns an empty session.
func New(cfg Config) (*Session, error) {
	if cfg.Words == nil {
		return nil, errors.New("word source cannot be nil")
	}
	if cfg.Rand == nil {
		return nil, errors.New("random source cannot be nil")
	}
	if cfg.Difficulty == "" {
		cfg.Difficulty = game.DefaultDifficulty
	}
	if !cfg.Difficulty.Valid() {
		return nil, game.ErrUnknownDifficulty
	}
	if cfg.MaxAttempts < 0 || cfg.MaxAttempts > game.MaxAttemptsLimit {
		return nil, game.ErrInvalidAttempts
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Session{cfg: cfg}, nil
}

// NewRound draws a secret and starts a round, replacing any current one.
// An unfinished round that is replaced is not counted.
func (s *Session) NewRound() (*game.Round, error) {
	if s.cfg.Daily && s.dailyDone {
		return nil, ErrDailyFinished
	}
	d := s.cfg.Difficulty

	var secret string
	if s.cfg.Daily {
		secret = s.cfg.Words.Daily(d, s.cfg.Now(), s.cfg.DailySalt)
	} else {
		secret = s.cfg.Words.Pick(d, s.cfg.Rand)
	}

	r, err := game.New(secret, d, game.Options{MaxAttempts: s.cfg.MaxAttempts, Rand: s.cfg.Rand})
	if err != nil {
		return nil, err
	}
	if s.current != nil && !s.current.Over() {
		s.cfg.Logger.Debug().Str("roundId", s.current.ID()).Msg("abandoned round")
	}
	s.current, s.recorded = r, false

	s.cfg.Logger.Info().
		Str("roundId", r.ID()).
		Str("difficulty", string(d)).
		Int("length", r.Len()).
		Int("attempts", r.MaxAttempts()).
		Bool("daily", s.cfg.Daily).
		Msg("round started")
	return r, nil
}

// Current returns the current round, or nil before the first NewRound.
func (s *Session) Current() *game.Round { return s.current }

// Finish records the current round once it is over. Calling it again for
// the same round returns the same result without counting it twice.
func (s *Session) Finish() (Result, error) {
	r := s.current
	if r == nil {
		return Result{}, ErrNoRound
	}
	score, err := r.FinalScore()
	if err != nil {
		return Result{}, err
	}
	if r.Outcome() != game.OutcomeWon {
		score = 0
	}
	res := Result{RoundID: r.ID(), Secret: r.Secret(), Outcome: r.Outcome(), Score: score}
	if s.recorded {
		return res, nil
	}

	s.recorded = true
	s.stats.GamesPlayed++
	if r.Outcome() == game.OutcomeWon {
		s.stats.GamesWon++
		s.stats.TotalScore += score
		if score > s.stats.BestScore {
			s.stats.BestScore = score
		}
	}
	if s.cfg.Daily {
		s.dailyDone = true
	}

	s.cfg.Logger.Info().
		Str("roundId", r.ID()).
		Str("outcome", string(r.Outcome())).
		Int("score", score).
		Int("hintsUsed", r.HintsUsed()).
		Int("attemptsUsed", r.AttemptsUsed()).
		Msg("round finished")
	return res, nil
}

// Stats returns a copy of the tally.
func (s *Session) Stats() Stats { return s.stats }

// Difficulty returns the tier used for new rounds.
func (s *Session) Difficulty() game.Difficulty { return s.cfg.Difficulty }

// SetDifficulty changes the tier for subsequent rounds.
func (s *Session) SetDifficulty(d game.Difficulty) error {
	if !d.Valid() {
		return game.ErrUnknownDifficulty
	}
	s.cfg.Difficulty = d
	return nil
}

// Daily reports whether the session plays the word of the day.
func (s *Session) Daily() bool { return s.cfg.Daily }

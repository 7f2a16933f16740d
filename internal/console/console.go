// internal/console/console.go
//
// Line-oriented front-end for the Hangman session.
// Responsibilities:
//   - Start rounds, read one command per line, forward guesses and hint
//     requests to the round engine.
//   - Render the gallows, masked word, misses, attempts and hints.
//   - Report rejected input and keep the round going.
//   - Record finished rounds in the session and offer another round.
//
// Commands while a round is running:
//   - a single letter  guess it
//   - "?" or "hint"    reveal a letter (costs score)
//   - "quit"           leave; the unfinished round is not counted
//
// End of input is treated like "quit".

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/session"
)

// Game is the session surface the console drives. *session.Session implements it.
type Game interface {
	NewRound() (*game.Round, error)
	Finish() (session.Result, error)
	Stats() session.Stats
	Daily() bool
}

// Config wires a Console.
type Config struct {
	Game   Game
	In     io.Reader
	Out    io.Writer
	Logger zerolog.Logger
}

// Console runs rounds until the player quits or input ends.
type Console struct {
	game Game
	in   *bufio.Scanner
	out  *message.Printer
	w    io.Writer
	log  zerolog.Logger
}

// New constructs a Console.
func New(cfg Config) (*Console, error) {
	if cfg.Game == nil {
		return nil, errors.New("game cannot be nil")
	}
	if cfg.In == nil || cfg.Out == nil {
		return nil, errors.New("input and output are required")
	}
	return &Console{
		game: cfg.Game,
		in:   bufio.NewScanner(cfg.In),
		out:  message.NewPrinter(language.English),
		w:    cfg.Out,
		log:  cfg.Logger,
	}, nil
}

// Run plays rounds until the player stops. It returns an error only for
// I/O failures or a session that cannot start a round.
func (c *Console) Run() error {
	c.printf("H A N G M A N\n")
	for {
		r, err := c.game.NewRound()
		if errors.Is(err, session.ErrDailyFinished) {
			c.printf("You have already played today's word. Come back tomorrow!\n")
			return c.summary()
		}
		if err != nil {
			return fmt.Errorf("start round: %w", err)
		}
		c.banner(r)

		quit, err := c.playRound(r)
		if err != nil {
			return err
		}
		if quit {
			c.printf("Bye! The word was %s.\n", strings.ToUpper(r.Secret()))
			return c.summary()
		}

		res, err := c.game.Finish()
		if err != nil {
			return fmt.Errorf("finish round: %w", err)
		}
		c.result(r, res)

		if c.game.Daily() {
			return c.summary()
		}
		again, err := c.confirm("Play again? [y/N] ")
		if err != nil {
			return err
		}
		if !again {
			return c.summary()
		}
	}
}

// playRound reads commands until the round ends. quit is true when the
// player left (or input ended) before the round was over.
func (c *Console) playRound(r *game.Round) (quit bool, err error) {
	for !r.Over() {
		c.render(r)
		line, ok := c.prompt("Guess a letter (? for a hint, quit to leave): ")
		if !ok {
			return true, c.in.Err()
		}
		switch cmd := strings.ToLower(strings.TrimSpace(line)); cmd {
		case "quit", "exit", ":q":
			return true, nil
		case "?", "hint":
			c.hint(r)
		default:
			c.guess(r, line)
		}
	}
	c.render(r)
	return false, nil
}

// ------------------------------ moves --------------------------------------

func (c *Console) guess(r *game.Round, input string) {
	res, err := r.GuessLetter(input)
	if err != nil {
		c.log.Debug().Err(err).Str("roundId", r.ID()).Str("input", input).Msg("guess rejected")
		c.printf("%s\n", describe(err, input))
		return
	}
	if res.Correct {
		c.printf("Yes! '%c' appears %d time(s).\n", res.Letter, res.Occurrences)
	} else {
		c.printf("No '%c'. %d attempt(s) left.\n", res.Letter, r.Remaining())
	}
}

func (c *Console) hint(r *game.Round) {
	res, err := r.UseHint()
	if err != nil {
		c.log.Debug().Err(err).Str("roundId", r.ID()).Msg("hint rejected")
		c.printf("%s\n", describe(err, ""))
		return
	}
	c.printf("Hint: the word contains '%c'. %d hint(s) left.\n", res.Letter, res.HintsLeft)
}

// describe turns engine errors into player-facing text.
func describe(err error, input string) string {
	switch {
	case errors.Is(err, game.ErrInvalidGuess):
		return "Please enter a single letter a-z."
	case errors.Is(err, game.ErrAlreadyGuessed):
		return fmt.Sprintf("You already tried '%s'.", strings.ToLower(strings.TrimSpace(input)))
	case errors.Is(err, game.ErrNoHintsLeft):
		return "No hints left."
	case errors.Is(err, game.ErrRoundOver):
		return "This round is over."
	default:
		return err.Error()
	}
}

// ------------------------------ output -------------------------------------

func (c *Console) banner(r *game.Round) {
	s := r.Difficulty().Settings()
	c.printf("\nNew %s round: %d letters, %d attempts, %d hints (score ×%.1f, hint cost %d).\n",
		r.Difficulty(), r.Len(), r.MaxAttempts(), r.HintsLeft(), s.Multiplier(), s.HintCost)
}

func (c *Console) render(r *game.Round) {
	c.printf("%s\n", gallows(r.AttemptsUsed(), r.MaxAttempts()))
	c.printf("Word:     %s\n", spaced(r.Masked()))
	c.printf("Attempts: %d/%d   Hints: %d   Score: %d\n", r.Remaining(), r.MaxAttempts(), r.HintsLeft(), r.Score())
	if m := r.Misses(); m != "" {
		c.printf("Misses:   %s\n", spaced(m))
	}
}

func (c *Console) result(r *game.Round, res session.Result) {
	word := strings.ToUpper(res.Secret)
	if res.Outcome == game.OutcomeWon {
		c.printf("You guessed it! The word was %s. Score: %d\n", word, res.Score)
	} else {
		c.printf("Out of attempts. The word was %s.\n", word)
	}
	c.log.Debug().Str("roundId", r.ID()).Str("outcome", string(res.Outcome)).Msg("result shown")
}

func (c *Console) summary() error {
	st := c.game.Stats()
	c.printf("Games played: %d | Won: %d | Total score: %d | Best: %d\n",
		st.GamesPlayed, st.GamesWon, st.TotalScore, st.BestScore)
	return nil
}

// printf writes through the English printer so large scores get separators.
func (c *Console) printf(format string, args ...any) {
	_, _ = c.out.Fprintf(c.w, format, args...)
}

// ------------------------------ input --------------------------------------

// prompt prints p and reads one line. ok is false at end of input.
func (c *Console) prompt(p string) (line string, ok bool) {
	c.printf("%s", p)
	if !c.in.Scan() {
		c.printf("\n")
		return "", false
	}
	return c.in.Text(), true
}

// confirm asks a yes/no question; anything but y/yes (or end of input) is no.
func (c *Console) confirm(p string) (bool, error) {
	line, ok := c.prompt(p)
	if !ok {
		return false, c.in.Err()
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// spaced puts a space between letters: "c_t" → "c _ t".
func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}

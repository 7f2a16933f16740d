package console

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/session"
	"github.com/robalobadob/hangman/internal/words"
)

type setup struct {
	words    []string
	attempts int
	daily    bool
}

// run plays input against a fresh easy-tier session and returns the output.
func run(t *testing.T, st setup, input string) (string, *session.Session) {
	t.Helper()
	if st.words == nil {
		st.words = []string{"cat"}
	}
	list, err := words.New(words.SourceFile, st.words)
	require.NoError(t, err)

	sess, err := session.New(session.Config{
		Words:       list,
		Difficulty:  game.DifficultyEasy,
		MaxAttempts: st.attempts,
		Rand:        rand.New(rand.NewSource(1)),
		Daily:       st.daily,
		DailySalt:   "salt",
		Now:         func() time.Time { return time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC) },
		Logger:      zerolog.Nop(),
	})
	require.NoError(t, err)

	var out bytes.Buffer
	c, err := New(Config{Game: sess, In: strings.NewReader(input), Out: &out, Logger: zerolog.Nop()})
	require.NoError(t, err)
	require.NoError(t, c.Run())
	return out.String(), sess
}

func TestNewRequiresWiring(t *testing.T) {
	_, err := New(Config{In: strings.NewReader(""), Out: &bytes.Buffer{}})
	assert.Error(t, err)

	list, err := words.New(words.SourceFile, []string{"cat"})
	require.NoError(t, err)
	sess, err := session.New(session.Config{Words: list, Rand: rand.New(rand.NewSource(1))})
	require.NoError(t, err)

	_, err = New(Config{Game: sess})
	assert.Error(t, err)
}

func TestWinningRound(t *testing.T) {
	out, sess := run(t, setup{}, "c\na\nt\nn\n")

	assert.Contains(t, out, "New easy round: 3 letters, 8 attempts, 3 hints")
	assert.Contains(t, out, "Word:     _ _ _")
	assert.Contains(t, out, "Word:     c a t")
	assert.Contains(t, out, "You guessed it! The word was CAT. Score: 70")
	assert.Contains(t, out, "Play again? [y/N]")
	assert.Contains(t, out, "Games played: 1 | Won: 1 | Total score: 70 | Best: 70")
	assert.Equal(t, session.Stats{GamesPlayed: 1, GamesWon: 1, TotalScore: 70, BestScore: 70}, sess.Stats())
}

func TestLosingRound(t *testing.T) {
	out, sess := run(t, setup{attempts: 1}, "z\n")

	assert.Contains(t, out, "No 'z'. 0 attempt(s) left.")
	assert.Contains(t, out, "Misses:   z")
	assert.Contains(t, out, "Out of attempts. The word was CAT.")
	assert.Contains(t, out, " / \\  |")
	assert.Equal(t, session.Stats{GamesPlayed: 1}, sess.Stats())
}

func TestRejectedInputKeepsPlaying(t *testing.T) {
	out, sess := run(t, setup{}, "1\nab\nc\nC\nhello\na\nt\n")

	assert.Contains(t, out, "Please enter a single letter a-z.")
	assert.Contains(t, out, "You already tried 'c'.")
	assert.Contains(t, out, "You guessed it!")
	assert.Equal(t, 1, sess.Stats().GamesWon)
	// rejected input never costs an attempt
	assert.Equal(t, 8, sess.Current().Remaining())
}

func TestHints(t *testing.T) {
	out, sess := run(t, setup{words: []string{"keyboard"}}, "?\nhint\n?\n?\nquit\n")

	assert.Equal(t, 3, strings.Count(out, "Hint: the word contains"))
	assert.Contains(t, out, "0 hint(s) left.")
	assert.Contains(t, out, "No hints left.")
	assert.Equal(t, 0, sess.Current().HintsLeft())
}

func TestQuitMidRound(t *testing.T) {
	out, sess := run(t, setup{}, "c\nquit\n")

	assert.Contains(t, out, "Bye! The word was CAT.")
	assert.Contains(t, out, "Games played: 0")
	assert.NotContains(t, out, "Play again?")
	assert.Equal(t, session.Stats{}, sess.Stats())
}

func TestEndOfInputQuits(t *testing.T) {
	out, sess := run(t, setup{}, "c\n")

	assert.Contains(t, out, "Bye! The word was CAT.")
	assert.Equal(t, session.Stats{}, sess.Stats())
}

func TestPlayAgain(t *testing.T) {
	out, sess := run(t, setup{}, "cat\nc\na\nt\ny\nc\na\nt\n")

	assert.Equal(t, 2, strings.Count(out, "New easy round"))
	assert.Equal(t, 2, strings.Count(out, "You guessed it!"))
	assert.Equal(t, session.Stats{GamesPlayed: 2, GamesWon: 2, TotalScore: 140, BestScore: 70}, sess.Stats())
}

func TestDailyPlaysOneRound(t *testing.T) {
	out, sess := run(t, setup{daily: true}, "c\na\nt\ny\n")

	assert.Contains(t, out, "You guessed it!")
	assert.NotContains(t, out, "Play again?")
	assert.Equal(t, 1, sess.Stats().GamesPlayed)

	_, err := sess.NewRound()
	assert.ErrorIs(t, err, session.ErrDailyFinished)
}

func TestGallowsStages(t *testing.T) {
	tests := []struct {
		name      string
		used, max int
		head      bool
		full      bool
	}{
		{name: "empty", used: 0, max: 6},
		{name: "first miss of six", used: 1, max: 6, head: true},
		{name: "first miss of eight", used: 1, max: 8, head: true},
		{name: "all six", used: 6, max: 6, head: true, full: true},
		{name: "all eight", used: 8, max: 8, head: true, full: true},
		{name: "single attempt", used: 1, max: 1, head: true, full: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gallows(tt.used, tt.max)
			assert.Equal(t, 7, strings.Count(g, "\n")+1)
			assert.Equal(t, tt.head, strings.Contains(g, "O"))
			assert.Equal(t, tt.full, strings.Contains(g, `/ \`))
		})
	}
}

func TestSpaced(t *testing.T) {
	assert.Equal(t, "c _ t", spaced("c_t"))
	assert.Equal(t, "", spaced(""))
}

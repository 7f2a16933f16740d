package words

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/game/mocks"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadWordFileNormalizes(t *testing.T) {
	path := writeFile(t, "words.txt", strings.Join([]string{
		"# comment",
		"",
		"  Gopher  ",
		"CAFÉ",
		"naïve",
		"don't",
		"two words",
		"x1",
		"gopher",
	}, "\n"))

	l, err := Load(Config{WordFile: path, Logger: zerolog.Nop()})
	require.NoError(t, err)

	assert.Equal(t, SourceFile, l.Source())
	assert.Equal(t, []string{"gopher", "cafe", "naive"}, l.all)
}

func TestLoadMissingWordFile(t *testing.T) {
	_, err := Load(Config{WordFile: filepath.Join(t.TempDir(), "nope.txt"), Logger: zerolog.Nop()})
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadEmptyWordFile(t *testing.T) {
	path := writeFile(t, "empty.txt", "# nothing here\n\n123\n")

	_, err := Load(Config{WordFile: path, Logger: zerolog.Nop()})
	assert.ErrorIs(t, err, ErrNoWords)
}

func TestLoadWordFileWinsOverCorpus(t *testing.T) {
	wordFile := writeFile(t, "words.txt", "gopher\n")
	corpus := writeFile(t, "dict", "elephant\n")

	l, err := Load(Config{WordFile: wordFile, CorpusFile: corpus, Logger: zerolog.Nop()})
	require.NoError(t, err)
	assert.Equal(t, SourceFile, l.Source())
	assert.Equal(t, 1, l.Len())
}

func TestLoadCorpusDropsShortWords(t *testing.T) {
	corpus := writeFile(t, "dict", "a\nox\ncat\nAaron's\nzebra\nZebra\nencyclopedia\n")

	l, err := Load(Config{CorpusFile: corpus, Logger: zerolog.Nop()})
	require.NoError(t, err)

	assert.Equal(t, SourceCorpus, l.Source())
	assert.Equal(t, []string{"zebra", "encyclopedia"}, l.all)
}

func TestLoadFallsBackToBundledWords(t *testing.T) {
	tests := []struct {
		name   string
		corpus string
	}{
		{name: "no corpus configured"},
		{name: "corpus missing", corpus: filepath.Join(t.TempDir(), "missing")},
		{name: "corpus without usable words", corpus: writeFile(t, "dict", "a\nan\nox\n")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := Load(Config{CorpusFile: tt.corpus, Logger: zerolog.Nop()})
			require.NoError(t, err)
			assert.Equal(t, SourceEmbedded, l.Source())
			assert.Greater(t, l.Len(), 0)
		})
	}
}

func TestBundledWordsCoverEveryTier(t *testing.T) {
	l, err := Load(Config{Logger: zerolog.Nop()})
	require.NoError(t, err)

	for d, n := range l.Stats() {
		assert.Greater(t, n, 0, "tier %s", d)
	}
}

func TestBundledWordsAreNormalized(t *testing.T) {
	l, err := Load(Config{Logger: zerolog.Nop()})
	require.NoError(t, err)

	for _, w := range l.all {
		assert.Regexp(t, `^[a-z]+$`, w)
	}
	assert.Contains(t, l.all, "code")
	assert.NotContains(t, l.all, "easy", "comment text must not leak into the list")
}

func TestWordsRespectDifficultyLengths(t *testing.T) {
	l, err := New(SourceFile, []string{"hat", "python", "encyclopedia", "keyboard", "loop"})
	require.NoError(t, err)

	for _, d := range game.Difficulties() {
		s := d.Settings()
		for _, w := range l.Words(d) {
			assert.True(t, s.Fits(len(w)), "%s does not fit %s", w, d)
		}
	}
	assert.Equal(t, []string{"python", "loop"}, l.Words(game.DifficultyEasy))
	assert.Equal(t, []string{"python", "keyboard"}, l.Words(game.DifficultyMedium))
	assert.Equal(t, []string{"encyclopedia"}, l.Words(game.DifficultyHard))
}

func TestEmptyTierFallsBackToWholeList(t *testing.T) {
	l, err := New(SourceFile, []string{"cat", "dog"})
	require.NoError(t, err)

	assert.Equal(t, []string{"cat", "dog"}, l.Words(game.DifficultyHard))
	assert.Equal(t, 0, l.Stats()[game.DifficultyHard])
}

func TestNewRejectsEmptyList(t *testing.T) {
	_, err := New(SourceFile, []string{"", "42", "Ünïcode"})
	assert.ErrorIs(t, err, ErrNoWords)
}

func TestPick(t *testing.T) {
	ctrl := gomock.NewController(t)
	rnd := mocks.NewMockRand(ctrl)

	l, err := New(SourceFile, []string{"code", "loop", "byte"})
	require.NoError(t, err)

	rnd.EXPECT().Intn(3).Return(2)
	assert.Equal(t, "byte", l.Pick(game.DifficultyEasy, rnd))
}

func TestDailyIsStablePerDay(t *testing.T) {
	l, err := Load(Config{Logger: zerolog.Nop()})
	require.NoError(t, err)

	morning := time.Date(2026, 10, 16, 6, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 10, 16, 22, 0, 0, 0, time.UTC)

	w := l.Daily(game.DifficultyMedium, morning, "salt")
	assert.Equal(t, w, l.Daily(game.DifficultyMedium, evening, "salt"))
	assert.Contains(t, l.Words(game.DifficultyMedium), w)
}

func TestDailyDiffersAcrossTiers(t *testing.T) {
	ws := make([]string, 0, 60)
	for _, w := range []string{"abcde", "fghij", "klmno", "pqrst", "uvwxy"} {
		for _, suffix := range []string{"", "z", "zz", "zzz", "zzzz", "zzzzz"} {
			ws = append(ws, w+suffix, w+suffix+"q")
		}
	}
	l, err := New(SourceFile, ws)
	require.NoError(t, err)

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	differ := 0
	for i := 0; i < 20; i++ {
		day := start.AddDate(0, 0, i)
		for _, d := range game.Difficulties() {
			assert.Contains(t, l.Words(d), l.Daily(d, day, "salt"))
		}
		if l.Daily(game.DifficultyEasy, day, "salt") != l.Daily(game.DifficultyMedium, day, "salt") {
			differ++
		}
	}
	assert.Greater(t, differ, 15)
}

// internal/words/words.go
//
// Provides word list management for the round engine.
//
// Responsibilities:
//   - Load secrets from a word file, a dictionary corpus, or the embedded defaults.
//   - Bucket words by difficulty tier (length range).
//   - Supply Pick (random word), Daily (word of the day) and Stats.
//
// Initialization behavior (Load):
//   1. If WordFile is set, load it. Any error, or a file with no usable
//      words, is returned: an explicit word file is never silently ignored.
//   2. Else if CorpusFile is set and readable, load it, dropping words
//      shorter than four letters. Failures are logged and fall through.
//   3. Else use the embedded list from assets/words.txt.
//
// Constraints:
//   • Words are lowercased, stripped of diacritics, and must then be a–z only.
//   • Blank lines and lines starting with '#' are skipped.
//   • A tier with no words of its length falls back to the whole list.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/rs/zerolog"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/robalobadob/hangman/assets"
	"github.com/robalobadob/hangman/internal/game"
)

// corpusMinLength drops short dictionary entries ("a", "an", "ox", ...).
const corpusMinLength = 4

// ErrNoWords is returned when a source yields no usable words.
var ErrNoWords = errors.New("words: no usable words")

// Source names where a List came from.
type Source string

const (
	SourceFile     Source = "file"
	SourceCorpus   Source = "corpus"
	SourceEmbedded Source = "embedded"
)

// Config selects the word source.
type Config struct {
	WordFile   string // explicit newline-delimited list
	CorpusFile string // optional dictionary, e.g. /usr/share/dict/words
	Logger     zerolog.Logger
}

// List is an immutable, difficulty-bucketed word list.
type List struct {
	source  Source
	all     []string
	buckets map[game.Difficulty][]string
}

// Load builds a List following the order described at the top of this file.
func Load(cfg Config) (*List, error) {
	logger := cfg.Logger

	if cfg.WordFile != "" {
		ws, err := readWordFile(cfg.WordFile, 1)
		if err != nil {
			return nil, fmt.Errorf("read word file %s: %w", cfg.WordFile, err)
		}
		l, err := New(SourceFile, ws)
		if err != nil {
			return nil, fmt.Errorf("word file %s: %w", cfg.WordFile, err)
		}
		logger.Info().Str("path", cfg.WordFile).Int("words", len(l.all)).Msg("loaded word file")
		return l, nil
	}

	if cfg.CorpusFile != "" {
		ws, err := readWordFile(cfg.CorpusFile, corpusMinLength)
		switch {
		case err != nil:
			logger.Warn().Err(err).Str("path", cfg.CorpusFile).Msg("dictionary corpus unavailable, using bundled words")
		case len(ws) == 0:
			logger.Warn().Str("path", cfg.CorpusFile).Msg("dictionary corpus has no usable words, using bundled words")
		default:
			l, err := New(SourceCorpus, ws)
			if err == nil {
				logger.Info().Str("path", cfg.CorpusFile).Int("words", len(l.all)).Msg("loaded dictionary corpus")
				return l, nil
			}
		}
	}

	f, err := assets.FS.Open(assets.WordsFile)
	if err != nil {
		return nil, fmt.Errorf("open bundled words: %w", err)
	}
	defer f.Close()
	ws, err := readWords(f, 1)
	if err != nil {
		return nil, fmt.Errorf("read bundled words: %w", err)
	}
	l, err := New(SourceEmbedded, ws)
	if err != nil {
		return nil, fmt.Errorf("bundled words: %w", err)
	}
	logger.Debug().Int("words", len(l.all)).Msg("using bundled word list")
	return l, nil
}

// New builds a List from already-normalized words. Duplicates are dropped,
// first occurrence wins.
func New(src Source, ws []string) (*List, error) {
	seen := make(map[string]struct{}, len(ws))
	all := make([]string, 0, len(ws))
	for _, w := range ws {
		if w == "" || !isAlpha(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		all = append(all, w)
	}
	if len(all) == 0 {
		return nil, ErrNoWords
	}

	buckets := make(map[game.Difficulty][]string, 3)
	for _, d := range game.Difficulties() {
		s := d.Settings()
		for _, w := range all {
			if s.Fits(len(w)) {
				buckets[d] = append(buckets[d], w)
			}
		}
	}
	return &List{source: src, all: all, buckets: buckets}, nil
}

// Source reports where the words came from.
func (l *List) Source() Source { return l.source }

// Len returns the number of distinct words.
func (l *List) Len() int { return len(l.all) }

// Words returns the candidates for tier d: the words whose length fits the
// tier, or the whole list if none do.
func (l *List) Words(d game.Difficulty) []string {
	if b := l.buckets[d]; len(b) > 0 {
		return b
	}
	return l.all
}

// Pick returns a uniformly random word for tier d.
func (l *List) Pick(d game.Difficulty, r game.Rand) string {
	ws := l.Words(d)
	return ws[r.Intn(len(ws))]
}

// Stats returns the number of words that fit each tier (before fallback).
func (l *List) Stats() map[game.Difficulty]int {
	out := make(map[game.Difficulty]int, len(l.buckets))
	for _, d := range game.Difficulties() {
		out[d] = len(l.buckets[d])
	}
	return out
}

// readWordFile loads one word per line from a file and normalizes it.
func readWordFile(path string, minLen int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readWords(f, minLen)
}

// readWords normalizes each line of r, keeping words of at least minLen letters.
func readWords(r io.Reader, minLen int) ([]string, error) {
	t := stripMarks()
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if w := normalize(t, line); len(w) >= minLen && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// stripMarks decomposes, drops combining marks and recomposes, so "café"
// becomes "cafe". The transformer is stateful; share it only within one goroutine.
func stripMarks() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// normalize lowercases and strips diacritics. Words that cannot be
// transformed are returned lowercased and rejected later by isAlpha.
func normalize(t transform.Transformer, s string) string {
	w := strings.ToLower(strings.TrimSpace(s))
	if out, _, err := transform.String(t, w); err == nil {
		return out
	}
	return w
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

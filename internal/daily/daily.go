// Package daily derives the word of the day.
//
// Each difficulty tier has its own puzzle, so a player switching from easy
// to hard on the same day gets a different word instead of the same index
// into a different bucket.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/hangman/internal/game"
)

// Puzzle identifies one daily word: a UTC calendar day and a tier.
type Puzzle struct {
	Day  string // YYYY-MM-DD in UTC
	Tier game.Difficulty
}

// For returns the puzzle for tier d on the UTC day containing t.
func For(t time.Time, d game.Difficulty) Puzzle {
	return Puzzle{Day: t.UTC().Format(time.DateOnly), Tier: d}
}

// String is the HMAC message, e.g. "2026-10-16/hard".
func (p Puzzle) String() string {
	return p.Day + "/" + string(p.Tier)
}

// Index maps the puzzle onto [0, n). Anyone with the same salt and word list
// gets the same word. n <= 0 yields 0.
func (p Puzzle) Index(salt string, n int) int {
	if n <= 0 {
		return 0
	}
	mac := hmac.New(sha256.New, []byte(salt))
	mac.Write([]byte(p.String()))
	v := binary.BigEndian.Uint64(mac.Sum(nil)[:8])
	return int(v % uint64(n))
}

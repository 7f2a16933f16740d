package words

import (
	"time"

	"github.com/robalobadob/hangman/internal/daily"
	"github.com/robalobadob/hangman/internal/game"
)

// Daily returns the word of the day for tier d. The same list, salt, tier
// and UTC date always give the same word.
func (l *List) Daily(d game.Difficulty, date time.Time, salt string) string {
	ws := l.Words(d)
	return ws[daily.For(date, d).Index(salt, len(ws))]
}

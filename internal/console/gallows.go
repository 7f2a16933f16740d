package console

import "strings"

// figureParts is the number of body parts drawn on a full gallows.
const figureParts = 6

// gallows draws the figure for used of max attempts. The drawing always has
// six stages, so attempt budgets other than six are scaled (rounding up, so
// the first miss always shows something and the last shows the full figure).
func gallows(used, max int) string {
	stage := 0
	if max > 0 && used > 0 {
		stage = (used*figureParts + max - 1) / max
	}
	if stage > figureParts {
		stage = figureParts
	}

	head, arms, legs := " ", "   ", "   "
	if stage >= 1 {
		head = "O"
	}
	switch {
	case stage >= 4:
		arms = `/|\`
	case stage == 3:
		arms = `/| `
	case stage == 2:
		arms = ` | `
	}
	switch {
	case stage >= 6:
		legs = `/ \`
	case stage == 5:
		legs = `/  `
	}

	var b strings.Builder
	b.WriteString("  +---+\n")
	b.WriteString("  |   |\n")
	b.WriteString("  " + head + "   |\n")
	b.WriteString(" " + arms + "  |\n")
	b.WriteString(" " + legs + "  |\n")
	b.WriteString("      |\n")
	b.WriteString("=========")
	return b.String()
}

package tui

import (
	"strings"

	"github.com/muesli/termenv"

	"github.com/aretw0/twoway/pkg/domain"
)

// RenderTape draws the framed tape with the cell under the head highlighted.
// Without color (or on a terminal without color support) the cell is bracketed.
func RenderTape(tape domain.Tape, head int, colored bool) string {
	p := termenv.Ascii
	if colored {
		p = termenv.ColorProfile()
	}
	return RenderTapeWith(tape, head, p)
}

// RenderTapeWith is RenderTape with an explicit color profile.
func RenderTapeWith(tape domain.Tape, head int, p termenv.Profile) string {
	cells := tape.Cells()
	parts := make([]string, len(cells))

	for i, c := range cells {
		sym := c.String()
		switch {
		case i != head:
			parts[i] = " " + sym + " "
		case p == termenv.Ascii:
			parts[i] = "[" + sym + "]"
		default:
			parts[i] = p.String(" " + sym + " ").
				Background(p.Color("#fbbf24")).
				Foreground(p.Color("#000000")).
				Bold().
				String()
		}
	}
	return strings.Join(parts, "")
}

// RenderOutput shows the output so far, using ε for an empty string.
func RenderOutput(out string) string {
	if out == "" {
		return domain.Epsilon
	}
	return out
}

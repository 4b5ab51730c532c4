package display

import (
	"github.com/muesli/reflow/wordwrap"
)

// DefaultWidth is used when a connection doesn't negotiate its own.
const DefaultWidth = 80

// Wrap word-wraps text to the given width. Widths of zero or less
// fall back to DefaultWidth.
func Wrap(text string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	return wordwrap.String(text, width)
}

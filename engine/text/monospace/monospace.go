package monospace

import (
	"strings"
	"sync"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

var setup sync.Once

// Width returns the number of cells a single line of text occupies.
// If context is nil, a Latin context is assumed.
func Width(line string, context *uax11.Context) int {
	if line == "" {
		return 0
	}
	setup.Do(grapheme.SetupGraphemeClasses)
	if context == nil {
		context = uax11.LatinContext
	}
	gstr := grapheme.StringFromString(line)
	w := 0
	for i := 0; i < gstr.Len(); i++ {
		grphm := gstr.Nth(i)
		switch {
		case grphm == "\t":
			w += 4 - w%4
		case len(grphm) == 1 && grphm[0] >= 0x20 && grphm[0] < 0x7f:
			w++ // uax11 gives digits emoji width
		default:
			w += uax11.Width([]byte(grphm), context)
		}
	}
	return w
}

// Columns returns the width of the widest line of a text, in cells.
func Columns(text string) int {
	max := 0
	for _, line := range strings.Split(text, "\n") {
		if w := Width(line, nil); w > max {
			max = w
		}
	}
	tracer().Debugf("text of %d bytes is %d columns wide", len(text), max)
	return max
}

// Size selects a LaTeX font size command for code of a given width, so that
// lines of up to about 80 cells fit onto a slide. It returns "" if the
// default size will do.
func Size(columns int) string {
	switch {
	case columns > 80:
		return `\tiny`
	case columns > 64:
		return `\scriptsize`
	case columns > 52:
		return `\footnotesize`
	}
	return ""
}

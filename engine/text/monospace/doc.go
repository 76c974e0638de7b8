/*
Package monospace measures text set in a monospace font.

Widths are counted in cells. A grapheme cluster occupies one cell, East Asian
wide characters occupy two. Backends use the measure to pick a font size for
code listings.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package monospace

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'slides.latex'.
func tracer() tracing.Trace {
	return tracing.Select("slides.latex")
}

/*
Package latex writes a slide deck as a LaTeX beamer document.

Every slide becomes one frame. Text is passed through unescaped, so the
markdown source may contain LaTeX commands. Inline styles map to
\textbf, \emph, \sout (package ulem) and math mode. Code blocks are set
with package listings, which requires the surrounding frame to be fragile.

Layout values (column widths, picture sizes) are taken from parameter
registers, see package core/parameters. Every frame and every picture
opens its own register group.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package latex

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'slides.latex'.
func tracer() tracing.Trace {
	return tracing.Select("slides.latex")
}

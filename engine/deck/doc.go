/*
Package deck turns a parsed markdown document into a deck of slides.

A parsed slide may expand into more than one output slide: every %NEWSLIDE
directive closes the current slide and opens a new one with the same title.
Each output slide is then classified by the shape of its content:

    no pictures        → OnlyText
    only pictures      → OnlyPicture      (first picture)
    text and pictures  → TextAndPicture   (all text blocks, first picture)

Only the first picture of a slide is kept; further pictures are dropped.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package deck

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'slides.deck'.
func tracer() tracing.Trace {
	return tracing.Select("slides.deck")
}

/*
Package markdown parses a constrained markdown dialect for slide decks.

A deck source starts with a title and an author, followed by slides:

    # Talk Title
    AUTHOR=Jane Doe

    ## First Slide

    Some *emphasized* text and an equation $$e = mc^2$$.

    * a bullet
        * a nested bullet

    %NEWSLIDE

    ![a caption](images/plot.png)
    %WIDTH=8cm

Parsing is recursive descent with ordered alternatives: at every position
the block parsers are tried in a fixed order and the first one to succeed
wins. Parsers work on the remaining input as a string slice and never
consume input when they fail. The result is a Document, a plain tree without
shared references.

Inline formatting is recognized by the span lexer (LexSpans). Plain text
runs are found by lazy scanning: a text run grows one grapheme at a time and
stops as soon as a delimited span could start at the current position.

Warnings about constructs the dialect does not support are sent to a
Reporter, which clients may inject with WithReporter.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markdown

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'slides.markdown'.
func tracer() tracing.Trace {
	return tracing.Select("slides.markdown")
}

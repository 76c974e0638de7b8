package deck

import (
	"fmt"

	"github.com/VanillaBrooks/markdown-pdf/input/markdown"
)

// SplitMode controls how blocks are distributed when a slide is split
// by a %NEWSLIDE directive.
type SplitMode int8

const (
	// ResetOnSplit starts every split unit empty.
	ResetOnSplit SplitMode = iota
	// CarryForward starts every split unit with the blocks of the units
	// before it, revealing a slide step by step.
	CarryForward
)

func (m SplitMode) String() string {
	switch m {
	case ResetOnSplit:
		return "reset"
	case CarryForward:
		return "carry"
	}
	return fmt.Sprintf("SplitMode(%d)", int8(m))
}

// ParseSplitMode reads a split mode from its textual name.
func ParseSplitMode(s string) (SplitMode, error) {
	switch s {
	case "reset", "":
		return ResetOnSplit, nil
	case "carry":
		return CarryForward, nil
	}
	return ResetOnSplit, fmt.Errorf("unknown split mode %q, want 'reset' or 'carry'", s)
}

type config struct {
	mode SplitMode
}

// Option configures the postprocessor.
type Option func(*config)

// WithSplitMode sets the split mode. Default is ResetOnSplit.
func WithSplitMode(m SplitMode) Option {
	return func(c *config) {
		c.mode = m
	}
}

// Postprocess expands and classifies the slides of a parsed document.
// The resulting deck shares no mutable state with doc.
func Postprocess(doc markdown.Document, opts ...Option) Deck {
	conf := config{mode: ResetOnSplit}
	for _, opt := range opts {
		opt(&conf)
	}
	d := Deck{
		Title:  doc.Title.Clone(),
		Author: doc.Author,
	}
	for n, parsed := range doc.Slides {
		units := SplitUnits(parsed.Blocks, conf.mode)
		tracer().Debugf("slide #%d %q expands into %d slide(s)", n+1,
			parsed.Title.PlainText(), len(units))
		for _, unit := range units {
			d.Slides = append(d.Slides, Slide{
				Title:    parsed.Title.Clone(),
				Contents: Classify(unit),
			})
		}
	}
	tracer().Infof("deck has %d slides", len(d.Slides))
	return d
}

// SplitUnits cuts a slide's blocks at every %NEWSLIDE directive. The
// directives themselves are consumed. A slide with N directives yields
// N+1 units, some of which may be empty. Blocks are deep copies.
func SplitUnits(blocks []markdown.Block, mode SplitMode) [][]markdown.Block {
	units := make([][]markdown.Block, 0, 1)
	var current []markdown.Block
	for _, b := range blocks {
		if d, ok := b.(markdown.Directive); ok && d.Directive == markdown.NewSlide {
			units = append(units, current)
			current = nil
			if mode == CarryForward {
				current = cloneBlocks(units[len(units)-1])
			}
			continue
		}
		current = append(current, b.Clone())
	}
	return append(units, current)
}

// Classify decides the layout for the blocks of a single output slide.
// Only the first picture is kept; text blocks keep their order.
func Classify(blocks []markdown.Block) ContentOptions {
	var text []markdown.Block
	var pic *markdown.Picture
	for _, b := range blocks {
		switch b := b.(type) {
		case markdown.Picture:
			if pic != nil {
				tracer().Infof("dropping picture %q, slide already has %q", b.Path, pic.Path)
				continue
			}
			p := b.ClonePicture()
			pic = &p
		case markdown.Directive:
			// left over only if called without splitting first
			continue
		default:
			text = append(text, b.Clone())
		}
	}
	switch {
	case pic == nil:
		return OnlyText{Blocks: text}
	case len(text) == 0:
		return OnlyPicture{Picture: *pic}
	}
	return TextAndPicture{Blocks: text, Picture: *pic}
}

func cloneBlocks(blocks []markdown.Block) []markdown.Block {
	if blocks == nil {
		return nil
	}
	c := make([]markdown.Block, len(blocks))
	for i, b := range blocks {
		c[i] = b.Clone()
	}
	return c
}

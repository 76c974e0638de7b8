package deck

import (
	"fmt"

	"github.com/VanillaBrooks/markdown-pdf/input/markdown"
)

// Layout is the rendering mode of a slide.
type Layout int8

const (
	OnlyTextLayout Layout = iota
	OnlyPictureLayout
	TextAndPictureLayout
)

func (l Layout) String() string {
	switch l {
	case OnlyTextLayout:
		return "OnlyText"
	case OnlyPictureLayout:
		return "OnlyPicture"
	case TextAndPictureLayout:
		return "TextAndPicture"
	}
	return fmt.Sprintf("Layout(%d)", int8(l))
}

// ContentOptions is the classified content of a slide, one of OnlyText,
// OnlyPicture or TextAndPicture.
type ContentOptions interface {
	Layout() Layout
}

// OnlyText is content without pictures.
type OnlyText struct {
	Blocks []markdown.Block
}

// OnlyPicture is content consisting of a picture and nothing else.
type OnlyPicture struct {
	Picture markdown.Picture
}

// TextAndPicture is text content accompanied by a picture.
type TextAndPicture struct {
	Blocks  []markdown.Block
	Picture markdown.Picture
}

func (OnlyText) Layout() Layout       { return OnlyTextLayout }
func (OnlyPicture) Layout() Layout    { return OnlyPictureLayout }
func (TextAndPicture) Layout() Layout { return TextAndPictureLayout }

// Picture returns the picture of a slide's content, if any.
func Picture(c ContentOptions) (markdown.Picture, bool) {
	switch c := c.(type) {
	case OnlyPicture:
		return c.Picture, true
	case TextAndPicture:
		return c.Picture, true
	}
	return markdown.Picture{}, false
}

// Blocks returns the text blocks of a slide's content.
func Blocks(c ContentOptions) []markdown.Block {
	switch c := c.(type) {
	case OnlyText:
		return c.Blocks
	case TextAndPicture:
		return c.Blocks
	}
	return nil
}

// Slide is a single output slide.
type Slide struct {
	Title    markdown.Title
	Contents ContentOptions
}

// Deck is a finished slide deck, ready for rendering.
type Deck struct {
	Title  markdown.Title
	Author string
	Slides []Slide
}

// Pictures returns the pictures of all slides, in slide order.
func (d Deck) Pictures() []markdown.Picture {
	var pics []markdown.Picture
	for _, s := range d.Slides {
		if p, ok := Picture(s.Contents); ok {
			pics = append(pics, p)
		}
	}
	return pics
}

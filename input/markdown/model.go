package markdown

import (
	"fmt"
	"strings"
)

// --- Spans -----------------------------------------------------------------

// SpanKind is the type of inline formatting of a span.
type SpanKind int8

// Kinds of spans. The order of delimited kinds is the order in which the
// lexer tries them.
const (
	TextSpan SpanKind = iota
	StrikethroughSpan
	BoldSpan
	ItalicsSpan
	EquationSpan
)

func (k SpanKind) String() string {
	switch k {
	case TextSpan:
		return "Text"
	case StrikethroughSpan:
		return "Strikethrough"
	case BoldSpan:
		return "Bold"
	case ItalicsSpan:
		return "Italics"
	case EquationSpan:
		return "Equation"
	}
	return fmt.Sprintf("SpanKind(%d)", int8(k))
}

// Span is a fragment of inline formatted text. Text holds the content without
// delimiters.
type Span struct {
	Kind SpanKind
	Text string
}

// Text creates a plain text span.
func Text(s string) Span { return Span{Kind: TextSpan, Text: s} }

// Bold creates a span delimited by `**`.
func Bold(s string) Span { return Span{Kind: BoldSpan, Text: s} }

// Italics creates a span delimited by `*`.
func Italics(s string) Span { return Span{Kind: ItalicsSpan, Text: s} }

// Strikethrough creates a span delimited by `~~`.
func Strikethrough(s string) Span { return Span{Kind: StrikethroughSpan, Text: s} }

// Equation creates a span delimited by `$$`.
func Equation(s string) Span { return Span{Kind: EquationSpan, Text: s} }

func (s Span) String() string {
	return fmt.Sprintf("%s(%q)", s.Kind, s.Text)
}

// Title is a sequence of spans used as a heading, either for a whole
// document or for a single slide.
type Title []Span

// PlainText returns the title's text without any markup.
func (t Title) PlainText() string {
	var b strings.Builder
	for _, s := range t {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Clone returns a copy of t not sharing storage with t.
func (t Title) Clone() Title {
	return Title(cloneSpans(t))
}

func cloneSpans(spans []Span) []Span {
	if spans == nil {
		return nil
	}
	c := make([]Span, len(spans))
	copy(c, spans)
	return c
}

// --- Blocks ----------------------------------------------------------------

// BlockKind identifies the variant of a Block.
type BlockKind int8

const (
	ParagraphBlock BlockKind = iota
	BulletedListBlock
	CodeBlock
	PictureBlock
	DirectiveBlock
)

func (k BlockKind) String() string {
	switch k {
	case ParagraphBlock:
		return "Paragraph"
	case BulletedListBlock:
		return "BulletedList"
	case CodeBlock:
		return "Code"
	case PictureBlock:
		return "Picture"
	case DirectiveBlock:
		return "Directive"
	}
	return fmt.Sprintf("BlockKind(%d)", int8(k))
}

// Block is a unit of slide content. Concrete types are Paragraph,
// BulletedList, Code, Picture and Directive.
type Block interface {
	Kind() BlockKind
	Clone() Block
}

// Paragraph is a run of text lines, terminated by a blank line.
type Paragraph struct {
	Spans []Span
}

func (p Paragraph) Kind() BlockKind { return ParagraphBlock }
func (p Paragraph) Clone() Block    { return Paragraph{Spans: cloneSpans(p.Spans)} }

// BulletedList is a (possibly nested) list of bullet points.
type BulletedList struct {
	Items []BulletItem
}

func (l BulletedList) Kind() BlockKind { return BulletedListBlock }
func (l BulletedList) Clone() Block    { return BulletedList{Items: cloneItems(l.Items)} }

// Code is a fenced code block. Text is taken verbatim.
type Code struct {
	Language string
	Text     string
}

func (c Code) Kind() BlockKind { return CodeBlock }
func (c Code) Clone() Block    { return c }

// Picture is an embedded image, possibly followed by layout directives.
// An empty Caption means the picture has no caption, a nil Directives
// slice means no directives have been given.
type Picture struct {
	Path       string
	Caption    string
	Directives []PictureDirective
}

func (p Picture) Kind() BlockKind { return PictureBlock }
func (p Picture) Clone() Block    { return p.ClonePicture() }

// ClonePicture returns a copy of p not sharing storage with p.
func (p Picture) ClonePicture() Picture {
	c := p
	if p.Directives != nil {
		c.Directives = make([]PictureDirective, len(p.Directives))
		copy(c.Directives, p.Directives)
	}
	return c
}

// HasCaption is true if the picture source carried a non-empty caption.
func (p Picture) HasCaption() bool {
	return p.Caption != ""
}

// IsLink is true if the picture refers to a remote location.
func (p Picture) IsLink() bool {
	return strings.HasPrefix(p.Path, "http://") || strings.HasPrefix(p.Path, "https://")
}

// IsVertical is true if the picture carries a %VERTICAL directive.
func (p Picture) IsVertical() bool {
	for _, d := range p.Directives {
		if d.IsOrientation() {
			return true
		}
	}
	return false
}

// Width returns the value of the last %WIDTH directive, if any.
func (p Picture) Width() (string, bool) {
	return p.lookup(WidthDirective)
}

// Height returns the value of the last %HEIGHT directive, if any.
func (p Picture) Height() (string, bool) {
	return p.lookup(HeightDirective)
}

func (p Picture) lookup(k PictureDirectiveKind) (v string, found bool) {
	for _, d := range p.Directives {
		if d.Kind == k {
			v, found = d.Value, true
		}
	}
	return
}

// PictureDirectiveKind identifies a layout hint for a picture.
type PictureDirectiveKind int8

const (
	VerticalDirective PictureDirectiveKind = iota
	WidthDirective
	HeightDirective
)

// PictureDirective is a layout hint attached to a picture. Value is empty
// for orientation directives.
type PictureDirective struct {
	Kind  PictureDirectiveKind
	Value string
}

// Vertical creates an orientation directive.
func Vertical() PictureDirective { return PictureDirective{Kind: VerticalDirective} }

// Width creates a width override.
func Width(v string) PictureDirective { return PictureDirective{Kind: WidthDirective, Value: v} }

// Height creates a height override.
func Height(v string) PictureDirective { return PictureDirective{Kind: HeightDirective, Value: v} }

func (d PictureDirective) IsOrientation() bool { return d.Kind == VerticalDirective }
func (d PictureDirective) IsWidth() bool       { return d.Kind == WidthDirective }
func (d PictureDirective) IsHeight() bool      { return d.Kind == HeightDirective }

func (d PictureDirective) String() string {
	switch d.Kind {
	case VerticalDirective:
		return "%VERTICAL"
	case WidthDirective:
		return "%WIDTH=" + d.Value
	case HeightDirective:
		return "%HEIGHT=" + d.Value
	}
	return "%?"
}

// DirectiveKind identifies an in-band control marker.
type DirectiveKind int8

const (
	NewSlide DirectiveKind = iota
)

// Directive is a control marker between blocks, not renderable content.
type Directive struct {
	Directive DirectiveKind
}

func (d Directive) Kind() BlockKind { return DirectiveBlock }
func (d Directive) Clone() Block    { return d }

// --- Bullets ---------------------------------------------------------------

// BulletItem is either a single bullet point (Nested == nil) or a sub-list
// one indentation level deeper than its siblings.
type BulletItem struct {
	Spans  []Span
	Nested []BulletItem
}

// Single creates a bullet point at the current level.
func Single(spans ...Span) BulletItem {
	return BulletItem{Spans: spans}
}

// Nested creates a sub-list.
func Nested(items ...BulletItem) BulletItem {
	if items == nil {
		items = []BulletItem{}
	}
	return BulletItem{Nested: items}
}

// IsNested is true for sub-lists.
func (item BulletItem) IsNested() bool {
	return item.Nested != nil
}

func cloneItems(items []BulletItem) []BulletItem {
	if items == nil {
		return nil
	}
	c := make([]BulletItem, len(items))
	for i, item := range items {
		c[i] = BulletItem{Spans: cloneSpans(item.Spans), Nested: cloneItems(item.Nested)}
	}
	return c
}

// --- Document --------------------------------------------------------------

// ParsedSlide is a `##`-introduced section of the source, before
// post-processing.
type ParsedSlide struct {
	Title  Title
	Blocks []Block
}

// Document is the result of parsing a deck source.
type Document struct {
	Title  Title
	Author string
	Slides []ParsedSlide
}

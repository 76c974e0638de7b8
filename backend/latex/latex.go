package latex

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/cords"

	"github.com/VanillaBrooks/markdown-pdf/core"
	"github.com/VanillaBrooks/markdown-pdf/core/dimen"
	"github.com/VanillaBrooks/markdown-pdf/core/locate/resources"
	"github.com/VanillaBrooks/markdown-pdf/core/parameters"
	"github.com/VanillaBrooks/markdown-pdf/engine/deck"
	"github.com/VanillaBrooks/markdown-pdf/engine/text/monospace"
	"github.com/VanillaBrooks/markdown-pdf/input/markdown"
)

// Option configures the LaTeX writer.
type Option func(*writer)

// WithAspectRatio sets the beamer aspect ratio, e.g. "169" or "43".
// An empty string selects the beamer default.
func WithAspectRatio(ratio string) Option {
	return func(wr *writer) {
		wr.regs.Push(parameters.P_ASPECTRATIO, ratio)
	}
}

// WithPictureBase makes the writer inspect every local picture, relative
// to directory dir. Portrait pictures are then sized by height.
func WithPictureBase(dir string) Option {
	return func(wr *writer) {
		wr.base, wr.inspect = dir, true
	}
}

// WithParameter overrides a layout register.
func WithParameter(key parameters.LayoutParameter, value interface{}) Option {
	return func(wr *writer) {
		wr.regs.Push(key, value)
	}
}

type writer struct {
	regs     *parameters.LayoutRegisters
	b        *cords.Builder
	err      error // first error while assembling the output cord
	base     string
	inspect  bool
	portrait map[string]bool
}

// Write renders d as a beamer document to w.
func Write(w io.Writer, d deck.Deck, opts ...Option) error {
	wr := newWriter(opts)
	if wr.inspect {
		wr.inspectPictures(d)
	}
	if err := wr.header(d); err != nil {
		return err
	}
	for i, s := range d.Slides {
		if err := wr.frame(s); err != nil {
			return core.WrapError(err, core.EINTERNAL, "cannot render slide #%d", i+1)
		}
	}
	wr.emit(footer)
	return wr.output(w)
}

// WriteSlide renders a single slide as a beamer frame, without a document
// header.
func WriteSlide(w io.Writer, s deck.Slide, opts ...Option) error {
	wr := newWriter(opts)
	if wr.inspect {
		wr.inspectPictures(deck.Deck{Slides: []deck.Slide{s}})
	}
	if err := wr.frame(s); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot render slide")
	}
	return wr.output(w)
}

func newWriter(opts []Option) *writer {
	wr := &writer{
		regs:     parameters.NewLayoutRegisters(),
		b:        cords.NewBuilder(),
		portrait: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(wr)
	}
	return wr
}

func (wr *writer) inspectPictures(d deck.Deck) {
	var paths []string
	for _, p := range d.Pictures() {
		if !p.IsLink() {
			paths = append(paths, p.Path)
		}
	}
	infos, errs := resources.ResolvePictures(context.Background(), wr.base, paths)
	for i, info := range infos {
		if errs[i] != nil {
			tracer().Errorf("%s", core.UserMessage(errs[i]))
			continue
		}
		wr.portrait[paths[i]] = info.Portrait()
	}
}

// emit appends a fragment of LaTeX text to the output cord. After the first
// failed append, fragments are dropped and the error is kept for output.
func (wr *writer) emit(s string) {
	if s == "" || wr.err != nil {
		return
	}
	wr.err = wr.b.Append(fragment(s))
}

// output writes the assembled cord to w.
func (wr *writer) output(w io.Writer) error {
	if wr.err != nil {
		return core.WrapError(wr.err, core.EINTERNAL, "cannot assemble LaTeX output")
	}
	text := wr.b.Cord().String()
	tracer().Debugf("LaTeX output has %d bytes", len(text))
	if _, err := io.WriteString(w, text); err != nil {
		return core.WrapError(err, core.EIO, "cannot write LaTeX output")
	}
	return nil
}

func (wr *writer) header(d deck.Deck) error {
	var sb strings.Builder
	err := headerTmpl.Execute(&sb, headerParams{
		AspectRatio: wr.regs.S(parameters.P_ASPECTRATIO),
		CodeStyle:   wr.regs.S(parameters.P_CODESTYLE),
		Title:       spans(d.Title),
		Author:      d.Author,
	})
	if err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot render document header")
	}
	wr.emit(sb.String())
	return nil
}

func (wr *writer) frame(s deck.Slide) error {
	wr.regs.Begingroup()
	defer wr.regs.Endgroup()
	var body strings.Builder
	fragile := false
	switch c := s.Contents.(type) {
	case deck.OnlyText:
		fragile = wr.blocks(&body, c.Blocks)
	case deck.OnlyPicture:
		wr.fullPicture(&body, c.Picture)
	case deck.TextAndPicture:
		body.WriteString("\\begin{minipage}{" + wr.regs.S(parameters.P_TEXTCOLUMN) + "}\n")
		fragile = wr.blocks(&body, c.Blocks)
		body.WriteString("\\end{minipage}\n\\hfill\n")
		body.WriteString("\\begin{minipage}{" + wr.regs.S(parameters.P_PICTURECOLUMN) + "}\n")
		wr.splitPicture(&body, c.Picture)
		body.WriteString("\\end{minipage}\n")
	default:
		return fmt.Errorf("unknown slide content %T", s.Contents)
	}
	var sb strings.Builder
	err := frameTmpl.Execute(&sb, frameParams{
		Fragile: fragile,
		Title:   spans(s.Title),
		Body:    body.String(),
	})
	if err != nil {
		return err
	}
	wr.emit(sb.String())
	return nil
}

// blocks renders text blocks and reports whether any of them needs a
// fragile frame.
func (wr *writer) blocks(sb *strings.Builder, blocks []markdown.Block) (fragile bool) {
	for _, b := range blocks {
		switch b := b.(type) {
		case markdown.Paragraph:
			sb.WriteString(spans(b.Spans))
			sb.WriteString("\n\n")
		case markdown.BulletedList:
			itemize(sb, b.Items)
		case markdown.Code:
			fragile = true
			sb.WriteString("\\begin{lstlisting}")
			var keys []string
			if b.Language != "" {
				keys = append(keys, "language="+b.Language)
			}
			if size := monospace.Size(monospace.Columns(b.Text)); size != "" {
				keys = append(keys, "basicstyle=\\ttfamily"+size)
			}
			if len(keys) > 0 {
				sb.WriteString("[" + strings.Join(keys, ",") + "]")
			}
			sb.WriteString("\n")
			sb.WriteString(b.Text)
			if !strings.HasSuffix(b.Text, "\n") {
				sb.WriteString("\n")
			}
			sb.WriteString("\\end{lstlisting}\n")
		default:
			tracer().Errorf("block of kind %s not allowed in text content", b.Kind())
		}
	}
	return
}

func itemize(sb *strings.Builder, items []markdown.BulletItem) {
	sb.WriteString("\\begin{itemize}\n")
	for i, item := range items {
		if item.IsNested() {
			if i == 0 {
				sb.WriteString("\\item[]\n")
			}
			itemize(sb, item.Nested)
			continue
		}
		sb.WriteString("\\item " + spans(item.Spans) + "\n")
	}
	sb.WriteString("\\end{itemize}\n")
}

func (wr *writer) fullPicture(sb *strings.Builder, p markdown.Picture) {
	wr.regs.Begingroup()
	defer wr.regs.Endgroup()
	wr.pushDirectives(p, parameters.P_PICTUREWIDTH, parameters.P_PICTUREHEIGHT)
	keys := wr.graphicsKeys(p, parameters.P_PICTUREWIDTH, parameters.P_PICTUREHEIGHT, true)
	sb.WriteString("\\begin{figure}\n\\centering\n")
	sb.WriteString("\\includegraphics[" + keys + "]{" + p.Path + "}\n")
	if p.HasCaption() {
		sb.WriteString("\\caption{" + p.Caption + "}\n")
	}
	sb.WriteString("\\end{figure}\n")
}

func (wr *writer) splitPicture(sb *strings.Builder, p markdown.Picture) {
	wr.regs.Begingroup()
	defer wr.regs.Endgroup()
	wr.pushDirectives(p, parameters.P_SPLITWIDTH, parameters.P_SPLITHEIGHT)
	keys := wr.graphicsKeys(p, parameters.P_SPLITWIDTH, parameters.P_SPLITHEIGHT, false)
	sb.WriteString("\\centering\n")
	sb.WriteString("\\includegraphics[" + keys + "]{" + p.Path + "}\n")
	if p.HasCaption() {
		sb.WriteString("\\par\\smallskip{\\footnotesize " + p.Caption + "}\n")
	}
}

func (wr *writer) pushDirectives(p markdown.Picture, wkey, hkey parameters.LayoutParameter) {
	if p.IsVertical() || wr.portrait[p.Path] {
		wr.regs.Push(parameters.P_VERTICAL, true)
	}
	if w, ok := p.Width(); ok {
		wr.regs.Push(wkey, Length(w))
	}
	if h, ok := p.Height(); ok {
		wr.regs.Push(hkey, Length(h))
	}
}

// graphicsKeys assembles the option list for \includegraphics. Pictures are
// sized by width unless vertical; explicit directives are always honored.
func (wr *writer) graphicsKeys(p markdown.Picture, wkey, hkey parameters.LayoutParameter, full bool) string {
	_, wset := p.Width()
	_, hset := p.Height()
	vertical := wr.regs.B(parameters.P_VERTICAL)
	var keys []string
	if !vertical || wset {
		keys = append(keys, "width="+wr.regs.S(wkey))
	}
	if vertical || hset || full {
		keys = append(keys, "height="+wr.regs.S(hkey))
	}
	if len(keys) > 1 && wr.regs.B(parameters.P_KEEPASPECT) {
		keys = append(keys, "keepaspectratio")
	}
	return strings.Join(keys, ",")
}

// Length converts a picture directive value to a LaTeX length.
// Percentages are relative to the line width, absolute values are converted
// to big points. Values not understood are passed through unchanged.
func Length(v string) string {
	v = strings.TrimSpace(v)
	if _, err := strconv.ParseFloat(v, 64); err == nil {
		v += "px" // bare numbers are pixels, as in HTML
	}
	d, percent, err := dimen.ParseDimen(v)
	if err != nil {
		return v
	}
	if percent {
		return fmt.Sprintf("%.2f\\linewidth", d.Fraction())
	}
	return fmt.Sprintf("%.2fbp", d.Points())
}

func spans(spans []markdown.Span) string {
	var sb strings.Builder
	for _, s := range spans {
		switch s.Kind {
		case markdown.BoldSpan:
			sb.WriteString("\\textbf{" + s.Text + "}")
		case markdown.ItalicsSpan:
			sb.WriteString("\\emph{" + s.Text + "}")
		case markdown.StrikethroughSpan:
			sb.WriteString("\\sout{" + s.Text + "}")
		case markdown.EquationSpan:
			sb.WriteString("$" + s.Text + "$")
		default:
			sb.WriteString(s.Text)
		}
	}
	return sb.String()
}

// --- Cord leafs ------------------------------------------------------------

// fragment is the leaf type of output cords.
type fragment string

// Weight of a fragment is its length in bytes.
func (f fragment) Weight() uint64 {
	return uint64(len(f))
}

func (f fragment) String() string {
	return string(f)
}

// Split splits a fragment at byte position i.
func (f fragment) Split(i uint64) (cords.Leaf, cords.Leaf) {
	return f[:i], f[i:]
}

// Substring returns a segment of the fragment's text.
func (f fragment) Substring(i, j uint64) []byte {
	return []byte(f[i:j])
}

var _ cords.Leaf = fragment("")

package markdown

import (
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// ParseReader reads a deck source completely and parses it.
// Input which is not valid UTF-8 is rejected with ErrEncoding before parsing
// starts.
func ParseReader(r io.Reader, opts ...Option) (*Document, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(buf) {
		return nil, encodingError(buf)
	}
	return Parse(string(buf), opts...)
}

func encodingError(buf []byte) error {
	line := 1
	for len(buf) > 0 {
		r, size := utf8.DecodeRune(buf)
		if r == utf8.RuneError && size <= 1 {
			break
		}
		if r == '\n' {
			line++
		}
		buf = buf[size:]
	}
	return parseError(ErrEncoding, line, "invalid byte sequence")
}

// Parse parses a complete deck source: a title line `# …`, immediately
// followed by an author line `AUTHOR=…`, followed by zero or more slides, each
// introduced by a line `## …`.
//
// Text is normalized to NFC and line endings to LF before parsing.
func Parse(text string, opts ...Option) (*Document, error) {
	if !utf8.ValidString(text) {
		return nil, encodingError([]byte(text))
	}
	text = normalize(text)
	p := newParser(text, opts)
	doc := &Document{}
	rest, err := p.parseHeader(text, doc)
	if err != nil {
		return nil, err
	}
	rest = p.skipToFirstSlide(rest)
	for rest != "" {
		var slide ParsedSlide
		if slide, rest, err = p.parseSlide(rest); err != nil {
			return nil, err
		}
		doc.Slides = append(doc.Slides, slide)
		rest = skipBlankLines(rest)
	}
	tracer().Debugf("parsed document %q with %d slides", doc.Title.PlainText(), len(doc.Slides))
	return doc, nil
}

func normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return norm.NFC.String(text)
}

// parseHeader matches the title line and the author line.
func (p *parser) parseHeader(in string, doc *Document) (string, error) {
	in = skipBlankLines(in)
	titleLine, rest := splitLine(in)
	t := strings.TrimSpace(titleLine)
	if !strings.HasPrefix(t, "# ") {
		return in, parseError(ErrStructure, p.line(in), "expected title line '# <title>'")
	}
	title, err := p.lexHeading(in, t[2:])
	if err != nil {
		return in, err
	}
	authorLine, r := splitLine(rest)
	a := strings.TrimSpace(authorLine)
	if !strings.HasPrefix(a, "AUTHOR=") {
		return in, parseError(ErrStructure, p.line(rest), "expected author line 'AUTHOR=<name>' after title")
	}
	doc.Title = title
	doc.Author = strings.TrimSpace(a[len("AUTHOR="):])
	return r, nil
}

// skipToFirstSlide drops text between the header and the first slide.
func (p *parser) skipToFirstSlide(in string) string {
	warned := false
	for in != "" {
		line, rest := splitLine(in)
		if isSlideHeader(line) {
			break
		}
		if !isBlank(line) && !warned {
			p.warn(in, "text before the first slide is ignored")
			warned = true
		}
		in = rest
	}
	return in
}

// parseSlide matches a slide header and the blocks of its body.
func (p *parser) parseSlide(in string) (ParsedSlide, string, error) {
	line, rest := splitLine(in)
	if !isSlideHeader(line) {
		return ParsedSlide{}, in, parseError(ErrStructure, p.line(in), "expected slide header '## <title>'")
	}
	t := strings.TrimSpace(line)
	title, err := p.lexHeading(in, strings.TrimPrefix(t, "##"))
	if err != nil {
		return ParsedSlide{}, in, err
	}
	blocks, rest, err := p.parseBlocks(rest)
	if err != nil {
		return ParsedSlide{}, in, err
	}
	return ParsedSlide{Title: title, Blocks: blocks}, rest, nil
}

func (p *parser) lexHeading(at string, text string) (Title, error) {
	spans, err := LexSpans(strings.TrimSpace(text))
	if err != nil {
		return nil, parseError(ErrEmptySpan, p.line(at), "heading without text")
	}
	return Title(spans), nil
}

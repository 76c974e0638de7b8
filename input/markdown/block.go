package markdown

import (
	"strings"
)

type parser struct {
	input    string // complete input, for line numbers
	reporter Reporter
}

func newParser(input string, opts []Option) *parser {
	p := &parser{input: input, reporter: traceReporter{}}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// line returns the 1-based line number of the start of rest, which has to be
// a suffix of the parser's input.
func (p *parser) line(rest string) int {
	if len(rest) > len(p.input) {
		return 0
	}
	return strings.Count(p.input[:len(p.input)-len(rest)], "\n") + 1
}

func (p *parser) warn(at string, msg string) {
	p.reporter.Warn(p.line(at), msg)
}

// splitLine returns the first line of in without its line break, and the
// input following the line break.
func splitLine(in string) (string, string) {
	if i := strings.IndexByte(in, '\n'); i >= 0 {
		return in[:i], in[i+1:]
	}
	return in, ""
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// skipBlankLines drops leading lines consisting of whitespace only. A
// partial line is kept including its indentation.
func skipBlankLines(in string) string {
	for in != "" {
		line, rest := splitLine(in)
		if !isBlank(line) {
			return in
		}
		in = rest
	}
	return in
}

// isSlideHeader is true for lines starting a new slide (`## title`).
func isSlideHeader(line string) bool {
	t := strings.TrimSpace(line)
	return t == "##" || strings.HasPrefix(t, "## ")
}

// blockParser tries to match a block at the start of its input. A parser
// which does not match returns a nil block and in unchanged; an error aborts
// parsing of the whole document.
type blockParser func(p *parser, in string) (Block, string, error)

// blockParsers in priority order. The paragraph parser matches any non-blank
// line and therefore comes last.
var blockParsers = [...]blockParser{
	(*parser).parseDirective,
	(*parser).parsePicture,
	(*parser).parseBullets,
	(*parser).parseCode,
	(*parser).parseParagraph,
}

// ParseBlocks parses the body of a slide. It stops at the end of input or in
// front of the next slide header, which is not consumed.
// It returns the blocks found and the remaining input.
func ParseBlocks(text string, opts ...Option) ([]Block, string, error) {
	p := newParser(text, opts)
	return p.parseBlocks(text)
}

func (p *parser) parseBlocks(in string) ([]Block, string, error) {
	blocks := make([]Block, 0, 8)
	for {
		rest := skipBlankLines(in)
		if rest == "" {
			return blocks, rest, nil
		}
		if line, _ := splitLine(rest); isSlideHeader(line) {
			return blocks, rest, nil
		}
		block, r, err := p.parseBlock(rest)
		if err != nil {
			return nil, in, err
		}
		tracer().Debugf("block %s at line %d", block.Kind(), p.line(rest))
		blocks = append(blocks, block)
		in = r
	}
}

func (p *parser) parseBlock(in string) (Block, string, error) {
	for _, try := range blockParsers {
		block, rest, err := try(p, in)
		if err != nil {
			return nil, in, err
		}
		if block != nil {
			return block, rest, nil
		}
	}
	line, _ := splitLine(in)
	return nil, in, parseError(ErrStructure, p.line(in), "no block matches %q", line)
}

// parseDirective matches a line `%NEWSLIDE`.
func (p *parser) parseDirective(in string) (Block, string, error) {
	line, rest := splitLine(in)
	if strings.TrimSpace(line) != "%NEWSLIDE" {
		return nil, in, nil
	}
	return Directive{Directive: NewSlide}, rest, nil
}

// parseCode matches a fenced code block. The language tag follows the
// opening fence on the same line, the code runs verbatim up to the next fence.
// An unterminated fence does not match.
func (p *parser) parseCode(in string) (Block, string, error) {
	header, body := splitLine(in)
	header = strings.TrimSpace(header)
	if !strings.HasPrefix(header, "```") {
		return nil, in, nil
	}
	end := strings.Index(body, "```")
	if end < 0 {
		return nil, in, nil
	}
	code := Code{
		Language: strings.TrimSpace(header[3:]),
		Text:     body[:end],
	}
	return code, body[end+3:], nil
}

// parseParagraph matches lines up to a blank line, a slide header or the end
// of input. Lines are trimmed and joined by newlines.
func (p *parser) parseParagraph(in string) (Block, string, error) {
	var lines []string
	rest := in
	for rest != "" {
		line, r := splitLine(rest)
		if isBlank(line) || isSlideHeader(line) {
			break
		}
		p.checkUnsupported(rest, line)
		lines = append(lines, strings.TrimSpace(line))
		rest = r
	}
	if len(lines) == 0 {
		return nil, in, nil
	}
	spans, err := LexSpans(strings.Join(lines, "\n"))
	if err != nil {
		return nil, in, err
	}
	return Paragraph{Spans: spans}, rest, nil
}

// checkUnsupported warns about markdown constructs outside of the dialect.
// They are kept as paragraph text.
func (p *parser) checkUnsupported(at string, line string) {
	t := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(t, "#"):
		p.warn(at, "heading inside a slide is not supported, kept as text")
	case strings.HasPrefix(t, ">"):
		p.warn(at, "block quotes are not supported, kept as text")
	case strings.HasPrefix(t, "- ") || strings.HasPrefix(t, "+ "):
		p.warn(at, "bullets must start with '* ', kept as text")
	case isOrderedItem(t):
		p.warn(at, "ordered lists are not supported, kept as text")
	case t == "%NEWSLIDE":
		p.warn(at, "%NEWSLIDE inside a paragraph is kept as text, separate it by a blank line")
	case strings.HasPrefix(t, "%"):
		p.warn(at, "unknown directive, kept as text")
	}
}

func isOrderedItem(t string) bool {
	i := 0
	for i < len(t) && t[i] >= '0' && t[i] <= '9' {
		i++
	}
	return i > 0 && strings.HasPrefix(t[i:], ". ")
}

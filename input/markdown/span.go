package markdown

import (
	"sort"
	"strings"
	"sync"

	"github.com/npillmayer/uax/grapheme"
)

// spanParser tries to match a span at the start of its input. On failure it
// returns false and must not be asked for the remainder.
type spanParser func(in string) (Span, string, bool)

// delimited creates a parser for spans enclosed in delim. The span's content
// runs to the nearest closing delimiter and is not lexed further.
func delimited(kind SpanKind, delim string) spanParser {
	return func(in string) (Span, string, bool) {
		if !strings.HasPrefix(in, delim) {
			return Span{}, in, false
		}
		body := in[len(delim):]
		end := strings.Index(body, delim)
		if end < 0 {
			return Span{}, in, false
		}
		return Span{Kind: kind, Text: body[:end]}, body[end+len(delim):], true
	}
}

// delimitedSpans in priority order.
var delimitedSpans = [...]spanParser{
	delimited(StrikethroughSpan, "~~"),
	delimited(BoldSpan, "**"),
	delimited(ItalicsSpan, "*"),
	delimited(EquationSpan, "$$"),
}

func lexDelimited(in string) (Span, string, bool) {
	for _, p := range delimitedSpans {
		if span, rest, ok := p(in); ok {
			return span, rest, true
		}
	}
	return Span{}, in, false
}

var setupGraphemes sync.Once

// spanScanner holds a line together with the byte offsets of its grapheme
// clusters, so the line is segmented once, however many spans it has.
type spanScanner struct {
	line   string
	bounds []int // start of every grapheme, terminated by len(line)
}

func newSpanScanner(line string) *spanScanner {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	graphemes := grapheme.StringFromString(line)
	bounds := make([]int, 0, graphemes.Len()+1)
	pos := 0
	for i := 0; i < graphemes.Len(); i++ {
		bounds = append(bounds, pos)
		pos += len(graphemes.Nth(i))
	}
	return &spanScanner{line: line, bounds: append(bounds, len(line))}
}

// opensSpan is true for bytes a delimited span may start with.
func opensSpan(c byte) bool {
	return c == '~' || c == '*' || c == '$'
}

// text returns the shortest non-empty run of plain text starting at byte
// position pos, i.e. it stops right before the first grapheme where a
// delimited span would match. It returns the position after the run.
func (sc *spanScanner) text(pos int) (Span, int) {
	k := sort.SearchInts(sc.bounds, pos+1) // first grapheme boundary after pos
	end := sc.bounds[k]
	for end < len(sc.line) {
		if opensSpan(sc.line[end]) {
			if _, _, ok := lexDelimited(sc.line[end:]); ok {
				break
			}
		}
		k++
		end = sc.bounds[k]
	}
	return Text(sc.line[pos:end]), end
}

// lexText lexes a run of plain text at the start of in. It consumes all of
// in if no delimited span follows.
func lexText(in string) (Span, string) {
	span, end := newSpanScanner(in).text(0)
	return span, in[end:]
}

// LexSpans splits a line of text into spans of inline formatting. Delimited
// forms are recognized in the order strikethrough, bold, italics, equation;
// everything else is plain text. Escaping delimiters is not supported.
//
// The result is never empty. Lexing an empty string is an error (ErrEmptySpan).
func LexSpans(line string) ([]Span, error) {
	if line == "" {
		return nil, parseError(ErrEmptySpan, 0, "no text to lex")
	}
	spans := make([]Span, 0, 4)
	var sc *spanScanner
	for pos := 0; pos < len(line); {
		if span, rest, ok := lexDelimited(line[pos:]); ok {
			spans = append(spans, span)
			pos = len(line) - len(rest)
			continue
		}
		if sc == nil {
			sc = newSpanScanner(line)
		}
		var span Span
		span, pos = sc.text(pos)
		spans = append(spans, span)
	}
	return spans, nil
}

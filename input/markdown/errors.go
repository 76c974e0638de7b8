package markdown

import (
	"errors"
	"fmt"
)

// Kinds of parse errors. Every error returned from this package wraps one
// of them and may be tested with errors.Is.
var (
	// ErrStructure: the header, a slide header or a block could not be
	// matched by any alternative.
	ErrStructure = errors.New("structural parse error")
	// ErrEncoding: the input is not valid UTF-8 text.
	ErrEncoding = errors.New("input is not valid UTF-8")
	// ErrEmptySpan: the span lexer has been asked to lex empty text.
	ErrEmptySpan = errors.New("cannot lex empty span")
)

// ParseError reports a parse failure at a line of input.
// Line is 1-based; it is 0 if the error is not associated with a line.
type ParseError struct {
	Kind error
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %s", e.Line, e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

func parseError(kind error, line int, format string, v ...interface{}) error {
	return &ParseError{Kind: kind, Line: line, Msg: fmt.Sprintf(format, v...)}
}

package markdown

import "fmt"

// Reporter receives warnings about input the parser accepts but does not
// represent faithfully, e.g. headings deeper than `##`.
type Reporter interface {
	Warn(line int, msg string)
}

// Warning is a single diagnostic collected by Warnings.
type Warning struct {
	Line int
	Msg  string
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: %s", w.Line, w.Msg)
}

// Warnings is a Reporter collecting all warnings.
type Warnings []Warning

// Warn is part of interface Reporter.
func (ws *Warnings) Warn(line int, msg string) {
	*ws = append(*ws, Warning{Line: line, Msg: msg})
}

// traceReporter forwards warnings to the package tracer.
type traceReporter struct{}

func (traceReporter) Warn(line int, msg string) {
	tracer().Infof("line %d: %s", line, msg)
}

// Option configures parsing.
type Option func(*parser)

// WithReporter sets the destination for parser warnings. The default
// reporter traces them.
func WithReporter(r Reporter) Option {
	return func(p *parser) {
		if r != nil {
			p.reporter = r
		}
	}
}

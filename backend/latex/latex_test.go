package latex

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/cords"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/VanillaBrooks/markdown-pdf/core"
	"github.com/VanillaBrooks/markdown-pdf/core/parameters"
	"github.com/VanillaBrooks/markdown-pdf/engine/deck"
	"github.com/VanillaBrooks/markdown-pdf/input/markdown"
)

const talk = `# A **Talk**
AUTHOR=Jane Doe

## Intro

Hello $$E=mc^2$$ and ~~old~~ *new*.

* first
    * second
* third

## Code

` + "```python" + `
print("hi")
` + "```" + `

## Picture

![a plot](plot.png)
%WIDTH=8cm

## Mixed

some text

![](side.png)
%VERTICAL
`

type LaTeXSuite struct {
	suite.Suite
	deck     deck.Deck
	teardown func()
}

func TestLaTeX(t *testing.T) {
	suite.Run(t, new(LaTeXSuite))
}

func (s *LaTeXSuite) SetupTest() {
	s.teardown = gotestingadapter.QuickConfig(s.T(), "slides.latex")
	doc, err := markdown.Parse(talk)
	s.Require().NoError(err)
	s.deck = deck.Postprocess(*doc)
}

func (s *LaTeXSuite) TearDownTest() {
	s.teardown()
}

func (s *LaTeXSuite) render(opts ...Option) string {
	var buf bytes.Buffer
	s.Require().NoError(Write(&buf, s.deck, opts...))
	return buf.String()
}

func (s *LaTeXSuite) TestDocumentFrame() {
	out := s.render()
	s.True(strings.HasPrefix(out, "\\documentclass{beamer}\n"))
	s.True(strings.HasSuffix(out, "\\end{document}\n"))
	s.Contains(out, "\\title{A \\textbf{Talk}}\n")
	s.Contains(out, "\\author{Jane Doe}\n")
	s.Equal(4, strings.Count(out, "\\begin{frame}"))
	s.Equal(4, strings.Count(out, "\\end{frame}"))
}

func (s *LaTeXSuite) TestAspectRatio() {
	out := s.render(WithAspectRatio("169"))
	s.True(strings.HasPrefix(out, "\\documentclass[aspectratio=169]{beamer}\n"))
}

func (s *LaTeXSuite) TestTextFrame() {
	out := s.render()
	s.Contains(out, "\\begin{frame}\n\\frametitle{Intro}\n")
	s.Contains(out, "Hello $E=mc^2$ and \\sout{old} \\emph{new}.\n")
	s.Contains(out, "\\begin{itemize}\n\\item first\n\\begin{itemize}\n\\item second\n\\end{itemize}\n\\item third\n\\end{itemize}\n")
}

func (s *LaTeXSuite) TestCodeFrameIsFragile() {
	out := s.render()
	s.Contains(out, "\\begin{frame}[fragile]\n\\frametitle{Code}\n")
	s.Contains(out, "\\begin{lstlisting}[language=python]\nprint(\"hi\")\n\\end{lstlisting}\n")
	s.Equal(1, strings.Count(out, "[fragile]"))
}

func (s *LaTeXSuite) TestPictureFrame() {
	out := s.render()
	s.Contains(out, "\\includegraphics[width=226.77bp,height=0.7\\paperheight,keepaspectratio]{plot.png}\n")
	s.Contains(out, "\\caption{a plot}\n")
}

func (s *LaTeXSuite) TestMixedFrame() {
	out := s.render()
	s.Contains(out, "\\begin{minipage}{0.4\\textwidth}\nsome text\n\n\\end{minipage}\n\\hfill\n\\begin{minipage}{0.55\\textwidth}\n")
	s.Contains(out, "\\includegraphics[height=0.7\\paperheight]{side.png}\n")
}

func (s *LaTeXSuite) TestParameterOverride() {
	out := s.render(WithParameter(parameters.P_TEXTCOLUMN, `0.3\textwidth`))
	s.Contains(out, "\\begin{minipage}{0.3\\textwidth}\n")
}

// ---------------------------------------------------------------------------

func TestLength(t *testing.T) {
	assert.Equal(t, "226.77bp", Length("8cm"))
	assert.Equal(t, "0.50\\linewidth", Length("50%"))
	assert.Equal(t, "120.00bp", Length("120"))
	assert.Equal(t, "72.00bp", Length(" 1in "))
	assert.Equal(t, "SOMETHING", Length("SOMETHING"))
	assert.Equal(t, `0.5\textwidth`, Length(`0.5\textwidth`))
}

func TestPortraitPictureSizedByHeight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slides.latex")
	defer teardown()
	//
	dir := t.TempDir()
	f, err := os.Create(filepath.Join(dir, "tall.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewGray(image.Rect(0, 0, 10, 30))))
	require.NoError(t, f.Close())
	//
	d := deck.Deck{
		Title: markdown.Title{markdown.Text("T")},
		Slides: []deck.Slide{
			{
				Title:    markdown.Title{markdown.Text("P")},
				Contents: deck.OnlyPicture{Picture: markdown.Picture{Path: "tall.png"}},
			},
			{
				Title:    markdown.Title{markdown.Text("Q")},
				Contents: deck.OnlyPicture{Picture: markdown.Picture{Path: "missing.png"}},
			},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, d, WithPictureBase(dir)))
	out := buf.String()
	assert.Contains(t, out, "\\includegraphics[height=0.7\\paperheight]{tall.png}\n")
	assert.Contains(t, out, "\\includegraphics[width=0.9\\paperwidth,height=0.7\\paperheight,keepaspectratio]{missing.png}\n")
}

func TestFirstNestedItemGetsEmptyLabel(t *testing.T) {
	var sb strings.Builder
	itemize(&sb, []markdown.BulletItem{
		markdown.Nested(markdown.Single(markdown.Text("deep"))),
	})
	assert.Equal(t, "\\begin{itemize}\n\\item[]\n\\begin{itemize}\n\\item deep\n\\end{itemize}\n\\end{itemize}\n", sb.String())
}

func (s *LaTeXSuite) TestWriteSlide() {
	var buf bytes.Buffer
	s.Require().NoError(WriteSlide(&buf, s.deck.Slides[0]))
	out := buf.String()
	s.True(strings.HasPrefix(out, "\\begin{frame}\n\\frametitle{Intro}\n"))
	s.True(strings.HasSuffix(out, "\\end{frame}\n\n"))
	s.NotContains(out, "documentclass")
}

func TestWideCodeGetsSmallerFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slides.latex")
	defer teardown()
	//
	code := markdown.Code{Text: strings.Repeat("x", 70) + "\n"}
	var sb strings.Builder
	wr := newWriter(nil)
	assert.True(t, wr.blocks(&sb, []markdown.Block{code}))
	assert.True(t, strings.HasPrefix(sb.String(), "\\begin{lstlisting}[basicstyle=\\ttfamily\\scriptsize]\n"))
}

func TestAssemblyErrorIsReturned(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slides.latex")
	defer teardown()
	//
	wr := newWriter(nil)
	wr.emit("\\begin{frame}\n")
	wr.err = cords.ErrCordCompleted
	wr.emit("\\end{frame}\n")
	var buf bytes.Buffer
	err := wr.output(&buf)
	require.Error(t, err)
	assert.True(t, errors.Is(err, cords.ErrCordCompleted))
	assert.Equal(t, core.EINTERNAL, core.Code(err))
	assert.Zero(t, buf.Len(), "nothing is written after a failed append")
	assert.Equal(t, "\\begin{frame}\n", wr.b.Cord().String())
}

/*
Package deckdbg draws a slide deck as a GraphViz graph, for debugging.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package deckdbg

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/schuko/tracing"

	"github.com/VanillaBrooks/markdown-pdf/engine/deck"
	"github.com/VanillaBrooks/markdown-pdf/input/markdown"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
	w        io.Writer
	cnt      int
	err      error
}

type gnode struct {
	Name  string
	Label string
	Shape string
	Fill  string
	Font  string
}

type gedge struct {
	From, To string
}

// ToGraphViz creates a graphical representation of a deck.
// It produces a DOT file format suitable as input for Graphviz, given a Writer.
func ToGraphViz(d deck.Deck, w io.Writer) error {
	header := template.Must(template.New("deck").Parse(graphHeadTmpl))
	gparams := &graphParamsType{Fontname: "Helvetica", w: w}
	gparams.NodeTmpl = template.Must(template.New("node").Funcs(
		template.FuncMap{
			"quote": quote,
		}).Parse(nodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("edge").Parse(edgeTmpl))
	if err := header.Execute(w, gparams); err != nil {
		return err
	}
	root := gparams.node(fmt.Sprintf("%s\n%s", d.Title.PlainText(), d.Author), "box", "lightblue3", "")
	for i, s := range d.Slides {
		tracer().Debugf("slide[%d] = %q, %s", i, s.Title.PlainText(), s.Contents.Layout())
		sn := gparams.node(fmt.Sprintf("#%d %s\n%s", i+1, s.Title.PlainText(), s.Contents.Layout()),
			"box", "lightgoldenrod1", "")
		gparams.edge(root, sn)
		for _, b := range deck.Blocks(s.Contents) {
			gparams.block(sn, b)
		}
		if p, ok := deck.Picture(s.Contents); ok {
			gparams.block(sn, p)
		}
	}
	if gparams.err != nil {
		return gparams.err
	}
	_, err := w.Write([]byte("}\n"))
	return err
}

func (gp *graphParamsType) block(parent string, b markdown.Block) {
	switch b := b.(type) {
	case markdown.Paragraph:
		gp.edge(parent, gp.node(spansText(b.Spans), "box", "grey95", "Courier"))
	case markdown.Code:
		gp.edge(parent, gp.node("code "+b.Language+"\n"+b.Text, "note", "grey90", "Courier"))
	case markdown.Picture:
		label := b.Path
		for _, d := range b.Directives {
			label += "\n" + d.String()
		}
		gp.edge(parent, gp.node(label, "box3d", "darkseagreen2", ""))
	case markdown.BulletedList:
		list := gp.node("list", "circle", "white", "")
		gp.edge(parent, list)
		gp.items(list, b.Items)
	}
}

func (gp *graphParamsType) items(parent string, items []markdown.BulletItem) {
	for _, item := range items {
		if item.IsNested() {
			sub := gp.node("", "point", "black", "")
			gp.edge(parent, sub)
			gp.items(sub, item.Nested)
			continue
		}
		gp.edge(parent, gp.node(spansText(item.Spans), "box", "grey95", "Courier"))
	}
}

func (gp *graphParamsType) node(label, shape, fill, font string) string {
	gp.cnt++
	name := fmt.Sprintf("node%05d", gp.cnt)
	if gp.err == nil {
		gp.err = gp.NodeTmpl.Execute(gp.w, gnode{
			Name:  name,
			Label: label,
			Shape: shape,
			Fill:  fill,
			Font:  font,
		})
	}
	return name
}

func (gp *graphParamsType) edge(from, to string) {
	if gp.err == nil {
		gp.err = gp.EdgeTmpl.Execute(gp.w, gedge{From: from, To: to})
	}
}

func spansText(spans []markdown.Span) string {
	return markdown.Title(spans).PlainText()
}

// quote shortens a label and escapes it for DOT.
func quote(s string) string {
	r := []rune(s)
	if len(r) > 40 {
		s = string(r[:40]) + "…"
	}
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return `"` + s + `"`
}

func tracer() tracing.Trace {
	return tracing.Select("slides.deck")
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=12] ;
   node [fontname = "{{ .Fontname }}" fontsize=12] ;
   edge [fontname = "{{ .Fontname }}" fontsize=12] ;
`

const nodeTmpl = `{{ .Name }}	[ label={{ quote .Label }} shape={{ .Shape }} style=filled fillcolor={{ .Fill }}{{ if .Font }} fontname="{{ .Font }}" fontsize=11.0{{ end }} ] ;
`

const edgeTmpl = `{{ .From }} -> {{ .To }} [weight=1] ;
`

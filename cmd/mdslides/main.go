/*
Command mdslides converts a markdown talk into a LaTeX beamer document.

    mdslides [flags] <input.md> <output-dir>

The output is written to <output-dir>/<input-stem>.tex. With flag -preview,
mdslides enters an interactive mode instead, which lets the user inspect the
slides of the deck and re-load the input file after editing it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"

	"github.com/VanillaBrooks/markdown-pdf/backend/latex"
	"github.com/VanillaBrooks/markdown-pdf/core"
	"github.com/VanillaBrooks/markdown-pdf/core/locate/resources"
	"github.com/VanillaBrooks/markdown-pdf/engine/deck"
	"github.com/VanillaBrooks/markdown-pdf/engine/deck/deckdbg"
	"github.com/VanillaBrooks/markdown-pdf/input/markdown"
)

// tracer traces with key 'slides.cli'
func tracer() tracing.Trace {
	return tracing.Select("slides.cli")
}

var traceKeys = []string{
	"slides.cli",
	"slides.markdown",
	"slides.deck",
	"slides.latex",
	"slides.resources",
}

// settings collects the command line.
type settings struct {
	input         string
	outdir        string
	split         deck.SplitMode
	checkPictures bool
	dotfile       string
	aspect        string
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range traceKeys {
		conf["trace."+key] = "Error"
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	split := flag.String("split", "reset", "Content of slides following a %NEWSLIDE [reset|carry]")
	check := flag.Bool("check-pictures", false, "Check that all pictures exist and are readable")
	dot := flag.String("dot", "", "Write the deck as a GraphViz DOT file")
	preview := flag.Bool("preview", false, "Inspect the deck interactively instead of writing it")
	aspect := flag.String("aspect", "", "Beamer aspect ratio [43|169]")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <input.md> <output-dir>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	setTraceLevel(*tlevel)
	tracer().Infof("Trace level is %s", *tlevel)
	//
	s, err := makeSettings(flag.Args(), *split, *aspect)
	if err != nil {
		core.UserError(err)
		flag.Usage()
		os.Exit(2)
	}
	s.checkPictures, s.dotfile = *check, *dot
	if *preview {
		repl, err := readline.New("slides > ")
		if err != nil {
			tracer().Errorf(err.Error())
			os.Exit(3)
		}
		intp := &Intp{repl: repl, settings: s}
		if err := intp.reload(); err != nil {
			core.UserError(err)
		}
		pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
		intp.REPL()
		return
	}
	if err := convert(s); err != nil {
		core.UserError(err)
		os.Exit(core.Code(err))
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Warning.Prefix = pterm.Prefix{
		Text:  " Warn ",
		Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func setTraceLevel(level string) {
	for _, key := range traceKeys {
		t := tracing.Select(key)
		switch strings.ToLower(level) {
		case "debug":
			t.SetTraceLevel(tracing.LevelDebug)
		case "info":
			t.SetTraceLevel(tracing.LevelInfo)
		default:
			t.SetTraceLevel(tracing.LevelError)
		}
	}
}

func makeSettings(args []string, split, aspect string) (settings, error) {
	s := settings{}
	if len(args) != 2 {
		return s, core.Error(core.EINVALID, "need exactly an input file and an output directory, have %d argument(s)", len(args))
	}
	s.input, s.outdir = args[0], args[1]
	var err error
	if s.split, err = deck.ParseSplitMode(split); err != nil {
		return s, core.WrapError(err, core.EINVALID, "illegal value for -split")
	}
	switch aspect {
	case "", "43", "169":
		s.aspect = aspect
	default:
		return s, core.Error(core.EINVALID, "unsupported aspect ratio %q, use 43 or 169", aspect)
	}
	return s, nil
}

// outputPath derives the name of the LaTeX file from the input file name.
func outputPath(input, outdir string) (string, error) {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" || stem == "." || stem == ".." || stem == string(filepath.Separator) {
		return "", core.Error(core.EINVALID, "cannot derive an output file name from %q", input)
	}
	return filepath.Join(outdir, stem+".tex"), nil
}

// load reads and parses the input file. Parser warnings are returned, not
// printed.
func load(input string, split deck.SplitMode) (deck.Deck, markdown.Warnings, error) {
	var warnings markdown.Warnings
	f, err := os.Open(input)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return deck.Deck{}, nil, core.WrapError(err, core.EMISSING, "input file not found: %s", input)
		}
		return deck.Deck{}, nil, core.WrapError(err, core.EIO, "cannot open %s", input)
	}
	defer f.Close()
	doc, err := markdown.ParseReader(f, markdown.WithReporter(&warnings))
	if err != nil {
		if errors.Is(err, markdown.ErrEncoding) {
			return deck.Deck{}, warnings, core.WrapError(err, core.EENCODING, "cannot read %s", input)
		}
		return deck.Deck{}, warnings, core.WrapError(err, core.ESYNTAX, "cannot parse %s", input)
	}
	d := deck.Postprocess(*doc, deck.WithSplitMode(split))
	tracer().Infof("%s: %d parsed slides, %d output slides", input, len(doc.Slides), len(d.Slides))
	return d, warnings, nil
}

func printWarnings(input string, warnings markdown.Warnings) {
	for _, w := range warnings {
		pterm.Warning.Printfln("%s:%d: %s", input, w.Line, w.Msg)
	}
}

// checkPictures inspects all local pictures of a deck. It reports every
// problem and returns the first hard error.
func checkPictures(d deck.Deck, base string) error {
	pics := d.Pictures()
	paths := make([]string, len(pics))
	for i, p := range pics {
		paths[i] = p.Path
	}
	infos, errs := resources.ResolvePictures(context.Background(), base, paths)
	var first error
	for i, err := range errs {
		switch {
		case errors.Is(err, resources.ErrRemote):
			pterm.Warning.Printfln("%s: link is not checked", paths[i])
		case err != nil:
			pterm.Error.Println(core.UserMessage(err))
			if first == nil {
				first = err
			}
		default:
			tracer().Infof("picture %s: %s %dx%d", paths[i], infos[i].Format, infos[i].Width, infos[i].Height)
		}
	}
	return first
}

func writeDot(d deck.Deck, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return core.WrapError(err, core.EIO, "cannot create %s", path)
	}
	if err = deckdbg.ToGraphViz(d, f); err != nil {
		f.Close()
		return core.WrapError(err, core.EIO, "cannot write %s", path)
	}
	return f.Close()
}

func latexOptions(s settings) []latex.Option {
	opts := []latex.Option{latex.WithAspectRatio(s.aspect)}
	if s.checkPictures {
		opts = append(opts, latex.WithPictureBase(filepath.Dir(s.input)))
	}
	return opts
}

// convert runs the whole pipeline from markdown input to LaTeX output.
func convert(s settings) error {
	out, err := outputPath(s.input, s.outdir)
	if err != nil {
		return err
	}
	d, warnings, err := load(s.input, s.split)
	printWarnings(s.input, warnings)
	if err != nil {
		return err
	}
	if s.checkPictures {
		if err := checkPictures(d, filepath.Dir(s.input)); err != nil {
			return err
		}
	}
	if s.dotfile != "" {
		if err := writeDot(d, s.dotfile); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(s.outdir, 0o755); err != nil {
		return core.WrapError(err, core.EIO, "cannot create output directory %s", s.outdir)
	}
	f, err := os.Create(out)
	if err != nil {
		return core.WrapError(err, core.EIO, "cannot create %s", out)
	}
	if err := latex.Write(f, d, latexOptions(s)...); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return core.WrapError(err, core.EIO, "cannot write %s", out)
	}
	pterm.Info.Printfln("wrote %d slides to %s", len(d.Slides), out)
	return nil
}

package main

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/VanillaBrooks/markdown-pdf/backend/latex"
	"github.com/VanillaBrooks/markdown-pdf/core"
	"github.com/VanillaBrooks/markdown-pdf/engine/deck"
)

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	settings settings
	deck     deck.Deck
	loaded   bool
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		quit, err := intp.execute(cmd)
		if err != nil {
			core.UserError(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Op codes of interpreter commands.
const (
	QUIT int = iota
	HELP
	SLIDES
	SHOW
	RELOAD
	WRITE
)

// Command is a parsed line of user input.
type Command struct {
	code int
	arg  int // slide number for SHOW, 1-based
}

func parseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	cmd := Command{}
	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		cmd.code = QUIT
	case "slides", "list":
		cmd.code = SLIDES
	case "show":
		cmd.code = SHOW
		if len(fields) < 2 {
			return cmd, fmt.Errorf("usage: show <slide number>")
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 1 {
			return cmd, fmt.Errorf("not a slide number: %s", fields[1])
		}
		cmd.arg = n
	case "reload":
		cmd.code = RELOAD
	case "write":
		cmd.code = WRITE
	default:
		cmd.code = HELP
	}
	tracer().Debugf("parse command = %v", cmd)
	return cmd, nil
}

func (intp *Intp) execute(cmd Command) (bool, error) {
	switch cmd.code {
	case QUIT:
		return true, nil
	case HELP:
		help()
	case RELOAD:
		return false, intp.reload()
	case WRITE:
		return false, convert(intp.settings)
	case SLIDES:
		if !intp.loaded {
			return false, core.Error(core.EMISSING, "no deck loaded, use reload")
		}
		pterm.Println(slideTable(intp.deck))
	case SHOW:
		if !intp.loaded {
			return false, core.Error(core.EMISSING, "no deck loaded, use reload")
		}
		if cmd.arg > len(intp.deck.Slides) {
			return false, core.Error(core.EINVALID, "deck has only %d slides", len(intp.deck.Slides))
		}
		var buf bytes.Buffer
		if err := latex.WriteSlide(&buf, intp.deck.Slides[cmd.arg-1], latexOptions(intp.settings)...); err != nil {
			return false, err
		}
		pterm.Println(buf.String())
	}
	return false, nil
}

// reload re-reads the input file.
func (intp *Intp) reload() error {
	d, warnings, err := load(intp.settings.input, intp.settings.split)
	printWarnings(intp.settings.input, warnings)
	if err != nil {
		return err
	}
	intp.deck, intp.loaded = d, true
	pterm.Info.Printfln("%s: %d slides", intp.settings.input, len(d.Slides))
	return nil
}

// slideTable lists the slides of a deck, one per line.
func slideTable(d deck.Deck) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s)\n", d.Title.PlainText(), d.Author)
	for i, s := range d.Slides {
		fmt.Fprintf(&sb, "%3d  %-14s  %s\n", i+1, s.Contents.Layout(), s.Title.PlainText())
	}
	return sb.String()
}

func help() {
	pterm.Info.Println("Commands")
	pterm.Println(`
	slides        list the slides of the deck
	show <n>      print the LaTeX frame of slide n
	reload        re-read the input file
	write         write the LaTeX document to the output directory
	quit          leave (or <ctrl>D)
	`)
}

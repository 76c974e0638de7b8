/*
Package parameters holds layout parameters for rendering slides.

Parameters live in registers which may be grouped, in the manner of TeX:
a group started with Begingroup collects every Push, Endgroup forgets them
again. Backends open a group per slide and per picture, so that layout
directives of one picture never leak into the next one.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parameters

import "fmt"

type LayoutParameter int

const (
	none LayoutParameter = iota
	P_TEXTCOLUMN       // width of the text column beside a picture
	P_PICTURECOLUMN    // width of the picture column beside text
	P_PICTUREWIDTH     // width of a picture on a picture-only slide
	P_PICTUREHEIGHT    // height of a picture on a picture-only slide
	P_SPLITWIDTH       // width of a picture inside the picture column
	P_SPLITHEIGHT      // height of a picture inside the picture column
	P_KEEPASPECT       // keep aspect ratio of pictures (bool)
	P_VERTICAL         // picture is in portrait orientation (bool)
	P_ASPECTRATIO      // beamer aspect ratio option, e.g. "169"
	P_CODESTYLE        // lstlisting basic style
	P_STOPPER
)

func (p LayoutParameter) String() string {
	switch p {
	case P_TEXTCOLUMN:
		return "P_TEXTCOLUMN"
	case P_PICTURECOLUMN:
		return "P_PICTURECOLUMN"
	case P_PICTUREWIDTH:
		return "P_PICTUREWIDTH"
	case P_PICTUREHEIGHT:
		return "P_PICTUREHEIGHT"
	case P_SPLITWIDTH:
		return "P_SPLITWIDTH"
	case P_SPLITHEIGHT:
		return "P_SPLITHEIGHT"
	case P_KEEPASPECT:
		return "P_KEEPASPECT"
	case P_VERTICAL:
		return "P_VERTICAL"
	case P_ASPECTRATIO:
		return "P_ASPECTRATIO"
	case P_CODESTYLE:
		return "P_CODESTYLE"
	}
	return fmt.Sprintf("LayoutParameter(%d)", int(p))
}

type ParameterGroup struct {
	params map[LayoutParameter]interface{}
	level  int
	next   *ParameterGroup
}

type LayoutRegisters struct {
	base       [P_STOPPER]interface{}
	groups     *ParameterGroup
	grouplevel int
}

// ----------------------------------------------------------------------

func NewLayoutRegisters() *LayoutRegisters {
	regs := &LayoutRegisters{}
	initParameters(&regs.base)
	return regs
}

func initParameters(p *[P_STOPPER]interface{}) {
	p[P_TEXTCOLUMN] = `0.4\textwidth`     // a LaTeX length
	p[P_PICTURECOLUMN] = `0.55\textwidth` // a LaTeX length
	p[P_PICTUREWIDTH] = `0.9\paperwidth`  // a LaTeX length
	p[P_PICTUREHEIGHT] = `0.7\paperheight`
	p[P_SPLITWIDTH] = `\textwidth`
	p[P_SPLITHEIGHT] = `0.7\paperheight`
	p[P_KEEPASPECT] = true
	p[P_VERTICAL] = false
	p[P_ASPECTRATIO] = "" // beamer default
	p[P_CODESTYLE] = `\ttfamily\small`
}

// Level returns the current group nesting level.
func (regs *LayoutRegisters) Level() int {
	return regs.grouplevel
}

func (regs *LayoutRegisters) Begingroup() {
	regs.grouplevel++
}

func (regs *LayoutRegisters) Endgroup() {
	if regs.grouplevel > 0 {
		if regs.groups != nil && regs.groups.level == regs.grouplevel {
			regs.groups = regs.groups.next
		}
		regs.grouplevel--
	}
}

func (regs *LayoutRegisters) Push(key LayoutParameter, value interface{}) {
	checkKey(key)
	if regs.grouplevel > 0 {
		var g *ParameterGroup
		if regs.groups == nil || regs.groups.level < regs.grouplevel {
			g = &ParameterGroup{}
			g.params = make(map[LayoutParameter]interface{})
			g.level = regs.grouplevel
			g.next = regs.groups
			regs.groups = g
		} else {
			g = regs.groups
		}
		g.params[key] = value
	} else {
		regs.base[key] = value
	}
}

func (regs *LayoutRegisters) Get(key LayoutParameter) interface{} {
	checkKey(key)
	var value interface{}
	if regs.grouplevel > 0 {
		for g := regs.groups; g != nil; g = g.next {
			value = g.params[key]
			if value != nil {
				break
			}
		}
	}
	if value == nil {
		value = regs.base[key]
	}
	return value
}

func checkKey(key LayoutParameter) {
	if key <= none || key >= P_STOPPER {
		panic("parameter key outside range of layout parameters")
	}
}

// S returns a string parameter.
func (regs *LayoutRegisters) S(key LayoutParameter) string {
	return regs.Get(key).(string)
}

// B returns a boolean parameter.
func (regs *LayoutRegisters) B(key LayoutParameter) bool {
	return regs.Get(key).(bool)
}

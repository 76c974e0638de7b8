// Package dimen implements dimensions and units.
//
// Dimensions appear in slide sources as picture size overrides, e.g.
//
//     %WIDTH=8cm
//     %HEIGHT=60%
//
// and are converted to lengths understood by the output backends.
//
/*
BSD License

Copyright (c) 2017–21, Norbert Pillmayer (norbert@pillmayer.com)

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */
package dimen

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Dimen is a dimension type.
// Values are in scaled big points (different from TeX).
type Dimen int32

// Some pre-defined dimensions
const (
	Zero Dimen = 0
	SP   Dimen = 1       // scaled point = BP / 65536
	BP   Dimen = 65536   // big point (PDF) = 1/72 inch
	PX   Dimen = 65536   // "pixels"
	PT   Dimen = 65291   // printers point 1/72.27 inch
	MM   Dimen = 185771  // millimeters
	CM   Dimen = 1857710 // centimeters
	IN   Dimen = 4718592 // inch
)

// Percent is the unit of relative dimensions: 100*Percent denotes the full
// extent of whatever the dimension is relative to.
const Percent Dimen = 65536

// Infinity is the largest possible dimension
const Infinity = math.MaxInt32

// ErrFormat is returned for strings which are not a dimension.
var ErrFormat = errors.New("format error parsing dimension")

// Stringer implementation.
func (d Dimen) String() string {
	return fmt.Sprintf("%dsp", int32(d))
}

// Points returns a dimension in big (PDF) points.
func (d Dimen) Points() float64 {
	return float64(d) / float64(BP)
}

// Fraction interprets d as a relative dimension and returns it as a fraction
// of 1, i.e. 50*Percent returns 0.5.
func (d Dimen) Fraction() float64 {
	return float64(d) / float64(100*Percent)
}

// ---------------------------------------------------------------------------

var dimenPattern = regexp.MustCompile(`^([+\-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+))\s*(%|[a-zA-Z]{2})?$`)

// ParseDimen parses a string to return a dimension. Syntax is CSS Unit,
// fractional numbers are allowed.
// If a percentage value is given (`80%`), the second return value will be true
// and the dimension is expressed in units of Percent.
//
func ParseDimen(s string) (Dimen, bool, error) {
	d := dimenPattern.FindStringSubmatch(strings.TrimSpace(s))
	if len(d) < 2 {
		return 0, false, ErrFormat
	}
	scale := SP
	ispcnt := false
	if len(d) > 2 {
		switch strings.ToLower(d[2]) {
		case "pt":
			scale = PT
		case "mm":
			scale = MM
		case "bp", "px":
			scale = BP
		case "cm":
			scale = CM
		case "in":
			scale = IN
		case "sp", "":
			scale = SP
		case "%":
			scale, ispcnt = Percent, true
		default:
			return 0, false, ErrFormat
		}
	}
	n, err := strconv.ParseFloat(d[1], 64)
	if err != nil {
		return 0, false, ErrFormat
	}
	v := math.Round(n * float64(scale))
	if math.Abs(v) > Infinity {
		return 0, false, ErrFormat
	}
	return Dimen(v), ispcnt, nil
}

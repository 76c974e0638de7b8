package markdown

import (
	"strings"
)

// parsePicture matches `![caption](path)`, followed by zero or more picture
// directives. Text following the closing parenthesis on the same line is
// left for the next block.
func (p *parser) parsePicture(in string) (Block, string, error) {
	start := strings.TrimLeft(in, " \t")
	if !strings.HasPrefix(start, "![") {
		return nil, in, nil
	}
	caption, rest, ok := takeTill(start[2:], ']')
	if !ok || !strings.HasPrefix(rest, "](") {
		return nil, in, nil
	}
	path, rest, ok := takeTill(rest[2:], ')')
	if !ok {
		return nil, in, nil
	}
	rest = rest[1:]
	pic := Picture{
		Path:    path,
		Caption: caption,
	}
	for {
		d, r, ok := pictureDirective(rest)
		if !ok {
			break
		}
		pic.Directives = append(pic.Directives, d)
		rest = r
	}
	if pic.IsLink() {
		p.warn(in, "remote pictures are not fetched: "+path)
	}
	return pic, rest, nil
}

// takeTill returns the text up to the first occurrence of c, which must
// occur within the current line. The remainder starts with c.
func takeTill(in string, c byte) (string, string, bool) {
	i := strings.IndexByte(in, c)
	if i < 0 {
		return "", in, false
	}
	if strings.IndexByte(in[:i], '\n') >= 0 {
		return "", in, false
	}
	return in[:i], in[i:], true
}

// pictureDirective matches a single directive, preceded by any whitespace.
// Values of %WIDTH and %HEIGHT run to the end of the line.
func pictureDirective(in string) (PictureDirective, string, bool) {
	start := strings.TrimLeft(in, " \t\r\n")
	switch {
	case strings.HasPrefix(start, "%VERTICAL"):
		return Vertical(), start[len("%VERTICAL"):], true
	case strings.HasPrefix(start, "%WIDTH="):
		value, rest := lineValue(start[len("%WIDTH="):])
		return Width(value), rest, true
	case strings.HasPrefix(start, "%HEIGHT="):
		value, rest := lineValue(start[len("%HEIGHT="):])
		return Height(value), rest, true
	}
	return PictureDirective{}, in, false
}

// lineValue returns the rest of the current line, trimmed. The line break is
// left in the remainder.
func lineValue(in string) (string, string) {
	i := strings.IndexByte(in, '\n')
	if i < 0 {
		return strings.TrimSpace(in), ""
	}
	return strings.TrimSpace(in[:i]), in[i:]
}

package markdown

import "strings"

// LeveledItem is a single bullet point together with its indentation level.
// Bullet lines are first lexed into a flat sequence of leveled items, which
// is then folded into a tree.
type LeveledItem struct {
	Level int
	Item  BulletItem
}

// indentationLevel counts 1 per space and 4 per tab, 4 columns per level.
func indentationLevel(indent string) int {
	cols := 0
	for _, c := range indent {
		switch c {
		case ' ':
			cols++
		case '\t':
			cols += 4
		}
	}
	return cols / 4
}

// bulletLine matches `* text` after optional indentation, with text running
// to the end of the line.
func (p *parser) bulletLine(in string) (LeveledItem, string, bool, error) {
	line, rest := splitLine(in)
	trimmed := strings.TrimLeft(line, " \t")
	if !strings.HasPrefix(trimmed, "* ") {
		return LeveledItem{}, in, false, nil
	}
	level := indentationLevel(line[:len(line)-len(trimmed)])
	text := strings.TrimRight(trimmed[2:], " \t")
	spans, err := LexSpans(text)
	if err != nil {
		return LeveledItem{}, in, false, parseError(ErrEmptySpan, p.line(in), "bullet point without text")
	}
	return LeveledItem{Level: level, Item: Single(spans...)}, rest, true, nil
}

// parseBullets matches one or more bullet lines. Empty lines between bullet
// lines do not end the list.
func (p *parser) parseBullets(in string) (Block, string, error) {
	flat := make([]LeveledItem, 0, 8)
	rest := in
	for {
		candidate := strings.TrimLeft(rest, "\n")
		if len(flat) == 0 {
			candidate = rest
		}
		item, r, ok, err := p.bulletLine(candidate)
		if err != nil {
			return nil, in, err
		}
		if !ok {
			break
		}
		flat = append(flat, item)
		rest = r
	}
	if len(flat) == 0 {
		return nil, in, nil
	}
	if flat[0].Level != 0 {
		p.warn(in, "first item of list is indented, nesting is relative to it")
	}
	return BulletedList{Items: FoldBullets(flat)}, rest, nil
}

// FoldBullets builds a tree of bullet items from a flat sequence of leveled
// items. Items of the same level become siblings, deeper items form a Nested
// sub-list at their level.
//
// Folding starts at the smallest level found in flat, so that every item is
// part of the result, even for input where the first item is indented.
func FoldBullets(flat []LeveledItem) []BulletItem {
	if len(flat) == 0 {
		return nil
	}
	base := flat[0].Level
	for _, item := range flat {
		if item.Level < base {
			base = item.Level
		}
	}
	cursor := 0
	return foldLevel(flat, &cursor, base)
}

// foldLevel consumes items at level from flat, starting at *cursor.
// It recurses for deeper items and returns on the first shallower one.
func foldLevel(flat []LeveledItem, cursor *int, level int) []BulletItem {
	items := make([]BulletItem, 0, len(flat)-*cursor)
	for *cursor < len(flat) {
		next := flat[*cursor]
		switch {
		case next.Level == level:
			items = append(items, next.Item)
			*cursor++
		case next.Level > level:
			items = append(items, Nested(foldLevel(flat, cursor, next.Level)...))
		default:
			return items
		}
	}
	return items
}

// FlattenBullets is the inverse of FoldBullets for well-formed lists (where
// each item is at most one level deeper than its predecessor): it walks the
// tree depth-first and annotates each single item with its depth.
func FlattenBullets(items []BulletItem) []LeveledItem {
	flat := make([]LeveledItem, 0, len(items))
	return flattenLevel(items, 0, flat)
}

func flattenLevel(items []BulletItem, depth int, flat []LeveledItem) []LeveledItem {
	for _, item := range items {
		if item.IsNested() {
			flat = flattenLevel(item.Nested, depth+1, flat)
			continue
		}
		flat = append(flat, LeveledItem{Level: depth, Item: item})
	}
	return flat
}

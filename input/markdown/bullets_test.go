package markdown

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(s string) BulletItem {
	return Single(Text(s))
}

func leveled(levels ...int) []LeveledItem {
	flat := make([]LeveledItem, len(levels))
	for i, l := range levels {
		flat[i] = LeveledItem{Level: l, Item: item(string(rune('a' + i)))}
	}
	return flat
}

func TestIndentationLevel(t *testing.T) {
	assert.Equal(t, 0, indentationLevel(""))
	assert.Equal(t, 0, indentationLevel("   "))
	assert.Equal(t, 1, indentationLevel("    "))
	assert.Equal(t, 1, indentationLevel("\t"))
	assert.Equal(t, 2, indentationLevel("\t    "))
	assert.Equal(t, 1, indentationLevel("  \t"))
}

func TestFoldBullets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slides.markdown")
	defer teardown()
	//
	tree := FoldBullets(leveled(0, 0, 1, 1, 0))
	assert.Equal(t, []BulletItem{
		item("a"),
		item("b"),
		Nested(item("c"), item("d")),
		item("e"),
	}, tree)
	//
	tree = FoldBullets(leveled(0, 1, 2, 0))
	assert.Equal(t, []BulletItem{
		item("a"),
		Nested(item("b"), Nested(item("c"))),
		item("d"),
	}, tree)
	//
	assert.Nil(t, FoldBullets(nil))
}

func TestFoldBulletsStartingIndented(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slides.markdown")
	defer teardown()
	//
	tree := FoldBullets(leveled(1, 1, 0))
	assert.Equal(t, []BulletItem{
		Nested(item("a"), item("b")),
		item("c"),
	}, tree, "no item may get lost")
}

func TestFlattenInvertsFold(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slides.markdown")
	defer teardown()
	//
	for _, levels := range [][]int{
		{0},
		{0, 0, 0},
		{0, 1, 1, 0},
		{0, 1, 2, 1, 0, 1},
		{0, 1, 2, 3, 3, 2, 0},
		{0, 1, 0, 1, 0, 1},
	} {
		flat := leveled(levels...)
		assert.Equal(t, flat, FlattenBullets(FoldBullets(flat)), "levels %v", levels)
	}
}

func TestParseBulletBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slides.markdown")
	defer teardown()
	//
	p := newParser("", nil)
	block, rest, err := p.parseBullets("* bullet text\n* bullet text\n* **bolded bullet text**")
	require.NoError(t, err)
	assert.Equal(t, "", rest)
	assert.Equal(t, BulletedList{Items: []BulletItem{
		item("bullet text"),
		item("bullet text"),
		Single(Bold("bolded bullet text")),
	}}, block)
}

func TestParseNestedBulletBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slides.markdown")
	defer teardown()
	//
	text := `
* item
* item
    * nested item
	* tab nested item
* regular item
        `
	blocks, rest, err := ParseBlocks(text)
	require.NoError(t, err)
	assert.Equal(t, "", rest)
	require.Len(t, blocks, 1)
	assert.Equal(t, BulletedList{Items: []BulletItem{
		item("item"),
		item("item"),
		Nested(item("nested item"), item("tab nested item")),
		item("regular item"),
	}}, blocks[0])
}

func TestBulletListSpansEmptyLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slides.markdown")
	defer teardown()
	//
	blocks, _, err := ParseBlocks("* one\n\n* two\n\nafter")
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, BulletedList{Items: []BulletItem{item("one"), item("two")}}, blocks[0])
	assert.Equal(t, Paragraph{Spans: []Span{Text("after")}}, blocks[1])
}

func TestIndentedFirstBulletWarns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slides.markdown")
	defer teardown()
	//
	var warnings Warnings
	blocks, _, err := ParseBlocks("text\n\n    * deep\n* shallow", WithReporter(&warnings))
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, BulletedList{Items: []BulletItem{
		Nested(item("deep")),
		item("shallow"),
	}}, blocks[1])
	require.Len(t, warnings, 1)
	assert.Equal(t, 3, warnings[0].Line)
}

func TestEmptyBulletIsAnError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slides.markdown")
	defer teardown()
	//
	_, _, err := ParseBlocks("* fine\n* \n")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptySpan))
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 2, perr.Line)
}

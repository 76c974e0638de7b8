package deck

import (
	"testing"

	"github.com/VanillaBrooks/markdown-pdf/input/markdown"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func para(s string) markdown.Paragraph {
	return markdown.Paragraph{Spans: []markdown.Span{markdown.Text(s)}}
}

func pic(path string) markdown.Picture {
	return markdown.Picture{Path: path}
}

var newslide = markdown.Directive{Directive: markdown.NewSlide}

func TestSplitUnits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slides.deck")
	defer teardown()
	//
	units := SplitUnits([]markdown.Block{para("a"), newslide, para("b"), newslide}, ResetOnSplit)
	require.Len(t, units, 3)
	assert.Equal(t, []markdown.Block{para("a")}, units[0])
	assert.Equal(t, []markdown.Block{para("b")}, units[1])
	assert.Empty(t, units[2])
	//
	units = SplitUnits(nil, ResetOnSplit)
	assert.Len(t, units, 1)
}

func TestSplitUnitsCarryForward(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slides.deck")
	defer teardown()
	//
	units := SplitUnits([]markdown.Block{para("p1"), newslide, para("p2")}, CarryForward)
	require.Len(t, units, 2)
	assert.Equal(t, []markdown.Block{para("p1")}, units[0])
	assert.Equal(t, []markdown.Block{para("p1"), para("p2")}, units[1])
	//
	units[1][0].(markdown.Paragraph).Spans[0] = markdown.Text("changed")
	assert.Equal(t, para("p1"), units[0][0], "units must not share blocks")
}

func TestClassify(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slides.deck")
	defer teardown()
	//
	c := Classify([]markdown.Block{para("a"), pic("p"), para("b")})
	assert.Equal(t, TextAndPicture{
		Blocks:  []markdown.Block{para("a"), para("b")},
		Picture: pic("p"),
	}, c)
	assert.Equal(t, TextAndPictureLayout, c.Layout())
	//
	c = Classify([]markdown.Block{pic("p1"), pic("p2")})
	assert.Equal(t, OnlyPicture{Picture: pic("p1")}, c)
	//
	c = Classify([]markdown.Block{para("a")})
	assert.Equal(t, OnlyText{Blocks: []markdown.Block{para("a")}}, c)
	//
	c = Classify(nil)
	assert.Equal(t, OnlyTextLayout, c.Layout())
	assert.Empty(t, Blocks(c))
	_, ok := Picture(c)
	assert.False(t, ok)
}

func testDocument() markdown.Document {
	return markdown.Document{
		Title:  markdown.Title{markdown.Text("Talk")},
		Author: "me",
		Slides: []markdown.ParsedSlide{
			{
				Title:  markdown.Title{markdown.Bold("First")},
				Blocks: []markdown.Block{para("a"), newslide, para("b"), newslide, pic("x.png")},
			},
			{
				Title:  markdown.Title{markdown.Text("Second")},
				Blocks: []markdown.Block{para("c")},
			},
		},
	}
}

func TestPostprocess(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slides.deck")
	defer teardown()
	//
	doc := testDocument()
	d := Postprocess(doc)
	assert.Equal(t, doc.Title, d.Title)
	assert.Equal(t, "me", d.Author)
	require.Len(t, d.Slides, 4)
	for i := 0; i < 3; i++ {
		assert.Equal(t, doc.Slides[0].Title, d.Slides[i].Title)
	}
	assert.Equal(t, OnlyText{Blocks: []markdown.Block{para("a")}}, d.Slides[0].Contents)
	assert.Equal(t, OnlyText{Blocks: []markdown.Block{para("b")}}, d.Slides[1].Contents)
	assert.Equal(t, OnlyPicture{Picture: pic("x.png")}, d.Slides[2].Contents)
	assert.Equal(t, markdown.Title{markdown.Text("Second")}, d.Slides[3].Title)
	assert.Equal(t, []markdown.Picture{pic("x.png")}, d.Pictures())
}

func TestPostprocessCarryForward(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slides.deck")
	defer teardown()
	//
	d := Postprocess(testDocument(), WithSplitMode(CarryForward))
	require.Len(t, d.Slides, 4)
	assert.Equal(t, TextAndPicture{
		Blocks:  []markdown.Block{para("a"), para("b")},
		Picture: pic("x.png"),
	}, d.Slides[2].Contents)
}

func TestPostprocessDoesNotAlias(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slides.deck")
	defer teardown()
	//
	doc := testDocument()
	d := Postprocess(doc)
	d.Title[0] = markdown.Text("changed")
	d.Slides[0].Title[0] = markdown.Text("changed")
	Blocks(d.Slides[0].Contents)[0].(markdown.Paragraph).Spans[0] = markdown.Text("changed")
	assert.Equal(t, testDocument(), doc)
	assert.Equal(t, markdown.Title{markdown.Bold("First")}, d.Slides[1].Title)
}

func TestPostprocessIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slides.deck")
	defer teardown()
	//
	doc := testDocument()
	assert.Equal(t, Postprocess(doc), Postprocess(doc))
}

func TestParseSplitMode(t *testing.T) {
	m, err := ParseSplitMode("carry")
	require.NoError(t, err)
	assert.Equal(t, CarryForward, m)
	m, err = ParseSplitMode("")
	require.NoError(t, err)
	assert.Equal(t, ResetOnSplit, m)
	_, err = ParseSplitMode("sideways")
	assert.Error(t, err)
	assert.Equal(t, "carry", CarryForward.String())
}

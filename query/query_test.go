package query

import (
	"testing"

	"github.com/npillmayer/cords"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"github.com/npillmayer/wikitext/ast"
	"github.com/npillmayer/wikitext/parser"
)

func mustParse(t *testing.T, input string) []*ast.Node {
	nodes, _, err := parser.Parse(input, nil)
	assert.NoError(t, err)
	return nodes
}

func TestCollectTemplates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.query")
	defer teardown()
	//
	nodes := mustParse(t, "{{a}} and {{b|inner {{c}}|k=v}}")
	tmpls := Templates(nodes)
	if assert.Len(t, tmpls, 3) {
		assert.Equal(t, "a", tmpls[0].Name)
		assert.Equal(t, "b", tmpls[1].Name)
		assert.Equal(t, "c", tmpls[2].Name)
	}
}

func TestCollectLinksAndCategories(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.query")
	defer teardown()
	//
	nodes := mustParse(t, "[[a|b]] [[Category:X]] [[File:f.png|40px]] [[de:T]]")
	links := Links(nodes)
	if assert.Len(t, links, 1) {
		assert.Equal(t, "a", links[0].Target)
	}
	assert.Equal(t, []string{"X"}, Categories(nodes))
	files := Files(nodes)
	if assert.Len(t, files, 1) {
		assert.Equal(t, "f.png", files[0].Name)
	}
}

func TestCollectHeadersAndTables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.query")
	defer teardown()
	//
	nodes := mustParse(t, "== A ==\ntext\n{|\n| c\n|}")
	assert.Len(t, Headers(nodes), 1)
	assert.Len(t, Tables(nodes), 1)
}

func TestCollectRefs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.query")
	defer teardown()
	//
	nodes := mustParse(t, `a<ref name="n">cite</ref>b<ref group=g />`)
	refs := Refs(nodes)
	if assert.Len(t, refs, 2) {
		assert.Equal(t, "n", refs[0].Name.Unwrap())
		assert.Equal(t, "g", refs[1].Group.Unwrap())
	}
}

func TestExtractText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.query")
	defer teardown()
	//
	nodes := mustParse(t, "''Styled'' text with a [[target|link label]]<!-- nope -->.")
	assert.Equal(t, "Styled text with a link label.", ExtractText(nodes))
}

func TestExtractTextDecodesEntities(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.query")
	defer teardown()
	//
	nodes := mustParse(t, "Tom &amp; Jerry &ndash; cartoons")
	assert.Equal(t, "Tom & Jerry – cartoons", ExtractText(nodes))
}

func TestExtractTextSkipsRefs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.query")
	defer teardown()
	//
	nodes := mustParse(t, `prose<ref name=x>citation</ref> continues`)
	assert.Equal(t, "prose continues", ExtractText(nodes))
}

func TestTextCordFragments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.query")
	defer teardown()
	//
	nodes := mustParse(t, "one '''two''' three")
	cord := TextCord(nodes)
	assert.False(t, cord.IsVoid())
	count := 0
	cord.EachLeaf(func(leaf cords.Leaf, pos uint64) error {
		count++
		return nil
	})
	assert.Equal(t, 3, count)
}

func TestWords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.query")
	defer teardown()
	//
	nodes := mustParse(t, "The ''quick'' brown fox, so to say.")
	words := Words(nodes)
	assert.Equal(t, []string{"The", "quick", "brown", "fox", "so", "to", "say"}, words)
}

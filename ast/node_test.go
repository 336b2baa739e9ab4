package ast

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestNodeString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.ast")
	defer teardown()
	//
	n := NewNode(Bold, nil)
	n.AppendChild(NewText("X"))
	assert.Equal(t, `bold[text("X")]`, n.String())
	assert.False(t, n.IsLeaf())
	assert.True(t, n.Children[0].IsLeaf())
}

func TestArgText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.ast")
	defer teardown()
	//
	arg := Positional([]Fragment{{Literal: "40px"}})
	value, ok := arg.Text()
	assert.True(t, ok)
	assert.Equal(t, "40px", value)
	//
	arg = Named("k", []Fragment{{Literal: "a"}, {Node: NewText("b")}})
	_, ok = arg.Text()
	assert.False(t, ok)
	assert.True(t, arg.Named)
}

func TestWalkOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.ast")
	defer teardown()
	//
	root := NewNode(Italic, nil)
	root.AppendChild(NewText("a"))
	bold := NewNode(Bold, nil)
	bold.AppendChild(NewText("b"))
	root.AppendChild(bold)
	//
	var kinds []NodeKind
	Walk(root, func(n *Node) bool {
		kinds = append(kinds, n.Kind)
		return true
	})
	assert.Equal(t, []NodeKind{Italic, Text, Bold, Text}, kinds)
}

func TestWalkIntoTemplateArgs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.ast")
	defer teardown()
	//
	inner := NewNode(Template, TemplatePayload{Name: "inner"})
	outer := NewNode(Template, TemplatePayload{
		Name: "outer",
		Args: []Arg{Positional([]Fragment{{Literal: "x"}, {Node: inner}})},
	})
	var names []string
	Walk(outer, func(n *Node) bool {
		if n.Kind == Template {
			names = append(names, n.Payload.(TemplatePayload).Name)
		}
		return true
	})
	assert.Equal(t, []string{"outer", "inner"}, names)
}

func TestWalkPrune(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.ast")
	defer teardown()
	//
	root := NewNode(Bold, nil)
	root.AppendChild(NewText("hidden"))
	count := 0
	Walk(root, func(n *Node) bool {
		count++
		return false // prune below the root
	})
	assert.Equal(t, 1, count)
}

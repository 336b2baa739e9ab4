/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>

*/
package query

import (
	"strings"

	"github.com/npillmayer/cords"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax29"
	"golang.org/x/net/html"

	"github.com/npillmayer/wikitext/ast"
)

// TextCord flattens the visible prose of a forest into a text cord. The
// fragment organization of the cord reflects the node structure of the
// trees. Contributing to the prose are text leaves, the display strings
// of internal links, and nowiki regions; entity references are decoded.
// Comments, references, categories, files and template invocations do not
// contribute.
func TextCord(nodes []*ast.Node) cords.Cord {
	b := cords.NewBuilder()
	ast.WalkAll(nodes, func(n *ast.Node) bool {
		switch n.Kind {
		case ast.Text:
			appendProse(b, n, n.Payload.(ast.TextPayload).Content)
		case ast.Link:
			appendProse(b, n, n.Payload.(ast.LinkPayload).Display)
		case ast.NoWiki:
			appendProse(b, n, n.Payload.(ast.NoWikiPayload).Content)
		case ast.Comment, ast.Ref, ast.Template, ast.Category, ast.File, ast.Interlang:
			return false
		}
		return true
	})
	return b.Cord()
}

func appendProse(b *cords.Builder, n *ast.Node, content string) {
	if content == "" {
		return
	}
	content = html.UnescapeString(content)
	b.Append(&proseLeaf{node: n, content: content})
}

// ExtractText returns the visible prose of a forest as a plain string,
// with surrounding whitespace trimmed.
func ExtractText(nodes []*ast.Node) string {
	cord := TextCord(nodes)
	if cord.IsVoid() {
		return ""
	}
	var sb strings.Builder
	cord.EachLeaf(func(leaf cords.Leaf, pos uint64) error {
		sb.WriteString(leaf.String())
		return nil
	})
	return strings.TrimSpace(sb.String())
}

// Words splits the visible prose of a forest into words according to
// Unicode Annex #29 word boundaries. Whitespace and punctuation-only
// segments are dropped.
func Words(nodes []*ast.Node) []string {
	text := ExtractText(nodes)
	if text == "" {
		return nil
	}
	breaker := uax29.NewWordBreaker(1)
	seg := segment.NewSegmenter(breaker)
	seg.Init(strings.NewReader(text))
	var words []string
	for seg.Next() {
		word := strings.TrimSpace(seg.Text())
		if word != "" && !isPunctOnly(word) {
			words = append(words, word)
		}
	}
	return words
}

func isPunctOnly(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return false
		case r > 127:
			return false
		}
	}
	return true
}

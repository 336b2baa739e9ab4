/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>

*/
package parser

import (
	"github.com/npillmayer/wikitext/ast"
)

// parseListItem matches a single-line list item: at line start, a
// homogeneous run of '*' or '#' markers followed by at least one space or
// tab. The marker count is the nesting level. Content runs to the end of
// the line; the newline itself is left for the outer scanner, so the line
// breaks between consecutive items survive as text nodes.
func (p *parser) parseListItem() *ast.Node {
	if !p.atLineStart() {
		return nil
	}
	marker := p.peek()
	if marker != '*' && marker != '#' {
		return nil
	}
	mark := p.pos
	level := 0
	for p.peek() == marker {
		level++
		p.pos++
	}
	if c := p.peek(); c != ' ' && c != '\t' {
		p.pos = mark
		return nil
	}
	p.skipInlineSpace()
	kind := ast.Unordered
	if marker == '#' {
		kind = ast.Ordered
	}
	n := ast.NewNode(ast.ListItem, ast.ListItemPayload{Kind: kind, Level: level})
	n.Children = p.parseSequence(lineBody)
	return n
}

// parseHRule matches four or more '-' characters at line start, producing
// a horizontal rule. Trailing dashes beyond the fourth are consumed as
// part of the rule; other text on the same line is left for the outer
// scanner.
func (p *parser) parseHRule() *ast.Node {
	if !p.atLineStart() || !p.hasPrefix("----") {
		return nil
	}
	for p.peek() == '-' {
		p.pos++
	}
	return ast.NewNode(ast.HRule, nil)
}

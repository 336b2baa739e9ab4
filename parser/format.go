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

// Apostrophe runs are matched longest-first: ''''' before ''' before ''.
// The driver encodes this by ordering the alternatives.

// parseBoldItalic matches ''''' body '''''. The body is emitted as
// bold(italic(body)) and may not contain further bold or italic markup.
func (p *parser) parseBoldItalic() *ast.Node {
	if !p.hasPrefix("'''''") {
		return nil
	}
	mark := p.pos
	p.pos += 5
	children := p.parseSequence(noFormat)
	if !p.hasPrefix("'''''") {
		p.pos = mark
		return nil
	}
	p.pos += 5
	italic := ast.NewNode(ast.Italic, nil)
	italic.Children = children
	bold := ast.NewNode(ast.Bold, nil)
	return bold.AppendChild(italic)
}

// parseBold matches ''' body '''. Empty bodies are legal.
func (p *parser) parseBold() *ast.Node {
	if !p.hasPrefix("'''") {
		return nil
	}
	mark := p.pos
	p.pos += 3
	children := p.parseSequence(boldBody)
	if !p.hasPrefix("'''") {
		p.pos = mark
		return nil
	}
	p.pos += 3
	n := ast.NewNode(ast.Bold, nil)
	n.Children = children
	return n
}

// parseItalic matches '' body ''. A ''' inside the body starts a nested
// bold rather than terminating the italic.
func (p *parser) parseItalic() *ast.Node {
	if !p.hasPrefix("''") {
		return nil
	}
	mark := p.pos
	p.pos += 2
	children := p.parseSequence(italicBody)
	if !p.hasPrefix("''") || p.hasPrefix("'''") {
		p.pos = mark
		return nil
	}
	p.pos += 2
	n := ast.NewNode(ast.Italic, nil)
	n.Children = children
	return n
}

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>

*/
package parser

import (
	"strings"

	"github.com/npillmayer/wikitext/ast"
)

// Comments and nowiki regions capture their body verbatim. Both succeed
// only if the terminator is present.

func (p *parser) parseComment() *ast.Node {
	if !p.hasPrefix("<!--") {
		return nil
	}
	end := strings.Index(p.input[p.pos+4:], "-->")
	if end < 0 {
		return nil
	}
	body := p.input[p.pos+4 : p.pos+4+end]
	p.pos += 4 + end + 3
	return ast.NewNode(ast.Comment, ast.CommentPayload{Content: body})
}

func (p *parser) parseNoWiki() *ast.Node {
	if !p.hasPrefix("<nowiki>") {
		return nil
	}
	end := strings.Index(p.input[p.pos+8:], "</nowiki>")
	if end < 0 {
		return nil
	}
	body := p.input[p.pos+8 : p.pos+8+end]
	p.pos += 8 + end + 9
	return ast.NewNode(ast.NoWiki, ast.NoWikiPayload{Content: body})
}

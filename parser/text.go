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

// parseText scans a maximal run of plain text for mode m. The run ends
// where a character could open another construct, determined by up to four
// bytes of lookahead. A construct character whose lookahead rules the
// construct out is consumed as ordinary text, which is how broken markup
// degrades to plain text.
func (p *parser) parseText(m parseMode) *ast.Node {
	start := p.pos
	for p.pos < len(p.input) {
		if p.stopsText(m) {
			break
		}
		p.pos++
	}
	if p.pos == start {
		return nil
	}
	return ast.NewText(p.input[start:p.pos])
}

// stopsText decides whether the byte at the cursor may open a construct in
// mode m and must therefore end the current text run.
func (p *parser) stopsText(m parseMode) bool {
	c := p.input[p.pos]
	switch m {
	case lineBody:
		if c == '\n' {
			return true
		}
	case cellBody:
		if c == '\n' || c == '|' {
			return true
		}
	}
	switch c {
	case '\'':
		return p.peekAt(1) == '\''
	case '{':
		next := p.peekAt(1)
		return next == '{' || next == '|'
	case '[':
		return p.peekAt(1) == '['
	case '=':
		return p.peekAt(1) == '='
	case '<':
		next := p.peekAt(1)
		return isASCIILetter(next) || next == '/' || p.hasPrefix("<!--")
	case '*', '#':
		if !p.atLineStart() {
			return false
		}
		next := p.peekAt(1)
		return next == c || next == ' ' || next == '\t'
	case '-':
		return p.atLineStart() && p.hasPrefix("----")
	}
	return false
}

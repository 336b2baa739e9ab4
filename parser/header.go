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

// parseHeader matches a run of 1 to 6 '=' characters at line start, a
// body, and a closing '=' run at the end of the line. The closing run
// length need not equal the opening one. The body is re-parsed by the
// top-level grammar; a single space of padding on either side is dropped.
func (p *parser) parseHeader() *ast.Node {
	if !p.atLineStart() || p.peek() != '=' {
		return nil
	}
	mark := p.pos
	level := 0
	for p.peek() == '=' && level < 6 {
		level++
		p.pos++
	}
	eol := strings.IndexByte(p.input[p.pos:], '\n')
	var line string
	if eol < 0 {
		line = p.input[p.pos:]
		eol = len(line)
	} else {
		line = p.input[p.pos : p.pos+eol]
	}
	closing := 0
	for closing < len(line) && line[len(line)-1-closing] == '=' {
		closing++
	}
	if closing == 0 {
		p.pos = mark
		return nil
	}
	if closing > 6 {
		closing = 6
	}
	body := line[:len(line)-closing]
	body = strings.TrimPrefix(body, " ")
	body = strings.TrimSuffix(body, " ")
	p.pos += eol
	n := ast.NewNode(ast.Header, ast.HeaderPayload{Level: level})
	n.Children = p.reenter(body, topLevel)
	return n
}

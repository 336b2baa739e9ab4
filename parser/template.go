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

// parseTemplate matches {{ name | arg | … }}. The name may not contain
// '|', '}' or line breaks and must be non-empty after trimming. Arguments
// are parsed by the value sub-grammar; duplicate named arguments are kept
// in order.
func (p *parser) parseTemplate() *ast.Node {
	if !p.hasPrefix("{{") {
		return nil
	}
	mark := p.pos
	p.pos += 2
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c == '|' || c == '}' || c == '\n' || c == '\r' {
			break
		}
		p.pos++
	}
	name := strings.TrimSpace(p.input[start:p.pos])
	if name == "" {
		p.pos = mark
		return nil
	}
	var args []ast.Arg
	for {
		p.skipSpace()
		if p.hasPrefix("}}") {
			p.pos += 2
			return ast.NewNode(ast.Template, ast.TemplatePayload{Name: name, Args: args})
		}
		if p.peek() != '|' {
			p.pos = mark
			return nil
		}
		p.pos++
		if arg, ok := p.parseArgument(); ok {
			args = append(args, arg)
		}
	}
}

// parseArgument parses one template argument after its '|' prefix. ok is
// false for arguments whose value collapses to nothing; those are
// discarded by the caller.
func (p *parser) parseArgument() (ast.Arg, bool) {
	mark := p.pos
	p.skipSpace()
	kstart := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c == '=' || c == '|' || c == '}' || c == '\n' {
			break
		}
		p.pos++
	}
	if p.peek() == '=' && p.pos > kstart {
		key := strings.TrimSpace(p.input[kstart:p.pos])
		p.pos++
		value := p.parseArgValue()
		if len(value) == 0 {
			return ast.Arg{}, false
		}
		return ast.Named(key, value), true
	}
	p.pos = mark
	value := p.parseArgValue()
	if len(value) == 0 {
		return ast.Arg{}, false
	}
	return ast.Positional(value), true
}

// parseArgValue collects the fragments of an argument value up to the
// terminating '|' or '}}'; a line break, or a construct opener whose parse
// fails, ends the value as well. Leading whitespace is stripped from the first
// literal, trailing pure-whitespace runs from the end.
func (p *parser) parseArgValue() []ast.Fragment {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.maxDepth {
		if p.limitPos < 0 {
			p.limitPos = p.pos
		}
		return nil
	}
	var frags []ast.Fragment
	for p.pos < len(p.input) {
		if p.peek() == '|' || p.hasPrefix("}}") {
			break
		}
		if n := p.first(
			p.parseBoldItalic, p.parseBold, p.parseItalic,
			p.parseTemplate, p.parseLink, p.parseComment,
			p.parseTagContainer, p.parseTagSelfClosing,
		); n != nil {
			frags = append(frags, ast.Fragment{Node: n})
			continue
		}
		lit := p.scanValueText()
		if lit == "" {
			break
		}
		frags = append(frags, ast.Fragment{Literal: lit})
	}
	return trimValue(frags)
}

// scanValueText consumes a maximal literal run inside an argument value.
// The exclusion set is '{', '|', '}', newline, apostrophe, '[' and '<'.
// '|' and newline always end the run; the others are admitted back when
// the lookahead disproves a construct start.
func (p *parser) scanValueText() string {
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		stop := false
		switch c {
		case '|', '\n':
			stop = true
		case '{':
			next := p.peekAt(1)
			stop = next == '{' || next == '|'
		case '}':
			stop = p.peekAt(1) == '}'
		case '\'':
			stop = p.peekAt(1) == '\''
		case '[':
			stop = p.peekAt(1) == '['
		case '<':
			next := p.peekAt(1)
			stop = isASCIILetter(next) || next == '/' || p.hasPrefix("<!--")
		}
		if stop {
			break
		}
		p.pos++
	}
	return p.input[start:p.pos]
}

// trimValue strips leading whitespace from the first literal fragment and
// trailing whitespace runs from the end of the value.
func trimValue(frags []ast.Fragment) []ast.Fragment {
	if len(frags) > 0 && !frags[0].IsNode() {
		frags[0].Literal = strings.TrimLeft(frags[0].Literal, " \t\n\r")
		if frags[0].Literal == "" {
			frags = frags[1:]
		}
	}
	for len(frags) > 0 {
		last := &frags[len(frags)-1]
		if last.IsNode() {
			break
		}
		last.Literal = strings.TrimRight(last.Literal, " \t\n\r")
		if last.Literal != "" {
			break
		}
		frags = frags[:len(frags)-1]
	}
	return frags
}

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>

*/
package parser

import (
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/npillmayer/wikitext/ast"
	"github.com/npillmayer/wikitext/core/option"
)

// openTag is the result of scanning an HTML-like opening tag.
type openTag struct {
	name       string
	attrs      *linkedhashmap.Map
	selfClosed bool
}

// attrMap exports the scanned attributes. For duplicate attribute names
// the last occurrence wins.
func (t openTag) attrMap() map[string]string {
	if t.attrs.Size() == 0 {
		return nil
	}
	m := make(map[string]string, t.attrs.Size())
	t.attrs.Each(func(key interface{}, value interface{}) {
		m[key.(string)] = value.(string)
	})
	return m
}

func (t openTag) attr(name string) option.StringT {
	if v, ok := t.attrs.Get(name); ok {
		return option.SomeString(v.(string))
	}
	return option.String()
}

// scanOpenTag scans '<' name attrs '>' or '<' name attrs '/>' and leaves
// the cursor after the closing '>'. On failure the cursor is restored.
func (p *parser) scanOpenTag() (openTag, bool) {
	tag := openTag{attrs: linkedhashmap.New()}
	if p.peek() != '<' || !isASCIILetter(p.peekAt(1)) {
		return tag, false
	}
	mark := p.pos
	p.pos++
	start := p.pos
	for isASCIILetter(p.peek()) {
		p.pos++
	}
	tag.name = p.input[start:p.pos]
	for {
		p.skipSpace()
		switch p.peek() {
		case '>':
			p.pos++
			return tag, true
		case '/':
			if p.peekAt(1) != '>' {
				p.pos = mark
				return tag, false
			}
			p.pos += 2
			tag.selfClosed = true
			return tag, true
		case 0:
			p.pos = mark
			return tag, false
		}
		name, value, ok := p.scanAttribute()
		if !ok {
			p.pos = mark
			return tag, false
		}
		tag.attrs.Put(name, value)
	}
}

// scanAttribute scans one name=value attribute. Values are double-quoted,
// single-quoted, or bare tokens.
func (p *parser) scanAttribute() (string, string, bool) {
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c == '=' || c == '>' || c == '/' || c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			break
		}
		p.pos++
	}
	if p.pos == start || p.peek() != '=' {
		return "", "", false
	}
	name := p.input[start:p.pos]
	p.pos++
	switch quote := p.peek(); quote {
	case '"', '\'':
		p.pos++
		vstart := p.pos
		for p.pos < len(p.input) && p.input[p.pos] != quote {
			p.pos++
		}
		if p.pos >= len(p.input) {
			return "", "", false
		}
		value := p.input[vstart:p.pos]
		p.pos++
		return name, value, true
	}
	vstart := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '>' || c == '/' {
			break
		}
		p.pos++
	}
	if p.pos == vstart {
		return "", "", false
	}
	return name, p.input[vstart:p.pos], true
}

// scanCloseTag scans '</' name '>' and reports the closer's name. The
// cursor is restored on failure.
func (p *parser) scanCloseTag() (string, bool) {
	if !p.hasPrefix("</") {
		return "", false
	}
	mark := p.pos
	p.pos += 2
	start := p.pos
	for isASCIILetter(p.peek()) {
		p.pos++
	}
	if p.pos == start {
		p.pos = mark
		return "", false
	}
	name := p.input[start:p.pos]
	p.skipSpace()
	if p.peek() != '>' {
		p.pos = mark
		return "", false
	}
	p.pos++
	return name, true
}

// parseTagContainer matches <name attrs>body</other>. The closing tag
// name is consumed but not verified against the opener.
func (p *parser) parseTagContainer() *ast.Node {
	mark := p.pos
	tag, ok := p.scanOpenTag()
	if !ok || tag.selfClosed {
		p.pos = mark
		return nil
	}
	children := p.parseSequence(tagBody)
	if _, ok := p.scanCloseTag(); !ok {
		p.pos = mark
		return nil
	}
	n := ast.NewNode(ast.Tag, ast.TagPayload{Name: tag.name, Attrs: tag.attrMap()})
	n.Children = children
	return n
}

// parseTagSelfClosing matches <name attrs/> as well as a bare <name attrs>
// without a body, e.g. <br>.
func (p *parser) parseTagSelfClosing() *ast.Node {
	tag, ok := p.scanOpenTag()
	if !ok {
		return nil
	}
	return ast.NewNode(ast.Tag, ast.TagPayload{
		Name:        tag.name,
		Attrs:       tag.attrMap(),
		SelfClosing: true,
	})
}

// parseRefContainer matches <ref attrs>body</ref>. The name and group
// attributes become the payload, any others are dropped.
func (p *parser) parseRefContainer() *ast.Node {
	mark := p.pos
	tag, ok := p.scanOpenTag()
	if !ok || tag.selfClosed || !strings.EqualFold(tag.name, "ref") {
		p.pos = mark
		return nil
	}
	children := p.parseSequence(tagBody)
	closer, ok := p.scanCloseTag()
	if !ok || !strings.EqualFold(closer, "ref") {
		p.pos = mark
		return nil
	}
	n := ast.NewNode(ast.Ref, ast.RefPayload{
		Name:  tag.attr("name"),
		Group: tag.attr("group"),
	})
	n.Children = children
	return n
}

// parseRefSelfClosing matches <ref attrs/>.
func (p *parser) parseRefSelfClosing() *ast.Node {
	mark := p.pos
	tag, ok := p.scanOpenTag()
	if !ok || !tag.selfClosed || !strings.EqualFold(tag.name, "ref") {
		p.pos = mark
		return nil
	}
	return ast.NewNode(ast.Ref, ast.RefPayload{
		Name:  tag.attr("name"),
		Group: tag.attr("group"),
	})
}

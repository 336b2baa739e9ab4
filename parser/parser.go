/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>

*/
package parser

import (
	"strings"

	"github.com/derekparker/trie"
	"golang.org/x/text/unicode/norm"

	"github.com/npillmayer/wikitext/ast"
	"github.com/npillmayer/wikitext/core"
	"github.com/npillmayer/wikitext/core/parameters"
)

// parseMode selects the set of constructs a sequence will recognize and
// the terminator that ends it. Sub-grammars re-enter parseSequence with a
// tighter mode.
type parseMode int8

const (
	topLevel parseMode = iota // full grammar, terminated by end of input
	tagBody                   // inside an HTML-like container tag
	boldBody                  // inside ''' … '''
	italicBody                // inside '' … ''
	noFormat                  // inside ''''' … ''''', no further formatting
	lineBody                  // single-line content of a list item
	cellBody                  // content of a table cell
)

// parser is the cursor over the input. Sub-parsers either produce a node
// and advance pos, or leave pos untouched and report failure.
type parser struct {
	input    string
	pos      int
	depth    int
	maxDepth int
	limitPos int // first position at which the depth cap was hit, or -1
	aliases  *trie.Trie
}

func newParser(input string, regs *parameters.ParserRegisters) *parser {
	if regs.B(parameters.P_NORMALIZE) {
		input = norm.NFC.String(input)
	}
	input = strings.Trim(input, " \t\n\r\f\v")
	p := &parser{
		input:    input,
		maxDepth: regs.N(parameters.P_MAXDEPTH),
		limitPos: -1,
	}
	p.aliases = aliasTable(regs.S(parameters.P_NSALIASES))
	return p
}

// aliasTable builds the namespace lookup from an "Alias=Canonical" comma
// separated list. The canonical namespaces are always present.
func aliasTable(spec string) *trie.Trie {
	t := trie.New()
	t.Add("Category", "Category")
	t.Add("File", "File")
	for _, pair := range strings.Split(spec, ",") {
		eq := strings.IndexByte(pair, '=')
		if eq <= 0 {
			continue
		}
		alias := strings.TrimSpace(pair[:eq])
		canon := strings.TrimSpace(pair[eq+1:])
		if alias == "" || canon == "" {
			continue
		}
		t.Add(alias, canon)
	}
	return t
}

// canonicalNamespace resolves a namespace prefix through the alias table.
// ok is false for prefixes which are not a known namespace.
func (p *parser) canonicalNamespace(prefix string) (string, bool) {
	node, ok := p.aliases.Find(prefix)
	if !ok {
		return "", false
	}
	return node.Meta().(string), true
}

// Parse consumes input and returns the parsed nodes together with the
// unconsumed remainder. Broken markup is demoted to plain text, so the
// remainder is non-empty only when the recursion cap was exceeded; that
// case also returns a non-nil error, with the nodes parsed up to the
// offending position.
func Parse(input string, regs *parameters.ParserRegisters) ([]*ast.Node, string, error) {
	if regs == nil {
		regs = parameters.NewParserRegisters()
	}
	p := newParser(input, regs)
	nodes := p.parseSequence(topLevel)
	if p.limitPos >= 0 {
		tracer().Errorf("nesting depth cap of %d exceeded at position %d", p.maxDepth, p.limitPos)
		return nodes, p.input[p.limitPos:], core.Error(core.ELIMIT, "wikitext nesting exceeds depth limit")
	}
	return nodes, p.input[p.pos:], nil
}

// parseSequence is the grammar's driver loop. It applies the ordered list
// of alternatives for mode m until the mode's terminator is seen or input
// is exhausted. When no alternative matches, the byte at the cursor opened
// a construct whose parse failed; it is demoted to plain text and scanning
// continues behind it, so a malformed fragment never aborts the sequence.
func (p *parser) parseSequence(m parseMode) []*ast.Node {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.maxDepth {
		if p.limitPos < 0 {
			p.limitPos = p.pos
		}
		return nil
	}
	var nodes []*ast.Node
	for p.pos < len(p.input) && p.limitPos < 0 {
		if p.terminates(m) {
			break
		}
		n := p.parseAlternatives(m)
		if n == nil {
			if p.limitPos >= 0 {
				break
			}
			n = ast.NewText(p.input[p.pos : p.pos+1])
			p.pos++
		}
		nodes = appendNode(nodes, n)
	}
	return nodes
}

// appendNode appends n to nodes, merging adjacent text leaves so that a
// demoted delimiter and the rescanned text behind it form one node.
func appendNode(nodes []*ast.Node, n *ast.Node) []*ast.Node {
	if n.Kind == ast.Text && len(nodes) > 0 {
		if last := nodes[len(nodes)-1]; last.Kind == ast.Text {
			content := last.Payload.(ast.TextPayload).Content +
				n.Payload.(ast.TextPayload).Content
			last.Payload = ast.TextPayload{Content: content}
			return nodes
		}
	}
	return append(nodes, n)
}

// terminates checks whether the current lookahead ends a sequence in mode
// m. Terminators are not consumed.
func (p *parser) terminates(m parseMode) bool {
	switch m {
	case boldBody:
		return p.hasPrefix("'''")
	case italicBody:
		return p.hasPrefix("''") && !p.hasPrefix("'''")
	case noFormat:
		return p.hasPrefix("'''''")
	case tagBody:
		return p.hasPrefix("</")
	case lineBody:
		return p.peek() == '\n'
	case cellBody:
		return false
	}
	return false
}

func (p *parser) parseAlternatives(m parseMode) *ast.Node {
	switch m {
	case topLevel:
		return p.first(
			p.parseTemplate, p.parseHeader, p.parseComment, p.parseNoWiki,
			p.parseTable, p.parseListItem, p.parseHRule,
			p.parseBoldItalic, p.parseBold, p.parseItalic,
			p.parseLink, p.parseRefContainer, p.parseRefSelfClosing,
			p.parseTagContainer, p.parseTagSelfClosing,
			func() *ast.Node { return p.parseText(m) },
		)
	case tagBody:
		return p.first(
			p.parseTemplate, p.parseNoWiki,
			p.parseBoldItalic, p.parseBold, p.parseItalic,
			p.parseLink, p.parseRefContainer, p.parseRefSelfClosing,
			p.parseTagContainer, p.parseTagSelfClosing,
			func() *ast.Node { return p.parseText(m) },
		)
	case boldBody:
		return p.first(
			p.parseTemplate, p.parseComment, p.parseNoWiki,
			p.parseItalic,
			p.parseLink, p.parseRefContainer, p.parseRefSelfClosing,
			p.parseTagContainer, p.parseTagSelfClosing,
			func() *ast.Node { return p.parseText(m) },
		)
	case italicBody:
		return p.first(
			p.parseTemplate, p.parseComment, p.parseNoWiki,
			p.parseBold,
			p.parseLink, p.parseRefContainer, p.parseRefSelfClosing,
			p.parseTagContainer, p.parseTagSelfClosing,
			func() *ast.Node { return p.parseText(m) },
		)
	case noFormat:
		return p.first(
			p.parseTemplate, p.parseComment, p.parseNoWiki,
			p.parseLink, p.parseRefContainer, p.parseRefSelfClosing,
			p.parseTagContainer, p.parseTagSelfClosing,
			func() *ast.Node { return p.parseText(m) },
		)
	case lineBody, cellBody:
		return p.first(
			p.parseTemplate, p.parseComment, p.parseNoWiki,
			p.parseBoldItalic, p.parseBold, p.parseItalic,
			p.parseLink, p.parseRefContainer, p.parseRefSelfClosing,
			p.parseTagContainer, p.parseTagSelfClosing,
			func() *ast.Node { return p.parseText(m) },
		)
	}
	return nil
}

// first tries alternatives in order and returns the first successful node.
func (p *parser) first(alts ...func() *ast.Node) *ast.Node {
	for _, alt := range alts {
		if n := alt(); n != nil {
			return n
		}
		if p.limitPos >= 0 {
			return nil
		}
	}
	return nil
}

// reenter parses a captured fragment with a fresh cursor, sharing the
// depth accounting of p. The fragment is always consumed completely,
// except when the depth cap aborts the sub-parse.
func (p *parser) reenter(fragment string, m parseMode) []*ast.Node {
	sub := &parser{
		input:    fragment,
		depth:    p.depth,
		maxDepth: p.maxDepth,
		limitPos: -1,
		aliases:  p.aliases,
	}
	nodes := sub.parseSequence(m)
	if sub.limitPos >= 0 && p.limitPos < 0 {
		p.limitPos = p.pos
	}
	return nodes
}

// --- Cursor helpers --------------------------------------------------------

// peek returns the byte at the cursor, or 0 at end of input.
func (p *parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

// peekAt returns the byte at a relative offset from the cursor.
func (p *parser) peekAt(off int) byte {
	if p.pos+off >= len(p.input) {
		return 0
	}
	return p.input[p.pos+off]
}

func (p *parser) hasPrefix(s string) bool {
	return strings.HasPrefix(p.input[p.pos:], s)
}

// atLineStart is true at the very beginning of input and directly after a
// newline. Line-oriented constructs are only recognized here.
func (p *parser) atLineStart() bool {
	return p.pos == 0 || p.input[p.pos-1] == '\n'
}

// skipSpace advances over spaces, tabs and newlines, returning the number
// of bytes skipped.
func (p *parser) skipSpace() int {
	start := p.pos
	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return p.pos - start
		}
	}
	return p.pos - start
}

// skipInlineSpace advances over spaces and tabs only.
func (p *parser) skipInlineSpace() int {
	start := p.pos
	for p.pos < len(p.input) {
		if c := p.input[p.pos]; c == ' ' || c == '\t' {
			p.pos++
			continue
		}
		break
	}
	return p.pos - start
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

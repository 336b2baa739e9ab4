/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>

*/
package parser

import (
	"regexp"
	"strings"

	"github.com/npillmayer/wikitext/ast"
)

var interlangPattern = regexp.MustCompile(`^[a-z]{2,3}:`)

// parseLink matches [[ payload ]] and classifies the payload into link,
// category, file or inter-language link. The payload is split on the first
// '|' into target and display; both are trimmed. Display strings stay
// plain, link bodies are never re-parsed.
func (p *parser) parseLink() *ast.Node {
	if !p.hasPrefix("[[") {
		return nil
	}
	end := strings.Index(p.input[p.pos+2:], "]]")
	if end < 0 {
		return nil
	}
	payload := p.input[p.pos+2 : p.pos+2+end]
	target := payload
	display := ""
	hasDisplay := false
	if bar := strings.IndexByte(payload, '|'); bar >= 0 {
		target = payload[:bar]
		display = payload[bar+1:]
		hasDisplay = true
	}
	target = strings.TrimSpace(target)
	if target == "" {
		return nil
	}
	p.pos += 2 + end + 2
	if colon := strings.IndexByte(target, ':'); colon > 0 {
		prefix := target[:colon]
		if canon, ok := p.canonicalNamespace(prefix); ok {
			name := strings.TrimSpace(target[colon+1:])
			switch canon {
			case "Category":
				return ast.NewNode(ast.Category, ast.CategoryPayload{Name: name})
			case "File":
				return ast.NewNode(ast.File, ast.FilePayload{
					Name:   name,
					Params: fileParams(display),
				})
			}
		}
		if interlangPattern.MatchString(target) {
			return ast.NewNode(ast.Interlang, ast.InterlangPayload{
				Lang:  prefix,
				Title: strings.TrimSpace(target[colon+1:]),
			})
		}
	}
	if !hasDisplay {
		display = target
	} else {
		display = strings.TrimSpace(display)
	}
	return ast.NewNode(ast.Link, ast.LinkPayload{Target: target, Display: display})
}

// fileParams splits the display part of a file link into its
// pipe-separated parameters.
func fileParams(display string) []string {
	if display == "" {
		return nil
	}
	var params []string
	for _, seg := range strings.Split(display, "|") {
		seg = strings.TrimSpace(seg)
		if seg != "" {
			params = append(params, seg)
		}
	}
	return params
}

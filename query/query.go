/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>

*/
package query

import (
	"github.com/npillmayer/wikitext/ast"
)

// Collect returns all nodes of a given kind from a forest of trees, in
// depth-first pre-order. Template argument values are searched as well.
func Collect(nodes []*ast.Node, kind ast.NodeKind) []*ast.Node {
	var found []*ast.Node
	ast.WalkAll(nodes, func(n *ast.Node) bool {
		if n.Kind == kind {
			found = append(found, n)
		}
		return true
	})
	return found
}

// Templates returns the payloads of all template invocations in a forest,
// including templates nested in argument values.
func Templates(nodes []*ast.Node) []ast.TemplatePayload {
	var tmpls []ast.TemplatePayload
	for _, n := range Collect(nodes, ast.Template) {
		tmpls = append(tmpls, n.Payload.(ast.TemplatePayload))
	}
	return tmpls
}

// Links returns the payloads of all internal links in a forest. Categories,
// files and inter-language links are distinct kinds and not included.
func Links(nodes []*ast.Node) []ast.LinkPayload {
	var links []ast.LinkPayload
	for _, n := range Collect(nodes, ast.Link) {
		links = append(links, n.Payload.(ast.LinkPayload))
	}
	return links
}

// Categories returns the names of all categories a page is filed under.
func Categories(nodes []*ast.Node) []string {
	var cats []string
	for _, n := range Collect(nodes, ast.Category) {
		cats = append(cats, n.Payload.(ast.CategoryPayload).Name)
	}
	return cats
}

// Files returns the payloads of all file inclusions in a forest.
func Files(nodes []*ast.Node) []ast.FilePayload {
	var files []ast.FilePayload
	for _, n := range Collect(nodes, ast.File) {
		files = append(files, n.Payload.(ast.FilePayload))
	}
	return files
}

// Headers returns all header nodes of a forest in textual order.
func Headers(nodes []*ast.Node) []*ast.Node {
	return Collect(nodes, ast.Header)
}

// Tables returns all table nodes of a forest in textual order.
func Tables(nodes []*ast.Node) []*ast.Node {
	return Collect(nodes, ast.Table)
}

// Refs returns the payloads of all reference tags in a forest.
func Refs(nodes []*ast.Node) []ast.RefPayload {
	var refs []ast.RefPayload
	for _, n := range Collect(nodes, ast.Ref) {
		refs = append(refs, n.Payload.(ast.RefPayload))
	}
	return refs
}

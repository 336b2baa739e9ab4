/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>

*/
package query

import (
	"github.com/npillmayer/cords"

	"github.com/npillmayer/wikitext/ast"
)

// proseLeaf is the leaf type created for text cords from wikitext trees.
// Each leaf remembers the node it was extracted from.
type proseLeaf struct {
	node    *ast.Node
	content string
}

// Weight of a leaf is its string length in bytes.
func (l proseLeaf) Weight() uint64 {
	return uint64(len(l.content))
}

func (l proseLeaf) String() string {
	return l.content
}

// Split splits a leaf at position i, resulting in 2 new leafs.
func (l proseLeaf) Split(i uint64) (cords.Leaf, cords.Leaf) {
	left := &proseLeaf{node: l.node, content: l.content[:i]}
	right := &proseLeaf{node: l.node, content: l.content[i:]}
	return left, right
}

// Substring returns a string segment of the leaf's text fragment.
func (l proseLeaf) Substring(i, j uint64) []byte {
	return []byte(l.content)[i:j]
}

var _ cords.Leaf = proseLeaf{}

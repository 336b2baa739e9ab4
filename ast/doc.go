/*
Package ast defines the node tree produced by parsing wikitext.

Wikitext markup is represented by a closed set of node kinds, each with a
kind-specific payload and a list of child nodes. Trees are strictly
hierarchical: a node is owned by its parent and never shared. Nodes are
produced by package parser and are not mutated afterwards.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>

*/
package ast

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'wikitext.ast'.
func tracer() tracing.Trace {
	return tracing.Select("wikitext.ast")
}

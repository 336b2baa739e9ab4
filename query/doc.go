/*
Package query provides read-only inspection of wikitext trees.

Selectors collect nodes of a given kind from a tree, text extraction
flattens a tree into its visible prose, and word segmentation splits the
prose into words following Unicode Annex #29. Queries never mutate the
tree they inspect.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>

*/
package query

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'wikitext.query'.
func tracer() tracing.Trace {
	return tracing.Select("wikitext.query")
}

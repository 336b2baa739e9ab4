/*
Package parser implements a recursive-descent grammar for MediaWiki
wikitext.

The grammar is an ordered choice over the wikitext constructs, dispatching
on one or two characters of lookahead. Every sub-parser is total: it
either produces a node and advances the cursor, or fails without having
consumed input. There is no separate tokenizer and no global state; the
table and header sub-parsers capture their raw text first and re-enter
the grammar on it, the table line by line.

Parsing is permissive. Syntactically broken fragments are demoted to
plain text: where the lookahead rules stop a text run but the construct's
parse then fails, the driver consumes the opening delimiter as ordinary
text and rescans behind it. The remainder handed back to the caller is
non-empty only when the recursion cap aborts the parse.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>

*/
package parser

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'wikitext.parser'.
func tracer() tracing.Trace {
	return tracing.Select("wikitext.parser")
}

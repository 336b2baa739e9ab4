/*
Package wikitext parses MediaWiki wikitext markup into a node tree.

This is the root package of the module, holding the public entry points.
The grammar itself lives in package parser, the tree model in package ast,
and read-only tree inspection in package query. Parsing is a pure function
from string to tree: no I/O, no shared state, re-entrant, safe for
concurrent use.

Parsing is permissive. Whatever the grammar can make sense of becomes part
of the tree, and malformed markup is demoted to plain text rather than
aborting the parse. An error status is reserved for implementation limits
(recursion depth); only then is the unconsumed suffix handed back as a
remainder for the caller to inspect.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>

*/
package wikitext

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/wikitext/ast"
	"github.com/npillmayer/wikitext/core/parameters"
	"github.com/npillmayer/wikitext/parser"
)

// tracer traces with key 'wikitext'.
func tracer() tracing.Trace {
	return tracing.Select("wikitext")
}

// Status reports the overall outcome of a parse.
type Status int8

const (
	OK Status = iota
	Error
)

func (s Status) String() string {
	if s == Error {
		return "error"
	}
	return "ok"
}

// Result is the outcome of parsing a wikitext fragment. Nodes holds the
// top-level nodes in textual order. Remainder is the unconsumed suffix of
// the input, non-empty only when the recursion cap aborted the parse.
// Err is non-nil exactly when Status is Error.
type Result struct {
	Status    Status
	Nodes     []*ast.Node
	Remainder string
	Err       error
}

// Complete returns true if the whole input was consumed.
func (r Result) Complete() bool {
	return r.Remainder == ""
}

// Parse parses a wikitext fragment with default parser settings.
func Parse(input string) Result {
	return ParseWith(input, parameters.NewParserRegisters())
}

// ParseWith parses a wikitext fragment with explicit parser registers,
// which control normalization, namespace aliases and the recursion cap.
func ParseWith(input string, regs *parameters.ParserRegisters) Result {
	nodes, remainder, err := parser.Parse(input, regs)
	r := Result{Nodes: nodes, Remainder: remainder, Err: err}
	if err != nil {
		r.Status = Error
		tracer().Errorf("parse failed: %v", err)
	}
	tracer().Debugf("parsed %d top-level nodes, %d bytes remainder",
		len(nodes), len(remainder))
	return r
}

package ast

import (
	"fmt"
	"strings"

	"github.com/npillmayer/wikitext/core/option"
)

// NodeKind identifies the variant of a tree node.
type NodeKind int8

const (
	Undefined NodeKind = iota
	Text
	Bold
	Italic
	Header
	Link
	Category
	File
	Interlang
	Template
	Tag
	Comment
	NoWiki
	Ref
	ListItem
	HRule
	Table
	TableRow
	TableCell
)

func (k NodeKind) String() string {
	switch k {
	case Text:
		return "text"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Header:
		return "header"
	case Link:
		return "link"
	case Category:
		return "category"
	case File:
		return "file"
	case Interlang:
		return "interlang_link"
	case Template:
		return "template"
	case Tag:
		return "html_tag"
	case Comment:
		return "comment"
	case NoWiki:
		return "nowiki"
	case Ref:
		return "ref"
	case ListItem:
		return "list_item"
	case HRule:
		return "hrule"
	case Table:
		return "table"
	case TableRow:
		return "table_row"
	case TableCell:
		return "table_cell"
	}
	return "<undefined>"
}

// Node is the building block of a wikitext tree. Kind selects the variant,
// Payload carries the variant-specific data (nil for variants without
// payload), and Children holds sub-nodes in textual order.
type Node struct {
	Kind     NodeKind
	Payload  interface{}
	Children []*Node
}

// NewNode creates a node of a given kind with a payload.
func NewNode(kind NodeKind, payload interface{}) *Node {
	return &Node{Kind: kind, Payload: payload}
}

// NewText creates a text leaf. Text leaves always have non-empty content.
func NewText(content string) *Node {
	if content == "" {
		tracer().Errorf("text node with empty content")
	}
	return &Node{Kind: Text, Payload: TextPayload{Content: content}}
}

// AppendChild appends a child node, returning n for chaining.
func (n *Node) AppendChild(c *Node) *Node {
	n.Children = append(n.Children, c)
	return n
}

// IsLeaf returns true if n has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// String returns a compact single-line form of n, mainly for tracing and
// test failure output.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString(n.Kind.String())
	switch p := n.Payload.(type) {
	case TextPayload:
		fmt.Fprintf(&b, "(%q)", p.Content)
	case HeaderPayload:
		fmt.Fprintf(&b, "(%d)", p.Level)
	case LinkPayload:
		fmt.Fprintf(&b, "(%s|%s)", p.Target, p.Display)
	case CategoryPayload:
		fmt.Fprintf(&b, "(%s)", p.Name)
	case FilePayload:
		fmt.Fprintf(&b, "(%s%v)", p.Name, p.Params)
	case InterlangPayload:
		fmt.Fprintf(&b, "(%s:%s)", p.Lang, p.Title)
	case TemplatePayload:
		fmt.Fprintf(&b, "(%s/%d)", p.Name, len(p.Args))
	case TagPayload:
		fmt.Fprintf(&b, "(<%s>)", p.Name)
	case CommentPayload:
		fmt.Fprintf(&b, "(%q)", p.Content)
	case NoWikiPayload:
		fmt.Fprintf(&b, "(%q)", p.Content)
	case RefPayload:
		fmt.Fprintf(&b, "(name=%s group=%s)", p.Name, p.Group)
	case ListItemPayload:
		fmt.Fprintf(&b, "(%v/%d)", p.Kind, p.Level)
	case CellPayload:
		fmt.Fprintf(&b, "(%v)", p.Kind)
	}
	if len(n.Children) > 0 {
		b.WriteString("[")
		for i, c := range n.Children {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString(c.String())
		}
		b.WriteString("]")
	}
	return b.String()
}

// --- Variant payloads ------------------------------------------------------

// TextPayload is the payload of text leaves: the exact bytes consumed from
// the source, no unescaping applied.
type TextPayload struct {
	Content string
}

// HeaderPayload carries the header level, 1…6.
type HeaderPayload struct {
	Level int
}

// LinkPayload carries an internal link. Display equals Target if the link
// had no display segment.
type LinkPayload struct {
	Target  string
	Display string
}

// CategoryPayload is a link target with the category namespace stripped.
type CategoryPayload struct {
	Name string
}

// FilePayload is a file inclusion with its pipe-separated parameters.
type FilePayload struct {
	Name   string
	Params []string
}

// InterlangPayload is an inter-language link, e.g. [[de:Titel]].
type InterlangPayload struct {
	Lang  string
	Title string
}

// TemplatePayload is a template invocation. Name is non-empty after
// trimming. Args appear in source order; duplicate named arguments are
// preserved, deduplication is left to consumers.
type TemplatePayload struct {
	Name string
	Args []Arg
}

// TagPayload is an HTML-like tag. Attrs keep the last occurrence for
// duplicate attribute names; iteration order is unspecified.
type TagPayload struct {
	Name        string
	Attrs       map[string]string
	SelfClosing bool
}

// CommentPayload is the verbatim body between the comment delimiters.
type CommentPayload struct {
	Content string
}

// NoWikiPayload is the verbatim body of a nowiki region.
type NoWikiPayload struct {
	Content string
}

// RefPayload carries the name and group attributes of a reference tag,
// either of which may be unset.
type RefPayload struct {
	Name  option.StringT
	Group option.StringT
}

// ListKind discriminates ordered from unordered list items.
type ListKind int8

const (
	Unordered ListKind = iota
	Ordered
)

func (k ListKind) String() string {
	if k == Ordered {
		return "ordered"
	}
	return "unordered"
}

// ListItemPayload carries the list kind and nesting level (= marker count,
// at least 1) of a single-line list item.
type ListItemPayload struct {
	Kind  ListKind
	Level int
}

// CellKind discriminates header cells from data cells.
type CellKind int8

const (
	DataCell CellKind = iota
	HeaderCell
)

func (k CellKind) String() string {
	if k == HeaderCell {
		return "header"
	}
	return "data"
}

// CellPayload carries the cell kind. Cell attributes are parsed but not
// retained.
type CellPayload struct {
	Kind CellKind
}

// --- Template arguments ----------------------------------------------------

// Arg is one argument of a template invocation, either named or positional.
// Positional numbering is implicit by order.
type Arg struct {
	Key   string // trimmed key, empty for positional arguments
	Named bool
	Value []Fragment
}

// Fragment is one piece of a template argument value: either a literal
// string or a parsed node. Exactly one of the two is set.
type Fragment struct {
	Literal string
	Node    *Node
}

// IsNode returns true for fragments holding a parsed node.
func (f Fragment) IsNode() bool {
	return f.Node != nil
}

// Positional creates an unnamed argument.
func Positional(value []Fragment) Arg {
	return Arg{Value: value}
}

// Named creates a key-value argument.
func Named(key string, value []Fragment) Arg {
	return Arg{Key: key, Named: true, Value: value}
}

// Text collapses an argument value consisting of a single literal into a
// plain string. ok is false if the value contains nodes or more than one
// fragment.
func (a Arg) Text() (string, bool) {
	if len(a.Value) == 1 && !a.Value[0].IsNode() {
		return a.Value[0].Literal, true
	}
	return "", false
}

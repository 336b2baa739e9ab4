/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>

*/
package parser

import (
	"strings"

	"github.com/npillmayer/wikitext/ast"
)

// Tables are parsed in two passes: the body between '{|' and '|}' is
// captured verbatim, then split into lines which are grouped into rows.
// A consequence of the line-oriented strategy is that rows cannot span
// lines and templates embedding newlines inside a cell are not supported.

// parseTable matches a table starting with '{|' at line start and ending
// at the first '|}'.
func (p *parser) parseTable() *ast.Node {
	if !p.atLineStart() || !p.hasPrefix("{|") {
		return nil
	}
	end := strings.Index(p.input[p.pos+2:], "|}")
	if end < 0 {
		return nil
	}
	body := p.input[p.pos+2 : p.pos+2+end]
	p.pos += 2 + end + 2
	table := ast.NewNode(ast.Table, nil)
	for _, row := range groupRows(body) {
		table.AppendChild(p.parseRow(row))
	}
	return table
}

// groupRows splits a table body into per-row groups of cell lines. A line
// beginning with '|-' closes the current row, lines beginning with '!' or
// '|' are cells, everything else is skipped. Empty rows are dropped.
func groupRows(body string) [][]string {
	var rows [][]string
	var current []string
	flush := func() {
		if len(current) > 0 {
			rows = append(rows, current)
			current = nil
		}
	}
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "|-"):
			flush()
		case line[0] == '!' || line[0] == '|':
			current = append(current, line)
		}
	}
	flush()
	return rows
}

// parseRow turns one group of cell lines into a table row. The row is a
// header row if its first line starts with '!'.
func (p *parser) parseRow(lines []string) *ast.Node {
	kind := ast.DataCell
	if lines[0][0] == '!' {
		kind = ast.HeaderCell
	}
	row := ast.NewNode(ast.TableRow, nil)
	for _, line := range lines {
		row.AppendChild(p.parseCell(line, kind))
	}
	return row
}

// parseCell strips the cell marker and an optional attribute block, then
// re-enters the grammar on the remaining content. An attribute block is
// everything before the first " | " sequence; the space padding keeps
// pipes inside template invocations from splitting the block. Attributes
// are parsed away but not retained.
func (p *parser) parseCell(line string, kind ast.CellKind) *ast.Node {
	content := line[1:]
	if sep := strings.Index(content, " | "); sep >= 0 {
		content = content[sep+3:]
	}
	content = strings.TrimSpace(content)
	cell := ast.NewNode(ast.TableCell, ast.CellPayload{Kind: kind})
	if content != "" {
		cell.Children = p.reenter(content, cellBody)
	}
	return cell
}

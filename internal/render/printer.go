// Package render formats scanner and parser output for the command line:
// token tables, tree outlines, caret diagnostics and JSON or YAML dumps.
package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jostylr/rix-parser-sub000/foundation/rix/ast"
	"github.com/jostylr/rix-parser-sub000/foundation/rix/parser"
	"github.com/jostylr/rix-parser-sub000/foundation/rix/registry"
)

// Printer writes human-readable views of tokens, trees and errors
type Printer struct {
	out    io.Writer
	styles styles
}

// New creates a printer for w
func New(w io.Writer) *Printer {
	return &Printer{out: w, styles: newStyles(w)}
}

// Tokens prints one row per token: index, type, value and span
func (p *Printer) Tokens(tokens []parser.Token) error {
	rows := make([][]string, 0, len(tokens))
	for i, t := range tokens {
		rows = append(rows, []string{
			strconv.Itoa(i),
			t.Type.String(),
			tokenDetail(t),
			strconv.Quote(t.Value),
			fmt.Sprintf("%d:%d:%d", t.Pos.Start, t.Pos.Delimiter, t.Pos.End),
		})
	}
	return p.table([]string{"#", "TYPE", "KIND", "VALUE", "SPAN"}, rows)
}

// Symbols prints the operator table
func (p *Printer) Symbols(entries []parser.TableEntry) error {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.Spelling,
			strconv.Itoa(e.Symbol.Precedence),
			e.Symbol.Associativity.String(),
			e.Category,
		})
	}
	return p.table([]string{"SYMBOL", "PREC", "ASSOC", "CATEGORY"}, rows)
}

func tokenDetail(t parser.Token) string {
	switch t.Type {
	case parser.TokenIdentifier, parser.TokenOuterIdentifier:
		return t.Kind.String()
	case parser.TokenString:
		return t.StringKind.String()
	case parser.TokenSemicolonSequence:
		return strconv.Itoa(t.Count)
	case parser.TokenRegexLiteral:
		return t.Flags
	}
	return ""
}

func (p *Printer) table(headers []string, rows [][]string) error {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	b.WriteString(p.row(headers, widths, p.styles.header))
	for _, row := range rows {
		b.WriteString(p.row(row, widths, p.styles.kind))
	}
	_, err := io.WriteString(p.out, b.String())
	return err
}

func (p *Printer) row(cells []string, widths []int, first lipgloss.Style) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		style := p.styles.label
		switch {
		case i == 0:
			style = p.styles.muted
		case i == 1:
			style = first
		}
		parts[i] = style.Width(widths[i]).Render(cell)
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ") + "\n"
}

// Tree prints an indented outline of each statement
func (p *Printer) Tree(nodes []ast.Node) error {
	var b strings.Builder
	for _, n := range nodes {
		p.outline(&b, n, 0)
	}
	_, err := io.WriteString(p.out, b.String())
	return err
}

func (p *Printer) outline(b *strings.Builder, n ast.Node, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(p.styles.kind.Render(n.Kind().String()))
	if l := label(n); l != "" {
		b.WriteString(" ")
		b.WriteString(p.styles.label.Render(l))
	}
	pos := n.Position()
	b.WriteString(p.styles.muted.Render(fmt.Sprintf(" [%d:%d]", pos.Delimiter, pos.End)))
	b.WriteString("\n")
	for _, c := range n.Children() {
		p.outline(b, c, depth+1)
	}
}

func label(n ast.Node) string {
	switch v := n.(type) {
	case *ast.Number:
		return v.Value
	case *ast.String:
		return strconv.Quote(v.Value)
	case *ast.Comment:
		return strconv.Quote(v.Value)
	case *ast.UserIdentifier:
		return v.Name
	case *ast.SystemIdentifier:
		return v.Name + " (" + v.Info.Kind.String() + ")"
	case *ast.OuterIdentifier:
		return "@" + v.Name
	case *ast.PlaceHolder:
		return "_" + strconv.Itoa(v.Index)
	case *ast.RegexLiteral:
		return "/" + v.Pattern + "/" + v.Flags
	case *ast.EmbeddedLanguage:
		return v.Language
	case *ast.OperatorReference:
		return v.Operator
	case *ast.BinaryOperation:
		return v.Operator
	case *ast.UnaryOperation:
		return v.Operator
	case *ast.Assignment:
		return v.Operator
	case *ast.FunctionDefinition:
		return v.Name
	case *ast.PatternMatchingFunction:
		return v.Name
	case *ast.Tensor:
		return "dim " + strconv.Itoa(v.MaxDimension)
	case *ast.Derivative:
		return "order " + strconv.Itoa(v.Order)
	case *ast.Integral:
		return "order " + strconv.Itoa(v.Order)
	}
	return ""
}

// Diagnostic prints err and, when it carries a source position, the
// offending line with a caret under the column
func (p *Printer) Diagnostic(source string, err error) error {
	line, column, ok := Location(err)
	var b strings.Builder
	b.WriteString(p.styles.message.Render("error: " + err.Error()))
	b.WriteString("\n")
	if ok {
		text := ast.NewLineIndex(source).Line(line)
		gutter := strconv.Itoa(line) + " | "
		b.WriteString(p.styles.gutter.Render(gutter))
		b.WriteString(text)
		b.WriteString("\n")
		b.WriteString(strings.Repeat(" ", len(gutter)) + caretPad(text, column))
		b.WriteString(p.styles.caret.Render("^"))
		b.WriteString("\n")
	}
	_, werr := io.WriteString(p.out, b.String())
	return werr
}

// Location extracts the 1-based line and column of a scan or parse error
// anywhere in the chain of err
func Location(err error) (line, column int, ok bool) {
	var de *parser.DelimiterError
	if errors.As(err, &de) {
		return de.Line, de.Column, true
	}
	var pe *parser.ParseError
	if errors.As(err, &pe) {
		return pe.Line, pe.Column, true
	}
	return 0, 0, false
}

// caretPad returns blanks covering the text before column. Tabs are kept
// so the caret lines up with the echoed source.
func caretPad(text string, column int) string {
	var b strings.Builder
	for i, r := range []rune(text) {
		if i >= column-1 {
			break
		}
		if r == '\t' {
			b.WriteRune('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", lipgloss.Width(string(r))))
	}
	return b.String()
}

// Definitions prints registry entries sorted by name
func (p *Printer) Definitions(defs map[string]registry.Descriptor) error {
	rows := make([][]string, 0, len(defs))
	for _, name := range sortedKeys(defs) {
		d := defs[name]
		detail := ""
		switch d.Kind {
		case registry.KindFunction:
			detail = "arity " + strconv.Itoa(d.Arity)
			if d.Arity < 0 {
				detail = "variadic"
			}
		case registry.KindConstant:
			detail = fmt.Sprint(d.Value)
		case registry.KindOperator:
			detail = fmt.Sprintf("%s %s %d", d.Fixity, d.Associativity, d.Precedence)
		}
		rows = append(rows, []string{name, d.Kind.String(), detail})
	}
	return p.table([]string{"NAME", "KIND", "DETAIL"}, rows)
}

// Title prints a section heading
func (p *Printer) Title(text string) error {
	_, err := io.WriteString(p.out, p.styles.title.Render(text)+"\n")
	return err
}

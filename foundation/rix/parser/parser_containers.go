// File: parser_containers.go
// Title: RiX Container Parsing
// Description: Parenthesized groups, tuples and parameter lists, bracket
//              literals (arrays, matrices, tensors, metadata, generator
//              chains) and brace literals (sets, maps, systems, code
//              blocks, case and loop blocks, mutations).
// Author: msto63
// Version: v0.2.0
// Created: 2025-10-19
// Modified: 2025-10-20
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation
// - 2025-10-20 v0.2.0: Invalid metadata keys rejected, systems require semicolons

package parser

import (
	"fmt"

	"github.com/jostylr/rix-parser-sub000/foundation/rix/ast"
)

type parenKind int

const (
	parenEmpty parenKind = iota
	parenGrouping
	parenTuple
	parenParams
)

func isOpener(t Token) bool {
	if t.Type != TokenSymbol {
		return false
	}
	switch t.Value {
	case "(", "[", "{", "{;", "{?", "{@", "{=":
		return true
	}
	return false
}

func isCloser(t Token) bool {
	return t.Is(")") || t.Is("]") || t.Is("}")
}

// classifyParen looks ahead from the ( at open to its matching ) and
// reports what the group holds. A top-level semicolon makes a parameter
// list; otherwise a top-level comma makes a tuple.
func (s *state) classifyParen(open int) parenKind {
	depth := 0
	comma := false
	first := true
scan:
	for i := open + 1; i < len(s.tokens); i++ {
		t := s.tokens[i]
		if t.IsComment() {
			continue
		}
		if first && t.Is(")") {
			return parenEmpty
		}
		first = false

		switch {
		case t.Type == TokenEOF:
			break scan
		case isOpener(t):
			depth++
		case isCloser(t):
			if depth == 0 {
				break scan
			}
			depth--
		case depth == 0 && isTerminator(t):
			return parenParams
		case depth == 0 && t.Is(","):
			comma = true
		}
	}
	if comma {
		return parenTuple
	}
	return parenGrouping
}

func (s *state) parseParenGroup() (ast.Node, error) {
	kind := s.classifyParen(s.pos)
	open := s.advance()

	switch kind {
	case parenEmpty:
		s.advance()
		return &ast.Tuple{Base: s.base(open.Pos), Elements: []ast.Node{}}, nil

	case parenGrouping:
		expr, err := s.parseExpression(PrecStatement)
		if err != nil {
			return nil, err
		}
		if err := s.expect(")", "grouping"); err != nil {
			return nil, err
		}
		return &ast.Grouping{Base: s.base(open.Pos), Expression: expr}, nil

	case parenTuple:
		elements, err := s.parseTupleElements()
		if err != nil {
			return nil, err
		}
		return &ast.Tuple{Base: s.base(open.Pos), Elements: elements}, nil
	}

	positional, keyword, err := s.parseParameterSections(")", "parameter list")
	if err != nil {
		return nil, err
	}
	return &ast.ParameterList{Base: s.base(open.Pos), Positional: positional, Keyword: keyword}, nil
}

func (s *state) parseTupleElements() ([]ast.Node, error) {
	var elements []ast.Node
	for {
		tok := s.current()
		if tok.Is(",") {
			return nil, s.errorAt(tok, CodeInvalidContainer, "Consecutive commas in tuple")
		}
		e, err := s.parseExpression(PrecStatement)
		if err != nil {
			return nil, err
		}
		elements = append(elements, e)

		tok = s.current()
		switch {
		case tok.Is(","):
			s.advance()
			if s.current().Is(")") {
				s.advance()
				return elements, nil
			}
		case tok.Is(")"):
			s.advance()
			return elements, nil
		case tok.Type == TokenEOF:
			return nil, s.errorAt(tok, CodeMissingCloser, "Missing closing ')' for tuple")
		default:
			return nil, s.errorAt(tok, CodeUnexpectedToken,
				fmt.Sprintf("Expected ',' or ')' in tuple, found %s", tok.Describe()))
		}
	}
}

// parseParameterSections parses the inside of a call or parameter list
// after its opener: positional items, then keyword items once a
// semicolon has been seen
func (s *state) parseParameterSections(closer, construct string) (positional, keyword []ast.Node, err error) {
	positional = []ast.Node{}
	inKeyword := false
	for {
		tok := s.current()
		switch {
		case tok.Is(closer):
			s.advance()
			return positional, keyword, nil
		case tok.Type == TokenEOF:
			return nil, nil, s.errorAt(tok, CodeMissingCloser,
				fmt.Sprintf("Missing closing '%s' for %s", closer, construct))
		case isTerminator(tok):
			if inKeyword {
				return nil, nil, s.errorAt(tok, CodeUnexpectedToken,
					fmt.Sprintf("Only one ';' may separate positional and keyword items in %s", construct))
			}
			inKeyword = true
			s.advance()
			continue
		}

		item, err := s.parseExpression(PrecStatement)
		if err != nil {
			return nil, nil, err
		}
		if inKeyword {
			keyword = append(keyword, item)
		} else {
			positional = append(positional, item)
		}

		tok = s.current()
		switch {
		case tok.Is(","):
			s.advance()
		case tok.Is(closer), isTerminator(tok), tok.Type == TokenEOF:
		default:
			return nil, nil, s.errorAt(tok, CodeUnexpectedToken,
				fmt.Sprintf("Expected ',', ';' or '%s' in %s, found %s", closer, construct, tok.Describe()))
		}
	}
}

// parseArray parses a bracket literal. Separator levels decide between
// array, matrix and tensor; key := value entries attach metadata.
func (s *state) parseArray() (ast.Node, error) {
	open := s.advance()

	var (
		rows     []ast.Row
		row      []ast.Node
		all      []ast.Node
		maxLevel int
	)
elements:
	for {
		tok := s.current()
		switch {
		case tok.Is("]"):
			s.advance()
			break elements
		case tok.Type == TokenEOF:
			return nil, s.errorAt(tok, CodeMissingCloser, "Missing closing ']' for array")
		case tok.Is(","):
			return nil, s.errorAt(tok, CodeInvalidContainer, "Consecutive commas in array")
		case isTerminator(tok):
			return nil, s.errorAt(tok, CodeInvalidContainer, "Empty row in matrix")
		}

		e, err := s.parseExpression(PrecStatement)
		if err != nil {
			return nil, err
		}
		row = append(row, e)
		all = append(all, e)

		tok = s.current()
		switch {
		case tok.Is(","):
			s.advance()
		case isTerminator(tok):
			level := 1
			if tok.Type == TokenSemicolonSequence {
				level = tok.Count
			}
			maxLevel = max(maxLevel, level)
			rows = append(rows, ast.Row{Elements: row, Separator: level})
			row = nil
			s.advance()
		case tok.Is("]"):
		case tok.Type == TokenEOF:
			return nil, s.errorAt(tok, CodeMissingCloser, "Missing closing ']' for array")
		default:
			return nil, s.errorAt(tok, CodeUnexpectedToken,
				fmt.Sprintf("Expected ',', ';' or ']' in array, found %s", tok.Describe()))
		}
	}

	if len(row) > 0 {
		rows = append(rows, ast.Row{Elements: row})
	}
	base := s.base(open.Pos)

	if hasMetadata(all) {
		if maxLevel > 0 {
			return nil, s.errorAt(open, CodeInvalidContainer,
				"Cannot mix metadata with matrix or tensor syntax")
		}
		return s.buildMetadata(base, open, all)
	}

	switch {
	case maxLevel == 0:
		elements := make([]ast.Node, 0, len(all))
		for _, e := range all {
			e, err := s.generatorChain(e)
			if err != nil {
				return nil, err
			}
			elements = append(elements, e)
		}
		return &ast.Array{Base: base, Elements: elements}, nil
	case maxLevel == 1:
		return &ast.Matrix{Base: base, Rows: rows}, nil
	default:
		return &ast.Tensor{Base: base, Rows: rows, MaxDimension: maxLevel + 1}, nil
	}
}

func isDefine(n ast.Node) (*ast.Assignment, bool) {
	a, ok := n.(*ast.Assignment)
	return a, ok && a.Operator == ":="
}

// hasMetadata reports whether any element is a := entry. Entries with an
// invalid key still select metadata so buildMetadata can reject them.
func hasMetadata(elements []ast.Node) bool {
	for _, e := range elements {
		if _, ok := isDefine(e); ok {
			return true
		}
	}
	return false
}

// metadataKey returns the key named by an identifier or string target
func metadataKey(n ast.Node) (string, bool) {
	switch k := n.(type) {
	case *ast.UserIdentifier:
		return k.Name, true
	case *ast.SystemIdentifier:
		return k.Name, true
	case *ast.String:
		return k.Value, true
	}
	return "", false
}

func (s *state) buildMetadata(base ast.Base, open Token, elements []ast.Node) (ast.Node, error) {
	node := &ast.WithMetadata{Base: base, Metadata: make(map[string]ast.Node)}
	for _, e := range elements {
		if a, ok := isDefine(e); ok {
			key, ok := metadataKey(a.Target)
			if !ok {
				return nil, s.errorAtNode(a.Target, CodeInvalidContainer,
					"Metadata key must be an identifier or a string")
			}
			if _, dup := node.Metadata[key]; !dup {
				node.Keys = append(node.Keys, key)
			}
			node.Metadata[key] = a.Value
			continue
		}
		if node.Primary != nil {
			return nil, s.errorAtNode(e, CodeInvalidContainer,
				"Metadata array may hold only one primary element")
		}
		primary, err := s.generatorChain(e)
		if err != nil {
			return nil, err
		}
		node.Primary = primary
	}
	if node.Primary == nil {
		at := open.Pos.End
		node.Primary = &ast.Null{Base: ast.Base{Pos: ast.Position{Start: at, Delimiter: at, End: at}}}
	}
	return node, nil
}

func pipeOperands(n ast.Node) (ast.Node, bool) {
	switch p := n.(type) {
	case *ast.Pipe:
		return p.Left, true
	case *ast.ExplicitPipe:
		return p.Left, true
	case *ast.Map:
		return p.Left, true
	case *ast.Filter:
		return p.Left, true
	case *ast.Reduce:
		return p.Left, true
	}
	return nil, false
}

// generatorChain rewrites a left-leaning run of generator operators into
// a GeneratorChain. Other nodes are returned unchanged.
func (s *state) generatorChain(n ast.Node) (ast.Node, error) {
	var steps []ast.GeneratorStep
	piped := false
	cur := n
	for {
		if b, ok := cur.(*ast.BinaryOperation); ok && IsGeneratorOperator(b.Operator) {
			steps = append(steps, ast.GeneratorStep{Operator: b.Operator, Operand: b.Right})
			cur = b.Left
			continue
		}
		if left, ok := pipeOperands(cur); ok {
			piped = true
			cur = left
			continue
		}
		break
	}
	if len(steps) == 0 {
		return n, nil
	}
	if piped {
		return nil, s.errorAtNode(n, CodeInvalidContainer,
			"Generator chain cannot be mixed with pipe operators at the same level")
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return &ast.GeneratorChain{
		Base:      ast.Base{Pos: n.Position(), Original: n.Text()},
		Start:     cur,
		Operators: steps,
	}, nil
}

// parseItems parses separated items up to a closing brace. Blocks accept
// only semicolons as separators and tolerate empty statements. commas
// reports whether any item was followed by a comma.
func (s *state) parseItems(construct string, block bool) (items []ast.Node, commas bool, err error) {
	items = []ast.Node{}
	for {
		tok := s.current()
		switch {
		case tok.Is("}"):
			s.advance()
			return items, commas, nil
		case tok.Type == TokenEOF:
			return nil, false, s.errorAt(tok, CodeMissingCloser,
				fmt.Sprintf("Missing closing '}' for %s", construct))
		case block && isTerminator(tok):
			s.advance()
			continue
		case tok.Is(",") || isTerminator(tok):
			return nil, false, s.errorAt(tok, CodeInvalidContainer,
				fmt.Sprintf("Unexpected %s in %s", tok.Describe(), construct))
		}

		item, err := s.parseExpression(PrecStatement)
		if err != nil {
			return nil, false, err
		}
		items = append(items, item)

		tok = s.current()
		switch {
		case isTerminator(tok):
			s.advance()
		case !block && tok.Is(","):
			commas = true
			s.advance()
		case tok.Is("}"):
		case tok.Type == TokenEOF:
			return nil, false, s.errorAt(tok, CodeMissingCloser,
				fmt.Sprintf("Missing closing '}' for %s", construct))
		default:
			return nil, false, s.errorAt(tok, CodeUnexpectedToken,
				fmt.Sprintf("Unexpected token %s in %s", tok.Describe(), construct))
		}
	}
}

func (s *state) parseBrace() (ast.Node, error) {
	open := s.advance()

	switch open.Value {
	case "{;":
		items, _, err := s.parseItems("code block", true)
		if err != nil {
			return nil, err
		}
		return &ast.CodeBlock{Base: s.base(open.Pos), Statements: items}, nil
	case "{?":
		items, _, err := s.parseItems("case block", true)
		if err != nil {
			return nil, err
		}
		return &ast.Case{Base: s.base(open.Pos), Branches: items}, nil
	case "{@":
		items, _, err := s.parseItems("loop block", true)
		if err != nil {
			return nil, err
		}
		return &ast.Loop{Base: s.base(open.Pos), Parts: items}, nil
	}

	items, commas, err := s.parseItems("brace container", false)
	if err != nil {
		return nil, err
	}
	base := s.base(open.Pos)

	equations, defines := 0, 0
	for _, item := range items {
		if b, ok := item.(*ast.BinaryOperation); ok && IsEquationOperator(b.Operator) {
			equations++
		}
		if _, ok := isDefine(item); ok {
			defines++
		}
	}

	switch {
	case equations > 0:
		if equations != len(items) {
			return nil, s.errorAt(open, CodeInvalidContainer,
				"System containers may hold only equations")
		}
		if commas {
			return nil, s.errorAt(open, CodeInvalidContainer,
				"System equations must be separated by ';'")
		}
		return &ast.System{Base: base, Equations: items}, nil
	case defines > 0:
		if defines != len(items) {
			return nil, s.errorAt(open, CodeInvalidContainer,
				"Map containers may hold only key := value entries")
		}
		for _, item := range items {
			a, _ := isDefine(item)
			if _, ok := metadataKey(a.Target); !ok {
				return nil, s.errorAtNode(a.Target, CodeInvalidContainer,
					"Map key must be an identifier or a string")
			}
		}
		return &ast.MapLiteral{Base: base, Entries: items}, nil
	}
	return &ast.Set{Base: base, Elements: items}, nil
}

func (s *state) parseMutation(target ast.Node) (ast.Node, error) {
	s.advance()
	ops, _, err := s.parseItems("mutation block", false)
	if err != nil {
		return nil, err
	}
	return &ast.Mutation{Base: s.base(target.Position()), Target: target, Operations: ops}, nil
}

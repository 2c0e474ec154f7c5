// File: parser_expr.go
// Title: RiX Prefix and Infix Dispatch
// Description: Maps the current token to a prefix parse (atoms, unary
//              operators, containers) or to an infix/postfix binding that
//              extends the left operand.
// Author: msto63
// Version: v0.2.0
// Created: 2025-10-19
// Modified: 2025-10-20
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation
// - 2025-10-20 v0.2.0: Word operator descriptors kept on operator nodes

package parser

import (
	"fmt"

	"github.com/jostylr/rix-parser-sub000/foundation/rix/ast"
	"github.com/jostylr/rix-parser-sub000/foundation/rix/registry"
)

func (s *state) parsePrefix() (ast.Node, error) {
	tok := s.current()
	start := tok.Pos

	switch tok.Type {
	case TokenEOF:
		return nil, s.errorAt(tok, CodeUnexpectedToken, "Unexpected end of input")

	case TokenNumber:
		s.advance()
		return &ast.Number{Base: s.base(start), Value: tok.Value}, nil

	case TokenString:
		s.advance()
		if tok.StringKind == StringBacktick {
			return s.embeddedLanguage(tok)
		}
		return &ast.String{Base: s.base(start), Value: tok.Value, Delimiters: tok.Delimiters}, nil

	case TokenIdentifier:
		if tok.IsSystem() {
			if d := s.resolve(s.pos); d.IsOperator(registry.Prefix) {
				s.advance()
				operand, err := s.parseExpression(d.Precedence)
				if err != nil {
					return nil, err
				}
				return &ast.UnaryOperation{Base: s.base(start), Operator: tok.Value, Info: &d, Operand: operand}, nil
			}
		}
		return s.identifier(), nil

	case TokenOuterIdentifier:
		s.advance()
		return &ast.OuterIdentifier{Base: s.base(start), Name: tok.Value}, nil

	case TokenPlaceHolder:
		s.advance()
		return &ast.PlaceHolder{Base: s.base(start), Index: tok.Index}, nil

	case TokenRegexLiteral:
		s.advance()
		return &ast.RegexLiteral{Base: s.base(start), Pattern: tok.Value, Flags: tok.Flags}, nil

	case TokenSymbol:
		switch tok.Value {
		case "_":
			s.advance()
			return &ast.Null{Base: s.base(start)}, nil
		case "(":
			return s.parseParenGroup()
		case "[":
			return s.parseArray()
		case "{", "{;", "{?", "{@":
			return s.parseBrace()
		case "'":
			return s.parseIntegral()
		}

		if s.isOperatorReference(tok) {
			s.advance()
			return &ast.OperatorReference{Base: s.base(start), Operator: tok.Value}, nil
		}
		if prec, ok := LookupPrefix(tok.Value); ok {
			s.advance()
			operand, err := s.parseExpression(prec)
			if err != nil {
				return nil, err
			}
			return &ast.UnaryOperation{Base: s.base(start), Operator: tok.Value, Operand: operand}, nil
		}
	}

	return nil, s.errorAt(tok, CodeUnexpectedToken, fmt.Sprintf("Unexpected token %s", tok.Describe()))
}

// identifier consumes an identifier token and builds its node
func (s *state) identifier() ast.Node {
	tok := s.advance()
	base := s.base(tok.Pos)
	if tok.IsSystem() {
		return &ast.SystemIdentifier{Base: base, Name: tok.Value, Info: s.resolve(s.last)}
	}
	return &ast.UserIdentifier{Base: base, Name: tok.Value}
}

// isOperatorReference reports whether tok is an infix or prefix operator
// symbol glued to a parenthesized argument list, as in +(2, 3)
func (s *state) isOperatorReference(tok Token) bool {
	sym, ok := LookupSymbol(tok.Value)
	if !ok || sym.Fixity != registry.Infix {
		if _, pre := LookupPrefix(tok.Value); !pre {
			return false
		}
	}
	if !s.followedByParen(s.pos) {
		return false
	}
	switch s.classifyParen(s.pos + 1) {
	case parenTuple, parenEmpty:
		return true
	}
	return false
}

// startsOperand reports whether tok can begin the right factor of an
// implicit multiplication
func (s *state) startsOperand(tok Token) bool {
	switch tok.Type {
	case TokenNumber, TokenIdentifier, TokenOuterIdentifier, TokenPlaceHolder:
		return true
	case TokenSymbol:
		return tok.Is("(") || tok.Is("'")
	}
	return false
}

// infixBinding decides how tok extends left. ok is false when tok ends
// the expression.
func (s *state) infixBinding(left ast.Node, tok Token) (binding, bool) {
	glued := s.adjacent(s.pos)

	switch tok.Type {
	case TokenIdentifier:
		if tok.IsSystem() {
			if d := s.resolve(s.pos); d.IsOperator(registry.Infix) {
				return binding{prec: d.Precedence, parse: func(l ast.Node) (ast.Node, error) {
					return s.parseBinary(l, d.Precedence, d.Associativity, &d)
				}}, true
			}
		}
		return binding{prec: PrecMultiply, parse: s.parseJuxtaposition}, true

	case TokenNumber, TokenOuterIdentifier, TokenPlaceHolder:
		return binding{prec: PrecMultiply, parse: s.parseJuxtaposition}, true

	case TokenSymbol:
		// handled below
	default:
		return binding{}, false
	}

	switch tok.Value {
	case "(":
		if glued {
			return binding{prec: PrecPostfix, parse: s.parseCallOrProduct}, true
		}
		return binding{prec: PrecMultiply, parse: s.parseJuxtaposition}, true
	case "[":
		if glued {
			return binding{prec: PrecPostfix, parse: s.parseIndex}, true
		}
		return binding{}, false
	case "'":
		if glued {
			return binding{prec: PrecPostfix, parse: s.parseDerivative}, true
		}
		return binding{prec: PrecMultiply, parse: s.parseJuxtaposition}, true
	case "?":
		if s.followedByParen(s.pos) {
			return binding{prec: PrecPostfix, parse: s.parseAsk}, true
		}
		return binding{prec: PrecCondition, parse: func(l ast.Node) (ast.Node, error) {
			return s.parseBinary(l, PrecCondition, registry.Right, nil)
		}}, true
	case "@":
		if s.followedByParen(s.pos) {
			return binding{prec: PrecPostfix, parse: s.parseAt}, true
		}
		return binding{}, false
	case "{=":
		return binding{prec: PrecPostfix, parse: s.parseMutation}, true
	case "??":
		return binding{prec: PrecCondition, parse: s.parseTernary}, true
	case ".":
		return binding{prec: PrecProperty, parse: s.parseProperty}, true
	case ":->", ":=>":
		return binding{prec: PrecDefinition, parse: s.parseDefinition}, true
	case "->":
		return binding{prec: PrecArrow, parse: s.parseArrow}, true
	case ":=":
		return binding{prec: PrecAssignment, parse: s.parseAssignment}, true
	}

	sym, ok := LookupSymbol(tok.Value)
	if !ok || sym.Fixity != registry.Infix {
		return binding{}, false
	}
	return binding{prec: sym.Precedence, parse: func(l ast.Node) (ast.Node, error) {
		return s.parseBinary(l, sym.Precedence, sym.Associativity, nil)
	}}, true
}

// parseBinary consumes an infix operator and its right operand
// parseBinary parses the right operand of the operator at the cursor. info
// is the descriptor of a word operator, nil for symbols.
func (s *state) parseBinary(left ast.Node, prec int, assoc registry.Associativity, info *registry.Descriptor) (ast.Node, error) {
	op := s.advance()
	right, err := s.parseExpression(rightPrec(prec, assoc))
	if err != nil {
		return nil, err
	}

	base := s.base(left.Position())
	operands := ast.PipeOperands{Left: left, Right: right}
	switch op.Value {
	case "|>":
		return &ast.Pipe{Base: base, PipeOperands: operands}, nil
	case "||>":
		return &ast.ExplicitPipe{Base: base, PipeOperands: operands}, nil
	case "|>>":
		return &ast.Map{Base: base, PipeOperands: operands}, nil
	case "|>?":
		return &ast.Filter{Base: base, PipeOperands: operands}, nil
	case "|>:":
		return &ast.Reduce{Base: base, PipeOperands: operands}, nil
	}
	return &ast.BinaryOperation{Base: base, Operator: op.Value, Info: info, Left: left, Right: right}, nil
}

// parseJuxtaposition handles an operand written directly after another,
// as in 2x or 3(x+1)
func (s *state) parseJuxtaposition(left ast.Node) (ast.Node, error) {
	right, err := s.parseExpression(PrecMultiply + 1)
	if err != nil {
		return nil, err
	}
	return &ast.ImplicitMultiplication{Base: s.base(left.Position()), Left: left, Right: right}, nil
}

func (s *state) parseAssignment(left ast.Node) (ast.Node, error) {
	op := s.advance()
	value, err := s.parseExpression(PrecAssignment)
	if err != nil {
		return nil, err
	}
	return &ast.Assignment{Base: s.base(left.Position()), Operator: op.Value, Target: left, Value: value}, nil
}

func (s *state) parseTernary(cond ast.Node) (ast.Node, error) {
	s.advance()
	then, err := s.parseExpression(PrecCondition + 1)
	if err != nil {
		return nil, err
	}
	if tok := s.current(); !tok.Is("?:") {
		return nil, s.errorAt(tok, CodeUnexpectedToken, `Expected "?:" in ternary operator`)
	}
	s.advance()
	els, err := s.parseExpression(PrecCondition)
	if err != nil {
		return nil, err
	}
	return &ast.TernaryOperation{Base: s.base(cond.Position()), Condition: cond, Then: then, Else: els}, nil
}

func (s *state) parseProperty(left ast.Node) (ast.Node, error) {
	s.advance()
	tok := s.current()
	if tok.Type != TokenIdentifier {
		return nil, s.errorAt(tok, CodeUnexpectedToken,
			fmt.Sprintf("Expected property name after '.', found %s", tok.Describe()))
	}
	prop := s.identifier()
	return &ast.PropertyAccess{Base: s.base(left.Position()), Object: left, Property: prop}, nil
}

func (s *state) parseIndex(left ast.Node) (ast.Node, error) {
	indices, err := s.parseList("[", "]", "index access")
	if err != nil {
		return nil, err
	}
	return &ast.IndexAccess{Base: s.base(left.Position()), Object: left, Indices: indices}, nil
}

func (s *state) parseAt(left ast.Node) (ast.Node, error) {
	s.advance()
	args, err := s.parseList("(", ")", "'@' arguments")
	if err != nil {
		return nil, err
	}
	return &ast.At{Base: s.base(left.Position()), Target: left, Arguments: args}, nil
}

func (s *state) parseAsk(left ast.Node) (ast.Node, error) {
	s.advance()
	args, err := s.parseList("(", ")", "'?' arguments")
	if err != nil {
		return nil, err
	}
	return &ast.Ask{Base: s.base(left.Position()), Target: left, Arguments: args}, nil
}

// parseList parses opener expr, expr, ... closer. A trailing comma is
// accepted.
func (s *state) parseList(opener, closer, construct string) ([]ast.Node, error) {
	if tok := s.current(); !tok.Is(opener) {
		return nil, s.errorAt(tok, CodeUnexpectedToken,
			fmt.Sprintf("Expected '%s' to open %s", opener, construct))
	}
	s.advance()

	items := []ast.Node{}
	for {
		tok := s.current()
		if tok.Is(closer) {
			s.advance()
			return items, nil
		}
		if tok.Type == TokenEOF {
			return nil, s.errorAt(tok, CodeMissingCloser,
				fmt.Sprintf("Missing closing '%s' for %s", closer, construct))
		}

		item, err := s.parseExpression(PrecStatement)
		if err != nil {
			return nil, err
		}
		items = append(items, item)

		if s.current().Is(",") {
			s.advance()
			continue
		}
		if err := s.expect(closer, construct); err != nil {
			return nil, err
		}
		return items, nil
	}
}

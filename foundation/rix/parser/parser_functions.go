// File: parser_functions.go
// Title: RiX Function and Calculus Parsing
// Description: Function calls, function definitions, pattern-matching
//              functions, lambdas, and the derivative and integral
//              notations built from the apostrophe.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package parser

import (
	"fmt"

	"github.com/jostylr/rix-parser-sub000/foundation/rix/ast"
)

// DefaultIntegrationConstant names the constant attached to integrals
const DefaultIntegrationConstant = "c"

// callable reports whether a glued ( after n is a call rather than a
// product
func callable(n ast.Node) bool {
	switch v := n.(type) {
	case *ast.SystemIdentifier, *ast.OperatorReference, *ast.FunctionCall:
		return true
	case *ast.PropertyAccess:
		_, ok := v.Property.(*ast.SystemIdentifier)
		return ok
	}
	return false
}

func (s *state) parseCallOrProduct(left ast.Node) (ast.Node, error) {
	if !callable(left) {
		group, err := s.parseParenGroup()
		if err != nil {
			return nil, err
		}
		return &ast.ImplicitMultiplication{Base: s.base(left.Position()), Left: left, Right: group}, nil
	}

	s.advance()
	positional, keyword, err := s.parseParameterSections(")", "function call")
	if err != nil {
		return nil, err
	}
	return &ast.FunctionCall{
		Base:       s.base(left.Position()),
		Function:   left,
		Positional: positional,
		Keyword:    keyword,
	}, nil
}

// parseDefinition handles head :-> body and head :=> patterns
func (s *state) parseDefinition(head ast.Node) (ast.Node, error) {
	op := s.advance()
	pattern := op.Value == ":=>"

	name, params, err := s.functionHead(head, pattern, op.Value)
	if err != nil {
		return nil, err
	}
	rhs, err := s.parseExpression(PrecDefinition)
	if err != nil {
		return nil, err
	}
	base := s.base(head.Position())

	if !pattern {
		return &ast.FunctionDefinition{Base: base, Name: name, Parameters: params, Body: rhs}, nil
	}
	patterns := []ast.Node{rhs}
	if arr, ok := rhs.(*ast.Array); ok {
		patterns = arr.Elements
	}
	return &ast.PatternMatchingFunction{Base: base, Name: name, Parameters: params, Patterns: patterns}, nil
}

// functionHead splits f(x, y) into its name and parameters. bare allows a
// name without parameters.
func (s *state) functionHead(head ast.Node, bare bool, op string) (string, []ast.Parameter, error) {
	switch h := head.(type) {
	case *ast.ImplicitMultiplication:
		if name, ok := h.Left.(*ast.UserIdentifier); ok {
			if params, err := s.parameters(h.Right); err == nil {
				return name.Name, params, nil
			} else if _, group := h.Right.(*ast.Grouping); !group {
				return "", nil, err
			}
		}
	case *ast.FunctionCall:
		if name, ok := h.Function.(*ast.SystemIdentifier); ok {
			params, err := s.parameterSections(h.Positional, h.Keyword)
			if err != nil {
				return "", nil, err
			}
			return name.Name, params, nil
		}
	case *ast.UserIdentifier:
		if bare {
			return h.Name, nil, nil
		}
	case *ast.SystemIdentifier:
		if bare {
			return h.Name, nil, nil
		}
	}
	return "", nil, s.errorAtNode(head, CodeUnexpectedToken,
		fmt.Sprintf("Expected a function name with parameters before '%s'", op))
}

// parameters converts a parenthesized group into parameters
func (s *state) parameters(n ast.Node) ([]ast.Parameter, error) {
	switch g := n.(type) {
	case *ast.Grouping:
		p, err := s.parameter(g.Expression, false)
		if err != nil {
			return nil, err
		}
		return []ast.Parameter{p}, nil
	case *ast.Tuple:
		return s.parameterSections(g.Elements, nil)
	case *ast.ParameterList:
		return s.parameterSections(g.Positional, g.Keyword)
	case *ast.UserIdentifier:
		p, err := s.parameter(g, false)
		if err != nil {
			return nil, err
		}
		return []ast.Parameter{p}, nil
	}
	return nil, s.errorAtNode(n, CodeUnexpectedToken, "Expected a parameter list")
}

func (s *state) parameterSections(positional, keyword []ast.Node) ([]ast.Parameter, error) {
	params := make([]ast.Parameter, 0, len(positional)+len(keyword))
	for i, group := range [][]ast.Node{positional, keyword} {
		for _, n := range group {
			p, err := s.parameter(n, i == 1)
			if err != nil {
				return nil, err
			}
			params = append(params, p)
		}
	}
	return params, nil
}

// parameter accepts name or name := default
func (s *state) parameter(n ast.Node, keyword bool) (ast.Parameter, error) {
	switch v := n.(type) {
	case *ast.UserIdentifier:
		return ast.Parameter{Name: v.Name, Keyword: keyword}, nil
	case *ast.SystemIdentifier:
		return ast.Parameter{Name: v.Name, Keyword: keyword}, nil
	case *ast.Assignment:
		if v.Operator == ":=" {
			if id, ok := v.Target.(*ast.UserIdentifier); ok {
				return ast.Parameter{Name: id.Name, Default: v.Value, Keyword: keyword}, nil
			}
		}
	}
	return ast.Parameter{}, s.errorAtNode(n, CodeUnexpectedToken, "Expected a parameter name")
}

// parseArrow builds a lambda when the left side reads as parameters and a
// plain -> operation otherwise
func (s *state) parseArrow(left ast.Node) (ast.Node, error) {
	s.advance()
	body, err := s.parseExpression(PrecArrow)
	if err != nil {
		return nil, err
	}
	base := s.base(left.Position())

	switch left.(type) {
	case *ast.UserIdentifier, *ast.Grouping, *ast.Tuple, *ast.ParameterList:
		if params, err := s.parameters(left); err == nil {
			return &ast.FunctionLambda{Base: base, Parameters: params, Body: body}, nil
		}
	}
	return &ast.BinaryOperation{Base: base, Operator: "->", Left: left, Right: body}, nil
}

// derivable reports whether n may carry derivative marks
func derivable(n ast.Node) bool {
	switch n.(type) {
	case *ast.UserIdentifier, *ast.SystemIdentifier, *ast.FunctionCall,
		*ast.PropertyAccess, *ast.Derivative, *ast.Integral:
		return true
	}
	return false
}

// marks consumes a run of glued apostrophes and returns its length
func (s *state) marks() int {
	order := 0
	for s.current().Is("'") && (order == 0 || s.adjacent(s.pos)) {
		s.advance()
		order++
	}
	return order
}

// calculusTail parses the optional [vars] and (args) after a derivative
// or integral. Arguments holding calculus become operations, anything
// else is an evaluation point.
func (s *state) calculusTail() (vars, eval, ops []ast.Node, err error) {
	if s.current().Is("[") && s.adjacent(s.pos) {
		if vars, err = s.parseList("[", "]", "variable list"); err != nil {
			return nil, nil, nil, err
		}
	}
	if s.current().Is("(") && s.adjacent(s.pos) {
		args, err := s.parseList("(", ")", "evaluation")
		if err != nil {
			return nil, nil, nil, err
		}
		for _, a := range args {
			if ast.Contains(a, ast.IsCalculus) {
				return vars, nil, args, nil
			}
		}
		eval = args
	}
	return vars, eval, nil, nil
}

func (s *state) parseDerivative(left ast.Node) (ast.Node, error) {
	if !derivable(left) {
		return nil, s.errorAt(s.current(), CodeUnexpectedToken,
			"Derivative mark must follow an identifier, call or property access")
	}
	order := s.marks()
	vars, eval, ops, err := s.calculusTail()
	if err != nil {
		return nil, err
	}
	return &ast.Derivative{
		Base:       s.base(left.Position()),
		Function:   left,
		Order:      order,
		Variables:  vars,
		Evaluation: eval,
		Operations: ops,
	}, nil
}

func (s *state) parseIntegral() (ast.Node, error) {
	start := s.current().Pos
	order := s.marks()

	tok := s.current()
	if tok.Type != TokenIdentifier {
		return nil, s.errorAt(tok, CodeUnexpectedToken,
			fmt.Sprintf("Expected identifier after integral mark, found %s", tok.Describe()))
	}
	var fn ast.Node = s.identifier()
	for s.current().Is(".") {
		prop, err := s.parseProperty(fn)
		if err != nil {
			return nil, err
		}
		fn = prop
	}

	vars, eval, ops, err := s.calculusTail()
	if err != nil {
		return nil, err
	}
	return &ast.Integral{
		Base:                s.base(start),
		Function:            fn,
		Order:               order,
		Variables:           vars,
		Evaluation:          eval,
		Operations:          ops,
		IntegrationConstant: DefaultIntegrationConstant,
	}, nil
}

// File: parser.go
// Title: RiX Pratt Parser
// Description: Turns a token stream into syntax-tree nodes with an
//              operator-precedence (Pratt) engine. Comments met inside a
//              top-level unit are buffered and emitted right after it.
//              Fails on the first violation without recovery.
// Author: msto63
// Version: v0.2.0
// Created: 2025-10-19
// Modified: 2025-10-20
//
// Change History:
// - 2025-10-19 v0.1.0: Initial parser implementation
// - 2025-10-20 v0.2.0: Trace log per top-level node

package parser

import (
	"fmt"
	"sort"
	"strings"
	"time"

	mdwerror "github.com/jostylr/rix-parser-sub000/foundation/core/error"
	mdwlog "github.com/jostylr/rix-parser-sub000/foundation/core/log"
	"github.com/jostylr/rix-parser-sub000/foundation/rix/ast"
	"github.com/jostylr/rix-parser-sub000/foundation/rix/registry"
)

const (
	// DefaultMaxDepth bounds expression nesting
	DefaultMaxDepth = 512

	// DefaultMaxInputLength bounds the size of source text accepted by
	// ParseString
	DefaultMaxInputLength = 1 << 20
)

// Options configures parser behavior
type Options struct {
	Logger         *mdwlog.Logger
	MaxInputLength int
	MaxDepth       int
	Resolver       registry.Resolver
}

// Parser parses RiX token streams. A Parser holds no per-parse state and
// may be shared between goroutines.
type Parser struct {
	logger  *mdwlog.Logger
	options Options
}

// New creates a new RiX parser with the given options
func New(opts Options) (*Parser, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxInputLength <= 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	if opts.Resolver == nil {
		opts.Resolver = registry.Default
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "rix-parser"),
		options: opts,
	}, nil
}

// Parse parses an already scanned token list with default options. A nil
// resolver means registry.Default.
func Parse(tokens []Token, resolver registry.Resolver) ([]ast.Node, error) {
	p, _ := New(Options{Logger: mdwlog.Discard()})
	return p.Parse(tokens, resolver)
}

// ParseString scans and parses input with default options
func ParseString(input string, resolver registry.Resolver) ([]ast.Node, error) {
	p, _ := New(Options{Logger: mdwlog.Discard(), Resolver: resolver})
	return p.ParseString(input)
}

// ParseString scans and parses input
func (p *Parser) ParseString(input string) ([]ast.Node, error) {
	if len(input) > p.options.MaxInputLength {
		return nil, mdwerror.New(fmt.Sprintf("input exceeds maximum length: %d > %d",
			len(input), p.options.MaxInputLength)).
			WithCode(mdwerror.CodeInvalidLength).
			WithOperation("parser.ParseString").
			WithDetail("length", len(input))
	}

	tokens, err := Tokenize(input)
	if err != nil {
		p.logger.Warn("RiX scanning failed", mdwlog.Fields{
			"length": len(input),
			"error":  err.Error(),
		})
		return nil, err
	}
	return p.Parse(tokens, nil)
}

// Parse parses tokens into top-level nodes: statements, an optional
// trailing bare expression, and comments in source order
func (p *Parser) Parse(tokens []Token, resolver registry.Resolver) ([]ast.Node, error) {
	if resolver == nil {
		resolver = p.options.Resolver
	}
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != TokenEOF {
		end := 0
		if len(tokens) > 0 {
			end = tokens[len(tokens)-1].Pos.End
		}
		tokens = append(tokens[:len(tokens):len(tokens)], Token{
			Type: TokenEOF,
			Pos:  Span{Start: end, Delimiter: end, End: end},
		})
	}

	var src strings.Builder
	for _, t := range tokens {
		src.WriteString(t.Original)
	}

	s := &state{
		tokens:   tokens,
		last:     -1,
		resolver: resolver,
		resolved: make(map[int]registry.Descriptor),
		source:   src.String(),
		maxDepth: p.options.MaxDepth,
	}

	started := time.Now()
	p.logger.Debug("Starting RiX parsing", mdwlog.Fields{
		"tokens": len(tokens),
		"length": src.Len(),
	})

	nodes, err := s.parseProgram()
	if err != nil {
		p.logger.Warn("RiX parsing failed", mdwlog.Fields{
			"length": src.Len(),
			"error":  err.Error(),
		})
		return nil, err
	}

	if p.logger.IsLevelEnabled(mdwlog.LevelTrace) {
		for i, node := range nodes {
			p.logger.Trace("RiX node parsed", mdwlog.Fields{
				"index": i,
				"kind":  node.Kind().String(),
				"start": node.Position().Start,
			})
		}
	}

	p.logger.Debug("RiX parsing completed successfully", mdwlog.Fields{
		"nodes":       len(nodes),
		"resolutions": len(s.resolved),
		"duration":    time.Since(started).String(),
	})
	return nodes, nil
}

// state is the cursor of a single parse
type state struct {
	tokens   []Token
	pos      int
	last     int // index of the last consumed token
	pending  []ast.Node
	resolver registry.Resolver
	resolved map[int]registry.Descriptor
	source   string
	lines    *ast.LineIndex
	depth    int
	maxDepth int
}

// current returns the next significant token. Comment tokens in front of
// it are consumed into the pending buffer.
func (s *state) current() Token {
	for s.pos < len(s.tokens)-1 && s.tokens[s.pos].IsComment() {
		s.pending = append(s.pending, s.commentNode(s.tokens[s.pos]))
		s.pos++
	}
	return s.tokens[s.pos]
}

// advance consumes and returns the current token. End is never consumed.
func (s *state) advance() Token {
	tok := s.current()
	if tok.Type != TokenEOF {
		s.last = s.pos
		s.pos++
	}
	return tok
}

// adjacent reports whether the token at idx follows the last consumed
// token with nothing in between
func (s *state) adjacent(idx int) bool {
	if idx != s.last+1 || idx >= len(s.tokens) {
		return false
	}
	t := s.tokens[idx]
	return t.Type != TokenEOF && t.Pos.Start == t.Pos.Delimiter
}

// followedByParen reports whether the raw token after idx is a ( glued to
// it
func (s *state) followedByParen(idx int) bool {
	next := idx + 1
	if next >= len(s.tokens) {
		return false
	}
	t := s.tokens[next]
	return t.Is("(") && t.Pos.Start == t.Pos.Delimiter
}

func (s *state) flushComments() []ast.Node {
	out := s.pending
	s.pending = nil
	return out
}

func (s *state) commentNode(tok Token) ast.Node {
	return &ast.Comment{
		Base:  ast.Base{Pos: tok.Pos, Original: tok.Original},
		Value: tok.Value,
		Block: tok.Delimiters > 0,
	}
}

// base builds the span from start to the end of the last consumed token
func (s *state) base(start ast.Position) ast.Base {
	end := start.End
	if s.last >= 0 && s.tokens[s.last].Pos.End > end {
		end = s.tokens[s.last].Pos.End
	}
	return ast.Base{
		Pos:      ast.Position{Start: start.Start, Delimiter: start.Delimiter, End: end},
		Original: s.source[start.Start:end],
	}
}

func isTerminator(t Token) bool {
	return t.Is(";") || t.Type == TokenSemicolonSequence
}

func (s *state) parseProgram() ([]ast.Node, error) {
	var out []ast.Node
	for {
		tok := s.current()
		out = append(out, s.flushComments()...)

		if tok.Type == TokenEOF {
			return out, nil
		}
		if isTerminator(tok) {
			s.advance()
			continue
		}

		expr, err := s.parseExpression(PrecStatement)
		if err != nil {
			return nil, err
		}

		next := s.current()
		switch {
		case isTerminator(next):
			s.advance()
			out = append(out, &ast.Statement{Base: s.base(tok.Pos), Expression: expr})
		case next.Type == TokenEOF:
			out = append(out, expr)
		default:
			return nil, s.errorAt(next, CodeUnexpectedToken,
				fmt.Sprintf("Unexpected token %s, expected ';' or end of input", next.Describe()))
		}
		out = append(out, s.flushComments()...)
	}
}

// binding describes how the current token extends a left operand
type binding struct {
	prec  int
	parse func(left ast.Node) (ast.Node, error)
}

// parseExpression parses a prefix term and extends it with every infix or
// postfix operator binding at least as tightly as minPrec
func (s *state) parseExpression(minPrec int) (ast.Node, error) {
	s.depth++
	defer func() { s.depth-- }()
	if s.depth > s.maxDepth {
		return nil, s.errorAt(s.current(), CodeNestingTooDeep,
			fmt.Sprintf("Expression nesting exceeds the maximum depth of %d", s.maxDepth))
	}

	left, err := s.parsePrefix()
	if err != nil {
		return nil, err
	}

	for {
		b, ok := s.infixBinding(left, s.current())
		if !ok || b.prec < minPrec {
			return left, nil
		}
		if left, err = b.parse(left); err != nil {
			return nil, err
		}
	}
}

// rightPrec is the minimum precedence of a right operand
func rightPrec(prec int, assoc registry.Associativity) int {
	if assoc == registry.Right {
		return prec
	}
	return prec + 1
}

// expect consumes the symbol closer or fails with a missing-closer error
// naming the construct
func (s *state) expect(closer, construct string) error {
	tok := s.current()
	if tok.Is(closer) {
		s.advance()
		return nil
	}
	if tok.Type == TokenEOF {
		return s.errorAt(tok, CodeMissingCloser,
			fmt.Sprintf("Missing closing '%s' for %s", closer, construct))
	}
	return s.errorAt(tok, CodeUnexpectedToken,
		fmt.Sprintf("Expected '%s' to close %s, found %s", closer, construct, tok.Describe()))
}

func (s *state) errorAt(tok Token, code ErrorCode, message string) error {
	return s.newError(tok.Pos.Delimiter, tok, code, message)
}

func (s *state) errorAtNode(n ast.Node, code ErrorCode, message string) error {
	offset := n.Position().Delimiter
	return s.newError(offset, s.tokenAt(offset), code, message)
}

func (s *state) newError(offset int, tok Token, code ErrorCode, message string) error {
	if s.lines == nil {
		s.lines = ast.NewLineIndex(s.source)
	}
	line, column := s.lines.LineColumn(offset)
	return &ParseError{
		Code:     code,
		Message:  message,
		Position: offset,
		Line:     line,
		Column:   column,
		Token:    tok,
	}
}

// tokenAt returns the token covering offset
func (s *state) tokenAt(offset int) Token {
	i := sort.Search(len(s.tokens), func(i int) bool {
		return s.tokens[i].Pos.End > offset
	})
	if i >= len(s.tokens) {
		i = len(s.tokens) - 1
	}
	return s.tokens[i]
}

// resolve returns the descriptor for the System identifier at idx,
// calling the resolver at most once per token
func (s *state) resolve(idx int) registry.Descriptor {
	if d, ok := s.resolved[idx]; ok {
		return d
	}
	d := s.resolver.Resolve(s.tokens[idx].Value)
	s.resolved[idx] = d
	return d
}

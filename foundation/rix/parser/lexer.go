// File: lexer.go
// Title: RiX Maximal-Munch Scanner
// Description: Converts RiX source text into tokens. At each position the
//              scanner absorbs whitespace and tries comments, numbers,
//              strings, regex literals, outer identifiers, identifiers,
//              semicolon runs and symbols in that order. Characters no
//              matcher accepts are folded into the next token's Original.
// Author: msto63
// Version: v0.2.0
// Created: 2025-10-19
// Modified: 2025-10-20
//
// Change History:
// - 2025-10-19 v0.1.0: Initial scanner implementation
// - 2025-10-20 v0.2.0: Immediately closed star comments split evenly

package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jostylr/rix-parser-sub000/foundation/rix/ast"
)

// Lexer scans one input string
type Lexer struct {
	input  string
	pos    int
	tokens []Token
	last   int // index of the last non-comment token, -1 before the first
	lines  *ast.LineIndex
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	return &Lexer{
		input: input,
		last:  -1,
	}
}

// Tokenize scans input completely. The last token is always TokenEOF.
func Tokenize(input string) ([]Token, error) {
	return NewLexer(input).Tokenize()
}

// Tokenize scans the whole input. The returned slice ends with a TokenEOF
// whose Original holds any trailing whitespace.
func (l *Lexer) Tokenize() ([]Token, error) {
	start := l.pos
	for {
		l.skipWhitespace()
		if l.pos >= len(l.input) {
			l.tokens = append(l.tokens, Token{
				Type:     TokenEOF,
				Original: l.input[start:],
				Pos:      Span{Start: start, Delimiter: len(l.input), End: len(l.input)},
			})
			return l.tokens, nil
		}

		tok, end, ok, err := l.match(l.pos)
		if err != nil {
			return nil, err
		}
		if !ok {
			_, size := utf8.DecodeRuneInString(l.input[l.pos:])
			l.pos += size
			continue
		}

		tok.Pos.Start = start
		tok.Pos.End = end
		tok.Original = l.input[start:end]
		l.pos = end

		if !tok.IsComment() {
			l.last = len(l.tokens)
		}
		l.tokens = append(l.tokens, tok)
		start = l.pos
	}
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		l.pos += size
	}
}

// match runs the matchers in priority order at offset at
func (l *Lexer) match(at int) (Token, int, bool, error) {
	for _, m := range []func(int) (Token, int, bool, error){
		l.matchHashComment,
		l.matchNumber,
		l.matchString,
		l.matchRegex,
		l.matchOuterIdentifier,
		l.matchIdentifier,
		l.matchSemicolons,
		l.matchSymbol,
	} {
		tok, end, ok, err := m(at)
		if err != nil || ok {
			return tok, end, ok, err
		}
	}
	return Token{}, 0, false, nil
}

// matchHashComment handles ##tag## ... ##tag## blocks and ## line comments
func (l *Lexer) matchHashComment(at int) (Token, int, bool, error) {
	s := l.input
	if !strings.HasPrefix(s[at:], "##") {
		return Token{}, 0, false, nil
	}

	tagStart := at + 2
	j := tagStart
	for j < len(s) && !strings.HasPrefix(s[j:], "##") {
		r, size := utf8.DecodeRuneInString(s[j:])
		if unicode.IsSpace(r) {
			break
		}
		j += size
	}

	if j > tagStart && strings.HasPrefix(s[j:], "##") {
		marker := s[at : j+2]
		contentStart := j + 2
		idx := strings.Index(s[contentStart:], marker)
		if idx < 0 {
			return Token{}, 0, false, l.delimiterError(at, marker,
				fmt.Sprintf("unterminated block comment: expected closing %s", marker))
		}
		return Token{
			Type:       TokenString,
			StringKind: StringComment,
			Value:      s[contentStart : contentStart+idx],
			Delimiters: 2,
			Pos:        Span{Delimiter: contentStart},
		}, contentStart + idx + len(marker), true, nil
	}

	end := strings.IndexByte(s[tagStart:], '\n')
	if end < 0 {
		end = len(s)
	} else {
		end += tagStart
	}
	return Token{
		Type:       TokenString,
		StringKind: StringComment,
		Value:      strings.TrimSuffix(s[tagStart:end], "\r"),
		Pos:        Span{Delimiter: tagStart},
	}, end, true, nil
}

// matchNumber handles every number format, with a leading minus taken as
// a sign only where no operand precedes it
func (l *Lexer) matchNumber(at int) (Token, int, bool, error) {
	s := l.input
	digitsAt := at
	if s[at] == '-' {
		if l.previousEndsOperand() {
			return Token{}, 0, false, nil
		}
		digitsAt = at + 1
	}
	if digitsAt >= len(s) {
		return Token{}, 0, false, nil
	}
	c := s[digitsAt]
	if !(c >= '0' && c <= '9') && !(c == '.' && digitsAt+1 < len(s) && s[digitsAt+1] >= '0' && s[digitsAt+1] <= '9') {
		return Token{}, 0, false, nil
	}

	end := scanNumber(s, digitsAt)
	if end < 0 {
		return Token{}, 0, false, nil
	}
	return Token{
		Type:  TokenNumber,
		Value: s[at:end],
		Pos:   Span{Delimiter: at},
	}, end, true, nil
}

// previousEndsOperand reports whether the last significant token can end
// an operand, which makes a following minus an operator
func (l *Lexer) previousEndsOperand() bool {
	if l.last < 0 {
		return false
	}
	prev := l.tokens[l.last]
	switch prev.Type {
	case TokenNumber, TokenIdentifier, TokenString, TokenPlaceHolder, TokenOuterIdentifier, TokenRegexLiteral:
		return true
	case TokenSymbol:
		switch prev.Value {
		case ")", "]", "}", "'", "_":
			return true
		}
	}
	return false
}

// matchString handles "..." and `...` runs of any length and /*...*/
// comments with a matching star count
func (l *Lexer) matchString(at int) (Token, int, bool, error) {
	s := l.input
	c := s[at]

	switch c {
	case '"', '`':
		n := runLength(s, at, c)
		kind := StringQuote
		if c == '`' {
			kind = StringBacktick
		}
		if c == '"' && n == 2 {
			return Token{
				Type:       TokenString,
				StringKind: StringQuote,
				Delimiters: 1,
				Pos:        Span{Delimiter: at + 1},
			}, at + 2, true, nil
		}

		contentStart := at + n
		for i := contentStart; i < len(s); {
			if s[i] != c {
				i++
				continue
			}
			run := runLength(s, i, c)
			if run == n {
				return Token{
					Type:       TokenString,
					StringKind: kind,
					Value:      s[contentStart:i],
					Delimiters: n,
					Pos:        Span{Delimiter: contentStart},
				}, i + n, true, nil
			}
			i += run
		}
		closer := strings.Repeat(string(c), n)
		return Token{}, 0, false, l.delimiterError(at, closer,
			fmt.Sprintf("unterminated string: expected closing %s (%d)", closer, n))

	case '/':
		if at+1 >= len(s) || s[at+1] != '*' {
			return Token{}, 0, false, nil
		}
		stars := runLength(s, at+1, '*')
		contentStart := at + 1 + stars

		// A star run closed at once splits evenly between the delimiters:
		// /**/ and /****/ are empty, /***/ holds a single star.
		if stars > 1 && contentStart < len(s) && s[contentStart] == '/' {
			n := stars / 2
			return Token{
				Type:       TokenString,
				StringKind: StringComment,
				Value:      s[at+1+n : contentStart-n],
				Delimiters: n,
				Pos:        Span{Delimiter: at + 1 + n},
			}, contentStart + 1, true, nil
		}

		for i := contentStart; i < len(s); {
			if s[i] != '*' {
				i++
				continue
			}
			run := runLength(s, i, '*')
			if run == stars && i+run < len(s) && s[i+run] == '/' {
				return Token{
					Type:       TokenString,
					StringKind: StringComment,
					Value:      s[contentStart:i],
					Delimiters: stars,
					Pos:        Span{Delimiter: contentStart},
				}, i + run + 1, true, nil
			}
			i += run
		}
		closer := strings.Repeat("*", stars) + "/"
		return Token{}, 0, false, l.delimiterError(at, closer,
			fmt.Sprintf("unterminated block comment: expected closing %s", closer))
	}
	return Token{}, 0, false, nil
}

// matchRegex handles {/pattern/flags}. Anything that does not complete
// the form is left to the symbol matcher.
func (l *Lexer) matchRegex(at int) (Token, int, bool, error) {
	s := l.input
	if !strings.HasPrefix(s[at:], "{/") {
		return Token{}, 0, false, nil
	}

	i := at + 2
	for i < len(s) && s[i] != '/' {
		if s[i] == '\\' {
			i++
		}
		i++
	}
	if i >= len(s) {
		return Token{}, 0, false, nil
	}

	j := i + 1
	for j < len(s) && ((s[j] >= 'a' && s[j] <= 'z') || (s[j] >= 'A' && s[j] <= 'Z')) {
		j++
	}
	if j >= len(s) || s[j] != '}' {
		return Token{}, 0, false, nil
	}
	return Token{
		Type:  TokenRegexLiteral,
		Value: s[at+2 : i],
		Flags: s[i+1 : j],
		Pos:   Span{Delimiter: at + 2},
	}, j + 1, true, nil
}

// matchOuterIdentifier handles @name
func (l *Lexer) matchOuterIdentifier(at int) (Token, int, bool, error) {
	s := l.input
	if s[at] != '@' || at+1 >= len(s) {
		return Token{}, 0, false, nil
	}
	r, _ := utf8.DecodeRuneInString(s[at+1:])
	if !unicode.IsLetter(r) {
		return Token{}, 0, false, nil
	}
	end := identifierEnd(s, at+1)
	value, kind := classify(s[at+1 : end])
	return Token{
		Type:  TokenOuterIdentifier,
		Value: value,
		Kind:  kind,
		Pos:   Span{Delimiter: at + 1},
	}, end, true, nil
}

// matchIdentifier handles identifiers and _N placeholders
func (l *Lexer) matchIdentifier(at int) (Token, int, bool, error) {
	s := l.input
	r, size := utf8.DecodeRuneInString(s[at:])

	if r == '_' {
		if d := digitRun(s, at+1); d > at+1 {
			index, err := strconv.Atoi(s[at+1 : d])
			if err != nil {
				return Token{}, 0, false, nil
			}
			return Token{
				Type:  TokenPlaceHolder,
				Value: s[at:d],
				Index: index,
				Pos:   Span{Delimiter: at},
			}, d, true, nil
		}
		next, _ := utf8.DecodeRuneInString(s[at+size:])
		if at+size >= len(s) || !unicode.IsLetter(next) {
			return Token{}, 0, false, nil
		}
	} else if !unicode.IsLetter(r) {
		return Token{}, 0, false, nil
	}

	end := identifierEnd(s, at+size)
	value, kind := classify(s[at:end])
	if kind == IdentSystem && end < len(s) && s[end] == '(' {
		kind = IdentSystemFunction
	}
	return Token{
		Type:  TokenIdentifier,
		Value: value,
		Kind:  kind,
		Pos:   Span{Delimiter: at},
	}, end, true, nil
}

// identifierEnd returns the end of the letter/digit run starting at i
func identifierEnd(s string, i int) int {
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		i += size
	}
	return i
}

// classify normalizes an identifier by the case of its first letter
func classify(raw string) (string, IdentKind) {
	for _, r := range raw {
		if unicode.IsLetter(r) {
			if unicode.IsUpper(r) {
				return strings.ToUpper(raw), IdentSystem
			}
			break
		}
	}
	return strings.ToLower(raw), IdentUser
}

// matchSemicolons turns runs of two or more semicolons into one token
func (l *Lexer) matchSemicolons(at int) (Token, int, bool, error) {
	n := runLength(l.input, at, ';')
	if n < 2 {
		return Token{}, 0, false, nil
	}
	return Token{
		Type:  TokenSemicolonSequence,
		Value: l.input[at : at+n],
		Count: n,
		Pos:   Span{Delimiter: at},
	}, at + n, true, nil
}

// matchSymbol takes the longest symbol at at
func (l *Lexer) matchSymbol(at int) (Token, int, bool, error) {
	rest := l.input[at:]
	for _, sym := range symbolList {
		if strings.HasPrefix(rest, sym) {
			return Token{
				Type:  TokenSymbol,
				Value: sym,
				Pos:   Span{Delimiter: at},
			}, at + len(sym), true, nil
		}
	}
	return Token{}, 0, false, nil
}

func (l *Lexer) delimiterError(at int, closer, message string) error {
	if l.lines == nil {
		l.lines = ast.NewLineIndex(l.input)
	}
	line, column := l.lines.LineColumn(at)
	return &DelimiterError{
		Code:      CodeDelimiterUnmatched,
		Message:   message,
		Position:  at,
		Line:      line,
		Column:    column,
		Delimiter: closer,
	}
}

func runLength(s string, i int, c byte) int {
	n := 0
	for i+n < len(s) && s[i+n] == c {
		n++
	}
	return n
}

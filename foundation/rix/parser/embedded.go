// File: embedded.go
// Title: Embedded Language Literals
// Description: Splits the content of a backtick literal into an optional
//              Language(Context) header and its body at the first colon
//              outside the header's parentheses.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package parser

import (
	"strings"
	"unicode"

	"github.com/jostylr/rix-parser-sub000/foundation/rix/ast"
)

// Embedded is the decomposed content of a backtick literal
type Embedded struct {
	Language string
	Context  string
	Body     string
}

// headerError is a malformed header with the offset of the offending
// character relative to the literal's content
type headerError struct {
	code    ErrorCode
	message string
	offset  int
}

// SplitEmbedded decomposes backtick content. Text without a header comes
// back unchanged in Body.
func SplitEmbedded(content string) (Embedded, error) {
	e, herr := splitEmbedded(content)
	if herr != nil {
		return Embedded{}, &ParseError{Code: herr.code, Message: herr.message, Position: herr.offset}
	}
	return e, nil
}

func splitEmbedded(content string) (Embedded, *headerError) {
	depth := 0
	open := -1 // offset of the first unclosed (
	var stray *headerError

	for i, r := range content {
		switch {
		case r == '(':
			if depth == 0 {
				open = i
			}
			depth++
		case r == ')':
			if depth == 0 {
				if stray == nil {
					stray = &headerError{CodeInvalidContainer,
						"Unmatched closing parenthesis in embedded language header", i}
				}
				continue
			}
			depth--
		case depth == 0 && r == ':':
			if stray != nil {
				return Embedded{}, stray
			}
			return parseHeader(content[:i], content[i+1:])
		case depth == 0 && unicode.IsSpace(r):
			return Embedded{Body: content}, nil
		}
	}

	if depth > 0 && strings.Contains(content[open:], ":") {
		return Embedded{}, &headerError{CodeMissingCloser,
			"Unmatched opening parenthesis in embedded language header", open}
	}
	return Embedded{Body: content}, nil
}

func parseHeader(header, body string) (Embedded, *headerError) {
	lp := strings.IndexByte(header, '(')
	if lp < 0 {
		return Embedded{Language: header, Body: body}, nil
	}

	// the balanced scan guarantees a matching ) for the first (
	depth := 0
	rp := -1
	for i := lp; i < len(header); i++ {
		switch header[i] {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth == 0 {
			rp = i
			break
		}
	}
	if rp != len(header)-1 {
		return Embedded{}, &headerError{CodeInvalidContainer,
			"Multiple parenthesized groups in embedded language header", rp + 1}
	}
	return Embedded{
		Language: header[:lp],
		Context:  header[lp+1 : rp],
		Body:     body,
	}, nil
}

// embeddedLanguage builds the node for a consumed backtick token
func (s *state) embeddedLanguage(tok Token) (ast.Node, error) {
	e, herr := splitEmbedded(tok.Value)
	if herr != nil {
		offset := tok.Pos.Delimiter + herr.offset
		return nil, s.newError(offset, tok, herr.code, herr.message)
	}
	return &ast.EmbeddedLanguage{
		Base:     s.base(tok.Pos),
		Language: e.Language,
		Context:  e.Context,
		Body:     e.Body,
	}, nil
}

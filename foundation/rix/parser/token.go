// File: token.go
// Title: RiX Tokens
// Description: Token and token-type definitions produced by the scanner.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial token definitions

package parser

import (
	"fmt"

	"github.com/jostylr/rix-parser-sub000/foundation/rix/ast"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenNumber
	TokenIdentifier
	TokenString // quoted strings, backtick literals and comments
	TokenSymbol
	TokenSemicolonSequence
	TokenPlaceHolder
	TokenOuterIdentifier
	TokenRegexLiteral
)

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "End"
	case TokenNumber:
		return "Number"
	case TokenIdentifier:
		return "Identifier"
	case TokenString:
		return "String"
	case TokenSymbol:
		return "Symbol"
	case TokenSemicolonSequence:
		return "SemicolonSequence"
	case TokenPlaceHolder:
		return "PlaceHolder"
	case TokenOuterIdentifier:
		return "OuterIdentifier"
	case TokenRegexLiteral:
		return "RegexLiteral"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the type by name
func (tt TokenType) MarshalText() ([]byte, error) {
	return []byte(tt.String()), nil
}

// IdentKind classifies identifiers by the case of their first letter
type IdentKind int

const (
	IdentNone IdentKind = iota
	IdentUser
	IdentSystem
	IdentSystemFunction // System identifier directly followed by (
)

// String returns the classification name
func (k IdentKind) String() string {
	switch k {
	case IdentUser:
		return "User"
	case IdentSystem:
		return "System"
	case IdentSystemFunction:
		return "SystemFunction"
	default:
		return ""
	}
}

// StringKind tells quoted strings, backtick literals and comments apart
type StringKind int

const (
	StringNone StringKind = iota
	StringQuote
	StringBacktick
	StringComment
)

// String returns the string kind name
func (k StringKind) String() string {
	switch k {
	case StringQuote:
		return "quote"
	case StringBacktick:
		return "backtick"
	case StringComment:
		return "comment"
	default:
		return ""
	}
}

// Span is the (start, delimiter, end) byte triple of a token
type Span = ast.Position

// Token is an immutable lexical token. Original is the exact source slice
// the token covers, including leading whitespace and skipped characters,
// so concatenating all Originals reproduces the input.
type Token struct {
	Type       TokenType
	Value      string
	Original   string
	Pos        Span
	Kind       IdentKind  // identifiers and outer identifiers
	StringKind StringKind // strings
	Delimiters int        // quote, backtick or star count of strings and block comments
	Count      int        // semicolon sequences
	Index      int        // placeholders
	Flags      string     // regex literals
}

// String returns a compact representation for diagnostics
func (t Token) String() string {
	if t.Type == TokenEOF {
		return "End"
	}
	return fmt.Sprintf("%s(%s)", t.Type, t.Value)
}

// Is reports whether t is the symbol s
func (t Token) Is(s string) bool {
	return t.Type == TokenSymbol && t.Value == s
}

// IsComment reports whether t is a comment token
func (t Token) IsComment() bool {
	return t.Type == TokenString && t.StringKind == StringComment
}

// IsSystem reports whether t is a System identifier
func (t Token) IsSystem() bool {
	return t.Type == TokenIdentifier && (t.Kind == IdentSystem || t.Kind == IdentSystemFunction)
}

// Describe returns the token as users see it in error messages
func (t Token) Describe() string {
	switch t.Type {
	case TokenEOF:
		return "end of input"
	case TokenString:
		return fmt.Sprintf("string %q", t.Value)
	default:
		return fmt.Sprintf("%q", t.Value)
	}
}

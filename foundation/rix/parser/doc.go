// File: doc.go
// Title: RiX Parser Package Documentation
// Description: Package documentation for the RiX scanner and parser.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial documentation

/*
Package parser turns RiX source text into syntax trees.

# Scanning

Tokenize converts text into tokens with a maximal-munch scanner. Every
token keeps the exact source slice it covers, whitespace included, so the
Originals of a token list concatenate back to the input:

	tokens, err := parser.Tokenize("x := 3 + 4;")

Unterminated strings, backtick literals and block comments fail with a
*DelimiterError that states the delimiter run needed to close them.

# Parsing

A Parser is an operator-precedence (Pratt) parser. Upper-case identifiers
are resolved through a registry.Resolver exactly once per token, and the
result is stored in the SystemIdentifier node:

	p, _ := parser.New(parser.Options{Resolver: reg})
	nodes, err := p.ParseString("y := SIN(x) + 2x^2;")

Top-level units end with ';'. A final expression without ';' is returned
as a bare expression node. Comments are emitted as Comment nodes after the
unit that contains them.

Parsing stops at the first error. Errors are *ParseError values carrying
an ErrorCode, the byte offset and the line and column of the offending
token.
*/
package parser

// File: errors.go
// Title: Scanner and Parser Errors
// Description: Structured errors raised by the scanner and the parser.
//              Both carry the byte offset and the 1-based line and column
//              of the failure.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial error types

package parser

import (
	"fmt"
	"strings"

	mdwerror "github.com/jostylr/rix-parser-sub000/foundation/core/error"
)

// ErrorCode classifies scanner and parser failures
type ErrorCode string

const (
	CodeDelimiterUnmatched ErrorCode = "DELIMITER_UNMATCHED"
	CodeMissingCloser      ErrorCode = "MISSING_CLOSER"
	CodeInvalidContainer   ErrorCode = "INVALID_CONTAINER"
	CodeUnexpectedToken    ErrorCode = "UNEXPECTED_TOKEN"
	CodeNestingTooDeep     ErrorCode = "NESTING_TOO_DEEP"
)

// CoreCode maps the code onto the shared error code set
func (c ErrorCode) CoreCode() mdwerror.Code {
	switch c {
	case CodeDelimiterUnmatched:
		return mdwerror.CodeRixLexical
	case CodeMissingCloser:
		return mdwerror.CodeRixStructure
	case CodeInvalidContainer:
		return mdwerror.CodeRixSemantic
	case CodeNestingTooDeep:
		return mdwerror.CodeRixNesting
	default:
		return mdwerror.CodeRixSyntax
	}
}

// DelimiterError reports a quote, backtick or comment delimiter that was
// opened and never closed
type DelimiterError struct {
	Code      ErrorCode
	Message   string
	Position  int
	Line      int
	Column    int
	Delimiter string // the exact closing run that was required
}

func (e *DelimiterError) Error() string {
	return fmt.Sprintf("scan error at line %d, column %d: %s", e.Line, e.Column, e.Message)
}

// ParseError represents a parsing error with position information
type ParseError struct {
	Code     ErrorCode
	Message  string
	Position int
	Line     int
	Column   int
	Token    Token
}

func (pe *ParseError) Error() string {
	if pe.Token.Type == TokenEOF {
		return fmt.Sprintf("parse error at line %d, column %d: %s", pe.Line, pe.Column, pe.Message)
	}
	return fmt.Sprintf("parse error at line %d, column %d: %s (near '%s')",
		pe.Line, pe.Column, pe.Message, strings.TrimSpace(pe.Token.Original))
}

// Located is implemented by both error types
type Located interface {
	error
	ErrorCode() ErrorCode
	Offset() int
}

// ErrorCode returns the classification code
func (e *DelimiterError) ErrorCode() ErrorCode { return e.Code }

// Offset returns the byte offset of the failure
func (e *DelimiterError) Offset() int { return e.Position }

// ErrorCode returns the classification code
func (pe *ParseError) ErrorCode() ErrorCode { return pe.Code }

// Offset returns the byte offset of the failure
func (pe *ParseError) Offset() int { return pe.Position }

// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the RiX toolchain. Scanner
//              and parser failures carry one of the RIX_* codes so callers can
//              classify a failure without string matching.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2025-10-19 v0.2.0: Replaced platform codes with RiX scanner/parser codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidLength    Code = "INVALID_LENGTH"

	// RiX scanner and parser
	CodeRixLexical   Code = "RIX_LEXICAL"   // unterminated quote, backtick, comment or regex
	CodeRixSyntax    Code = "RIX_SYNTAX"    // unexpected token, missing name
	CodeRixStructure Code = "RIX_STRUCTURE" // missing closing bracket for a construct
	CodeRixSemantic  Code = "RIX_SEMANTIC"  // incompatible container contents
	CodeRixNesting   Code = "RIX_NESTING"   // input nested deeper than the parser allows

	// Registry
	CodeDuplicateEntry Code = "DUPLICATE_ENTRY"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsRix reports whether the code belongs to the scanner/parser family
func (c Code) IsRix() bool {
	switch c {
	case CodeRixLexical, CodeRixSyntax, CodeRixStructure, CodeRixSemantic, CodeRixNesting:
		return true
	}
	return false
}

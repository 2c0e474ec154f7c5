// File: kinds.go
// Title: Node Kinds
// Description: The closed set of syntax-tree node kinds.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial kind list

package ast

// NodeKind identifies the variant of a node
type NodeKind int

const (
	KindInvalid NodeKind = iota

	// atoms
	KindNumber
	KindString
	KindComment
	KindUserIdentifier
	KindSystemIdentifier
	KindOuterIdentifier
	KindPlaceHolder
	KindNull
	KindRegexLiteral
	KindEmbeddedLanguage
	KindOperatorReference

	// operators
	KindBinaryOperation
	KindUnaryOperation
	KindTernaryOperation
	KindAssignment
	KindImplicitMultiplication
	KindPropertyAccess
	KindIndexAccess
	KindPipe
	KindExplicitPipe
	KindMap
	KindFilter
	KindReduce
	KindAt
	KindAsk

	// containers
	KindGrouping
	KindTuple
	KindParameterList
	KindArray
	KindMatrix
	KindTensor
	KindSet
	KindMapLiteral
	KindSystem
	KindCodeBlock
	KindCase
	KindLoop
	KindMutation
	KindWithMetadata
	KindGeneratorChain

	// functions and calculus
	KindFunctionCall
	KindFunctionDefinition
	KindFunctionLambda
	KindPatternMatchingFunction
	KindDerivative
	KindIntegral

	KindStatement
)

var kindNames = [...]string{
	KindInvalid:                 "Invalid",
	KindNumber:                  "Number",
	KindString:                  "String",
	KindComment:                 "Comment",
	KindUserIdentifier:          "UserIdentifier",
	KindSystemIdentifier:        "SystemIdentifier",
	KindOuterIdentifier:         "OuterIdentifier",
	KindPlaceHolder:             "PlaceHolder",
	KindNull:                    "Null",
	KindRegexLiteral:            "RegexLiteral",
	KindEmbeddedLanguage:        "EmbeddedLanguage",
	KindOperatorReference:       "OperatorReference",
	KindBinaryOperation:         "BinaryOperation",
	KindUnaryOperation:          "UnaryOperation",
	KindTernaryOperation:        "TernaryOperation",
	KindAssignment:              "Assignment",
	KindImplicitMultiplication:  "ImplicitMultiplication",
	KindPropertyAccess:          "PropertyAccess",
	KindIndexAccess:             "IndexAccess",
	KindPipe:                    "Pipe",
	KindExplicitPipe:            "ExplicitPipe",
	KindMap:                     "Map",
	KindFilter:                  "Filter",
	KindReduce:                  "Reduce",
	KindAt:                      "At",
	KindAsk:                     "Ask",
	KindGrouping:                "Grouping",
	KindTuple:                   "Tuple",
	KindParameterList:           "ParameterList",
	KindArray:                   "Array",
	KindMatrix:                  "Matrix",
	KindTensor:                  "Tensor",
	KindSet:                     "Set",
	KindMapLiteral:              "MapLiteral",
	KindSystem:                  "System",
	KindCodeBlock:               "CodeBlock",
	KindCase:                    "Case",
	KindLoop:                    "Loop",
	KindMutation:                "Mutation",
	KindWithMetadata:            "WithMetadata",
	KindGeneratorChain:          "GeneratorChain",
	KindFunctionCall:            "FunctionCall",
	KindFunctionDefinition:      "FunctionDefinition",
	KindFunctionLambda:          "FunctionLambda",
	KindPatternMatchingFunction: "PatternMatchingFunction",
	KindDerivative:              "Derivative",
	KindIntegral:                "Integral",
	KindStatement:               "Statement",
}

// String returns the kind name, e.g. "BinaryOperation"
func (k NodeKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Invalid"
	}
	return kindNames[k]
}

// MarshalText encodes the kind by name for JSON and YAML output
func (k NodeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

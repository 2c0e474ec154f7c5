// File: nodes.go
// Title: RiX Syntax Tree Nodes
// Description: Defines every syntax-tree node variant produced by the
//              parser. Each node embeds Base, which carries the source span
//              and the exact original text, and owns its children.
// Author: msto63
// Version: v0.2.0
// Created: 2025-10-19
// Modified: 2025-10-20
//
// Change History:
// - 2025-10-19 v0.1.0: Initial node definitions
// - 2025-10-20 v0.2.0: Info descriptor on operator nodes

package ast

import (
	"github.com/jostylr/rix-parser-sub000/foundation/rix/registry"
)

// Node is implemented by every syntax-tree variant
type Node interface {
	Kind() NodeKind
	Position() Position
	// Text returns the original source text of the node, including the
	// leading whitespace of its first token
	Text() string
	Children() []Node
}

// Base holds the fields shared by all nodes
type Base struct {
	Pos      Position
	Original string
}

// Position returns the source span
func (b Base) Position() Position { return b.Pos }

// Text returns the original source text
func (b Base) Text() string { return b.Original }

func collect(nodes ...Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

// ---- atoms ----

// Number is a numeric literal in any of the supported formats, kept as
// written
type Number struct {
	Base
	Value string
}

func (*Number) Kind() NodeKind   { return KindNumber }
func (*Number) Children() []Node { return nil }

// String is a quoted string literal
type String struct {
	Base
	Value      string
	Delimiters int
}

func (*String) Kind() NodeKind   { return KindString }
func (*String) Children() []Node { return nil }

// Comment is a line or block comment. Block is false only for ## line
// comments.
type Comment struct {
	Base
	Value string
	Block bool
}

func (*Comment) Kind() NodeKind   { return KindComment }
func (*Comment) Children() []Node { return nil }

// UserIdentifier is a lowercase-led identifier, normalized to lower case
type UserIdentifier struct {
	Base
	Name string
}

func (*UserIdentifier) Kind() NodeKind   { return KindUserIdentifier }
func (*UserIdentifier) Children() []Node { return nil }

// SystemIdentifier is an uppercase-led identifier with the descriptor the
// resolver returned for it
type SystemIdentifier struct {
	Base
	Name string
	Info registry.Descriptor
}

func (*SystemIdentifier) Kind() NodeKind   { return KindSystemIdentifier }
func (*SystemIdentifier) Children() []Node { return nil }

// OuterIdentifier is an @name reference to an enclosing scope
type OuterIdentifier struct {
	Base
	Name string
}

func (*OuterIdentifier) Kind() NodeKind   { return KindOuterIdentifier }
func (*OuterIdentifier) Children() []Node { return nil }

// PlaceHolder is _N
type PlaceHolder struct {
	Base
	Index int
}

func (*PlaceHolder) Kind() NodeKind   { return KindPlaceHolder }
func (*PlaceHolder) Children() []Node { return nil }

// Null is the bare _ symbol, or the synthesized primary of a metadata
// array without one
type Null struct {
	Base
}

func (*Null) Kind() NodeKind   { return KindNull }
func (*Null) Children() []Node { return nil }

// RegexLiteral is {/pattern/flags}
type RegexLiteral struct {
	Base
	Pattern string
	Flags   string
}

func (*RegexLiteral) Kind() NodeKind   { return KindRegexLiteral }
func (*RegexLiteral) Children() []Node { return nil }

// EmbeddedLanguage is a backtick literal split into Language(Context):Body
type EmbeddedLanguage struct {
	Base
	Language string
	Context  string
	Body     string
}

func (*EmbeddedLanguage) Kind() NodeKind   { return KindEmbeddedLanguage }
func (*EmbeddedLanguage) Children() []Node { return nil }

// OperatorReference is an operator symbol used as a function, as in +(a, b)
type OperatorReference struct {
	Base
	Operator string
}

func (*OperatorReference) Kind() NodeKind   { return KindOperatorReference }
func (*OperatorReference) Children() []Node { return nil }

// ---- operators ----

// BinaryOperation covers arithmetic, comparison, logic, equations,
// intervals, conditions and generator operators. Info is the resolver's
// descriptor when Operator is a System identifier such as AND, nil for
// symbol operators.
type BinaryOperation struct {
	Base
	Operator string
	Info     *registry.Descriptor
	Left     Node
	Right    Node
}

func (*BinaryOperation) Kind() NodeKind     { return KindBinaryOperation }
func (n *BinaryOperation) Children() []Node { return collect(n.Left, n.Right) }

// UnaryOperation is a prefix operator application. Info is set as for
// BinaryOperation.
type UnaryOperation struct {
	Base
	Operator string
	Info     *registry.Descriptor
	Operand  Node
}

func (*UnaryOperation) Kind() NodeKind     { return KindUnaryOperation }
func (n *UnaryOperation) Children() []Node { return collect(n.Operand) }

// TernaryOperation is cond ?? then ?: else
type TernaryOperation struct {
	Base
	Condition Node
	Then      Node
	Else      Node
}

func (*TernaryOperation) Kind() NodeKind { return KindTernaryOperation }
func (n *TernaryOperation) Children() []Node {
	return collect(n.Condition, n.Then, n.Else)
}

// Assignment is target := value
type Assignment struct {
	Base
	Operator string
	Target   Node
	Value    Node
}

func (*Assignment) Kind() NodeKind     { return KindAssignment }
func (n *Assignment) Children() []Node { return collect(n.Target, n.Value) }

// ImplicitMultiplication is juxtaposition such as 2x or f(x) with a
// lowercase f
type ImplicitMultiplication struct {
	Base
	Left  Node
	Right Node
}

func (*ImplicitMultiplication) Kind() NodeKind     { return KindImplicitMultiplication }
func (n *ImplicitMultiplication) Children() []Node { return collect(n.Left, n.Right) }

// PropertyAccess is object.property
type PropertyAccess struct {
	Base
	Object   Node
	Property Node
}

func (*PropertyAccess) Kind() NodeKind     { return KindPropertyAccess }
func (n *PropertyAccess) Children() []Node { return collect(n.Object, n.Property) }

// IndexAccess is object[i, ...] with the bracket adjacent to the object
type IndexAccess struct {
	Base
	Object  Node
	Indices []Node
}

func (*IndexAccess) Kind() NodeKind { return KindIndexAccess }
func (n *IndexAccess) Children() []Node {
	return append(collect(n.Object), n.Indices...)
}

// PipeOperands is shared by the pipe family
type PipeOperands struct {
	Left  Node
	Right Node
}

// Children returns the left then the right operand
func (p PipeOperands) Children() []Node { return collect(p.Left, p.Right) }

// Pipe is a |> f
type Pipe struct {
	Base
	PipeOperands
}

func (*Pipe) Kind() NodeKind { return KindPipe }

// ExplicitPipe is a ||> f
type ExplicitPipe struct {
	Base
	PipeOperands
}

func (*ExplicitPipe) Kind() NodeKind { return KindExplicitPipe }

// Map is a |>> f
type Map struct {
	Base
	PipeOperands
}

func (*Map) Kind() NodeKind { return KindMap }

// Filter is a |>? p
type Filter struct {
	Base
	PipeOperands
}

func (*Filter) Kind() NodeKind { return KindFilter }

// Reduce is a |>: f
type Reduce struct {
	Base
	PipeOperands
}

func (*Reduce) Kind() NodeKind { return KindReduce }

// At is the postfix target@(args)
type At struct {
	Base
	Target    Node
	Arguments []Node
}

func (*At) Kind() NodeKind     { return KindAt }
func (n *At) Children() []Node { return append(collect(n.Target), n.Arguments...) }

// Ask is the postfix target?(args)
type Ask struct {
	Base
	Target    Node
	Arguments []Node
}

func (*Ask) Kind() NodeKind     { return KindAsk }
func (n *Ask) Children() []Node { return append(collect(n.Target), n.Arguments...) }

// ---- containers ----

// Grouping is a parenthesized expression without a comma
type Grouping struct {
	Base
	Expression Node
}

func (*Grouping) Kind() NodeKind     { return KindGrouping }
func (n *Grouping) Children() []Node { return collect(n.Expression) }

// Tuple is (a, b), (a,) or ()
type Tuple struct {
	Base
	Elements []Node
}

func (*Tuple) Kind() NodeKind     { return KindTuple }
func (n *Tuple) Children() []Node { return n.Elements }

// ParameterList is (a, b; c := 1): positional entries before the first
// semicolon, keyword entries after it
type ParameterList struct {
	Base
	Positional []Node
	Keyword    []Node
}

func (*ParameterList) Kind() NodeKind { return KindParameterList }
func (n *ParameterList) Children() []Node {
	return append(append([]Node{}, n.Positional...), n.Keyword...)
}

// Array is [a, b, c]
type Array struct {
	Base
	Elements []Node
}

func (*Array) Kind() NodeKind     { return KindArray }
func (n *Array) Children() []Node { return n.Elements }

// Row is one run of elements inside a matrix or tensor. Separator is the
// number of semicolons that ended it, 0 for the last row.
type Row struct {
	Elements  []Node
	Separator int
}

// Matrix is [a, b; c, d]
type Matrix struct {
	Base
	Rows []Row
}

func (*Matrix) Kind() NodeKind     { return KindMatrix }
func (n *Matrix) Children() []Node { return rowChildren(n.Rows) }

// Tensor is a bracket literal with semicolon runs longer than one.
// MaxDimension is the longest run plus one.
type Tensor struct {
	Base
	Rows         []Row
	MaxDimension int
}

func (*Tensor) Kind() NodeKind     { return KindTensor }
func (n *Tensor) Children() []Node { return rowChildren(n.Rows) }

func rowChildren(rows []Row) []Node {
	var out []Node
	for _, r := range rows {
		out = append(out, r.Elements...)
	}
	return out
}

// Set is {a, b}
type Set struct {
	Base
	Elements []Node
}

func (*Set) Kind() NodeKind     { return KindSet }
func (n *Set) Children() []Node { return n.Elements }

// MapLiteral is {k := v, ...}; every entry is an *Assignment
type MapLiteral struct {
	Base
	Entries []Node
}

func (*MapLiteral) Kind() NodeKind     { return KindMapLiteral }
func (n *MapLiteral) Children() []Node { return n.Entries }

// System is {x :=: 1; y :>: 2}; every entry is an equation
type System struct {
	Base
	Equations []Node
}

func (*System) Kind() NodeKind     { return KindSystem }
func (n *System) Children() []Node { return n.Equations }

// CodeBlock is {; a; b}
type CodeBlock struct {
	Base
	Statements []Node
}

func (*CodeBlock) Kind() NodeKind     { return KindCodeBlock }
func (n *CodeBlock) Children() []Node { return n.Statements }

// Case is {? cond ? value; ...}
type Case struct {
	Base
	Branches []Node
}

func (*Case) Kind() NodeKind     { return KindCase }
func (n *Case) Children() []Node { return n.Branches }

// Loop is {@ init; cond; body; step}
type Loop struct {
	Base
	Parts []Node
}

func (*Loop) Kind() NodeKind     { return KindLoop }
func (n *Loop) Children() []Node { return n.Parts }

// Mutation is target{= changes}
type Mutation struct {
	Base
	Target     Node
	Operations []Node
}

func (*Mutation) Kind() NodeKind { return KindMutation }
func (n *Mutation) Children() []Node {
	return append(collect(n.Target), n.Operations...)
}

// WithMetadata is [primary, key := value, ...]. Keys keeps source order.
type WithMetadata struct {
	Base
	Primary  Node
	Metadata map[string]Node
	Keys     []string
}

func (*WithMetadata) Kind() NodeKind { return KindWithMetadata }
func (n *WithMetadata) Children() []Node {
	out := collect(n.Primary)
	for _, k := range n.Keys {
		out = append(out, n.Metadata[k])
	}
	return out
}

// GeneratorStep is one operator of a generator chain
type GeneratorStep struct {
	Operator string
	Operand  Node
}

// GeneratorChain is start |+ step |^ limit ... inside an array
type GeneratorChain struct {
	Base
	Start     Node
	Operators []GeneratorStep
}

func (*GeneratorChain) Kind() NodeKind { return KindGeneratorChain }
func (n *GeneratorChain) Children() []Node {
	out := collect(n.Start)
	for _, s := range n.Operators {
		out = append(out, s.Operand)
	}
	return out
}

// ---- functions and calculus ----

// Parameter is one formal parameter of a function definition or lambda
type Parameter struct {
	Name    string
	Default Node
	Keyword bool
}

func parameterChildren(params []Parameter) []Node {
	var out []Node
	for _, p := range params {
		if p.Default != nil {
			out = append(out, p.Default)
		}
	}
	return out
}

// FunctionCall is F(a, b; k := v), op(a, b) or obj.F(a)
type FunctionCall struct {
	Base
	Function   Node
	Positional []Node
	Keyword    []Node
}

func (*FunctionCall) Kind() NodeKind { return KindFunctionCall }
func (n *FunctionCall) Children() []Node {
	out := append(collect(n.Function), n.Positional...)
	return append(out, n.Keyword...)
}

// FunctionDefinition is name(params) :-> body
type FunctionDefinition struct {
	Base
	Name       string
	Parameters []Parameter
	Body       Node
}

func (*FunctionDefinition) Kind() NodeKind { return KindFunctionDefinition }
func (n *FunctionDefinition) Children() []Node {
	return append(parameterChildren(n.Parameters), collect(n.Body)...)
}

// FunctionLambda is (params) -> body
type FunctionLambda struct {
	Base
	Parameters []Parameter
	Body       Node
}

func (*FunctionLambda) Kind() NodeKind { return KindFunctionLambda }
func (n *FunctionLambda) Children() []Node {
	return append(parameterChildren(n.Parameters), collect(n.Body)...)
}

// PatternMatchingFunction is name :=> [pattern, ...]
type PatternMatchingFunction struct {
	Base
	Name       string
	Parameters []Parameter
	Patterns   []Node
}

func (*PatternMatchingFunction) Kind() NodeKind { return KindPatternMatchingFunction }
func (n *PatternMatchingFunction) Children() []Node {
	return append(parameterChildren(n.Parameters), n.Patterns...)
}

// Derivative is f' with Order counting the marks, optionally followed by
// [x] variables and (...) arguments. Evaluation holds plain points,
// Operations holds arguments that are themselves calculus expressions.
type Derivative struct {
	Base
	Function   Node
	Order      int
	Variables  []Node
	Evaluation []Node
	Operations []Node
}

func (*Derivative) Kind() NodeKind { return KindDerivative }
func (n *Derivative) Children() []Node {
	out := append(collect(n.Function), n.Variables...)
	out = append(out, n.Evaluation...)
	return append(out, n.Operations...)
}

// Integral is 'f with Order counting the leading marks
type Integral struct {
	Base
	Function            Node
	Order               int
	Variables           []Node
	Evaluation          []Node
	Operations          []Node
	IntegrationConstant string
}

func (*Integral) Kind() NodeKind { return KindIntegral }
func (n *Integral) Children() []Node {
	out := append(collect(n.Function), n.Variables...)
	out = append(out, n.Evaluation...)
	return append(out, n.Operations...)
}

// Statement is an expression terminated by one or more semicolons
type Statement struct {
	Base
	Expression Node
}

func (*Statement) Kind() NodeKind     { return KindStatement }
func (n *Statement) Children() []Node { return collect(n.Expression) }

// File: symbols.go
// Title: RiX Symbol and Precedence Table
// Description: The fixed operator spellings recognized by the scanner,
//              longest first, and the precedence table consulted by the
//              parser. Built once at package initialization.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial symbol table

package parser

import (
	"sort"

	"github.com/jostylr/rix-parser-sub000/foundation/rix/registry"
)

// Precedence levels, low to high
const (
	PrecStatement  = 0
	PrecAssignment = 10
	PrecDefinition = 15
	PrecPipe       = 20
	PrecArrow      = 25
	PrecCondition  = 27
	PrecOr         = 30
	PrecAnd        = 40
	PrecEquality   = 50
	PrecComparison = 60
	PrecInterval   = 70
	PrecAdditive   = 80
	PrecMultiply   = 90
	PrecUnary      = 95
	PrecExponent   = 100
	PrecPostfix    = 120
	PrecProperty   = 130
)

// Symbol is one precedence table entry
type Symbol struct {
	Precedence    int
	Associativity registry.Associativity
	Fixity        registry.Fixity
}

// symbolList holds every symbol the scanner knows, longest first
var symbolList = []string{
	":<=:", ":>=:",
	":=:", ":<:", ":>:", ":->", ":=>", "|>>", "|>?", "|>:", "||>",
	":=", "->", "<=", ">=", "==", "!=", "&&", "||", "**", "//", "|>",
	"|+", "|*", "|:", "|?", "|;", "|^", "??", "?:",
	"{;", "{?", "{@", "{=",
	"+", "-", "*", "/", "%", "^", "=", "<", ">", "!", "?", "@", "'",
	".", ",", ";", ":", "(", ")", "[", "]", "{", "}", "_",
}

func infix(prec int) Symbol {
	return Symbol{Precedence: prec, Associativity: registry.Left, Fixity: registry.Infix}
}

func infixRight(prec int) Symbol {
	return Symbol{Precedence: prec, Associativity: registry.Right, Fixity: registry.Infix}
}

// symbolTable maps infix, postfix, grouping and separator symbols
var symbolTable = map[string]Symbol{
	";": {Fixity: registry.Separator},
	",": {Fixity: registry.Separator},

	":=": infixRight(PrecAssignment), ":=:": infixRight(PrecAssignment),
	":<:": infixRight(PrecAssignment), ":>:": infixRight(PrecAssignment),
	":<=:": infixRight(PrecAssignment), ":>=:": infixRight(PrecAssignment),

	":->": infixRight(PrecDefinition), ":=>": infixRight(PrecDefinition),

	"|>": infix(PrecPipe), "||>": infix(PrecPipe), "|>>": infix(PrecPipe),
	"|>?": infix(PrecPipe), "|>:": infix(PrecPipe),
	"|+": infix(PrecPipe), "|*": infix(PrecPipe), "|:": infix(PrecPipe),
	"|?": infix(PrecPipe), "|;": infix(PrecPipe), "|^": infix(PrecPipe),

	"->": infixRight(PrecArrow),

	"?":  infixRight(PrecCondition),
	"??": infixRight(PrecCondition),
	"?:": {Fixity: registry.Separator},

	"||": infix(PrecOr),
	"&&": infix(PrecAnd),

	"=": infix(PrecEquality), "==": infix(PrecEquality), "!=": infix(PrecEquality),

	"<": infix(PrecComparison), ">": infix(PrecComparison),
	"<=": infix(PrecComparison), ">=": infix(PrecComparison),

	":": infix(PrecInterval),

	"+": infix(PrecAdditive), "-": infix(PrecAdditive),

	"*": infix(PrecMultiply), "/": infix(PrecMultiply),
	"//": infix(PrecMultiply), "%": infix(PrecMultiply),

	"^": infixRight(PrecExponent), "**": infixRight(PrecExponent),

	"'":  {Precedence: PrecPostfix, Fixity: registry.Postfix},
	"@":  {Precedence: PrecPostfix, Fixity: registry.Postfix},
	"{=": {Precedence: PrecPostfix, Fixity: registry.Postfix},

	".": infix(PrecProperty),

	"(": {Precedence: PrecPostfix, Fixity: registry.Grouping},
	")": {Fixity: registry.Grouping},
	"[": {Precedence: PrecPostfix, Fixity: registry.Grouping},
	"]": {Fixity: registry.Grouping},
	"{": {Fixity: registry.Grouping}, "}": {Fixity: registry.Grouping},
	"{;": {Fixity: registry.Grouping}, "{?": {Fixity: registry.Grouping},
	"{@": {Fixity: registry.Grouping},
}

// prefixTable maps symbols usable in prefix position to the precedence of
// their operand
var prefixTable = map[string]int{
	"-": PrecUnary,
	"+": PrecUnary,
	"!": PrecUnary,
}

var (
	generatorOps = map[string]bool{"|+": true, "|*": true, "|:": true, "|?": true, "|;": true, "|^": true}
	equationOps  = map[string]bool{":=:": true, ":<:": true, ":>:": true, ":<=:": true, ":>=:": true}
	pipeOps      = map[string]bool{"|>": true, "||>": true, "|>>": true, "|>?": true, "|>:": true}
)

// LookupSymbol returns the infix, postfix, grouping or separator entry for s
func LookupSymbol(s string) (Symbol, bool) {
	sym, ok := symbolTable[s]
	return sym, ok
}

// LookupPrefix returns the operand precedence of a prefix operator
func LookupPrefix(s string) (int, bool) {
	prec, ok := prefixTable[s]
	return prec, ok
}

// IsGeneratorOperator reports whether s builds a generator chain
func IsGeneratorOperator(s string) bool { return generatorOps[s] }

// IsEquationOperator reports whether s is an equation operator such as :=:
func IsEquationOperator(s string) bool { return equationOps[s] }

// IsPipeOperator reports whether s is one of the pipe operators
func IsPipeOperator(s string) bool { return pipeOps[s] }

// Category names the role of a symbol for listings
func Category(spelling string, sym Symbol) string {
	switch {
	case IsGeneratorOperator(spelling):
		return "generator"
	case IsEquationOperator(spelling):
		return "equation"
	case IsPipeOperator(spelling):
		return "pipe"
	}
	return sym.Fixity.String()
}

// Symbols returns the scanner's symbol list, longest first
func Symbols() []string {
	return append([]string(nil), symbolList...)
}

// PrecedenceTable returns every table entry ordered by precedence then
// spelling. Prefix operators are listed with the prefix fixity.
func PrecedenceTable() []TableEntry {
	out := make([]TableEntry, 0, len(symbolTable)+len(prefixTable))
	for s, sym := range symbolTable {
		out = append(out, TableEntry{Spelling: s, Symbol: sym, Category: Category(s, sym)})
	}
	for s, prec := range prefixTable {
		sym := Symbol{Precedence: prec, Associativity: registry.Right, Fixity: registry.Prefix}
		out = append(out, TableEntry{Spelling: s, Symbol: sym, Category: Category(s, sym)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Symbol.Precedence != out[j].Symbol.Precedence {
			return out[i].Symbol.Precedence < out[j].Symbol.Precedence
		}
		if out[i].Spelling != out[j].Spelling {
			return out[i].Spelling < out[j].Spelling
		}
		return out[i].Symbol.Fixity < out[j].Symbol.Fixity
	})
	return out
}

// TableEntry pairs a spelling with its table entry
type TableEntry struct {
	Spelling string
	Symbol   Symbol
	Category string
}

func init() {
	sort.SliceStable(symbolList, func(i, j int) bool {
		return len(symbolList[i]) > len(symbolList[j])
	})
}

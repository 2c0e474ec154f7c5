// File: builtins.go
// Title: Builtin System Identifiers
// Description: The standard functions, constants and word operators known
//              to the default registry.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial builtin set

package registry

import "math"

var builtins = map[string]Descriptor{
	"SIN":  {Kind: KindFunction, Arity: 1},
	"COS":  {Kind: KindFunction, Arity: 1},
	"TAN":  {Kind: KindFunction, Arity: 1},
	"EXP":  {Kind: KindFunction, Arity: 1},
	"LN":   {Kind: KindFunction, Arity: 1},
	"LOG":  {Kind: KindFunction, Arity: -1},
	"SQRT": {Kind: KindFunction, Arity: 1},
	"ABS":  {Kind: KindFunction, Arity: 1},
	"MAX":  {Kind: KindFunction, Arity: -1},
	"MIN":  {Kind: KindFunction, Arity: -1},
	"SUM":  {Kind: KindFunction, Arity: -1},

	"PI": {Kind: KindConstant, Value: math.Pi},
	"E":  {Kind: KindConstant, Value: math.E},

	"AND": {Kind: KindOperator, Precedence: 40, Associativity: Left, Fixity: Infix},
	"OR":  {Kind: KindOperator, Precedence: 30, Associativity: Left, Fixity: Infix},
	"MOD": {Kind: KindOperator, Precedence: 90, Associativity: Left, Fixity: Infix},
	"NOT": {Kind: KindOperator, Precedence: 95, Associativity: Right, Fixity: Prefix},
}

// Builtins returns a copy of the builtin descriptor table
func Builtins() map[string]Descriptor {
	out := make(map[string]Descriptor, len(builtins))
	for k, v := range builtins {
		out[k] = v
	}
	return out
}

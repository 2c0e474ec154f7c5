// File: interface.go
// Title: RiX Identifier Resolution Interface
// Description: Defines the descriptor returned for System identifiers and
//              the Resolver interface the parser calls once per occurrence.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial descriptor and resolver definitions

package registry

import (
	"fmt"
	"strings"
)

// Kind classifies a System identifier
type Kind int

const (
	KindIdentifier Kind = iota
	KindFunction
	KindConstant
	KindOperator
)

// String returns the lowercase kind name used in definition files
func (k Kind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindConstant:
		return "constant"
	case KindOperator:
		return "operator"
	default:
		return "identifier"
	}
}

// Associativity of an operator
type Associativity int

const (
	Left Associativity = iota
	Right
)

// String returns "left" or "right"
func (a Associativity) String() string {
	if a == Right {
		return "right"
	}
	return "left"
}

// ParseAssociativity parses "left" or "right"; empty means left
func ParseAssociativity(s string) (Associativity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return Left, fmt.Errorf("invalid associativity %q", s)
	}
}

// Fixity is the syntactic position of an operator
type Fixity int

const (
	Infix Fixity = iota
	Prefix
	Postfix
	Grouping
	Separator
)

// String returns the lowercase fixity name
func (f Fixity) String() string {
	switch f {
	case Prefix:
		return "prefix"
	case Postfix:
		return "postfix"
	case Grouping:
		return "grouping"
	case Separator:
		return "separator"
	default:
		return "infix"
	}
}

// ParseFixity parses a fixity name; empty means infix. Only prefix and
// infix are meaningful for System identifiers.
func ParseFixity(s string) (Fixity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "infix":
		return Infix, nil
	case "prefix":
		return Prefix, nil
	case "postfix":
		return Postfix, nil
	default:
		return Infix, fmt.Errorf("invalid fixity %q", s)
	}
}

// Descriptor is what the parser learns about a System identifier.
// Arity -1 means variadic.
type Descriptor struct {
	Kind          Kind
	Arity         int
	Value         interface{}
	Precedence    int
	Associativity Associativity
	Fixity        Fixity
}

// IsOperator reports whether the descriptor makes the identifier usable
// with the given fixity
func (d Descriptor) IsOperator(fixity Fixity) bool {
	return d.Kind == KindOperator && d.Fixity == fixity
}

// Identifier is the descriptor for names nothing knows about
func Identifier() Descriptor {
	return Descriptor{Kind: KindIdentifier}
}

// Resolver classifies uppercase-normalized System identifier names
type Resolver interface {
	Resolve(name string) Descriptor
}

// ResolverFunc adapts a function to the Resolver interface
type ResolverFunc func(name string) Descriptor

// Resolve calls f(name)
func (f ResolverFunc) Resolve(name string) Descriptor {
	return f(name)
}

// Default resolves every name to a plain identifier
var Default Resolver = ResolverFunc(func(string) Descriptor { return Identifier() })

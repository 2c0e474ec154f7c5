// File: doc.go
// Title: RiX Registry Package Documentation
// Description: Package documentation for System identifier resolution.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial documentation

/*
Package registry resolves RiX System identifiers (names whose first letter is
upper case) to descriptors: functions with an arity, constants with a value,
word operators with a precedence, or plain identifiers.

The parser accepts any Resolver. Registry is the default implementation and
can be seeded with builtins and extended from YAML or TOML files:

	functions:
	  - name: GCD
	    arity: 2
	constants:
	  - name: TAU
	    value: 6.283185307179586
	operators:
	  - name: XOR
	    precedence: 35
	    fixity: infix
*/
package registry

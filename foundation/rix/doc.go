// File: doc.go
// Title: RiX Package Documentation
// Description: Package documentation for the RiX engine.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial documentation

/*
Package rix is the entry point for scanning and parsing RiX, a language
for mathematical expressions.

An Engine bundles an identifier registry with a parser:

	engine, err := rix.New(rix.Options{})
	if err != nil {
		return err
	}
	res, err := engine.Parse(ctx, "f(x) :-> x^2 + 1; f(3)")

Each call gets a request ID and is timed through the engine's logger.
Parse results are cached by source text; Define changes the registry and
invalidates the cache.

Failures are *error.Error values from foundation/core/error with a RIX_*
code. The underlying *parser.ParseError or *parser.DelimiterError stays
reachable with errors.As and carries the exact position.

NewFromConfig builds an engine from a configuration file; see ConfigDefaults
for the recognized keys.
*/
package rix

// Package error provides the structured error type shared by the RiX toolchain.
//
// Package: error
// Title: RiX Error Handling
// Description: Errors carry a code, a severity, the failing operation and
//              details. Scanner and parser failures are wrapped with one of
//              the RIX_* codes by the engine; the typed parser error stays
//              reachable through errors.As.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-10-19 v0.2.0: RiX codes
//
// Usage:
//
//	err := mdwerror.Wrap(parseErr, "parse failed").
//		WithCode(mdwerror.CodeRixSyntax).
//		WithOperation("rix.Parse").
//		WithDetail("offset", 12)
//
//	if mdwerror.HasCode(err, mdwerror.CodeRixSyntax) { ... }
package error

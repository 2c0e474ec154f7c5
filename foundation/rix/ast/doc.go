// File: doc.go
// Title: RiX Syntax Tree Package Documentation
// Description: Package documentation for the RiX syntax-tree model.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial documentation

/*
Package ast defines the syntax tree produced by the RiX parser.

Every node implements Node and embeds Base, so each one knows its byte span
and the exact source text it was parsed from. Node variants form a closed
set listed in kinds.go; consumers switch on the concrete type.

Children are owned by their parent and nodes are not modified after the
parser returns them. Walk and Inspect traverse a tree depth first.
*/
package ast

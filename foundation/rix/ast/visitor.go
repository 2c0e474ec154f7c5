// File: visitor.go
// Title: Syntax Tree Traversal
// Description: Depth-first traversal over the closed node set, plus small
//              helpers used by the parser and the renderers.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial Walk and Inspect implementation

package ast

// Visitor is called for each node by Walk. If it returns a non-nil
// visitor w, Walk visits each child with w, followed by w.Visit(nil).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses the tree rooted at node in depth-first order
func Walk(v Visitor, node Node) {
	if node == nil {
		return
	}
	if v = v.Visit(node); v == nil {
		return
	}
	for _, child := range node.Children() {
		Walk(v, child)
	}
	v.Visit(nil)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect calls f for every node in depth-first order. Children are
// skipped when f returns false. f is called with nil after the children
// of a node have been visited.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

// Contains reports whether any node below root, root included, satisfies
// pred
func Contains(root Node, pred func(Node) bool) bool {
	found := false
	Inspect(root, func(n Node) bool {
		if found || n == nil {
			return false
		}
		if pred(n) {
			found = true
			return false
		}
		return true
	})
	return found
}

// Count returns the number of nodes in the tree rooted at node
func Count(node Node) int {
	total := 0
	Inspect(node, func(n Node) bool {
		if n != nil {
			total++
		}
		return true
	})
	return total
}

// IsCalculus reports whether n is a Derivative or Integral
func IsCalculus(n Node) bool {
	switch n.(type) {
	case *Derivative, *Integral:
		return true
	}
	return false
}

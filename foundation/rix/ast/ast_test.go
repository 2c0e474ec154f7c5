// File: ast_test.go
// Title: Syntax Tree Tests
// Description: Tests for line/column mapping, kind names and traversal.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial tests

package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineColumn(t *testing.T) {
	src := "a := 1;\nβ := 2;\r\nc"
	li := NewLineIndex(src)

	tests := []struct {
		offset    int
		line, col int
	}{
		{0, 1, 1},
		{5, 1, 6},
		{8, 2, 1},
		{10, 2, 2}, // after the two-byte β
		{len(src) - 1, 3, 1},
		{len(src) + 10, 3, 2},
		{-3, 1, 1},
	}
	for _, tt := range tests {
		line, col := li.LineColumn(tt.offset)
		assert.Equal(t, tt.line, line, "line for offset %d", tt.offset)
		assert.Equal(t, tt.col, col, "column for offset %d", tt.offset)
	}

	assert.Equal(t, "β := 2;", li.Line(2))
	assert.Equal(t, "c", li.Line(3))
	assert.Equal(t, "", li.Line(4))

	line, col := LineColumn("x\ny", 2)
	assert.Equal(t, 2, line)
	assert.Equal(t, 1, col)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "BinaryOperation", KindBinaryOperation.String())
	assert.Equal(t, "Statement", KindStatement.String())
	assert.Equal(t, "Invalid", NodeKind(-1).String())
	assert.Equal(t, "Invalid", NodeKind(1000).String())

	text, err := KindMatrix.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "Matrix", string(text))
}

func sampleTree() Node {
	// 2 + f'(x)
	return &Statement{Expression: &BinaryOperation{
		Operator: "+",
		Left:     &Number{Value: "2"},
		Right: &Derivative{
			Function:   &UserIdentifier{Name: "f"},
			Order:      1,
			Evaluation: []Node{&UserIdentifier{Name: "x"}},
		},
	}}
}

func TestWalkOrder(t *testing.T) {
	var kinds []NodeKind
	Inspect(sampleTree(), func(n Node) bool {
		if n != nil {
			kinds = append(kinds, n.Kind())
		}
		return true
	})

	assert.Equal(t, []NodeKind{
		KindStatement,
		KindBinaryOperation,
		KindNumber,
		KindDerivative,
		KindUserIdentifier,
		KindUserIdentifier,
	}, kinds)
	assert.Equal(t, 6, Count(sampleTree()))
}

func TestInspectSkipsChildren(t *testing.T) {
	visited := 0
	Inspect(sampleTree(), func(n Node) bool {
		if n == nil {
			return false
		}
		visited++
		return n.Kind() != KindBinaryOperation
	})
	assert.Equal(t, 2, visited)
}

func TestContains(t *testing.T) {
	assert.True(t, Contains(sampleTree(), IsCalculus))
	assert.False(t, Contains(&Number{Value: "1"}, IsCalculus))
}

func TestChildrenOrder(t *testing.T) {
	meta := &WithMetadata{
		Primary:  &Number{Value: "1"},
		Metadata: map[string]Node{"b": &Number{Value: "3"}, "a": &Number{Value: "2"}},
		Keys:     []string{"b", "a"},
	}
	children := meta.Children()
	if assert.Len(t, children, 3) {
		assert.Equal(t, "3", children[1].(*Number).Value)
		assert.Equal(t, "2", children[2].(*Number).Value)
	}

	tensor := &Tensor{Rows: []Row{
		{Elements: []Node{&Number{Value: "1"}}, Separator: 2},
		{Elements: []Node{&Number{Value: "2"}, &Number{Value: "3"}}},
	}, MaxDimension: 3}
	assert.Len(t, tensor.Children(), 3)

	pipe := &Map{PipeOperands: PipeOperands{Left: &Array{}, Right: &UserIdentifier{Name: "f"}}}
	assert.Equal(t, KindMap, pipe.Kind())
	assert.Len(t, pipe.Children(), 2)
}

// File: parser_test.go
// Title: RiX Parser Tests
// Description: End-to-end parsing scenarios, container classification,
//              function and calculus notation, error reporting and
//              resolver behavior.
// Author: msto63
// Version: v0.2.0
// Created: 2025-10-19
// Modified: 2025-10-20
//
// Change History:
// - 2025-10-19 v0.1.0: Initial tests
// - 2025-10-20 v0.2.0: Metadata key, system separator, operator descriptor and trace cases

package parser

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/jostylr/rix-parser-sub000/foundation/core/error"
	"github.com/jostylr/rix-parser-sub000/foundation/core/log"
	"github.com/jostylr/rix-parser-sub000/foundation/rix/ast"
	"github.com/jostylr/rix-parser-sub000/foundation/rix/registry"
)

// treeOpts compares trees by structure, ignoring spans and source text
var treeOpts = cmp.Options{
	cmpopts.IgnoreTypes(ast.Base{}),
	cmpopts.EquateEmpty(),
}

func num(v string) ast.Node     { return &ast.Number{Value: v} }
func user(name string) ast.Node { return &ast.UserIdentifier{Name: name} }
func stmt(e ast.Node) ast.Node  { return &ast.Statement{Expression: e} }
func bin(op string, l, r ast.Node) ast.Node {
	return &ast.BinaryOperation{Operator: op, Left: l, Right: r}
}
func sys(name string) ast.Node {
	return &ast.SystemIdentifier{Name: name, Info: registry.Identifier()}
}

func mustParse(t *testing.T, input string) []ast.Node {
	t.Helper()
	nodes, err := ParseString(input, nil)
	require.NoError(t, err, "input %q", input)
	return nodes
}

// single parses input and returns its only expression, unwrapping a
// statement
func single(t *testing.T, input string) ast.Node {
	t.Helper()
	nodes := mustParse(t, input)
	require.Len(t, nodes, 1, "input %q", input)
	if st, ok := nodes[0].(*ast.Statement); ok {
		return st.Expression
	}
	return nodes[0]
}

func assertTree(t *testing.T, want, got ast.Node) {
	t.Helper()
	if diff := cmp.Diff(want, got, treeOpts); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func parseError(t *testing.T, input string) *ParseError {
	t.Helper()
	_, err := ParseString(input, nil)
	require.Error(t, err, "input %q", input)
	var pe *ParseError
	require.True(t, errors.As(err, &pe), "want *ParseError, got %T: %v", err, err)
	return pe
}

func TestScenarios(t *testing.T) {
	tests := []struct {
		input string
		want  []ast.Node
	}{
		{
			"2 + 3 * 4;",
			[]ast.Node{stmt(bin("+", num("2"), bin("*", num("3"), num("4"))))},
		},
		{
			"f(x) :-> x + 1;",
			[]ast.Node{stmt(&ast.FunctionDefinition{
				Name:       "f",
				Parameters: []ast.Parameter{{Name: "x"}},
				Body:       bin("+", user("x"), num("1")),
			})},
		},
		{
			"[1, 2; 3, 4];",
			[]ast.Node{stmt(&ast.Matrix{Rows: []ast.Row{
				{Elements: []ast.Node{num("1"), num("2")}, Separator: 1},
				{Elements: []ast.Node{num("3"), num("4")}},
			}})},
		},
		{
			"(3,);",
			[]ast.Node{stmt(&ast.Tuple{Elements: []ast.Node{num("3")}})},
		},
		{
			"(3);",
			[]ast.Node{stmt(&ast.Grouping{Expression: num("3")})},
		},
		{
			"f'",
			[]ast.Node{&ast.Derivative{Function: user("f"), Order: 1}},
		},
		{
			"'f",
			[]ast.Node{&ast.Integral{Function: user("f"), Order: 1, IntegrationConstant: "c"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := mustParse(t, tt.input)
			if diff := cmp.Diff(tt.want, got, treeOpts); diff != "" {
				t.Errorf("tree mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDerivativeWithoutEvaluation(t *testing.T) {
	d, ok := single(t, "f'").(*ast.Derivative)
	require.True(t, ok)
	assert.Nil(t, d.Evaluation)
	assert.Nil(t, d.Operations)
}

func TestTernaryRequiresElse(t *testing.T) {
	pe := parseError(t, "x ?? y;")
	assert.Contains(t, pe.Error(), `Expected "?:"`)
	assert.Equal(t, CodeUnexpectedToken, pe.Code)

	assertTree(t,
		&ast.TernaryOperation{Condition: user("x"), Then: user("y"), Else: user("z")},
		single(t, "x ?? y ?: z;"))
}

func TestGroupingAndTuples(t *testing.T) {
	assertTree(t, &ast.Grouping{Expression: num("42")}, single(t, "(42)"))
	assertTree(t, &ast.Tuple{Elements: []ast.Node{num("42")}}, single(t, "(42,)"))
	assertTree(t, &ast.Tuple{Elements: []ast.Node{}}, single(t, "()"))
	assertTree(t, &ast.Tuple{Elements: []ast.Node{
		num("1"),
		&ast.Tuple{Elements: []ast.Node{num("2"), num("3")}},
	}}, single(t, "(1, (2, 3))"))
	assertTree(t, &ast.Grouping{Expression: &ast.Array{Elements: []ast.Node{num("1"), num("2")}}},
		single(t, "([1, 2])"))
	assertTree(t, &ast.ParameterList{
		Positional: []ast.Node{user("a")},
		Keyword:    []ast.Node{&ast.Assignment{Operator: ":=", Target: user("n"), Value: num("2")}},
	}, single(t, "(a; n := 2)"))

	pe := parseError(t, "(1, , 2);")
	assert.Equal(t, CodeInvalidContainer, pe.Code)
	assert.Contains(t, pe.Message, "Consecutive commas")

	pe = parseError(t, "(1 + 2")
	assert.Equal(t, CodeMissingCloser, pe.Code)
}

func TestMatrixTensorLaw(t *testing.T) {
	tests := []struct {
		input string
		kind  ast.NodeKind
		dim   int
	}{
		{"[1, 2, 3]", ast.KindArray, 0},
		{"[1; 2]", ast.KindMatrix, 0},
		{"[1, 2; 3, 4; 5, 6]", ast.KindMatrix, 0},
		{"[1;; 2]", ast.KindTensor, 3},
		{"[1; 2;;; 3]", ast.KindTensor, 4},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			n := single(t, tt.input)
			assert.Equal(t, tt.kind, n.Kind())
			if tensor, ok := n.(*ast.Tensor); ok {
				assert.Equal(t, tt.dim, tensor.MaxDimension)
			}
			if matrix, ok := n.(*ast.Matrix); ok {
				last := len(matrix.Rows) - 1
				for i, row := range matrix.Rows[:last] {
					assert.Equal(t, 1, row.Separator, "row %d", i)
				}
				assert.Zero(t, matrix.Rows[last].Separator, "the closing row has no separator")
			}
		})
	}

	pe := parseError(t, "[1, 2")
	assert.Equal(t, CodeMissingCloser, pe.Code)
	assert.Contains(t, pe.Message, "']'")
}

func TestAskVersusCondition(t *testing.T) {
	assertTree(t, &ast.Ask{Target: user("x"), Arguments: []ast.Node{user("y")}}, single(t, "x?(y)"))
	assertTree(t, bin("?", user("x"), bin(":", user("y"), user("z"))), single(t, "x ? y : z"))
	assertTree(t, &ast.At{Target: user("x"), Arguments: []ast.Node{num("1")}}, single(t, "x@(1)"))
}

func TestBraceContainers(t *testing.T) {
	assertTree(t, &ast.Set{Elements: []ast.Node{num("1"), num("2")}}, single(t, "{1, 2}"))
	assertTree(t, &ast.Set{}, single(t, "{}"))
	assertTree(t, &ast.MapLiteral{Entries: []ast.Node{
		&ast.Assignment{Operator: ":=", Target: user("a"), Value: num("1")},
		&ast.Assignment{Operator: ":=", Target: &ast.String{Value: "b", Delimiters: 1}, Value: num("2")},
	}}, single(t, `{a := 1, "b" := 2}`))
	assertTree(t, &ast.System{Equations: []ast.Node{
		bin(":=:", user("x"), num("1")),
		bin(":<:", user("y"), num("2")),
	}}, single(t, "{x :=: 1; y :<: 2}"))
	assert.Equal(t, ast.KindSystem, single(t, "{x :=: 1}").Kind())

	assertTree(t, &ast.CodeBlock{Statements: []ast.Node{
		&ast.Assignment{Operator: ":=", Target: user("a"), Value: num("1")},
		user("a"),
	}}, single(t, "{; a := 1; a}"))
	assertTree(t, &ast.Case{Branches: []ast.Node{
		bin("?", bin(">", user("x"), num("0")), num("1")),
		num("0"),
	}}, single(t, "{? x > 0 ? 1; 0}"))
	assert.Equal(t, ast.KindLoop, single(t, "{@ i := 0; i < 3; i}").Kind())

	tests := []struct {
		input string
		code  ErrorCode
	}{
		{"{x :=: 1, 2}", CodeInvalidContainer},
		{"{x :=: 1, y :=: 2}", CodeInvalidContainer},
		{"{a := 1, 2}", CodeInvalidContainer},
		{"{1 + 2 := 3}", CodeInvalidContainer},
		{"{1, , 2}", CodeInvalidContainer},
		{"{1, 2", CodeMissingCloser},
		{"{; a", CodeMissingCloser},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.code, parseError(t, tt.input).Code)
		})
	}
}

func TestMutation(t *testing.T) {
	assertTree(t, &ast.Mutation{
		Target: user("obj"),
		Operations: []ast.Node{
			&ast.Assignment{Operator: ":=", Target: user("a"), Value: num("1")},
		},
	}, single(t, "obj{= a := 1}"))
}

func TestMetadata(t *testing.T) {
	assertTree(t, &ast.WithMetadata{
		Primary:  user("x"),
		Metadata: map[string]ast.Node{"name": &ast.String{Value: "a", Delimiters: 1}},
		Keys:     []string{"name"},
	}, single(t, `[x, name := "a"]`))

	m, ok := single(t, "[k := 1]").(*ast.WithMetadata)
	require.True(t, ok)
	assert.Equal(t, ast.KindNull, m.Primary.Kind())

	tests := []struct {
		input   string
		message string
	}{
		{"[1, 2, k := 1]", "only one primary"},
		{"[1; k := 2]", "matrix or tensor"},
		{"[2 := 3]", "Metadata key must be an identifier or a string"},
		{"[a[1] := 3]", "Metadata key must be an identifier or a string"},
		{"[x, 2 := 3]", "Metadata key must be an identifier or a string"},
	}
	for _, tt := range tests {
		pe := parseError(t, tt.input)
		assert.Equal(t, CodeInvalidContainer, pe.Code)
		assert.Contains(t, pe.Message, tt.message)
	}
}

func TestGeneratorChain(t *testing.T) {
	assertTree(t, &ast.Array{Elements: []ast.Node{
		&ast.GeneratorChain{
			Start: num("1"),
			Operators: []ast.GeneratorStep{
				{Operator: "|+", Operand: num("2")},
				{Operator: "|^", Operand: num("10")},
			},
		},
	}}, single(t, "[1 |+ 2 |^ 10]"))

	// outside brackets the operators stay binary
	assertTree(t, bin("|^", bin("|+", num("1"), num("2")), num("10")), single(t, "1 |+ 2 |^ 10"))

	pe := parseError(t, "[1 |+ 2 |> f]")
	assert.Equal(t, CodeInvalidContainer, pe.Code)
}

func TestFunctions(t *testing.T) {
	assertTree(t, &ast.FunctionCall{
		Function:   sys("SIN"),
		Positional: []ast.Node{user("x")},
	}, single(t, "Sin(x)"))

	assertTree(t, &ast.FunctionCall{
		Function:   sys("F"),
		Positional: []ast.Node{num("1"), num("2")},
		Keyword:    []ast.Node{&ast.Assignment{Operator: ":=", Target: user("n"), Value: num("3")}},
	}, single(t, "F(1, 2; n := 3)"))

	assertTree(t, &ast.FunctionCall{
		Function:   &ast.OperatorReference{Operator: "+"},
		Positional: []ast.Node{num("2"), num("3")},
	}, single(t, "+(2, 3)"))

	assertTree(t, &ast.FunctionDefinition{
		Name: "G",
		Parameters: []ast.Parameter{
			{Name: "x"},
			{Name: "n", Default: num("2"), Keyword: true},
		},
		Body: bin("^", user("x"), user("n")),
	}, single(t, "G(x; n := 2) :-> x^n"))

	assertTree(t, &ast.FunctionLambda{
		Parameters: []ast.Parameter{{Name: "x"}, {Name: "y"}},
		Body:       bin("+", user("x"), user("y")),
	}, single(t, "(x, y) -> x + y"))

	assertTree(t, &ast.PatternMatchingFunction{
		Name:     "g",
		Patterns: []ast.Node{num("0"), num("1")},
	}, single(t, "g :=> [0, 1]"))

	// a non-parameter left side keeps -> as an operator
	assertTree(t, bin("->", num("1"), num("2")), single(t, "1 -> 2"))

	pe := parseError(t, "1 + 2 :-> 3")
	assert.Equal(t, CodeUnexpectedToken, pe.Code)
}

func TestImplicitMultiplication(t *testing.T) {
	assertTree(t, &ast.ImplicitMultiplication{Left: num("2"), Right: user("x")}, single(t, "2x"))
	assertTree(t, &ast.ImplicitMultiplication{
		Left:  num("2"),
		Right: bin("^", user("x"), num("2")),
	}, single(t, "2x^2"))
	assertTree(t, &ast.ImplicitMultiplication{
		Left:  num("3"),
		Right: &ast.Grouping{Expression: bin("+", user("x"), num("1"))},
	}, single(t, "3(x+1)"))
	assertTree(t, bin("+",
		&ast.ImplicitMultiplication{Left: num("2"), Right: user("x")},
		num("1"),
	), single(t, "2x + 1"))
}

func TestOperators(t *testing.T) {
	assertTree(t, &ast.Assignment{
		Operator: ":=",
		Target:   user("a"),
		Value:    &ast.Assignment{Operator: ":=", Target: user("b"), Value: num("1")},
	}, single(t, "a := b := 1"))

	assertTree(t, bin("^", user("a"), bin("^", user("b"), user("c"))), single(t, "a^b^c"))
	assertTree(t, bin("-", bin("-", user("a"), user("b")), user("c")), single(t, "a - b - c"))
	assertTree(t, &ast.UnaryOperation{Operator: "-", Operand: user("x")}, single(t, "-x"))
	assertTree(t, bin("+", num("1"), num("-2")), single(t, "1 + -2"))

	assertTree(t, &ast.Map{PipeOperands: ast.PipeOperands{
		Left:  &ast.Pipe{PipeOperands: ast.PipeOperands{Left: user("x"), Right: user("f")}},
		Right: user("g"),
	}}, single(t, "x |> f |>> g"))

	assertTree(t, &ast.IndexAccess{
		Object:  &ast.PropertyAccess{Object: user("obj"), Property: sys("NAME")},
		Indices: []ast.Node{num("1")},
	}, single(t, "obj.Name[1]"))

	assertTree(t, &ast.Null{}, single(t, "_"))
	assertTree(t, &ast.PlaceHolder{Index: 2}, single(t, "_2"))
	assertTree(t, &ast.OuterIdentifier{Name: "count"}, single(t, "@count"))
	assertTree(t, &ast.RegexLiteral{Pattern: "a+", Flags: "g"}, single(t, "{/a+/g}"))
}

func TestRegistryOperators(t *testing.T) {
	reg, err := registry.New(registry.Options{Logger: log.Discard(), Builtins: true})
	require.NoError(t, err)

	nodes, err := ParseString("a AND b OR NOT c;", reg)
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	and, _ := reg.Lookup("AND")
	or, _ := reg.Lookup("OR")
	not, _ := reg.Lookup("NOT")
	want := stmt(&ast.BinaryOperation{Operator: "OR", Info: &or,
		Left:  &ast.BinaryOperation{Operator: "AND", Info: &and, Left: user("a"), Right: user("b")},
		Right: &ast.UnaryOperation{Operator: "NOT", Info: &not, Operand: user("c")},
	})
	assertTree(t, want, nodes[0])
	top := nodes[0].(*ast.Statement).Expression.(*ast.BinaryOperation)
	assert.Equal(t, 40, top.Left.(*ast.BinaryOperation).Info.Precedence)
	assert.Nil(t, single(t, "a + b").(*ast.BinaryOperation).Info, "symbol operators carry no descriptor")

	nodes, err = ParseString("Pi", reg)
	require.NoError(t, err)
	id, ok := nodes[0].(*ast.SystemIdentifier)
	require.True(t, ok)
	assert.Equal(t, registry.KindConstant, id.Info.Kind)
}

func TestResolverCalledOncePerToken(t *testing.T) {
	calls := map[string]int{}
	resolver := registry.ResolverFunc(func(name string) registry.Descriptor {
		calls[name]++
		return registry.Identifier()
	})

	_, err := ParseString("2 B + B; F(B)", resolver)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"B": 3, "F": 1}, calls)
}

func TestDerivativesAndIntegrals(t *testing.T) {
	assertTree(t, &ast.Derivative{
		Function:   user("f"),
		Order:      1,
		Evaluation: []ast.Node{user("x")},
	}, single(t, "f'(x)"))

	assertTree(t, &ast.Derivative{
		Function:   user("f"),
		Order:      2,
		Variables:  []ast.Node{user("x")},
		Evaluation: []ast.Node{num("2")},
	}, single(t, "f''[x](2)"))

	assertTree(t, &ast.Derivative{
		Function: user("f"),
		Order:    1,
		Operations: []ast.Node{
			&ast.Integral{Function: user("g"), Order: 1, IntegrationConstant: "c"},
		},
	}, single(t, "f'('g)"))

	assertTree(t, &ast.Integral{
		Function:            user("f"),
		Order:               2,
		Variables:           []ast.Node{user("x")},
		IntegrationConstant: "c",
	}, single(t, "''f[x]"))

	pe := parseError(t, "2'")
	assert.Equal(t, CodeUnexpectedToken, pe.Code)
}

func TestEmbeddedLanguage(t *testing.T) {
	assertTree(t, &ast.EmbeddedLanguage{Language: "SQL", Context: "db", Body: "select 1"},
		single(t, "`SQL(db):select 1`"))
	assertTree(t, &ast.EmbeddedLanguage{Language: "js", Body: "x+1"}, single(t, "`js:x+1`"))
	assertTree(t, &ast.EmbeddedLanguage{Body: "plain text: here"}, single(t, "`plain text: here`"))

	tests := []struct {
		input   string
		code    ErrorCode
		message string
	}{
		{"`a):b`", CodeInvalidContainer, "closing"},
		{"`a(b:c`", CodeMissingCloser, "opening"},
		{"`a(b)(c):d`", CodeInvalidContainer, "Multiple"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			pe := parseError(t, tt.input)
			assert.Equal(t, tt.code, pe.Code)
			assert.Contains(t, pe.Message, tt.message)
		})
	}
}

func TestCommentsAreEmittedAfterTheirUnit(t *testing.T) {
	nodes := mustParse(t, "a; ## note\nb + ## inner\n c;")
	require.Len(t, nodes, 4)

	assert.Equal(t, ast.KindStatement, nodes[0].Kind())
	assert.Equal(t, ast.KindComment, nodes[1].Kind())
	assert.Equal(t, " note", nodes[1].(*ast.Comment).Value)
	assert.Equal(t, ast.KindStatement, nodes[2].Kind())
	assert.Equal(t, " inner", nodes[3].(*ast.Comment).Value)
}

func TestTopLevelUnits(t *testing.T) {
	nodes := mustParse(t, "a;; ; b")
	require.Len(t, nodes, 2)
	assert.Equal(t, ast.KindStatement, nodes[0].Kind())
	assert.Equal(t, ast.KindUserIdentifier, nodes[1].Kind())

	assert.Empty(t, mustParse(t, ""))

	pe := parseError(t, "a )")
	assert.Equal(t, CodeUnexpectedToken, pe.Code)
	assert.Contains(t, pe.Message, "expected ';' or end of input")

	pe = parseError(t, "x :=")
	assert.Contains(t, pe.Message, "Unexpected end of input")
}

func TestSpansAndPositions(t *testing.T) {
	nodes := mustParse(t, "x := 3 + 4;")
	st := nodes[0].(*ast.Statement)
	assert.Equal(t, "x := 3 + 4;", st.Text())

	assign := st.Expression.(*ast.Assignment)
	sum := assign.Value.(*ast.BinaryOperation)
	assert.Equal(t, " 3 + 4", sum.Text())
	assert.Equal(t, 5, sum.Position().Delimiter)
	assert.Equal(t, 10, sum.Position().End)

	pe := parseError(t, "x :=\n  )")
	assert.Equal(t, 2, pe.Line)
	assert.Equal(t, 3, pe.Column)
	assert.Equal(t, 7, pe.Position)
}

func TestNestingDepth(t *testing.T) {
	deep := strings.Repeat("(", 600) + "1" + strings.Repeat(")", 600)
	pe := parseError(t, deep)
	assert.Equal(t, CodeNestingTooDeep, pe.Code)

	p, err := New(Options{Logger: log.Discard(), MaxDepth: 8})
	require.NoError(t, err)
	_, err = p.ParseString("[[[[[[[[[1]]]]]]]]]")
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, CodeNestingTooDeep, perr.Code)

	_, err = p.ParseString("[[1]]")
	assert.NoError(t, err)
}

func TestTraceLogsEachTopLevelNode(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New().WithOutput(&buf).WithLevel(log.LevelTrace)
	p, err := New(Options{Logger: logger})
	require.NoError(t, err)

	_, err = p.ParseString("a; b := 2")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(buf.String(), "RiX node parsed"), buf.String())

	buf.Reset()
	p, err = New(Options{Logger: logger.WithLevel(log.LevelDebug)})
	require.NoError(t, err)
	_, err = p.ParseString("a; b")
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "RiX node parsed")
}

func TestMaxInputLength(t *testing.T) {
	p, err := New(Options{Logger: log.Discard(), MaxInputLength: 4})
	require.NoError(t, err)

	_, err = p.ParseString("1 + 2 + 3")
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidLength))
}

func TestSplitEmbedded(t *testing.T) {
	e, err := SplitEmbedded("Py(3.12):print(1)")
	require.NoError(t, err)
	assert.Equal(t, Embedded{Language: "Py", Context: "3.12", Body: "print(1)"}, e)

	_, err = SplitEmbedded("a(b:c")
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 1, pe.Position)
}

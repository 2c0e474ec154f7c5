package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/jostylr/rix-parser-sub000/foundation/core/error"
	"github.com/jostylr/rix-parser-sub000/foundation/rix/parser"
	"github.com/jostylr/rix-parser-sub000/foundation/rix/registry"
)

func parse(t *testing.T, src string) ([]parser.Token, []map[string]interface{}) {
	t.Helper()
	tokens, err := parser.Tokenize(src)
	require.NoError(t, err)
	nodes, err := parser.Parse(tokens, nil)
	require.NoError(t, err)
	return tokens, Nodes(nodes)
}

func TestNodeMap(t *testing.T) {
	_, nodes := parse(t, "x := Sin(3 + 4)")
	require.Len(t, nodes, 1)

	assign := nodes[0]
	assert.Equal(t, "Assignment", assign["type"])
	assert.Equal(t, ":=", assign["operator"])
	assert.Equal(t, "UserIdentifier", assign["target"].(map[string]interface{})["type"])

	call := assign["value"].(map[string]interface{})
	assert.Equal(t, "FunctionCall", call["type"])
	fn := call["function"].(map[string]interface{})
	assert.Equal(t, "SIN", fn["name"])
	assert.Equal(t, "function", fn["info"].(map[string]interface{})["kind"])

	args := call["positional"].([]interface{})
	require.Len(t, args, 1)
	assert.Equal(t, "+", args[0].(map[string]interface{})["operator"])
	assert.NotContains(t, call, "keyword", "empty fields are left out")
}

func TestEncodeJSONAndYAML(t *testing.T) {
	_, nodes := parse(t, "[1, 2; 3, 4]")

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FormatJSON, nodes))
	var fromJSON []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fromJSON))
	assert.Equal(t, "Matrix", fromJSON[0]["type"])
	assert.Len(t, fromJSON[0]["rows"], 2)

	buf.Reset()
	require.NoError(t, Encode(&buf, FormatYAML, nodes))
	var fromYAML []map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &fromYAML))
	assert.Equal(t, "Matrix", fromYAML[0]["type"])
	pos := fromYAML[0]["pos"].(map[string]interface{})
	assert.Equal(t, 0, pos["start"])
	assert.Equal(t, 12, pos["end"])

	err := Encode(&buf, FormatText, nodes)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidInput))
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatText, "JSON": FormatJSON, "yml": FormatYAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestTokensTable(t *testing.T) {
	tokens, _ := parse(t, "a :=: B")
	var buf bytes.Buffer
	require.NoError(t, New(&buf).Tokens(tokens))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "TYPE")
	assert.Contains(t, lines[2], `":=:"`)
	assert.Contains(t, lines[3], "System")
	assert.Contains(t, lines[4], "End")

	maps := Tokens(tokens)
	assert.Equal(t, "B", maps[2]["value"])
	assert.Equal(t, "System", maps[2]["kind"])
}

func TestTree(t *testing.T) {
	tokens, err := parser.Tokenize("f(x) :-> x^2;")
	require.NoError(t, err)
	nodes, err := parser.Parse(tokens, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, New(&buf).Tree(nodes))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Statement"), out)
	assert.Contains(t, out, "  FunctionDefinition f")
	assert.Contains(t, out, "BinaryOperation ^")
}

func TestDiagnostic(t *testing.T) {
	src := "x :=\n  )"
	tokens, err := parser.Tokenize(src)
	require.NoError(t, err)
	_, err = parser.Parse(tokens, nil)
	require.Error(t, err)

	line, column, ok := Location(err)
	require.True(t, ok)
	assert.Equal(t, 2, line)
	assert.Equal(t, 3, column)

	var buf bytes.Buffer
	require.NoError(t, New(&buf).Diagnostic(src, err))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "error: "))
	assert.Equal(t, "2 |   )", lines[1])
	assert.Equal(t, "      ^", lines[2])

	buf.Reset()
	require.NoError(t, New(&buf).Diagnostic(src, mdwerror.New("plain")))
	assert.Equal(t, "error: plain\n", buf.String())
}

func TestSymbols(t *testing.T) {
	entries := parser.PrecedenceTable()
	var buf bytes.Buffer
	require.NoError(t, New(&buf).Symbols(entries))
	assert.Contains(t, buf.String(), "CATEGORY")
	assert.Contains(t, buf.String(), "equation")

	maps := Symbols(entries)
	assert.Len(t, maps, len(entries))
}

func TestDefinitions(t *testing.T) {
	defs := map[string]registry.Descriptor{
		"PI":  {Kind: registry.KindConstant, Value: 3.14159},
		"MAX": {Kind: registry.KindFunction, Arity: -1},
		"AND": {Kind: registry.KindOperator, Precedence: 40, Fixity: registry.Infix},
	}
	var buf bytes.Buffer
	require.NoError(t, New(&buf).Definitions(defs))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "AND"))
	assert.Contains(t, lines[1], "infix left 40")
	assert.Contains(t, lines[2], "variadic")
	assert.Contains(t, lines[3], "3.14159")

	maps := Definitions(defs)
	assert.Equal(t, 40, maps["AND"].(map[string]interface{})["precedence"])
}

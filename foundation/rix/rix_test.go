// File: rix_test.go
// Title: RiX Engine Tests
// Description: Tests for engine parsing, caching, registry changes, error
//              wrapping and configuration-driven construction.
// Author: msto63
// Version: v0.2.0
// Created: 2025-10-19
// Modified: 2025-10-20
//
// Change History:
// - 2025-10-19 v0.1.0: Initial tests
// - 2025-10-20 v0.2.0: Registry revision and registry load failure cases

package rix

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwconfig "github.com/jostylr/rix-parser-sub000/foundation/core/config"
	mdwerror "github.com/jostylr/rix-parser-sub000/foundation/core/error"
	mdwlog "github.com/jostylr/rix-parser-sub000/foundation/core/log"
	"github.com/jostylr/rix-parser-sub000/foundation/rix/ast"
	"github.com/jostylr/rix-parser-sub000/foundation/rix/parser"
	"github.com/jostylr/rix-parser-sub000/foundation/rix/registry"
)

func newTestEngine(t *testing.T, opts Options) *Engine {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = mdwlog.Discard()
	}
	e, err := New(opts)
	require.NoError(t, err)
	return e
}

func TestEngineParse(t *testing.T) {
	e := newTestEngine(t, Options{})

	res, err := e.Parse(context.Background(), "y := Sin(x) + 2x;")
	require.NoError(t, err)

	_, err = uuid.Parse(res.RequestID)
	assert.NoError(t, err, "request ID should be a UUID")
	assert.False(t, res.Cached)
	require.Len(t, res.Nodes, 1)
	assert.Equal(t, parser.TokenEOF, res.Tokens[len(res.Tokens)-1].Type)

	var call *ast.FunctionCall
	ast.Inspect(res.Nodes[0], func(n ast.Node) bool {
		if c, ok := n.(*ast.FunctionCall); ok {
			call = c
		}
		return true
	})
	require.NotNil(t, call)
	assert.Equal(t, registry.KindFunction, call.Function.(*ast.SystemIdentifier).Info.Kind)
}

func TestEngineCache(t *testing.T) {
	e := newTestEngine(t, Options{})
	ctx := context.Background()

	first, err := e.Parse(ctx, "a + b")
	require.NoError(t, err)
	second, err := e.Parse(ctx, "a + b")
	require.NoError(t, err)

	assert.True(t, second.Cached)
	assert.NotEqual(t, first.RequestID, second.RequestID)
	assert.Equal(t, int64(1), e.CacheStats().Hits)

	disabled := newTestEngine(t, Options{CacheSize: -1})
	_, err = disabled.Parse(ctx, "a")
	require.NoError(t, err)
	res, err := disabled.Parse(ctx, "a")
	require.NoError(t, err)
	assert.False(t, res.Cached)
	assert.Zero(t, disabled.CacheStats().Hits)
}

func TestEngineDefineInvalidatesCache(t *testing.T) {
	e := newTestEngine(t, Options{})
	ctx := context.Background()

	res, err := e.Parse(ctx, "a XOR b")
	require.NoError(t, err)
	assert.Equal(t, ast.KindImplicitMultiplication, res.Nodes[0].Kind())

	require.NoError(t, e.Define("XOR", registry.Descriptor{
		Kind:          registry.KindOperator,
		Precedence:    35,
		Associativity: registry.Left,
		Fixity:        registry.Infix,
	}))

	res, err = e.Parse(ctx, "a XOR b")
	require.NoError(t, err)
	assert.False(t, res.Cached)
	bin, ok := res.Nodes[0].(*ast.BinaryOperation)
	require.True(t, ok)
	assert.Equal(t, "XOR", bin.Operator)

	err = e.Define("", registry.Descriptor{})
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidInput))
}

func TestEngineRegistryChangesBypassCache(t *testing.T) {
	e := newTestEngine(t, Options{})
	ctx := context.Background()

	res, err := e.Parse(ctx, "FOO")
	require.NoError(t, err)
	assert.Equal(t, registry.KindIdentifier, res.Nodes[0].(*ast.SystemIdentifier).Info.Kind)

	e.Registry().Replace("FOO", registry.Descriptor{Kind: registry.KindConstant, Value: 42})
	res, err = e.Parse(ctx, "FOO")
	require.NoError(t, err)
	assert.False(t, res.Cached)
	assert.Equal(t, registry.KindConstant, res.Nodes[0].(*ast.SystemIdentifier).Info.Kind)

	require.NoError(t, e.Registry().Register("BAR", registry.Descriptor{Kind: registry.KindFunction, Arity: 1}))
	res, err = e.Parse(ctx, "FOO")
	require.NoError(t, err)
	assert.False(t, res.Cached, "any registration invalidates earlier parses")

	res, err = e.Parse(ctx, "FOO")
	require.NoError(t, err)
	assert.True(t, res.Cached)
}

func TestEngineErrors(t *testing.T) {
	e := newTestEngine(t, Options{})
	ctx := context.Background()

	_, err := e.Parse(ctx, "x := (1 + 2")
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeRixStructure))
	assert.Equal(t, mdwerror.SeverityLow, mdwerror.GetSeverity(err))

	var pe *parser.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, parser.CodeMissingCloser, pe.Code)

	var me *mdwerror.Error
	require.True(t, errors.As(err, &me))
	assert.Equal(t, "rix.Parse", me.Operation())
	assert.Equal(t, 1, me.Details()["line"])
	assert.Equal(t, "MISSING_CLOSER", me.Details()["rix_code"])
	assert.NotEmpty(t, me.RequestID())

	_, err = e.Scan(ctx, `s := "open`)
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeRixLexical))
	var de *parser.DelimiterError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, `"`, de.Delimiter)
}

func TestEngineLimits(t *testing.T) {
	e := newTestEngine(t, Options{MaxInputLength: 3})
	_, err := e.Parse(context.Background(), "1 + 2")
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidLength))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = e.Scan(ctx, "1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestEngineScan(t *testing.T) {
	e := newTestEngine(t, Options{})
	res, err := e.Scan(context.Background(), "a :=: b")
	require.NoError(t, err)
	assert.Nil(t, res.Nodes)
	require.Len(t, res.Tokens, 4)
	assert.Equal(t, ":=:", res.Tokens[1].Value)
}

func TestNewFromConfig(t *testing.T) {
	dir := t.TempDir()
	defs := filepath.Join(dir, "ops.yaml")
	require.NoError(t, os.WriteFile(defs, []byte(`
operators:
  - name: XOR
    precedence: 35
    fixity: infix
`), 0o644))

	cfg, err := mdwconfig.LoadFromString(`
parser:
  max_depth: 4
cache:
  max_items: -1
registry:
  builtins: false
  file: `+defs+`
`, mdwconfig.FormatYAML)
	require.NoError(t, err)

	e, err := NewFromConfig(cfg, mdwlog.Discard())
	require.NoError(t, err)

	assert.Equal(t, registry.KindIdentifier, e.Registry().Resolve("SIN").Kind)
	res, err := e.Parse(context.Background(), "a XOR b")
	require.NoError(t, err)
	assert.Equal(t, ast.KindBinaryOperation, res.Nodes[0].Kind())

	_, err = e.Parse(context.Background(), "((((((1))))))")
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeRixNesting))

	bad, err := mdwconfig.LoadFromString("[parser]\nmax_depth = 0\n", mdwconfig.FormatTOML)
	require.NoError(t, err)
	_, err = NewFromConfig(bad, mdwlog.Discard())
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidConfig))
}

func TestNewFromConfigLogsRegistryLoadFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")
	cfg := mdwconfig.Empty("", map[string]interface{}{KeyRegistryFile: missing})

	var buf bytes.Buffer
	logger := mdwlog.New().WithOutput(&buf).WithFormat(mdwlog.FormatJSON)
	_, err := NewFromConfig(cfg, logger)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "failed to load registry definitions")
	assert.Contains(t, buf.String(), missing)
}

func TestNewLogger(t *testing.T) {
	cfg := mdwconfig.Empty("", map[string]interface{}{
		KeyLogLevel:  "debug",
		KeyLogFormat: "json",
	})
	var buf bytes.Buffer
	logger, err := NewLogger(cfg, &buf)
	require.NoError(t, err)

	e := newTestEngine(t, Options{Logger: logger})
	_, err = e.Parse(context.Background(), "1")
	require.NoError(t, err)
	assert.True(t, strings.Contains(buf.String(), `"request_id"`), buf.String())

	cfg.Set(KeyLogLevel, "loud")
	_, err = NewLogger(cfg, &buf)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidConfig))
}

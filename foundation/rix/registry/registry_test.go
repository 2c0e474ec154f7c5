// File: registry_test.go
// Title: RiX Registry Tests
// Description: Tests for registration, resolution and definition files.
// Author: msto63
// Version: v0.2.0
// Created: 2025-10-19
// Modified: 2025-10-20
//
// Change History:
// - 2025-10-19 v0.1.0: Initial tests
// - 2025-10-20 v0.2.0: Revision counter cases

package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/jostylr/rix-parser-sub000/foundation/core/error"
	"github.com/jostylr/rix-parser-sub000/foundation/core/log"
)

func newTestRegistry(t *testing.T, builtins bool) *Registry {
	t.Helper()
	r, err := New(Options{Logger: log.Discard(), Builtins: builtins})
	require.NoError(t, err)
	return r
}

func TestBuiltins(t *testing.T) {
	r := newTestRegistry(t, true)

	assert.Equal(t, len(Builtins()), r.Len())
	assert.Equal(t, KindFunction, r.Resolve("sin").Kind)
	assert.Equal(t, 1, r.Resolve("SIN").Arity)
	assert.Equal(t, -1, r.Resolve("MAX").Arity)
	assert.Equal(t, KindConstant, r.Resolve("PI").Kind)

	and := r.Resolve("AND")
	assert.True(t, and.IsOperator(Infix))
	assert.Equal(t, 40, and.Precedence)
	assert.True(t, r.Resolve("NOT").IsOperator(Prefix))

	assert.Equal(t, Identifier(), r.Resolve("UNKNOWN"))
}

func TestRegister(t *testing.T) {
	r := newTestRegistry(t, false)

	require.NoError(t, r.Register("gcd", Descriptor{Kind: KindFunction, Arity: 2}))
	d, ok := r.Lookup("GCD")
	require.True(t, ok)
	assert.Equal(t, 2, d.Arity)

	err := r.Register("GCD", Descriptor{Kind: KindFunction})
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeDuplicateEntry))

	err = r.Register(" ", Descriptor{})
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidInput))

	err = r.Register("BAD", Descriptor{Kind: KindOperator})
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeValidationFailed))

	assert.Equal(t, []string{"GCD"}, r.Names())
}

func TestRevision(t *testing.T) {
	r, err := New(Options{Logger: log.Discard()})
	require.NoError(t, err)
	start := r.Revision()

	require.NoError(t, r.Register("F", Descriptor{Kind: KindFunction, Arity: 1}))
	assert.Equal(t, start+1, r.Revision())

	r.Replace("F", Descriptor{Kind: KindConstant})
	assert.Equal(t, start+2, r.Revision())

	assert.Error(t, r.Register("F", Descriptor{}))
	assert.Equal(t, start+2, r.Revision(), "failed registrations leave the revision alone")

	r.Lookup("F")
	r.Resolve("G")
	assert.Equal(t, start+2, r.Revision(), "reads leave the revision alone")

	require.NoError(t, r.LoadBytes([]byte("constants:\n  - name: E2\n    value: 7\n"), "yaml"))
	assert.Equal(t, start+3, r.Revision())
}

func TestResolverFunc(t *testing.T) {
	calls := 0
	var res Resolver = ResolverFunc(func(name string) Descriptor {
		calls++
		if name == "F" {
			return Descriptor{Kind: KindFunction, Arity: 1}
		}
		return Identifier()
	})

	assert.Equal(t, KindFunction, res.Resolve("F").Kind)
	assert.Equal(t, KindIdentifier, res.Resolve("G").Kind)
	assert.Equal(t, 2, calls)
	assert.Equal(t, KindIdentifier, Default.Resolve("ANY").Kind)
}

func TestLoadBytes(t *testing.T) {
	yamlDefs := `
functions:
  - name: gcd
    arity: 2
  - name: Avg
constants:
  - name: TAU
    value: 6.28
operators:
  - name: XOR
    precedence: 35
    associativity: left
  - name: NEG
    precedence: 95
    fixity: prefix
`
	tomlDefs := `
[[functions]]
name = "GCD"
arity = 2

[[functions]]
name = "AVG"

[[constants]]
name = "TAU"
value = 6.28

[[operators]]
name = "XOR"
precedence = 35

[[operators]]
name = "NEG"
precedence = 95
fixity = "prefix"
`
	for _, tc := range []struct {
		format string
		data   string
	}{
		{"yaml", yamlDefs},
		{"toml", tomlDefs},
	} {
		t.Run(tc.format, func(t *testing.T) {
			r := newTestRegistry(t, false)
			require.NoError(t, r.LoadBytes([]byte(tc.data), tc.format))

			assert.Equal(t, 2, r.Resolve("GCD").Arity)
			assert.Equal(t, -1, r.Resolve("AVG").Arity)
			assert.Equal(t, 6.28, r.Resolve("TAU").Value)
			assert.True(t, r.Resolve("XOR").IsOperator(Infix))
			assert.Equal(t, 35, r.Resolve("XOR").Precedence)
			assert.True(t, r.Resolve("NEG").IsOperator(Prefix))
		})
	}
}

func TestLoadBytesErrors(t *testing.T) {
	r := newTestRegistry(t, false)

	err := r.LoadBytes([]byte("operators:\n  - name: X\n    precedence: 10\n    fixity: postfix\n"), "yaml")
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeValidationFailed))

	err = r.LoadBytes([]byte("operators:\n  - name: X\n"), "yaml")
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeValidationFailed))

	err = r.LoadBytes([]byte("functions: [ {"), "yaml")
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidConfig))

	err = r.LoadBytes([]byte("{}"), "json")
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidInput))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "symbols.yml")
	require.NoError(t, os.WriteFile(path, []byte("constants:\n  - name: G\n    value: 9.81\n"), 0644))

	r := newTestRegistry(t, true)
	require.NoError(t, r.LoadFile(path))
	assert.Equal(t, 9.81, r.Resolve("G").Value)

	err := r.LoadFile(filepath.Join(dir, "missing.toml"))
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeNotFound))
}

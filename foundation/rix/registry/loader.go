// File: loader.go
// Title: Registry Definition Files
// Description: Loads functions, constants and operators from YAML or TOML
//              definition files into a registry.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial YAML/TOML loader

package registry

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/jostylr/rix-parser-sub000/foundation/core/error"
	"github.com/jostylr/rix-parser-sub000/foundation/core/log"
)

// Definitions is the on-disk shape of a registry file
type Definitions struct {
	Functions []FunctionDef `yaml:"functions" toml:"functions"`
	Constants []ConstantDef `yaml:"constants" toml:"constants"`
	Operators []OperatorDef `yaml:"operators" toml:"operators"`
}

// FunctionDef declares a function; a missing arity means variadic
type FunctionDef struct {
	Name  string `yaml:"name" toml:"name"`
	Arity *int   `yaml:"arity" toml:"arity"`
}

// ConstantDef declares a constant with an arbitrary value
type ConstantDef struct {
	Name  string      `yaml:"name" toml:"name"`
	Value interface{} `yaml:"value" toml:"value"`
}

// OperatorDef declares a word operator such as AND
type OperatorDef struct {
	Name          string `yaml:"name" toml:"name"`
	Precedence    int    `yaml:"precedence" toml:"precedence"`
	Associativity string `yaml:"associativity" toml:"associativity"`
	Fixity        string `yaml:"fixity" toml:"fixity"`
}

// LoadFile reads a definition file, choosing the decoder by extension
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		code := mdwerror.CodeConfigError
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return mdwerror.Wrap(err, "failed to read registry file").
			WithCode(code).
			WithOperation("registry.LoadFile").
			WithDetail("path", path)
	}

	format := "toml"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = "yaml"
	}

	if err := r.LoadBytes(data, format); err != nil {
		return mdwerror.Wrap(err, "failed to load registry file").
			WithOperation("registry.LoadFile").
			WithDetail("path", path)
	}
	return nil
}

// LoadBytes decodes definitions in the given format ("yaml" or "toml")
// and registers them. Entries replace builtins of the same name.
func (r *Registry) LoadBytes(data []byte, format string) error {
	var defs Definitions

	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &defs); err != nil {
			return mdwerror.Wrap(err, "YAML parse error").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("registry.LoadBytes")
		}
	case "toml":
		if err := toml.Unmarshal(data, &defs); err != nil {
			return mdwerror.Wrap(err, "TOML parse error").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("registry.LoadBytes")
		}
	default:
		return mdwerror.New("unsupported registry format: " + format).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("registry.LoadBytes")
	}

	return r.apply(defs)
}

func (r *Registry) apply(defs Definitions) error {
	entries := make(map[string]Descriptor)

	for _, f := range defs.Functions {
		arity := -1
		if f.Arity != nil {
			arity = *f.Arity
		}
		entries[f.Name] = Descriptor{Kind: KindFunction, Arity: arity}
	}
	for _, c := range defs.Constants {
		entries[c.Name] = Descriptor{Kind: KindConstant, Value: c.Value}
	}
	for _, o := range defs.Operators {
		assoc, err := ParseAssociativity(o.Associativity)
		if err != nil {
			return invalidDefinition(o.Name, err)
		}
		fixity, err := ParseFixity(o.Fixity)
		if err != nil {
			return invalidDefinition(o.Name, err)
		}
		if fixity != Infix && fixity != Prefix {
			return invalidDefinition(o.Name, mdwerror.New("operators must be infix or prefix"))
		}
		if o.Precedence <= 0 {
			return invalidDefinition(o.Name, mdwerror.New("operators need a positive precedence"))
		}
		entries[o.Name] = Descriptor{
			Kind:          KindOperator,
			Precedence:    o.Precedence,
			Associativity: assoc,
			Fixity:        fixity,
		}
	}

	for name, d := range entries {
		if normalize(name) == "" {
			return invalidDefinition(name, mdwerror.New("empty name"))
		}
		r.Replace(name, d)
	}

	r.logger.Info("RiX registry definitions loaded", log.Fields{
		"functions": len(defs.Functions),
		"constants": len(defs.Constants),
		"operators": len(defs.Operators),
	})
	return nil
}

func invalidDefinition(name string, cause error) error {
	return mdwerror.Wrap(cause, "invalid definition for "+normalize(name)).
		WithCode(mdwerror.CodeValidationFailed).
		WithOperation("registry.apply").
		WithDetail("name", normalize(name))
}

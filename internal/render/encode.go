package render

import (
	"encoding/json"
	"io"
	"reflect"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	mdwerror "github.com/jostylr/rix-parser-sub000/foundation/core/error"
	"github.com/jostylr/rix-parser-sub000/foundation/rix/ast"
	"github.com/jostylr/rix-parser-sub000/foundation/rix/parser"
	"github.com/jostylr/rix-parser-sub000/foundation/rix/registry"
)

// Format selects the output encoding
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a --format value
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "":
		return FormatText, nil
	}
	return "", mdwerror.New("unsupported output format: "+s).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("render.ParseFormat").
		WithDetail("format", s)
}

// Encode writes v as JSON or YAML
func Encode(w io.Writer, format Format, v interface{}) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return mdwerror.New("format cannot be encoded: " + string(format)).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("render.Encode")
}

// Nodes converts statements into plain maps for encoding
func Nodes(nodes []ast.Node) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, NodeMap(n))
	}
	return out
}

// NodeMap converts a node and its subtree into nested maps. Every map has
// type, pos and original; the remaining keys are the node's own fields
// in lower camel case, with empty values left out.
func NodeMap(n ast.Node) map[string]interface{} {
	if isNil(n) {
		return nil
	}
	m := map[string]interface{}{
		"type":     n.Kind().String(),
		"pos":      n.Position(),
		"original": n.Text(),
	}
	v := reflect.Indirect(reflect.ValueOf(n))
	if v.Kind() == reflect.Struct {
		fields(v, m)
	}
	return m
}

// Tokens converts tokens into plain maps for encoding
func Tokens(tokens []parser.Token) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(tokens))
	for _, t := range tokens {
		m := map[string]interface{}{
			"type":     t.Type.String(),
			"value":    t.Value,
			"original": t.Original,
			"pos":      t.Pos,
		}
		if d := tokenDetail(t); d != "" {
			m["kind"] = d
		}
		if t.Delimiters > 0 {
			m["delimiters"] = t.Delimiters
		}
		if t.Type == parser.TokenPlaceHolder {
			m["index"] = t.Index
		}
		out = append(out, m)
	}
	return out
}

// Symbols converts operator table entries into plain maps
func Symbols(entries []parser.TableEntry) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(entries))
	for _, e := range entries {
		out = append(out, map[string]interface{}{
			"symbol":        e.Spelling,
			"precedence":    e.Symbol.Precedence,
			"associativity": e.Symbol.Associativity.String(),
			"fixity":        e.Symbol.Fixity.String(),
			"category":      e.Category,
		})
	}
	return out
}

// Definitions converts registry entries into plain maps keyed by name
func Definitions(defs map[string]registry.Descriptor) map[string]interface{} {
	out := make(map[string]interface{}, len(defs))
	for name, d := range defs {
		out[name] = descriptor(d)
	}
	return out
}

func sortedKeys(defs map[string]registry.Descriptor) []string {
	keys := make([]string, 0, len(defs))
	for k := range defs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func fields(v reflect.Value, m map[string]interface{}) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous || !f.IsExported() {
			continue
		}
		if val := plain(v.Field(i)); val != nil {
			m[lowerFirst(f.Name)] = val
		}
	}
}

func plain(v reflect.Value) interface{} {
	if !v.IsValid() {
		return nil
	}
	if v.CanInterface() {
		switch x := v.Interface().(type) {
		case ast.Node:
			if isNil(x) {
				return nil
			}
			return NodeMap(x)
		case registry.Descriptor:
			return descriptor(x)
		}
	}

	switch v.Kind() {
	case reflect.Interface, reflect.Ptr:
		if v.IsNil() {
			return nil
		}
		return plain(v.Elem())
	case reflect.Slice:
		if v.Len() == 0 {
			return nil
		}
		out := make([]interface{}, v.Len())
		for i := range out {
			out[i] = plain(v.Index(i))
		}
		return out
	case reflect.Map:
		if v.Len() == 0 {
			return nil
		}
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		out := make(map[string]interface{}, len(keys))
		for _, k := range keys {
			out[k.String()] = plain(v.MapIndex(k))
		}
		return out
	case reflect.Struct:
		out := make(map[string]interface{})
		fields(v, out)
		return out
	case reflect.String:
		if v.Len() == 0 {
			return nil
		}
	}
	return v.Interface()
}

func descriptor(d registry.Descriptor) map[string]interface{} {
	m := map[string]interface{}{"kind": d.Kind.String()}
	switch d.Kind {
	case registry.KindFunction:
		m["arity"] = d.Arity
	case registry.KindConstant:
		m["value"] = d.Value
	case registry.KindOperator:
		m["precedence"] = d.Precedence
		m["associativity"] = d.Associativity.String()
		m["fixity"] = d.Fixity.String()
	}
	return m
}

func isNil(n ast.Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// File: registry.go
// Title: RiX System Identifier Registry
// Description: Thread-safe table of functions, constants and operators
//              used as the default Resolver. Names are normalized to upper
//              case the same way the scanner normalizes System identifiers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-10-19
// Modified: 2025-10-20
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation with builtins and file loading
// - 2025-10-20 v0.2.0: Revision counter bumped on every change

package registry

import (
	"sort"
	"strings"
	"sync"

	mdwerror "github.com/jostylr/rix-parser-sub000/foundation/core/error"
	"github.com/jostylr/rix-parser-sub000/foundation/core/log"
)

// Options configures registry behavior
type Options struct {
	Logger   *log.Logger
	Builtins bool // register the standard function, constant and operator set
}

// Registry maps System identifier names to descriptors
type Registry struct {
	entries  map[string]Descriptor
	revision uint64 // incremented by every Register and Replace
	logger   *log.Logger
	mutex    sync.RWMutex
}

// New creates a registry, optionally seeded with the builtins
func New(opts Options) (*Registry, error) {
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}

	r := &Registry{
		entries: make(map[string]Descriptor),
		logger:  opts.Logger.WithField("component", "rix-registry"),
	}

	if opts.Builtins {
		for _, name := range sortedNames(builtins) {
			if err := r.Register(name, builtins[name]); err != nil {
				return nil, mdwerror.Wrap(err, "failed to register builtins").
					WithOperation("registry.New")
			}
		}
	}

	r.logger.Info("RiX registry initialized", log.Fields{
		"entries":  len(r.entries),
		"builtins": opts.Builtins,
	})
	return r, nil
}

// Register adds a descriptor. Registering a name twice is an error.
func (r *Registry) Register(name string, d Descriptor) error {
	key := normalize(name)
	if key == "" {
		return mdwerror.New("registry name cannot be empty").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("registry.Register")
	}
	if d.Kind == KindOperator && d.Precedence <= 0 {
		return mdwerror.Newf("operator %s needs a positive precedence", key).
			WithCode(mdwerror.CodeValidationFailed).
			WithOperation("registry.Register").
			WithDetail("name", key)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.entries[key]; exists {
		return mdwerror.Newf("%s already registered", key).
			WithCode(mdwerror.CodeDuplicateEntry).
			WithOperation("registry.Register").
			WithDetail("name", key)
	}
	r.entries[key] = d
	r.revision++

	r.logger.Debug("RiX identifier registered", log.Fields{
		"name": key,
		"kind": d.Kind.String(),
	})
	return nil
}

// Replace sets a descriptor, overwriting any existing entry
func (r *Registry) Replace(name string, d Descriptor) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.entries[normalize(name)] = d
	r.revision++
}

// Revision returns a counter that changes whenever an entry is added or
// replaced. Results resolved against one revision are stale once it moves.
func (r *Registry) Revision() uint64 {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.revision
}

// Lookup returns the descriptor for name if one is registered
func (r *Registry) Lookup(name string) (Descriptor, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	d, ok := r.entries[normalize(name)]
	return d, ok
}

// Resolve implements Resolver; unknown names resolve to Identifier()
func (r *Registry) Resolve(name string) Descriptor {
	if d, ok := r.Lookup(name); ok {
		return d
	}
	return Identifier()
}

// Names returns all registered names in sorted order
func (r *Registry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return sortedNames(r.entries)
}

// Len returns the number of registered names
func (r *Registry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.entries)
}

func normalize(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

func sortedNames(m map[string]Descriptor) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

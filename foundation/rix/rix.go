// File: rix.go
// Title: RiX Engine
// Description: High-level entry point that ties the scanner, parser and
//              identifier registry together. Every call is tagged with a
//              request ID, timed, and failures are returned as structured
//              errors carrying the scanner or parser error as cause.
// Author: msto63
// Version: v0.2.0
// Created: 2025-10-19
// Modified: 2025-10-20
//
// Change History:
// - 2025-10-19 v0.1.0: Initial engine implementation
// - 2025-10-20 v0.2.0: Parse cache keyed by registry revision

package rix

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"

	mdwerror "github.com/jostylr/rix-parser-sub000/foundation/core/error"
	mdwlog "github.com/jostylr/rix-parser-sub000/foundation/core/log"
	"github.com/jostylr/rix-parser-sub000/foundation/rix/ast"
	"github.com/jostylr/rix-parser-sub000/foundation/rix/parser"
	"github.com/jostylr/rix-parser-sub000/foundation/rix/registry"
	"github.com/jostylr/rix-parser-sub000/pkg/core/cache"
)

// Engine coordinates scanning and parsing of RiX source
type Engine struct {
	parser   *parser.Parser
	registry *registry.Registry
	cache    *cache.Cache[parsed]
	logger   *mdwlog.Logger
	options  Options
}

// Options configures the RiX engine
type Options struct {
	// Logger for engine operations (optional, defaults to default logger)
	Logger *mdwlog.Logger

	// Registry resolves System identifiers (default: builtins)
	Registry *registry.Registry

	// MaxInputLength limits source length in bytes (default: 1 MiB)
	MaxInputLength int

	// MaxDepth limits expression nesting (default: 512)
	MaxDepth int

	// CacheSize is the number of parse results kept; negative disables
	// caching (default: 256)
	CacheSize int

	// CacheTTL bounds the lifetime of cached results (default: none)
	CacheTTL time.Duration
}

// Result is the outcome of a Scan or Parse call
type Result struct {
	RequestID string
	Source    string
	Tokens    []parser.Token
	Nodes     []ast.Node // nil for Scan
	Cached    bool
	Duration  time.Duration
}

type parsed struct {
	tokens []parser.Token
	nodes  []ast.Node
}

// New creates a new RiX engine
func New(opts Options) (*Engine, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxInputLength <= 0 {
		opts.MaxInputLength = parser.DefaultMaxInputLength
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = parser.DefaultMaxDepth
	}

	logger := opts.Logger.WithField("component", "rix-engine")

	if opts.Registry == nil {
		reg, err := registry.New(registry.Options{Logger: opts.Logger, Builtins: true})
		if err != nil {
			return nil, mdwerror.Wrap(err, "failed to initialize RiX registry").
				WithOperation("rix.New")
		}
		opts.Registry = reg
	}

	p, err := parser.New(parser.Options{
		Logger:         opts.Logger,
		MaxInputLength: opts.MaxInputLength,
		MaxDepth:       opts.MaxDepth,
		Resolver:       opts.Registry,
	})
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to initialize RiX parser").
			WithOperation("rix.New")
	}

	engine := &Engine{
		parser:   p,
		registry: opts.Registry,
		logger:   logger,
		options:  opts,
	}
	if opts.CacheSize >= 0 {
		cfg := cache.DefaultConfig()
		if opts.CacheSize > 0 {
			cfg.MaxItems = opts.CacheSize
		}
		cfg.TTL = opts.CacheTTL
		engine.cache = cache.New[parsed](cfg)
	}

	logger.Debug("RiX engine initialized", mdwlog.Fields{
		"maxInputLength": opts.MaxInputLength,
		"maxDepth":       opts.MaxDepth,
		"identifiers":    opts.Registry.Len(),
		"logLevel":       opts.Logger.GetLevel().String(),
		"cache":          engine.cache != nil,
	})

	return engine, nil
}

// Scan tokenizes source without parsing it
func (e *Engine) Scan(ctx context.Context, source string) (*Result, error) {
	requestID, timer, err := e.begin(ctx, "rix.Scan", source)
	if err != nil {
		return nil, err
	}

	tokens, err := parser.Tokenize(source)
	if err != nil {
		err = wrapSourceError(err, "RiX scan failed", "rix.Scan", requestID)
		timer.StopWithError(err)
		return nil, err
	}

	return &Result{
		RequestID: requestID,
		Source:    source,
		Tokens:    tokens,
		Duration:  timer.WithField("tokens", len(tokens)).Stop(),
	}, nil
}

// Parse scans and parses source. Results for identical source are served
// from the cache until the registry changes.
func (e *Engine) Parse(ctx context.Context, source string) (*Result, error) {
	requestID, timer, err := e.begin(ctx, "rix.Parse", source)
	if err != nil {
		return nil, err
	}

	compute := func() (parsed, error) {
		tokens, err := parser.Tokenize(source)
		if err != nil {
			return parsed{}, err
		}
		nodes, err := e.parser.Parse(tokens, e.registry)
		if err != nil {
			return parsed{}, err
		}
		return parsed{tokens: tokens, nodes: nodes}, nil
	}

	var (
		out parsed
		hit bool
	)
	if e.cache != nil {
		key := cache.Key(strconv.FormatUint(e.registry.Revision(), 10), source)
		out, hit, err = e.cache.GetOrSet(key, compute)
	} else {
		out, err = compute()
	}
	if err != nil {
		err = wrapSourceError(err, "RiX parse failed", "rix.Parse", requestID)
		timer.StopWithError(err)
		return nil, err
	}

	return &Result{
		RequestID: requestID,
		Source:    source,
		Tokens:    out.tokens,
		Nodes:     out.nodes,
		Cached:    hit,
		Duration:  timer.WithField("nodes", len(out.nodes)).WithField("cached", hit).Stop(),
	}, nil
}

// Validate reports whether source parses
func (e *Engine) Validate(ctx context.Context, source string) error {
	_, err := e.Parse(ctx, source)
	return err
}

// Registry returns the identifier registry. Changes made through it are
// seen by the next Parse; cached results are keyed by its revision.
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}

// Define adds or replaces an identifier and drops cached parses, which
// can no longer be hit once the registry revision moves
func (e *Engine) Define(name string, d registry.Descriptor) error {
	if name == "" {
		return mdwerror.New("identifier name cannot be empty").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("rix.Define")
	}
	e.registry.Replace(name, d)
	if e.cache != nil {
		e.cache.Clear()
	}
	return nil
}

// CacheStats returns parse cache counters. All zero when caching is off.
func (e *Engine) CacheStats() cache.Stats {
	if e.cache == nil {
		return cache.Stats{}
	}
	return e.cache.Stats()
}

// begin validates the call and starts its timer
func (e *Engine) begin(ctx context.Context, operation, source string) (string, *mdwlog.Timer, error) {
	requestID := uuid.NewString()

	if err := ctx.Err(); err != nil {
		return "", nil, mdwerror.Wrap(err, "request cancelled").
			WithSeverity(mdwerror.SeverityLow).
			WithOperation(operation).
			WithRequestID(requestID)
	}
	if len(source) > e.options.MaxInputLength {
		return "", nil, mdwerror.Newf("input exceeds maximum length: %d > %d",
			len(source), e.options.MaxInputLength).
			WithCode(mdwerror.CodeInvalidLength).
			WithOperation(operation).
			WithRequestID(requestID).
			WithDetails(map[string]interface{}{
				"length": len(source),
				"limit":  e.options.MaxInputLength,
			})
	}

	logger := e.logger.WithRequestID(requestID)
	return requestID, logger.StartTimer(operation).
		WithLevel(mdwlog.LevelDebug).
		WithField("length", len(source)), nil
}

// wrapSourceError turns scanner and parser errors into structured errors
// that keep the original as cause and expose its position as details
func wrapSourceError(err error, message, operation, requestID string) error {
	wrapped := mdwerror.Wrap(err, message).
		WithOperation(operation).
		WithRequestID(requestID)

	var de *parser.DelimiterError
	var pe *parser.ParseError
	switch {
	case errors.As(err, &de):
		return wrapped.WithCode(de.Code.CoreCode()).
			WithDetails(positionDetails(de.Code, de.Position, de.Line, de.Column)).
			WithDetail("delimiter", de.Delimiter)
	case errors.As(err, &pe):
		return wrapped.WithCode(pe.Code.CoreCode()).
			WithDetails(positionDetails(pe.Code, pe.Position, pe.Line, pe.Column))
	}
	return wrapped
}

func positionDetails(code parser.ErrorCode, offset, line, column int) map[string]interface{} {
	return map[string]interface{}{
		"rix_code": string(code),
		"offset":   offset,
		"line":     line,
		"column":   column,
	}
}

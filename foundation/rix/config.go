// File: config.go
// Title: RiX Engine Configuration
// Description: Builds engine options and loggers from configuration files.
//              Recognized keys: parser.max_input_length, parser.max_depth,
//              cache.max_items, cache.ttl_seconds, log.level, log.format,
//              registry.builtins and registry.file.
// Author: msto63
// Version: v0.2.0
// Created: 2025-10-19
// Modified: 2025-10-20
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation
// - 2025-10-20 v0.2.0: Logger built from derived options, registry load failures logged

package rix

import (
	"io"
	"time"

	mdwconfig "github.com/jostylr/rix-parser-sub000/foundation/core/config"
	mdwerror "github.com/jostylr/rix-parser-sub000/foundation/core/error"
	mdwlog "github.com/jostylr/rix-parser-sub000/foundation/core/log"
	"github.com/jostylr/rix-parser-sub000/foundation/rix/parser"
	"github.com/jostylr/rix-parser-sub000/foundation/rix/registry"
)

// Configuration keys
const (
	KeyMaxInputLength   = "parser.max_input_length"
	KeyMaxDepth         = "parser.max_depth"
	KeyCacheMaxItems    = "cache.max_items"
	KeyCacheTTL         = "cache.ttl_seconds"
	KeyLogLevel         = "log.level"
	KeyLogFormat        = "log.format"
	KeyRegistryBuiltins = "registry.builtins"
	KeyRegistryFile     = "registry.file"
)

// ConfigDefaults returns the default value of every recognized key
func ConfigDefaults() map[string]interface{} {
	return map[string]interface{}{
		KeyMaxInputLength:   parser.DefaultMaxInputLength,
		KeyMaxDepth:         parser.DefaultMaxDepth,
		KeyCacheMaxItems:    256,
		KeyCacheTTL:         0,
		KeyLogLevel:         "warn",
		KeyLogFormat:        "text",
		KeyRegistryBuiltins: true,
		KeyRegistryFile:     "",
	}
}

// NewLogger creates a logger from the log.* keys
func NewLogger(cfg *mdwconfig.Config, output io.Writer) (*mdwlog.Logger, error) {
	level, err := mdwlog.ParseLevel(cfg.GetString(KeyLogLevel, "warn"))
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid log level").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("rix.NewLogger").
			WithDetail("key", KeyLogLevel)
	}
	format, err := mdwlog.ParseFormat(cfg.GetString(KeyLogFormat, "text"))
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid log format").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("rix.NewLogger").
			WithDetail("key", KeyLogFormat)
	}
	return mdwlog.New().
		WithName("rix").
		WithLevel(level).
		WithFormat(format).
		WithOutput(output), nil
}

// NewFromConfig creates an engine from configuration. The registry starts
// from the builtins unless registry.builtins is false and then loads
// registry.file when it is set.
func NewFromConfig(cfg *mdwconfig.Config, logger *mdwlog.Logger) (*Engine, error) {
	if logger == nil {
		logger = mdwlog.GetDefault()
	}

	maxDepth := cfg.GetInt(KeyMaxDepth, parser.DefaultMaxDepth)
	maxInput := cfg.GetInt(KeyMaxInputLength, parser.DefaultMaxInputLength)
	if maxDepth <= 0 || maxInput <= 0 {
		return nil, mdwerror.New("parser limits must be positive").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("rix.NewFromConfig").
			WithDetail(KeyMaxDepth, maxDepth).
			WithDetail(KeyMaxInputLength, maxInput)
	}

	reg, err := registry.New(registry.Options{
		Logger:   logger,
		Builtins: cfg.GetBool(KeyRegistryBuiltins, true),
	})
	if err != nil {
		return nil, err
	}
	if file := cfg.GetString(KeyRegistryFile); file != "" {
		if err := reg.LoadFile(file); err != nil {
			logger.ErrorWithErr("failed to load registry definitions", err, mdwlog.Fields{"file": file})
			return nil, mdwerror.Wrap(err, "failed to load registry definitions").
				WithOperation("rix.NewFromConfig").
				WithDetail("file", file)
		}
	}

	return New(Options{
		Logger:         logger,
		Registry:       reg,
		MaxInputLength: maxInput,
		MaxDepth:       maxDepth,
		CacheSize:      cfg.GetInt(KeyCacheMaxItems, 256),
		CacheTTL:       time.Duration(cfg.GetInt(KeyCacheTTL, 0)) * time.Second,
	})
}

// Package config loads RiX toolchain configuration.
//
// Package: config
// Title: Configuration Management
// Description: TOML and YAML configuration files with dot-notation access,
//              defaults, and environment overrides. With the prefix RIX the
//              key parser.max_depth is overridden by RIX_PARSER_MAX_DEPTH.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2025-10-19 v0.2.0: Reduced to loading, discovery and typed getters
//
// Example rix.toml:
//
//	[parser]
//	max_input_length = 1048576
//	max_depth = 512
//
//	[log]
//	level = "info"
//	format = "text"
//
//	[registry]
//	file = "symbols.yaml"
//	builtins = true
//
// Usage:
//
//	cfg, err := config.Discover(config.DefaultDiscoveryOptions())
//	if err != nil {
//		return err
//	}
//	depth := cfg.GetInt("parser.max_depth", 512)
package config

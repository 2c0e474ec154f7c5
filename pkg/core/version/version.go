// ============================================================================
// RiX - Mathematical Expression Language Toolkit
// ============================================================================
//
// Package:     version
// Description: Build version information for the rix command
// Author:      msto63
// Created:     2025-10-19
// License:     MIT
// ============================================================================

package version

import "fmt"

// Name is the program name reported by the CLI
const Name = "rix"

// Build information, overridden at link time with
// -ldflags "-X .../pkg/core/version.Version=..."
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// String returns a one-line version description
func String() string {
	return fmt.Sprintf("%s %s (commit %s, built %s)", Name, Version, GitCommit, BuildDate)
}

// Info returns the build information as key/value pairs for structured
// output
func Info() map[string]string {
	return map[string]string{
		"name":       Name,
		"version":    Version,
		"git_commit": GitCommit,
		"build_date": BuildDate,
	}
}

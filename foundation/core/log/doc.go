// Package log provides structured logging for the RiX toolchain.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, structured logging with text, JSON and console
//              output. Loggers are immutable; WithField, WithFields,
//              WithName and WithRequestID return derived copies. Errors from
//              the error package are logged with their code and severity.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2025-10-19 v0.2.0: Trimmed to what the scanner, parser and CLI use
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatJSON,
//		Output: os.Stderr,
//		Name:   "rix",
//	})
//	parserLog := logger.WithField("component", "rix-parser")
//	parserLog.Debug("parse finished", log.Fields{"statements": 3})
//
//	timer := parserLog.StartTimer("tokenize")
//	defer timer.Stop()
package log

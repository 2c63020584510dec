// Package log provides structured, leveled logging for the mtext module.
//
// Package: log
// Title: mtext Structured Logging
// Description: A small structured logger with JSON, text and logfmt output,
//              persistent context fields and integration with core/error. Text
//              containers log rejected calls at debug level and mutations at
//              trace level, so the default info level stays silent.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatLogfmt,
//		Output: os.Stderr,
//		Name:   "mtext",
//	})
//	logger.Debug("operation rejected", log.Fields{"operation": "find"})
package log

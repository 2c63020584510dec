// Package error provides structured error handling for the mtext module.
//
// Package: error
// Title: mtext Error Handling Framework
// Description: This package implements a structured error type carrying an error
//              code, a severity, contextual details, the failing operation and a
//              stack trace. Codes map onto the Python-style error kinds the text
//              container reports (TypeError, IndexError, ValueError, KeyError).
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation with codes, kinds and severities
//
// Features:
// - Contextual error wrapping with additional metadata
// - Structured error codes with a Python-style kind for each code
// - Stack trace capture for debugging
// - JSON marshalling for structured logging
// - Error severity levels derived from codes
//
// Usage:
//   import mterror "github.com/msto63/mtext/core/error"
//
//   err := mterror.New("Text index (7) out of range").
//     WithCode(mterror.CodeIndexOutOfRange).
//     WithDetail("index", 7).
//     WithOperation("mutable.get")
//
//   if mterror.HasCode(err, mterror.CodeIndexOutOfRange) {
//     // handle the bad index
//   }
package error

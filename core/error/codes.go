// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the mtext module and maps
//              each code to its category and to the Python-style error kind
//              reported by the text container.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation with text container codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"
	CodeNotFound Code = "NOT_FOUND"

	// Argument and value errors raised by text operations
	CodeTypeMismatch    Code = "TYPE_MISMATCH"
	CodeIndexOutOfRange Code = "INDEX_OUT_OF_RANGE"
	CodeValueNotFound   Code = "VALUE_NOT_FOUND"
	CodeInvalidValue    Code = "INVALID_VALUE"
	CodeKeyNotFound     Code = "KEY_NOT_FOUND"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// Error kinds as reported by Kind
const (
	KindTypeError  = "TypeError"
	KindIndexError = "IndexError"
	KindValueError = "ValueError"
	KindKeyError   = "KeyError"
	KindError      = "Error"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound,
		CodeTypeMismatch, CodeIndexOutOfRange, CodeValueNotFound, CodeInvalidValue, CodeKeyNotFound,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeTypeMismatch, CodeIndexOutOfRange, CodeValueNotFound, CodeInvalidValue, CodeKeyNotFound:
		return "argument"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// Kind returns the Python-style error kind for the code.
func (c Code) Kind() string {
	switch c {
	case CodeTypeMismatch:
		return KindTypeError
	case CodeIndexOutOfRange:
		return KindIndexError
	case CodeValueNotFound, CodeInvalidValue:
		return KindValueError
	case CodeKeyNotFound:
		return KindKeyError
	default:
		return KindError
	}
}

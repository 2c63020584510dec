// File: standards.go
// Title: Error Standards for mtext Packages
// Description: Module identifiers and lookup helpers shared by every package
//              that reports errors through the standard constructors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation for error standardization

package errors

import (
	mterror "github.com/msto63/mtext/core/error"
)

// Module identifiers for error categorization
const (
	ModuleMutable = "mutable"
	ModuleStringx = "stringx"
	ModuleSlicex  = "slicex"
	ModuleConfig  = "config"
)

// IsModuleError checks if an error belongs to a specific module
func IsModuleError(err error, module string) bool {
	return ExtractModule(err) == module
}

// IsKind checks if an error carries the given Python-style kind
func IsKind(err error, kind string) bool {
	mtErr, ok := mterror.As(err)
	return ok && mtErr.Kind() == kind
}

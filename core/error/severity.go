// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so callers and loggers can
//              prioritise them. Argument errors are low severity, configuration
//              and internal failures rank higher.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a caller mistake such as a bad argument or index
	SeverityLow Severity = iota

	// SeverityMedium indicates an error with a workaround, e.g. a missing profile file
	SeverityMedium

	// SeverityHigh indicates a serious error such as an unreadable configuration
	SeverityHigh

	// SeverityCritical indicates a broken invariant inside the module
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeConfigError:
		return SeverityHigh
	case CodeNotFound, CodeInvalidConfig:
		return SeverityMedium
	case CodeTypeMismatch, CodeIndexOutOfRange, CodeValueNotFound, CodeInvalidValue, CodeKeyNotFound:
		return SeverityLow
	default:
		return SeverityMedium
	}
}

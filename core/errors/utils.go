// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Provides the fluent ErrorBuilder and the standard constructors
//              every mtext package uses for argument, index, value and key
//              errors, so messages and details stay uniform.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation of shared error utilities

package errors

import (
	"fmt"

	mterror "github.com/msto63/mtext/core/error"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	code      mterror.Code
	severity  *mterror.Severity
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:  module,
		details: make(map[string]interface{}),
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Details sets multiple details at once
func (eb *ErrorBuilder) Details(details map[string]interface{}) *ErrorBuilder {
	for k, v := range details {
		eb.details[k] = v
	}
	return eb
}

// Severity overrides the severity derived from the code
func (eb *ErrorBuilder) Severity(severity mterror.Severity) *ErrorBuilder {
	eb.severity = &severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code mterror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *mterror.Error {
	if eb.code == "" {
		eb.code = mterror.CodeUnknown
	}

	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	var err *mterror.Error
	if eb.cause != nil {
		err = mterror.Wrap(eb.cause, eb.message)
	} else {
		err = mterror.New(eb.message)
	}

	err = err.WithCode(eb.code).WithDetails(eb.details)
	if eb.operation != "" {
		err = err.WithOperation(eb.module + "." + eb.operation)
	}
	if eb.severity != nil {
		err = err.WithSeverity(*eb.severity)
	}
	return err
}

// =============================================================================
// STANDARD ERROR CREATION FUNCTIONS
// =============================================================================
// Every package reports argument problems through these constructors instead
// of fmt.Errorf so callers can classify errors by code and kind.

// TypeMismatch reports an argument whose runtime type is outside the accepted set.
// The message follows the "<operation> <parameter> must be <expected>, not <type>" form.
func TypeMismatch(module, operation, parameter string, value interface{}, expected string) *mterror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s %s must be %s, not %s", operation, parameter, expected, TypeName(value)).
		Code(mterror.CodeTypeMismatch).
		Detail("parameter", parameter).
		Detail("type", TypeName(value)).
		Detail("expected", expected).
		Build()
}

// TypeMismatchf reports a type error with a caller-provided message
func TypeMismatchf(module, operation string, format string, args ...interface{}) *mterror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef(format, args...).
		Code(mterror.CodeTypeMismatch).
		Build()
}

// IndexOutOfRange reports an integer index outside [-length, length)
func IndexOutOfRange(module, operation, subject string, index, length int) *mterror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s index (%d) out of range", subject, index).
		Code(mterror.CodeIndexOutOfRange).
		Detail("index", index).
		Detail("length", length).
		Build()
}

// IndexErrorf reports an index error with a caller-provided message
func IndexErrorf(module, operation string, format string, args ...interface{}) *mterror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef(format, args...).
		Code(mterror.CodeIndexOutOfRange).
		Build()
}

// ValueNotFound reports a searched value that is absent
func ValueNotFound(module, operation string, value interface{}, message string) *mterror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(message).
		Code(mterror.CodeValueNotFound).
		Detail("value", value).
		Build()
}

// InvalidValue reports an argument of the right type with an unacceptable value
func InvalidValue(module, operation string, value interface{}, message string) *mterror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(message).
		Code(mterror.CodeInvalidValue).
		Detail("value", value).
		Build()
}

// KeyNotFound reports a missing mapping key
func KeyNotFound(module, operation, key string) *mterror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("'%s'", key).
		Code(mterror.CodeKeyNotFound).
		Detail("key", key).
		Build()
}

// ConfigError wraps a failure while reading or parsing configuration
func ConfigError(module, operation string, cause error, message string) *mterror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(message).
		Cause(cause).
		Code(mterror.CodeConfigError).
		Build()
}

// InvalidConfig reports a configuration value that fails validation
func InvalidConfig(module, key string, value interface{}, reason string) *mterror.Error {
	return NewErrorBuilder(module).
		Operation("validate").
		Messagef("invalid configuration value for %s: %s", key, reason).
		Code(mterror.CodeInvalidConfig).
		Detail("key", key).
		Detail("value", value).
		Build()
}

// NotFound reports a missing resource such as a profile file
func NotFound(module, operation string, identifier interface{}) *mterror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("not found: %v", identifier).
		Code(mterror.CodeNotFound).
		Detail("identifier", identifier).
		Build()
}

// Utility functions for error analysis

// ExtractDetails extracts all details from an mtext error
func ExtractDetails(err error) map[string]interface{} {
	if mtErr, ok := mterror.As(err); ok {
		return mtErr.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	if operation, ok := ExtractDetails(err)["operation"].(string); ok {
		return operation
	}
	return ""
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}

// TypeName returns the runtime type name used in error messages
func TypeName(value interface{}) string {
	if value == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", value)
}

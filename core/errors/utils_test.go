// File: utils_test.go
// Title: Shared Error Handling Utilities Tests
// Description: Tests for the error builder and the standard constructors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15

package errors

import (
	"errors"
	"testing"

	mterror "github.com/msto63/mtext/core/error"
)

func TestErrorBuilder(t *testing.T) {
	t.Run("basic error creation", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Message("test error").
			Detail("key", "value").
			Code(mterror.CodeInvalidValue).
			Build()

		details := err.Details()
		if details["module"] != "testmodule" {
			t.Errorf("Expected module 'testmodule', got %v", details["module"])
		}
		if details["operation"] != "test_op" {
			t.Errorf("Expected operation 'test_op', got %v", details["operation"])
		}
		if details["key"] != "value" {
			t.Errorf("Expected detail key 'value', got %v", details["key"])
		}
		if err.Operation() != "testmodule.test_op" {
			t.Errorf("Expected operation 'testmodule.test_op', got %q", err.Operation())
		}
		if err.Severity() != mterror.SeverityLow {
			t.Errorf("Expected low severity for invalid value, got %v", err.Severity())
		}
	})

	t.Run("error with cause", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Cause(cause).
			Build()

		if !errors.Is(err, cause) {
			t.Error("Expected error to wrap the cause")
		}
	})

	t.Run("auto-generated message", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").Operation("test_op").Build()
		if err.Error() != "testmodule.test_op failed" {
			t.Errorf("Expected message 'testmodule.test_op failed', got '%s'", err.Error())
		}

		err = NewErrorBuilder("testmodule").Build()
		if err.Error() != "testmodule operation failed" {
			t.Errorf("Expected message 'testmodule operation failed', got '%s'", err.Error())
		}
	})

	t.Run("explicit severity", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").
			Code(mterror.CodeTypeMismatch).
			Severity(mterror.SeverityHigh).
			Build()
		if err.Severity() != mterror.SeverityHigh {
			t.Errorf("Expected high severity, got %v", err.Severity())
		}
	})
}

func TestTypeMismatch(t *testing.T) {
	err := TypeMismatch(ModuleMutable, "find", "first arg", 3.5, "string or Text")

	if err.Error() != "find first arg must be string or Text, not float64" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if err.Kind() != mterror.KindTypeError {
		t.Errorf("Kind() = %q, want TypeError", err.Kind())
	}
	if !IsModuleOperation(err, ModuleMutable, "find") {
		t.Error("expected module mutable and operation find")
	}
	if ExtractDetails(err)["type"] != "float64" {
		t.Errorf("type detail = %v, want float64", ExtractDetails(err)["type"])
	}
}

func TestStandardConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     *mterror.Error
		code    mterror.Code
		kind    string
		message string
	}{
		{"index", IndexOutOfRange(ModuleMutable, "get", "Text", 9, 3), mterror.CodeIndexOutOfRange, mterror.KindIndexError, "Text index (9) out of range"},
		{"indexf", IndexErrorf(ModuleStringx, "format", "Replacement index %d out of range", 2), mterror.CodeIndexOutOfRange, mterror.KindIndexError, "Replacement index 2 out of range"},
		{"value not found", ValueNotFound(ModuleMutable, "index", "x", "substring not found"), mterror.CodeValueNotFound, mterror.KindValueError, "substring not found"},
		{"invalid value", InvalidValue(ModuleStringx, "split", "", "empty separator"), mterror.CodeInvalidValue, mterror.KindValueError, "empty separator"},
		{"key", KeyNotFound(ModuleStringx, "format", "name"), mterror.CodeKeyNotFound, mterror.KindKeyError, "'name'"},
		{"typef", TypeMismatchf(ModuleMutable, "ord", "ord argument must be one character"), mterror.CodeTypeMismatch, mterror.KindTypeError, "ord argument must be one character"},
		{"not found", NotFound(ModuleConfig, "load", "/x.toml"), mterror.CodeNotFound, mterror.KindError, "not found: /x.toml"},
		{"invalid config", InvalidConfig(ModuleConfig, "log.level", "loud", "unknown level"), mterror.CodeInvalidConfig, mterror.KindError, "invalid configuration value for log.level: unknown level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code() != tt.code {
				t.Errorf("Code() = %v, want %v", tt.err.Code(), tt.code)
			}
			if tt.err.Kind() != tt.kind {
				t.Errorf("Kind() = %q, want %q", tt.err.Kind(), tt.kind)
			}
			if tt.err.Error() != tt.message {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.message)
			}
		})
	}
}

func TestConfigErrorWrapsCause(t *testing.T) {
	cause := errors.New("permission denied")
	err := ConfigError(ModuleConfig, "load", cause, "failed to read profile")

	if !errors.Is(err, cause) {
		t.Error("expected ConfigError to wrap its cause")
	}
	if err.Error() != "failed to read profile: permission denied" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestLookupHelpers(t *testing.T) {
	err := InvalidValue(ModuleSlicex, "get", 0, "slice step cannot be zero")

	if !IsModuleError(err, ModuleSlicex) {
		t.Error("expected slicex module")
	}
	if !IsKind(err, mterror.KindValueError) {
		t.Error("expected ValueError kind")
	}
	if IsKind(errors.New("plain"), mterror.KindValueError) {
		t.Error("plain errors carry no kind")
	}
	if ExtractModule(errors.New("plain")) != "" {
		t.Error("plain errors carry no module")
	}
	if TypeName(nil) != "nil" {
		t.Errorf("TypeName(nil) = %q", TypeName(nil))
	}
	if TypeName([]int{1}) != "[]int" {
		t.Errorf("TypeName([]int) = %q", TypeName([]int{1}))
	}
}

// Package errors provides the standard error constructors shared by all mtext
// packages.
//
// Every error carries the module and operation that produced it in its details,
// a code from core/error and therefore a Python-style kind:
//
//	err := errors.TypeMismatch(errors.ModuleMutable, "find", "first arg", 3.5, "string or Text")
//	// err.Error() == "find first arg must be string or Text, not float64"
//	// err.Kind()  == "TypeError"
//
// Use the builder when none of the constructors fit:
//
//	err := errors.NewErrorBuilder(errors.ModuleSlicex).
//		Operation("assign").
//		Message("slice step cannot be zero").
//		Code(mterror.CodeInvalidValue).
//		Build()
package errors

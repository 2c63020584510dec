// File: errors.go
// Title: Text Error Construction and Classification
// Description: Builds the errors raised by Text operations through the
//              standard constructors and classifies errors by their
//              Python-style kind.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package mutable

import (
	mterror "github.com/msto63/mtext/core/error"
	mterrors "github.com/msto63/mtext/core/errors"
)

const textLikeTypes = "string or Text"

func typeError(op, param string, value any) *mterror.Error {
	return mterrors.TypeMismatch(mterrors.ModuleMutable, op, param, value, textLikeTypes)
}

func indexTypeError(op string, key any) *mterror.Error {
	return mterrors.NewErrorBuilder(mterrors.ModuleMutable).
		Operation(op).
		Messagef("Text indices must be integers or slices, not %s", mterrors.TypeName(key)).
		Code(mterror.CodeTypeMismatch).
		Detail("parameter", "index").
		Detail("type", mterrors.TypeName(key)).
		Build()
}

func indexError(op string, index, length int) *mterror.Error {
	return mterrors.IndexOutOfRange(mterrors.ModuleMutable, op, "Text", index, length)
}

// arityError reports more optional arguments than an operation takes. Counts
// include the leading required arguments, as a Python caller would see them.
func arityError(op string, most, got int) *mterror.Error {
	noun := "arguments"
	if most == 1 {
		noun = "argument"
	}
	return mterrors.TypeMismatchf(mterrors.ModuleMutable, op,
		"%s expected at most %d %s, got %d", op, most, noun, got).
		WithDetail("arguments", got)
}

// IsTypeError reports an argument of an unaccepted type or count
func IsTypeError(err error) bool {
	return mterrors.IsKind(err, mterror.KindTypeError)
}

// IsIndexError reports an integer index outside the text
func IsIndexError(err error) bool {
	return mterrors.IsKind(err, mterror.KindIndexError)
}

// IsValueError reports an argument of the right type with an unusable value,
// or a search that found nothing
func IsValueError(err error) bool {
	return mterrors.IsKind(err, mterror.KindValueError)
}

// IsKeyError reports a missing keyword in a format template
func IsKeyError(err error) bool {
	return mterrors.IsKind(err, mterror.KindKeyError)
}

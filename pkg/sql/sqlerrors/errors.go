// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package sqlerrors exports errors which can occur while building spatial
// columns and statements.
package sqlerrors

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geobind/pkg/sql/pgwire/pgcode"
	"github.com/cockroachdb/geobind/pkg/sql/pgwire/pgerror"
)

// ErrBadArgument is the single validation error kind: every error
// returned for an invalid column type option or an unbindable value is
// marked with it, and errors.Is(err, ErrBadArgument) holds.
var ErrBadArgument = errors.New("bad argument")

// NewBadArgumentf returns a validation error marked with ErrBadArgument.
func NewBadArgumentf(format string, args ...interface{}) error {
	return errors.Mark(pgerror.Newf(pgcode.InvalidParameterValue, format, args...), ErrBadArgument)
}

// WrapBadArgument marks err as a validation error.
func WrapBadArgument(err error, format string, args ...interface{}) error {
	return errors.Mark(
		pgerror.Wrapf(err, pgcode.InvalidParameterValue, format, args...),
		ErrBadArgument,
	)
}

// NewUndefinedFieldError returns an error for an access to a field that a
// composite type does not have.
func NewUndefinedFieldError(typeName, field string) error {
	return pgerror.Newf(pgcode.UndefinedColumn,
		"type %q does not have a field %q", typeName, field)
}

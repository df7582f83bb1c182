// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package pgcode defines the PostgreSQL error codes used by this module.
package pgcode

// Code is a wrapper around a PostgreSQL error code string.
type Code struct {
	code string
}

// MakeCode converts a string into a Code.
func MakeCode(s string) Code {
	return Code{code: s}
}

// String returns the underlying pg code string.
func (c Code) String() string {
	return c.code
}

// PG error codes from: http://www.postgresql.org/docs/current/static/errcodes-appendix.html.
var (
	// Section: Class 0A - Feature Not Supported
	FeatureNotSupported = MakeCode("0A000")
	// Section: Class 22 - Data Exception
	DataException         = MakeCode("22000")
	InvalidParameterValue = MakeCode("22023")
	// Section: Class 42 - Syntax Error or Access Rule Violation
	Syntax            = MakeCode("42601")
	UndefinedFunction = MakeCode("42883")
	UndefinedColumn   = MakeCode("42703")
	UndefinedTable    = MakeCode("42P01")
	// Section: Class XX - Internal Error
	Internal = MakeCode("XX000")

	// Uncategorized is used for errors that flow out to a client
	// when there's no code known yet.
	Uncategorized = MakeCode("XXUUU")
)

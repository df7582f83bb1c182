// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package pgerror annotates errors with PostgreSQL error codes.
package pgerror

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geobind/pkg/sql/pgwire/pgcode"
	"github.com/cockroachdb/redact"
	"github.com/lib/pq"
)

// New creates an error with a code.
func New(code pgcode.Code, msg string) error {
	err := errors.NewWithDepth(1, msg)
	return WithCandidateCode(err, code)
}

// Newf creates an Error with a format string.
func Newf(code pgcode.Code, format string, args ...interface{}) error {
	err := errors.NewWithDepthf(1, format, args...)
	return WithCandidateCode(err, code)
}

// WithCandidateCode decorates the error with a candidate postgres
// error code. It is called "candidate" because the code is only used
// by GetPGCode() below conditionally. The code is considered PII-free
// and is thus reportable.
func WithCandidateCode(err error, code pgcode.Code) error {
	if err == nil {
		return nil
	}
	return &withCandidateCode{cause: err, code: code.String()}
}

// HasCandidateCode returns true iff there's at least one candidate code
// in the causal chain.
func HasCandidateCode(err error) bool {
	return GetPGCode(err) != pgcode.Uncategorized
}

// GetPGCode retrieves the error code for an error. The innermost code in
// the causal chain wins: a code attached by a wrapper is only a default
// for causes that do not carry one. Errors returned by lib/pq carry the
// code sent by the server.
func GetPGCode(err error) pgcode.Code {
	code := pgcode.Uncategorized
	for c := err; c != nil; c = errors.UnwrapOnce(c) {
		switch e := c.(type) {
		case *withCandidateCode:
			code = pgcode.MakeCode(e.code)
		case *pq.Error:
			code = pgcode.MakeCode(string(e.Code))
		}
	}
	return code
}

type withCandidateCode struct {
	cause error
	code  string
}

var _ error = (*withCandidateCode)(nil)
var _ errors.SafeFormatter = (*withCandidateCode)(nil)
var _ fmt.Formatter = (*withCandidateCode)(nil)

func (w *withCandidateCode) Error() string                 { return w.cause.Error() }
func (w *withCandidateCode) Cause() error                  { return w.cause }
func (w *withCandidateCode) Unwrap() error                 { return w.cause }
func (w *withCandidateCode) Format(s fmt.State, verb rune) { errors.FormatError(w, s, verb) }

func (w *withCandidateCode) SafeFormatError(p errors.Printer) (next error) {
	if p.Detail() {
		p.Printf("candidate pg code: %s", redact.SafeString(w.code))
	}
	return w.cause
}

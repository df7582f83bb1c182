// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package pgerror

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/lib/pq"
)

// FullError can be used when the hint and/or detail are to be tested.
// Errors coming from lib/pq are rendered with the server supplied fields.
func FullError(err error) string {
	if s, ok := fullErrorFromPQ(err); ok {
		return s
	}
	return formatMsgHintDetail("error", err.Error(), errors.FlattenHints(err), errors.FlattenDetails(err))
}

// fullErrorFromPQ detects if the error is a pq.Error and, if so, formats it
// according to the scheme used for FullError.
func fullErrorFromPQ(err error) (string, bool) {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return "", false
	}
	return formatMsgHintDetail("pq", pqErr.Message, pqErr.Hint, pqErr.Detail), true
}

func formatMsgHintDetail(prefix, msg, hint, detail string) string {
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(": ")
	b.WriteString(msg)
	if hint != "" {
		b.WriteString("\nHINT: ")
		b.WriteString(hint)
	}
	if detail != "" {
		b.WriteString("\nDETAIL: ")
		b.WriteString(detail)
	}
	return b.String()
}

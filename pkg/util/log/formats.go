// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"fmt"
	"strings"
)

// formatEntry renders an entry in the crdb-v1 layout:
//
//	Lyymmdd hh:mm:ss.uuuuuu file:line [tags] message
func formatEntry(e logEntry) []byte {
	var buf strings.Builder
	buf.WriteByte(e.sev.Char())
	buf.WriteString(e.ts.UTC().Format("060102 15:04:05.000000"))
	fmt.Fprintf(&buf, " %s:%d ", e.file, e.line)
	formatTags(e.tags, &buf)
	if e.redactOK {
		buf.WriteString(string(e.payload))
	} else {
		buf.WriteString(e.payload.StripMarkers())
	}
	if !strings.HasSuffix(buf.String(), "\n") {
		buf.WriteByte('\n')
	}
	return []byte(buf.String())
}

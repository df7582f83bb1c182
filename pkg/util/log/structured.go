// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"context"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/redact"
)

// logEntry is a single entry, before formatting.
type logEntry struct {
	ts       time.Time
	sev      Severity
	file     string
	line     int
	tags     *logtags.Buffer
	payload  redact.RedactableString
	redactOK bool
}

// FormatWithContextTags formats the string and prepends the context
// tags.
//
// Redaction markers are *not* inserted. The resulting
// string is generally unsafe for reporting.
func FormatWithContextTags(ctx context.Context, format string, args ...interface{}) string {
	var buf strings.Builder
	formatTags(logtags.FromContext(ctx), &buf)
	buf.WriteString(redact.Sprintf(format, args...).StripMarkers())
	return buf.String()
}

// addStructured creates a structured log entry to be written to the
// output of the logger.
func addStructured(
	ctx context.Context, sev Severity, depth int, format string, args []interface{},
) {
	entry := makeEntry(ctx, sev, depth+1, format, args)

	mainLog.mu.Lock()
	if sev < mainLog.mu.minSeverity {
		mainLog.mu.Unlock()
		return
	}
	_, _ = mainLog.mu.out.Write(formatEntry(entry))
	var exitFn func(int)
	if sev == Severity_FATAL {
		exitFn = mainLog.exitFuncLocked()
	}
	mainLog.mu.Unlock()
	if exitFn != nil {
		exitFn(255)
	}
}

func makeEntry(
	ctx context.Context, sev Severity, depth int, format string, args []interface{},
) logEntry {
	e := logEntry{
		ts:       time.Now(),
		sev:      sev,
		file:     "???",
		tags:     logtags.FromContext(ctx),
		payload:  redact.Sprintf(format, args...),
		redactOK: mainLog.redactableLogs.Load(),
	}
	if _, file, line, ok := runtime.Caller(depth + 1); ok {
		e.file = filepath.Join(filepath.Base(filepath.Dir(file)), filepath.Base(file))
		e.line = line
	}
	return e
}

func formatTags(tags *logtags.Buffer, buf *strings.Builder) {
	if tags == nil {
		return
	}
	buf.WriteByte('[')
	buf.WriteString(tags.String())
	buf.WriteString("] ")
}

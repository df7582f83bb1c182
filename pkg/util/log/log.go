// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package log is the logging facade used throughout geobind. Entries carry
// a severity, the caller position and the logging tags attached to the
// context with logtags.AddTag.
package log

import (
	"context"
	"io"
	"os"
	"sync"
	"sync/atomic"
)

// Severity is the severity level of a log entry.
type Severity int32

// Severity levels.
const (
	Severity_UNKNOWN Severity = iota
	Severity_INFO
	Severity_WARNING
	Severity_ERROR
	Severity_FATAL
)

var severityChars = [...]byte{'U', 'I', 'W', 'E', 'F'}

// Char returns the single-character prefix used for the severity in the
// crdb-v1 format.
func (s Severity) Char() byte {
	if s < 0 || int(s) >= len(severityChars) {
		return 'U'
	}
	return severityChars[s]
}

// loggerT is the process-wide logger. All output is serialized.
type loggerT struct {
	mu struct {
		sync.Mutex
		out          io.Writer
		minSeverity  Severity
		exitOverride func(int)
	}
	verbosity      int32
	redactableLogs atomic.Bool
}

var mainLog = func() *loggerT {
	l := &loggerT{}
	l.mu.out = os.Stderr
	l.mu.minSeverity = Severity_INFO
	return l
}()

// SetOutput redirects the log output to w and returns a function which
// restores the previous destination.
func SetOutput(w io.Writer) (restore func()) {
	mainLog.mu.Lock()
	defer mainLog.mu.Unlock()
	prev := mainLog.mu.out
	mainLog.mu.out = w
	return func() {
		mainLog.mu.Lock()
		defer mainLog.mu.Unlock()
		mainLog.mu.out = prev
	}
}

// SetMinSeverity discards entries below the given severity.
func SetMinSeverity(s Severity) {
	mainLog.mu.Lock()
	defer mainLog.mu.Unlock()
	mainLog.mu.minSeverity = s
}

// SetVModule sets the global verbosity level used by V and VEventf.
func SetVModule(level int32) {
	atomic.StoreInt32(&mainLog.verbosity, level)
}

// SetRedactable controls whether redaction markers are kept in the output.
func SetRedactable(b bool) {
	mainLog.redactableLogs.Store(b)
}

// SetExitFunc allows setting a function that will be called to exit
// the process when a Fatal message is generated. Call with a nil function
// to undo.
func SetExitFunc(f func(int)) {
	mainLog.mu.Lock()
	defer mainLog.mu.Unlock()
	mainLog.mu.exitOverride = f
}

// V returns true if the logging verbosity is set to the specified level or
// higher.
func V(level int32) bool {
	return atomic.LoadInt32(&mainLog.verbosity) >= level
}

// Infof logs to the INFO severity.
func Infof(ctx context.Context, format string, args ...interface{}) {
	addStructured(ctx, Severity_INFO, 1, format, args)
}

// Warningf logs to the WARNING severity.
func Warningf(ctx context.Context, format string, args ...interface{}) {
	addStructured(ctx, Severity_WARNING, 1, format, args)
}

// Errorf logs to the ERROR severity.
func Errorf(ctx context.Context, format string, args ...interface{}) {
	addStructured(ctx, Severity_ERROR, 1, format, args)
}

// Fatalf logs to the FATAL severity and then exits the process.
func Fatalf(ctx context.Context, format string, args ...interface{}) {
	addStructured(ctx, Severity_FATAL, 1, format, args)
}

// VEventf logs at INFO severity when the verbosity is at least level.
func VEventf(ctx context.Context, level int32, format string, args ...interface{}) {
	if V(level) {
		addStructured(ctx, Severity_INFO, 1, format, args)
	}
}

// exitFuncLocked returns the function used to exit the process after a
// fatal entry. l.mu must be held.
func (l *loggerT) exitFuncLocked() func(int) {
	if f := l.mu.exitOverride; f != nil {
		return f
	}
	return os.Exit
}

// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"bytes"
	"strings"
	"sync"
)

// tShim is the subset of testing.TB used by the log scope.
type tShim interface {
	Helper()
	Logf(format string, args ...interface{})
}

// TestLogScope captures the log output for the duration of a test.
type TestLogScope struct {
	mu      sync.Mutex
	buf     bytes.Buffer
	restore func()
}

// Scope redirects the log output to an in-memory buffer. The typical usage
// is:
//
//	defer log.Scope(t).Close(t)
func Scope(t tShim) *TestLogScope {
	t.Helper()
	s := &TestLogScope{}
	s.restore = SetOutput(s)
	return s
}

// Write implements io.Writer.
func (s *TestLogScope) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

// Entries returns the captured lines.
func (s *TestLogScope) Entries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := strings.TrimRight(s.buf.String(), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

// Contains returns whether any captured entry contains substr.
func (s *TestLogScope) Contains(substr string) bool {
	for _, e := range s.Entries() {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

// Close restores the previous log output and dumps what was captured to
// the test log.
func (s *TestLogScope) Close(t tShim) {
	t.Helper()
	s.restore()
	for _, e := range s.Entries() {
		t.Logf("%s", e)
	}
}

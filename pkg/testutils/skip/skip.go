// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package skip

import (
	"os"
	"testing"
)

// IgnoreLint skips this test, explicitly marking it as not a test that
// should be tracked as a "skipped test" by external tools.
func IgnoreLint(t testing.TB, args ...interface{}) {
	t.Helper()
	t.Skip(args...)
}

// IgnoreLintf is like IgnoreLint, and it also takes a format string.
func IgnoreLintf(t testing.TB, format string, args ...interface{}) {
	t.Helper()
	t.Skipf(format, args...)
}

// UnderShort skips this test if the -short flag is specified.
func UnderShort(t testing.TB, args ...interface{}) {
	t.Helper()
	if testing.Short() {
		t.Skip(append([]interface{}{"disabled under -short"}, args...))
	}
}

// UnlessEnv skips this test unless the environment variable is set, and
// returns its value otherwise. It guards tests which need an external
// database, e.g. a PostGIS server.
func UnlessEnv(t testing.TB, name string) string {
	t.Helper()
	v, ok := os.LookupEnv(name)
	if !ok || v == "" {
		t.Skipf("%s not set", name)
	}
	return v
}

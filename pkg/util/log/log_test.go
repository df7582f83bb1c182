// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"bytes"
	"context"
	"regexp"
	"testing"

	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/redact"
	"github.com/stretchr/testify/require"
)

func TestFormatEntry(t *testing.T) {
	var buf bytes.Buffer
	defer SetOutput(&buf)()

	ctx := logtags.AddTag(context.Background(), "genfuncs", nil)
	ctx = logtags.AddTag(ctx, "fn", "ST_Buffer")
	Warningf(ctx, "skipping %s", "st_buffer")

	re := regexp.MustCompile(`^W\d{6} \d{2}:\d{2}:\d{2}\.\d{6} log/log_test\.go:\d+ \[genfuncs,fn=ST_Buffer\] skipping st_buffer\n$`)
	require.Regexp(t, re, buf.String())
}

func TestRedactableOutput(t *testing.T) {
	var buf bytes.Buffer
	defer SetOutput(&buf)()
	defer SetRedactable(false)

	SetRedactable(true)
	Infof(context.Background(), "srid %d for %s", redact.Safe(4326), "secret")
	require.Contains(t, buf.String(), "srid 4326 for ‹secret›")

	buf.Reset()
	SetRedactable(false)
	Infof(context.Background(), "srid %d for %s", redact.Safe(4326), "secret")
	require.Contains(t, buf.String(), "srid 4326 for secret")
}

func TestMinSeverityAndVerbosity(t *testing.T) {
	s := Scope(t)
	defer s.Close(t)
	defer SetMinSeverity(Severity_INFO)
	defer SetVModule(0)

	ctx := context.Background()
	SetMinSeverity(Severity_WARNING)
	Infof(ctx, "hidden")
	Errorf(ctx, "visible")
	require.False(t, s.Contains("hidden"))
	require.True(t, s.Contains("visible"))

	SetMinSeverity(Severity_INFO)
	VEventf(ctx, 2, "too verbose")
	require.False(t, s.Contains("too verbose"))
	SetVModule(2)
	VEventf(ctx, 2, "verbose enough")
	require.True(t, s.Contains("verbose enough"))
}

func TestFatalUsesExitOverride(t *testing.T) {
	s := Scope(t)
	defer s.Close(t)
	var code int
	SetExitFunc(func(c int) { code = c })
	defer SetExitFunc(nil)

	Fatalf(context.Background(), "boom")
	require.Equal(t, 255, code)
	require.True(t, s.Contains("boom"))
}

func TestFormatWithContextTags(t *testing.T) {
	ctx := logtags.AddTag(context.Background(), "table", "roads")
	require.Equal(t, "[table=roads] hello world", FormatWithContextTags(ctx, "hello %s", "world"))
}

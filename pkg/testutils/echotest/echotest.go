// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package echotest

import (
	"path/filepath"
	"testing"

	"github.com/cockroachdb/datadriven"
)

// Require checks that the string matches what is found in the file located at
// the provided path. The file must follow the datadriven format:
//
// echo
// ----
// <output of exp>
//
// The contents of the file can be updated automatically using datadriven's
// -rewrite flag.
func Require(t *testing.T, act, path string) {
	t.Helper()
	var ran bool
	datadriven.RunTest(t, path, func(t *testing.T, d *datadriven.TestData) string {
		if d.Cmd != "echo" {
			return "only 'echo' is supported"
		}
		ran = true
		return act
	})
	if !ran {
		// Guard against a possible error in which the file is created, then datadriven
		// is invoked with -rewrite to seed it (which it does not do, since there is
		// no directive in the file), and then also the tests pass despite not checking
		// anything.
		t.Errorf("no tests run for %s, is the file empty?", path)
	}
}

// Walker checks the output of a set of named subtests against one golden
// file per subtest, located in a common directory.
type Walker struct {
	dir string
}

// NewWalker returns a Walker whose golden files live in dir.
func NewWalker(t *testing.T, dir string) *Walker {
	t.Helper()
	return &Walker{dir: dir}
}

// Run returns a subtest checking the output of fn against the golden file
// of the given name.
func (w *Walker) Run(t *testing.T, name string, fn func(t *testing.T) string) func(t *testing.T) {
	return func(t *testing.T) {
		Require(t, fn(t), filepath.Join(w.dir, name))
	}
}

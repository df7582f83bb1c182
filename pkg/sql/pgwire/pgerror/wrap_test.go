// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package pgerror_test

import (
	"fmt"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geobind/pkg/sql/pgwire/pgcode"
	"github.com/cockroachdb/geobind/pkg/sql/pgwire/pgerror"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func TestGetPGCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected pgcode.Code
	}{
		{"plain", fmt.Errorf("something else"), pgcode.Uncategorized},
		{"new", pgerror.New(pgcode.InvalidParameterValue, "bad srid"), pgcode.InvalidParameterValue},
		{
			"inner code wins",
			pgerror.Wrapf(pgerror.New(pgcode.InvalidParameterValue, "bad"), pgcode.Internal, "outer"),
			pgcode.InvalidParameterValue,
		},
		{
			"wrapped plain error takes code",
			pgerror.Wrap(errors.New("woo"), pgcode.Syntax, "woo"),
			pgcode.Syntax,
		},
		{
			"pq error keeps server code",
			errors.Wrap(&pq.Error{Code: "42883", Message: "function st_foo does not exist"}, "executing"),
			pgcode.UndefinedFunction,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, pgerror.GetPGCode(tc.err))
		})
	}
}

func TestWrapPreservesCause(t *testing.T) {
	orig := errors.New("woo")
	werr := pgerror.Wrap(orig, pgcode.Syntax, "")
	require.True(t, errors.Is(werr, orig))
	require.Equal(t, "woo", werr.Error())
	require.True(t, pgerror.HasCandidateCode(werr))
}

func TestFullError(t *testing.T) {
	err := errors.WithHint(pgerror.New(pgcode.InvalidParameterValue, "bad srid"), "use an integer")
	require.Equal(t, "error: bad srid\nHINT: use an integer", pgerror.FullError(err))

	pqErr := &pq.Error{Code: "22023", Message: "invalid SRID", Detail: "SRID -5"}
	require.Equal(t, "pq: invalid SRID\nDETAIL: SRID -5", pgerror.FullError(pqErr))
}

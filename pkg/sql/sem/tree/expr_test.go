// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package tree

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geobind/pkg/sql/sem/types"
	"github.com/stretchr/testify/require"
)

// questionDialect renders "?" placeholders, strips the ST_ prefix of
// function names and tags strings bound to geometry placeholders.
type questionDialect struct{}

func (questionDialect) Name() string { return "test" }
func (questionDialect) Placeholder(int) string { return "?" }
func (questionDialect) FuncName(name string) string { return strings.TrimPrefix(name, "ST_") }
func (questionDialect) QuoteName(name string) string { return "[" + name + "]" }
func (questionDialect) BindValue(p *Placeholder) (interface{}, error) {
	if p.Typ == types.Geometry {
		s, ok := p.Value.(string)
		if !ok {
			return nil, errors.Newf("unexpected %T", p.Value)
		}
		return "bound:" + s, nil
	}
	return p.Value, nil
}

func TestSerialize(t *testing.T) {
	geomCol := NewColumnItem("lake", "geom", types.Geometry)
	call := NewFuncExpr("ST_Buffer", types.Geometry,
		geomCol,
		NewPlaceholder(2.5, types.Float),
	)
	filter := NewBinaryExpr(Intersects,
		call,
		NewFuncExpr("ST_GeomFromEWKT", types.Geometry, NewPlaceholder("POINT(1 2)", types.Geometry)),
	)

	t.Run("dollar placeholders", func(t *testing.T) {
		sql, args, err := Serialize(filter, nil)
		require.NoError(t, err)
		require.Equal(t, "ST_Buffer(lake.geom, $1) && ST_GeomFromEWKT($2)", sql)
		require.Equal(t, []interface{}{2.5, "POINT(1 2)"}, args)
	})

	t.Run("dialect placeholders", func(t *testing.T) {
		sql, args, err := Serialize(filter, questionDialect{})
		require.NoError(t, err)
		require.Equal(t, "Buffer(lake.geom, ?) && GeomFromEWKT(?)", sql)
		require.Equal(t, []interface{}{2.5, "bound:POINT(1 2)"}, args)
	})

	t.Run("bind errors", func(t *testing.T) {
		_, _, err := Serialize(NewPlaceholder(42, types.Geometry), questionDialect{})
		require.Error(t, err)
		require.Contains(t, err.Error(), "binding placeholder 1")
	})

	t.Run("dialect quoting", func(t *testing.T) {
		sql, _, err := Serialize(NewColumnItem("Lake", "geom", types.Geometry), questionDialect{})
		require.NoError(t, err)
		require.Equal(t, "[Lake].geom", sql)
	})
}

func TestFormat(t *testing.T) {
	testCases := []struct {
		expr     Expr
		expected string
	}{
		{NewColumnItem("", "Geom", types.Geometry), `"Geom"`},
		{NewColumnItem("my table", "geom", types.Geometry), `"my table".geom`},
		{NewStrVal("it's"), `'it''s'`},
		{NewDInt(-3), `-3`},
		{NewDFloat(0.5), `0.5`},
		{
			&ColumnAccessExpr{
				Expr:    NewFuncExpr("ST_Dump", types.GeometryDump, NewColumnItem("", "geom", types.Geometry)),
				ColName: "path",
				Typ:     types.MakeArray(types.Int),
			},
			`(ST_Dump(geom)).path`,
		},
		{
			NewBinaryExpr(SameAs,
				NewBinaryExpr(Distance, NewColumnItem("", "a", nil), NewColumnItem("", "b", nil)),
				NewDFloat(1),
			),
			`(a <-> b) ~= 1`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.expr.String())
		})
	}
}

func TestBinaryOperators(t *testing.T) {
	for op := BinaryOperator(0); op < NumBinaryOperators; op++ {
		t.Run(op.String(), func(t *testing.T) {
			parsed, err := ParseBinaryOperator(op.String())
			require.NoError(t, err)
			require.Equal(t, op, parsed)

			expected := types.Bool
			if op == Distance || op == DistanceBBox {
				expected = types.Float
			}
			expr := NewBinaryExpr(op, NewColumnItem("", "a", nil), NewColumnItem("", "b", nil))
			require.Equal(t, expected, expr.ResolvedType())
			require.Equal(t, fmt.Sprintf("a %s b", op), expr.String())
		})
	}
	_, err := ParseBinaryOperator("=")
	require.Error(t, err)
}

func TestFunctionDefinitionMatch(t *testing.T) {
	fd := NewFunctionDefinition("ST_Test", []Overload{
		{Types: []types.T{types.Geometry}, ReturnType: types.Float},
		{Types: []types.T{types.Any}, ReturnType: types.Int},
		{Types: []types.T{types.Raster, types.Int}, ReturnType: types.Float},
	})

	o, ok := fd.Match(types.Geometry)
	require.True(t, ok)
	require.Equal(t, types.Float, o.ReturnType)

	o, ok = fd.Match(types.Geography)
	require.True(t, ok)
	require.Equal(t, types.Int, o.ReturnType)

	_, ok = fd.Match(types.Raster, types.String)
	require.False(t, ok)

	_, ok = fd.ReturnType(types.Raster, types.String)
	require.False(t, ok)

	agreeing := NewFunctionDefinition("ST_Agree", []Overload{
		{Types: []types.T{types.Geometry}, ReturnType: types.Bool},
		{Types: []types.T{types.Geography}, ReturnType: types.Bool},
	})
	ret, ok := agreeing.ReturnType(types.Raster)
	require.True(t, ok)
	require.Equal(t, types.Bool, ret)

	require.Equal(t, "(raster, int) -> float", fd.Definition[2].Signature())
}

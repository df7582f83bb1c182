// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package spatialtypes

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geobind/pkg/geo"
	"github.com/cockroachdb/geobind/pkg/geo/geopb"
	"github.com/cockroachdb/geobind/pkg/sql/dialects"
	"github.com/cockroachdb/geobind/pkg/sql/pgwire/pgcode"
	"github.com/cockroachdb/geobind/pkg/sql/pgwire/pgerror"
	"github.com/cockroachdb/geobind/pkg/sql/sem/tree"
	"github.com/cockroachdb/geobind/pkg/sql/sem/types"
	"github.com/stretchr/testify/require"
)

func TestBindAndColumnExpressions(t *testing.T) {
	col := MustGeometry(WithShapeType("POINT"), WithSRID(4326))
	value := geo.MustWKTElement("POINT(1 2)", 4326)

	testCases := []struct {
		dialect   string
		bindSQL   string
		bindArg   interface{}
		columnSQL string
	}{
		{dialects.PostgreSQL, "ST_GeomFromEWKT($1)", "SRID=4326;POINT(1 2)", "ST_AsEWKB(geom)"},
		{dialects.SQLite, "GeomFromEWKT(?)", "SRID=4326;POINT(1 2)", "AsEWKB(geom)"},
		{dialects.MySQL, "ST_GeomFromText(?, 4326)", "POINT(1 2)", "ST_AsBinary(geom)"},
	}
	for _, tc := range testCases {
		t.Run(tc.dialect, func(t *testing.T) {
			d := dialects.Select(tc.dialect)
			sql, args, err := tree.Serialize(col.BindExpression(d, col.Placeholder(value)), d)
			require.NoError(t, err)
			require.Equal(t, tc.bindSQL, sql)
			require.Equal(t, []interface{}{tc.bindArg}, args)

			sql, args, err = tree.Serialize(col.ColumnExpression(tree.NewColumnItem("", "geom", types.Geometry)), d)
			require.NoError(t, err)
			require.Equal(t, tc.columnSQL, sql)
			require.Empty(t, args)
		})
	}
}

func TestBindValueErrors(t *testing.T) {
	col := MustGeometry(WithShapeType("POINT"), WithSRID(4326))
	_, err := col.BindValue(dialects.Select(dialects.MySQL), "SRID=3857;POINT(1 2)")
	require.True(t, errors.Is(err, ErrBadArgument))
	require.Equal(t, pgcode.InvalidParameterValue, pgerror.GetPGCode(err))

	geog, err := NewGeography()
	require.NoError(t, err)
	_, err = geog.BindValue(dialects.Select(dialects.MySQL), "POINT(1 2)")
	require.True(t, errors.Is(err, ErrBadArgument))
}

// storeAsEWKB mimics what the database does with a bound EWKT value
// selected through ST_AsEWKB.
func storeAsEWKB(t *testing.T, bound interface{}) []byte {
	t.Helper()
	g, err := geo.ParseAmbiguousText(bound.(string), geopb.UnknownSRID)
	require.NoError(t, err)
	e, err := geo.NewWKBElementFromGeom(g, geopb.DefaultSRID)
	require.NoError(t, err)
	return e.Data()
}

func TestRoundTrip(t *testing.T) {
	d := dialects.Select(dialects.PostgreSQL)
	for _, ewkt := range []string{
		"SRID=4326;POINT(1 2)",
		"SRID=2154;LINESTRING(0 0,10 10)",
		"SRID=3857;POLYGON((0 0,4 0,4 4,0 4,0 0))",
	} {
		t.Run(ewkt, func(t *testing.T) {
			in := geo.MustWKTElement(ewkt, geopb.DefaultSRID)
			expected, err := in.Geom()
			require.NoError(t, err)

			for _, col := range []*GISType{
				MustGeometry(),
				MustGeometry(WithShapeType(""), WithSRID(in.SRID())),
			} {
				bound, err := col.BindValue(d, in)
				require.NoError(t, err)

				out, err := col.ResultValue(d, storeAsEWKB(t, bound))
				require.NoError(t, err)
				wkb, ok := out.(*geo.WKBElement)
				require.True(t, ok)
				require.True(t, wkb.Extended())
				require.Equal(t, in.SRID(), wkb.SRID())

				actual, err := wkb.Geom()
				require.NoError(t, err)
				require.Equal(t, expected.SRID(), actual.SRID())
				require.Equal(t, expected.FlatCoords(), actual.FlatCoords())
				require.Equal(t, expected.Ends(), actual.Ends())

				// Binding the result again yields the same value.
				rebound, err := col.BindValue(d, wkb)
				require.NoError(t, err)
				require.Equal(t, wkb.Desc(), rebound)
			}
		})
	}
}

func TestRasterRoundTrip(t *testing.T) {
	d := dialects.Select(dialects.PostgreSQL)
	col, err := NewRaster()
	require.NoError(t, err)

	raw := []byte{0x01, 0x00, 0x00, 0x01, 0x00, 0x0a}
	in, err := geo.NewRasterElement(raw)
	require.NoError(t, err)
	bound, err := col.BindValue(d, in)
	require.NoError(t, err)
	require.Equal(t, "01000001000a", bound)

	out, err := col.ResultValue(d, bound)
	require.NoError(t, err)
	require.Equal(t, raw, out.(*geo.RasterElement).Data())
}

func TestScanner(t *testing.T) {
	d := dialects.Select(dialects.SQLite)
	col := MustGeometry(WithSRID(4326))
	e, err := geo.MustWKTElement("POINT(5 6)", 4326).ToWKB()
	require.NoError(t, err)

	var dest geo.Element
	require.NoError(t, col.Scanner(d, &dest).Scan(e.Data()))
	require.Equal(t, e.Desc(), dest.Desc())
	require.Equal(t, geopb.SRID(4326), dest.SRID())

	require.NoError(t, col.Scanner(d, &dest).Scan(nil))
	require.Nil(t, dest)
}

func TestCompositeField(t *testing.T) {
	dump := tree.NewFuncExpr("ST_Dump", types.GeometryDump, tree.NewColumnItem("", "geom", types.Geometry))

	geom, err := Field(dump, "geom")
	require.NoError(t, err)
	require.Equal(t, types.Geometry, geom.ResolvedType())
	require.Equal(t, "(ST_Dump(geom)).geom", geom.String())

	path, err := GeometryDump.Field(dump, "path")
	require.NoError(t, err)
	require.True(t, types.MakeArray(types.Int).Identical(path.ResolvedType()))

	count, err := SummaryStats.Field(tree.NewFuncExpr("ST_SummaryStatsAgg", types.SummaryStats), "count")
	require.NoError(t, err)
	require.Equal(t, types.Int, count.ResolvedType())

	_, err = GeomVal.Field(dump, "nope")
	require.Error(t, err)
	require.Equal(t, pgcode.UndefinedColumn, pgerror.GetPGCode(err))

	_, err = Field(tree.NewColumnItem("", "geom", types.Geometry), "geom")
	require.Error(t, err)
}

// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package dialects

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geobind/pkg/geo"
	"github.com/cockroachdb/geobind/pkg/geo/geopb"
	"github.com/cockroachdb/geobind/pkg/sql/sem/tree"
	"github.com/cockroachdb/geobind/pkg/sql/sem/types"
	"github.com/cockroachdb/geobind/pkg/sql/sqlerrors"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func geometryPlaceholder(v interface{}, srid geopb.SRID) *tree.Placeholder {
	p := tree.NewPlaceholder(v, types.Geometry)
	p.SRID = srid
	return p
}

func mustWKB(t *testing.T, ewkt string) *geo.WKBElement {
	t.Helper()
	e, err := geo.MustWKTElement(ewkt, geopb.DefaultSRID).ToWKB()
	require.NoError(t, err)
	return e
}

func TestSelect(t *testing.T) {
	for name, expected := range map[string]string{
		"postgresql": PostgreSQL,
		"postgres":   PostgreSQL,
		"pgx":        PostgreSQL,
		"SQLite":     SQLite,
		"sqlite3":    SQLite,
		"mysql":      MySQL,
		"oracle":     Common,
		"":           Common,
	} {
		require.Equal(t, expected, Select(name).Name(), name)
	}
}

func TestPlaceholders(t *testing.T) {
	require.Equal(t, "$3", Select(PostgreSQL).Placeholder(3))
	require.Equal(t, "?", Select(SQLite).Placeholder(3))
	require.Equal(t, "?", Select(MySQL).Placeholder(1))
	require.Equal(t, "?", Select(Common).Placeholder(1))
}

func TestFuncName(t *testing.T) {
	require.Equal(t, "ST_GeomFromEWKT", Select(PostgreSQL).FuncName("ST_GeomFromEWKT"))
	require.Equal(t, "GeomFromEWKT", Select(SQLite).FuncName("ST_GeomFromEWKT"))
	require.Equal(t, "AsEWKB", Select(SQLite).FuncName("st_asewkb"))
	require.Equal(t, "ST_Buffer", Select(SQLite).FuncName("ST_Buffer"))
	require.Equal(t, "ST_GeomFromText", Select(MySQL).FuncName("ST_GeomFromEWKT"))
	require.Equal(t, "ST_AsBinary", Select(MySQL).FuncName("ST_AsEWKB"))
}

func TestPostgresBindValue(t *testing.T) {
	d := Select(PostgreSQL)
	wkb := mustWKB(t, "SRID=4326;POINT(1 2)")
	plainWKB, err := wkb.AsWKB()
	require.NoError(t, err)
	plain, err := geo.NewWKBElement(plainWKB, 4326, false)
	require.NoError(t, err)

	testCases := []struct {
		desc     string
		value    interface{}
		expected interface{}
	}{
		{"wkt without srid", geo.MustWKTElement("POINT(1 2)", geopb.DefaultSRID), "POINT(1 2)"},
		{"wkt with srid", geo.MustWKTElement("POINT(1 2)", 4326), "SRID=4326;POINT(1 2)"},
		{"ewkt", geo.MustWKTElement("SRID=3857;POINT(1 2)", geopb.DefaultSRID), "SRID=3857;POINT(1 2)"},
		{"extended wkb", wkb, wkb.Desc()},
		{"raw string", "SRID=4326;POINT(1 2)", "SRID=4326;POINT(1 2)"},
		{"nil", nil, nil},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			v, err := d.BindValue(geometryPlaceholder(tc.value, geopb.DefaultSRID))
			require.NoError(t, err)
			require.Equal(t, tc.expected, v)
		})
	}

	t.Run("plain wkb", func(t *testing.T) {
		v, err := d.BindValue(geometryPlaceholder(plain, geopb.DefaultSRID))
		require.NoError(t, err)
		g, err := geo.ParseEWKT(geopb.EWKT(v.(string)), geopb.UnknownSRID)
		require.NoError(t, err)
		require.Equal(t, 4326, g.SRID())
		require.Equal(t, []float64{1, 2}, g.FlatCoords())
	})

	t.Run("raster", func(t *testing.T) {
		r, err := geo.NewRasterElement([]byte{0x01, 0x02})
		require.NoError(t, err)
		v, err := d.BindValue(tree.NewPlaceholder(r, types.Raster))
		require.NoError(t, err)
		require.Equal(t, "0102", v)
	})

	t.Run("arrays", func(t *testing.T) {
		v, err := d.BindValue(tree.NewPlaceholder([]int64{1, 2}, types.MakeArray(types.Int)))
		require.NoError(t, err)
		require.Equal(t, pq.Array([]int64{1, 2}), v)
	})

	t.Run("bad srid", func(t *testing.T) {
		_, err := d.BindValue(geometryPlaceholder("SRID=x;POINT(1 2)", geopb.DefaultSRID))
		require.True(t, errors.Is(err, sqlerrors.ErrBadArgument), "%+v", err)
	})
}

func TestSQLiteBindValue(t *testing.T) {
	d := Select(SQLite)
	v, err := d.BindValue(geometryPlaceholder(mustWKB(t, "SRID=4326;LINESTRING(0 0,1 1)"), geopb.DefaultSRID))
	require.NoError(t, err)
	g, err := geo.ParseEWKT(geopb.EWKT(v.(string)), geopb.UnknownSRID)
	require.NoError(t, err)
	require.Equal(t, 4326, g.SRID())
	require.Equal(t, []float64{0, 0, 1, 1}, g.FlatCoords())

	v, err = d.BindValue(geometryPlaceholder(geo.MustWKTElement("POINT(1 2)", 4326), geopb.DefaultSRID))
	require.NoError(t, err)
	require.Equal(t, "SRID=4326;POINT(1 2)", v)

	// Values without a SRID take the one of the column.
	testCases := []struct {
		value    interface{}
		column   geopb.SRID
		expected string
	}{
		{"POINT(3 4)", 4326, "SRID=4326;POINT(3 4)"},
		{"POINT(3 4)", geopb.DefaultSRID, "POINT(3 4)"},
		{"SRID=3857;POINT(3 4)", 4326, "SRID=3857;POINT(3 4)"},
		{geo.MustWKTElement("POINT(3 4)", geopb.DefaultSRID), 4326, "SRID=4326;POINT(3 4)"},
		{geo.MustWKTElement("POINT(3 4)", 3857), 4326, "SRID=3857;POINT(3 4)"},
		{"POINT Z (1 2 3)", 4326, "SRID=4326;POINT(1 2 3)"},
		{"multipolygonzm (((0 0 0 0,1 0 0 0,1 1 0 0,0 0 0 0)))", geopb.DefaultSRID,
			"multipolygon(((0 0 0 0,1 0 0 0,1 1 0 0,0 0 0 0)))"},
		{"POINTM(1 2 3)", 4326, "SRID=4326;POINTM(1 2 3)"},
	}
	for _, tc := range testCases {
		v, err := d.BindValue(geometryPlaceholder(tc.value, tc.column))
		require.NoError(t, err)
		require.Equal(t, tc.expected, v)
	}

	v, err = d.BindValue(tree.NewPlaceholder(int64(7), types.Int))
	require.NoError(t, err)
	require.Equal(t, int64(7), v)
}

func TestMySQLBindValue(t *testing.T) {
	d := Select(MySQL)

	v, err := d.BindValue(geometryPlaceholder("SRID=4326;POINT(1 2)", 4326))
	require.NoError(t, err)
	require.Equal(t, "POINT(1 2)", v)

	v, err = d.BindValue(geometryPlaceholder(geo.MustWKTElement("POINT(1 2)", 4326), 4326))
	require.NoError(t, err)
	require.Equal(t, "POINT(1 2)", v)

	_, err = d.BindValue(geometryPlaceholder("SRID=3857;POINT(1 2)", 4326))
	require.True(t, errors.Is(err, sqlerrors.ErrBadArgument))
	require.Contains(t, err.Error(), "different from the one of the column")

	_, err = d.BindValue(tree.NewPlaceholder("POINT(1 2)", types.Geography))
	require.True(t, errors.Is(err, sqlerrors.ErrBadArgument))

	_, err = d.ResultValue(ResultColumn{Typ: types.Raster}, []byte{0x01})
	require.True(t, errors.Is(err, sqlerrors.ErrBadArgument))
}

func TestResultValue(t *testing.T) {
	wkb := mustWKB(t, "SRID=4326;POINT(1 2)")

	t.Run("srid from payload", func(t *testing.T) {
		e, err := Select(PostgreSQL).ResultValue(
			ResultColumn{Typ: types.Geometry, SRID: geopb.DefaultSRID, Extended: true}, wkb.Data(),
		)
		require.NoError(t, err)
		require.Equal(t, geopb.SRID(4326), e.SRID())
		require.True(t, e.Extended())
	})

	t.Run("srid forced by column", func(t *testing.T) {
		e, err := Select(PostgreSQL).ResultValue(
			ResultColumn{Typ: types.Geometry, SRID: 3857, Extended: true}, wkb.Desc(),
		)
		require.NoError(t, err)
		require.Equal(t, geopb.SRID(3857), e.SRID())
	})

	t.Run("mysql is never extended", func(t *testing.T) {
		plain, err := wkb.AsWKB()
		require.NoError(t, err)
		e, err := Select(MySQL).ResultValue(
			ResultColumn{Typ: types.Geometry, SRID: 4326, Extended: true}, []byte(plain),
		)
		require.NoError(t, err)
		require.False(t, e.Extended())
		require.Equal(t, geopb.SRID(4326), e.SRID())
	})

	t.Run("raster", func(t *testing.T) {
		e, err := Select(PostgreSQL).ResultValue(ResultColumn{Typ: types.Raster}, []byte{0x01, 0xff})
		require.NoError(t, err)
		require.IsType(t, &geo.RasterElement{}, e)
		require.Equal(t, "01ff", e.Desc())
	})

	t.Run("null", func(t *testing.T) {
		e, err := Select(SQLite).ResultValue(ResultColumn{Typ: types.Geometry}, nil)
		require.NoError(t, err)
		require.Nil(t, e)
	})
}

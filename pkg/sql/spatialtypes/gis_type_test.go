// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package spatialtypes

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geobind/pkg/geo/geopb"
	"github.com/cockroachdb/geobind/pkg/sql/pgwire/pgcode"
	"github.com/cockroachdb/geobind/pkg/sql/pgwire/pgerror"
	"github.com/cockroachdb/geobind/pkg/sql/sem/types"
	"github.com/cockroachdb/geobind/pkg/util/log"
	"github.com/stretchr/testify/require"
)

func TestGISTypeDefaults(t *testing.T) {
	g, err := NewGeometry()
	require.NoError(t, err)
	require.Equal(t, KindGeometry, g.Kind())
	require.Equal(t, geopb.ShapeType_Geometry, g.ShapeType())
	require.Equal(t, geopb.DefaultSRID, g.SRID())
	require.Equal(t, 2, g.Dimension())
	require.True(t, g.SpatialIndex())
	require.False(t, g.UseNDIndex())
	require.False(t, g.Management())
	_, set := g.UseTypmod()
	require.False(t, set)
	require.True(t, g.Nullable())
	require.True(t, g.Extended())
	require.Equal(t, "ST_GeomFromEWKT", g.FromText())
	require.Equal(t, "ST_AsEWKB", g.AsBinary())
	require.Equal(t, types.Geometry, g.SemanticType())
	require.Equal(t, "geometry(GEOMETRY,-1)", g.ColumnSpec())

	geog, err := NewGeography(WithShapeType("point"), WithSRID(4326))
	require.NoError(t, err)
	require.False(t, geog.Extended())
	require.Equal(t, "ST_GeogFromText", geog.FromText())
	require.Equal(t, "ST_AsBinary", geog.AsBinary())
	require.Equal(t, "geography(POINT,4326)", geog.ColumnSpec())

	r, err := NewRaster(WithSRID(4326), WithShapeType("POINT"), WithManagement(true), WithSpatialIndex(false))
	require.NoError(t, err)
	require.Equal(t, geopb.DefaultSRID, r.SRID())
	require.True(t, r.ShapeType().Unset())
	require.False(t, r.Management())
	require.False(t, r.SpatialIndex())
	require.False(t, r.Extended())
	require.Equal(t, "raster", r.ColumnSpec())
	require.Equal(t, "raster", r.FromText())

	custom, err := NewGeometry(WithShapeType(""), WithName("geometry_custom"), WithFromText("ST_GeomFromText"))
	require.NoError(t, err)
	require.Equal(t, "geometry_custom", custom.ColumnSpec())
	require.Equal(t, "ST_GeomFromText", custom.FromText())
}

func TestSRIDConversion(t *testing.T) {
	for _, v := range []interface{}{
		4326, int16(4326), int32(4326), int64(4326),
		uint(4326), uint16(4326), uint32(4326), uint64(4326),
		"4326", " 4326 ", 4326.0, float32(4326), geopb.SRID(4326),
	} {
		g, err := NewGeometry(WithSRID(v))
		require.NoError(t, err, "%#v", v)
		require.Equal(t, geopb.SRID(4326), g.SRID())
	}
	for _, v := range []interface{}{int8(100), uint8(100)} {
		g, err := NewGeometry(WithSRID(v))
		require.NoError(t, err, "%#v", v)
		require.Equal(t, geopb.SRID(100), g.SRID())
	}

	for _, v := range []interface{}{
		"foo", "43.26", 43.26, float32(43.5), math.NaN(), math.Inf(1), nil, []int{4326},
		int64(1) << 40, uint64(1) << 40,
	} {
		_, err := NewGeometry(WithSRID(v))
		require.Error(t, err, "%#v", v)
		require.True(t, errors.Is(err, ErrBadArgument), "%#v: %+v", v, err)
		require.Equal(t, pgcode.InvalidParameterValue, pgerror.GetPGCode(err))
	}
}

func TestGISTypeValidation(t *testing.T) {
	testCases := []struct {
		desc string
		opts []Option
		err  string
	}{
		{
			desc: "ZM with management",
			opts: []Option{WithShapeType("POINTZM"), WithManagement(true), WithDimension(4)},
			err:  `with management use shape type "POINT" and dimension 4 for "POINTZM" geometries`,
		},
		{
			desc: "Z with management and dimension 2",
			opts: []Option{WithShapeType("LINESTRINGZ"), WithManagement(true)},
			err:  `with management dimension must be 3 for "LINESTRINGZ" geometries`,
		},
		{
			desc: "M with management and dimension 4",
			opts: []Option{WithShapeType("POINTM"), WithManagement(true), WithDimension(4)},
			err:  `with management dimension must be 3 for "POINTM" geometries`,
		},
		{
			desc: "unset shape type with management",
			opts: []Option{WithShapeType(""), WithManagement(true)},
			err:  "an unset shape type is not compatible with management",
		},
		{
			desc: "typmod and not nullable",
			opts: []Option{WithTypmod(false), WithNullable(false)},
			err:  "the nullable and use_typmod options can not be used together",
		},
		{
			desc: "typmod with management and not nullable",
			opts: []Option{WithManagement(true), WithTypmod(true), WithNullable(false)},
			err:  "the nullable and use_typmod options can not be used together",
		},
		{desc: "Z with management and dimension 3", opts: []Option{WithShapeType("POINTZ"), WithManagement(true), WithDimension(3)}},
		{desc: "ZM without management", opts: []Option{WithShapeType("POINTZM")}},
		{desc: "typmod with management", opts: []Option{WithManagement(true), WithTypmod(true)}},
		{desc: "not nullable", opts: []Option{WithNullable(false)}},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			for _, kind := range []Kind{KindGeometry, KindGeography} {
				_, err := MakeGISType(kind, tc.opts...)
				if tc.err == "" {
					require.NoError(t, err)
					continue
				}
				require.Error(t, err)
				require.True(t, errors.Is(err, ErrBadArgument))
				require.Contains(t, err.Error(), tc.err)
			}
		})
	}
}

func TestGISTypeWarnings(t *testing.T) {
	sc := log.Scope(t)
	defer sc.Close(t)

	_, err := NewGeometry(WithShapeType(""), WithSRID(4326))
	require.NoError(t, err)
	require.True(t, sc.Contains("srid 4326 not enforced when the shape type is unset"))

	_, err = NewGeometry(WithTypmod(true))
	require.NoError(t, err)
	require.True(t, sc.Contains("use_typmod ignored when management is not set"))

	_, err = NewGeometry(WithManagement(true))
	require.NoError(t, err)
	require.True(t, sc.Contains("the management option is deprecated"))

	for _, e := range sc.Entries() {
		require.Equal(t, byte('W'), e[0], e)
	}
}

func TestMySQLColumnSpec(t *testing.T) {
	testCases := []struct {
		opts     []Option
		expected string
	}{
		{[]Option{WithShapeType("POINT"), WithSRID(4326)}, "POINT NOT NULL SRID 4326"},
		{[]Option{WithShapeType(""), WithSpatialIndex(false)}, "GEOMETRY"},
		{[]Option{WithSpatialIndex(false), WithNullable(false)}, "GEOMETRY NOT NULL"},
		{[]Option{WithShapeType("LINESTRING"), WithSpatialIndex(false), WithSRID(3857)}, "LINESTRING SRID 3857"},
	}
	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			g, err := NewGeometry(tc.opts...)
			require.NoError(t, err)
			require.Equal(t, tc.expected, g.MySQLColumnSpec())
		})
	}
}

func TestReflect(t *testing.T) {
	g, ok, err := Reflect("postgresql", "geography")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, KindGeography, g.Kind())

	g, ok, err = Reflect("sqlite", "LINESTRING")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, KindGeometry, g.Kind())
	require.Equal(t, geopb.ShapeType_LineString, g.ShapeType())

	g, ok, err = Reflect("sqlite3", "raster")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, KindRaster, g.Kind())

	_, ok, err = Reflect("postgresql", "integer")
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = Reflect("mysql", "geometry")
	require.NoError(t, err)
	require.False(t, ok)
}

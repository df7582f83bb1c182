// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package types

import (
	"testing"

	"github.com/lib/pq/oid"
	"github.com/stretchr/testify/require"
)

func TestFromPGName(t *testing.T) {
	testCases := []struct {
		name     string
		expected T
	}{
		{"geometry", Geometry},
		{"geography", Geography},
		{"raster", Raster},
		{"double precision", Float},
		{"integer", Int},
		{"box2d", Geometry},
		{"geometry[]", MakeArray(Geometry)},
		{"SETOF geomval", MakeArray(GeomVal)},
		{"summarystats", SummaryStats},
		{"void", Void},
		{"some_unknown_type", Any},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := FromPGName(tc.name)
			require.True(t, tc.expected.Identical(actual), "expected %s, got %s", tc.expected, actual)
		})
	}
}

func TestIdenticalAndEquivalent(t *testing.T) {
	require.True(t, Geometry == Geometry)
	require.False(t, Geometry.Identical(Geography))
	require.True(t, MakeArray(Int).Identical(MakeArray(Int)))
	require.False(t, MakeArray(Int).Identical(Int))

	require.False(t, Geometry.Identical(Any))
	require.True(t, Geometry.Equivalent(Any))
	require.True(t, Any.Equivalent(Raster))
	require.True(t, MakeArray(Float).Equivalent(MakeArray(Any)))
	require.True(t, GeomVal.Equivalent(Any))
	require.False(t, GeomVal.Equivalent(SummaryStats))
}

func TestInstance(t *testing.T) {
	require.Equal(t, Raster, Instance(MakeArray(Raster)))
	require.Equal(t, Geometry, Instance(Geometry))
	require.Equal(t, Any, Instance(MakeArray(Any)))
}

func TestTupleField(t *testing.T) {
	typ, ok := GeometryDump.(*TTuple).Field("geom")
	require.True(t, ok)
	require.Equal(t, Geometry, typ)

	typ, ok = SummaryStats.(*TTuple).Field("count")
	require.True(t, ok)
	require.Equal(t, Int, typ)

	_, ok = GeomVal.(*TTuple).Field("missing")
	require.False(t, ok)

	require.Equal(t, "geomval{geometry AS geom, float AS val}", GeomVal.String())
}

func TestTypeForOid(t *testing.T) {
	require.Equal(t, Int, TypeForOid(oid.T_int4))
	require.Equal(t, Float, TypeForOid(oid.T_float8))
	require.True(t, MakeArray(String).Identical(TypeForOid(oid.T__text)))
	// Extension types are not known by OID.
	require.Equal(t, Any, TypeForOid(oid.Oid(99999)))
}

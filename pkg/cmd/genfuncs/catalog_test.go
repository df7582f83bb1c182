// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package main

import (
	"context"
	"testing"

	"github.com/cockroachdb/geobind/pkg/sql/sem/types"
	"github.com/cockroachdb/geobind/pkg/util/log"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseArgTypes(t *testing.T) {
	testCases := []struct {
		args     string
		expected []types.T
	}{
		{"", []types.T{}},
		{"geom geometry", []types.T{types.Geometry}},
		{"geom1 geometry, geom2 geometry, double precision", []types.T{types.Geometry, types.Geometry, types.Float}},
		{"rast raster, nband integer, OUT value double precision", []types.T{types.Raster, types.Int, types.Float}},
		{"geom geometry, tolerance double precision, text", []types.T{types.Geometry, types.Float, types.String}},
		{"geoms geometry[]", []types.T{types.MakeArray(types.Geometry)}},
		{"box box2d, dims jsonb, opaque internal", []types.T{types.Geometry, types.Bytes, types.Any}},
		{"r record", []types.T{types.Any}},
	}
	for _, tc := range testCases {
		t.Run(tc.args, func(t *testing.T) {
			got := parseArgTypes(tc.args)
			require.Len(t, got, len(tc.expected))
			for i := range got {
				require.True(t, tc.expected[i].Identical(got[i]), "arg %d: expected %s, got %s", i, tc.expected[i], got[i])
			}
		})
	}
}

func TestParseReturnType(t *testing.T) {
	for result, expected := range map[string]types.T{
		"double precision":    types.Float,
		"SETOF geometry":      types.MakeArray(types.Geometry),
		"geomval[]":           types.MakeArray(types.GeomVal),
		"summarystats":        types.SummaryStats,
		"SETOF geometry_dump": types.MakeArray(types.Any),
		"void":                types.Void,
		"TABLE(x integer)":    types.Any,
		"SETOF record":        types.MakeArray(types.Any),
		"raster":              types.Raster,
		"smallint":            types.Int,
		"text":                types.String,
		"boolean":             types.Bool,
		"bytea":               types.Bytes,
		"geography":           types.Geography,
	} {
		got := parseReturnType(result)
		require.True(t, expected.Identical(got), "%s: expected %s, got %s", result, expected, got)
	}
}

func TestManualOriginalCase(t *testing.T) {
	m := newManual("Chapter 7. ST_3DClosestPoint - Returns the 3D point. See st_area or ST_Area.")
	name, ok := m.originalCase("st_3dclosestpoint")
	require.True(t, ok)
	require.Equal(t, "ST_3DClosestPoint", name)
	// The first occurrence wins.
	name, ok = m.originalCase("ST_AREA")
	require.True(t, ok)
	require.Equal(t, "st_area", name)
	_, ok = m.originalCase("st_missing")
	require.False(t, ok)
	// Misses are remembered too.
	_, ok = m.originalCase("st_missing")
	require.False(t, ok)
}

func strPtr(s string) *string { return &s }

func TestBuildCatalog(t *testing.T) {
	sc := log.Scope(t)
	defer sc.Close(t)

	m := newManual("ST_Area ST_AddBand ST_Dump")
	rows := []funcRow{
		{Name: "st_dump", Result: "SETOF geometry_dump", Args: "geom geometry"},
		{Name: "st_area", Result: "double precision", Args: "geom geometry", Description: strPtr(`args: geom - Returns the "area".`)},
		{Name: "st_area", Result: "double precision", Args: "geog geography, use_spheroid boolean"},
		{Name: "st_addband", Result: "raster", Args: "rast raster, index integer"},
		{Name: "st_unlisted", Result: "integer", Args: "geom geometry"},
		// Replaces the first st_area overload.
		{Name: "st_area", Result: "double precision", Args: "g geometry", Description: strPtr("Area.")},
	}
	funcs := buildCatalog(context.Background(), rows, m)
	require.True(t, sc.Contains("skipping st_unlisted: not found in the manual"))

	var names []string
	for _, f := range funcs {
		names = append(names, f.Name)
	}
	if diff := cmp.Diff([]string{"ST_AddBand", "ST_Area", "ST_Dump"}, names); diff != "" {
		t.Fatalf("unexpected functions (-want +got):\n%s", diff)
	}

	addBand := funcs[0].Overloads
	require.Len(t, addBand, 1)
	require.Equal(t, "https://postgis.net/docs/RT_ST_AddBand.html", addBand[0].DocURL)
	require.Equal(t, "", addBand[0].Info)

	area := funcs[1].Overloads
	require.Len(t, area, 2)
	require.True(t, types.Geometry.Identical(area[0].Types[0]))
	require.Equal(t, "Area.", area[0].Info)
	require.Equal(t, "https://postgis.net/docs/ST_Area.html", area[0].DocURL)
	require.True(t, types.Geography.Identical(area[1].Types[0]))
	require.True(t, types.Bool.Identical(area[1].Types[1]))

	dump := funcs[2].Overloads
	require.True(t, types.MakeArray(types.Any).Identical(dump[0].ReturnType))
}

func TestDescriptionQuotes(t *testing.T) {
	m := newManual("ST_Area")
	funcs := buildCatalog(context.Background(), []funcRow{
		{Name: "st_area", Result: "double precision", Args: "geom geometry", Description: strPtr(`the "area"`)},
	}, m)
	require.Equal(t, "the 'area'", funcs[0].Overloads[0].Info)
}

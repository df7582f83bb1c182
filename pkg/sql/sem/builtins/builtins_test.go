// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package builtins

import (
	"sort"
	"strings"
	"testing"

	"github.com/cockroachdb/geobind/pkg/geo"
	"github.com/cockroachdb/geobind/pkg/sql/dialects"
	"github.com/cockroachdb/geobind/pkg/sql/sem/tree"
	"github.com/cockroachdb/geobind/pkg/sql/sem/types"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	require.NoError(t, Validate())
}

func TestUniqueParameterTypes(t *testing.T) {
	for _, name := range AllBuiltinNames {
		fd, ok := Lookup(name)
		require.True(t, ok, name)
		seen := map[string]bool{}
		for _, o := range fd.Definition {
			key := paramsKey(o.Types)
			require.False(t, seen[key], "%s has two overloads taking (%s)", name, key)
			seen[key] = true
		}
	}
}

func TestDocURLs(t *testing.T) {
	for _, name := range AllBuiltinNames {
		fd, _ := Lookup(name)
		for _, o := range fd.Definition {
			require.True(t, strings.HasPrefix(o.DocURL, DocURLPrefix), o.DocURL)
			require.True(t, validDocURL(name, o.DocURL), o.DocURL)
		}
	}
	require.Equal(t, "https://postgis.net/docs/RT_ST_AddBand.html", DocURL("ST_AddBand", types.Raster))
	require.Equal(t, "https://postgis.net/docs/RT_ST_Tile.html", DocURL("ST_Tile", types.MakeArray(types.Raster)))
	require.Equal(t, "https://postgis.net/docs/ST_Area.html", DocURL("ST_Area", types.Float))

	require.False(t, validDocURL("ST_Area", "http://postgis.net/docs/ST_Area.html"))
	require.False(t, validDocURL("ST_Area", "https://postgis.net/docs/ST_Length.html"))
	require.False(t, validDocURL("ST_Area", "https://postgis.net/docs/ST_Area"))
}

func TestValidateDefinition(t *testing.T) {
	fd := tree.NewFunctionDefinition("ST_Broken", []tree.Overload{
		{Types: []types.T{types.Geometry}, ReturnType: types.Float, DocURL: DocURL("ST_Broken", types.Float)},
		{Types: []types.T{types.Geometry}, ReturnType: types.Int, DocURL: "not a url"},
	})
	err := validateDefinition(fd)
	require.Error(t, err)
	require.Contains(t, err.Error(), "same parameter types")
}

func TestAllBuiltinNames(t *testing.T) {
	require.NotEmpty(t, AllBuiltinNames)
	require.True(t, sort.StringsAreSorted(AllBuiltinNames))
	require.Len(t, AllBuiltinNames, len(generatedBuiltins))
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"ST_AsText", "st_astext", "ST_ASTEXT"} {
		fd, ok := Lookup(name)
		require.True(t, ok, name)
		require.Equal(t, "ST_AsText", fd.Name)
	}
	_, ok := Lookup("ST_DoesNotExist")
	require.False(t, ok)
}

func TestReturnTypeOf(t *testing.T) {
	testCases := []struct {
		name     string
		args     []types.T
		expected types.T
	}{
		{"ST_Area", []types.T{types.Geometry}, types.Float},
		{"ST_Buffer", []types.T{types.Geography, types.Float}, types.Geography},
		{"ST_Buffer", []types.T{types.Geometry, types.Float, types.Int}, types.Geometry},
		{"ST_Intersects", []types.T{types.Raster, types.Raster}, types.Bool},
		// No overload takes an int, but all of them return a bool.
		{"ST_Intersects", []types.T{types.Int}, types.Bool},
		{"ST_SummaryStatsAgg", []types.T{types.Raster, types.Bool, types.Float}, types.SummaryStats},
		{"ST_DumpAsPolygons", []types.T{types.Raster, types.Int, types.Bool}, types.MakeArray(types.GeomVal)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ret, ok := ReturnTypeOf(tc.name, tc.args...)
			require.True(t, ok)
			require.True(t, tc.expected.Identical(ret), "expected %s, got %s", tc.expected, ret)
		})
	}

	_, ok := ReturnTypeOf("ST_Buffer", types.Int)
	require.False(t, ok)
	_, ok = ReturnTypeOf("ST_DoesNotExist")
	require.False(t, ok)
}

func TestCategory(t *testing.T) {
	for name, expected := range map[string]string{
		"ST_Area":            CategoryGeometry,
		"ST_AddBand":         CategoryRaster,
		"ST_SummaryStatsAgg": CategoryRaster,
	} {
		c, ok := Category(name)
		require.True(t, ok)
		require.Equal(t, expected, c, name)
	}
	_, ok := Category("ST_DoesNotExist")
	require.False(t, ok)
}

func TestRegisterDuplicate(t *testing.T) {
	require.Panics(t, func() { registerBuiltin("st_area", nil) })
}

func TestCall(t *testing.T) {
	geom := tree.NewColumnItem("lake", "geom", types.Geometry)
	rast := tree.NewColumnItem("", "rast", types.Raster)
	point := geo.MustWKTElement("POINT(1 2)", 4326)

	testCases := []struct {
		expr     *tree.FuncExpr
		sql      string
		args     []interface{}
		expected types.T
	}{
		{
			expr:     Call("st_astext", geom),
			sql:      "ST_AsText(lake.geom)",
			expected: types.String,
		},
		{
			expr:     Call("ST_Buffer", geom, 2.5, "quad_segs=8"),
			sql:      "ST_Buffer(lake.geom, $1, $2)",
			args:     []interface{}{2.5, "quad_segs=8"},
			expected: types.Geometry,
		},
		{
			expr:     Call("ST_Intersects", geom, point),
			sql:      "ST_Intersects(lake.geom, ST_GeomFromEWKT($1))",
			args:     []interface{}{"SRID=4326;POINT(1 2)"},
			expected: types.Bool,
		},
		{
			expr:     Call("ST_Value", rast, point, true),
			sql:      "ST_Value(rast, ST_GeomFromEWKT($1), $2)",
			args:     []interface{}{"SRID=4326;POINT(1 2)", true},
			expected: types.Float,
		},
		{
			expr:     Call("ST_Area", Call("ST_Buffer", geom, 1.0, 4)),
			sql:      "ST_Area(ST_Buffer(lake.geom, $1, $2))",
			args:     []interface{}{1.0, 4},
			expected: types.Float,
		},
		{
			expr:     Call("ST_Area", Geography(point), true),
			sql:      "ST_Area(ST_GeogFromText($1), $2)",
			args:     []interface{}{"SRID=4326;POINT(1 2)", true},
			expected: types.Float,
		},
		{
			expr:     Call("ST_Buffer", Geography(point), 1.0, 4),
			sql:      "ST_Buffer(ST_GeogFromText($1), $2, $3)",
			args:     []interface{}{"SRID=4326;POINT(1 2)", 1.0, 4},
			expected: types.Geography,
		},
		{
			expr:     Call("ST_DoesNotExist", 1),
			sql:      "ST_DoesNotExist($1)",
			args:     []interface{}{1},
			expected: types.Any,
		},
	}
	d := dialects.Select(dialects.PostgreSQL)
	for _, tc := range testCases {
		t.Run(tc.sql, func(t *testing.T) {
			require.True(t, tc.expected.Identical(tc.expr.ResolvedType()),
				"expected %s, got %s", tc.expected, tc.expr.ResolvedType())
			sql, args, err := tree.Serialize(tc.expr, d)
			require.NoError(t, err)
			require.Equal(t, tc.sql, sql)
			require.Equal(t, tc.args, args)
		})
	}
}

func TestTypeOfValue(t *testing.T) {
	require.Equal(t, types.Int, typeOfValue(3))
	require.Equal(t, types.Float, typeOfValue(float32(1)))
	require.Equal(t, types.Bytes, typeOfValue([]byte("x")))
	require.Equal(t, types.Any, typeOfValue(nil))
	require.Equal(t, types.Any, typeOfValue(struct{}{}))
	require.True(t, types.MakeArray(types.Float).Identical(typeOfValue([]float64{1})))
	require.True(t, types.MakeArray(types.Geometry).Identical(typeOfValue([]*geo.WKBElement{})))
}

// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package main

import (
	"context"
	"testing"

	"github.com/cockroachdb/geobind/pkg/sql/sem/types"
	"github.com/cockroachdb/geobind/pkg/testutils/echotest"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	m := newManual("ST_Area ST_AddBand ST_Dump ST_MakeEnvelope")
	funcs := buildCatalog(context.Background(), []funcRow{
		{Name: "st_area", Result: "double precision", Args: "geom geometry", Description: strPtr(`args: geom - Returns the "area".`)},
		{Name: "st_area", Result: "double precision", Args: "geog geography, use_spheroid boolean"},
		{Name: "st_addband", Result: "raster", Args: "rast raster, index integer"},
		{Name: "st_dump", Result: "SETOF geometry_dump", Args: "geom geometry"},
		{Name: "st_makeenvelope", Result: "geometry", Args: ""},
	}, m)
	src, err := render("builtins", funcs)
	require.NoError(t, err)
	echotest.Require(t, string(src), "testdata/render")
}

func TestTypeExpr(t *testing.T) {
	for expected, typ := range map[string]types.T{
		"types.Geometry":                              types.Geometry,
		"types.MakeArray(types.GeomVal)":              types.MakeArray(types.GeomVal),
		"types.MakeArray(types.MakeArray(types.Int))": types.MakeArray(types.MakeArray(types.Int)),
	} {
		got, err := typeExpr(typ)
		require.NoError(t, err)
		require.Equal(t, expected, got)
	}
	_, err := typeExpr(&types.TTuple{Name: "unknown"})
	require.Error(t, err)
}

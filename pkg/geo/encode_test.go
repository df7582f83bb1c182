// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geo

import (
	"encoding/binary"
	"strings"
	"testing"

	"github.com/cockroachdb/geobind/pkg/geo/geopb"
	"github.com/stretchr/testify/require"
)

func mustEWKB(t *testing.T, ewkt string) geopb.EWKB {
	t.Helper()
	e, err := MustWKTElement(ewkt, geopb.DefaultSRID).ToWKB()
	require.NoError(t, err)
	b, err := e.AsEWKB()
	require.NoError(t, err)
	return b
}

func TestEWKBToEWKT(t *testing.T) {
	b := mustEWKB(t, "SRID=4326;POINT(1 2)")
	ewkt, err := EWKBToEWKT(b, FullPrecision)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(ewkt), "SRID=4326;POINT"), ewkt)

	wkt, err := EWKBToWKT(b, FullPrecision)
	require.NoError(t, err)
	require.False(t, strings.HasPrefix(string(wkt), "SRID="), wkt)

	g, err := ParseEWKT(ewkt, geopb.UnknownSRID)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2}, g.FlatCoords())
	require.Equal(t, 4326, g.SRID())
}

func TestEWKBToGeoJSON(t *testing.T) {
	b := mustEWKB(t, "SRID=3857;POINT(1 2)")

	out, err := EWKBToGeoJSON(b, DefaultGeoJSONDecimalDigits, GeoJSONFlagZero)
	require.NoError(t, err)
	require.Contains(t, string(out), `"Point"`)
	require.NotContains(t, string(out), "crs")

	out, err = EWKBToGeoJSON(b, DefaultGeoJSONDecimalDigits, GeoJSONFlagShortCRS)
	require.NoError(t, err)
	require.Contains(t, string(out), `"EPSG:3857"`)

	out, err = EWKBToGeoJSON(b, DefaultGeoJSONDecimalDigits, GeoJSONFlagLongCRS|GeoJSONFlagIncludeBBox)
	require.NoError(t, err)
	require.Contains(t, string(out), `"urn:ogc:def:crs:EPSG::3857"`)
	require.Contains(t, string(out), `"bbox"`)

	wgs84 := mustEWKB(t, "SRID=4326;POINT(1 2)")
	out, err = EWKBToGeoJSON(wgs84, DefaultGeoJSONDecimalDigits, GeoJSONFlagShortCRSIfNot4326)
	require.NoError(t, err)
	require.NotContains(t, string(out), "crs")
}

func TestEWKBToGeoHash(t *testing.T) {
	b := mustEWKB(t, "SRID=4326;POINT(10.40744 57.64911)")
	h, err := EWKBToGeoHash(b, 11)
	require.NoError(t, err)
	require.Equal(t, "u4pruydqqvj", h)

	h, err = EWKBToGeoHash(b, GeoHashAutoPrecision)
	require.NoError(t, err)
	require.Len(t, h, GeoHashMaxPrecision)

	_, err = EWKBToGeoHash(mustEWKB(t, "POINT(200 10)"), GeoHashAutoPrecision)
	require.Error(t, err)
}

func TestBoundingBoxOf(t *testing.T) {
	bbox, err := BoundingBoxOf(mustEWKB(t, "LINESTRING(0 5,10 -5,3 2)"))
	require.NoError(t, err)
	require.Equal(t, &geopb.BoundingBox{MinX: 0, MaxX: 10, MinY: -5, MaxY: 5}, bbox)
}

func TestEWKBToOtherFormats(t *testing.T) {
	b := mustEWKB(t, "SRID=4326;POINT(1 2)")

	kml, err := EWKBToKML(b)
	require.NoError(t, err)
	require.Equal(t, "<Point><coordinates>1,2</coordinates></Point>", kml)

	h, err := EWKBToWKBHex(b)
	require.NoError(t, err)
	require.Equal(t, strings.ToUpper(h), h)

	wkb, err := EWKBToWKB(b, binary.BigEndian)
	require.NoError(t, err)
	require.Equal(t, byte(0x00), wkb[0])
}

func TestStringToByteOrder(t *testing.T) {
	require.Equal(t, binary.LittleEndian, StringToByteOrder("ndr"))
	require.Equal(t, binary.BigEndian, StringToByteOrder("XDR"))
	require.Equal(t, DefaultEWKBEncodingFormat, StringToByteOrder("other"))
}

// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geo

import (
	"encoding/hex"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geobind/pkg/geo/geopb"
	"github.com/cockroachdb/geobind/pkg/sql/pgwire/pgcode"
	"github.com/cockroachdb/geobind/pkg/sql/pgwire/pgerror"
	"github.com/cockroachdb/geobind/pkg/sql/sqlerrors"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

func TestNewWKTElement(t *testing.T) {
	testCases := []struct {
		desc         string
		data         string
		srid         geopb.SRID
		expectedSRID geopb.SRID
		extended     bool
		wkt          geopb.WKT
		ewkt         geopb.EWKT
	}{
		{
			desc:         "plain WKT without SRID",
			data:         "POINT(1 2)",
			srid:         geopb.DefaultSRID,
			expectedSRID: geopb.DefaultSRID,
			wkt:          "POINT(1 2)",
			ewkt:         "POINT(1 2)",
		},
		{
			desc:         "plain WKT with SRID",
			data:         "POINT(1 2)",
			srid:         3857,
			expectedSRID: 3857,
			wkt:          "POINT(1 2)",
			ewkt:         "SRID=3857;POINT(1 2)",
		},
		{
			desc:         "EWKT takes its SRID from the prefix",
			data:         "SRID=4326;LINESTRING(0 0,1 1)",
			srid:         geopb.DefaultSRID,
			expectedSRID: 4326,
			extended:     true,
			wkt:          "LINESTRING(0 0,1 1)",
			ewkt:         "SRID=4326;LINESTRING(0 0,1 1)",
		},
		{
			desc:         "explicit SRID wins over the prefix",
			data:         "SRID=4326;POINT(1 2)",
			srid:         4269,
			expectedSRID: 4269,
			extended:     true,
			wkt:          "POINT(1 2)",
			ewkt:         "SRID=4326;POINT(1 2)",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			e, err := NewWKTElement(tc.data, tc.srid)
			require.NoError(t, err)
			require.Equal(t, tc.expectedSRID, e.SRID())
			require.Equal(t, tc.extended, e.Extended())
			require.Equal(t, tc.data, e.Desc())
			require.Equal(t, tc.wkt, e.AsWKT())
			require.Equal(t, tc.ewkt, e.AsEWKT())
		})
	}
}

func TestNewWKTElementErrors(t *testing.T) {
	for _, data := range []string{
		"SRID=abc;POINT(1 2)",
		"SRID=4326 POINT(1 2)",
	} {
		t.Run(data, func(t *testing.T) {
			_, err := NewWKTElement(data, geopb.DefaultSRID)
			require.Error(t, err)
			require.Equal(t, pgcode.InvalidParameterValue, pgerror.GetPGCode(err))
			require.True(t, errors.Is(err, sqlerrors.ErrBadArgument))
		})
	}
}

func TestParseErrorsAreBadArguments(t *testing.T) {
	_, err := NewWKBElement([]byte("not hex"), geopb.DefaultSRID, true)
	require.True(t, errors.Is(err, sqlerrors.ErrBadArgument), "%v", err)

	_, err = ParseEWKT("SRID=4326;POINT(1", geopb.DefaultSRID)
	require.True(t, errors.Is(err, sqlerrors.ErrBadArgument), "%v", err)

	_, err = ParseAmbiguousText("", geopb.DefaultSRID)
	require.True(t, errors.Is(err, sqlerrors.ErrBadArgument), "%v", err)
}

func TestWKBElementRoundTrip(t *testing.T) {
	for _, data := range []string{
		"SRID=4326;POINT(1.5 -2.25)",
		"SRID=2154;LINESTRING(0 0,10 10,20 5)",
		"SRID=3857;POLYGON((0 0,4 0,4 4,0 4,0 0),(1 1,2 1,2 2,1 1))",
	} {
		t.Run(data, func(t *testing.T) {
			wktElem := MustWKTElement(data, geopb.DefaultSRID)
			expected, err := wktElem.Geom()
			require.NoError(t, err)

			wkbElem, err := wktElem.ToWKB()
			require.NoError(t, err)
			require.True(t, wkbElem.Extended())
			require.Equal(t, wktElem.SRID(), wkbElem.SRID())

			// Hex text and raw bytes decode to the same element.
			fromHex, err := NewWKBElement([]byte(wkbElem.Desc()), geopb.DefaultSRID, true)
			require.NoError(t, err)
			require.Equal(t, wkbElem.Data(), fromHex.Data())
			require.Equal(t, wkbElem.SRID(), fromHex.SRID())

			back, err := fromHex.ToWKT()
			require.NoError(t, err)
			require.True(t, back.Extended())
			actual, err := back.Geom()
			require.NoError(t, err)
			requireSameGeom(t, expected, actual)
		})
	}
}

func TestWKBElementPlain(t *testing.T) {
	wktElem := MustWKTElement("POINT(3 4)", 4326)
	wkbElem, err := wktElem.ToWKB()
	require.NoError(t, err)

	plain, err := wkbElem.AsWKB()
	require.NoError(t, err)
	_, hasSRID := ewkbHeaderSRID(plain)
	require.False(t, hasSRID)

	// A plain WKB element gets its SRID from the caller.
	e, err := NewWKBElement(plain, 4326, false)
	require.NoError(t, err)
	require.False(t, e.Extended())
	ewkbBytes, err := e.AsEWKB()
	require.NoError(t, err)
	srid, ok := ewkbHeaderSRID(ewkbBytes)
	require.True(t, ok)
	require.Equal(t, geopb.SRID(4326), srid)

	// Autodetection looks at the header.
	auto, err := NewWKBElementAutodetect(ewkbBytes, geopb.DefaultSRID)
	require.NoError(t, err)
	require.True(t, auto.Extended())
	require.Equal(t, geopb.SRID(4326), auto.SRID())
}

func TestElementScanValue(t *testing.T) {
	wkbElem, err := MustWKTElement("SRID=4326;POINT(1 2)", geopb.DefaultSRID).ToWKB()
	require.NoError(t, err)

	t.Run("wkb from bytes", func(t *testing.T) {
		var e WKBElement
		require.NoError(t, e.Scan(wkbElem.Data()))
		require.Equal(t, geopb.SRID(4326), e.SRID())
		v, err := e.Value()
		require.NoError(t, err)
		require.Equal(t, wkbElem.Desc(), v)
	})

	t.Run("wkb from hex string", func(t *testing.T) {
		var e WKBElement
		require.NoError(t, e.Scan(wkbElem.Desc()))
		require.Equal(t, wkbElem.Data(), e.Data())
	})

	t.Run("wkt", func(t *testing.T) {
		var e WKTElement
		require.NoError(t, e.Scan([]byte("SRID=4326;POINT(1 2)")))
		v, err := e.Value()
		require.NoError(t, err)
		require.Equal(t, "SRID=4326;POINT(1 2)", v)
	})

	t.Run("raster", func(t *testing.T) {
		raw := []byte{0x01, 0x00, 0x00, 0x01, 0x00}
		var e RasterElement
		require.NoError(t, e.Scan(hex.EncodeToString(raw)))
		require.Equal(t, raw, e.Data())
		v, err := e.Value()
		require.NoError(t, err)
		require.Equal(t, "0100000100", v)
	})

	t.Run("unsupported source", func(t *testing.T) {
		var e WKBElement
		require.Error(t, e.Scan(42))
	})
}

func TestParseAmbiguousText(t *testing.T) {
	wkbElem, err := MustWKTElement("POINT(1 2)", geopb.DefaultSRID).ToWKB()
	require.NoError(t, err)

	for _, tc := range []struct {
		desc string
		in   string
	}{
		{"ewkt", "SRID=4326;POINT(1 2)"},
		{"wkt", "POINT(1 2)"},
		{"hex ewkb", wkbElem.Desc()},
		{"raw ewkb", string(wkbElem.Data())},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			g, err := ParseAmbiguousText(tc.in, 4326)
			require.NoError(t, err)
			require.Equal(t, 4326, g.SRID())
			require.Equal(t, []float64{1, 2}, g.FlatCoords())
		})
	}

	_, err = ParseAmbiguousText("", 0)
	require.Equal(t, pgcode.InvalidParameterValue, pgerror.GetPGCode(err))
}

func requireSameGeom(t *testing.T, expected, actual geom.T) {
	t.Helper()
	require.Equal(t, expected.SRID(), actual.SRID())
	require.Equal(t, expected.Layout(), actual.Layout())
	require.Equal(t, expected.FlatCoords(), actual.FlatCoords())
	require.Equal(t, expected.Ends(), actual.Ends())
}

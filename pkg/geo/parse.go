// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geo

import (
	"encoding/binary"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geobind/pkg/geo/geopb"
	"github.com/cockroachdb/geobind/pkg/sql/sqlerrors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/ewkb"
	"github.com/twpayne/go-geom/encoding/ewkbhex"
	"github.com/twpayne/go-geom/encoding/wkt"
)

// DefaultEWKBEncodingFormat is the default encoding format for EWKB.
var DefaultEWKBEncodingFormat binary.ByteOrder = binary.LittleEndian

const sridPrefix = "SRID="
const sridPrefixLen = len(sridPrefix)

// ewkbSRIDFlag is set in the type word of an EWKB header which embeds a
// SRID.
const ewkbSRIDFlag = 0x20000000

// ParseAmbiguousText parses a text as a number of different options that is
// available in the geospatial world using the first character as a
// heuristic: hex EWKB, raw EWKB or EWKT.
// This matches the PostGIS direct cast from a string to GEOMETRY.
func ParseAmbiguousText(str string, defaultSRID geopb.SRID) (geom.T, error) {
	if len(str) == 0 {
		return nil, sqlerrors.NewBadArgumentf("geo: parsing empty string to geo type")
	}

	// Parse as EWKB hex.
	if str[0] == '0' {
		t, err := ewkbhex.Decode(str)
		if err != nil {
			return nil, sqlerrors.WrapBadArgument(err, "geo: parsing EWKB hex")
		}
		if defaultSRID.Valid() && t.SRID() == 0 {
			adjustGeomSRID(t, defaultSRID)
		}
		return t, nil
	}

	// Parse as EWKB if it's a byte start.
	if str[0] == 0x00 || str[0] == 0x01 {
		t, err := ewkb.Unmarshal([]byte(str))
		if err != nil {
			return nil, sqlerrors.WrapBadArgument(err, "geo: parsing EWKB")
		}
		if defaultSRID.Valid() && t.SRID() == 0 {
			adjustGeomSRID(t, defaultSRID)
		}
		return t, nil
	}

	return ParseEWKT(geopb.EWKT(str), defaultSRID)
}

// ParseEWKT decodes an EWKT string. The SRID embedded in the string takes
// precedence over defaultSRID.
func ParseEWKT(str geopb.EWKT, defaultSRID geopb.SRID) (geom.T, error) {
	srid, body, _, err := SplitEWKT(string(str))
	if err != nil {
		return nil, err
	}
	if !srid.Valid() {
		srid = defaultSRID
	}
	t, err := wkt.Unmarshal(body)
	if err != nil {
		return nil, sqlerrors.WrapBadArgument(err, "geo: parsing WKT %q", body)
	}
	if srid.Valid() {
		adjustGeomSRID(t, srid)
	}
	return t, nil
}

// SplitEWKT separates the optional "SRID=n;" prefix of an EWKT string from
// its WKT body. ok is false when the string carries no prefix, in which case
// srid is geopb.DefaultSRID.
func SplitEWKT(str string) (srid geopb.SRID, body string, ok bool, err error) {
	if !strings.HasPrefix(str, sridPrefix) {
		return geopb.DefaultSRID, str, false, nil
	}
	end := strings.Index(str[sridPrefixLen:], ";")
	if end == -1 {
		return 0, "", false, sqlerrors.NewBadArgumentf(
			"geo: failed to find ; character with SRID declaration during EWKT decode: %q",
			str,
		)
	}
	sridInt64, err := strconv.ParseInt(str[sridPrefixLen:sridPrefixLen+end], 10, 32)
	if err != nil {
		return 0, "", false, sqlerrors.WrapBadArgument(
			err, "geo: invalid SRID in %q", str,
		)
	}
	body = strings.TrimLeft(str[sridPrefixLen+end+1:], " ")
	return geopb.SRID(sridInt64), body, true, nil
}

// adjustGeomSRID adjusts the SRID of a given geom.T.
// Ideally SetSRID is an interface of geom.T, but that is not the case.
func adjustGeomSRID(t geom.T, srid geopb.SRID) {
	switch t := t.(type) {
	case *geom.Point:
		t.SetSRID(int(srid))
	case *geom.LineString:
		t.SetSRID(int(srid))
	case *geom.Polygon:
		t.SetSRID(int(srid))
	case *geom.GeometryCollection:
		t.SetSRID(int(srid))
	case *geom.MultiPoint:
		t.SetSRID(int(srid))
	case *geom.MultiLineString:
		t.SetSRID(int(srid))
	case *geom.MultiPolygon:
		t.SetSRID(int(srid))
	default:
		panic(errors.AssertionFailedf("geo: unknown geom type: %T", t))
	}
}

// decodeHexOrRaw returns the raw bytes of a binary spatial payload which may
// have been handed over as hex text.
func decodeHexOrRaw(b []byte) ([]byte, error) {
	if len(b) == 0 || b[0] == 0x00 || b[0] == 0x01 {
		return b, nil
	}
	raw, err := hex.DecodeString(string(b))
	if err != nil {
		return nil, sqlerrors.WrapBadArgument(err, "geo: decoding hex payload")
	}
	return raw, nil
}

// ewkbHeaderSRID reads the SRID embedded in an EWKB header. ok is false
// when the payload is plain WKB.
func ewkbHeaderSRID(b []byte) (srid geopb.SRID, ok bool) {
	if len(b) < 9 {
		return 0, false
	}
	var order binary.ByteOrder = binary.BigEndian
	if b[0] == 0x01 {
		order = binary.LittleEndian
	}
	if order.Uint32(b[1:5])&ewkbSRIDFlag == 0 {
		return 0, false
	}
	return geopb.SRID(int32(order.Uint32(b[5:9]))), true
}

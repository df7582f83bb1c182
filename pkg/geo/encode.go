// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geo

import (
	"encoding/binary"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/cockroachdb/geobind/pkg/geo/geopb"
	"github.com/cockroachdb/geobind/pkg/sql/pgwire/pgcode"
	"github.com/cockroachdb/geobind/pkg/sql/pgwire/pgerror"
	"github.com/pierrre/geohash"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/ewkb"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/kml"
	"github.com/twpayne/go-geom/encoding/wkb"
	"github.com/twpayne/go-geom/encoding/wkbcommon"
	"github.com/twpayne/go-geom/encoding/wkbhex"
	"github.com/twpayne/go-geom/encoding/wkt"
)

// FullPrecision renders coordinates with the shortest representation that
// round trips.
const FullPrecision = -1

// DefaultGeoJSONDecimalDigits is the default number of digits coordinates in GeoJSON.
const DefaultGeoJSONDecimalDigits = 9

// EWKBToWKT transforms a given EWKB to WKT.
func EWKBToWKT(b geopb.EWKB, maxDecimalDigits int) (geopb.WKT, error) {
	t, err := ewkb.Unmarshal(b)
	if err != nil {
		return "", err
	}
	ret, err := wkt.Marshal(t, wkt.EncodeOptionWithMaxDecimalDigits(maxDecimalDigits))
	return geopb.WKT(ret), err
}

// EWKBToEWKT transforms a given EWKB to EWKT.
func EWKBToEWKT(b geopb.EWKB, maxDecimalDigits int) (geopb.EWKT, error) {
	t, err := ewkb.Unmarshal(b)
	if err != nil {
		return "", err
	}
	ret, err := wkt.Marshal(t, wkt.EncodeOptionWithMaxDecimalDigits(maxDecimalDigits))
	if err != nil {
		return "", err
	}
	if t.SRID() != 0 {
		ret = fmt.Sprintf("SRID=%d;%s", t.SRID(), ret)
	}
	return geopb.EWKT(ret), err
}

// EWKBToWKB transforms a given EWKB to WKB.
func EWKBToWKB(b geopb.EWKB, byteOrder binary.ByteOrder) (geopb.WKB, error) {
	t, err := ewkb.Unmarshal(b)
	if err != nil {
		return nil, err
	}
	ret, err := wkb.Marshal(t, byteOrder, wkbcommon.WKBOptionEmptyPointHandling(wkbcommon.EmptyPointHandlingNaN))
	return geopb.WKB(ret), err
}

// GeoJSONFlag maps to the ST_AsGeoJSON flags for PostGIS.
type GeoJSONFlag int

// These should be kept with ST_AsGeoJSON in PostGIS.
// 0: means no option
// 1: GeoJSON BBOX
// 2: GeoJSON Short CRS (e.g EPSG:4326)
// 4: GeoJSON Long CRS (e.g urn:ogc:def:crs:EPSG::4326)
// 8: GeoJSON Short CRS if not EPSG:4326 (default)
const (
	GeoJSONFlagIncludeBBox GeoJSONFlag = 1 << (iota)
	GeoJSONFlagShortCRS
	GeoJSONFlagLongCRS
	GeoJSONFlagShortCRSIfNot4326

	GeoJSONFlagZero = 0
)

// geomToGeoJSONCRS converts a geom to its CRS GeoJSON form. Only EPSG
// authorities are known to the client.
func geomToGeoJSONCRS(t geom.T, long bool) *geojson.CRS {
	var prop string
	if long {
		prop = fmt.Sprintf("urn:ogc:def:crs:EPSG::%d", t.SRID())
	} else {
		prop = fmt.Sprintf("EPSG:%d", t.SRID())
	}
	return &geojson.CRS{
		Type: "name",
		Properties: map[string]interface{}{
			"name": prop,
		},
	}
}

// EWKBToGeoJSON transforms a given EWKB to GeoJSON.
func EWKBToGeoJSON(b geopb.EWKB, maxDecimalDigits int, flag GeoJSONFlag) ([]byte, error) {
	t, err := ewkb.Unmarshal(b)
	if err != nil {
		return nil, err
	}
	options := []geojson.EncodeGeometryOption{
		geojson.EncodeGeometryWithMaxDecimalDigits(maxDecimalDigits),
	}
	if flag&GeoJSONFlagIncludeBBox != 0 {
		// Do not encoding empty bounding boxes.
		if !t.Bounds().IsEmpty() {
			options = append(options, geojson.EncodeGeometryWithBBox())
		}
	}
	// Take CRS flag in order of precedence.
	if t.SRID() != 0 {
		if flag&GeoJSONFlagLongCRS != 0 {
			options = append(options, geojson.EncodeGeometryWithCRS(geomToGeoJSONCRS(t, true /* long */)))
		} else if flag&GeoJSONFlagShortCRS != 0 {
			options = append(options, geojson.EncodeGeometryWithCRS(geomToGeoJSONCRS(t, false /* long */)))
		} else if flag&GeoJSONFlagShortCRSIfNot4326 != 0 {
			if t.SRID() != 4326 {
				options = append(options, geojson.EncodeGeometryWithCRS(geomToGeoJSONCRS(t, false /* long */)))
			}
		}
	}

	return geojson.Marshal(t, options...)
}

// EWKBToWKBHex transforms a given EWKB to upper-case WKB hex.
func EWKBToWKBHex(b geopb.EWKB) (string, error) {
	t, err := ewkb.Unmarshal(b)
	if err != nil {
		return "", err
	}
	ret, err := wkbhex.Encode(t, DefaultEWKBEncodingFormat, wkbcommon.WKBOptionEmptyPointHandling(wkbcommon.EmptyPointHandlingNaN))
	return strings.ToUpper(ret), err
}

// EWKBToKML transforms a given EWKB to KML.
func EWKBToKML(b geopb.EWKB) (string, error) {
	t, err := ewkb.Unmarshal(b)
	if err != nil {
		return "", err
	}
	kmlElement, err := kml.Encode(t)
	if err != nil {
		return "", err
	}
	ret, err := xml.Marshal(kmlElement)
	if err != nil {
		return "", err
	}
	return string(ret), nil
}

// BoundingBoxOf returns the 2D bounding box of the given EWKB, or nil for
// empty objects.
func BoundingBoxOf(b geopb.EWKB) (*geopb.BoundingBox, error) {
	t, err := ewkb.Unmarshal(b)
	if err != nil {
		return nil, err
	}
	bounds := t.Bounds()
	if bounds.IsEmpty() {
		return nil, nil
	}
	bbox := geopb.NewBoundingBox()
	bbox.Update(bounds.Min(0), bounds.Min(1))
	bbox.Update(bounds.Max(0), bounds.Max(1))
	return bbox, nil
}

// GeoHashAutoPrecision means to calculate the precision of EWKBToGeoHash
// based on input, up to 32 characters.
const GeoHashAutoPrecision = 0

// GeoHashMaxPrecision is the maximum precision for GeoHashes.
// 20 is picked as doubles have 51 decimals of precision, and each base32 position
// can contain 5 bits of data. As we have two points, we use floor((2 * 51) / 5) = 20.
const GeoHashMaxPrecision = 20

// EWKBToGeoHash transforms a given EWKB, whose coordinates are longitudes
// and latitudes in degrees, to a GeoHash.
func EWKBToGeoHash(b geopb.EWKB, p int) (string, error) {
	bbox, err := BoundingBoxOf(b)
	if err != nil {
		return "", err
	}
	if bbox == nil {
		return "", nil
	}
	if bbox.MinX < -180 || bbox.MaxX > 180 || bbox.MinY < -90 || bbox.MaxY > 90 {
		return "", pgerror.Newf(
			pgcode.InvalidParameterValue,
			"object has bounds greater than the bounds of lat/lng, got (%f %f, %f %f)",
			bbox.MinX, bbox.MinY,
			bbox.MaxX, bbox.MaxY,
		)
	}

	// Get precision using the bounding box if required.
	if p <= GeoHashAutoPrecision {
		p = getPrecisionForBBox(bbox)
	}

	// Support up to 20, which is the same as PostGIS.
	if p > GeoHashMaxPrecision {
		p = GeoHashMaxPrecision
	}

	bbCenterLng := bbox.MinX + (bbox.MaxX-bbox.MinX)/2.0
	bbCenterLat := bbox.MinY + (bbox.MaxY-bbox.MinY)/2.0

	return geohash.Encode(bbCenterLat, bbCenterLng, p), nil
}

// getPrecisionForBBox is a function imitating PostGIS's ability to go from
// a world bounding box and truncating a GeoHash to fit the given bounding box.
// The algorithm halves the world bounding box until it intersects with the
// feature bounding box to get a precision that will encompass the entire
// bounding box.
func getPrecisionForBBox(bbox *geopb.BoundingBox) int {
	bitPrecision := 0

	// This is a point, for points we use the full bitPrecision.
	if bbox.MinX == bbox.MaxX && bbox.MinY == bbox.MaxY {
		return GeoHashMaxPrecision
	}

	// Starts from a world bounding box:
	lonMin := -180.0
	lonMax := 180.0
	latMin := -90.0
	latMax := 90.0

	// Each iteration shrinks the world bounding box by half in the dimension that
	// does not fit, making adjustments each iteration until it intersects with
	// the object bbox.
	for {
		lonWidth := lonMax - lonMin
		latWidth := latMax - latMin
		latMaxDelta, lonMaxDelta, latMinDelta, lonMinDelta := 0.0, 0.0, 0.0, 0.0

		if bbox.MinX > lonMin+lonWidth/2.0 {
			lonMinDelta = lonWidth / 2.0
		} else if bbox.MaxX < lonMax-lonWidth/2.0 {
			lonMaxDelta = lonWidth / -2.0
		}
		if bbox.MinY > latMin+latWidth/2.0 {
			latMinDelta = latWidth / 2.0
		} else if bbox.MaxY < latMax-latWidth/2.0 {
			latMaxDelta = latWidth / -2.0
		}

		// Every change we make that splits the box up adds precision.
		// If we detect no change, we've intersected a box and so must exit.
		precisionDelta := 0
		if lonMinDelta != 0.0 || lonMaxDelta != 0.0 {
			lonMin += lonMinDelta
			lonMax += lonMaxDelta
			precisionDelta++
		} else {
			break
		}
		if latMinDelta != 0.0 || latMaxDelta != 0.0 {
			latMin += latMinDelta
			latMax += latMaxDelta
			precisionDelta++
		} else {
			break
		}
		bitPrecision += precisionDelta
	}
	// Each character can represent 5 bits of bitPrecision.
	// As such, divide by 5 to get GeoHash precision.
	return bitPrecision / 5
}

// StringToByteOrder returns the byte order of string.
func StringToByteOrder(s string) binary.ByteOrder {
	switch strings.ToLower(s) {
	case "ndr":
		return binary.LittleEndian
	case "xdr":
		return binary.BigEndian
	default:
		return DefaultEWKBEncodingFormat
	}
}

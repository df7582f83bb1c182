// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geo

import (
	"database/sql/driver"
	"encoding/hex"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geobind/pkg/geo/geopb"
	"github.com/cockroachdb/geobind/pkg/sql/pgwire/pgcode"
	"github.com/cockroachdb/geobind/pkg/sql/pgwire/pgerror"
	"github.com/cockroachdb/geobind/pkg/sql/sqlerrors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/ewkb"
	"github.com/twpayne/go-geom/encoding/wkb"
	"github.com/twpayne/go-geom/encoding/wkbcommon"
)

// WKTElement is a spatial value held in its (E)WKT form, typically built
// by application code before being bound to a statement.
type WKTElement struct {
	data     string
	srid     geopb.SRID
	extended bool
}

// NewWKTElement builds a WKTElement. When data carries a "SRID=n;" prefix
// the element is extended and, unless srid is set, takes its SRID from the
// prefix.
func NewWKTElement(data string, srid geopb.SRID) (*WKTElement, error) {
	prefixSRID, _, extended, err := SplitEWKT(data)
	if err != nil {
		return nil, err
	}
	if extended && srid == geopb.DefaultSRID {
		srid = prefixSRID
	}
	return &WKTElement{data: data, srid: srid, extended: extended}, nil
}

// MustWKTElement is like NewWKTElement but panics on error.
func MustWKTElement(data string, srid geopb.SRID) *WKTElement {
	e, err := NewWKTElement(data, srid)
	if err != nil {
		panic(err)
	}
	return e
}

// Desc implements the Element interface.
func (e *WKTElement) Desc() string { return e.data }

// SRID implements the Element interface.
func (e *WKTElement) SRID() geopb.SRID { return e.srid }

// Extended implements the Element interface.
func (e *WKTElement) Extended() bool { return e.extended }

// String implements fmt.Stringer.
func (e *WKTElement) String() string { return e.data }

// AsWKT returns the text without any SRID prefix.
func (e *WKTElement) AsWKT() geopb.WKT {
	_, body, _, _ := SplitEWKT(e.data)
	return geopb.WKT(body)
}

// AsEWKT returns the text with a SRID prefix. Elements without a valid SRID
// are returned as plain WKT.
func (e *WKTElement) AsEWKT() geopb.EWKT {
	if e.extended || !e.srid.Valid() {
		return geopb.EWKT(e.data)
	}
	return geopb.EWKT(fmt.Sprintf("SRID=%d;%s", e.srid, e.data))
}

// Geom parses the element.
func (e *WKTElement) Geom() (geom.T, error) {
	srid := e.srid
	if !srid.Valid() {
		srid = geopb.UnknownSRID
	}
	return ParseEWKT(geopb.EWKT(e.data), srid)
}

// ToWKB converts the element into its binary form.
func (e *WKTElement) ToWKB() (*WKBElement, error) {
	t, err := e.Geom()
	if err != nil {
		return nil, err
	}
	return NewWKBElementFromGeom(t, e.srid)
}

// Scan implements sql.Scanner.
func (e *WKTElement) Scan(src interface{}) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return errors.Newf("geo: cannot scan %T into WKTElement", src)
	}
	n, err := NewWKTElement(s, geopb.DefaultSRID)
	if err != nil {
		return err
	}
	*e = *n
	return nil
}

// Value implements driver.Valuer. The EWKT form is sent so that the SRID
// survives the trip.
func (e *WKTElement) Value() (driver.Value, error) {
	return string(e.AsEWKT()), nil
}

// WKBElement is a spatial value held in its (E)WKB form. It is what result
// processors produce for geometry and geography columns.
type WKBElement struct {
	data     []byte
	srid     geopb.SRID
	extended bool
}

// NewWKBElement builds a WKBElement from raw or hex encoded bytes. An
// extended payload without an explicit srid takes the SRID embedded in its
// header.
func NewWKBElement(data []byte, srid geopb.SRID, extended bool) (*WKBElement, error) {
	raw, err := decodeHexOrRaw(data)
	if err != nil {
		return nil, err
	}
	if extended && srid == geopb.DefaultSRID {
		if headerSRID, ok := ewkbHeaderSRID(raw); ok {
			srid = headerSRID
		}
	}
	return &WKBElement{data: raw, srid: srid, extended: extended}, nil
}

// NewWKBElementAutodetect builds a WKBElement and decides whether it is
// extended by looking at the header.
func NewWKBElementAutodetect(data []byte, srid geopb.SRID) (*WKBElement, error) {
	raw, err := decodeHexOrRaw(data)
	if err != nil {
		return nil, err
	}
	_, extended := ewkbHeaderSRID(raw)
	return NewWKBElement(raw, srid, extended)
}

// NewWKBElementFromGeom encodes t as EWKB. When srid is valid it overrides
// the SRID of t.
func NewWKBElementFromGeom(t geom.T, srid geopb.SRID) (*WKBElement, error) {
	if srid.Valid() {
		adjustGeomSRID(t, srid)
	} else {
		srid = geopb.SRID(t.SRID())
		if srid == geopb.UnknownSRID {
			srid = geopb.DefaultSRID
		}
	}
	b, err := ewkb.Marshal(t, DefaultEWKBEncodingFormat)
	if err != nil {
		return nil, pgerror.Wrap(err, pgcode.InvalidParameterValue, "geo: encoding EWKB")
	}
	_, extended := ewkbHeaderSRID(b)
	return &WKBElement{data: b, srid: srid, extended: extended}, nil
}

// Desc implements the Element interface.
func (e *WKBElement) Desc() string { return hex.EncodeToString(e.data) }

// SRID implements the Element interface.
func (e *WKBElement) SRID() geopb.SRID { return e.srid }

// Extended implements the Element interface.
func (e *WKBElement) Extended() bool { return e.extended }

// String implements fmt.Stringer.
func (e *WKBElement) String() string { return e.Desc() }

// Data returns the raw bytes of the element.
func (e *WKBElement) Data() []byte { return e.data }

// Geom decodes the element. The element SRID is applied when the payload
// does not carry one.
func (e *WKBElement) Geom() (geom.T, error) {
	var t geom.T
	var err error
	if e.extended {
		t, err = ewkb.Unmarshal(e.data)
	} else {
		t, err = wkb.Unmarshal(e.data, wkbcommon.WKBOptionEmptyPointHandling(wkbcommon.EmptyPointHandlingNaN))
	}
	if err != nil {
		return nil, sqlerrors.WrapBadArgument(err, "geo: decoding WKB")
	}
	if t.SRID() == 0 && e.srid.Valid() {
		adjustGeomSRID(t, e.srid)
	}
	return t, nil
}

// AsEWKB returns the element as EWKB, embedding the element SRID.
func (e *WKBElement) AsEWKB() (geopb.EWKB, error) {
	if e.extended {
		return geopb.EWKB(e.data), nil
	}
	t, err := e.Geom()
	if err != nil {
		return nil, err
	}
	return ewkb.Marshal(t, DefaultEWKBEncodingFormat)
}

// AsWKB returns the element as plain WKB.
func (e *WKBElement) AsWKB() (geopb.WKB, error) {
	if !e.extended {
		return geopb.WKB(e.data), nil
	}
	return EWKBToWKB(geopb.EWKB(e.data), DefaultEWKBEncodingFormat)
}

// AsEWKT renders the element as EWKT.
func (e *WKBElement) AsEWKT(maxDecimalDigits int) (geopb.EWKT, error) {
	b, err := e.AsEWKB()
	if err != nil {
		return "", err
	}
	return EWKBToEWKT(b, maxDecimalDigits)
}

// ToWKT converts the element into a WKTElement carrying the same SRID.
func (e *WKBElement) ToWKT() (*WKTElement, error) {
	s, err := e.AsEWKT(FullPrecision)
	if err != nil {
		return nil, err
	}
	return NewWKTElement(string(s), e.srid)
}

// Scan implements sql.Scanner. Both raw and hex encoded payloads are
// accepted; whether the payload is extended is read from its header.
func (e *WKBElement) Scan(src interface{}) error {
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = append([]byte(nil), v...)
	case string:
		b = []byte(v)
	default:
		return errors.Newf("geo: cannot scan %T into WKBElement", src)
	}
	n, err := NewWKBElementAutodetect(b, geopb.DefaultSRID)
	if err != nil {
		return err
	}
	*e = *n
	return nil
}

// Value implements driver.Valuer. Spatial extensions accept the hex form
// of (E)WKB as textual input.
func (e *WKBElement) Value() (driver.Value, error) {
	if e.extended || !e.srid.Valid() {
		return e.Desc(), nil
	}
	b, err := e.AsEWKB()
	if err != nil {
		return nil, err
	}
	return hex.EncodeToString(b), nil
}

// RasterElement is an opaque raster value in its WKB form. Rasters are
// never decoded on the client.
type RasterElement struct {
	data []byte
}

// NewRasterElement builds a RasterElement from raw or hex encoded bytes.
func NewRasterElement(data []byte) (*RasterElement, error) {
	raw, err := decodeHexOrRaw(data)
	if err != nil {
		return nil, err
	}
	return &RasterElement{data: raw}, nil
}

// Desc implements the Element interface.
func (e *RasterElement) Desc() string { return hex.EncodeToString(e.data) }

// SRID implements the Element interface. Raster SRIDs live in the raster
// header and are not inspected.
func (e *RasterElement) SRID() geopb.SRID { return geopb.DefaultSRID }

// Extended implements the Element interface.
func (e *RasterElement) Extended() bool { return false }

// String implements fmt.Stringer.
func (e *RasterElement) String() string { return e.Desc() }

// Data returns the raw bytes of the raster.
func (e *RasterElement) Data() []byte { return e.data }

// Scan implements sql.Scanner.
func (e *RasterElement) Scan(src interface{}) error {
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = append([]byte(nil), v...)
	case string:
		b = []byte(v)
	default:
		return errors.Newf("geo: cannot scan %T into RasterElement", src)
	}
	n, err := NewRasterElement(b)
	if err != nil {
		return err
	}
	*e = *n
	return nil
}

// Value implements driver.Valuer.
func (e *RasterElement) Value() (driver.Value, error) {
	return e.Desc(), nil
}

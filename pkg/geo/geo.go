// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package geo contains the in-memory representation of spatial values
// exchanged with a spatial database: WKTElement, WKBElement and
// RasterElement. Each element knows how to encode itself for the driver
// (driver.Valuer) and how to decode a driver value (sql.Scanner).
//
// Transcoding between the text and binary encodings is done with go-geom;
// no geometric computation happens on the client.
package geo

import (
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/cockroachdb/geobind/pkg/geo/geopb"
)

// Element is a spatial value bound to, or read from, a spatial column.
type Element interface {
	sql.Scanner
	driver.Valuer
	fmt.Stringer

	// Desc returns the canonical textual description of the element: the
	// (E)WKT for text elements and the lower-case hex encoding for binary
	// ones.
	Desc() string
	// SRID returns the spatial reference identifier of the element, or
	// geopb.DefaultSRID when it is not known.
	SRID() geopb.SRID
	// Extended returns whether the payload is an extended (EWKT/EWKB)
	// encoding which embeds the SRID.
	Extended() bool
}

var _ Element = (*WKTElement)(nil)
var _ Element = (*WKBElement)(nil)
var _ Element = (*RasterElement)(nil)

// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package geopb contains the primitive metadata types shared by the spatial
// element values, the column types and the function catalog.
package geopb

import "fmt"

// SRID is a Spatial Reference Identifier.
type SRID int32

const (
	// DefaultSRID is the SRID used by a column or element that did not
	// specify one. The spatial database interprets it as "unset".
	DefaultSRID SRID = -1
	// UnknownSRID is the SRID stored in a spatial object which carries no
	// SRID in its encoding.
	UnknownSRID SRID = 0
)

// Valid returns whether the SRID is a positive, enforceable identifier.
func (s SRID) Valid() bool { return s > 0 }

// EWKB is the Extended Well Known Bytes form of a spatial object.
type EWKB []byte

// WKB is the Well Known Bytes form of a spatial object.
type WKB []byte

// WKT is the Well Known Text form of a spatial object.
type WKT string

// EWKT is the Extended Well Known Text form of a spatial object.
type EWKT string

// SpatialObjectType is the kind of column a spatial object is stored in.
type SpatialObjectType int

const (
	// SpatialObjectType_Unknown is the zero value.
	SpatialObjectType_Unknown SpatialObjectType = iota
	// SpatialObjectType_GeometryType represents a planar GEOMETRY.
	SpatialObjectType_GeometryType
	// SpatialObjectType_GeographyType represents a spherical GEOGRAPHY.
	SpatialObjectType_GeographyType
	// SpatialObjectType_RasterType represents a RASTER.
	SpatialObjectType_RasterType
)

var spatialObjectTypeNames = map[SpatialObjectType]string{
	SpatialObjectType_Unknown:       "unknown",
	SpatialObjectType_GeometryType:  "geometry",
	SpatialObjectType_GeographyType: "geography",
	SpatialObjectType_RasterType:    "raster",
}

// String implements fmt.Stringer. The result is the SQL type name.
func (t SpatialObjectType) String() string {
	if s, ok := spatialObjectTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("SpatialObjectType(%d)", int(t))
}

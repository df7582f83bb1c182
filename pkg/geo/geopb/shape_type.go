// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geopb

import "strings"

// ShapeType is the geometry subtype tag attached to a spatial column, e.g.
// POINT or MULTIPOLYGONZ. It is always upper case. The empty ShapeType means
// that no subtype constraint is attached to the column.
type ShapeType string

// Base shape types understood by the spatial extensions.
const (
	ShapeType_Unset              ShapeType = ""
	ShapeType_Geometry           ShapeType = "GEOMETRY"
	ShapeType_Point              ShapeType = "POINT"
	ShapeType_LineString         ShapeType = "LINESTRING"
	ShapeType_Polygon            ShapeType = "POLYGON"
	ShapeType_MultiPoint         ShapeType = "MULTIPOINT"
	ShapeType_MultiLineString    ShapeType = "MULTILINESTRING"
	ShapeType_MultiPolygon       ShapeType = "MULTIPOLYGON"
	ShapeType_GeometryCollection ShapeType = "GEOMETRYCOLLECTION"
	ShapeType_Curve              ShapeType = "CURVE"
)

// ParseShapeType normalizes the given geometry type name.
func ParseShapeType(s string) ShapeType {
	return ShapeType(strings.ToUpper(strings.TrimSpace(s)))
}

// Unset returns whether no shape type is attached.
func (s ShapeType) Unset() bool { return s == ShapeType_Unset }

// HasZM returns whether the shape type carries both Z and M ordinates.
func (s ShapeType) HasZM() bool {
	return strings.HasSuffix(string(s), "ZM")
}

// HasZOrM returns whether the shape type ends with a single Z or M
// modifier.
func (s ShapeType) HasZOrM() bool {
	if s.Unset() || s.HasZM() {
		return false
	}
	last := s[len(s)-1]
	return last == 'Z' || last == 'M'
}

// Base strips the Z, M or ZM modifiers.
func (s ShapeType) Base() ShapeType {
	switch {
	case s.HasZM():
		return s[:len(s)-2]
	case s.HasZOrM():
		return s[:len(s)-1]
	}
	return s
}

// Dimension returns the number of ordinates implied by the modifiers.
func (s ShapeType) Dimension() int {
	switch {
	case s.HasZM():
		return 4
	case s.HasZOrM():
		return 3
	}
	return 2
}

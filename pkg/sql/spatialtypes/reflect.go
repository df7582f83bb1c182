// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package spatialtypes

import (
	"strings"

	"github.com/cockroachdb/geobind/pkg/sql/dialects"
)

// reflected maps, per dialect, the type names reported by the database
// catalog to the column type a reflected column is read back as.
var reflected = map[string]map[string]func() (*GISType, error){
	dialects.PostgreSQL: {
		"geometry":  func() (*GISType, error) { return NewGeometry() },
		"geography": func() (*GISType, error) { return NewGeography() },
		"raster":    func() (*GISType, error) { return NewRaster() },
	},
	dialects.SQLite: {
		"GEOMETRY":           geometryOf("GEOMETRY"),
		"POINT":              geometryOf("POINT"),
		"LINESTRING":         geometryOf("LINESTRING"),
		"POLYGON":            geometryOf("POLYGON"),
		"MULTIPOINT":         geometryOf("MULTIPOINT"),
		"MULTILINESTRING":    geometryOf("MULTILINESTRING"),
		"MULTIPOLYGON":       geometryOf("MULTIPOLYGON"),
		"CURVE":              geometryOf("CURVE"),
		"GEOMETRYCOLLECTION": geometryOf("GEOMETRYCOLLECTION"),
		"RASTER":             func() (*GISType, error) { return NewRaster() },
	},
}

func geometryOf(shape string) func() (*GISType, error) {
	return func() (*GISType, error) { return NewGeometry(WithShapeType(shape)) }
}

// Reflect returns the column type of a column whose type the database
// catalog reports as typeName. ok is false for non spatial types.
func Reflect(dialect, typeName string) (t *GISType, ok bool, err error) {
	names, found := reflected[dialects.Select(dialect).Name()]
	if !found {
		return nil, false, nil
	}
	ctor, found := names[typeName]
	if !found {
		// PostgreSQL reports lower case names, SQLite upper case ones.
		ctor, found = names[strings.ToLower(typeName)]
	}
	if !found {
		ctor, found = names[strings.ToUpper(typeName)]
	}
	if !found {
		return nil, false, nil
	}
	t, err = ctor()
	return t, err == nil, err
}

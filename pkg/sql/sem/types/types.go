// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package types holds the semantic type vocabulary used by function
// signatures and expression nodes. It only describes what a value is, not
// how it is stored or transported.
package types

import (
	"fmt"
	"strings"
)

// Family groups types which share a representation.
type Family int

// Type families.
const (
	AnyFamily Family = iota
	GeometryFamily
	GeographyFamily
	RasterFamily
	IntFamily
	FloatFamily
	StringFamily
	BoolFamily
	BytesFamily
	TupleFamily
	ArrayFamily
	VoidFamily
)

// T represents a semantic type.
type T interface {
	fmt.Stringer
	// Family returns the family of the type.
	Family() Family
	// Identical returns whether the receiver and other are the same type.
	Identical(other T) bool
	// Equivalent is like Identical but Any is equivalent to every type.
	Equivalent(other T) bool
	// SQLName returns the name of the type in PostgreSQL.
	SQLName() string
}

type tScalar struct {
	family  Family
	name    string
	sqlName string
}

func (t tScalar) String() string { return t.name }
func (t tScalar) Family() Family { return t.family }
func (t tScalar) SQLName() string { return t.sqlName }

// Identical implements the T interface.
func (t tScalar) Identical(other T) bool {
	u, ok := other.(tScalar)
	return ok && u == t
}

// Equivalent implements the T interface.
func (t tScalar) Equivalent(other T) bool {
	if t.family == AnyFamily || other.Family() == AnyFamily {
		return true
	}
	return t.Identical(other)
}

var (
	// Any is a wildcard accepted wherever a type is expected. Can be
	// compared with ==.
	Any T = tScalar{AnyFamily, "any", "anyelement"}
	// Geometry is the type of planar spatial objects. Can be compared with ==.
	Geometry T = tScalar{GeometryFamily, "geometry", "geometry"}
	// Geography is the type of geodetic spatial objects. Can be compared
	// with ==.
	Geography T = tScalar{GeographyFamily, "geography", "geography"}
	// Raster is the type of raster tiles. Can be compared with ==.
	Raster T = tScalar{RasterFamily, "raster", "raster"}
	// Int is the type of integers. Can be compared with ==.
	Int T = tScalar{IntFamily, "int", "integer"}
	// Float is the type of floating point numbers. Can be compared with ==.
	Float T = tScalar{FloatFamily, "float", "double precision"}
	// String is the type of text values. Can be compared with ==.
	String T = tScalar{StringFamily, "string", "text"}
	// Bool is the type of booleans. Can be compared with ==.
	Bool T = tScalar{BoolFamily, "bool", "boolean"}
	// Bytes is the type of byte arrays. Can be compared with ==.
	Bytes T = tScalar{BytesFamily, "bytes", "bytea"}
	// Void is the result type of functions returning nothing. Can be
	// compared with ==.
	Void T = tScalar{VoidFamily, "void", "void"}
)

// TArray is the type of a list of values of the same type.
type TArray struct{ Typ T }

// MakeArray returns the list type of typ.
func MakeArray(typ T) T { return TArray{Typ: typ} }

func (a TArray) String() string { return fmt.Sprintf("%s[]", a.Typ) }
func (a TArray) Family() Family { return ArrayFamily }
func (a TArray) SQLName() string { return a.Typ.SQLName() + "[]" }

// Identical implements the T interface.
func (a TArray) Identical(other T) bool {
	u, ok := other.(TArray)
	return ok && a.Typ.Identical(u.Typ)
}

// Equivalent implements the T interface.
func (a TArray) Equivalent(other T) bool {
	if other.Family() == AnyFamily {
		return true
	}
	u, ok := other.(TArray)
	return ok && a.Typ.Equivalent(u.Typ)
}

// Instance returns the type of a single value of t: the element type for
// lists, t itself otherwise.
func Instance(t T) T {
	if a, ok := t.(TArray); ok {
		return a.Typ
	}
	return t
}

// IsSpatial returns whether values of t are spatial objects.
func IsSpatial(t T) bool {
	switch t.Family() {
	case GeometryFamily, GeographyFamily, RasterFamily:
		return true
	}
	return false
}

// pgNames maps PostgreSQL type names to semantic types. Bounding boxes are
// handed over as geometries and JSON as text, as spatial functions accept
// both.
var pgNames = map[string]T{
	"anyelement":       Any,
	"record":           Any,
	"bigint":           Int,
	"integer":          Int,
	"smallint":         Int,
	"boolean":          Bool,
	"box2d":            Geometry,
	"box3d":            Geometry,
	"bytea":            Bytes,
	"jsonb":            Bytes,
	"cstring":          String,
	"json":             String,
	"spheroid":         String,
	"text":             String,
	"double precision": Float,
	"geography":        Geography,
	"geometry":         Geometry,
	"raster":           Raster,
	"geomval":          GeomVal,
	"summarystats":     SummaryStats,
	"void":             Void,
}

// FromPGName returns the semantic type of a PostgreSQL type name as printed
// by pg_get_function_result. Array and SETOF types map to lists. Unknown
// names map to Any.
func FromPGName(name string) T {
	name = strings.TrimSpace(name)
	if strings.HasSuffix(name, "[]") {
		return MakeArray(FromPGName(strings.TrimSuffix(name, "[]")))
	}
	if strings.HasPrefix(name, "SETOF ") {
		return MakeArray(FromPGName(strings.TrimPrefix(name, "SETOF ")))
	}
	if t, ok := pgNames[name]; ok {
		return t
	}
	return Any
}

// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package dialects holds the database specific parts of spatial value
// binding: placeholder syntax, function naming and the conversion of
// elements to and from what the driver exchanges with the database.
package dialects

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/geobind/pkg/geo"
	"github.com/cockroachdb/geobind/pkg/geo/geopb"
	"github.com/cockroachdb/geobind/pkg/sql/sem/tree"
	"github.com/cockroachdb/geobind/pkg/sql/sem/types"
	"github.com/cockroachdb/geobind/pkg/sql/sqlerrors"
)

// Dialect is a SQL dialect spatial values can be bound to and read from.
type Dialect interface {
	tree.Dialect
	// ResultValue converts a value read through the "as binary" function
	// of a spatial column into an element. A nil raw value yields a nil
	// element.
	ResultValue(col ResultColumn, raw interface{}) (geo.Element, error)
}

// ResultColumn describes the spatial column a result value is read from.
type ResultColumn struct {
	Typ types.T
	// SRID, when valid, is forced onto the resulting elements. Otherwise
	// the SRID embedded in extended payloads is used.
	SRID geopb.SRID
	// Extended is set when the column is read through a function returning
	// EWKB.
	Extended bool
}

// Dialect names.
const (
	PostgreSQL = "postgresql"
	SQLite     = "sqlite"
	MySQL      = "mysql"
	Common     = "common"
)

var known = map[string]Dialect{
	PostgreSQL: postgresDialect{},
	SQLite:     sqliteDialect{},
	MySQL:      mysqlDialect{},
}

// Select returns the dialect with the given name. Unknown names get the
// common dialect. Driver names are accepted as aliases.
func Select(name string) Dialect {
	switch strings.ToLower(name) {
	case "postgres", "pgx", "pq":
		name = PostgreSQL
	case "sqlite3", "spatialite":
		name = SQLite
	}
	if d, ok := known[strings.ToLower(name)]; ok {
		return d
	}
	return commonDialect{}
}

// dollarPlaceholder renders PostgreSQL placeholders.
func dollarPlaceholder(ordinal int) string {
	return "$" + strconv.Itoa(ordinal)
}

// renamer maps function names, ignoring case, to the names a dialect knows
// them by.
type renamer map[string]string

func (r renamer) rename(name string) string {
	if n, ok := r[strings.ToLower(name)]; ok {
		return n
	}
	return name
}

// wktToEWKT prefixes a WKT element with its SRID unless it already carries
// one. Elements without a valid SRID are sent as plain WKT.
func wktToEWKT(e *geo.WKTElement) string {
	return string(e.AsEWKT())
}

// wkbToEWKT decodes a WKB element and renders it as EWKT.
func wkbToEWKT(e *geo.WKBElement) (string, error) {
	s, err := e.AsEWKT(geo.FullPrecision)
	if err != nil {
		return "", sqlerrors.WrapBadArgument(err, "cannot convert WKB element to EWKT")
	}
	return string(s), nil
}

// checkTextSRID validates the SRID prefix of a raw string bound to a
// spatial placeholder. It returns the SRID and the WKT body.
func checkTextSRID(s string) (geopb.SRID, string, error) {
	srid, body, _, err := geo.SplitEWKT(s)
	if err != nil {
		return 0, "", sqlerrors.WrapBadArgument(err, "cannot bind %q", s)
	}
	return srid, body, nil
}

// resultElement builds the element for a value read from a spatial column.
func resultElement(col ResultColumn, raw interface{}, extended bool) (geo.Element, error) {
	if raw == nil {
		return nil, nil
	}
	var b []byte
	switch v := raw.(type) {
	case []byte:
		b = append([]byte(nil), v...)
	case string:
		b = []byte(v)
	default:
		return nil, sqlerrors.NewBadArgumentf("cannot read %T from a %s column", raw, col.Typ)
	}
	if col.Typ != nil && col.Typ.Family() == types.RasterFamily {
		r, err := geo.NewRasterElement(b)
		if err != nil {
			return nil, err
		}
		return r, nil
	}
	srid := geopb.DefaultSRID
	if col.SRID.Valid() {
		srid = col.SRID
	}
	e, err := geo.NewWKBElement(b, srid, extended)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// passThrough returns the values which do not need any spatial conversion.
func passThrough(p *tree.Placeholder) (interface{}, bool) {
	if p.Value == nil {
		return nil, true
	}
	if p.Typ != nil && types.IsSpatial(p.Typ) {
		return nil, false
	}
	switch p.Value.(type) {
	case geo.Element:
		return nil, false
	}
	return p.Value, true
}

// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package dialects

import (
	"regexp"
	"strconv"

	"github.com/cockroachdb/geobind/pkg/geo"
	"github.com/cockroachdb/geobind/pkg/geo/geopb"
	"github.com/cockroachdb/geobind/pkg/sql/sem/tree"
	"github.com/cockroachdb/geobind/pkg/sql/sqlerrors"
)

// sqliteDialect binds to SpatiaLite. Every element is sent as EWKT.
type sqliteDialect struct{}

var _ Dialect = sqliteDialect{}

// sqliteFuncs are the SpatiaLite names of the PostGIS conversion
// functions.
var sqliteFuncs = renamer{
	"st_geomfromewkt": "GeomFromEWKT",
	"st_geomfromewkb": "GeomFromEWKB",
	"st_asewkb":       "AsEWKB",
	"st_asewkt":       "AsEWKT",
}

// Name implements the tree.Dialect interface.
func (sqliteDialect) Name() string { return SQLite }

// Placeholder implements the tree.Dialect interface.
func (sqliteDialect) Placeholder(int) string { return "?" }

// FuncName implements the tree.Dialect interface.
func (sqliteDialect) FuncName(name string) string { return sqliteFuncs.rename(name) }

// QuoteName implements the tree.Dialect interface.
func (sqliteDialect) QuoteName(name string) string { return tree.DoubleQuoteName(name) }

// BindValue implements the tree.Dialect interface. Values without a SRID
// of their own take the SRID of the column.
func (sqliteDialect) BindValue(p *tree.Placeholder) (interface{}, error) {
	if v, ok := passThrough(p); ok {
		return v, nil
	}
	switch v := p.Value.(type) {
	case *geo.WKTElement:
		return sqliteEWKT(v.SRID(), p.SRID, string(v.AsWKT())), nil
	case *geo.WKBElement:
		b, err := v.AsEWKB()
		if err != nil {
			return nil, sqlerrors.WrapBadArgument(err, "cannot convert WKB element")
		}
		wkt, err := geo.EWKBToWKT(b, geo.FullPrecision)
		if err != nil {
			return nil, sqlerrors.WrapBadArgument(err, "cannot convert WKB element")
		}
		return sqliteEWKT(v.SRID(), p.SRID, string(wkt)), nil
	case *geo.RasterElement:
		return v.Desc(), nil
	case string:
		srid, body, err := checkTextSRID(v)
		if err != nil {
			return nil, err
		}
		return sqliteEWKT(srid, p.SRID, body), nil
	default:
		return nil, sqlerrors.NewBadArgumentf("cannot bind %T to a %s placeholder", p.Value, p.Typ)
	}
}

// sqliteDimension matches the dimension tag following the geometry type
// name of a WKT text, e.g. "POINT Z (1 2 3)".
var sqliteDimension = regexp.MustCompile(
	`(?i)^\s*(POINT|LINESTRING|POLYGON|MULTIPOINT|MULTILINESTRING|MULTIPOLYGON|GEOMETRYCOLLECTION)\s*(ZM|Z)?\s*\(`,
)

// sqliteEWKT renders a WKT body for GeomFromEWKT. SpatiaLite infers the
// dimension from the coordinates and rejects the Z and ZM tags, which are
// dropped. A negative srid falls back to the column SRID; the SRID prefix
// is left out when neither is known.
func sqliteEWKT(srid, columnSRID geopb.SRID, body string) string {
	if m := sqliteDimension.FindStringSubmatchIndex(body); m != nil {
		body = body[m[2]:m[3]] + body[m[1]-1:]
	}
	if srid < 0 {
		srid = columnSRID
	}
	if srid < 0 {
		return body
	}
	return "SRID=" + strconv.Itoa(int(srid)) + ";" + body
}

// ResultValue implements the Dialect interface.
func (sqliteDialect) ResultValue(col ResultColumn, raw interface{}) (geo.Element, error) {
	return resultElement(col, raw, col.Extended)
}

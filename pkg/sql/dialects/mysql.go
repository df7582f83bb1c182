// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package dialects

import (
	"strings"

	"github.com/cockroachdb/geobind/pkg/geo"
	"github.com/cockroachdb/geobind/pkg/geo/geopb"
	"github.com/cockroachdb/geobind/pkg/sql/sem/tree"
	"github.com/cockroachdb/geobind/pkg/sql/sem/types"
	"github.com/cockroachdb/geobind/pkg/sql/sqlerrors"
)

// mysqlDialect binds to MySQL spatial types. MySQL knows neither EWKT nor
// EWKB: values travel as plain WKT, the SRID is passed separately to
// ST_GeomFromText and results are plain WKB.
type mysqlDialect struct{}

var _ Dialect = mysqlDialect{}

var mysqlFuncs = renamer{
	"st_geomfromewkt": "ST_GeomFromText",
	"st_geomfromewkb": "ST_GeomFromWKB",
	"st_asewkb":       "ST_AsBinary",
	"st_asewkt":       "ST_AsText",
}

// Name implements the tree.Dialect interface.
func (mysqlDialect) Name() string { return MySQL }

// Placeholder implements the tree.Dialect interface.
func (mysqlDialect) Placeholder(int) string { return "?" }

// FuncName implements the tree.Dialect interface.
func (mysqlDialect) FuncName(name string) string { return mysqlFuncs.rename(name) }

// QuoteName implements the tree.Dialect interface. MySQL quotes with
// backticks.
func (mysqlDialect) QuoteName(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

// BindValue implements the tree.Dialect interface.
func (mysqlDialect) BindValue(p *tree.Placeholder) (interface{}, error) {
	if p.Typ != nil {
		switch p.Typ.Family() {
		case types.GeographyFamily, types.RasterFamily:
			return nil, sqlerrors.NewBadArgumentf("%s values are not supported by MySQL", p.Typ)
		}
	}
	if v, ok := passThrough(p); ok {
		return v, nil
	}
	var srid geopb.SRID
	var body string
	switch v := p.Value.(type) {
	case string:
		var err error
		if srid, body, err = checkTextSRID(v); err != nil {
			return nil, err
		}
	case *geo.WKTElement:
		srid, body = v.SRID(), string(v.AsWKT())
	case *geo.WKBElement:
		b, err := v.AsEWKB()
		if err != nil {
			return nil, sqlerrors.WrapBadArgument(err, "cannot convert WKB element")
		}
		wkt, err := geo.EWKBToWKT(b, geo.FullPrecision)
		if err != nil {
			return nil, sqlerrors.WrapBadArgument(err, "cannot convert WKB element")
		}
		srid, body = v.SRID(), string(wkt)
	default:
		return nil, sqlerrors.NewBadArgumentf("cannot bind %T to a %s placeholder", p.Value, p.Typ)
	}
	if srid.Valid() && p.SRID.Valid() && srid != p.SRID {
		return nil, sqlerrors.NewBadArgumentf(
			"the SRID (%d) of the supplied value is different from the one of the column (%d)",
			srid, p.SRID,
		)
	}
	return body, nil
}

// ResultValue implements the Dialect interface. MySQL returns plain WKB.
func (mysqlDialect) ResultValue(col ResultColumn, raw interface{}) (geo.Element, error) {
	if col.Typ != nil && col.Typ.Family() == types.RasterFamily {
		return nil, sqlerrors.NewBadArgumentf("raster values are not supported by MySQL")
	}
	return resultElement(col, raw, false /* extended */)
}

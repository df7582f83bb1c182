// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package dialects

import (
	"reflect"

	"github.com/cockroachdb/geobind/pkg/geo"
	"github.com/cockroachdb/geobind/pkg/sql/sem/tree"
	"github.com/cockroachdb/geobind/pkg/sql/sqlerrors"
	"github.com/lib/pq"
)

// postgresDialect binds to PostGIS. Geometries travel as EWKT or hex
// EWKB text, which the geometry input function accepts.
type postgresDialect struct{}

var _ Dialect = postgresDialect{}

// Name implements the tree.Dialect interface.
func (postgresDialect) Name() string { return PostgreSQL }

// Placeholder implements the tree.Dialect interface.
func (postgresDialect) Placeholder(ordinal int) string { return dollarPlaceholder(ordinal) }

// FuncName implements the tree.Dialect interface.
func (postgresDialect) FuncName(name string) string { return name }

// QuoteName implements the tree.Dialect interface.
func (postgresDialect) QuoteName(name string) string { return tree.DoubleQuoteName(name) }

// BindValue implements the tree.Dialect interface.
func (postgresDialect) BindValue(p *tree.Placeholder) (interface{}, error) {
	if v, ok := passThrough(p); ok {
		return postgresArray(v), nil
	}
	switch v := p.Value.(type) {
	case *geo.WKTElement:
		return wktToEWKT(v), nil
	case *geo.WKBElement:
		if v.Extended() {
			return v.Desc(), nil
		}
		return wkbToEWKT(v)
	case *geo.RasterElement:
		return v.Desc(), nil
	case string:
		if _, _, err := checkTextSRID(v); err != nil {
			return nil, err
		}
		return v, nil
	case []byte:
		return v, nil
	default:
		return nil, sqlerrors.NewBadArgumentf("cannot bind %T to a %s placeholder", p.Value, p.Typ)
	}
}

// postgresArray wraps slices so that lib/pq and pgx send them as
// PostgreSQL arrays.
func postgresArray(v interface{}) interface{} {
	if v == nil {
		return nil
	}
	if _, ok := v.([]byte); ok {
		return v
	}
	if reflect.TypeOf(v).Kind() == reflect.Slice {
		return pq.Array(v)
	}
	return v
}

// ResultValue implements the Dialect interface.
func (postgresDialect) ResultValue(col ResultColumn, raw interface{}) (geo.Element, error) {
	return resultElement(col, raw, col.Extended)
}

// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package spatialtypes

import (
	"database/sql"

	"github.com/cockroachdb/geobind/pkg/geo"
	"github.com/cockroachdb/geobind/pkg/sql/dialects"
	"github.com/cockroachdb/geobind/pkg/sql/sem/tree"
)

// Placeholder returns a placeholder for a value bound to the column.
func (t *GISType) Placeholder(v interface{}) *tree.Placeholder {
	p := tree.NewPlaceholder(v, t.SemanticType())
	p.SRID = t.srid
	return p
}

// BindExpression wraps an expression bound to the column in the "from
// text" function of the column type. MySQL receives the SRID of the
// column as a separate argument.
func (t *GISType) BindExpression(d dialects.Dialect, expr tree.Expr) tree.Expr {
	args := []tree.Expr{expr}
	if d.Name() == dialects.MySQL && t.srid.Valid() {
		args = append(args, tree.NewDInt(int64(t.srid)))
	}
	return tree.NewFuncExpr(t.fromText, t.SemanticType(), args...)
}

// ColumnExpression wraps a selected column in the "as binary" function of
// the column type.
func (t *GISType) ColumnExpression(col tree.Expr) tree.Expr {
	return tree.NewFuncExpr(t.AsBinary(), t.SemanticType(), col)
}

// BindValue converts a value bound to the column into the value sent to
// the driver.
func (t *GISType) BindValue(d dialects.Dialect, v interface{}) (interface{}, error) {
	return d.BindValue(t.Placeholder(v))
}

// ResultValue converts a value read through ColumnExpression into an
// element: a *geo.WKBElement for geometries and geographies, a
// *geo.RasterElement for rasters. The SRID of the column, when set, is
// forced onto the element.
func (t *GISType) ResultValue(d dialects.Dialect, raw interface{}) (geo.Element, error) {
	return d.ResultValue(t.resultColumn(), raw)
}

func (t *GISType) resultColumn() dialects.ResultColumn {
	var extended bool
	if t.kind != KindRaster {
		extended = t.Extended()
	}
	return dialects.ResultColumn{Typ: t.SemanticType(), SRID: t.srid, Extended: extended}
}

// Scanner returns a sql.Scanner which stores the element read from the
// column into dest.
func (t *GISType) Scanner(d dialects.Dialect, dest *geo.Element) sql.Scanner {
	return &resultScanner{typ: t, dialect: d, dest: dest}
}

type resultScanner struct {
	typ     *GISType
	dialect dialects.Dialect
	dest    *geo.Element
}

// Scan implements sql.Scanner.
func (s *resultScanner) Scan(src interface{}) error {
	e, err := s.typ.ResultValue(s.dialect, src)
	if err != nil {
		return err
	}
	*s.dest = e
	return nil
}

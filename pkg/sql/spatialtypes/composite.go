// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package spatialtypes

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geobind/pkg/sql/sem/tree"
	"github.com/cockroachdb/geobind/pkg/sql/sem/types"
	"github.com/cockroachdb/geobind/pkg/sql/sqlerrors"
)

// CompositeType is a composite value returned by some spatial functions,
// e.g. the geometry_dump rows returned by ST_Dump.
type CompositeType struct {
	typ *types.TTuple
}

var (
	// GeometryDump is the type of the rows returned by ST_Dump and
	// similar functions. It has a path and a geom field.
	GeometryDump = CompositeType{typ: types.GeometryDump.(*types.TTuple)}
	// GeomVal is a geometry paired with the value of a raster band at that
	// location, with the fields geom and val.
	GeomVal = CompositeType{typ: types.GeomVal.(*types.TTuple)}
	// SummaryStats holds raster band statistics.
	SummaryStats = CompositeType{typ: types.SummaryStats.(*types.TTuple)}
)

// Type returns the semantic type of the composite.
func (c CompositeType) Type() types.T { return c.typ }

// Field returns an expression accessing the named field of expr, typed
// after the field.
func (c CompositeType) Field(expr tree.Expr, name string) (tree.Expr, error) {
	typ, ok := c.typ.Field(name)
	if !ok {
		return nil, sqlerrors.NewUndefinedFieldError(c.typ.Name, name)
	}
	return &tree.ColumnAccessExpr{Expr: expr, ColName: name, Typ: typ}, nil
}

// Field returns an expression accessing the named field of a composite
// expression, e.g. the geom field of a call to ST_Dump.
func Field(expr tree.Expr, name string) (tree.Expr, error) {
	tuple, ok := expr.ResolvedType().(*types.TTuple)
	if !ok {
		return nil, errors.Newf("%s of type %s is not a composite value", expr, expr.ResolvedType())
	}
	return CompositeType{typ: tuple}.Field(expr, name)
}

// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package builtins

import (
	"reflect"

	"github.com/cockroachdb/geobind/pkg/geo"
	"github.com/cockroachdb/geobind/pkg/sql/sem/tree"
	"github.com/cockroachdb/geobind/pkg/sql/sem/types"
)

// Call returns an expression calling the named spatial function. Go
// values are bound through placeholders; spatial elements are wrapped in
// the conversion function of their type. The return type of the
// expression is taken from the catalog, or Any when the function or the
// overload is unknown.
func Call(name string, args ...interface{}) *tree.FuncExpr {
	exprs := make([]tree.Expr, len(args))
	argTypes := make([]types.T, len(args))
	for i, arg := range args {
		exprs[i] = argExpr(arg)
		argTypes[i] = exprs[i].ResolvedType()
	}
	if fd, ok := Lookup(name); ok {
		name = fd.Name
	}
	ret, ok := ReturnTypeOf(name, argTypes...)
	if !ok {
		ret = types.Any
	}
	return tree.NewFuncExpr(name, ret, exprs...)
}

// argExpr turns a Go value into an expression.
func argExpr(arg interface{}) tree.Expr {
	switch v := arg.(type) {
	case tree.Expr:
		return v
	case *geo.WKTElement:
		return bindElement(v, types.Geometry, "ST_GeomFromEWKT")
	case *geo.WKBElement:
		return bindElement(v, types.Geometry, "ST_GeomFromEWKT")
	case *geo.RasterElement:
		return bindElement(v, types.Raster, "raster")
	}
	return tree.NewPlaceholder(arg, typeOfValue(arg))
}

// Geography binds an element as a geography, selecting the geography
// overloads of the functions it is passed to. Elements passed to Call
// directly are bound as geometries.
func Geography(e geo.Element) tree.Expr {
	return bindElement(e, types.Geography, "ST_GeogFromText")
}

func bindElement(e geo.Element, typ types.T, fromText string) tree.Expr {
	p := tree.NewPlaceholder(e, typ)
	p.SRID = e.SRID()
	return tree.NewFuncExpr(fromText, typ, p)
}

// typeOfValue infers the semantic type of a Go value.
func typeOfValue(v interface{}) types.T {
	switch v.(type) {
	case nil:
		return types.Any
	case bool:
		return types.Bool
	case string:
		return types.String
	case []byte:
		return types.Bytes
	case float32, float64:
		return types.Float
	case int, int8, int16, int32, int64, uint8, uint16, uint32:
		return types.Int
	case geo.Element:
		return types.Geometry
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice {
		if rv.Len() > 0 {
			return types.MakeArray(typeOfValue(rv.Index(0).Interface()))
		}
		return types.MakeArray(typeOfValue(reflect.Zero(rv.Type().Elem()).Interface()))
	}
	return types.Any
}

// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package types

import "bytes"

// TTuple is the type of a composite value returned by spatial functions.
// Tuple types are singletons and are compared by pointer.
type TTuple struct {
	Name   string
	Types  []T
	Labels []string
}

var (
	// GeometryDump is the type of the rows returned by ST_Dump.
	GeometryDump T = &TTuple{
		Name:   "geometry_dump",
		Types:  []T{MakeArray(Int), Geometry},
		Labels: []string{"path", "geom"},
	}
	// GeomVal is the type of a geometry paired with a raster value.
	GeomVal T = &TTuple{
		Name:   "geomval",
		Types:  []T{Geometry, Float},
		Labels: []string{"geom", "val"},
	}
	// SummaryStats is the type of raster band statistics.
	SummaryStats T = &TTuple{
		Name:   "summarystats",
		Types:  []T{Int, Float, Float, Float, Float, Float},
		Labels: []string{"count", "sum", "mean", "stddev", "min", "max"},
	}
)

// String implements the fmt.Stringer interface.
func (t *TTuple) String() string {
	var buf bytes.Buffer
	buf.WriteString(t.Name)
	buf.WriteByte('{')
	for i, typ := range t.Types {
		if i != 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(typ.String())
		buf.WriteString(" AS ")
		buf.WriteString(t.Labels[i])
	}
	buf.WriteByte('}')
	return buf.String()
}

// Family implements the T interface.
func (t *TTuple) Family() Family { return TupleFamily }

// SQLName implements the T interface.
func (t *TTuple) SQLName() string { return t.Name }

// Identical implements the T interface.
func (t *TTuple) Identical(other T) bool {
	u, ok := other.(*TTuple)
	return ok && u == t
}

// Equivalent implements the T interface.
func (t *TTuple) Equivalent(other T) bool {
	return other.Family() == AnyFamily || t.Identical(other)
}

// Field returns the type of the named field.
func (t *TTuple) Field(label string) (T, bool) {
	for i, l := range t.Labels {
		if l == label {
			return t.Types[i], true
		}
	}
	return nil, false
}

// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package tree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/geobind/pkg/geo/geopb"
	"github.com/cockroachdb/geobind/pkg/sql/sem/types"
)

// Expr represents an expression.
type Expr interface {
	fmt.Stringer
	NodeFormatter
	// ResolvedType provides the type of the expression.
	ResolvedType() types.T
}

var _ Expr = &ColumnItem{}
var _ Expr = &Placeholder{}
var _ Expr = &FuncExpr{}
var _ Expr = &ColumnAccessExpr{}
var _ Expr = &BinaryExpr{}
var _ Expr = &StrVal{}
var _ Expr = &NumVal{}
var _ Expr = DBool(false)

// ColumnItem corresponds to the name of a column in an expression.
type ColumnItem struct {
	// TableName is optional.
	TableName  string
	ColumnName string
	Typ        types.T
}

// NewColumnItem returns a column reference of the given type.
func NewColumnItem(table, column string, typ types.T) *ColumnItem {
	return &ColumnItem{TableName: table, ColumnName: column, Typ: typ}
}

// Format implements the NodeFormatter interface.
func (c *ColumnItem) Format(ctx *FmtCtx) {
	if c.TableName != "" {
		ctx.FormatName(c.TableName)
		ctx.WriteByte('.')
	}
	ctx.FormatName(c.ColumnName)
}

func (c *ColumnItem) String() string { return AsString(c) }

// ResolvedType implements the Expr interface.
func (c *ColumnItem) ResolvedType() types.T { return typeOrAny(c.Typ) }

// Placeholder is a bind parameter carrying a Go value.
type Placeholder struct {
	Value interface{}
	Typ   types.T
	// SRID is the SRID expected by the receiving column, if any.
	SRID geopb.SRID
}

// NewPlaceholder returns a placeholder bound to v.
func NewPlaceholder(v interface{}, typ types.T) *Placeholder {
	return &Placeholder{Value: v, Typ: typ, SRID: geopb.DefaultSRID}
}

// Format implements the NodeFormatter interface.
func (p *Placeholder) Format(ctx *FmtCtx) { ctx.addArg(p) }

func (p *Placeholder) String() string { return AsString(p) }

// ResolvedType implements the Expr interface.
func (p *Placeholder) ResolvedType() types.T { return typeOrAny(p.Typ) }

// FuncExpr represents a function call.
type FuncExpr struct {
	Func  string
	Exprs []Expr
	// Typ is the declared return type, or Any when the function is not in
	// the registry.
	Typ types.T
}

// NewFuncExpr returns a call of the named function.
func NewFuncExpr(name string, typ types.T, exprs ...Expr) *FuncExpr {
	return &FuncExpr{Func: name, Exprs: exprs, Typ: typ}
}

// Format implements the NodeFormatter interface.
func (f *FuncExpr) Format(ctx *FmtCtx) {
	ctx.WriteString(ctx.funcName(f.Func))
	ctx.WriteByte('(')
	for i, e := range f.Exprs {
		if i > 0 {
			ctx.WriteString(", ")
		}
		ctx.FormatNode(e)
	}
	ctx.WriteByte(')')
}

func (f *FuncExpr) String() string { return AsString(f) }

// ResolvedType implements the Expr interface.
func (f *FuncExpr) ResolvedType() types.T { return typeOrAny(f.Typ) }

// ColumnAccessExpr represents (E).x expressions. Specifically, it
// allows accessing the field of a composite value returned by a function.
type ColumnAccessExpr struct {
	Expr    Expr
	ColName string
	Typ     types.T
}

// Format implements the NodeFormatter interface.
func (c *ColumnAccessExpr) Format(ctx *FmtCtx) {
	ctx.WriteByte('(')
	ctx.FormatNode(c.Expr)
	ctx.WriteString(").")
	ctx.FormatName(c.ColName)
}

func (c *ColumnAccessExpr) String() string { return AsString(c) }

// ResolvedType implements the Expr interface.
func (c *ColumnAccessExpr) ResolvedType() types.T { return typeOrAny(c.Typ) }

// StrVal represents a constant string value.
type StrVal struct {
	S string
}

// NewStrVal constructs a StrVal instance.
func NewStrVal(s string) *StrVal { return &StrVal{S: s} }

// Format implements the NodeFormatter interface.
func (s *StrVal) Format(ctx *FmtCtx) {
	ctx.WriteByte('\'')
	ctx.WriteString(strings.ReplaceAll(s.S, "'", "''"))
	ctx.WriteByte('\'')
}

func (s *StrVal) String() string { return AsString(s) }

// ResolvedType implements the Expr interface.
func (s *StrVal) ResolvedType() types.T { return types.String }

// NumVal represents a constant numeric value.
type NumVal struct {
	// Exactly one of Int or Float is meaningful, depending on IsFloat.
	Int     int64
	Float   float64
	IsFloat bool
}

// NewDInt returns an integer constant.
func NewDInt(i int64) *NumVal { return &NumVal{Int: i} }

// NewDFloat returns a floating point constant.
func NewDFloat(f float64) *NumVal { return &NumVal{Float: f, IsFloat: true} }

// Format implements the NodeFormatter interface.
func (n *NumVal) Format(ctx *FmtCtx) {
	if n.IsFloat {
		ctx.WriteString(strconv.FormatFloat(n.Float, 'g', -1, 64))
		return
	}
	ctx.WriteString(strconv.FormatInt(n.Int, 10))
}

func (n *NumVal) String() string { return AsString(n) }

// ResolvedType implements the Expr interface.
func (n *NumVal) ResolvedType() types.T {
	if n.IsFloat {
		return types.Float
	}
	return types.Int
}

// DBool is a boolean constant.
type DBool bool

// MakeDBool returns the boolean constant for b.
func MakeDBool(b bool) DBool { return DBool(b) }

// Format implements the NodeFormatter interface.
func (d DBool) Format(ctx *FmtCtx) {
	ctx.WriteString(strconv.FormatBool(bool(d)))
}

func (d DBool) String() string { return AsString(d) }

// ResolvedType implements the Expr interface.
func (d DBool) ResolvedType() types.T { return types.Bool }

func typeOrAny(t types.T) types.T {
	if t == nil {
		return types.Any
	}
	return t
}

func itoa(i int) string { return strconv.Itoa(i) }

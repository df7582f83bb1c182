// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package tree

import (
	"bytes"
	"strings"

	"github.com/cockroachdb/errors"
)

// Dialect is the part of a SQL dialect needed to render expressions.
type Dialect interface {
	// Name returns the name of the dialect, e.g. "postgresql".
	Name() string
	// Placeholder returns the text of the ordinal-th (1-based) bind
	// placeholder.
	Placeholder(ordinal int) string
	// FuncName returns the name under which the dialect knows the named
	// function.
	FuncName(name string) string
	// QuoteName quotes an identifier which is not a bare lower case name.
	QuoteName(name string) string
	// BindValue converts the Go value of a placeholder into the value sent
	// to the driver.
	BindValue(p *Placeholder) (interface{}, error)
}

// NodeFormatter is implemented by nodes that can be pretty-printed.
type NodeFormatter interface {
	// Format performs pretty-printing towards a bytes buffer. The flags
	// argument influences the results. Most callers should use FmtCtx
	// instead.
	Format(ctx *FmtCtx)
}

// FmtCtx is suitable for passing to Format() methods. It collects the
// arguments of the placeholders it renders, in order.
type FmtCtx struct {
	bytes.Buffer
	dialect Dialect
	args    []interface{}
	err     error
}

// NewFmtCtx creates a FmtCtx rendering for the given dialect. A nil
// dialect renders "$n" placeholders and binds values unchanged.
func NewFmtCtx(d Dialect) *FmtCtx {
	return &FmtCtx{dialect: d}
}

// FormatNode recurses into a node for pretty-printing.
func (ctx *FmtCtx) FormatNode(n NodeFormatter) {
	n.Format(ctx)
}

// FormatName formats an identifier, quoting it when it would not survive
// the trip through the SQL lexer unchanged.
func (ctx *FmtCtx) FormatName(s string) {
	switch {
	case isBareIdent(s):
		ctx.WriteString(s)
	case ctx.dialect == nil:
		ctx.WriteString(DoubleQuoteName(s))
	default:
		ctx.WriteString(ctx.dialect.QuoteName(s))
	}
}

// DoubleQuoteName quotes an identifier the standard SQL way.
func DoubleQuoteName(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func isBareIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c == '_':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// addArg registers the value of a placeholder and writes its text.
func (ctx *FmtCtx) addArg(p *Placeholder) {
	if ctx.dialect == nil {
		ctx.args = append(ctx.args, p.Value)
		ctx.WriteByte('$')
		ctx.WriteString(itoa(len(ctx.args)))
		return
	}
	bound, err := ctx.dialect.BindValue(p)
	if err != nil && ctx.err == nil {
		ctx.err = errors.Wrapf(err, "binding placeholder %d", len(ctx.args)+1)
	}
	ctx.args = append(ctx.args, bound)
	ctx.WriteString(ctx.dialect.Placeholder(len(ctx.args)))
}

// funcName returns the name of the named function in the rendered dialect.
func (ctx *FmtCtx) funcName(name string) string {
	if ctx.dialect == nil {
		return name
	}
	return ctx.dialect.FuncName(name)
}

// Args returns the values of the placeholders rendered so far.
func (ctx *FmtCtx) Args() []interface{} {
	return ctx.args
}

// Err returns the first error encountered while binding placeholders.
func (ctx *FmtCtx) Err() error {
	return ctx.err
}

// AsString pretty prints a node to a string, rendering placeholders as
// "$n".
func AsString(n NodeFormatter) string {
	ctx := NewFmtCtx(nil)
	ctx.FormatNode(n)
	return ctx.String()
}

// Serialize renders expr for the given dialect. It returns the SQL text
// and the bind arguments of its placeholders.
func Serialize(expr Expr, d Dialect) (string, []interface{}, error) {
	ctx := NewFmtCtx(d)
	ctx.FormatNode(expr)
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}
	return ctx.String(), ctx.Args(), nil
}

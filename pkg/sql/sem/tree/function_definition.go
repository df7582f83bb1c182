// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package tree

import (
	"bytes"
	"strings"

	"github.com/cockroachdb/geobind/pkg/sql/sem/types"
)

// Overload is one signature of a spatial function.
type Overload struct {
	// Types are the parameter types, in order.
	Types []types.T
	// ReturnType is the declared result type.
	ReturnType types.T
	// Info is a description of the overload.
	Info string
	// DocURL points to the reference documentation of the overload.
	DocURL string
}

// Signature returns a human-readable signature, e.g.
// "(geometry, float) -> bool".
func (o *Overload) Signature() string {
	var buf bytes.Buffer
	buf.WriteByte('(')
	for i, t := range o.Types {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(t.String())
	}
	buf.WriteString(") -> ")
	buf.WriteString(o.ReturnType.String())
	return buf.String()
}

// matches returns whether the overload accepts the given argument types.
// Any accepts any type, in both directions.
func (o *Overload) matches(argTypes []types.T) bool {
	if len(argTypes) != len(o.Types) {
		return false
	}
	for i, t := range o.Types {
		if !t.Equivalent(argTypes[i]) {
			return false
		}
	}
	return true
}

// identical returns whether the overload parameters are exactly typs.
func (o *Overload) identical(typs []types.T) bool {
	if len(typs) != len(o.Types) {
		return false
	}
	for i, t := range o.Types {
		if !t.Identical(typs[i]) {
			return false
		}
	}
	return true
}

// FunctionDefinition implements a reference to the (possibly several)
// overloads for a built-in function.
type FunctionDefinition struct {
	// Name is the name of the function in its canonical case, e.g.
	// "ST_AsText".
	Name string
	// Definition is the set of overloads for this function name.
	Definition []*Overload
}

// NewFunctionDefinition allocates a function definition corresponding
// to the given built-in definition.
func NewFunctionDefinition(name string, def []Overload) *FunctionDefinition {
	overloads := make([]*Overload, len(def))
	for i := range def {
		overloads[i] = &def[i]
	}
	return &FunctionDefinition{
		Name:       name,
		Definition: overloads,
	}
}

// FunDefs holds pre-allocated FunctionDefinition instances for every
// builtin function, keyed by lower case name. Initialized by
// builtins.init().
var FunDefs map[string]*FunctionDefinition

// Format implements the NodeFormatter interface.
func (fd *FunctionDefinition) Format(ctx *FmtCtx) {
	ctx.WriteString(fd.Name)
}

func (fd *FunctionDefinition) String() string { return AsString(fd) }

// Match returns the overload which accepts the given argument types. The
// overload with exactly these parameter types wins; otherwise the first
// overload accepting them through Any is returned.
func (fd *FunctionDefinition) Match(argTypes ...types.T) (*Overload, bool) {
	for _, o := range fd.Definition {
		if o.identical(argTypes) {
			return o, true
		}
	}
	for _, o := range fd.Definition {
		if o.matches(argTypes) {
			return o, true
		}
	}
	return nil, false
}

// ReturnType returns the result type of the call with the given argument
// types. When no overload matches but all overloads agree on a result
// type, that type is returned.
func (fd *FunctionDefinition) ReturnType(argTypes ...types.T) (types.T, bool) {
	if o, ok := fd.Match(argTypes...); ok {
		return o.ReturnType, true
	}
	if len(fd.Definition) == 0 {
		return nil, false
	}
	ret := fd.Definition[0].ReturnType
	for _, o := range fd.Definition[1:] {
		if !o.ReturnType.Identical(ret) {
			return nil, false
		}
	}
	return ret, true
}

// LookupFunction returns the definition of the named function, ignoring
// case. A miss means no metadata is known about the function; it is not
// an error.
func LookupFunction(name string) (*FunctionDefinition, bool) {
	fd, ok := FunDefs[strings.ToLower(name)]
	return fd, ok
}

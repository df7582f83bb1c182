// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package tree

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geobind/pkg/sql/sem/types"
)

// BinaryOperator represents a spatial comparison operator.
type BinaryOperator int

// Spatial operators. The bounding box operators compare the 2D bounding
// boxes of their operands unless noted otherwise.
const (
	// Intersects is "&&".
	Intersects BinaryOperator = iota
	// OverlapsOrToLeft is "&<".
	OverlapsOrToLeft
	// OverlapsOrToRight is "&>".
	OverlapsOrToRight
	// ToLeft is "<<".
	ToLeft
	// ToRight is ">>".
	ToRight
	// OverlapsOrBelow is "&<|".
	OverlapsOrBelow
	// OverlapsOrAbove is "|&>".
	OverlapsOrAbove
	// Below is "<<|".
	Below
	// Above is "|>>".
	Above
	// Contains is "~".
	Contains
	// ContainedBy is "@".
	ContainedBy
	// SameAs is "~=".
	SameAs
	// Distance is "<->", the distance between two objects.
	Distance
	// DistanceBBox is "<#>", the distance between two bounding boxes.
	DistanceBBox
	// IntersectsND is "&&&", n-dimensional intersection.
	IntersectsND

	// NumBinaryOperators is the number of spatial operators.
	NumBinaryOperators
)

var binaryOpName = [...]string{
	Intersects:        "&&",
	OverlapsOrToLeft:  "&<",
	OverlapsOrToRight: "&>",
	ToLeft:            "<<",
	ToRight:           ">>",
	OverlapsOrBelow:   "&<|",
	OverlapsOrAbove:   "|&>",
	Below:             "<<|",
	Above:             "|>>",
	Contains:          "~",
	ContainedBy:       "@",
	SameAs:            "~=",
	Distance:          "<->",
	DistanceBBox:      "<#>",
	IntersectsND:      "&&&",
}

func (op BinaryOperator) String() string {
	if op < 0 || op >= NumBinaryOperators {
		return "?"
	}
	return binaryOpName[op]
}

// ReturnType is the type the operator evaluates to.
func (op BinaryOperator) ReturnType() types.T {
	switch op {
	case Distance, DistanceBBox:
		return types.Float
	}
	return types.Bool
}

// ParseBinaryOperator returns the operator spelled s.
func ParseBinaryOperator(s string) (BinaryOperator, error) {
	for op, name := range binaryOpName {
		if name == s {
			return BinaryOperator(op), nil
		}
	}
	return 0, errors.Newf("unknown spatial operator %q", s)
}

// BinaryExpr represents a binary value expression.
type BinaryExpr struct {
	Operator    BinaryOperator
	Left, Right Expr
}

// NewBinaryExpr returns a new BinaryExpr.
func NewBinaryExpr(op BinaryOperator, left, right Expr) *BinaryExpr {
	return &BinaryExpr{Operator: op, Left: left, Right: right}
}

// Format implements the NodeFormatter interface.
func (b *BinaryExpr) Format(ctx *FmtCtx) {
	formatOperand(ctx, b.Left)
	ctx.WriteByte(' ')
	ctx.WriteString(b.Operator.String())
	ctx.WriteByte(' ')
	formatOperand(ctx, b.Right)
}

func formatOperand(ctx *FmtCtx, e Expr) {
	if _, ok := e.(*BinaryExpr); ok {
		ctx.WriteByte('(')
		ctx.FormatNode(e)
		ctx.WriteByte(')')
		return
	}
	ctx.FormatNode(e)
}

func (b *BinaryExpr) String() string { return AsString(b) }

// ResolvedType implements the Expr interface.
func (b *BinaryExpr) ResolvedType() types.T { return b.Operator.ReturnType() }

// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package dialects

import (
	"github.com/cockroachdb/geobind/pkg/geo"
	"github.com/cockroachdb/geobind/pkg/sql/sem/tree"
)

// commonDialect is used for databases without dedicated support. It binds
// like PostGIS but with "?" placeholders.
type commonDialect struct{}

var _ Dialect = commonDialect{}

// Name implements the tree.Dialect interface.
func (commonDialect) Name() string { return Common }

// Placeholder implements the tree.Dialect interface.
func (commonDialect) Placeholder(int) string { return "?" }

// FuncName implements the tree.Dialect interface.
func (commonDialect) FuncName(name string) string { return name }

// QuoteName implements the tree.Dialect interface.
func (commonDialect) QuoteName(name string) string { return tree.DoubleQuoteName(name) }

// BindValue implements the tree.Dialect interface.
func (commonDialect) BindValue(p *tree.Placeholder) (interface{}, error) {
	if v, ok := passThrough(p); ok {
		return v, nil
	}
	return postgresDialect{}.BindValue(p)
}

// ResultValue implements the Dialect interface.
func (commonDialect) ResultValue(col ResultColumn, raw interface{}) (geo.Element, error) {
	return resultElement(col, raw, col.Extended)
}

// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package spatialddl renders the statements creating and dropping tables
// with spatial columns: the column types themselves, their spatial
// indexes and, for managed columns, the calls registering them with the
// spatial extension.
package spatialddl

import (
	"strings"

	"github.com/cockroachdb/geobind/pkg/geo/geopb"
	"github.com/cockroachdb/geobind/pkg/sql/dialects"
	"github.com/cockroachdb/geobind/pkg/sql/sem/tree"
	"github.com/cockroachdb/geobind/pkg/sql/sem/types"
	"github.com/cockroachdb/geobind/pkg/sql/spatialtypes"
	"github.com/cockroachdb/geobind/pkg/sql/sqlerrors"
)

// Column describes a column of a table. Exactly one of SQLType and
// Spatial is set.
type Column struct {
	Name string
	// SQLType is the type of a non spatial column, e.g. "INTEGER".
	SQLType    string
	Spatial    *spatialtypes.GISType
	PrimaryKey bool
}

// Table describes a table to create or drop.
type Table struct {
	// Schema is optional.
	Schema  string
	Name    string
	Columns []Column
}

// SpatialColumns returns the spatial columns of the table, in order.
func (t Table) SpatialColumns() []Column {
	var cols []Column
	for _, c := range t.Columns {
		if c.Spatial != nil {
			cols = append(cols, c)
		}
	}
	return cols
}

// Column returns the named column.
func (t Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// SpatialIndexName returns the name of the spatial index of a column.
func SpatialIndexName(table, column string) string {
	return "idx_" + table + "_" + column
}

// CreateTable returns the statements creating the table, in execution
// order.
func CreateTable(d dialects.Dialect, t Table) ([]string, error) {
	if err := validate(d, t); err != nil {
		return nil, err
	}
	switch d.Name() {
	case dialects.PostgreSQL:
		return createPostgres(d, t), nil
	case dialects.SQLite:
		return createSQLite(d, t), nil
	case dialects.MySQL:
		return createMySQL(d, t), nil
	default:
		return []string{createTableStmt(d, t, postgresColumnType)}, nil
	}
}

// DropTable returns the statements dropping the table, in execution
// order.
func DropTable(d dialects.Dialect, t Table) ([]string, error) {
	if err := validate(d, t); err != nil {
		return nil, err
	}
	var stmts []string
	switch d.Name() {
	case dialects.PostgreSQL:
		for _, c := range t.SpatialColumns() {
			if c.Spatial.Management() && c.Spatial.Kind() == spatialtypes.KindGeometry {
				stmts = append(stmts, selectCall(d, "DropGeometryColumn", managedArgs(t, c)...))
			}
		}
	case dialects.SQLite:
		for _, c := range t.SpatialColumns() {
			args := []tree.Expr{tree.NewStrVal(t.Name), tree.NewStrVal(c.Name)}
			if c.Spatial.SpatialIndex() {
				stmts = append(stmts,
					selectCall(d, "DisableSpatialIndex", args...),
					"DROP TABLE IF EXISTS "+quoteName(d, SpatialIndexName(t.Name, c.Name)),
				)
			}
			stmts = append(stmts, selectCall(d, "DiscardGeometryColumn", args...))
		}
	}
	return append(stmts, "DROP TABLE "+tableName(d, t)), nil
}

// validate rejects the column types the dialect can not store.
func validate(d dialects.Dialect, t Table) error {
	if t.Name == "" {
		return sqlerrors.NewBadArgumentf("a table name is required")
	}
	for _, c := range t.Columns {
		if (c.Spatial == nil) == (c.SQLType == "") {
			return sqlerrors.NewBadArgumentf(
				"column %q of table %q needs exactly one of a SQL type and a spatial type", c.Name, t.Name,
			)
		}
		if c.Spatial == nil {
			continue
		}
		if c.Spatial.UseNDIndex() && !c.Spatial.SpatialIndex() {
			return sqlerrors.NewBadArgumentf(
				"column %q: an N-D index requires the spatial index to be enabled", c.Name,
			)
		}
		switch d.Name() {
		case dialects.SQLite:
			if c.Spatial.Kind() == spatialtypes.KindRaster {
				return sqlerrors.NewBadArgumentf("column %q: SQLite does not support raster columns", c.Name)
			}
		case dialects.MySQL:
			if c.Spatial.Kind() != spatialtypes.KindGeometry {
				return sqlerrors.NewBadArgumentf(
					"column %q: MySQL does not support %s columns", c.Name, c.Spatial.Kind(),
				)
			}
		}
	}
	return nil
}

func createPostgres(d dialects.Dialect, t Table) []string {
	stmts := []string{createTableStmt(d, t, postgresColumnType)}
	for _, c := range t.SpatialColumns() {
		typ := c.Spatial
		if managed(d, c) {
			args := managedArgs(t, c)
			args = append(args,
				tree.NewDInt(int64(typ.SRID())),
				tree.NewStrVal(string(typ.ShapeType())),
				tree.NewDInt(int64(typ.Dimension())),
			)
			if useTypmod, ok := typ.UseTypmod(); ok {
				args = append(args, tree.MakeDBool(useTypmod))
			}
			stmts = append(stmts, selectCall(d, "AddGeometryColumn", args...))
			if !typ.Nullable() {
				stmts = append(stmts, "ALTER TABLE "+tableName(d, t)+
					" ALTER COLUMN "+quoteName(d, c.Name)+" SET NOT NULL")
			}
		}
		if !typ.SpatialIndex() {
			continue
		}
		var b strings.Builder
		b.WriteString("CREATE INDEX ")
		switch {
		case typ.Kind() == spatialtypes.KindRaster:
			b.WriteString(quoteName(d, SpatialIndexName(t.Name, c.Name)))
			b.WriteString(" ON " + tableName(d, t) + " USING gist (")
			b.WriteString(selectExpr(d, tree.NewFuncExpr(
				"ST_ConvexHull", types.Geometry, tree.NewColumnItem("", c.Name, types.Raster),
			)))
			b.WriteString(")")
		case typ.UseNDIndex():
			b.WriteString(quoteName(d, SpatialIndexName(t.Name, c.Name)+"_nd"))
			b.WriteString(" ON " + tableName(d, t) + " USING gist (")
			b.WriteString(quoteName(d, c.Name) + " gist_geometry_ops_nd)")
		default:
			b.WriteString(quoteName(d, SpatialIndexName(t.Name, c.Name)))
			b.WriteString(" ON " + tableName(d, t) + " USING gist (" + quoteName(d, c.Name) + ")")
		}
		stmts = append(stmts, b.String())
	}
	return stmts
}

func createSQLite(d dialects.Dialect, t Table) []string {
	stmts := []string{createTableStmt(d, t, func(*spatialtypes.GISType) string {
		return string(geopb.ShapeType_Geometry)
	})}
	for _, c := range t.SpatialColumns() {
		typ := c.Spatial
		shape := typ.ShapeType()
		if shape.Unset() {
			shape = geopb.ShapeType_Geometry
		}
		stmts = append(stmts, selectCall(d, "RecoverGeometryColumn",
			tree.NewStrVal(t.Name),
			tree.NewStrVal(c.Name),
			tree.NewDInt(int64(typ.SRID())),
			tree.NewStrVal(string(shape.Base())),
			tree.NewStrVal(coordDimension(typ)),
		))
		if typ.SpatialIndex() {
			stmts = append(stmts, selectCall(d, "CreateSpatialIndex",
				tree.NewStrVal(t.Name), tree.NewStrVal(c.Name),
			))
		}
	}
	return stmts
}

func createMySQL(d dialects.Dialect, t Table) []string {
	stmts := []string{createTableStmt(d, t, (*spatialtypes.GISType).MySQLColumnSpec)}
	for _, c := range t.SpatialColumns() {
		if c.Spatial.SpatialIndex() {
			stmts = append(stmts, "CREATE SPATIAL INDEX "+
				quoteName(d, SpatialIndexName(t.Name, c.Name))+
				" ON "+tableName(d, t)+" ("+quoteName(d, c.Name)+")")
		}
	}
	return stmts
}

// createTableStmt renders the CREATE TABLE statement. Managed columns
// are added afterwards and left out.
func createTableStmt(
	d dialects.Dialect, t Table, columnType func(*spatialtypes.GISType) string,
) string {
	var b strings.Builder
	b.WriteString("CREATE TABLE ")
	b.WriteString(tableName(d, t))
	b.WriteString(" (")
	first := true
	for _, c := range t.Columns {
		if c.Spatial != nil && managed(d, c) {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(quoteName(d, c.Name))
		b.WriteByte(' ')
		if c.Spatial == nil {
			b.WriteString(c.SQLType)
		} else {
			b.WriteString(columnType(c.Spatial))
			if !c.Spatial.Nullable() && d.Name() != dialects.MySQL {
				b.WriteString(" NOT NULL")
			}
		}
		if c.PrimaryKey {
			b.WriteString(" PRIMARY KEY")
		}
	}
	b.WriteString(")")
	return b.String()
}

func postgresColumnType(t *spatialtypes.GISType) string { return t.ColumnSpec() }

// managed returns whether the column is registered through
// AddGeometryColumn instead of being declared in CREATE TABLE.
func managed(d dialects.Dialect, c Column) bool {
	return d.Name() == dialects.PostgreSQL &&
		c.Spatial.Management() &&
		c.Spatial.Kind() == spatialtypes.KindGeometry
}

func managedArgs(t Table, c Column) []tree.Expr {
	var args []tree.Expr
	if t.Schema != "" {
		args = append(args, tree.NewStrVal(t.Schema))
	}
	return append(args, tree.NewStrVal(t.Name), tree.NewStrVal(c.Name))
}

// coordDimension returns the SpatiaLite name of the coordinate dimension
// of a column.
func coordDimension(t *spatialtypes.GISType) string {
	shape := t.ShapeType()
	switch {
	case shape.HasZM():
		return "XYZM"
	case shape.HasZOrM() && shape[len(shape)-1] == 'M':
		return "XYM"
	case shape.HasZOrM():
		return "XYZ"
	}
	switch t.Dimension() {
	case 3:
		return "XYZ"
	case 4:
		return "XYZM"
	}
	return "XY"
}

func selectCall(d dialects.Dialect, fn string, args ...tree.Expr) string {
	return "SELECT " + selectExpr(d, tree.NewFuncExpr(fn, types.Any, args...))
}

// selectExpr renders an expression made of constants only.
func selectExpr(d dialects.Dialect, e tree.Expr) string {
	ctx := tree.NewFmtCtx(d)
	ctx.FormatNode(e)
	return ctx.String()
}

func tableName(d dialects.Dialect, t Table) string {
	if t.Schema == "" {
		return quoteName(d, t.Name)
	}
	return quoteName(d, t.Schema) + "." + quoteName(d, t.Name)
}

// quoteName quotes identifiers that are not bare lower case names.
func quoteName(d dialects.Dialect, name string) string {
	ctx := tree.NewFmtCtx(d)
	ctx.FormatName(name)
	return ctx.String()
}

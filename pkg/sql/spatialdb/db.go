// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package spatialdb runs the statements built by the spatial column types
// and function wrappers against a database/sql connection.
package spatialdb

import (
	"context"
	"database/sql"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geobind/pkg/geo"
	"github.com/cockroachdb/geobind/pkg/sql/dialects"
	"github.com/cockroachdb/geobind/pkg/sql/sem/tree"
	"github.com/cockroachdb/geobind/pkg/sql/sem/types"
	"github.com/cockroachdb/geobind/pkg/sql/spatialddl"
	"github.com/cockroachdb/geobind/pkg/sql/spatialtypes"
	"github.com/cockroachdb/geobind/pkg/sql/sqlerrors"
	"github.com/cockroachdb/geobind/pkg/util/log"
	"github.com/cockroachdb/logtags"
	"github.com/jmoiron/sqlx"
)

// DB is a connection to a spatially enabled database.
type DB struct {
	db      *sqlx.DB
	dialect dialects.Dialect
}

// Open connects to the database. The dialect is chosen from the driver
// name.
func Open(ctx context.Context, driverName, dataSourceName string) (*DB, error) {
	db, err := sqlx.ConnectContext(ctx, driverName, dataSourceName)
	if err != nil {
		return nil, errors.Wrapf(err, "connecting to %s", driverName)
	}
	return Wrap(db), nil
}

// Wrap returns a DB using an existing connection.
func Wrap(db *sqlx.DB) *DB {
	return &DB{db: db, dialect: dialects.Select(db.DriverName())}
}

// WithDialect returns a copy of db rendering statements for the given
// dialect.
func (db *DB) WithDialect(d dialects.Dialect) *DB {
	return &DB{db: db.db, dialect: d}
}

// Dialect returns the dialect statements are rendered for.
func (db *DB) Dialect() dialects.Dialect { return db.dialect }

// Conn returns the underlying connection.
func (db *DB) Conn() *sqlx.DB { return db.db }

// Close closes the connection.
func (db *DB) Close() error { return db.db.Close() }

// CreateTable creates the table, its spatial indexes and managed columns
// in a single transaction.
func (db *DB) CreateTable(ctx context.Context, t spatialddl.Table) error {
	stmts, err := spatialddl.CreateTable(db.dialect, t)
	if err != nil {
		return err
	}
	return db.execInTxn(ctx, stmts)
}

// DropTable drops the table, unregistering its managed columns.
func (db *DB) DropTable(ctx context.Context, t spatialddl.Table) error {
	stmts, err := spatialddl.DropTable(db.dialect, t)
	if err != nil {
		return err
	}
	return db.execInTxn(ctx, stmts)
}

func (db *DB) execInTxn(ctx context.Context, stmts []string) error {
	tx, err := db.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "starting transaction")
	}
	defer func() { _ = tx.Rollback() }()
	for _, stmt := range stmts {
		log.VEventf(ctx, 2, "executing %s", stmt)
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return errors.Wrapf(err, "executing %s", stmt)
		}
	}
	return errors.Wrap(tx.Commit(), "committing transaction")
}

// Insert inserts one row. Values of spatial columns are bound through the
// "from text" function of their column type.
func (db *DB) Insert(ctx context.Context, t spatialddl.Table, values map[string]interface{}) error {
	ctx = logtags.AddTag(ctx, "table", t.Name)
	stmt, args, err := db.insertStmt(t, values)
	if err != nil {
		return err
	}
	log.VEventf(ctx, 2, "executing %s", stmt)
	if _, err := db.db.ExecContext(ctx, stmt, args...); err != nil {
		return errors.Wrapf(err, "executing %s", stmt)
	}
	return nil
}

func (db *DB) insertStmt(
	t spatialddl.Table, values map[string]interface{},
) (string, []interface{}, error) {
	fmtCtx := tree.NewFmtCtx(db.dialect)
	fmtCtx.WriteString("INSERT INTO ")
	formatTableName(fmtCtx, t)
	fmtCtx.WriteString(" (")
	var exprs []tree.Expr
	for _, c := range t.Columns {
		v, ok := values[c.Name]
		if !ok {
			continue
		}
		if len(exprs) > 0 {
			fmtCtx.WriteString(", ")
		}
		fmtCtx.FormatName(c.Name)
		if c.Spatial != nil {
			exprs = append(exprs, c.Spatial.BindExpression(db.dialect, c.Spatial.Placeholder(v)))
		} else {
			exprs = append(exprs, tree.NewPlaceholder(v, nil))
		}
	}
	if len(exprs) != len(values) {
		return "", nil, sqlerrors.NewBadArgumentf("unknown column in values inserted into %q", t.Name)
	}
	fmtCtx.WriteString(") VALUES (")
	for i, e := range exprs {
		if i > 0 {
			fmtCtx.WriteString(", ")
		}
		fmtCtx.FormatNode(e)
	}
	fmtCtx.WriteString(")")
	if err := fmtCtx.Err(); err != nil {
		return "", nil, err
	}
	return fmtCtx.String(), fmtCtx.Args(), nil
}

// Row maps column names to the values read from a row. Spatial columns
// hold a geo.Element, or nil for NULL.
type Row map[string]interface{}

// Element returns the spatial value of the named column.
func (r Row) Element(col string) (geo.Element, bool) {
	e, ok := r[col].(geo.Element)
	return e, ok
}

// SelectRow reads the given columns of the row whose key column equals
// key. Spatial columns are read through the "as binary" function of their
// column type and converted into elements. sql.ErrNoRows is returned when
// no row matches.
func (db *DB) SelectRow(
	ctx context.Context, t spatialddl.Table, keyColumn string, key interface{}, columns ...string,
) (Row, error) {
	ctx = logtags.AddTag(ctx, "table", t.Name)
	row := make(Row, len(columns))
	stmt, args, dests, err := db.selectRowStmt(t, keyColumn, key, columns, row)
	if err != nil {
		return nil, err
	}
	log.VEventf(ctx, 2, "executing %s", stmt)
	if err := db.db.QueryRowxContext(ctx, stmt, args...).Scan(dests...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, errors.Wrapf(err, "executing %s", stmt)
	}
	return row, nil
}

// selectRowStmt renders the query of SelectRow and the scan destinations
// filling row.
func (db *DB) selectRowStmt(
	t spatialddl.Table, keyColumn string, key interface{}, columns []string, row Row,
) (stmt string, args []interface{}, dests []interface{}, _ error) {
	fmtCtx := tree.NewFmtCtx(db.dialect)
	fmtCtx.WriteString("SELECT ")
	dests = make([]interface{}, len(columns))
	for i, name := range columns {
		c, ok := t.Column(name)
		if !ok {
			return "", nil, nil, sqlerrors.NewBadArgumentf("table %q has no column %q", t.Name, name)
		}
		if i > 0 {
			fmtCtx.WriteString(", ")
		}
		col := tree.NewColumnItem("", c.Name, nil)
		if c.Spatial == nil {
			fmtCtx.FormatNode(col)
			dests[i] = &nullable{name: name, row: row}
			continue
		}
		fmtCtx.FormatNode(c.Spatial.ColumnExpression(col))
		dests[i] = &spatialResult{name: name, row: row, typ: c.Spatial, dialect: db.dialect}
	}
	fmtCtx.WriteString(" FROM ")
	formatTableName(fmtCtx, t)
	fmtCtx.WriteString(" WHERE ")
	fmtCtx.FormatName(keyColumn)
	fmtCtx.WriteString(" = ")
	fmtCtx.FormatNode(tree.NewPlaceholder(key, nil))
	if err := fmtCtx.Err(); err != nil {
		return "", nil, nil, err
	}
	return fmtCtx.String(), fmtCtx.Args(), dests, nil
}

// CallFunc evaluates a function call, e.g. one built by builtins.Call, and
// returns its result. Spatial results are read back as elements.
func (db *DB) CallFunc(ctx context.Context, expr tree.Expr) (interface{}, error) {
	var dest interface{}
	var scan interface{} = &dest
	var result geo.Element
	if typ := spatialTypeOf(expr.ResolvedType()); typ != nil {
		expr = typ.ColumnExpression(expr)
		scan = typ.Scanner(db.dialect, &result)
	}
	sqlExpr, args, err := tree.Serialize(expr, db.dialect)
	if err != nil {
		return nil, err
	}
	stmt := "SELECT " + sqlExpr
	log.VEventf(ctx, 2, "executing %s", stmt)
	if err := db.db.QueryRowxContext(ctx, stmt, args...).Scan(scan); err != nil {
		return nil, errors.Wrapf(err, "executing %s", stmt)
	}
	if _, ok := scan.(sql.Scanner); ok {
		if result == nil {
			return nil, nil
		}
		return result, nil
	}
	if b, ok := dest.([]byte); ok {
		dest = append([]byte(nil), b...)
	}
	return dest, nil
}

// spatialTypeOf returns the column type spatial results of type t are
// read through, or nil for non spatial types.
func spatialTypeOf(t types.T) *spatialtypes.GISType {
	var typ *spatialtypes.GISType
	var err error
	switch t.Family() {
	case types.GeometryFamily:
		typ, err = spatialtypes.NewGeometry()
	case types.GeographyFamily:
		typ, err = spatialtypes.NewGeography()
	case types.RasterFamily:
		typ, err = spatialtypes.NewRaster()
	default:
		return nil
	}
	if err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "default %s column type", t))
	}
	return typ
}

func formatTableName(ctx *tree.FmtCtx, t spatialddl.Table) {
	if t.Schema != "" {
		ctx.FormatName(t.Schema)
		ctx.WriteByte('.')
	}
	ctx.FormatName(t.Name)
}

// nullable scans a non spatial column into a row.
type nullable struct {
	name string
	row  Row
}

// Scan implements sql.Scanner.
func (n *nullable) Scan(src interface{}) error {
	if b, ok := src.([]byte); ok {
		src = append([]byte(nil), b...)
	}
	n.row[n.name] = src
	return nil
}

// spatialResult scans a spatial column into a row.
type spatialResult struct {
	name    string
	row     Row
	typ     *spatialtypes.GISType
	dialect dialects.Dialect
}

// Scan implements sql.Scanner.
func (s *spatialResult) Scan(src interface{}) error {
	e, err := s.typ.ResultValue(s.dialect, src)
	if err != nil {
		return err
	}
	s.row[s.name] = e
	return nil
}

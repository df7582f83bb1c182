// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package spatialdb

import (
	"context"
	"database/sql"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geobind/pkg/geo"
	"github.com/cockroachdb/geobind/pkg/geo/geopb"
	"github.com/cockroachdb/geobind/pkg/sql/dialects"
	"github.com/cockroachdb/geobind/pkg/sql/sem/builtins"
	"github.com/cockroachdb/geobind/pkg/sql/spatialddl"
	"github.com/cockroachdb/geobind/pkg/sql/spatialtypes"
	"github.com/cockroachdb/geobind/pkg/testutils/spatialite"
	"github.com/cockroachdb/geobind/pkg/testutils/sqlutils"
	"github.com/cockroachdb/geobind/pkg/util/log"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

func openSpatialite(t *testing.T) *DB {
	t.Helper()
	db, err := Open(context.Background(), spatialite.DriverName, ":memory:")
	require.NoError(t, err)
	// Every connection to ":memory:" opens a distinct database.
	db.Conn().SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func lakeTable(t *testing.T) spatialddl.Table {
	geom, err := spatialtypes.NewGeometry(
		spatialtypes.WithShapeType("POINT"), spatialtypes.WithSRID(4326),
	)
	require.NoError(t, err)
	return spatialddl.Table{Name: "lake", Columns: []spatialddl.Column{
		{Name: "id", SQLType: "INTEGER", PrimaryKey: true},
		{Name: "name", SQLType: "TEXT"},
		{Name: "geom", Spatial: geom},
	}}
}

func asString(t *testing.T, v interface{}) string {
	t.Helper()
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	}
	t.Fatalf("expected text, got %T", v)
	return ""
}

func TestOpenSelectsDialect(t *testing.T) {
	db := openSpatialite(t)
	require.Equal(t, dialects.SQLite, db.Dialect().Name())
	require.Equal(t, dialects.MySQL, db.WithDialect(dialects.Select("mysql")).Dialect().Name())
}

func TestMySQLStatements(t *testing.T) {
	db := openSpatialite(t).WithDialect(dialects.Select("mysql"))
	table := spatialddl.Table{Name: "Lake", Columns: []spatialddl.Column{
		{Name: "id", SQLType: "INTEGER", PrimaryKey: true},
		{Name: "Geom", Spatial: spatialtypes.MustGeometry(
			spatialtypes.WithShapeType("POINT"), spatialtypes.WithSRID(4326),
		)},
	}}

	ddl, err := spatialddl.CreateTable(db.Dialect(), table)
	require.NoError(t, err)
	require.Equal(t, "CREATE TABLE `Lake` (id INTEGER PRIMARY KEY, `Geom` POINT NOT NULL SRID 4326)", ddl[0])

	stmt, args, err := db.insertStmt(table, map[string]interface{}{
		"id":   1,
		"Geom": geo.MustWKTElement("POINT(1 2)", 4326),
	})
	require.NoError(t, err)
	require.Equal(t, "INSERT INTO `Lake` (id, `Geom`) VALUES (?, ST_GeomFromText(?, 4326))", stmt)
	require.Equal(t, []interface{}{1, "POINT(1 2)"}, args)

	stmt, args, _, err = db.selectRowStmt(table, "id", 1, []string{"Geom"}, Row{})
	require.NoError(t, err)
	require.Equal(t, "SELECT ST_AsBinary(`Geom`) FROM `Lake` WHERE id = ?", stmt)
	require.Equal(t, []interface{}{1}, args)
}

func TestRoundTrip(t *testing.T) {
	defer log.Scope(t).Close(t)
	ctx := context.Background()
	db := openSpatialite(t)
	table := lakeTable(t)

	spatialite.ResetCalls()
	require.NoError(t, db.CreateTable(ctx, table))
	require.Equal(t, []string{"RecoverGeometryColumn", "CreateSpatialIndex"}, spatialite.CallNames())

	require.NoError(t, db.Insert(ctx, table, map[string]interface{}{
		"id":   1,
		"name": "Majeur",
		"geom": geo.MustWKTElement("POINT(1 2)", 4326),
	}))
	require.NoError(t, db.Insert(ctx, table, map[string]interface{}{
		"id":   2,
		"name": nil,
		"geom": nil,
	}))
	// Raw EWKT strings are bound as is.
	require.NoError(t, db.Insert(ctx, table, map[string]interface{}{
		"id":   3,
		"geom": "SRID=4326;POINT(3 4)",
	}))
	// Values without a SRID are stored with the SRID of the column.
	require.NoError(t, db.Insert(ctx, table, map[string]interface{}{
		"id":   4,
		"geom": "POINT(5 6)",
	}))
	require.NoError(t, db.Insert(ctx, table, map[string]interface{}{
		"id":   5,
		"geom": geo.MustWKTElement("POINT(7 8)", geopb.DefaultSRID),
	}))

	r := sqlutils.MakeSQLRunner(db.Conn())
	r.CheckQueryResults(t, "SELECT id, ST_X(geom), ST_SRID(geom) FROM lake ORDER BY id", [][]string{
		{"1", "1", "4326"},
		{"2", "NULL", "NULL"},
		{"3", "3", "4326"},
		{"4", "5", "4326"},
		{"5", "7", "4326"},
	})

	row, err := db.SelectRow(ctx, table, "id", 1, "name", "geom")
	require.NoError(t, err)
	require.Equal(t, "Majeur", asString(t, row["name"]))
	e, ok := row.Element("geom")
	require.True(t, ok)
	require.Equal(t, geopb.SRID(4326), e.SRID())
	wkb, ok := e.(*geo.WKBElement)
	require.True(t, ok)
	require.True(t, wkb.Extended())
	g, err := wkb.Geom()
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2}, g.FlatCoords())
	require.Equal(t, 4326, g.SRID())

	row, err = db.SelectRow(ctx, table, "id", 2, "name", "geom")
	require.NoError(t, err)
	require.Nil(t, row["name"])
	require.Nil(t, row["geom"])
	_, ok = row.Element("geom")
	require.False(t, ok)

	_, err = db.SelectRow(ctx, table, "id", 42, "geom")
	require.True(t, errors.Is(err, sql.ErrNoRows))

	spatialite.ResetCalls()
	require.NoError(t, db.DropTable(ctx, table))
	require.Equal(t, []string{"DisableSpatialIndex", "DiscardGeometryColumn"}, spatialite.CallNames())
}

func TestCallFunc(t *testing.T) {
	ctx := context.Background()
	db := openSpatialite(t)
	point := geo.MustWKTElement("POINT(3 4)", 4326)

	x, err := db.CallFunc(ctx, builtins.Call("ST_X", point))
	require.NoError(t, err)
	require.Equal(t, 3.0, x)

	srid, err := db.CallFunc(ctx, builtins.Call("ST_SRID", point))
	require.NoError(t, err)
	require.Equal(t, int64(4326), srid)

	res, err := db.CallFunc(ctx, builtins.Call("ST_GeomFromEWKT", "SRID=3857;POINT(5 6)"))
	require.NoError(t, err)
	e, ok := res.(*geo.WKBElement)
	require.True(t, ok, "%T", res)
	require.Equal(t, geopb.SRID(3857), e.SRID())
	g, err := e.Geom()
	require.NoError(t, err)
	p, ok := g.(*geom.Point)
	require.True(t, ok)
	require.Equal(t, []float64{5, 6}, p.Coords())

	res, err = db.CallFunc(ctx, builtins.Call("ST_GeomFromEWKT", nil))
	require.NoError(t, err)
	require.Nil(t, res)
}

func TestErrors(t *testing.T) {
	ctx := context.Background()
	db := openSpatialite(t)
	table := lakeTable(t)
	require.NoError(t, db.CreateTable(ctx, table))

	t.Run("bad argument", func(t *testing.T) {
		err := db.Insert(ctx, table, map[string]interface{}{"id": 1, "geom": "SRID=x;POINT(1 2)"})
		require.ErrorIs(t, err, spatialtypes.ErrBadArgument)

		err = db.Insert(ctx, table, map[string]interface{}{"id": 1, "depth": 3})
		require.ErrorIs(t, err, spatialtypes.ErrBadArgument)

		_, err = db.SelectRow(ctx, table, "id", 1, "depth")
		require.ErrorIs(t, err, spatialtypes.ErrBadArgument)
	})

	t.Run("driver error", func(t *testing.T) {
		row := map[string]interface{}{"id": 1, "geom": geo.MustWKTElement("POINT(1 2)", 4326)}
		require.NoError(t, db.Insert(ctx, table, row))
		err := db.Insert(ctx, table, row)
		require.Error(t, err)
		var sqliteErr sqlite3.Error
		require.True(t, errors.As(err, &sqliteErr), "%+v", err)
		require.Equal(t, sqlite3.ErrConstraint, sqliteErr.Code)
		require.Contains(t, err.Error(), "executing INSERT INTO lake (id, geom) VALUES (?, GeomFromEWKT(?))")
	})

	t.Run("unsupported column", func(t *testing.T) {
		rast, err := spatialtypes.NewRaster()
		require.NoError(t, err)
		err = db.CreateTable(ctx, spatialddl.Table{Name: "tiles", Columns: []spatialddl.Column{
			{Name: "rast", Spatial: rast},
		}})
		require.ErrorIs(t, err, spatialtypes.ErrBadArgument)
	})
}

// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package spatialdb

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geobind/pkg/geo"
	"github.com/cockroachdb/geobind/pkg/geo/geopb"
	"github.com/cockroachdb/geobind/pkg/sql/dialects"
	"github.com/cockroachdb/geobind/pkg/sql/spatialddl"
	"github.com/cockroachdb/geobind/pkg/sql/spatialtypes"
	"github.com/cockroachdb/geobind/pkg/sql/sqlerrors"
	"github.com/cockroachdb/geobind/pkg/testutils/skip"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/require"
)

// errNoSuchTable is the MySQL error number of ER_NO_SUCH_TABLE.
const errNoSuchTable = 1146

// TestMySQL runs against the MySQL server named by GEOBIND_TEST_MYSQL_DSN,
// e.g. "root@tcp(localhost:3306)/geobind".
func TestMySQL(t *testing.T) {
	dsn := skip.UnlessEnv(t, "GEOBIND_TEST_MYSQL_DSN")
	ctx := context.Background()
	db, err := Open(ctx, "mysql", dsn)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	require.Equal(t, dialects.MySQL, db.Dialect().Name())

	table := spatialddl.Table{Name: "geobind_lake", Columns: []spatialddl.Column{
		{Name: "id", SQLType: "INTEGER", PrimaryKey: true},
		{Name: "geom", Spatial: spatialtypes.MustGeometry(
			spatialtypes.WithShapeType("POINT"), spatialtypes.WithSRID(4326),
		)},
	}}
	_, _ = db.Conn().ExecContext(ctx, "DROP TABLE IF EXISTS geobind_lake")
	require.NoError(t, db.CreateTable(ctx, table))
	defer func() { require.NoError(t, db.DropTable(ctx, table)) }()

	require.NoError(t, db.Insert(ctx, table, map[string]interface{}{
		"id":   1,
		"geom": geo.MustWKTElement("POINT(1 2)", 4326),
	}))
	row, err := db.SelectRow(ctx, table, "id", 1, "geom")
	require.NoError(t, err)
	e, ok := row.Element("geom")
	require.True(t, ok)
	require.Equal(t, geopb.SRID(4326), e.SRID())
	g, err := e.(*geo.WKBElement).Geom()
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2}, g.FlatCoords())

	err = db.Insert(ctx, table, map[string]interface{}{
		"id":   2,
		"geom": geo.MustWKTElement("POINT(1 2)", 3857),
	})
	require.True(t, errors.Is(err, sqlerrors.ErrBadArgument))

	_, err = db.SelectRow(ctx, spatialddl.Table{Name: "geobind_missing"}, "id", 1)
	var myErr *mysql.MySQLError
	require.True(t, errors.As(err, &myErr))
	require.Equal(t, uint16(errNoSuchTable), myErr.Number)
}

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
	"github.com/cockroachdb/geobind/pkg/sql/pgwire/pgcode"
	"github.com/cockroachdb/geobind/pkg/sql/pgwire/pgerror"
	"github.com/cockroachdb/geobind/pkg/sql/sem/builtins"
	"github.com/cockroachdb/geobind/pkg/sql/spatialddl"
	"github.com/cockroachdb/geobind/pkg/sql/spatialtypes"
	"github.com/cockroachdb/geobind/pkg/testutils/skip"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

// TestPostGIS runs against the PostGIS server named by
// GEOBIND_TEST_PG_DSN.
func TestPostGIS(t *testing.T) {
	dsn := skip.UnlessEnv(t, "GEOBIND_TEST_PG_DSN")
	ctx := context.Background()
	db, err := Open(ctx, "postgres", dsn)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	require.Equal(t, dialects.PostgreSQL, db.Dialect().Name())

	table := spatialddl.Table{Name: "geobind_lake", Columns: []spatialddl.Column{
		{Name: "id", SQLType: "INTEGER", PrimaryKey: true},
		{Name: "geom", Spatial: spatialtypes.MustGeometry(
			spatialtypes.WithShapeType("POINT"), spatialtypes.WithSRID(4326),
		)},
		{Name: "geog", Spatial: func() *spatialtypes.GISType {
			typ, err := spatialtypes.NewGeography(
				spatialtypes.WithShapeType("POINT"), spatialtypes.WithSRID(4326),
			)
			require.NoError(t, err)
			return typ
		}()},
	}}
	_, _ = db.Conn().ExecContext(ctx, "DROP TABLE IF EXISTS geobind_lake")
	require.NoError(t, db.CreateTable(ctx, table))
	defer func() { require.NoError(t, db.DropTable(ctx, table)) }()

	require.NoError(t, db.Insert(ctx, table, map[string]interface{}{
		"id":   1,
		"geom": geo.MustWKTElement("POINT(1 2)", 4326),
		"geog": geo.MustWKTElement("POINT(1 2)", 4326),
	}))
	row, err := db.SelectRow(ctx, table, "id", 1, "geom", "geog")
	require.NoError(t, err)
	for _, col := range []string{"geom", "geog"} {
		e, ok := row.Element(col)
		require.True(t, ok, col)
		require.Equal(t, geopb.SRID(4326), e.SRID())
		g, err := e.(*geo.WKBElement).Geom()
		require.NoError(t, err)
		require.Equal(t, []float64{1, 2}, g.FlatCoords())
	}

	area, err := db.CallFunc(ctx, builtins.Call("ST_Area",
		builtins.Call("ST_Buffer", geo.MustWKTElement("POINT(0 0)", 3857), 1.0, "quad_segs=8")))
	require.NoError(t, err)
	require.InDelta(t, 3.12, area, 0.01)

	_, err = db.SelectRow(ctx, spatialddl.Table{Name: "geobind_missing"}, "id", 1)
	var pqErr *pq.Error
	require.True(t, errors.As(err, &pqErr))
	require.Equal(t, pgcode.UndefinedTable, pgerror.GetPGCode(err))
}

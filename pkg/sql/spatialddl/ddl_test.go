// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package spatialddl

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geobind/pkg/sql/dialects"
	"github.com/cockroachdb/geobind/pkg/sql/spatialtypes"
	"github.com/cockroachdb/geobind/pkg/util/log"
	"github.com/stretchr/testify/require"
)

// TestDDL runs the statements of the testdata files. The input of the
// create and drop commands lists one column per line:
//
//	<name> <sql type...> [pk]
//	<name> geometry|geography|raster [shape=..] [srid=..] [dim=..] [index=..]
//	       [nd=..] [management=..] [typmod=..] [nullable=..]
func TestDDL(t *testing.T) {
	defer log.Scope(t).Close(t)

	datadriven.Walk(t, "testdata", func(t *testing.T, path string) {
		datadriven.RunTest(t, path, func(t *testing.T, d *datadriven.TestData) string {
			var dialect, schema, name string
			d.ScanArgs(t, "dialect", &dialect)
			d.ScanArgs(t, "table", &name)
			if d.HasArg("schema") {
				d.ScanArgs(t, "schema", &schema)
			}
			table, err := parseTable(schema, name, d.Input)
			if err != nil {
				return fmt.Sprintf("error: %v", err)
			}
			var stmts []string
			switch d.Cmd {
			case "create":
				stmts, err = CreateTable(dialects.Select(dialect), table)
			case "drop":
				stmts, err = DropTable(dialects.Select(dialect), table)
			default:
				d.Fatalf(t, "unknown command %s", d.Cmd)
			}
			if err != nil {
				return fmt.Sprintf("error: %v", err)
			}
			return strings.Join(stmts, ";\n") + ";\n"
		})
	})
}

func parseTable(schema, name, input string) (Table, error) {
	t := Table{Schema: schema, Name: name}
	for _, line := range strings.Split(input, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		c := Column{Name: fields[0]}
		var kind spatialtypes.Kind
		switch fields[1] {
		case "geometry":
			kind = spatialtypes.KindGeometry
		case "geography":
			kind = spatialtypes.KindGeography
		case "raster":
			kind = spatialtypes.KindRaster
		default:
			for _, f := range fields[1:] {
				if f == "pk" {
					c.PrimaryKey = true
					continue
				}
				c.SQLType = strings.TrimSpace(c.SQLType + " " + f)
			}
			t.Columns = append(t.Columns, c)
			continue
		}
		opts, err := parseOptions(fields[2:])
		if err != nil {
			return Table{}, err
		}
		if c.Spatial, err = spatialtypes.MakeGISType(kind, opts...); err != nil {
			return Table{}, err
		}
		t.Columns = append(t.Columns, c)
	}
	return t, nil
}

func parseOptions(fields []string) ([]spatialtypes.Option, error) {
	var opts []spatialtypes.Option
	for _, f := range fields {
		k, v, ok := strings.Cut(f, "=")
		if !ok {
			return nil, errors.Newf("malformed option %q", f)
		}
		switch k {
		case "shape":
			opts = append(opts, spatialtypes.WithShapeType(v))
			continue
		case "srid":
			opts = append(opts, spatialtypes.WithSRID(v))
			continue
		case "dim":
			dim, err := strconv.Atoi(v)
			if err != nil {
				return nil, err
			}
			opts = append(opts, spatialtypes.WithDimension(dim))
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, err
		}
		switch k {
		case "index":
			opts = append(opts, spatialtypes.WithSpatialIndex(b))
		case "nd":
			opts = append(opts, spatialtypes.WithNDIndex(b))
		case "management":
			opts = append(opts, spatialtypes.WithManagement(b))
		case "typmod":
			opts = append(opts, spatialtypes.WithTypmod(b))
		case "nullable":
			opts = append(opts, spatialtypes.WithNullable(b))
		default:
			return nil, errors.Newf("unknown option %q", k)
		}
	}
	return opts, nil
}

func TestValidate(t *testing.T) {
	geom := spatialtypes.MustGeometry()
	for _, tc := range []struct {
		table Table
		err   string
	}{
		{Table{}, "a table name is required"},
		{Table{Name: "t", Columns: []Column{{Name: "c"}}}, "needs exactly one of"},
		{Table{Name: "t", Columns: []Column{{Name: "c", SQLType: "INT", Spatial: geom}}}, "needs exactly one of"},
	} {
		_, err := CreateTable(dialects.Select(dialects.PostgreSQL), tc.table)
		require.ErrorIs(t, err, spatialtypes.ErrBadArgument)
		require.Contains(t, err.Error(), tc.err)
	}
}

func TestTableColumns(t *testing.T) {
	geom := spatialtypes.MustGeometry()
	table := Table{Name: "t", Columns: []Column{
		{Name: "id", SQLType: "INTEGER", PrimaryKey: true},
		{Name: "geom", Spatial: geom},
	}}
	require.Equal(t, []Column{{Name: "geom", Spatial: geom}}, table.SpatialColumns())
	c, ok := table.Column("id")
	require.True(t, ok)
	require.True(t, c.PrimaryKey)
	_, ok = table.Column("missing")
	require.False(t, ok)
	require.Equal(t, "idx_t_geom", SpatialIndexName("t", "geom"))
}

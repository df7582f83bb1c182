// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package main

import (
	"context"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geobind/pkg/sql/sem/builtins"
	"github.com/cockroachdb/geobind/pkg/sql/sem/tree"
	"github.com/cockroachdb/geobind/pkg/sql/sem/types"
	"github.com/cockroachdb/geobind/pkg/util/log"
	"github.com/jackc/pgx/v5"
)

// catalogQuery lists the spatial functions of the public schema with
// their result type, identity arguments and description.
const catalogQuery = `
SELECT
	p.proname,
	pg_catalog.pg_get_function_result(p.oid),
	pg_catalog.pg_get_function_identity_arguments(p.oid),
	d.description
FROM
	pg_catalog.pg_proc p
	LEFT JOIN pg_catalog.pg_namespace n ON n.oid = p.pronamespace
	LEFT JOIN pg_catalog.pg_description d ON p.oid = d.objoid
WHERE
	p.proname LIKE 'st_%'
	AND n.nspname = 'public'
ORDER BY
	p.proname, p.oid
`

// funcRow is a row of catalogQuery.
type funcRow struct {
	Name        string
	Result      string
	Args        string
	Description *string
}

func readCatalog(ctx context.Context, dsn string) ([]funcRow, error) {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "connecting to the catalog database")
	}
	defer func() { _ = conn.Close(ctx) }()
	rows, err := conn.Query(ctx, catalogQuery)
	if err != nil {
		return nil, errors.Wrap(err, "querying pg_proc")
	}
	res, err := pgx.CollectRows(rows, pgx.RowToStructByPos[funcRow])
	return res, errors.Wrap(err, "reading pg_proc")
}

// manual spells function names the way the PostGIS manual does.
type manual struct {
	text  string
	cases map[string]string
}

func newManual(text string) *manual {
	return &manual{text: text, cases: map[string]string{}}
}

func readManual(path string) (*manual, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading the manual")
	}
	return newManual(string(b)), nil
}

// originalCase returns the first spelling of name found in the manual,
// ignoring case.
func (m *manual) originalCase(name string) (string, bool) {
	if c, ok := m.cases[name]; ok {
		return c, c != ""
	}
	loc := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(name)).FindStringIndex(m.text)
	if loc == nil {
		m.cases[name] = ""
		return "", false
	}
	c := m.text[loc[0]:loc[1]]
	m.cases[name] = c
	return c, true
}

// function is a function of the generated catalog.
type function struct {
	Name      string
	Overloads []tree.Overload
}

// buildCatalog groups the rows by function. A later row with the same
// argument types replaces an earlier one. The functions are sorted by
// name.
func buildCatalog(ctx context.Context, rows []funcRow, m *manual) []function {
	byName := map[string]*function{}
	index := map[string]map[string]int{}
	for _, r := range rows {
		name, ok := m.originalCase(r.Name)
		if !ok {
			log.Infof(ctx, "skipping %s: not found in the manual", r.Name)
			continue
		}
		f, ok := byName[name]
		if !ok {
			f = &function{Name: name}
			byName[name] = f
			index[name] = map[string]int{}
		}
		o := tree.Overload{
			Types:      parseArgTypes(r.Args),
			ReturnType: parseReturnType(r.Result),
		}
		if r.Description != nil {
			o.Info = strings.ReplaceAll(*r.Description, `"`, `'`)
		}
		o.DocURL = builtins.DocURL(name, o.ReturnType)
		key := typesKey(o.Types)
		if i, ok := index[name][key]; ok {
			f.Overloads[i] = o
			continue
		}
		index[name][key] = len(f.Overloads)
		f.Overloads = append(f.Overloads, o)
	}
	funcs := make([]function, 0, len(byName))
	for _, f := range byName {
		funcs = append(funcs, *f)
	}
	sort.Slice(funcs, func(i, j int) bool { return funcs[i].Name < funcs[j].Name })
	return funcs
}

// parseArgTypes parses an identity argument list such as
// "geom geometry, tolerance double precision". Argument names and OUT
// markers are dropped.
func parseArgTypes(args string) []types.T {
	args = strings.ReplaceAll(args, "OUT ", "")
	if strings.TrimSpace(args) == "" {
		return []types.T{}
	}
	descs := strings.Split(args, ", ")
	res := make([]types.T, len(descs))
	for i, desc := range descs {
		if j := strings.IndexByte(desc, ' '); j >= 0 && desc != "double precision" {
			desc = desc[j+1:]
		}
		res[i] = types.FromPGName(desc)
	}
	return res
}

// parseReturnType parses a result type such as "SETOF geometry".
func parseReturnType(result string) types.T {
	return types.FromPGName(result)
}

func typesKey(typs []types.T) string {
	parts := make([]string, len(typs))
	for i, t := range typs {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}

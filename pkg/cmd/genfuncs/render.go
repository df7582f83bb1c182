// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package main

import (
	"bytes"
	"go/format"
	"strconv"
	"strings"
	"text/template"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geobind/pkg/sql/sem/types"
)

const catalogTmpl = `// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Code generated by genfuncs. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/cockroachdb/geobind/pkg/sql/sem/tree"
	"github.com/cockroachdb/geobind/pkg/sql/sem/types"
)

var generatedBuiltins = map[string][]tree.Overload{
{{- range .Functions}}
	{{quote .Name}}: {
	{{- range .Overloads}}
		{
			Types: []types.T{ {{- typeList .Types -}} },
			ReturnType: {{typeExpr .ReturnType}},
			Info: {{quote .Info}},
			DocURL: {{quote .DocURL}},
		},
	{{- end}}
	},
{{- end}}
}
`

var tmpl = template.Must(template.New("catalog").Funcs(template.FuncMap{
	"quote":    strconv.Quote,
	"typeExpr": typeExpr,
	"typeList": typeList,
}).Parse(catalogTmpl))

// render returns the formatted Go source of the catalog.
func render(pkg string, funcs []function) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct {
		Package   string
		Functions []function
	}{pkg, funcs}); err != nil {
		return nil, errors.Wrap(err, "rendering the catalog")
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrapf(err, "formatting the catalog:\n%s", buf.String())
	}
	return src, nil
}

// goNames are the Go expressions of the named types.
var goNames = map[types.T]string{
	types.Any:          "types.Any",
	types.Geometry:     "types.Geometry",
	types.Geography:    "types.Geography",
	types.Raster:       "types.Raster",
	types.Int:          "types.Int",
	types.Float:        "types.Float",
	types.String:       "types.String",
	types.Bool:         "types.Bool",
	types.Bytes:        "types.Bytes",
	types.Void:         "types.Void",
	types.GeometryDump: "types.GeometryDump",
	types.GeomVal:      "types.GeomVal",
	types.SummaryStats: "types.SummaryStats",
}

// typeExpr returns the Go expression evaluating to t.
func typeExpr(t types.T) (string, error) {
	if a, ok := t.(types.TArray); ok {
		elem, err := typeExpr(a.Typ)
		if err != nil {
			return "", err
		}
		return "types.MakeArray(" + elem + ")", nil
	}
	if s, ok := goNames[t]; ok {
		return s, nil
	}
	return "", errors.AssertionFailedf("no Go expression for type %s", t)
}

func typeList(typs []types.T) (string, error) {
	exprs := make([]string, len(typs))
	for i, t := range typs {
		var err error
		if exprs[i], err = typeExpr(t); err != nil {
			return "", err
		}
	}
	return strings.Join(exprs, ", "), nil
}

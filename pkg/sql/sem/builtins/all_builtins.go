// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package builtins holds the catalog of spatial functions: for every
// function, its overloads with their parameter types, return type,
// description and documentation link.
package builtins

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geobind/pkg/sql/sem/tree"
	"github.com/cockroachdb/geobind/pkg/sql/sem/types"
)

// Categories of spatial functions.
const (
	CategoryGeometry  = "Geometry"
	CategoryGeography = "Geography"
	CategoryRaster    = "Raster"
	CategoryOther     = "Other"
)

// DocURLPrefix is the prefix of every documentation link.
const DocURLPrefix = "https://postgis.net/docs/"

// builtinDefinition is the registration record of a function.
type builtinDefinition struct {
	category  string
	overloads []tree.Overload
}

// builtins holds the registered functions, keyed by canonical name.
var builtins = map[string]builtinDefinition{}

// AllBuiltinNames is an array containing all the built-in function
// names, sorted in alphabetical order. This can be used for a
// deterministic walk through the Builtins map.
var AllBuiltinNames []string

func init() {
	for name, overloads := range generatedBuiltins {
		registerBuiltin(name, overloads)
	}

	AllBuiltinNames = make([]string, 0, len(builtins))
	tree.FunDefs = make(map[string]*tree.FunctionDefinition, len(builtins))
	for name, def := range builtins {
		tree.FunDefs[strings.ToLower(name)] = tree.NewFunctionDefinition(name, def.overloads)
		AllBuiltinNames = append(AllBuiltinNames, name)
	}

	// Generate missing categories.
	for _, name := range AllBuiltinNames {
		def := builtins[name]
		if def.category == "" {
			def.category = getCategory(def.overloads)
			builtins[name] = def
		}
	}

	sort.Strings(AllBuiltinNames)
}

// registerBuiltin adds a function to the catalog. Names are unique
// regardless of case.
func registerBuiltin(name string, overloads []tree.Overload) {
	for existing := range builtins {
		if strings.EqualFold(existing, name) {
			panic(errors.AssertionFailedf("duplicate builtin: %s", name))
		}
	}
	builtins[name] = builtinDefinition{overloads: overloads}
}

// getCategory attempts to categorize a function by the type of its first
// argument, falling back to its return type.
func getCategory(b []tree.Overload) string {
	for _, ovl := range b {
		if len(ovl.Types) > 0 {
			if c := categorizeType(ovl.Types[0]); c != CategoryOther {
				return c
			}
		}
	}
	for _, ovl := range b {
		if c := categorizeType(types.Instance(ovl.ReturnType)); c != CategoryOther {
			return c
		}
	}
	return CategoryOther
}

func categorizeType(t types.T) string {
	switch t.Family() {
	case types.GeometryFamily:
		return CategoryGeometry
	case types.GeographyFamily:
		return CategoryGeography
	case types.RasterFamily:
		return CategoryRaster
	}
	if t.Identical(types.GeomVal) || t.Identical(types.SummaryStats) {
		return CategoryRaster
	}
	return CategoryOther
}

// Lookup returns the definition of the named function, ignoring case. A
// miss means that no metadata is known about the function: the call is
// still valid and left to the database to resolve.
func Lookup(name string) (*tree.FunctionDefinition, bool) {
	return tree.LookupFunction(name)
}

// ReturnTypeOf returns the declared return type of a call to the named
// function with arguments of the given types.
func ReturnTypeOf(name string, argTypes ...types.T) (types.T, bool) {
	fd, ok := Lookup(name)
	if !ok {
		return nil, false
	}
	return fd.ReturnType(argTypes...)
}

// Category returns the category of the named function.
func Category(name string) (string, bool) {
	fd, ok := Lookup(name)
	if !ok {
		return "", false
	}
	return builtins[fd.Name].category, true
}

// Validate checks the consistency of the catalog: within a function no two
// overloads have the same parameter types, and every overload carries a
// documentation link to the reference page of the function.
func Validate() error {
	var err error
	for _, name := range AllBuiltinNames {
		fd, _ := Lookup(name)
		err = errors.CombineErrors(err, validateDefinition(fd))
	}
	return err
}

func validateDefinition(fd *tree.FunctionDefinition) error {
	var err error
	seen := make(map[string]int, len(fd.Definition))
	for i, o := range fd.Definition {
		key := paramsKey(o.Types)
		if j, ok := seen[key]; ok {
			err = errors.CombineErrors(err, errors.Newf(
				"%s: overloads %d and %d have the same parameter types (%s)", fd.Name, j, i, key,
			))
		}
		seen[key] = i
		if !validDocURL(fd.Name, o.DocURL) {
			err = errors.CombineErrors(err, errors.Newf(
				"%s: overload %d has a malformed documentation link %q", fd.Name, i, o.DocURL,
			))
		}
	}
	return err
}

func paramsKey(typs []types.T) string {
	parts := make([]string, len(typs))
	for i, t := range typs {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}

// validDocURL returns whether url is the reference page of the named
// function. Functions returning rasters are documented under an RT_
// prefix.
func validDocURL(name, url string) bool {
	if !strings.HasPrefix(url, DocURLPrefix) || !strings.HasSuffix(url, ".html") {
		return false
	}
	page := strings.TrimSuffix(strings.TrimPrefix(url, DocURLPrefix), ".html")
	return page == name || page == "RT_"+name
}

// DocURL returns the documentation link of a function whose overload
// returns the given type.
func DocURL(name string, returnType types.T) string {
	if types.Instance(returnType).Family() == types.RasterFamily {
		name = "RT_" + name
	}
	return DocURLPrefix + name + ".html"
}

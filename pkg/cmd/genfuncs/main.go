// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// genfuncs generates the catalog of spatial functions from the pg_proc
// table of a PostGIS database. The names are spelled the way the PostGIS
// manual spells them; functions the manual does not mention are skipped.
package main

import (
	"context"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geobind/pkg/util/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var rootFlags = pflag.NewFlagSet(`genfuncs`, pflag.ExitOnError)
var dsnFlag = rootFlags.String("dsn", "", "connection string of the PostGIS database; "+
	"defaults to $"+dsnEnv+", then to the --config file")
var configFlag = rootFlags.String("config", "", "YAML file holding the connection parameters")
var manualFlag = rootFlags.String("manual", "manual.txt", "text dump of the PostGIS manual")
var outFlag = rootFlags.String("out", "-", "output file, - for stdout")
var packageFlag = rootFlags.String("package", "builtins", "package of the generated file")

var rootCmd = &cobra.Command{
	Use:   "genfuncs",
	Short: "generate the spatial function catalog from a PostGIS database",
	Long: `genfuncs reads the st_* functions of the public schema of a PostGIS
database and renders them as a Go map of overloads.

Examples:

  genfuncs --dsn postgres://postgres@localhost:5432/postgres \
    --manual manual.txt --out pkg/sql/sem/builtins/functions_generated.go
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func init() {
	rootCmd.Flags().AddFlagSet(rootFlags)
}

func run(ctx context.Context) error {
	cfg, err := loadConfig(*configFlag)
	if err != nil {
		return err
	}
	dsn := resolveDSN(*dsnFlag, os.Getenv(dsnEnv), cfg)
	m, err := readManual(*manualFlag)
	if err != nil {
		return err
	}
	rows, err := readCatalog(ctx, dsn)
	if err != nil {
		return err
	}
	log.Infof(ctx, "read %d functions from pg_proc", len(rows))
	funcs := buildCatalog(ctx, rows, m)
	src, err := render(*packageFlag, funcs)
	if err != nil {
		return err
	}
	if *outFlag == "-" {
		_, err = os.Stdout.Write(src)
		return err
	}
	if err := os.WriteFile(*outFlag, src, 0644); err != nil {
		return errors.Wrapf(err, "writing %s", *outFlag)
	}
	log.Infof(ctx, "wrote %d functions to %s", len(funcs), *outFlag)
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}

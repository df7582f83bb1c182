// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package spatialite registers an in-process SQLite driver exposing the
// subset of the SpatiaLite functions geobind emits. Geometries are stored
// as EWKB blobs. The administrative functions only record their calls.
package spatialite

import (
	"database/sql"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geobind/pkg/geo"
	"github.com/cockroachdb/geobind/pkg/geo/geopb"
	"github.com/mattn/go-sqlite3"
	"github.com/twpayne/go-geom"
)

// DriverName is the name the driver is registered under.
const DriverName = "spatialite"

var registerOnce sync.Once

// Register registers the driver. It is safe to call several times.
func Register() {
	registerOnce.Do(func() {
		sql.Register(DriverName, &sqlite3.SQLiteDriver{ConnectHook: registerFuncs})
	})
}

func init() {
	Register()
}

// calls records the administrative function calls, e.g.
// "RecoverGeometryColumn".
var calls struct {
	mu    sync.Mutex
	names []string
}

// CallNames returns the administrative functions called so far, in order.
func CallNames() []string {
	calls.mu.Lock()
	defer calls.mu.Unlock()
	return append([]string(nil), calls.names...)
}

// ResetCalls forgets the recorded calls.
func ResetCalls() {
	calls.mu.Lock()
	defer calls.mu.Unlock()
	calls.names = nil
}

func registerFuncs(conn *sqlite3.SQLiteConn) error {
	for name, impl := range map[string]interface{}{
		"GeomFromEWKT": geomFromEWKT,
		"AsEWKB":       asEWKB,
		"AsEWKT":       asEWKT,
		"ST_X":         stX,
		"ST_Y":         stY,
		"ST_SRID":      stSRID,
	} {
		if err := conn.RegisterFunc(name, impl, true /* pure */); err != nil {
			return errors.Wrapf(err, "registering %s", name)
		}
	}
	for _, name := range []string{
		"RecoverGeometryColumn",
		"CreateSpatialIndex",
		"DisableSpatialIndex",
		"DiscardGeometryColumn",
	} {
		if err := conn.RegisterFunc(name, recordCall(name), false /* pure */); err != nil {
			return errors.Wrapf(err, "registering %s", name)
		}
	}
	return nil
}

func recordCall(name string) func(args ...interface{}) int64 {
	return func(args ...interface{}) int64 {
		calls.mu.Lock()
		defer calls.mu.Unlock()
		calls.names = append(calls.names, name)
		return 1
	}
}

func geomFromEWKT(v interface{}) (interface{}, error) {
	s, ok, err := text(v)
	if !ok || err != nil {
		return nil, err
	}
	t, err := geo.ParseEWKT(geopb.EWKT(s), geopb.DefaultSRID)
	if err != nil {
		return nil, err
	}
	e, err := geo.NewWKBElementFromGeom(t, geopb.DefaultSRID)
	if err != nil {
		return nil, err
	}
	return e.Data(), nil
}

func asEWKB(v interface{}) (interface{}, error) {
	e, err := element(v)
	if e == nil || err != nil {
		return nil, err
	}
	return e.Data(), nil
}

func asEWKT(v interface{}) (interface{}, error) {
	e, err := element(v)
	if e == nil || err != nil {
		return nil, err
	}
	s, err := e.AsEWKT(geo.FullPrecision)
	if err != nil {
		return nil, err
	}
	return string(s), nil
}

func stX(v interface{}) (interface{}, error) {
	p, err := point(v)
	if p == nil || err != nil {
		return nil, err
	}
	return p.X(), nil
}

func stY(v interface{}) (interface{}, error) {
	p, err := point(v)
	if p == nil || err != nil {
		return nil, err
	}
	return p.Y(), nil
}

func stSRID(v interface{}) (interface{}, error) {
	e, err := element(v)
	if e == nil || err != nil {
		return nil, err
	}
	t, err := e.Geom()
	if err != nil {
		return nil, err
	}
	return int64(t.SRID()), nil
}

func text(v interface{}) (string, bool, error) {
	switch s := v.(type) {
	case nil:
		return "", false, nil
	case string:
		return s, true, nil
	case []byte:
		return string(s), true, nil
	}
	return "", false, errors.Newf("expected text, got %T", v)
}

// element decodes a stored geometry. NULL decodes to a nil element.
func element(v interface{}) (*geo.WKBElement, error) {
	switch b := v.(type) {
	case nil:
		return nil, nil
	case []byte:
		return geo.NewWKBElementAutodetect(b, geopb.DefaultSRID)
	}
	return nil, errors.Newf("expected a geometry blob, got %T", v)
}

func point(v interface{}) (*geom.Point, error) {
	e, err := element(v)
	if e == nil || err != nil {
		return nil, err
	}
	t, err := e.Geom()
	if err != nil {
		return nil, err
	}
	p, ok := t.(*geom.Point)
	if !ok {
		return nil, errors.Newf("expected a point, got %T", t)
	}
	return p, nil
}

// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package spatialtypes implements the Geometry, Geography and Raster column
// types. A column type is declarative configuration attached to a table
// column: it renders the type declared in CREATE TABLE and
// rewrites the values bound to and read from the column through the
// database-side conversion functions.
package spatialtypes

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/geobind/pkg/geo/geopb"
	"github.com/cockroachdb/geobind/pkg/sql/sem/types"
	"github.com/cockroachdb/geobind/pkg/sql/sqlerrors"
	"github.com/cockroachdb/geobind/pkg/util/log"
)

// ErrBadArgument is the error kind of every invalid column type
// definition.
var ErrBadArgument = sqlerrors.ErrBadArgument

// Kind is the kind of spatial column.
type Kind int

const (
	// KindGeometry is a planar geometry column.
	KindGeometry Kind = iota
	// KindGeography is a geodetic geography column.
	KindGeography
	// KindRaster is a raster column.
	KindRaster
)

// kindInfo holds the per-kind defaults of a GISType.
type kindInfo struct {
	// name is used for defining the column in CREATE TABLE statements.
	name string
	// fromText is the function turning bound text into a database value.
	fromText string
	// asBinary is the function turning a database value into binary.
	asBinary string
	typ      types.T
}

var kinds = [...]kindInfo{
	KindGeometry:  {name: "geometry", fromText: "ST_GeomFromEWKT", asBinary: "ST_AsEWKB", typ: types.Geometry},
	KindGeography: {name: "geography", fromText: "ST_GeogFromText", asBinary: "ST_AsBinary", typ: types.Geography},
	KindRaster:    {name: "raster", fromText: "raster", asBinary: "ST_AsBinary", typ: types.Raster},
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kinds) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kinds[k].name
}

// GISType is a spatial column type. It is immutable once built.
type GISType struct {
	kind         Kind
	name         string
	fromText     string
	shapeType    geopb.ShapeType
	srid         geopb.SRID
	dimension    int
	spatialIndex bool
	useNDIndex   bool
	management   bool
	// useTypmod is nil when unset.
	useTypmod *bool
	nullable  bool
}

// options accumulates the arguments of a column type constructor.
type options struct {
	shapeType    string
	srid         interface{}
	dimension    int
	spatialIndex bool
	useNDIndex   bool
	management   bool
	useTypmod    *bool
	fromText     string
	name         string
	nullable     bool
}

// Option configures a column type.
type Option func(*options)

// WithShapeType sets the geometry type constraint of the column, e.g.
// "POINT". The empty string removes the constraint. Defaults to
// "GEOMETRY".
func WithShapeType(s string) Option {
	return func(o *options) { o.shapeType = s }
}

// WithSRID sets the SRID of the column. Integers and numeric strings are
// accepted. Defaults to -1.
func WithSRID(srid interface{}) Option {
	return func(o *options) { o.srid = srid }
}

// WithDimension sets the coordinate dimension, which is only used with
// management. Defaults to 2.
func WithDimension(d int) Option {
	return func(o *options) { o.dimension = d }
}

// WithSpatialIndex sets whether a spatial index is created with the
// column. Defaults to true.
func WithSpatialIndex(b bool) Option {
	return func(o *options) { o.spatialIndex = b }
}

// WithNDIndex makes the spatial index use the N-D operator class.
func WithNDIndex(b bool) Option {
	return func(o *options) { o.useNDIndex = b }
}

// WithManagement makes DDL go through AddGeometryColumn and
// DropGeometryColumn. Deprecated: use type modifiers instead.
func WithManagement(b bool) Option {
	return func(o *options) { o.management = b }
}

// WithTypmod sets the use_typmod argument of AddGeometryColumn. Unset by
// default.
func WithTypmod(b bool) Option {
	return func(o *options) { o.useTypmod = &b }
}

// WithFromText overrides the function used to convert bound text values.
func WithFromText(fn string) Option {
	return func(o *options) { o.fromText = fn }
}

// WithName overrides the type name used in CREATE TABLE.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithNullable sets whether the column accepts NULL. Defaults to true.
func WithNullable(b bool) Option {
	return func(o *options) { o.nullable = b }
}

func defaultOptions() options {
	return options{
		shapeType:    string(geopb.ShapeType_Geometry),
		srid:         int(geopb.DefaultSRID),
		dimension:    2,
		spatialIndex: true,
		nullable:     true,
	}
}

// NewGeometry returns a geometry column type.
func NewGeometry(opts ...Option) (*GISType, error) {
	return MakeGISType(KindGeometry, opts...)
}

// NewGeography returns a geography column type.
func NewGeography(opts ...Option) (*GISType, error) {
	return MakeGISType(KindGeography, opts...)
}

// NewRaster returns a raster column type. Rasters carry neither a shape
// type nor a SRID: only the spatial index, from text, name and nullable
// options are taken into account.
func NewRaster(opts ...Option) (*GISType, error) {
	return MakeGISType(KindRaster, opts...)
}

// MustGeometry is like NewGeometry but panics on error.
func MustGeometry(opts ...Option) *GISType {
	t, err := NewGeometry(opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// MakeGISType builds and validates a column type of the given kind.
func MakeGISType(kind Kind, opts ...Option) (*GISType, error) {
	if kind < 0 || int(kind) >= len(kinds) {
		return nil, sqlerrors.NewBadArgumentf("unknown spatial column kind %d", int(kind))
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if kind == KindRaster {
		// Enforce the raster defaults.
		o.shapeType = ""
		o.srid = int(geopb.DefaultSRID)
		o.dimension = 2
		o.useNDIndex = false
		o.management = false
		o.useTypmod = nil
	}

	t := &GISType{
		kind:         kind,
		name:         kinds[kind].name,
		fromText:     kinds[kind].fromText,
		dimension:    o.dimension,
		spatialIndex: o.spatialIndex,
		useNDIndex:   o.useNDIndex,
		management:   o.management,
		useTypmod:    o.useTypmod,
		nullable:     o.nullable,
	}
	if o.name != "" {
		t.name = o.name
	}
	if o.fromText != "" {
		t.fromText = o.fromText
	}
	if kind == KindRaster {
		t.srid = geopb.DefaultSRID
		return t, nil
	}

	var err error
	if t.shapeType, t.srid, err = checkCtorArgs(
		context.Background(), o.shapeType, o.srid, o.dimension, o.management, o.useTypmod, o.nullable,
	); err != nil {
		return nil, err
	}
	if t.management {
		log.Warningf(context.Background(),
			"the management option is deprecated and will be removed; use type modifiers instead")
	}
	return t, nil
}

// checkCtorArgs validates the constructor arguments of a geometry or
// geography column. It returns the normalized shape type and SRID.
func checkCtorArgs(
	ctx context.Context,
	shapeType string,
	rawSRID interface{},
	dimension int,
	management bool,
	useTypmod *bool,
	nullable bool,
) (geopb.ShapeType, geopb.SRID, error) {
	srid, err := toSRID(rawSRID)
	if err != nil {
		return "", 0, err
	}
	st := geopb.ParseShapeType(shapeType)
	if !st.Unset() {
		if management {
			if st.HasZM() {
				// AddGeometryColumn does not work with ZM geometry types.
				return "", 0, sqlerrors.NewBadArgumentf(
					"with management use shape type %q and dimension 4 for %q geometries",
					st.Base(), st,
				)
			} else if st.HasZOrM() && dimension != 3 {
				return "", 0, sqlerrors.NewBadArgumentf(
					"with management dimension must be 3 for %q geometries", st,
				)
			}
		}
	} else {
		if management {
			return "", 0, sqlerrors.NewBadArgumentf("an unset shape type is not compatible with management")
		}
		if srid.Valid() {
			log.Warningf(ctx, "srid %d not enforced when the shape type is unset", srid)
		}
	}

	if useTypmod != nil && *useTypmod && !management {
		log.Warningf(ctx, "use_typmod ignored when management is not set")
	}
	if useTypmod != nil && !nullable {
		return "", 0, sqlerrors.NewBadArgumentf(
			"the nullable and use_typmod options can not be used together",
		)
	}
	return st, srid, nil
}

// toSRID converts an untyped SRID value.
func toSRID(v interface{}) (geopb.SRID, error) {
	var i int64
	switch s := v.(type) {
	case geopb.SRID:
		return s, nil
	case int:
		i = int64(s)
	case int8:
		i = int64(s)
	case int16:
		i = int64(s)
	case int32:
		i = int64(s)
	case int64:
		i = s
	case uint:
		return uintSRID(uint64(s))
	case uint8:
		i = int64(s)
	case uint16:
		i = int64(s)
	case uint32:
		i = int64(s)
	case uint64:
		return uintSRID(s)
	case float32:
		return floatSRID(float64(s))
	case float64:
		return floatSRID(s)
	case string:
		var err error
		if i, err = strconv.ParseInt(strings.TrimSpace(s), 10, 64); err != nil {
			return 0, sqlerrors.WrapBadArgument(err, "srid must be convertible to an integer")
		}
	default:
		return 0, sqlerrors.NewBadArgumentf("srid must be convertible to an integer, got %T", v)
	}
	if i < math.MinInt32 || i > math.MaxInt32 {
		return 0, sqlerrors.NewBadArgumentf("srid %d out of range", i)
	}
	return geopb.SRID(i), nil
}

func uintSRID(u uint64) (geopb.SRID, error) {
	if u > math.MaxInt32 {
		return 0, sqlerrors.NewBadArgumentf("srid %d out of range", u)
	}
	return geopb.SRID(u), nil
}

func floatSRID(f float64) (geopb.SRID, error) {
	if f != math.Trunc(f) {
		return 0, sqlerrors.NewBadArgumentf("srid must be convertible to an integer, got %v", f)
	}
	if f < math.MinInt32 || f > math.MaxInt32 {
		return 0, sqlerrors.NewBadArgumentf("srid %v out of range", f)
	}
	return geopb.SRID(f), nil
}

// Kind returns the kind of the column.
func (t *GISType) Kind() Kind { return t.kind }

// Name returns the type name used in CREATE TABLE.
func (t *GISType) Name() string { return t.name }

// ShapeType returns the shape type constraint. It is unset when the
// column accepts any geometry without constraint.
func (t *GISType) ShapeType() geopb.ShapeType { return t.shapeType }

// SRID returns the SRID of the column.
func (t *GISType) SRID() geopb.SRID { return t.srid }

// Dimension returns the coordinate dimension used with management.
func (t *GISType) Dimension() int { return t.dimension }

// SpatialIndex returns whether a spatial index goes with the column.
func (t *GISType) SpatialIndex() bool { return t.spatialIndex }

// UseNDIndex returns whether the spatial index is N-dimensional.
func (t *GISType) UseNDIndex() bool { return t.useNDIndex }

// Management returns whether DDL uses AddGeometryColumn.
func (t *GISType) Management() bool { return t.management }

// UseTypmod returns the use_typmod option and whether it is set.
func (t *GISType) UseTypmod() (value bool, ok bool) {
	if t.useTypmod == nil {
		return false, false
	}
	return *t.useTypmod, true
}

// Nullable returns whether the column accepts NULL.
func (t *GISType) Nullable() bool { return t.nullable }

// FromText returns the function converting bound text values.
func (t *GISType) FromText() string { return t.fromText }

// AsBinary returns the function selected columns are wrapped in.
func (t *GISType) AsBinary() string { return kinds[t.kind].asBinary }

// Extended returns whether values are read back as EWKB.
func (t *GISType) Extended() bool { return t.AsBinary() == "ST_AsEWKB" }

// SemanticType returns the type of the values of the column.
func (t *GISType) SemanticType() types.T { return kinds[t.kind].typ }

// ColumnSpec returns the column type used in CREATE TABLE, e.g.
// "geometry(POINT,4326)".
func (t *GISType) ColumnSpec() string {
	if t.shapeType.Unset() {
		return t.name
	}
	return fmt.Sprintf("%s(%s,%d)", t.name, t.shapeType, t.srid)
}

// MySQLColumnSpec returns the column type used in MySQL CREATE TABLE
// statements, e.g. "POINT NOT NULL SRID 4326". Spatial indexes require a
// NOT NULL column.
func (t *GISType) MySQLColumnSpec() string {
	var b strings.Builder
	if t.shapeType.Unset() {
		b.WriteString(string(geopb.ShapeType_Geometry))
	} else {
		b.WriteString(string(t.shapeType))
	}
	if !t.nullable || t.spatialIndex {
		b.WriteString(" NOT NULL")
	}
	if t.srid.Valid() {
		fmt.Fprintf(&b, " SRID %d", t.srid)
	}
	return b.String()
}

func (t *GISType) String() string { return t.ColumnSpec() }

// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package types

import "github.com/lib/pq/oid"

// OidToType maps builtin Postgres object IDs to semantic types. We export
// the map instead of a method so that other packages can iterate over the
// map directly. Extension types such as geometry and raster are assigned
// OIDs when the extension is installed; callers fall back to FromPGName
// for those.
var OidToType = map[oid.Oid]T{
	oid.T_anyelement: Any,
	oid.T_record:     Any,
	oid.T_anyarray:   MakeArray(Any),
	oid.T_bool:       Bool,
	oid.T__bool:      MakeArray(Bool),
	oid.T_bytea:      Bytes,
	oid.T__bytea:     MakeArray(Bytes),
	oid.T_jsonb:      Bytes,
	oid.T_json:       String,
	oid.T_float4:     Float,
	oid.T__float4:    MakeArray(Float),
	oid.T_float8:     Float,
	oid.T__float8:    MakeArray(Float),
	oid.T_numeric:    Float,
	oid.T_int2:       Int,
	oid.T__int2:      MakeArray(Int),
	oid.T_int4:       Int,
	oid.T__int4:      MakeArray(Int),
	oid.T_int8:       Int,
	oid.T__int8:      MakeArray(Int),
	oid.T_text:       String,
	oid.T__text:      MakeArray(String),
	oid.T_varchar:    String,
	oid.T__varchar:   MakeArray(String),
	oid.T_cstring:    String,
	oid.T_void:       Void,
}

// TypeForOid returns the semantic type of a builtin OID. Unknown OIDs map
// to Any.
func TypeForOid(o oid.Oid) T {
	if t, ok := OidToType[o]; ok {
		return t
	}
	return Any
}

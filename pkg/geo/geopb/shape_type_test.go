// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geopb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShapeType(t *testing.T) {
	testCases := []struct {
		in        string
		expected  ShapeType
		base      ShapeType
		zm        bool
		zOrM      bool
		dimension int
	}{
		{"point", ShapeType_Point, ShapeType_Point, false, false, 2},
		{" PointZ ", "POINTZ", ShapeType_Point, false, true, 3},
		{"linestringm", "LINESTRINGM", ShapeType_LineString, false, true, 3},
		{"POLYGONZM", "POLYGONZM", ShapeType_Polygon, true, false, 4},
		{"", ShapeType_Unset, ShapeType_Unset, false, false, 2},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			s := ParseShapeType(tc.in)
			require.Equal(t, tc.expected, s)
			require.Equal(t, tc.base, s.Base())
			require.Equal(t, tc.zm, s.HasZM())
			require.Equal(t, tc.zOrM, s.HasZOrM())
			require.Equal(t, tc.dimension, s.Dimension())
		})
	}
}

func TestBoundingBox(t *testing.T) {
	b := NewBoundingBox()
	require.True(t, b.Empty())
	b.Update(1, -2)
	b.Update(-3, 4)
	require.False(t, b.Empty())
	require.Equal(t, BoundingBox{MinX: -3, MaxX: 1, MinY: -2, MaxY: 4}, *b)
}

// SPDX-License-Identifier: MIT
package triangle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/tricount/core"
	"github.com/katalvlaran/tricount/triangle"
)

func ids(xs ...core.VertexID) []core.VertexID { return xs }

func TestCountCommon(t *testing.T) {
	cases := []struct {
		name string
		a, b []core.VertexID
		u, v core.VertexID
		want int64
	}{
		{"both empty", nil, nil, 0, 1, 0},
		{"one empty", ids(1, 2, 3), nil, 0, 9, 0},
		{"disjoint", ids(1, 3, 5), ids(2, 4, 6), 0, 9, 0},
		{"identical", ids(1, 2, 3), ids(1, 2, 3), 7, 8, 3},
		{"interleaved", ids(1, 4, 6, 9, 12), ids(2, 4, 5, 9, 13), 0, 1, 2},
		{"excludes u", ids(2, 5, 7), ids(2, 5, 7), 5, 0, 2},
		{"excludes v", ids(2, 5, 7), ids(2, 5, 7), 0, 7, 2},
		{"excludes both", ids(2, 5, 7), ids(2, 5, 7), 2, 7, 1},
		{"u equals v", ids(1, 2, 3), ids(1, 2, 3), 4, 4, 0},
		{"u equals v in lists", ids(1, 2, 3), ids(1, 2, 3), 2, 2, 0},
		{"long tail", ids(0, 1, 2, 3, 4, 5, 6, 7, 8), ids(8), 0, 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, triangle.CountCommon(tc.a, tc.b, tc.u, tc.v))
			// symmetric in list order and in the excluded pair
			assert.Equal(t, tc.want, triangle.CountCommon(tc.b, tc.a, tc.u, tc.v))
			assert.Equal(t, tc.want, triangle.CountCommon(tc.a, tc.b, tc.v, tc.u))
		})
	}
}

func TestCountCommon_DoesNotMutate(t *testing.T) {
	a, b := ids(1, 2, 3), ids(2, 3, 4)
	triangle.CountCommon(a, b, 0, 9)
	assert.Equal(t, ids(1, 2, 3), a)
	assert.Equal(t, ids(2, 3, 4), b)
}

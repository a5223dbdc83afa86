// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazesolver/core"
)

func TestNewGraph(t *testing.T) {
	cases := []struct {
		name string
		n    int
		err  error
	}{
		{"Empty", 0, nil},
		{"Single", 1, nil},
		{"Many", 225, nil},
		{"Negative", -1, core.ErrInvalidArgument},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := core.NewGraph(tc.n)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				assert.Nil(t, g)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.n, g.VertexCount())
			assert.Equal(t, 0, g.EdgeCount())
		})
	}
}

// TestAddEdge_Symmetry asserts that AddEdge(v,w) is visible from both ends.
func TestAddEdge_Symmetry(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.AddEdge(3, 0))

	n0, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, n0, "insertion order")

	for _, w := range []int{1, 2, 3} {
		nw, err := g.Neighbors(w)
		require.NoError(t, err)
		assert.Contains(t, nw, 0)
		assert.True(t, g.HasEdge(w, 0))
		assert.True(t, g.HasEdge(0, w))
	}
	assert.False(t, g.HasEdge(1, 2))
	assert.Equal(t, 3, g.EdgeCount())
}

func TestAddEdge_SelfAndParallel(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 0))
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 1))

	n0, err := g.Neighbors(0)
	require.NoError(t, err)
	// self-edge lands twice, the parallel edge twice
	assert.Equal(t, []int{0, 0, 1, 1}, n0)

	d, err := g.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 4, d)

	n1, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, n1)
}

func TestOutOfRange(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)

	for _, pair := range [][2]int{{-1, 0}, {0, 3}, {3, 3}, {0, -7}} {
		assert.ErrorIs(t, g.AddEdge(pair[0], pair[1]), core.ErrOutOfRange, "AddEdge(%d,%d)", pair[0], pair[1])
	}
	assert.Equal(t, 0, g.EdgeCount(), "rejected edges leave no trace")

	for _, v := range []int{-1, 3, 100} {
		_, err := g.Neighbors(v)
		assert.ErrorIs(t, err, core.ErrOutOfRange, "Neighbors(%d)", v)
		_, err = g.Degree(v)
		assert.ErrorIs(t, err, core.ErrOutOfRange, "Degree(%d)", v)
		assert.False(t, g.HasVertex(v))
	}
	assert.False(t, g.HasEdge(0, 3))
}

// TestNeighbors_ReturnsCopy guards the read-only contract of Neighbors.
func TestNeighbors_ReturnsCopy(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))

	nbrs, err := g.Neighbors(0)
	require.NoError(t, err)
	nbrs[0] = 42

	again, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, again)
}

func TestAdjacencyList(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))

	adj := g.AdjacencyList()
	assert.Equal(t, [][]int{{1}, {0, 2}, {1}}, adj)

	adj[1][0] = 9
	nbrs, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, nbrs)
}

package bfs_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazesolver/bfs"
	"github.com/katalvlaran/mazesolver/core"
	"github.com/katalvlaran/mazesolver/internal/graphtest"
)

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g, err := core.NewGraph(3)
	require.NoError(t, err)

	for _, pair := range [][2]int{{-1, 0}, {0, 3}, {5, 1}} {
		res, err := bfs.BFS(g, pair[0], pair[1])
		assert.ErrorIs(t, err, core.ErrOutOfRange, "BFS(%d,%d)", pair[0], pair[1])
		assert.False(t, res.Found())
	}

	_, err = bfs.BFS(g, 0, 1, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_SameVertex keeps the single-element path for source == destination,
// even on a vertex with no edges at all.
func TestBFS_SameVertex(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)

	res, err := bfs.BFS(g, 1, 1)
	require.NoError(t, err)
	assert.True(t, res.Found())
	assert.Equal(t, []int{1}, res.Path())
	assert.Equal(t, 0, res.Hops())
}

func TestBFS_Grid3x3(t *testing.T) {
	g, err := graphtest.Grid(3, 3)
	require.NoError(t, err)

	res, err := bfs.BFS(g, 0, 8)
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.Len(t, res.Path(), 5)
	assert.NoError(t, graphtest.CheckPath(g, res.Path(), 0, 8))
	// right edges are inserted first, so the top row is explored first
	assert.Equal(t, []int{0, 1, 2, 5, 8}, res.Path())
}

func TestBFS_Disconnected(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1)) // component 1
	require.NoError(t, g.AddEdge(2, 3)) // component 2

	res, err := bfs.BFS(g, 0, 3)
	require.NoError(t, err)
	assert.False(t, res.Found())
	assert.Nil(t, res.Path())
	assert.ErrorIs(t, res.Err(), core.ErrNoPath)
}

// TestBFS_SelfLoopAndParallel ensures that loops and parallel edges neither
// enqueue twice nor leak into the path.
func TestBFS_SelfLoopAndParallel(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 0))
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))

	var enq []int
	res, err := bfs.BFS(g, 0, 2, bfs.WithOnEnqueue(func(v, _ int) { enq = append(enq, v) }))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Path())
	assert.Equal(t, []int{0, 1, 2}, enq)
}

// TestBFS_EarlyExit checks that the search stops as soon as the destination
// is discovered: vertices enqueued after it are never visited.
func TestBFS_EarlyExit(t *testing.T) {
	// star: 0 connects to 1..5, destination is 1
	g, err := core.NewGraph(6)
	require.NoError(t, err)
	for i := 1; i < 6; i++ {
		require.NoError(t, g.AddEdge(0, i))
	}

	var enq, vis []int
	res, err := bfs.BFS(g, 0, 1,
		bfs.WithOnEnqueue(func(v, _ int) { enq = append(enq, v) }),
		bfs.WithOnVisit(func(v, _ int) error { vis = append(vis, v); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Path())
	assert.Equal(t, []int{0, 1}, enq)
	assert.Equal(t, []int{0}, vis)
}

func TestBFS_MaxDepth(t *testing.T) {
	g, err := graphtest.Chain(5)
	require.NoError(t, err)

	res, err := bfs.BFS(g, 0, 4, bfs.WithMaxDepth(3))
	require.NoError(t, err)
	assert.False(t, res.Found(), "destination lies 4 edges away")

	res, err = bfs.BFS(g, 0, 4, bfs.WithMaxDepth(4))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, res.Path())

	res, err = bfs.BFS(g, 0, 4, bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.True(t, res.Found(), "0 means no limit")
}

func TestBFS_OnVisitError(t *testing.T) {
	g, err := graphtest.Chain(4)
	require.NoError(t, err)
	boom := errors.New("boom")

	_, err = bfs.BFS(g, 0, 3, bfs.WithOnVisit(func(v, _ int) error {
		if v == 1 {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	g, err := graphtest.Chain(100)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, 0, 99, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestBFS_RandomMatchesBruteForce compares BFS against exhaustive search on
// small random graphs: valid path, minimal length, NotFound iff unreachable.
func TestBFS_RandomMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.Intn(8)
		g, err := graphtest.Random(rng, n, rng.Intn(2*n+1))
		require.NoError(t, err)
		s, d := rng.Intn(n), rng.Intn(n)

		res, err := bfs.BFS(g, s, d)
		require.NoError(t, err)

		want := graphtest.BruteForceHops(g, s, d)
		if want < 0 {
			assert.False(t, res.Found(), "trial %d: %d→%d should be unreachable", trial, s, d)
			continue
		}
		require.True(t, res.Found(), "trial %d: %d→%d should be reachable", trial, s, d)
		require.NoError(t, graphtest.CheckPath(g, res.Path(), s, d), "trial %d", trial)
		assert.Equal(t, want, res.Hops(), "trial %d: %d→%d", trial, s, d)
	}
}

// TestBFS_ConcurrentSafety ensures concurrent searches on one graph do not interfere.
func TestBFS_ConcurrentSafety(t *testing.T) {
	g, err := graphtest.Grid(10, 10)
	require.NoError(t, err)

	type outcome struct {
		res core.Result
		err error
	}
	out := make(chan outcome, 8)
	for i := 0; i < 8; i++ {
		go func() {
			res, err := bfs.BFS(g, 0, 99)
			out <- outcome{res, err}
		}()
	}
	for i := 0; i < 8; i++ {
		o := <-out
		require.NoError(t, o.err)
		assert.Equal(t, 18, o.res.Hops())
	}
}

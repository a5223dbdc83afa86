// Package graphtest holds graph fixtures and path checks shared by the
// search packages' tests.
package graphtest

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mazesolver/core"
)

// Grid builds a rows×cols lattice with row-major ids. For every cell the
// right edge is inserted before the down edge.
func Grid(rows, cols int) (*core.Graph, error) {
	g, err := core.NewGraph(rows * cols)
	if err != nil {
		return nil, err
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := r*cols + c
			if c+1 < cols {
				if err = g.AddEdge(id, id+1); err != nil {
					return nil, err
				}
			}
			if r+1 < rows {
				if err = g.AddEdge(id, id+cols); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// Chain builds the path graph 0–1–…–(n-1).
func Chain(n int) (*core.Graph, error) {
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i+1 < n; i++ {
		if err = g.AddEdge(i, i+1); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Random builds a graph with n vertices and m uniformly drawn edges.
// Self-edges and parallel edges may occur.
func Random(rng *rand.Rand, n, m int) (*core.Graph, error) {
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, err
	}
	for k := 0; k < m; k++ {
		if err = g.AddEdge(rng.Intn(n), rng.Intn(n)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// CheckPath verifies that path starts at source, ends at destination,
// repeats no vertex, and follows edges of g.
func CheckPath(g *core.Graph, path []int, source, destination int) error {
	if len(path) == 0 {
		return fmt.Errorf("empty path")
	}
	if path[0] != source {
		return fmt.Errorf("path starts at %d, want %d", path[0], source)
	}
	if last := path[len(path)-1]; last != destination {
		return fmt.Errorf("path ends at %d, want %d", last, destination)
	}
	seen := make(map[int]bool, len(path))
	for i, v := range path {
		if seen[v] {
			return fmt.Errorf("vertex %d repeats at position %d", v, i)
		}
		seen[v] = true
		if i > 0 && !g.HasEdge(path[i-1], v) {
			return fmt.Errorf("no edge %d–%d at position %d", path[i-1], v, i)
		}
	}

	return nil
}

// BruteForceHops returns the fewest edges over all simple paths from source
// to destination, or -1 if none exists. Exponential: small graphs only.
func BruteForceHops(g *core.Graph, source, destination int) int {
	if source == destination {
		return 0
	}
	adj := g.AdjacencyList()
	onPath := make([]bool, len(adj))
	best := -1

	var walk func(v, hops int)
	walk = func(v, hops int) {
		if v == destination {
			if best < 0 || hops < best {
				best = hops
			}
			return
		}
		onPath[v] = true
		for _, w := range adj[v] {
			if !onPath[w] {
				walk(w, hops+1)
			}
		}
		onPath[v] = false
	}
	walk(source, 0)

	return best
}

// Package dfs implements cycle detection for undirected core.Graphs.
// HasCycle uses depth-first search with three-color marking and reports
// whether any back-edge exists. Self-edges and parallel edges count as cycles.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)     (color slice + frame stack)
package dfs

import (
	"fmt"

	"github.com/katalvlaran/mazesolver/core"
)

// cycleFrame extends frame with the DFS-tree parent of vertex, so the tree
// edge back to it is skipped exactly once.
type cycleFrame struct {
	frame
	parent        int
	skippedParent bool
}

// HasCycle reports whether g contains a cycle. A maze whose graph is
// connected and acyclic is "perfect": exactly one simple path joins any two
// cells, so BFS and DFS necessarily agree on it.
// If a neighbor-fetch error occurs, returns (false, error).
func HasCycle(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}

	n := g.VertexCount()
	state := make([]int, n)
	for root := 0; root < n; root++ {
		if state[root] != White {
			continue
		}
		found, err := cycleFrom(g, root, state)
		if err != nil {
			return false, fmt.Errorf("dfs: HasCycle: %w", err)
		}
		if found {
			return true, nil
		}
	}

	return false, nil
}

// cycleFrom explores the component of root and reports whether a Gray→Gray
// back-edge was met.
func cycleFrom(g *core.Graph, root int, state []int) (bool, error) {
	push := func(stack []cycleFrame, v, parent int) ([]cycleFrame, error) {
		nbs, err := g.Neighbors(v)
		if err != nil {
			return stack, fmt.Errorf("Neighbors(%d): %w", v, err)
		}
		state[v] = Gray

		return append(stack, cycleFrame{frame: frame{vertex: v, neighbors: nbs}, parent: parent}), nil
	}

	stack, err := push(nil, root, -1)
	if err != nil {
		return false, err
	}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.neighbors) {
			state[top.vertex] = Black
			stack = stack[:len(stack)-1]
			continue
		}
		nbr := top.neighbors[top.next]
		top.next++

		// the tree edge to the parent appears once per insertion; skip one copy
		if nbr == top.parent && !top.skippedParent {
			top.skippedParent = true
			continue
		}
		switch state[nbr] {
		case White:
			if stack, err = push(stack, nbr, top.vertex); err != nil {
				return false, err
			}
		case Gray:
			return true, nil
		}
	}

	return false, nil
}

// Package dfs implements depth-first path search on core.Graph.
//
// Key features:
//   - DFS(g, source, destination, opts...): first path found in depth-first order
//   - Explicit frame stack: depth is bounded by heap, not by the goroutine stack
//   - Hooks: OnVisit & OnBacktrack, with error aborts from OnVisit
//   - Limits: MaxDepth
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V + E) without MaxDepth, each vertex is entered at most once.
//     With MaxDepth a vertex is re-entered whenever a shallower route reaches it.
//   - Memory: O(V) for the visited slice and the frame stack.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/mazesolver/core"
)

// frame is one entry of the explicit DFS stack: a vertex on the tentative
// path and the index of the next neighbor to try from it.
type frame struct {
	vertex    int
	neighbors []int
	next      int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph       *core.Graph
	opts        DFSOptions
	visited     []bool
	depthAt     []int // shallowest entry depth per vertex; only with MaxDepth
	stack       []frame
	destination int
}

// DFS searches g for a path from source to destination in depth-first order.
//
// Neighbors are tried in adjacency insertion order and the first path that
// reaches the destination wins, so the result is a simple path but not
// necessarily a shortest one. Returns core.Found([source]) when
// source == destination and core.NotFound() once every reachable vertex has
// been exhausted. Errors: ErrGraphNil, core.ErrOutOfRange, context errors,
// or any OnVisit error.
func DFS(g *core.Graph, source, destination int, opts ...Option) (core.Result, error) {
	// 1. Validate input graph
	if g == nil {
		return core.NotFound(), ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, opt := range opts {
		opt(&dopts)
	}

	// 3. Verify endpoints
	if !g.HasVertex(source) {
		return core.NotFound(), fmt.Errorf("dfs: source: %w: %d", core.ErrOutOfRange, source)
	}
	if !g.HasVertex(destination) {
		return core.NotFound(), fmt.Errorf("dfs: destination: %w: %d", core.ErrOutOfRange, destination)
	}

	walker := &dfsWalker{
		graph:       g,
		opts:        dopts,
		visited:     make([]bool, g.VertexCount()),
		destination: destination,
	}
	if dopts.MaxDepth >= 0 {
		walker.depthAt = make([]int, g.VertexCount())
		for i := range walker.depthAt {
			walker.depthAt[i] = -1
		}
	}

	return walker.run(source)
}

// run drives the frame stack. The top frame advances one neighbor per step;
// an exhausted frame is popped (backtrack). The stack always holds exactly
// the tentative path, so success reads the path straight off it.
func (w *dfsWalker) run(source int) (core.Result, error) {
	found, err := w.enter(source)
	if err != nil {
		return core.NotFound(), err
	}
	if found {
		return core.Found(w.path()), nil
	}

	for len(w.stack) > 0 {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return core.NotFound(), w.opts.Ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]

		// 2. Dead end: drop the vertex from the tail of the path
		if top.next == len(top.neighbors) {
			v := top.vertex
			w.stack = w.stack[:len(w.stack)-1]
			if w.opts.OnBacktrack != nil {
				w.opts.OnBacktrack(v)
			}
			continue
		}

		nbr := top.neighbors[top.next]
		top.next++

		// 3. Already on the path or fully explored: this branch fails
		if w.blocked(nbr) {
			continue
		}

		if found, err = w.enter(nbr); err != nil {
			return core.NotFound(), err
		}
		if found {
			return core.Found(w.path()), nil
		}
	}

	return core.NotFound(), nil
}

// blocked reports whether v may not be entered from the top frame.
//
// Without a depth limit a visited vertex is final. With one, the new vertex
// would sit len(stack) edges from the source: it is rejected beyond MaxDepth,
// and otherwise only accepted when strictly shallower than any earlier entry.
// Vertices on the stack always have a shallower entry, so paths stay simple.
func (w *dfsWalker) blocked(v int) bool {
	if w.depthAt == nil {
		return w.visited[v]
	}
	depth := len(w.stack)
	if depth > w.opts.MaxDepth {
		return true
	}

	return w.depthAt[v] >= 0 && w.depthAt[v] <= depth
}

// enter marks v visited, runs OnVisit, and pushes its frame. It reports
// whether v is the destination, in which case no neighbors are fetched.
func (w *dfsWalker) enter(v int) (bool, error) {
	depth := len(w.stack)
	w.visited[v] = true
	if w.depthAt != nil {
		w.depthAt[v] = depth
	}

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v, depth); err != nil {
			return false, fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}

	if v == w.destination {
		w.stack = append(w.stack, frame{vertex: v})
		return true, nil
	}

	nbs, err := w.graph.Neighbors(v)
	if err != nil {
		return false, fmt.Errorf("dfs: Neighbors(%d): %w", v, err)
	}
	w.stack = append(w.stack, frame{vertex: v, neighbors: nbs})

	return false, nil
}

// path returns the vertices currently on the stack, source first.
func (w *dfsWalker) path() []int {
	out := make([]int, len(w.stack))
	for i := range w.stack {
		out[i] = w.stack[i].vertex
	}

	return out
}

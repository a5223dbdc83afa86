// Package bfs finds a shortest path (by edge count) between two vertices
// of a core.Graph using breadth-first search with predecessor tracking.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/mazesolver/core"
)

// noPredecessor marks the source and every vertex not yet discovered.
const noPredecessor = -1

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph       *core.Graph
	opts        BFSOptions
	queue       []queueItem
	visited     []bool
	prev        []int
	source      int
	destination int
}

// BFS searches g from source to destination, applying any number of
// functional Options.
//
// It returns core.Found(path) with a minimum-edge path, core.Found([source])
// when source == destination, or core.NotFound() once every reachable vertex
// has been visited. Errors are reserved for invalid input or an aborted run:
// ErrGraphNil, core.ErrOutOfRange, ErrOptionViolation, ErrNeighbors,
// context errors, or any OnVisit error.
func BFS(g *core.Graph, source, destination int, opts ...Option) (core.Result, error) {
	if g == nil {
		return core.NotFound(), ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return core.NotFound(), o.err
	}

	if !g.HasVertex(source) {
		return core.NotFound(), fmt.Errorf("bfs: source: %w: %d", core.ErrOutOfRange, source)
	}
	if !g.HasVertex(destination) {
		return core.NotFound(), fmt.Errorf("bfs: destination: %w: %d", core.ErrOutOfRange, destination)
	}

	n := g.VertexCount()
	w := &walker{
		graph:       g,
		opts:        o,
		queue:       make([]queueItem, 0, n),
		visited:     make([]bool, n),
		prev:        make([]int, n),
		source:      source,
		destination: destination,
	}
	for i := range w.prev {
		w.prev[i] = noPredecessor
	}

	w.enqueue(source, 0, noPredecessor)
	if source == destination {
		return core.Found(w.path()), nil
	}

	return w.loop()
}

// enqueue marks v visited, records its predecessor, calls OnEnqueue,
// and appends it to the queue.
func (w *walker) enqueue(v, depth, parent int) {
	w.visited[v] = true
	w.prev[v] = parent
	w.opts.OnEnqueue(v, depth)
	w.queue = append(w.queue, queueItem{v: v, depth: depth})
}

// loop processes the queue until the destination is discovered, the queue
// drains, or the context is cancelled.
func (w *walker) loop() (core.Result, error) {
	ctx := w.opts.Ctx
	for len(w.queue) > 0 {
		select {
		case <-ctx.Done():
			return core.NotFound(), ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return core.NotFound(), fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
		}

		found, err := w.enqueueNeighbors(item)
		if err != nil {
			return core.NotFound(), err
		}
		if found {
			return core.Found(w.path()), nil
		}
	}

	return core.NotFound(), nil
}

// enqueueNeighbors enqueues each undiscovered neighbor of item in adjacency
// order and reports whether the destination was among them. The search stops
// at the destination without draining the queue.
func (w *walker) enqueueNeighbors(item queueItem) (bool, error) {
	neighbors, err := w.graph.Neighbors(item.v)
	if err != nil {
		return false, fmt.Errorf("%w: failed to get neighbors of %d: %v", ErrNeighbors, item.v, err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return false, nil
	}
	for _, nbr := range neighbors {
		if w.visited[nbr] {
			continue
		}
		w.enqueue(nbr, nextDepth, item.v)
		if nbr == w.destination {
			return true, nil
		}
	}

	return false, nil
}

// path walks predecessor links back from the destination until the source,
// then reverses so the result reads source → destination.
func (w *walker) path() []int {
	path := make([]int, 0, 8)
	for v := w.destination; v != w.source; v = w.prev[v] {
		path = append(path, v)
	}
	path = append(path, w.source)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Package bfs provides breadth-first path search over a core.Graph,
// returning a minimum-edge path between two vertices or an explicit not-found.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from the source.
//   - Each vertex is enqueued at most once; a predecessor slice (-1 = none)
//     remembers who discovered it.
//   - The search stops the moment the destination is discovered, without
//     draining the queue, and reconstructs the path by walking predecessors
//     back to the source.
//   - Returns core.Found(path) or core.NotFound(). source == destination
//     yields the single-vertex path [source].
//   - Hooks:
//   - OnEnqueue (when a vertex is discovered)
//   - OnVisit   (when a vertex is dequeued; may abort with an error)
//   - Honors a MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - The first time BFS reaches the destination it does so through a
//     shortest chain of predecessor links, so the path is minimal in edges.
//   - Runs in O(V + E) time.
//
// Determinism
//
//	Neighbors are scanned in adjacency insertion order, so among several
//	shortest paths the one returned is fully reproducible for a given graph.
//
// Complexity
//
//   - Time:   O(V + E)
//   - Memory: O(V)       (queue, visited, predecessor slices)
//
// Usage
//
//	res, err := bfs.BFS(g, 0, 8)
//	if err != nil {
//	    // ErrGraphNil, core.ErrOutOfRange, ErrOptionViolation, ErrNeighbors,
//	    // context errors, or an OnVisit error
//	}
//	if !res.Found() {
//	    // destination unreachable
//	}
//	fmt.Println(res.Path())
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no depth limit.
//   - WithContext(ctx):   set a custom context for cancellation.
//   - WithMaxDepth(d):    do not discover vertices beyond depth d (>0).
//   - WithOnEnqueue(fn):  hook when a vertex is discovered.
//   - WithOnVisit(fn):    hook when a vertex is dequeued; error aborts BFS.
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - core.ErrOutOfRange  if source or destination is not a vertex.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNeighbors        if core.Graph.Neighbors fails for any vertex.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs

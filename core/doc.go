// Package core provides the undirected, positional-vertex Graph that every
// search in this module runs on, together with the Result type searches return.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Vertices are the integers 0..n-1, fixed by NewGraph(n). No payload.
//   - Edges are undirected and stored as per-vertex adjacency lists in
//     insertion order: AddEdge(v,w) appends w to v's list and v to w's.
//   - Parallel edges and self-edges are accepted without validation; a
//     self-edge v–v appends v to its own list twice.
//   - A sync.RWMutex guards the adjacency lists, so AddEdge may run while
//     other goroutines read, and any number of searches may share a built graph.
//
// Lifecycle:
//
//	g, err := core.NewGraph(9)       // build phase
//	err = g.AddEdge(0, 1)
//	nbrs, err := g.Neighbors(0)      // read phase: searches call Neighbors
//
// Result:
//
//	A search answers with core.Found(path) or core.NotFound(). The two are
//	always distinguishable: Found carries at least [source], and the zero
//	Result is NotFound. Result.Err converts NotFound into ErrNoPath for
//	callers that prefer an error flow.
//
// Errors:
//
//   - ErrInvalidArgument  NewGraph with a negative vertex count.
//   - ErrOutOfRange       AddEdge/Neighbors/Degree with a vertex outside [0, n).
//   - ErrNoPath           Result.Err on a NotFound result.
//
// Complexity:
//
//   - NewGraph:  O(V)
//   - AddEdge:   O(1) amortized
//   - Neighbors: O(deg(v)) (returns a copy)
package core

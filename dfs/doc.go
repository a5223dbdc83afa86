// Package dfs implements depth‑first path search and cycle detection on an
// undirected core.Graph.
//
// What:
//
//   - DFS (Depth‑First Search): follows one branch as far as possible before
//     backtracking, and returns the first source→destination path it meets.
//     Supports:
//   - Visit and backtrack hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - HasCycle: reports whether the graph contains any cycle (self-edges and
//     parallel edges included) using vertex coloring (White, Gray, Black).
//
// How:
//
//	The search keeps an explicit stack of frames (vertex, next-neighbor index).
//	Entering a vertex marks it visited and pushes it, which appends it to the
//	tentative path; a frame whose neighbors are exhausted is popped, which
//	removes its vertex from the tail of the path. The stack therefore always
//	equals the tentative path, and the traversal order is exactly that of the
//	classic recursive formulation without its call-stack depth.
//
// Why:
//   - Find *some* route cheaply when optimality does not matter.
//   - Walk graphs with tens of thousands of vertices in a single branch
//     (long maze corridors) without exhausting the goroutine stack.
//
// Result semantics:
//
//   - The path is simple (no repeated vertex) but not necessarily shortest;
//     its shape depends on adjacency insertion order.
//   - source == destination yields core.Found([source]).
//   - Exhaustion yields core.NotFound(), never an empty path.
//
// Complexity:
//
//   - DFS:      Time O(V+E), Memory O(V)
//   - HasCycle: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil          graph pointer is nil
//   - core.ErrOutOfRange   source or destination not a vertex
//   - context.Canceled     DFS canceled via context
//   - hook errors          propagated from OnVisit
package dfs

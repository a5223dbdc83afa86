// Package mazesolver finds paths through rectangular mazes by treating every
// cell as a vertex of an undirected graph and searching it with BFS or DFS.
//
// 🚀 What is mazesolver?
//
//	A small, thread-safe toolkit that brings together:
//		• core:       an integer-vertex undirected Graph and the Found/NotFound Result
//		• bfs:        breadth-first search returning a fewest-edge path
//		• dfs:        iterative depth-first search with backtracking, plus HasCycle
//		• maze:       wall-matrix mazes, YAML loading, bundled samples, ASCII rendering
//		• pathfinder: BFS and DFS behind slog logging and OpenTelemetry spans & metrics
//		• cmd/mazesolver: the command-line front end
//
// ✨ Why these pieces?
//
//   - Searches never fail just because no path exists: they return NotFound.
//   - Errors are reserved for bad input (out-of-range vertices, ragged mazes)
//     and for cancelled contexts.
//   - Hooks (OnVisit, OnEnqueue, OnBacktrack) observe a search without forking it.
//
// Quick ASCII example:
//
//	+--+--+--+
//	|0  1  2 |
//	+  +--+  +
//	|3 |4  5 |
//	+--+--+--+
//
//	becomes the graph 0-3, 2-5, 0-1, 1-2, 4-5; BFS and DFS from 0 to 5 both
//	return [0 1 2 5].
//
//	go install github.com/katalvlaran/mazesolver/cmd/mazesolver@latest
package mazesolver

// Command mazesolver finds paths through wall-matrix mazes with BFS and DFS.
//
// Usage:
//
//	mazesolver sample                      # list the bundled mazes
//	mazesolver sample two-ways             # solve a bundled maze with both searches
//	mazesolver solve --file maze.yaml --algo bfs --source 0 --destination 24
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

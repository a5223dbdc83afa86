package pathfinder

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownAlgorithm is returned for an algorithm name or value other than BFS or DFS.
	ErrUnknownAlgorithm = errors.New("pathfinder: unknown algorithm")
	// ErrGraphNil is returned when a Finder is built without a graph.
	ErrGraphNil = errors.New("pathfinder: graph is nil")
)

// Algorithm selects the search a Finder runs.
type Algorithm int

const (
	// BFS finds a path with the fewest edges.
	BFS Algorithm = iota
	// DFS finds the first path its depth-first order reaches.
	DFS
)

// Algorithms lists every supported search, in display order.
var Algorithms = []Algorithm{BFS, DFS}

func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "BFS"
	case DFS:
		return "DFS"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm accepts "bfs" or "dfs" in any case.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

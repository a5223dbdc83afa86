// SPDX-License-Identifier: MIT
// Package core defines the central Graph type, its sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrInvalidArgument - malformed construction parameters (negative vertex count).
//	ErrOutOfRange      - vertex identifier outside [0, VertexCount()).
//	ErrNoPath          - a search finished without reaching its destination
//	                     (only produced by Result.Err, never by a search itself).
package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidArgument indicates malformed construction parameters.
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrOutOfRange indicates a vertex identifier outside [0, VertexCount()).
	ErrOutOfRange = errors.New("core: vertex out of range")

	// ErrNoPath indicates that a Result holds no path.
	ErrNoPath = errors.New("core: no path found")
)

// Graph is an undirected graph over the positional vertices 0..n-1.
//
// adjacency[v] lists the neighbors of v in insertion order. Duplicates are
// kept and a self-edge v–v appends v to its own list twice.
// mu guards adjacency and edgeCount; numVertices is fixed at construction.
type Graph struct {
	mu sync.RWMutex

	numVertices int
	adjacency   [][]int
	edgeCount   int
}

// NewGraph creates a Graph with numVertices isolated vertices.
// Returns ErrInvalidArgument if numVertices is negative.
// Complexity: O(V).
func NewGraph(numVertices int) (*Graph, error) {
	if numVertices < 0 {
		return nil, fmt.Errorf("%w: vertex count %d is negative", ErrInvalidArgument, numVertices)
	}

	return &Graph{
		numVertices: numVertices,
		adjacency:   make([][]int, numVertices),
	}, nil
}

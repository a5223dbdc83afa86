// SPDX-License-Identifier: MIT
// Package core provides the fundamental in-memory Graph implementation.
//
// It offers thread-safe methods to mutate and query the adjacency lists.
// All mutations acquire a write lock; queries acquire a read lock.
package core

import "fmt"

// AddEdge inserts the undirected edge v–w: w is appended to v's adjacency
// list and v to w's, under one write lock so both halves appear together.
// Returns ErrOutOfRange if v or w is not a vertex of g.
//
// Self-edges (v == w) and parallel edges are accepted as-is.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(v, w int) error {
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if err := g.checkVertex(w); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.adjacency[v] = append(g.adjacency[v], w)
	g.adjacency[w] = append(g.adjacency[w], v)
	g.edgeCount++

	return nil
}

// Neighbors returns the neighbors of v in insertion order.
// The returned slice is a copy and may be retained by the caller.
// Returns ErrOutOfRange if v is not a vertex of g.
//
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) ([]int, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, len(g.adjacency[v]))
	copy(out, g.adjacency[v])

	return out, nil
}

// HasVertex reports whether v lies in [0, VertexCount()). O(1).
func (g *Graph) HasVertex(v int) bool {
	return v >= 0 && v < g.numVertices
}

// HasEdge reports whether w appears in v's adjacency list.
// Out-of-range vertices simply report false.
func (g *Graph) HasEdge(v, w int) bool {
	if !g.HasVertex(v) || !g.HasVertex(w) {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, x := range g.adjacency[v] {
		if x == w {
			return true
		}
	}

	return false
}

// Degree returns the length of v's adjacency list. A self-edge counts twice.
func (g *Graph) Degree(v int) (int, error) {
	if err := g.checkVertex(v); err != nil {
		return 0, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[v]), nil
}

// VertexCount returns the fixed number of vertices. O(1).
func (g *Graph) VertexCount() int {
	return g.numVertices
}

// EdgeCount returns the number of AddEdge calls that succeeded. O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// AdjacencyList returns a snapshot of every adjacency list, indexed by vertex.
// Each inner slice is freshly allocated.
func (g *Graph) AdjacencyList() [][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([][]int, g.numVertices)
	for v, nbrs := range g.adjacency {
		out[v] = append([]int(nil), nbrs...)
	}

	return out
}

// checkVertex wraps ErrOutOfRange with the offending id and the valid range.
func (g *Graph) checkVertex(v int) error {
	if !g.HasVertex(v) {
		return fmt.Errorf("%w: vertex %d not in [0, %d)", ErrOutOfRange, v, g.numVertices)
	}

	return nil
}

// Package dfs defines types and options for depth-first path search,
// including cancellation, visit/backtrack hooks, and depth limiting.
package dfs

import (
	"context"
	"errors"
)

// Vertex colors used by HasCycle.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the current DFS stack.
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or HasCycle.
	ErrGraphNil = errors.New("dfs: graph is nil")
)

// Option configures optional behavior of DFS.
// Use with DFS(g, source, destination, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS.
// Complexity remains O(V+E) when hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is first entered and
	// appended to the tentative path. Returning an error aborts the search.
	OnVisit func(v, depth int) error

	// OnBacktrack, if non-nil, is invoked when a dead-end vertex is removed
	// from the tail of the tentative path.
	OnBacktrack func(v int)

	// MaxDepth, if non-negative, stops the path from growing beyond MaxDepth
	// edges. A depth of 0 only ever reaches the source. Default is -1 (no limit).
	// A vertex cut off on a deep branch is entered again when a shallower route
	// reaches it, so a path within the limit is found whenever one exists.
	MaxDepth int
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No hooks
//   - No depth limit (MaxDepth = -1)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:         context.Background(),
		OnVisit:     nil,
		OnBacktrack: nil,
		MaxDepth:    -1,
	}
}

// WithContext returns an Option that sets the Context for DFS.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as the visit hook.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnBacktrack returns an Option that installs fn as the backtrack hook.
func WithOnBacktrack(fn func(v int)) Option {
	return func(o *DFSOptions) {
		o.OnBacktrack = fn
	}
}

// WithMaxDepth returns an Option that limits the path to limit edges.
// A negative limit disables the bound.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

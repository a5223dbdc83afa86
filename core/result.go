// SPDX-License-Identifier: MIT
package core

import (
	"fmt"
	"strings"
)

// Result is the outcome of a path search: either Found(path) or NotFound().
//
// The two variants never overlap: a Found result always carries at least one
// vertex (the single-vertex path [s] when source == destination), and the
// zero value is NotFound.
type Result struct {
	path  []int
	found bool
}

// Found returns a Result holding a copy of path, ordered source → destination.
func Found(path []int) Result {
	return Result{path: append([]int(nil), path...), found: true}
}

// NotFound returns the Result of a search that exhausted its reachable
// vertices without meeting the destination.
func NotFound() Result {
	return Result{}
}

// Found reports whether r holds a path.
func (r Result) Found() bool {
	return r.found
}

// Path returns a copy of the vertex sequence, or nil for NotFound.
func (r Result) Path() []int {
	if !r.found {
		return nil
	}

	return append([]int(nil), r.path...)
}

// Hops returns the number of edges on the path, or -1 for NotFound.
func (r Result) Hops() int {
	if !r.found {
		return -1
	}

	return len(r.path) - 1
}

// Err returns ErrNoPath for NotFound and nil otherwise.
func (r Result) Err() error {
	if !r.found {
		return ErrNoPath
	}

	return nil
}

// String renders the path as "[0 1 2]" or the literal "no path found".
func (r Result) String() string {
	if !r.found {
		return "no path found"
	}
	parts := make([]string, len(r.path))
	for i, v := range r.path {
		parts[i] = fmt.Sprint(v)
	}

	return "[" + strings.Join(parts, " ") + "]"
}

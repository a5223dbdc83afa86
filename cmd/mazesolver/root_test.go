package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazesolver/maze"
	"github.com/katalvlaran/mazesolver/pathfinder"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func writeMaze(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tiny.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	return path
}

const tinyDoc = `
horizontal:
  - [0, 1, 0]
vertical:
  - [0, 0]
  - [1, 0]
`

func TestSample_List(t *testing.T) {
	out, _, err := execute(t, "sample")
	require.NoError(t, err)
	assert.Equal(t, "large      15x15\nsmall      5x5\ntwo-ways   6x6\n", out)
}

func TestSample_Both(t *testing.T) {
	out, _, err := execute(t, "sample", "two-ways")
	require.NoError(t, err)
	assert.Equal(t, `Maze two-ways: 6x6, 34 passages, loops: true
From (0,0) to (5,5)

BFS path
[0 1 2 3 9 10 11 17 23 29 35] (10 hops)
cells: (0,0) (0,1) (0,2) (0,3) (1,3) (1,4) (1,5) (2,5) (3,5) (4,5) (5,5)

DFS path
[0 1 2 3 9 15 14 20 26 27 28 34 35] (12 hops)
cells: (0,0) (0,1) (0,2) (0,3) (1,3) (2,3) (2,2) (3,2) (4,2) (4,3) (4,4) (5,4) (5,5)
`, out)
}

func TestSample_NoPath(t *testing.T) {
	out, _, err := execute(t, "sample", "two-ways", "--algo", "dfs", "--destination", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "DFS path\nNo path found.\n")
	assert.NotContains(t, out, "BFS path")
}

func TestSample_Unknown(t *testing.T) {
	_, _, err := execute(t, "sample", "nope")
	assert.ErrorIs(t, err, maze.ErrUnknownSample)
}

func TestSolve_File(t *testing.T) {
	path := writeMaze(t, tinyDoc)

	out, _, err := execute(t, "solve", "--file", path, "--algo", "BFS")
	require.NoError(t, err)
	assert.Equal(t, `Maze tiny: 3x2, 5 passages, loops: false
From (0,0) to (1,2)

BFS path
[0 1 2 5] (3 hops)
cells: (0,0) (0,1) (0,2) (1,2)
`, out)
}

func TestSolve_Endpoints(t *testing.T) {
	path := writeMaze(t, tinyDoc)

	out, _, err := execute(t, "solve", "--file", path, "--algo", "bfs", "--source", "3", "--destination", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "From (1,0) to (1,1)")
	assert.Contains(t, out, "[3 0 1 2 5 4] (5 hops)")

	out, _, err = execute(t, "solve", "--file", path, "--source", "2", "--destination", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "BFS path\n[2] (0 hops)\ncells: (0,2)\n")
	assert.Contains(t, out, "DFS path\n[2] (0 hops)\ncells: (0,2)\n")
}

func TestSolve_Errors(t *testing.T) {
	path := writeMaze(t, tinyDoc)

	_, _, err := execute(t, "solve")
	assert.Error(t, err, "--file is required")

	_, _, err = execute(t, "solve", "--file", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = execute(t, "solve", "--file", path, "--algo", "astar")
	assert.ErrorIs(t, err, pathfinder.ErrUnknownAlgorithm)

	_, _, err = execute(t, "solve", "--file", path, "--destination", "6")
	assert.ErrorIs(t, err, maze.ErrEndpointOutOfRange)

	_, _, err = execute(t, "solve", "--file", writeMaze(t, "vertical: [[0], [0, 0]]\n"))
	assert.ErrorIs(t, err, maze.ErrNonRectangular)
}

func TestLogLevel(t *testing.T) {
	_, stderr, err := execute(t, "--log-level", "debug", "sample", "small", "--algo", "bfs")
	require.NoError(t, err)
	assert.Contains(t, stderr, "search finished")

	_, stderr, err = execute(t, "sample", "small")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "search finished")

	_, _, err = execute(t, "--log-level", "loud", "sample")
	assert.Error(t, err)
}

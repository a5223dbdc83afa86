package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazesolver/core"
	"github.com/katalvlaran/mazesolver/dfs"
	"github.com/katalvlaran/mazesolver/maze"
	"github.com/katalvlaran/mazesolver/pathfinder"
)

// searchFlags are the flags shared by solve and sample.
type searchFlags struct {
	algo        string
	source      int
	destination int
}

func (f *searchFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.algo, "algo", "both", "search to run: bfs, dfs or both")
	cmd.Flags().IntVar(&f.source, "source", 0, "source cell index (default: the maze's source)")
	cmd.Flags().IntVar(&f.destination, "destination", 0, "destination cell index (default: the maze's destination)")
}

// apply overrides the maze endpoints with any flags the user set.
func (f *searchFlags) apply(cmd *cobra.Command, m *maze.Maze) error {
	source, destination := m.Source(), m.Destination()
	if cmd.Flags().Changed("source") {
		source = f.source
	}
	if cmd.Flags().Changed("destination") {
		destination = f.destination
	}

	return m.SetEndpoints(source, destination)
}

// algorithms resolves --algo into the searches to run.
func (f *searchFlags) algorithms() ([]pathfinder.Algorithm, error) {
	if strings.EqualFold(f.algo, "both") {
		return pathfinder.Algorithms, nil
	}
	algo, err := pathfinder.ParseAlgorithm(f.algo)
	if err != nil {
		return nil, fmt.Errorf("%w (supported: bfs, dfs, both)", err)
	}

	return []pathfinder.Algorithm{algo}, nil
}

func newSolveCmd(a *app) *cobra.Command {
	var (
		file  string
		flags searchFlags
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a maze read from a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := maze.Load(file)
			if err != nil {
				return err
			}

			return a.solve(cmd, m, &flags)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "path to YAML maze file (required)")
	_ = cmd.MarkFlagRequired("file")
	flags.register(cmd)

	return cmd
}

// solve runs the requested searches over m and renders them to stdout.
func (a *app) solve(cmd *cobra.Command, m *maze.Maze, flags *searchFlags) error {
	algos, err := flags.algorithms()
	if err != nil {
		return err
	}
	if err = flags.apply(cmd, m); err != nil {
		return err
	}

	g, err := m.Graph()
	if err != nil {
		return fmt.Errorf("building graph: %w", err)
	}
	loops, err := dfs.HasCycle(g)
	if err != nil {
		return fmt.Errorf("checking for loops: %w", err)
	}
	f, err := pathfinder.New(g, pathfinder.WithLogger(a.logger))
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	results := make(map[pathfinder.Algorithm]core.Result, len(algos))
	if len(algos) == len(pathfinder.Algorithms) {
		cmp, err := f.Compare(ctx, m.Source(), m.Destination())
		if err != nil {
			return err
		}
		results[pathfinder.BFS], results[pathfinder.DFS] = cmp.BFS, cmp.DFS
	} else {
		res, err := f.Find(ctx, algos[0], m.Source(), m.Destination())
		if err != nil {
			return err
		}
		results[algos[0]] = res
	}

	w := cmd.OutOrStdout()
	writeHeader(w, m, g.EdgeCount(), loops)
	for _, algo := range algos {
		writeResult(w, m, algo, results[algo])
	}

	return nil
}

// writeHeader prints the maze summary line.
func writeHeader(w io.Writer, m *maze.Maze, passages int, loops bool) {
	fmt.Fprintf(w, "Maze %s: %dx%d, %d passages, loops: %t\n", m.Name, m.Width, m.Height, passages, loops)
	fmt.Fprintf(w, "From %v to %v\n", m.Coordinate(m.Source()), m.Coordinate(m.Destination()))
}

// writeResult prints one search result: header, vertex path and cells.
func writeResult(w io.Writer, m *maze.Maze, algo pathfinder.Algorithm, res core.Result) {
	fmt.Fprintf(w, "\n%s path\n", algo)
	if !res.Found() {
		fmt.Fprintln(w, "No path found.")
		return
	}
	fmt.Fprintf(w, "%v (%d hops)\n", res, res.Hops())

	cells := m.Cells(res)
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = c.String()
	}
	fmt.Fprintf(w, "cells: %s\n", strings.Join(parts, " "))
}

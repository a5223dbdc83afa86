package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazesolver/maze"
)

func newSampleCmd(a *app) *cobra.Command {
	var flags searchFlags

	cmd := &cobra.Command{
		Use:   "sample [name]",
		Short: "List the bundled mazes, or solve one by name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return listSamples(cmd)
			}
			m, err := maze.Sample(args[0])
			if err != nil {
				return err
			}

			return a.solve(cmd, m, &flags)
		},
	}
	flags.register(cmd)

	return cmd
}

func listSamples(cmd *cobra.Command) error {
	names, err := maze.SampleNames()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	for _, name := range names {
		m, err := maze.Sample(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%-10s %dx%d\n", name, m.Width, m.Height)
	}

	return nil
}

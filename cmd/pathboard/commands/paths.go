// SPDX-License-Identifier: MIT
//
// File: paths.go
// Role: paths command: build a graph and print shortest paths.

package commands

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathboard/builder"
	"github.com/katalvlaran/pathboard/internal/ctxlog"
	"github.com/katalvlaran/pathboard/internal/script"
	"github.com/katalvlaran/pathboard/session"
)

// errNoGraph is returned when paths has neither a preset nor a script.
var errNoGraph = errors.New("paths: give --preset or --script to describe the graph")

func newPathsCmd(cfgFile *string) *cobra.Command {
	var (
		spec       builder.Spec
		weight     int64
		scriptPath string
		start      int
		asJSON     bool
	)
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Print every shortest path from a start node of a preset or scripted graph",
		Example: `  pathboard paths --preset grid -n 3 -m 4 --start 0
  pathboard paths --preset complete -n 6 --min-weight 1 --max-weight 9 --seed 7
  pathboard paths --script demo.yaml --start 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if spec.Name == "" && scriptPath == "" {
				return errNoGraph
			}
			loader, log, err := loadConfig(cmd, *cfgFile, os.Stderr)
			if err != nil {
				return err
			}
			s := session.New(sessionOptions(loader.Config(), log)...)
			defer s.Close()
			ctx := ctxlog.WithLogger(cmd.Context(), log)

			if scriptPath != "" {
				sc, err := script.Load(scriptPath)
				if err != nil {
					return err
				}
				if _, err := script.NewPlayer(s).Play(ctx, sc); err != nil {
					return err
				}
			}
			if spec.Name != "" {
				if cmd.Flags().Changed("weight") {
					spec.Weight = &weight
				}
				con, opts, err := spec.Resolve()
				if err != nil {
					return err
				}
				if err := s.ApplyPreset(ctx, opts, con); err != nil {
					return err
				}
			}

			res, err := s.Paths(start)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			renderResult(out, res)

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&spec.Name, "preset", "", "preset shape: path, cycle, star, wheel, grid, complete")
	f.IntVarP(&spec.N, "nodes", "n", 5, "node count (grid: rows)")
	f.IntVarP(&spec.M, "cols", "m", 0, "grid columns")
	f.Float64Var(&spec.Spacing, "spacing", 0, "distance between adjacent nodes (default 90)")
	f.Int64Var(&weight, "weight", 1, "constant edge weight")
	f.Int64Var(&spec.MinWeight, "min-weight", 0, "lower bound of random weights")
	f.Int64Var(&spec.MaxWeight, "max-weight", 0, "upper bound of random weights; enables random weights")
	f.Int64Var(&spec.Seed, "seed", 0, "seed for random weights")
	f.StringVar(&scriptPath, "script", "", "replay this script first, then compute on its graph")
	f.IntVarP(&start, "start", "s", 0, "start node id")
	f.BoolVar(&asJSON, "json", false, "print the result as JSON")

	return cmd
}

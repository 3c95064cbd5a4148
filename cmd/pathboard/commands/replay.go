// SPDX-License-Identifier: MIT
//
// File: replay.go
// Role: replay command: play a script and print its report.

package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathboard/internal/ctxlog"
	"github.com/katalvlaran/pathboard/internal/script"
	"github.com/katalvlaran/pathboard/session"
)

func newReplayCmd(cfgFile *string) *cobra.Command {
	var (
		asJSON  bool
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "replay <script.yaml|script.hcl>",
		Short: "Replay a scripted session and print its reports",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader, log, err := loadConfig(cmd, *cfgFile, os.Stderr)
			if err != nil {
				return err
			}
			sc, err := script.Load(args[0])
			if err != nil {
				return err
			}

			s := session.New(sessionOptions(loader.Config(), log)...)
			defer s.Close()

			ctx := ctxlog.WithLogger(cmd.Context(), log)
			rep, playErr := script.NewPlayer(s, script.WithWaitTimeout(timeout)).Play(ctx, sc)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(rep); err != nil {
					return err
				}
			} else {
				renderReplay(out, rep)
			}
			if playErr != nil {
				return fmt.Errorf("replay %s: %w", sc.Name, playErr)
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the replay report as JSON")
	cmd.Flags().DurationVar(&timeout, "wait-timeout", script.DefaultWaitTimeout, "upper bound for each wait step")

	return cmd
}

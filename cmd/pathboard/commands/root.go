// SPDX-License-Identifier: MIT
//
// File: root.go
// Role: root command, persistent flags and config resolution.

// Package commands implements the pathboard CLI.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/pathboard/dijkstra"
	"github.com/katalvlaran/pathboard/internal/config"
	"github.com/katalvlaran/pathboard/internal/ctxlog"
	"github.com/katalvlaran/pathboard/session"
)

// Version is stamped at build time with -ldflags "-X ...commands.Version=...".
var Version = "dev"

// defaultConfigFile is picked up from the working directory when --config is absent.
const defaultConfigFile = "pathboard.yaml"

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "pathboard",
		Short: "Interactive shortest-path canvas",
		Long: `pathboard - draw a weighted graph, then watch Dijkstra's algorithm
settle it one node at a time.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	fs := root.PersistentFlags()
	fs.StringVarP(&cfgFile, "config", "c", "", "path to a YAML config file (default ./"+defaultConfigFile+" when present)")
	config.RegisterFlags(fs)

	root.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		renderHelp(cmd.OutOrStdout(), cmd)
	})

	root.AddCommand(newServeCmd(&cfgFile), newReplayCmd(&cfgFile), newPathsCmd(&cfgFile))

	return root
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), renderError(root.ErrOrStderr(), err))
		os.Exit(1)
	}
}

// resolveConfigFile returns the explicit path, else the default file when it exists.
func resolveConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(config.EnvPrefix + "_CONFIG"); env != "" {
		return env
	}
	if _, err := os.Stat(defaultConfigFile); err == nil {
		return defaultConfigFile
	}

	return ""
}

// loadConfig builds the config loader with flag and environment overrides
// and the logger it describes.
func loadConfig(cmd *cobra.Command, cfgFile string, logOut io.Writer) (*config.Loader, *slog.Logger, error) {
	v, err := config.NewViper(cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	path := resolveConfigFile(cfgFile)
	loader, err := config.NewLoader(path, config.WithOverlay(config.Overlay(v)))
	if err != nil {
		return nil, nil, err
	}
	cfg := loader.Config()
	log := ctxlog.New(cfg.Log.Level, cfg.Log.Format, logOut)
	loader.SetLogger(log)
	log.Debug("config loaded",
		slog.String("path", path),
		slog.Any("overrides", changedFlags(cmd.Flags())))

	return loader, log, nil
}

// sessionOptions maps configuration onto session options.
func sessionOptions(cfg *config.Config, log *slog.Logger) []session.Option {
	opts := []session.Option{
		session.WithStepDelay(cfg.Session.StepDelay()),
		session.WithLogger(log),
		session.WithNodeRadius(cfg.Canvas.NodeRadius),
		session.WithEditLock(cfg.Session.LockEditsDuringRun),
		session.WithDefaultWeight(cfg.Canvas.DefaultWeight),
	}
	if cfg.Session.StopAtUnreachable {
		opts = append(opts, session.WithEngineOptions(dijkstra.WithStopAtUnreachable()))
	}

	return opts
}

// changedFlags lists the names of flags set on the command line.
func changedFlags(fs *pflag.FlagSet) []string {
	var names []string
	fs.Visit(func(f *pflag.Flag) { names = append(names, f.Name) })

	return names
}

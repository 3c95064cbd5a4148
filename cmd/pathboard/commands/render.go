// SPDX-License-Identifier: MIT
//
// File: render.go
// Role: lipgloss rendering of results, replays, help and errors.

package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/pathboard/dijkstra"
	"github.com/katalvlaran/pathboard/internal/script"
)

// styles binds the palette to one output's renderer, so colour is dropped
// when w is not a terminal.
type styles struct {
	title, dim, ok, bad, flag lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)

	return styles{
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF99")),
		dim:   r.NewStyle().Foreground(lipgloss.Color("#888888")),
		ok:    r.NewStyle().Foreground(lipgloss.Color("#5FD7FF")),
		bad:   r.NewStyle().Foreground(lipgloss.Color("#FF5F87")),
		flag:  r.NewStyle().Foreground(lipgloss.Color("#AAAAAA")),
	}
}

// renderResult prints the shortest-path report line by line, colouring
// reachable and unreachable nodes.
func renderResult(w io.Writer, res *dijkstra.Result) {
	st := newStyles(w)
	fmt.Fprintln(w, st.title.Render(fmt.Sprintf("Shortest path results from node %d:", res.Start)))
	fmt.Fprintln(w)
	for _, en := range res.Entries {
		if !en.Reachable {
			fmt.Fprintln(w, st.bad.Render(fmt.Sprintf("node %d: unreachable", en.Node)))
			continue
		}
		fmt.Fprintln(w, st.ok.Render(fmt.Sprintf("node %d: distance=%d, path=%s",
			en.Node, en.Distance, dijkstra.FormatPath(en.Path))))
	}
}

// renderReplay prints one line per step, then every collected result.
func renderReplay(w io.Writer, rep *script.Report) {
	st := newStyles(w)
	fmt.Fprintln(w, st.title.Render("REPLAY "+rep.Script))
	for _, sr := range rep.Steps {
		line := fmt.Sprintf("%3d  %-7s %s", sr.Index, sr.Kind, sr.Detail)
		if sr.Err != "" {
			fmt.Fprintln(w, st.bad.Render(strings.TrimRight(line, " ")+"  ! "+sr.Err))
			continue
		}
		fmt.Fprintln(w, st.dim.Render(strings.TrimRight(line, " ")))
	}
	for _, res := range rep.Results {
		fmt.Fprintln(w)
		renderResult(w, res)
	}
}

// renderHelp prints usage, subcommands and flags.
func renderHelp(w io.Writer, cmd *cobra.Command) {
	st := newStyles(w)
	fmt.Fprintln(w, st.title.Render(fmt.Sprintf("PATHBOARD %s", Version)))
	if cmd.Long != "" {
		fmt.Fprintln(w, cmd.Long)
	} else {
		fmt.Fprintln(w, cmd.Short)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, st.title.Render("USAGE"))
	fmt.Fprintf(w, "  %s\n\n", cmd.UseLine())

	if cmd.HasAvailableSubCommands() {
		fmt.Fprintln(w, st.title.Render("COMMANDS"))
		for _, c := range cmd.Commands() {
			if c.IsAvailableCommand() {
				fmt.Fprintf(w, "  %-12s %s\n", c.Name(), c.Short)
			}
		}
		fmt.Fprintln(w)
	}
	if cmd.Example != "" {
		fmt.Fprintln(w, st.title.Render("EXAMPLES"))
		fmt.Fprintln(w, cmd.Example)
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, st.title.Render("FLAGS"))
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		line := fmt.Sprintf("  --%-20s %s", f.Name, f.Usage)
		if f.DefValue != "" && f.DefValue != "false" && f.DefValue != "0" {
			line += fmt.Sprintf(" (default %s)", f.DefValue)
		}
		fmt.Fprintln(w, st.flag.Render(line))
	})
	fmt.Fprintln(w)
}

// renderError formats a command failure.
func renderError(w io.Writer, err error) string {
	return newStyles(w).bad.Render("error: " + err.Error())
}

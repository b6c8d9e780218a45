package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jackielii/pageroute"
	"github.com/spf13/cobra"
)

func newRoutesCmd(root *rootOptions) *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Print the route table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(root.cfg, newLogger(root.cfg.Log, cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			if plain {
				_, err := io.WriteString(cmd.OutOrStdout(), pageroute.PrintRoutes(a.pages))
				return err
			}
			printRoutes(cmd.OutOrStdout(), a.pages)
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "print a plain table without colors")
	return cmd
}

func printRoutes(w io.Writer, p *pageroute.Pages) {
	var (
		bold   = color.New(color.Bold)
		method = color.New(color.FgGreen)
		kind   = color.New(color.FgYellow)
		warn   = color.New(color.FgRed)
	)
	cfg := p.Config()
	h := p.History()
	bold.Fprintf(w, "%s", cfg.Name)
	fmt.Fprintf(w, "  prefix=%s history=%s base=%s\n", p.Table().Prefix(), h.Mode, h.Base)
	for _, r := range p.Table().Routes() {
		method.Fprintf(w, "  %-4s", "GET")
		fmt.Fprintf(w, " %-32s ", p.MountedPattern(r))
		kind.Fprintf(w, "%-6s", r.Kind)
		fmt.Fprintf(w, " %T\n", r.Component)
	}
	if shell, ok := p.ShellPattern(); ok {
		method.Fprintf(w, "  %-4s", "GET")
		fmt.Fprintf(w, " %-32s ", shell)
		kind.Fprintf(w, "%-6s", "shell")
		fmt.Fprintln(w)
	}
	if cfg.BaseMismatch() {
		warn.Fprintf(w, "warning: index is served at %s\n", h.Href(p.Table().Prefix()))
	}
}

package main

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"
)

func newResolveCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <url>...",
		Short: "Print the component each URL resolves to",
		Example: `  pageroute resolve /web/
  pageroute --variant pages resolve /pages/guides/intro.html`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(root.cfg, newLogger(root.cfg.Log, cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, arg := range args {
				u, err := url.Parse(arg)
				if err != nil {
					return fmt.Errorf("parse %q: %w", arg, err)
				}
				m, ok := a.pages.Resolve(u)
				switch {
				case !ok:
					fmt.Fprintf(w, "%s\tno match\n", arg)
				case len(m.Wildcard) == 0:
					fmt.Fprintf(w, "%s\t%s\n", arg, m.Route.Kind)
				default:
					fmt.Fprintf(w, "%s\t%s\t%s\n", arg, m.Route.Kind, strings.Join(m.Wildcard, "/"))
				}
			}
			return nil
		},
	}
}

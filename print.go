package pageroute

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// PrintRoutes renders the mounted route table, one route per line.
func PrintRoutes(p *Pages) string {
	var sb strings.Builder
	cfg := p.Config()
	fmt.Fprintf(&sb, "%s: prefix %s, %s history at %s\n",
		cfg.Name, p.table.Prefix(), p.history.Mode, p.history.Base)
	tw := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	for _, route := range p.table.Routes() {
		fmt.Fprintf(tw, "  GET %s\t%s\t%s\t%T\n",
			p.MountedPattern(route), route.Name, route.Kind, route.Component)
	}
	if shell, ok := p.ShellPattern(); ok {
		fmt.Fprintf(tw, "  GET %s\tshell\t%s\t%T\n", shell, KindServe, p.serve().Component)
	}
	_ = tw.Flush()
	return sb.String()
}

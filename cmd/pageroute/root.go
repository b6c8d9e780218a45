package main

import (
	"github.com/jackielii/pageroute/internal/config"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	envFiles   []string
	variant    string
	prefix     string
	history    string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "pageroute",
		Short: "Serve an index and catch-all page route table",
		Long: `pageroute mounts a two-entry route table under a path prefix:
the prefix itself renders the index of the content store and every path
below it renders the page at that path.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to the YAML config file")
	flags.StringSliceVar(&opts.envFiles, "env-file", []string{".env"}, "env files loaded before the config")
	flags.StringVar(&opts.variant, "variant", "", `route table preset: "pages" or "web"`)
	flags.StringVar(&opts.prefix, "prefix", "", "route prefix, overrides the preset")
	flags.StringVar(&opts.history, "history", "", `history mode: "web" or "hash"`)

	cmd.AddCommand(
		newServeCmd(opts),
		newRoutesCmd(opts),
		newResolveCmd(opts),
	)
	return cmd
}

func (o *rootOptions) load() error {
	if err := config.LoadEnv(o.envFiles...); err != nil {
		return err
	}
	cfg, err := config.LoadWithDefaults(o.configPath)
	if err != nil {
		return err
	}
	if o.variant != "" {
		cfg.Routes.Variant = o.variant
	}
	if o.prefix != "" {
		cfg.Routes.Prefix = o.prefix
	}
	if o.history != "" {
		cfg.Routes.History = o.history
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	o.cfg = cfg
	return nil
}

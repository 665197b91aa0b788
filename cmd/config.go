package cmd

import (
	"github.com/cottand/carrier/config"
	"github.com/spf13/cobra"
	"strings"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config [key [value]]",
		Short: "Read or update project config values",
		Long: "With a key and value, update the key. With a key only, print its value. " +
			"With neither, print the whole config.\nKeys: " + strings.Join(config.Keys(), ", "),
		Args:      cobra.MaximumNArgs(2),
		ValidArgs: config.Keys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.open(cmd)
			if err != nil {
				return err
			}
			switch len(args) {
			case 2:
				return p.SetConfig(args[0], args[1])
			case 1:
				p.GetConfig(args[0])
			default:
				p.ShowConfig()
			}
			return nil
		},
	}
}

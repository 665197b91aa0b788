package cmd

import (
	"github.com/cottand/carrier/project"
	"github.com/spf13/cobra"
)

func newInitCmd(opts *rootOptions) *cobra.Command {
	var force bool

	initCmd := &cobra.Command{
		Use:   "init name",
		Short: "Initialize a new Xenon project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return project.Init(opts.dir, args[0], force, cmd.OutOrStdout())
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite the config of an existing project")
	return initCmd
}

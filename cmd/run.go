package cmd

import (
	"github.com/spf13/cobra"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	var entry string

	runCmd := &cobra.Command{
		Use:   "run [file.xn...]",
		Short: "Interpret one or more Xenon files",
		Long:  "Interpret Xenon files with the configured interpreter. Without files, every .xn file under src/ is run.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.open(cmd)
			if err != nil {
				return err
			}
			return p.Run(cmd.Context(), args, entry)
		},
	}
	runCmd.Flags().StringVarP(&entry, "entry", "e", "", "entrypoint file")
	return runCmd
}

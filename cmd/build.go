package cmd

import (
	"github.com/cottand/carrier/project"
	"github.com/spf13/cobra"
)

func newBuildCmd(opts *rootOptions) *cobra.Command {
	var source, output string

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Compile Xenon sources to WASM",
		Long: "Compile Xenon sources to WASM with the configured compiler.\n" +
			"Without --source, every .xn file under src/ is merged into " + project.MergedFile + " and compiled.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.open(cmd)
			if err != nil {
				return err
			}
			return p.Build(cmd.Context(), source, output)
		},
	}
	buildCmd.Flags().StringVarP(&source, "source", "s", "", "single source file (otherwise gathered from src/)")
	buildCmd.Flags().StringVarP(&output, "output", "o", project.DefaultOutput, "output WASM file")
	return buildCmd
}

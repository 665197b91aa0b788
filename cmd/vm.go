package cmd

import (
	"github.com/spf13/cobra"
)

func newVMCmd(opts *rootOptions) *cobra.Command {
	vmCmd := &cobra.Command{
		Use:   "vm file.wasm [args...]",
		Short: "Execute a compiled WASM file on the Xenon VM",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.open(cmd)
			if err != nil {
				return err
			}
			return p.RunVM(cmd.Context(), args[0], args[1:])
		},
	}
	// everything after the wasm file belongs to the VM, flags included
	vmCmd.Flags().SetInterspersed(false)
	return vmCmd
}

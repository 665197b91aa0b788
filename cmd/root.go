package cmd

import (
	"fmt"
	"github.com/cottand/carrier/internal/log"
	"github.com/cottand/carrier/internal/xnerr"
	"github.com/cottand/carrier/process"
	"github.com/cottand/carrier/project"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"log/slog"
	"os"
)

var version = "0.1.0"

type rootOptions struct {
	dir      string
	logLevel int
	runner   process.Runner
}

// NewRootCmd builds the carrier command tree. Every delegated tool is started through runner.
func NewRootCmd(runner process.Runner) *cobra.Command {
	opts := &rootOptions{runner: runner}

	rootCmd := &cobra.Command{
		Use:           "carrier [subcommand]",
		Short:         "carrier ⚛\n a CLI for the Xenon language",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetLevel(slog.Level(opts.logLevel))
		},
	}
	rootCmd.PersistentFlags().StringVarP(&opts.dir, "dir", "C", ".", "run as if carrier was started in this directory")
	rootCmd.PersistentFlags().IntVarP(&opts.logLevel, "log-level", "l", int(slog.LevelError), "log level")

	rootCmd.AddCommand(newInitCmd(opts))
	rootCmd.AddCommand(newBuildCmd(opts))
	rootCmd.AddCommand(newRunCmd(opts))
	rootCmd.AddCommand(newVMCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	return rootCmd
}

func (o *rootOptions) open(cmd *cobra.Command) (*project.Project, error) {
	return project.Open(o.dir, o.runner, cmd.OutOrStdout())
}

// ExitCode is the status carrier should exit with after err.
// A failing tool's own status is passed on.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *process.ExitError
	if errors.As(err, &exitErr) && exitErr.Code > 0 {
		return exitErr.Code
	}
	return 1
}

// PrintError reports err on f, in red only when f itself is a terminal
func PrintError(f *os.File, err error) {
	red := color.New(color.FgRed)
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor || !isTerminal(f) {
		red.DisableColor()
	} else {
		red.EnableColor()
	}
	_, _ = red.Fprintln(f, fmt.Sprintf("error: %s", xnerr.FormatWithCode(err)))
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

package main

import (
	"context"
	"github.com/cottand/carrier/cmd"
	"github.com/cottand/carrier/process"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	rootCmd := cmd.NewRootCmd(&process.Exec{})
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		cmd.PrintError(os.Stderr, err)
		os.Exit(cmd.ExitCode(err))
	}
}

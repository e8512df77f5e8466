// Package main is the tmdbot command: an inline Telegram bot that searches
// The Movie Database.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

const defaultConfigPath = "./config.yaml"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := execute(ctx, os.Args[1:])
	stop()
	os.Exit(exitCode)
}

func execute(ctx context.Context, args []string) int {
	root := newRootCmd()
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "tmdbot",
		Short:        "Telegram inline bot for The Movie Database",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), configPath(cmd))
		},
	}

	cmd.PersistentFlags().String("config", defaultConfigPath, "Path to configuration file (optional)")

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newSearchCmd())

	return cmd
}

func configPath(cmd *cobra.Command) string {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return defaultConfigPath
	}
	return path
}

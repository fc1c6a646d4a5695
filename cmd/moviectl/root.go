package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand(ctx *commandContext) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "moviectl",
		Short:         "Browse popular movies and movie details from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newPopularCommand(ctx))
	rootCmd.AddCommand(newShowCommand(ctx))

	return rootCmd
}

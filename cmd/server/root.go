package main

import (
	"github.com/spf13/cobra"
)

const defaultConfigPath = "./configs/configs.yml"

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "dealer-analytics",
		Short:         "Dealership website analytics service",
		SilenceUsage:  true,
		SilenceErrors: true,
		// serve is the default
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "path to the YAML config file")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe(configPath)
			},
		},
		newSummarizeCmd(),
		newTokenCmd(&configPath),
	)

	return rootCmd
}

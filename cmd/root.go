// Copyright (c) 2025 Vannabridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the vannabridge application.
// It implements the serve command that runs the gRPC service plus client
// subcommands for asking questions, validating and explaining SQL, training
// the engine, and managing credentials, using the Cobra CLI framework.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	showVersion bool
)

// rootCmd represents the base command when called without any subcommands.
// It serves as the entry point for the vannabridge application.
var rootCmd = &cobra.Command{
	Use:           "vannabridge",
	Short:         "gRPC bridge for the Vanna natural-language-to-SQL engine",
	Long:          `Vannabridge exposes the Vanna SQL-generation engine as a gRPC service and ships a small client for talking to it from the terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("vannabridge %s\n", Version)
			return nil
		}
		// If no flag is set, show help
		return cmd.Help()
	},
}

// Execute runs the CLI application.
// It executes the root command and handles any errors that occur during execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show version information")
}

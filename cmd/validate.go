// Copyright (c) 2025 Vannabridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"strings"

	"vannabridge/service/internal/client"
	"vannabridge/service/internal/logging"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	validateAddr string
	validateTLS  bool
)

// validateCmd checks a SQL statement against a running vannabridge service.
var validateCmd = &cobra.Command{
	Use:   "validate <sql>",
	Short: "Check whether a SQL statement is valid",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sql := strings.Join(args, " ")

		c, err := client.Connect(cmd.Context(), validateAddr, client.Options{TLS: validateTLS})
		if err != nil {
			logging.PresentCallError("connecting to the service", err)
			return err
		}
		defer c.Close()

		valid, message, err := c.ValidateSQL(cmd.Context(), sql)
		if err != nil {
			logging.PresentCallError("validating SQL", err)
			return err
		}

		if valid {
			pterm.Println(pterm.NewStyle(pterm.FgGreen).Sprint("✓ Statement is valid"))
		} else {
			pterm.Println(pterm.NewStyle(pterm.FgRed).Sprint("✗ " + message))
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateAddr, "addr", "localhost:50051", "Address of the vannabridge service")
	validateCmd.Flags().BoolVar(&validateTLS, "tls", false, "Use TLS for the connection")
	rootCmd.AddCommand(validateCmd)
}

// Copyright (c) 2025 Vannabridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"os"
	"strings"

	"vannabridge/service/internal/keychain"
	"vannabridge/service/internal/logging"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// dbinfoCmd displays the configured validation database connection string
// with credentials masked for security.
var dbinfoCmd = &cobra.Command{
	Use:   "dbinfo",
	Short: "Show the configured validation database connection string",
	Long: `The dbinfo command displays the currently configured validation database DSN
with credentials masked. This helps verify which database backs ValidateSQL
without exposing sensitive credentials.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		// Try to get DSN from env vars first
		dsnValue := ""
		if env := os.Getenv("VANNA_VALIDATE_DSN"); strings.TrimSpace(env) != "" {
			dsnValue = strings.TrimSpace(env)
			pterm.Println("Using DSN from VANNA_VALIDATE_DSN environment variable")
			pterm.Println()
		} else if env := os.Getenv("DATABASE_URL"); strings.TrimSpace(env) != "" {
			dsnValue = strings.TrimSpace(env)
			pterm.Println("Using DSN from DATABASE_URL environment variable")
			pterm.Println()
		}

		// Fallback to keychain
		if strings.TrimSpace(dsnValue) == "" {
			km, err := keychain.GetManager()
			if err != nil {
				pterm.Println("❌ Secure storage is not available on this system")
				pterm.Println("   Keychain is only supported on macOS and Windows")
				return err
			}

			dsnValue, err = km.LoadValidateDSN()
			if err != nil || strings.TrimSpace(dsnValue) == "" {
				pterm.Println("⚠️  No validation database configured")
				pterm.Println("   Please run: vannabridge connect")
				return nil
			}
			pterm.Println("Using DSN from OS keychain")
			pterm.Println()
		}

		pterm.DefaultBox.
			WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("Validation Database")).
			WithTopPadding(1).WithBottomPadding(1).WithLeftPadding(1).WithRightPadding(1).
			Println(logging.Mask(dsnValue))
		pterm.Println()
		pterm.Println("To update this connection, run: vannabridge connect")
		pterm.Println()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(dbinfoCmd)
}

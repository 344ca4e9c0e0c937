// Copyright (c) 2025 Vannabridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"os"
	"strings"
	"time"

	"vannabridge/service/internal/client"
	"vannabridge/service/internal/logging"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	explainAddr string
	explainTLS  bool
)

// explainCmd asks the service for a natural-language explanation of a
// SQL statement.
var explainCmd = &cobra.Command{
	Use:   "explain <sql>",
	Short: "Explain a SQL statement in natural language",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sql := strings.Join(args, " ")

		c, err := client.Connect(cmd.Context(), explainAddr, client.Options{TLS: explainTLS})
		if err != nil {
			logging.PresentCallError("connecting to the service", err)
			return err
		}
		defer c.Close()

		cursor.Hide()
		stopSpinner := startInlineSpinner(os.Stdout, "explaining SQL", []string{"-", "\\", "|", "/"}, 100*time.Millisecond)
		explanation, err := c.ExplainSQL(cmd.Context(), sql)
		stopSpinner()
		cursor.Show()

		if err != nil {
			logging.PresentCallError("explaining SQL", err)
			return err
		}

		pterm.DefaultBox.
			WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("Explanation")).
			WithTopPadding(1).WithBottomPadding(1).WithLeftPadding(1).WithRightPadding(1).
			Println(explanation)
		return nil
	},
}

func init() {
	explainCmd.Flags().StringVar(&explainAddr, "addr", "localhost:50051", "Address of the vannabridge service")
	explainCmd.Flags().BoolVar(&explainTLS, "tls", false, "Use TLS for the connection")
	rootCmd.AddCommand(explainCmd)
}

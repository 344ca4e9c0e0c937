// Copyright (c) 2025 Vannabridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"
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
	askAddr    string
	askTLS     bool
	askContext []string
)

// askCmd sends a natural-language question to the service and prints the
// generated SQL.
var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Generate SQL from a natural-language question",
	Long: `The ask command sends a question to a running vannabridge service and prints
the SQL the engine generated for it.

Context hints can be passed as repeated --context key=value flags; they are
forwarded to the engine untouched.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := strings.Join(args, " ")

		dbContext, err := parseContextFlags(askContext)
		if err != nil {
			return err
		}

		c, err := client.Connect(cmd.Context(), askAddr, client.Options{TLS: askTLS})
		if err != nil {
			logging.PresentCallError("connecting to the service", err)
			return err
		}
		defer c.Close()

		cursor.Hide()
		stopSpinner := startInlineSpinner(os.Stdout, "generating SQL", []string{"-", "\\", "|", "/"}, 100*time.Millisecond)
		sql, err := c.GenerateSQL(cmd.Context(), question, dbContext)
		stopSpinner()
		cursor.Show()

		if err != nil {
			logging.PresentCallError("generating SQL", err)
			return err
		}

		pterm.DefaultBox.
			WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("Generated SQL")).
			WithTopPadding(1).WithBottomPadding(1).WithLeftPadding(1).WithRightPadding(1).
			Println(sql)
		return nil
	},
}

// parseContextFlags turns repeated key=value flags into the context map.
func parseContextFlags(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 || strings.TrimSpace(kv[0]) == "" {
			return nil, errors.New("--context expects key=value pairs")
		}
		out[kv[0]] = kv[1]
	}
	return out, nil
}

func init() {
	askCmd.Flags().StringVar(&askAddr, "addr", "localhost:50051", "Address of the vannabridge service")
	askCmd.Flags().BoolVar(&askTLS, "tls", false, "Use TLS for the connection")
	askCmd.Flags().StringArrayVar(&askContext, "context", nil, "Context hint as key=value (repeatable)")
	rootCmd.AddCommand(askCmd)
}

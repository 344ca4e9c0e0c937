// Copyright (c) 2025 Vannabridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"
	"io"
	"os"
	"strings"

	"vannabridge/service/internal/client"
	"vannabridge/service/internal/logging"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	trainAddr string
	trainTLS  bool
	trainFile string
)

// trainCmd submits a training payload (DDL, documentation, question/SQL
// pairs) to the engine through a running vannabridge service.
var trainCmd = &cobra.Command{
	Use:   "train [payload]",
	Short: "Send training data to the engine",
	Long: `The train command submits a training payload to the engine. The payload can be
given as an argument, read from a file with --file, or piped on stdin.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readTrainPayload(args)
		if err != nil {
			return err
		}

		c, err := client.Connect(cmd.Context(), trainAddr, client.Options{TLS: trainTLS})
		if err != nil {
			logging.PresentCallError("connecting to the service", err)
			return err
		}
		defer c.Close()

		if err := c.Train(cmd.Context(), data); err != nil {
			logging.PresentCallError("training the engine", err)
			return err
		}

		pterm.Println(pterm.NewStyle(pterm.FgGreen).Sprint("✓ Training data accepted"))
		return nil
	},
}

// readTrainPayload resolves the training payload from argument, file or stdin.
func readTrainPayload(args []string) (string, error) {
	if trainFile != "" {
		b, err := os.ReadFile(trainFile)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	// No argument and no file: read stdin so payloads can be piped in
	stat, err := os.Stdin.Stat()
	if err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		if len(b) > 0 {
			return string(b), nil
		}
	}
	return "", errors.New("training payload is required (argument, --file, or stdin)")
}

func init() {
	trainCmd.Flags().StringVar(&trainAddr, "addr", "localhost:50051", "Address of the vannabridge service")
	trainCmd.Flags().BoolVar(&trainTLS, "tls", false, "Use TLS for the connection")
	trainCmd.Flags().StringVar(&trainFile, "file", "", "Read the training payload from a file")
	rootCmd.AddCommand(trainCmd)
}

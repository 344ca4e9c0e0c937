// Copyright (c) 2025 Vannabridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"vannabridge/service/internal/keychain"
	"vannabridge/service/internal/logging"
	"vannabridge/service/internal/terminal"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// keyCmd groups API key management subcommands.
var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage the Vanna API key in the OS keychain",
}

// keySetCmd prompts for the API key and stores it securely. The prompt is
// cleared from the terminal afterwards so the key never lingers on screen.
var keySetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store the Vanna API key in the OS keychain",
	RunE: func(cmd *cobra.Command, args []string) error {
		reader := bufio.NewReader(os.Stdin)
		promptText := "Enter Vanna API key: "
		fmt.Print(promptText)
		key, _ := reader.ReadString('\n')
		key = strings.TrimSpace(key)

		// Clear the prompt and user input from terminal
		terminal.ClearPreviousLines(len(promptText) + len(key))

		if key == "" {
			return errors.New("API key is required")
		}

		km, err := keychain.GetManager()
		if err != nil {
			pterm.Println("❌ Secure storage is not available on this system")
			pterm.Println("   Keychain is only supported on macOS and Windows")
			return err
		}
		if err := km.SaveAPIKey(key); err != nil {
			return err
		}
		pterm.Println(pterm.NewStyle(pterm.FgGreen).Sprint("✓ API key stored in OS keychain"))
		return nil
	},
}

// keyShowCmd displays the stored API key with most characters masked.
var keyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored Vanna API key (masked)",
	RunE: func(cmd *cobra.Command, args []string) error {
		km, err := keychain.GetManager()
		if err != nil {
			pterm.Println("❌ Secure storage is not available on this system")
			return err
		}
		key, err := km.LoadAPIKey()
		if err != nil || strings.TrimSpace(key) == "" {
			pterm.Println("⚠️  No API key configured")
			pterm.Println("   Please run: vannabridge key set")
			return nil
		}
		pterm.Printf("Vanna API key: %s\n", logging.MaskKey(strings.TrimSpace(key)))
		return nil
	},
}

// keyClearCmd removes the stored API key.
var keyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the Vanna API key from the OS keychain",
	RunE: func(cmd *cobra.Command, args []string) error {
		km, err := keychain.GetManager()
		if err != nil {
			return err
		}
		if err := km.ClearAPIKey(); err != nil {
			return err
		}
		pterm.Println("API key removed from OS keychain")
		return nil
	},
}

func init() {
	keyCmd.AddCommand(keySetCmd)
	keyCmd.AddCommand(keyShowCmd)
	keyCmd.AddCommand(keyClearCmd)
	rootCmd.AddCommand(keyCmd)
}

// Copyright (c) 2025 Vannabridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"vannabridge/service/internal/config"
	"vannabridge/service/internal/dsn"
	"vannabridge/service/internal/engine/vanna"
	errs "vannabridge/service/internal/errors"
	"vannabridge/service/internal/keychain"
	"vannabridge/service/internal/logging"
	"vannabridge/service/internal/server"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	servePort    int
	serveWorkers int
)

// serveCmd runs the gRPC service. The Vanna API key is required and is
// resolved before any listener is bound; without it the process refuses to
// start.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the VannaService gRPC server",
	Long: `The serve command starts the gRPC server exposing GenerateSQL, ValidateSQL,
ExplainSQL and Train. The Vanna API key is read from the VANNA_API_KEY
environment variable, falling back to the OS keychain (see 'vannabridge key set').

When a validation database is configured (VANNA_VALIDATE_DSN, DATABASE_URL or
'vannabridge connect'), ValidateSQL is answered by PostgreSQL via EXPLAIN
instead of the remote endpoint.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}
		if cmd.Flags().Changed("workers") {
			cfg.Workers = serveWorkers
		}

		apiKey, err := resolveAPIKey()
		if err != nil {
			return err
		}

		eng := vanna.New(cfg.Engine.RPCURL, apiKey, cfg.Engine.Model)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		var pool *pgxpool.Pool
		if rawDSN := resolveValidateDSN(); rawDSN != "" {
			normalized, err := dsn.Normalize(rawDSN)
			if err != nil {
				pterm.Printf("⚠️  Ignoring validation DSN: %s\n", logging.PresentError("parse", err))
			} else if pool, err = pgxpool.New(ctx, normalized); err != nil {
				pterm.Printf("⚠️  Ignoring validation DSN: %s\n", logging.PresentError("connect", err))
				pool = nil
			} else {
				defer pool.Close()
				eng.WithValidationPool(pool)
				pterm.Println("SQL validation backed by PostgreSQL")
			}
		}

		lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
		if err != nil {
			return fmt.Errorf("bind port %d: %w", cfg.Port, err)
		}

		gs := server.NewGRPCServer(eng, cfg.Workers)
		go func() {
			<-ctx.Done()
			pterm.Println("Shutting down, draining in-flight calls")
			gs.GracefulStop()
		}()

		pterm.Printf("Vanna service started on port %d\n", cfg.Port)
		return gs.Serve(lis)
	},
}

// resolveAPIKey returns the Vanna API key from the environment or the OS
// keychain. A missing key is a fatal configuration error.
func resolveAPIKey() (string, error) {
	if key := strings.TrimSpace(os.Getenv("VANNA_API_KEY")); key != "" {
		return key, nil
	}
	if km, err := keychain.GetManager(); err == nil {
		if key, err := km.LoadAPIKey(); err == nil && strings.TrimSpace(key) != "" {
			return strings.TrimSpace(key), nil
		}
	}
	return "", errs.New(errs.ConfigMissing, "VANNA_API_KEY environment variable is required (or run 'vannabridge key set')")
}

// resolveValidateDSN returns the optional validation database DSN, preferring
// the environment over the keychain. Empty means no local validation.
func resolveValidateDSN() string {
	if v := strings.TrimSpace(os.Getenv("VANNA_VALIDATE_DSN")); v != "" {
		return v
	}
	if v := strings.TrimSpace(os.Getenv("DATABASE_URL")); v != "" {
		return v
	}
	if km, err := keychain.GetManager(); err == nil {
		if v, err := km.LoadValidateDSN(); err == nil {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 50051, "TCP port to listen on")
	serveCmd.Flags().IntVar(&serveWorkers, "workers", 10, "Number of concurrent worker streams")
	rootCmd.AddCommand(serveCmd)
}

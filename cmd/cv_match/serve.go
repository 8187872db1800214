package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-match/internal/logger"
	"github.com/jonathan/cv-match/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  "Start an HTTP server that exposes REST endpoints for CV analysis and scoring.",
	RunE:  runServe,
}

var (
	servePort    int
	serveAuth    bool
	serveLogJSON bool
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().BoolVar(&serveAuth, "auth", false, "Require bearer token authentication")
	serveCmd.Flags().BoolVar(&serveLogJSON, "log-json", false, "Emit JSON logs instead of console output")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	port := servePort
	if cfg.Port != 0 {
		port = cfg.Port
	}
	databaseURL := cfg.DatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}

	log, err := logger.New(serveLogJSON, verbose || cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	eng, closer, err := buildEngine(ctx, cfg)
	if err != nil {
		return err
	}
	defer closer()

	srv, err := server.New(server.Config{
		Port:        port,
		DatabaseURL: databaseURL,
		EnableAuth:  serveAuth,
	}, eng, log)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

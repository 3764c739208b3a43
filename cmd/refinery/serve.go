package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nexuscv/ats-refinery/internal/config"
	"github.com/nexuscv/ats-refinery/internal/logger"
	"github.com/nexuscv/ats-refinery/internal/server"
)

var (
	servePort       int
	serveConfigPath string
	serveUseBrowser bool
	serveDebug      bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes scoring, refinement, and analysis endpoints. With DATABASE_URL set, registration, login, and analysis history are enabled.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "Path to a JSON config file")
	serveCmd.Flags().BoolVar(&serveUseBrowser, "browser", false, "Render job posting pages with a headless browser")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	var cfg *config.Config
	var err error
	if serveConfigPath != "" {
		cfg, err = config.LoadConfig(serveConfigPath)
	} else {
		cfg, err = config.FromEnv()
	}
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveUseBrowser {
		cfg.UseBrowser = true
	}
	if serveDebug {
		cfg.Debug = true
	}
	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.JSONLog, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	srv, err := server.New(context.Background(), cfg, log)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	if err := srv.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

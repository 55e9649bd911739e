// Package main provides the mdchunk CLI application.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bbarker/listnr-tools/internal/api"
	"github.com/bbarker/listnr-tools/internal/config"
	"github.com/spf13/cobra"
)

var servePort string

// serveCmd exposes the chunking pipeline over HTTP.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run an HTTP server exposing the chunking pipeline",
	Long: `Start an HTTP server with a POST /api/chunk endpoint. The request body is
either raw markdown (Content-Type: text/markdown) or a JSON object with
content, an optional limit and separator, and optional substitution rules.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()
		if configPath != "" {
			if err := cfg.ApplyFile(configPath); err != nil {
				log.Error("invalid configuration", "error", err)
				return err
			}
		}
		cfg.ApplyEnv()
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}
		if err := cfg.Validate(); err != nil {
			log.Error("invalid configuration", "error", err)
			return err
		}
		return runServe(cfg)
	},
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "8091", "port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cfg config.Config) error {
	srv := api.NewServer(log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting mdchunk server", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		return err
	}
	return nil
}

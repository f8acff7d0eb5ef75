package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "codeberg.org/gesturecode/server/docs"
	"codeberg.org/gesturecode/server/internal/config"
	"codeberg.org/gesturecode/server/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

// @title Gesture Code API
// @version 1.0
// @description Proxies code suggestion and code generation prompts to a chat-completion provider.

// @license.name MIT

var port string

var rootCmd = &cobra.Command{
	Use:   "server",
	Short: "Code suggestion and generation proxy",
	Long: `Serves POST /api/suggestions and POST /api/generate, forwarding each
request as a single prompt to the Groq chat-completion API.

Configuration is read from the environment (and a .env file if present):
  GROQ_API_KEY   provider credential
  GROQ_API_URL   optional endpoint override
  PORT           listen port (default 8000)
  ENVIRONMENT    "production" switches to JSON logs and gin release mode`,
	SilenceUsage: true,
	RunE:         runServer,
}

func init() {
	rootCmd.Flags().StringVar(&port, "port", "", "port to listen on (overrides PORT)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.FatalErr(err, "server exited with error")
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	logger.Info("starting gesturecode server")

	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if port != "" {
		cfg.Port = port
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if cfg.GroqAPIKey == "" {
		logger.Warn("GROQ_API_KEY is not set, provider calls will be rejected")
	}

	srv := NewServer(cfg)

	httpServer := &http.Server{
		Addr:        fmt.Sprintf("0.0.0.0:%s", cfg.Port),
		Handler:     srv.router,
		ReadTimeout: 15 * time.Second,
		// must outlast the 30s provider timeout
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)

	go func() {
		logger.Info("server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed to start: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down server")

	// graceful shutdown waits for in-flight provider calls
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 35*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.ErrorErr(err, "server forced to shutdown")
	}

	logger.Info("server stopped")

	return nil
}

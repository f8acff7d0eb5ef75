package main

import (
	"fmt"

	"codeberg.org/gesturecode/server/internal/config"
	"codeberg.org/gesturecode/server/internal/errors"
	"codeberg.org/gesturecode/server/internal/llm"
	"codeberg.org/gesturecode/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// creates a server backed by the groq provider client
func NewServer(cfg *config.Config) *Server {
	client := llm.NewGroqClient(llm.GroqConfig{
		APIKey: cfg.GroqAPIKey,
		URL:    cfg.GroqAPIURL,
	})

	logger.Info("provider client configured", "url", client.URL(), "model", llm.Model)

	return newServer(cfg, client)
}

func newServer(cfg *config.Config, completer llm.ChatCompleter) *Server {
	router := gin.New()
	router.Use(logger.Middleware(), gin.CustomRecovery(recoverHandler))

	server := &Server{
		config:    cfg,
		completer: completer,
		router:    router,
	}

	RegisterRoutes(router, server)

	return server
}

// converts a panic in a handler into the standard {"error": ...} response
func recoverHandler(c *gin.Context, recovered any) {
	errors.InternalError(c, "unhandled error while handling request", fmt.Errorf("%v", recovered))
	c.Abort()
}

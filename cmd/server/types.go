package main

import (
	"codeberg.org/gesturecode/server/internal/config"
	"codeberg.org/gesturecode/server/internal/llm"
	"github.com/gin-gonic/gin"
)

// holds all dependencies for the API server
type Server struct {
	config    *config.Config
	completer llm.ChatCompleter
	router    *gin.Engine
}

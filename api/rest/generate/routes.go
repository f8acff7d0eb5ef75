package generate

import (
	"codeberg.org/gesturecode/server/internal/llm"
	"github.com/gin-gonic/gin"
)

// registers code generation routes
func RegisterRoutes(router *gin.RouterGroup, completer llm.ChatCompleter) {
	router.POST("/generate", Handler(completer))
}

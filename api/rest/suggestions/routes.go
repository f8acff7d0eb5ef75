package suggestions

import (
	"codeberg.org/gesturecode/server/internal/llm"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, completer llm.ChatCompleter) {
	router.POST("/suggestions", Handler(completer))
}

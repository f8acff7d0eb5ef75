package suggestions

import (
	"context"
	"net/http"

	"codeberg.org/gesturecode/server/internal/errors"
	"codeberg.org/gesturecode/server/internal/llm"
	"codeberg.org/gesturecode/server/internal/logger"
	"codeberg.org/gesturecode/server/internal/prompts"
	"github.com/gin-gonic/gin"
)

// Handler godoc
// @Summary Suggest actions for a line of code
// @Description Asks the model for four Title/Description suggestions about the selected line. The text is returned exactly as the model produced it.
// @Tags suggestions
// @Accept json
// @Produce json
// @Param request body Request true "Code and selected line"
// @Success 200 {object} Response
// @Failure 422 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/suggestions [post]
func Handler(completer llm.ChatCompleter) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		prompt := prompts.Suggestions(*req.FullCode, *req.SelectedLine)

		// a client disconnect does not abort the provider call, the client timeout bounds it
		ctx := context.WithoutCancel(c.Request.Context())
		log := logger.FromContext(ctx)

		log.Info("calling groq api for suggestions")

		completion, err := completer.Complete(ctx, prompt)
		if err != nil {
			errors.ProviderFailure(c, "failed to get suggestions", err)
			return
		}

		log.Info("received response from groq api for suggestions")

		content, err := completion.Content()
		if err != nil {
			errors.InternalError(c, "failed to read suggestions from provider response", err)
			return
		}

		c.JSON(http.StatusOK, Response{Suggestions: content})
	}
}

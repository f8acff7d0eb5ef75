package generate

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
// @Summary Regenerate a code file
// @Description Applies the chosen suggestion by asking the model for the complete updated file. The output is not checked for syntax or completeness.
// @Tags generate
// @Accept json
// @Produce json
// @Param request body Request true "Code and chosen suggestion"
// @Success 200 {object} Response
// @Failure 422 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/generate [post]
func Handler(completer llm.ChatCompleter) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		prompt := prompts.Generate(*req.FullCode, *req.Title, *req.Description)

		ctx := context.WithoutCancel(c.Request.Context())
		log := logger.FromContext(ctx)

		log.Info("calling groq api for code generation")

		completion, err := completer.Complete(ctx, prompt)
		if err != nil {
			errors.ProviderFailure(c, "failed to generate code", err)
			return
		}

		log.Info("received response from groq api for code generation")

		code, err := completion.Content()
		if err != nil {
			errors.InternalError(c, "failed to read generated code from provider response", err)
			return
		}

		c.JSON(http.StatusOK, Response{GeneratedCode: code})
	}
}

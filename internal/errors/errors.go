package errors

import (
	"net/http"

	"codeberg.org/gesturecode/server/internal/llm"
	"codeberg.org/gesturecode/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// Error Handling Guidelines:
//
// For HTTP REST handlers:
//   - Use errors.ProviderFailure() for anything returned by the provider client.
//     Provider rejections are forwarded verbatim, everything else becomes a 500.
//   - Use errors.InternalError() for other failures while handling a request.
//   - Use errors.ValidationError() when the body does not have the expected shape.
//   - These functions log and respond; never log the same error again in the handler.
//
// For internal packages:
//   - Return wrapped errors with context using fmt.Errorf("context: %w", err)
//   - The provider client is the one exception: it logs every call and failure
//     so the outbound exchange is traceable on its own.

// answers 500 with the error text after logging it with request context
func InternalError(c *gin.Context, message string, err error) {
	if message == "" {
		message = "an error occurred"
	}

	detail := message
	if err != nil {
		detail = err.Error()
	}

	logger.FromContext(c.Request.Context()).Error(message,
		"error", err,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: detail})
}

// answers 422 when the request body is missing fields or has the wrong types
func ValidationError(c *gin.Context, err error) {
	detail := "request validation failed"
	if err != nil {
		detail = detail + ": " + err.Error()
	}

	logger.FromContext(c.Request.Context()).Warn("invalid request body",
		"error", err,
		"path", c.Request.URL.Path,
	)

	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: detail})
}

// forwards a provider rejection unchanged, or answers 500 for local failures
func ProviderFailure(c *gin.Context, message string, err error) {
	if perr, ok := llm.AsProviderError(err); ok {
		logger.FromContext(c.Request.Context()).Warn("forwarding provider error",
			"status", perr.StatusCode,
			"path", c.Request.URL.Path,
		)

		c.Data(perr.StatusCode, "application/json", perr.Body)
		return
	}

	InternalError(c, message, err)
}

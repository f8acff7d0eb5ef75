package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"codeberg.org/gesturecode/server/internal/llm"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/probe", handler)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))

	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	return resp
}

func TestInternalError(t *testing.T) {
	w := serve(t, func(c *gin.Context) {
		InternalError(c, "failed to build response", fmt.Errorf("boom"))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "boom", decode(t, w).Error)
}

func TestInternalError_NilErrorUsesMessage(t *testing.T) {
	w := serve(t, func(c *gin.Context) {
		InternalError(c, "", nil)
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "an error occurred", decode(t, w).Error)
}

func TestValidationError(t *testing.T) {
	w := serve(t, func(c *gin.Context) {
		ValidationError(c, fmt.Errorf("field full_code is required"))
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, decode(t, w).Error, "field full_code is required")
}

func TestProviderFailure_ForwardsRejection(t *testing.T) {
	body := `{"error":{"message":"Invalid API Key","type":"invalid_request_error"}}`

	w := serve(t, func(c *gin.Context) {
		err := fmt.Errorf("calling provider: %w", &llm.ProviderError{
			StatusCode: http.StatusUnauthorized,
			Body:       json.RawMessage(body),
		})
		ProviderFailure(c, "failed to get suggestions", err)
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, body, w.Body.String())
}

func TestProviderFailure_LocalError(t *testing.T) {
	w := serve(t, func(c *gin.Context) {
		ProviderFailure(c, "failed to get suggestions", fmt.Errorf("failed to send request: dial tcp: connection refused"))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "failed to send request: dial tcp: connection refused", decode(t, w).Error)
}

package apidocs

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "codeberg.org/gesturecode/server/docs"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_ServesRegisteredDoc(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router.Group("/api"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/docs/openapi.json", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "Gesture Code API", doc.Info.Title)
	assert.Contains(t, doc.Paths, "/api/suggestions")
	assert.Contains(t, doc.Paths, "/api/generate")
	assert.Contains(t, doc.Paths, "/api/ping")
	assert.Contains(t, doc.Paths, "/health")
}

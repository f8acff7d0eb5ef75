package apidocs

import (
	"net/http"

	"codeberg.org/gesturecode/server/internal/errors"
	"github.com/gin-gonic/gin"
	"github.com/swaggo/swag"
)

// serves the OpenAPI document registered by the generated docs package
func Handler(c *gin.Context) {
	doc, err := swag.ReadDoc()
	if err != nil {
		errors.InternalError(c, "failed to read api docs", err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
}

func RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/docs/openapi.json", Handler)
}

package main

import (
	"codeberg.org/gesturecode/server/api/rest/apidocs"
	"codeberg.org/gesturecode/server/api/rest/generate"
	"codeberg.org/gesturecode/server/api/rest/health"
	"codeberg.org/gesturecode/server/api/rest/suggestions"
	"github.com/gin-gonic/gin"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(ReflectRequestHeaders(), CORSMiddleware())
	router.GET("/health", health.Handler)

	api := router.Group("/api")

	{
		api.GET("/ping", health.PingHandler)

		suggestions.RegisterRoutes(api, server.completer)
		generate.RegisterRoutes(api, server.completer)
		apidocs.RegisterRoutes(api)
	}
}

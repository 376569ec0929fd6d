package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Establishes HTTP router.
func (service *Service) setupRouter(server *http.Server) {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(requestLogger())
	router.Use(service.corsMiddleware())

	router.GET(PingURL, func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})

	// the parser may be reconfigured per request via the query
	v1 := router.Group("/").Use(service.parserMiddleware())
	v1.POST(EntitiesURL, service.parseText)
	v1.POST(PostsEntitiesURL, service.parsePostBody)

	server.Handler = router
	service.router = router
}

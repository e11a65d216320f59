package http

import (
	"serverless-api-template/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps GET <rg>/root.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/root", mw.WrapRoute(h.Get))
}

// RegisterProjectRoutes maps GET <rg>/project/root behind request logging.
func RegisterProjectRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	project := rg.Group("/project", mw.Logging())
	project.GET("/root", mw.WrapRoute(h.Get))
}

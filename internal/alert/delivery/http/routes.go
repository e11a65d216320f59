package http

import (
	"serverless-api-template/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps POST <rg>/alert to the relay.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/alert", mw.WrapRoute(h.Relay))
}

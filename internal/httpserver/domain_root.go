package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"serverless-api-template/internal/middleware"
	rootHTTP "serverless-api-template/internal/root/delivery/http"
)

// setupRootDomain mounts GET /v1/root and GET /v2/project/root.
func (srv *HTTPServer) setupRootDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	h := rootHTTP.New(srv.l)

	rootHTTP.RegisterRoutes(api.Group("/v1"), h, mw)
	rootHTTP.RegisterProjectRoutes(api.Group("/v2"), h, mw)

	srv.l.Infof(ctx, "Root domain registered")
}

package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	alertHTTP "serverless-api-template/internal/alert/delivery/http"
	"serverless-api-template/internal/middleware"
)

// setupAlertDomain mounts POST /webhooks/alert.
func (srv *HTTPServer) setupAlertDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	h := alertHTTP.New(srv.l, srv.alertUC)
	alertHTTP.RegisterRoutes(api.Group("/webhooks"), h, mw)

	srv.l.Infof(ctx, "Alert domain registered")
}

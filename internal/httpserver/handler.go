package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"serverless-api-template/internal/middleware"
	"serverless-api-template/internal/model"
	pkgErrors "serverless-api-template/pkg/errors"
	"serverless-api-template/pkg/metrics"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.middleware)

	// System routes stay outside the pipeline so swagger and metrics
	// payloads are served untouched.
	srv.registerSystemRoutes()

	pipeline := srv.pipeline(mw)
	srv.gin.NoRoute(append(pipeline, mw.WrapRoute(notFound))...)

	return srv.registerDomainRoutes(srv.gin.Group("", pipeline...), mw)
}

// pipeline is the ordered chain every business route runs through.
func (srv *HTTPServer) pipeline(mw middleware.Middleware) []gin.HandlerFunc {
	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}

	return []gin.HandlerFunc{
		mw.RequestID(),
		mw.Metrics(),
		mw.Compress(),
		mw.SnakeCase(),
		mw.ErrorHandler(),
		mw.SecurityHeaders(),
		mw.Cors(),
		mw.Decompress(),
		mw.ParseBody(),
		mw.RateLimit(),
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(metrics.Handler()))

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv *HTTPServer) registerDomainRoutes(api *gin.RouterGroup, mw middleware.Middleware) error {
	ctx := context.Background()

	srv.setupRootDomain(ctx, api, mw)

	if srv.alertUC != nil {
		srv.setupAlertDomain(ctx, api, mw)
	} else {
		srv.l.Infof(ctx, "Alert use case not configured, skipping POST /webhooks/alert")
	}

	return nil
}

func notFound(c *gin.Context) error {
	return pkgErrors.NotFound(pkgErrors.CodeNoData)
}

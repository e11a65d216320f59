package middleware

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"serverless-api-template/internal/model"
)

var productionMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}

// Cors allows every origin outside production. In production only the
// configured origins get CORS headers, with credentials. Requests from other
// origins are served without them and the browser enforces the policy.
func (mw Middleware) Cors() gin.HandlerFunc {
	cfg := cors.Config{
		AllowHeaders:              []string{"Origin", "Content-Type", "Content-Encoding", "Authorization", HeaderRequestID},
		ExposeHeaders:             []string{HeaderRequestID},
		MaxAge:                    12 * time.Hour,
		OptionsResponseStatusCode: http.StatusNoContent,
	}

	if mw.environment != string(model.EnvironmentProduction) {
		cfg.AllowAllOrigins = true
		cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodHead, http.MethodOptions}
		return cors.New(cfg)
	}

	cfg.AllowMethods = productionMethods
	if len(mw.cors.AllowedMethods) > 0 {
		cfg.AllowMethods = mw.cors.AllowedMethods
	}

	switch {
	case slices.Contains(mw.cors.AllowedOrigins, "*"):
		cfg.AllowAllOrigins = true
		return cors.New(cfg)
	case len(mw.cors.AllowedOrigins) == 0:
		cfg.AllowOriginFunc = func(string) bool { return false }
	default:
		cfg.AllowOrigins = mw.cors.AllowedOrigins
		cfg.AllowCredentials = true
	}

	allowed := cors.New(cfg)
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" || slices.Contains(mw.cors.AllowedOrigins, origin) {
			allowed(c)
			return
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
		}
	}
}

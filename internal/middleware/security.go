package middleware

import "github.com/gin-gonic/gin"

const hstsValue = "max-age=63072000; includeSubdomains; preload"

// SecurityHeaders sets the hardening headers on every response. HSTS is only
// sent over TLS.
func (mw Middleware) SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Xss-Protection", "1; mode=block")
		h.Set("Cache-Control", "no-cache, no-store, must-revalidate, private")
		h.Set("Pragma", "no-cache")
		h.Set("Expires", "0")
		if c.Request.TLS != nil {
			h.Set("Strict-Transport-Security", hstsValue)
		}
		c.Next()
	}
}

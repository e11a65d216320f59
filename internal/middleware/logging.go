package middleware

import "github.com/gin-gonic/gin"

const requestLoggedKey = "middleware.request_logged"

// Logging logs the path, route params and query of each request.
func (mw Middleware) Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		mw.logRequest(c)
		c.Next()
	}
}

// logRequest logs c's request once, however many layers ask for it.
func (mw Middleware) logRequest(c *gin.Context) {
	if c.GetBool(requestLoggedKey) {
		return
	}
	c.Set(requestLoggedKey, true)

	params := make(map[string]string, len(c.Params))
	for _, p := range c.Params {
		params[p.Key] = p.Value
	}
	mw.l.Infof(c.Request.Context(), "request: path=%s params=%v query=%v",
		c.Request.URL.Path, params, c.Request.URL.Query())
}

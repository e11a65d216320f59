package middleware

import (
	"github.com/gin-gonic/gin"
)

// HandlerFunc is a route handler that reports failure by returning an error.
type HandlerFunc func(c *gin.Context) error

// WrapRoute runs h behind a failure boundary. The request is logged, the
// response body is intercepted, and any returned error or panic is mapped to
// a single error response.
func (mw Middleware) WrapRoute(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		mw.logRequest(c)

		w, installed := mw.intercept(c)
		if installed {
			defer mw.flush(c, w)
		}

		if thrown := invoke(c, h); thrown != nil {
			mw.l.Errorf(c.Request.Context(), "route %s %s: %v", c.Request.Method, c.FullPath(), thrown)
			mw.fail(c, thrown)
		}
	}
}

func invoke(c *gin.Context, h HandlerFunc) (thrown any) {
	defer func() {
		if r := recover(); r != nil {
			thrown = r
		}
	}()

	if err := h(c); err != nil {
		return err
	}
	return nil
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"serverless-api-template/pkg/response"
)

// ErrorHandler is the backstop for failures that bypass WrapRoute: panics
// raised further down the chain and errors attached with c.Error.
func (mw Middleware) ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				if r == http.ErrAbortHandler {
					panic(r)
				}
				mw.fail(c, r)
			}
		}()

		c.Next()

		if last := c.Errors.Last(); last != nil && !c.Writer.Written() {
			mw.fail(c, last.Err)
		}
	}
}

// fail discards any buffered body and answers with the mapped error.
func (mw Middleware) fail(c *gin.Context, v any) {
	if w, ok := c.Writer.(*bodyWriter); ok {
		w.reset()
	}
	response.Error(c, mw.l, v)
}

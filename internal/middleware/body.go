package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	pkgErrors "serverless-api-template/pkg/errors"
)

// ParseBody enforces the body size limit and parses JSON and URL-encoded
// bodies up front, rejecting malformed ones as bad requests. The JSON body
// stays readable by handlers.
func (mw Middleware) ParseBody() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body == nil || c.Request.Body == http.NoBody {
			c.Next()
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, mw.bodyLimit)

		switch c.ContentType() {
		case binding.MIMEJSON:
			raw, err := io.ReadAll(c.Request.Body)
			if err != nil {
				mw.rejectBody(c, err)
				return
			}
			if len(bytes.TrimSpace(raw)) > 0 && !json.Valid(raw) {
				mw.rejectBody(c, errors.New("invalid json body"))
				return
			}
			c.Request.Body = io.NopCloser(bytes.NewReader(raw))
			c.Set(gin.BodyBytesKey, raw)
		case binding.MIMEPOSTForm:
			if err := c.Request.ParseForm(); err != nil {
				mw.rejectBody(c, err)
				return
			}
		}

		c.Next()
	}
}

func (mw Middleware) rejectBody(c *gin.Context, err error) {
	mw.l.Warnf(c.Request.Context(), "middleware.ParseBody: %v", err)

	reason := err.Error()
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		reason = fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit)
	}
	_ = c.Error(pkgErrors.BadRequest(reason))
	c.Abort()
}

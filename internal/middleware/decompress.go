package middleware

import (
	"errors"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	pkgErrors "serverless-api-template/pkg/errors"
)

// Compress gzips responses for clients that accept it. It must sit outside
// SnakeCase so the buffered body is rewritten before it is compressed.
func (mw Middleware) Compress() gin.HandlerFunc {
	return gzip.Gzip(gzip.DefaultCompression)
}

// Decompress inflates gzip request bodies in place.
func (mw Middleware) Decompress() gin.HandlerFunc {
	return gzip.Gzip(gzip.DefaultCompression,
		gzip.WithDecompressOnly(),
		gzip.WithDecompressFn(mw.decompress),
	)
}

// decompress runs the rest of the chain behind the gzip reader. A body that
// cannot be inflated stops the chain and is answered as a BadRequest by
// ErrorHandler.
func (mw Middleware) decompress(c *gin.Context) {
	before := len(c.Errors)
	gzip.DefaultDecompressHandle(c)

	if len(c.Errors) == before || !c.IsAborted() {
		return
	}
	first := c.Errors[before].Err
	if c.GetHeader("Content-Encoding") == "" && !errors.Is(first, gzip.ErrUnsupportedContentEncoding) {
		// inflated fine, the errors came from further down
		return
	}

	mw.l.Warnf(c.Request.Context(), "middleware.Decompress: %v", first)
	for _, e := range c.Errors[before:] {
		e.Err = pkgErrors.BadRequest("invalid gzip body: " + e.Err.Error())
	}
}

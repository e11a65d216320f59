package middleware

import (
	"bytes"
	"encoding/json"

	"github.com/gin-gonic/gin"

	"serverless-api-template/pkg/casing"
)

// bodyWriter holds the response body until the chain returns so it can be
// rewritten before anything reaches the client.
type bodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyWriter) Write(b []byte) (int, error) {
	return w.body.Write(b)
}

func (w *bodyWriter) WriteString(s string) (int, error) {
	return w.body.WriteString(s)
}

// WriteHeaderNow is deferred until flush so an aborted request can still be
// answered with an error envelope.
func (w *bodyWriter) WriteHeaderNow() {}

func (w *bodyWriter) Written() bool {
	return w.body.Len() > 0 || w.ResponseWriter.Written()
}

func (w *bodyWriter) Size() int {
	if w.body.Len() > 0 {
		return w.body.Len()
	}
	return w.ResponseWriter.Size()
}

// reset drops whatever the handler buffered so far.
func (w *bodyWriter) reset() {
	w.body.Reset()
}

// SnakeCase converts the keys of JSON object and array response bodies to
// snake_case and logs the outgoing response.
func (mw Middleware) SnakeCase() gin.HandlerFunc {
	return func(c *gin.Context) {
		w, installed := mw.intercept(c)
		if !installed {
			c.Next()
			return
		}
		c.Next()
		mw.flush(c, w)
	}
}

// intercept installs a bodyWriter unless one is already in place.
func (mw Middleware) intercept(c *gin.Context) (*bodyWriter, bool) {
	if w, ok := c.Writer.(*bodyWriter); ok {
		return w, false
	}
	w := &bodyWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
	c.Writer = w
	return w, true
}

func (mw Middleware) flush(c *gin.Context, w *bodyWriter) {
	c.Writer = w.ResponseWriter

	out, converted := snakeBody(w.body.Bytes())
	if converted {
		w.Header().Del("Content-Length")
	}

	mw.l.Infof(c.Request.Context(), "response: status_code=%d response=%s", w.Status(), out)

	if len(out) == 0 {
		return
	}
	if _, err := w.ResponseWriter.Write(out); err != nil {
		mw.l.Warnf(c.Request.Context(), "middleware.flush: %v", err)
	}
}

// snakeBody rewrites b when it holds exactly one JSON object or array.
func snakeBody(b []byte) ([]byte, bool) {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || (trimmed[0] != '{' && trimmed[0] != '[') {
		return b, false
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil || dec.More() {
		return b, false
	}

	var out bytes.Buffer
	enc := json.NewEncoder(&out)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(casing.SnakeKeys(v)); err != nil {
		return b, false
	}
	return bytes.TrimSuffix(out.Bytes(), []byte("\n")), true
}

package middleware

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	pkgErrors "serverless-api-template/pkg/errors"
	"serverless-api-template/pkg/log"
)

type captureLogger struct {
	log.Logger
	mu    sync.Mutex
	infos []string
}

func newCaptureLogger() *captureLogger {
	return &captureLogger{Logger: log.NewNop()}
}

func (l *captureLogger) Infof(ctx context.Context, template string, arg ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, fmt.Sprintf(template, arg...))
}

func (l *captureLogger) count(prefix string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, line := range l.infos {
		if strings.HasPrefix(line, prefix) {
			n++
		}
	}
	return n
}

func newEngine(mw Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.RequestID(), mw.Compress(), mw.SnakeCase(), mw.ErrorHandler(), mw.SecurityHeaders(), mw.Cors(), mw.Decompress(), mw.ParseBody(), mw.RateLimit())
	return r
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSnakeCase(t *testing.T) {
	mw := New(log.NewNop(), Config{})
	r := newEngine(mw)
	r.GET("/object", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": 1, "items": []gin.H{{"itemName": "keepValue"}}})
	})
	r.GET("/array", func(c *gin.Context) {
		c.JSON(http.StatusCreated, []gin.H{{"createdAt": "x"}})
	})
	r.GET("/text", func(c *gin.Context) {
		c.String(http.StatusOK, "plainText")
	})
	r.GET("/scalar", func(c *gin.Context) {
		c.JSON(http.StatusOK, "camelCase")
	})
	r.GET("/big", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(`{"bigId":9007199254740993}`))
	})
	r.GET("/html", func(c *gin.Context) {
		c.PureJSON(http.StatusOK, gin.H{"linkText": "<a>&"})
	})

	tests := []struct {
		path   string
		status int
		body   string
	}{
		{"/object", http.StatusOK, `{"items":[{"item_name":"keepValue"}],"user_id":1}`},
		{"/array", http.StatusCreated, `[{"created_at":"x"}]`},
		{"/text", http.StatusOK, "plainText"},
		{"/scalar", http.StatusOK, `"camelCase"`},
		{"/big", http.StatusOK, `{"big_id":9007199254740993}`},
		{"/html", http.StatusOK, `{"link_text":"<a>&"}`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := serve(r, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if w.Code != tt.status {
				t.Errorf("expected %d, got %d", tt.status, w.Code)
			}
			if w.Body.String() != tt.body {
				t.Errorf("expected body %s, got %s", tt.body, w.Body.String())
			}
		})
	}
}

func TestSnakeCaseLogsResponse(t *testing.T) {
	l := newCaptureLogger()
	r := newEngine(New(l, Config{}))
	r.GET("/", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"fooBar": 1}) })

	serve(r, httptest.NewRequest(http.MethodGet, "/", nil))

	if n := l.count(`response: status_code=200 response={"foo_bar":1}`); n != 1 {
		t.Errorf("expected converted response to be logged once, got %d: %v", n, l.infos)
	}
}

func TestSecurityHeaders(t *testing.T) {
	r := newEngine(New(log.NewNop(), Config{}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	want := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"X-Xss-Protection":       "1; mode=block",
		"Cache-Control":          "no-cache, no-store, must-revalidate, private",
		"Pragma":                 "no-cache",
		"Expires":                "0",
	}

	t.Run("plain http", func(t *testing.T) {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
		for k, v := range want {
			if got := w.Header().Get(k); got != v {
				t.Errorf("%s: expected %q, got %q", k, v, got)
			}
		}
		if hsts := w.Header().Get("Strict-Transport-Security"); hsts != "" {
			t.Errorf("expected no HSTS over plain http, got %q", hsts)
		}
	})

	t.Run("tls", func(t *testing.T) {
		w := serve(r, httptest.NewRequest(http.MethodGet, "https://example.com/", nil))
		if hsts := w.Header().Get("Strict-Transport-Security"); hsts != hstsValue {
			t.Errorf("expected HSTS %q, got %q", hstsValue, hsts)
		}
	})
}

func TestWrapRoute(t *testing.T) {
	l := newCaptureLogger()
	mw := New(l, Config{})
	r := newEngine(mw)

	r.GET("/ok", mw.WrapRoute(func(c *gin.Context) error {
		c.JSON(http.StatusOK, gin.H{"status": true})
		return nil
	}))
	r.GET("/partial", mw.WrapRoute(func(c *gin.Context) error {
		c.Header("X-Partial", "1")
		c.Status(http.StatusCreated)
		_, _ = c.Writer.WriteString(`{"halfWritten":`)
		return pkgErrors.BadRequest("x")
	}))
	r.GET("/panic", mw.WrapRoute(func(c *gin.Context) error {
		panic("boom")
	}))
	r.GET("/plain", mw.WrapRoute(func(c *gin.Context) error {
		return fmt.Errorf("db down")
	}))

	tests := []struct {
		path   string
		status int
		body   string
	}{
		{"/ok", http.StatusOK, `{"status":true}`},
		{"/partial", http.StatusBadRequest, `{"errors":[{"reason":"x"}],"msg":"[101] bad params"}`},
		{"/panic", http.StatusInternalServerError, `{"errors":[],"msg":"[105] unknown error"}`},
		{"/plain", http.StatusInternalServerError, `{"errors":[],"msg":"[105] unknown error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := serve(r, httptest.NewRequest(http.MethodGet, tt.path+"?a=1", nil))
			if w.Code != tt.status {
				t.Errorf("expected %d, got %d", tt.status, w.Code)
			}
			if w.Body.String() != tt.body {
				t.Errorf("expected body %s, got %s", tt.body, w.Body.String())
			}
		})
	}

	if n := l.count("request: path=/ok"); n != 1 {
		t.Errorf("expected one inbound log for /ok, got %d", n)
	}
}

func TestWrapRouteWithoutPipeline(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := New(log.NewNop(), Config{})
	r := gin.New()
	r.GET("/", mw.WrapRoute(func(c *gin.Context) error {
		c.JSON(http.StatusOK, gin.H{"innerValue": 1})
		return nil
	}))
	r.GET("/fail", mw.WrapRoute(func(c *gin.Context) error {
		c.JSON(http.StatusOK, gin.H{"innerValue": 1})
		return pkgErrors.NotFound("missing")
	}))

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Body.String() != `{"inner_value":1}` {
		t.Errorf("expected wrapper to install interception, got %s", w.Body.String())
	}

	w = serve(r, httptest.NewRequest(http.MethodGet, "/fail", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	if w.Body.String() != `{"errors":[{"reason":"missing"}],"msg":"[400] no data"}` {
		t.Errorf("expected a single error body, got %s", w.Body.String())
	}
}

func TestLoggingOnce(t *testing.T) {
	l := newCaptureLogger()
	mw := New(l, Config{})
	r := newEngine(mw)
	r.GET("/items/:id", mw.Logging(), mw.WrapRoute(func(c *gin.Context) error {
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
		return nil
	}))

	serve(r, httptest.NewRequest(http.MethodGet, "/items/7?q=x", nil))

	if n := l.count("request: path=/items/7 params=map[id:7] query=map[q:[x]]"); n != 1 {
		t.Errorf("expected exactly one inbound log, got %d: %v", n, l.infos)
	}
}

func TestErrorHandler(t *testing.T) {
	r := newEngine(New(log.NewNop(), Config{}))
	r.GET("/panic", func(c *gin.Context) { panic(pkgErrors.Forbidden("nope")) })
	r.GET("/attached", func(c *gin.Context) {
		_ = c.Error(pkgErrors.NotFound("gone"))
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/panic", nil))
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}

	w = serve(r, httptest.NewRequest(http.MethodGet, "/attached", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	if w.Body.String() != `{"errors":[{"reason":"gone"}],"msg":"[400] no data"}` {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestCompress(t *testing.T) {
	r := newEngine(New(log.NewNop(), Config{}))
	r.GET("/", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"fooBar": 1}) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := serve(r, req)

	if w.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("expected gzip response, got %v", w.Header())
	}
	zr, err := gzip.NewReader(w.Body)
	if err != nil {
		t.Fatalf("gzip.NewReader: %v", err)
	}
	var out bytes.Buffer
	if _, err := out.ReadFrom(zr); err != nil {
		t.Fatalf("read: %v", err)
	}
	if out.String() != `{"foo_bar":1}` {
		t.Errorf("expected converted body, got %s", out.String())
	}
}

func TestDecompressAndParseBody(t *testing.T) {
	mw := New(log.NewNop(), Config{BodyLimit: 64})
	r := newEngine(mw)
	r.POST("/echo", mw.WrapRoute(func(c *gin.Context) error {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			return err
		}
		c.JSON(http.StatusOK, body)
		return nil
	}))

	t.Run("gzip body", func(t *testing.T) {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		_, _ = zw.Write([]byte(`{"fooBar":1}`))
		_ = zw.Close()

		req := httptest.NewRequest(http.MethodPost, "/echo", &buf)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Content-Encoding", "gzip")

		w := serve(r, req)
		if w.Code != http.StatusOK || w.Body.String() != `{"foo_bar":1}` {
			t.Errorf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("broken gzip", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("not gzip"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Content-Encoding", "gzip")

		w := serve(r, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"msg":"[101] bad params"`) {
			t.Errorf("expected error envelope, got %s", w.Body.String())
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"a":`))
		req.Header.Set("Content-Type", "application/json")

		w := serve(r, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"msg":"[101] bad params"`) {
			t.Errorf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("body too large", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"a":"`+strings.Repeat("x", 100)+`"}`))
		req.Header.Set("Content-Type", "application/json")

		if w := serve(r, req); w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestCors(t *testing.T) {
	preflight := func(r *gin.Engine, origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		return serve(r, req)
	}

	t.Run("permissive outside production", func(t *testing.T) {
		r := newEngine(New(log.NewNop(), Config{Environment: "development"}))
		w := preflight(r, "http://anywhere.test")
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("expected wildcard origin, got %q", got)
		}
	})

	t.Run("allow list in production", func(t *testing.T) {
		r := newEngine(New(log.NewNop(), Config{
			Environment: "production",
			CORS:        CORSConfig{AllowedOrigins: []string{"https://app.example.com"}},
		}))

		w := preflight(r, "https://app.example.com")
		if w.Code != http.StatusNoContent {
			t.Errorf("expected 204 preflight, got %d", w.Code)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
			t.Errorf("unexpected allow origin %q", got)
		}
		if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
			t.Errorf("expected credentials, got %q", got)
		}

		w = preflight(r, "https://evil.example.com")
		if w.Code != http.StatusNoContent || w.Header().Get("Access-Control-Allow-Origin") != "" {
			t.Errorf("expected bare 204 preflight for unknown origin, got %d %q", w.Code, w.Header().Get("Access-Control-Allow-Origin"))
		}
	})

	t.Run("unknown origin is served without cors headers", func(t *testing.T) {
		r := newEngine(New(log.NewNop(), Config{
			Environment: "production",
			CORS:        CORSConfig{AllowedOrigins: []string{"https://app.example.com"}},
		}))
		r.GET("/", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"okValue": true}) })

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://other.example")
		w := serve(r, req)

		if w.Code != http.StatusOK || w.Body.String() != `{"ok_value":true}` {
			t.Errorf("unexpected response %d %s", w.Code, w.Body.String())
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("expected no allow origin, got %q", got)
		}
		if w.Header().Get("X-Content-Type-Options") != "nosniff" || w.Header().Get("X-Frame-Options") != "DENY" {
			t.Errorf("expected security headers, got %v", w.Header())
		}
	})

	t.Run("preflight carries security headers", func(t *testing.T) {
		r := newEngine(New(log.NewNop(), Config{
			Environment: "production",
			CORS:        CORSConfig{AllowedOrigins: []string{"https://app.example.com"}},
		}))
		w := preflight(r, "https://app.example.com")
		if w.Header().Get("X-Content-Type-Options") != "nosniff" {
			t.Errorf("expected security headers on preflight, got %v", w.Header())
		}
	})
}

func TestRateLimit(t *testing.T) {
	r := newEngine(New(log.NewNop(), Config{RateLimitPerMin: 10}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	// burst of one, so the second immediate request is rejected
	if w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil)); w.Code != http.StatusNoContent {
		t.Fatalf("expected first request to pass, got %d", w.Code)
	}
	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"msg":"[104] too many requests"`) {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestRateLimitConcurrentFirstRequests(t *testing.T) {
	rl := newRateLimiter(10)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if rl.Allow("10.0.0.1") {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if allowed != rl.burst {
		t.Errorf("expected %d allowed requests, got %d", rl.burst, allowed)
	}
}

func TestRequestID(t *testing.T) {
	r := newEngine(New(log.NewNop(), Config{}))
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, log.TraceID(c.Request.Context()))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "req-1")
	w := serve(r, req)

	if w.Header().Get(HeaderRequestID) != "req-1" || w.Body.String() != "req-1" {
		t.Errorf("expected request id to be propagated, got header %q body %q", w.Header().Get(HeaderRequestID), w.Body.String())
	}

	w = serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Header().Get(HeaderRequestID) == "" {
		t.Errorf("expected a generated request id")
	}
}

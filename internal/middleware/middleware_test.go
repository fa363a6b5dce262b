package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"intelliassist/config"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func newTestRouter(mw Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.CORS(), mw.RateLimit())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func TestRateLimit(t *testing.T) {
	t.Run("allows within budget", func(t *testing.T) {
		mw := New(mockLogger{}, config.RateLimitConfig{Enabled: true, RequestsPerMin: 600})
		r := newTestRouter(mw)

		for i := 0; i < 10; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			r.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i, w.Code)
			}
		}
	})

	t.Run("rejects beyond burst", func(t *testing.T) {
		// 60/min gives burst 6; the 7th immediate request must fail.
		mw := New(mockLogger{}, config.RateLimitConfig{Enabled: true, RequestsPerMin: 60})
		r := newTestRouter(mw)

		var lastCode int
		for i := 0; i < 7; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.RemoteAddr = "10.0.0.2:1234"
			r.ServeHTTP(w, req)
			lastCode = w.Code
		}
		if lastCode != http.StatusTooManyRequests {
			t.Errorf("expected 429 after burst, got %d", lastCode)
		}
	})

	t.Run("clients are isolated", func(t *testing.T) {
		mw := New(mockLogger{}, config.RateLimitConfig{Enabled: true, RequestsPerMin: 60})
		r := newTestRouter(mw)

		for i := 0; i < 7; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.RemoteAddr = "10.0.0.3:1234"
			r.ServeHTTP(w, req)
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.4:1234"
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("fresh client should pass, got %d", w.Code)
		}
	})

	t.Run("disabled passes everything", func(t *testing.T) {
		mw := New(mockLogger{}, config.RateLimitConfig{Enabled: false, RequestsPerMin: 1})
		r := newTestRouter(mw)

		for i := 0; i < 20; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.RemoteAddr = "10.0.0.5:1234"
			r.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200 with limiter disabled, got %d", w.Code)
			}
		}
	})
}

func TestCORS(t *testing.T) {
	t.Run("preflight", func(t *testing.T) {
		mw := New(mockLogger{}, config.RateLimitConfig{})
		r := newTestRouter(mw)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("expected 204 for preflight, got %d", w.Code)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
			t.Errorf("unexpected allow origin: %q", got)
		}
	})

	t.Run("restricted origins", func(t *testing.T) {
		mw := New(mockLogger{}, config.RateLimitConfig{AllowedOrigins: []string{"http://app.local"}})
		r := newTestRouter(mw)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "http://evil.local")
		r.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("origin should not be allowed, got %q", got)
		}
	})
}

func TestExtractIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:9999"

	if got := extractIP(req); got != "192.0.2.1" {
		t.Errorf("remote addr: got %q", got)
	}

	req.Header.Set("X-Real-IP", "203.0.113.9")
	if got := extractIP(req); got != "203.0.113.9" {
		t.Errorf("x-real-ip: got %q", got)
	}

	req.Header.Set("X-Forwarded-For", "198.51.100.7, 10.0.0.1")
	if got := extractIP(req); got != "198.51.100.7" {
		t.Errorf("x-forwarded-for: got %q", got)
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ridehail/internal/utils"
	"ridehail/pkg/logger"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine() *gin.Engine {
	log := logger.NewNop()
	r := gin.New()
	r.Use(RecoveryMiddleware(log), RequestIDMiddleware(), LoggingMiddleware(log), CORSMiddleware([]string{"*"}))
	return r
}

func TestRequestIDGeneratedAndPropagated(t *testing.T) {
	r := newEngine()
	var fromContext interface{}
	r.GET("/ping", func(c *gin.Context) {
		fromContext = c.Request.Context().Value(logger.RequestIDKey)
		c.String(http.StatusOK, "pong")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	id := w.Header().Get(utils.HeaderRequestID)
	if id == "" {
		t.Fatal("missing request id header")
	}
	if fromContext != id {
		t.Fatalf("context request id = %v, want %s", fromContext, id)
	}
}

func TestRequestIDHonoursCaller(t *testing.T) {
	r := newEngine()
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(utils.HeaderRequestID, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get(utils.HeaderRequestID); got != "abc-123" {
		t.Fatalf("request id = %q, want abc-123", got)
	}
}

func TestRecoveryAnswersPlainText500(t *testing.T) {
	r := newEngine()
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("code = %d, want 500", w.Code)
	}
	if w.Body.String() != utils.MessageInternalServer {
		t.Fatalf("body = %q", w.Body.String())
	}
}

func TestCORSPreflight(t *testing.T) {
	r := newEngine()
	r.POST("/api/login", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/api/login", nil)
	req.Header.Set("Origin", "http://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight code = %d, want 204", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("allow origin = %q, want *", got)
	}
}

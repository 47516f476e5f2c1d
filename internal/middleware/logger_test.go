package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/usdtpulse/internal/logger"
)

func TestToString(t *testing.T) {
	if s := toString(nil); s != "" {
		t.Fatalf("nil -> %q, want empty", s)
	}
	if s := toString("abc"); s != "abc" {
		t.Fatalf("string -> %q, want 'abc'", s)
	}
	if s := toString(123); s != "" {
		t.Fatalf("non-string -> %q, want empty", s)
	}
}

func TestRequestLogger_WritesStructuredLine(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger.InitWithWriter(&buf, "info", false)
	t.Cleanup(func() { logger.Init("info", false) })

	router := gin.New()
	router.Use(RequestID(), RequestLogger())
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}

	line := strings.TrimSpace(buf.String())
	var entry map[string]any
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("log is not json: %v (%q)", err, line)
	}
	if entry["message"] != "http_request" || entry["path"] != "/ping" || entry["method"] != "GET" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if entry["request_id"] != w.Header().Get(RequestIDHeader) {
		t.Fatalf("request id mismatch: %v vs %s", entry["request_id"], w.Header().Get(RequestIDHeader))
	}
	if entry["status"] != float64(200) {
		t.Fatalf("status field=%v", entry["status"])
	}
}

func TestRequestLogger_ServerErrorsAtWarn(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger.InitWithWriter(&buf, "info", false)
	t.Cleanup(func() { logger.Init("info", false) })

	router := gin.New()
	router.Use(RequestLogger())
	router.GET("/fail", func(c *gin.Context) { c.Status(http.StatusBadGateway) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fail", nil))
	if !strings.Contains(buf.String(), `"level":"warn"`) {
		t.Fatalf("expected warn level, got %s", buf.String())
	}
}

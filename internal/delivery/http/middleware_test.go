package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestIsAllowedOrigin(t *testing.T) {
	allowedOrigins := []string{"http://localhost:3000", "https://claims.pricelens.example*"}

	tests := []struct {
		name   string
		origin string
		want   bool
	}{
		{"exact match allowed", "http://localhost:3000", true},
		{"wildcard prefix allowed", "https://claims.pricelens.example:8443", true},
		{"unknown origin rejected", "https://evil.example", false},
		{"empty origin rejected", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isAllowedOrigin(tt.origin, allowedOrigins); got != tt.want {
				t.Errorf("isAllowedOrigin(%q) = %v, want %v", tt.origin, got, tt.want)
			}
		})
	}
}

func TestCORSMiddleware(t *testing.T) {
	t.Run("sets CORS headers for allowed origins", func(t *testing.T) {
		router := gin.New()
		router.Use(CORSMiddleware([]string{"http://localhost:3000"}))
		router.GET("/test", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		req, _ := http.NewRequest("GET", "/test", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
			t.Errorf("Access-Control-Allow-Origin = %q, want http://localhost:3000", got)
		}
	})

	t.Run("omits CORS headers for disallowed origins", func(t *testing.T) {
		router := gin.New()
		router.Use(CORSMiddleware([]string{"http://localhost:3000"}))
		router.GET("/test", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		req, _ := http.NewRequest("GET", "/test", nil)
		req.Header.Set("Origin", "https://evil.example")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Access-Control-Allow-Origin = %q, want empty", got)
		}
	})

	t.Run("answers preflight requests with no content", func(t *testing.T) {
		router := gin.New()
		router.Use(CORSMiddleware([]string{"http://localhost:3000"}))

		req, _ := http.NewRequest("OPTIONS", "/test", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusNoContent)
		}
	})
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRateLimitByIP(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitByIP(1, 2, time.Minute, time.Minute))
	r.GET("/search", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/search", nil)
		req.RemoteAddr = "203.0.113.7:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Errorf("burst requests = %v, want the first two allowed", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("third request status = %d, want %d", codes[2], http.StatusTooManyRequests)
	}

	req := httptest.NewRequest(http.MethodGet, "/search", nil)
	req.RemoteAddr = "198.51.100.2:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("other IP status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestClientHints(t *testing.T) {
	r := gin.New()
	r.Use(ClientHints())
	var dark bool
	r.GET("/", func(c *gin.Context) {
		dark = PrefersDarkScheme(c)
		c.Status(http.StatusOK)
	})

	tests := []struct {
		hint string
		want bool
	}{
		{`"dark"`, true},
		{"dark", true},
		{`"light"`, false},
		{"", false},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.hint != "" {
			req.Header.Set(ColorSchemeHint, tt.hint)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if dark != tt.want {
			t.Errorf("hint %q: dark = %v, want %v", tt.hint, dark, tt.want)
		}
		if got := w.Header().Get("Accept-CH"); got != ColorSchemeHint {
			t.Errorf("Accept-CH = %q", got)
		}
	}
}

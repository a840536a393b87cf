package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIsAllowedOrigin(t *testing.T) {
	tests := []struct {
		name     string
		origin   string
		allowed  []string
		expected bool
	}{
		{
			name:     "bare wildcard allows everything",
			origin:   "https://example.com",
			allowed:  []string{"*"},
			expected: true,
		},
		{
			name:     "exact match",
			origin:   "https://app.example.com",
			allowed:  []string{"https://app.example.com"},
			expected: true,
		},
		{
			name:     "prefix wildcard match",
			origin:   "https://widget.example.com",
			allowed:  []string{"https://widget.*"},
			expected: true,
		},
		{
			name:     "no match",
			origin:   "https://evil.com",
			allowed:  []string{"https://app.example.com"},
			expected: false,
		},
		{
			name:     "empty allowed list",
			origin:   "https://example.com",
			allowed:  []string{},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := isAllowedOrigin(tt.origin, tt.allowed)
			if got != tt.expected {
				t.Errorf("isAllowedOrigin(%q, %v) = %v, want %v", tt.origin, tt.allowed, got, tt.expected)
			}
		})
	}
}

func TestCORSMiddleware(t *testing.T) {
	t.Run("preflight requests are answered with 204", func(t *testing.T) {
		router := setupTestRouter(&fakeLookup{})

		req, _ := http.NewRequest("OPTIONS", "/price", nil)
		req.Header.Set("Origin", "https://example.com")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusNoContent)
		}
	})

	t.Run("allowed origins are echoed back", func(t *testing.T) {
		router := setupTestRouter(&fakeLookup{message: "ok"})

		req, _ := http.NewRequest("GET", "/health", nil)
		req.Header.Set("Origin", "https://example.com")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://example.com" {
			t.Errorf("Access-Control-Allow-Origin = %q, want the request origin", got)
		}
	})
}

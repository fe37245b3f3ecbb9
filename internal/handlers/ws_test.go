package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ashmitmorwal3/neighbourtalk/internal/realtime"
)

func TestOriginAllowed(t *testing.T) {
	tests := []struct {
		origin    string
		clientURL string
		want      bool
	}{
		{"", "http://localhost:3000", true}, // non-browser client
		{"http://localhost:3000", "http://localhost:3000", true},
		{"http://localhost:3000/", "http://localhost:3000", true},
		{"HTTP://LOCALHOST:3000", "http://localhost:3000", true},
		{"http://evil.example", "http://localhost:3000", false},
		{"http://localhost:3001", "http://localhost:3000", false},
	}
	for _, tc := range tests {
		if got := originAllowed(tc.origin, tc.clientURL); got != tc.want {
			t.Fatalf("originAllowed(%q, %q) = %v, want %v", tc.origin, tc.clientURL, got, tc.want)
		}
	}
}

func TestAlertsWSRejectsForeignOrigin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := realtime.NewHub()
	go hub.Run()

	r := gin.New()
	r.GET("/ws", AlertsWS(hub, "http://localhost:3000"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	req.Header.Set("Connection", "Upgrade")
	req.Header.Set("Upgrade", "websocket")
	req.Header.Set("Sec-WebSocket-Version", "13")
	req.Header.Set("Sec-WebSocket-Key", "dGhlIHNhbXBsZSBub25jZQ==")
	req.Header.Set("Origin", "http://evil.example")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for foreign origin, got %d", w.Code)
	}
}

package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/ashmitmorwal3/neighbourtalk/internal/realtime"
)

// originAllowed accepts browser connections from the configured client URL
// only. Non-browser clients send no Origin header and are let through.
func originAllowed(origin, clientURL string) bool {
	if strings.TrimSpace(origin) == "" {
		return true
	}
	return strings.EqualFold(
		strings.TrimRight(origin, "/"),
		strings.TrimRight(clientURL, "/"),
	)
}

// GET /ws
func AlertsWS(hub *realtime.Hub, clientURL string) gin.HandlerFunc {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return originAllowed(r.Header.Get("Origin"), clientURL)
		},
	}

	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Println("[WS] [ERROR] upgrade failed:", err)
			return
		}

		client := realtime.NewClient(hub, conn)
		hub.Register(client)

		go client.WritePump()
		go client.ReadPump()
	}
}

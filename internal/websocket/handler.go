package websocket

import (
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
)

// HandleWebSocket upgrades the request and runs the client until it
// disconnects.
func HandleWebSocket(hub *Hub, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			logger.Warn("websocket accept failed", "error", err)
			return
		}

		client := NewClient(hub, conn)
		hub.Register(client)

		logger.Debug("websocket client connected", "clients", hub.ClientCount())
		client.Run(r.Context())
		logger.Debug("websocket client disconnected", "clients", hub.ClientCount())
	}
}

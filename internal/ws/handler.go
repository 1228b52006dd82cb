package ws

import (
	"log/slog"
	"net/http"

	"github.com/coder/websocket"

	"github.com/dukerupert/chorequest/internal/auth"
)

// Handler upgrades an authenticated request to a WebSocket and runs it as
// a hub client scoped to the session user's family.
func Handler(hub *Hub, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := auth.FromContext(r.Context())
		if !ok {
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}

		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			logger.Warn("websocket accept", "error", err)
			return
		}

		client := NewClient(hub, conn, id.FamilyID)
		client.Run(r.Context())
	}
}

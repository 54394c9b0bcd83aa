package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	gws "github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/warpmint/framepay/internal/server/websocket"
	"github.com/warpmint/framepay/pkg/config"
)

// StatusWSHandler upgrades /status to a websocket that streams session
// status updates. An optional tx_hash query parameter narrows the stream
// to one payment transaction.
type StatusWSHandler struct {
	hub      *websocket.WsHub
	upgrader gws.Upgrader
	logger   zerolog.Logger
}

func NewStatusWSHandler(hub *websocket.WsHub, cfg config.WebSocketConfig, logger zerolog.Logger) *StatusWSHandler {
	return &StatusWSHandler{
		hub: hub,
		upgrader: gws.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin: func(r *http.Request) bool {
				return !cfg.CheckOrigin || r.Header.Get("Origin") == ""
			},
		},
		logger: logger,
	}
}

func (h *StatusWSHandler) HandleConnection(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already answered the client with a handshake error.
		h.logger.Err(err).Msg("Failed to upgrade to WebSocket")
		return
	}

	client := &websocket.WsClient{
		ID:     uuid.New().String(),
		TxHash: c.Query("tx_hash"),
		Conn:   conn,
	}
	h.hub.Register <- client

	go func() {
		defer func() {
			h.hub.Unregister <- client
		}()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.logger.Debug().
					Err(err).
					Str("client_id", client.ID).
					Msg("WebSocket read loop ended")
				break
			}
		}
	}()
}

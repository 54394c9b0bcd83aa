package websocket

import (
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/warpmint/framepay/internal/domain"
)

// WsHub fans session status updates out to connected clients. Frames are
// public, so clients register without authentication; a client that asked
// for a specific transaction hash only receives updates for it.
type WsHub struct {
	Clients    map[*WsClient]bool
	Broadcast  chan domain.SessionStatusUpdate
	Register   chan *WsClient
	Unregister chan *WsClient
	Logger     zerolog.Logger
}

type WsClient struct {
	ID string
	// TxHash filters updates; empty means all.
	TxHash string
	Conn   *websocket.Conn
}

func NewWsHub(logger zerolog.Logger) *WsHub {
	return &WsHub{
		Clients:    make(map[*WsClient]bool),
		Broadcast:  make(chan domain.SessionStatusUpdate, 100),
		Register:   make(chan *WsClient, 100),
		Unregister: make(chan *WsClient, 100),
		Logger:     logger,
	}
}

func (h *WsHub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.Clients[client] = true
			h.Logger.Info().
				Str("client_id", client.ID).
				Str("tx_hash", client.TxHash).
				Int("connection_count", len(h.Clients)).
				Msg("WebSocket client registered")

		case client := <-h.Unregister:
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				client.Conn.Close()
				h.Logger.Info().
					Str("client_id", client.ID).
					Int("connection_count", len(h.Clients)).
					Msg("WebSocket client unregistered")
			}

		case update := <-h.Broadcast:
			h.Logger.Info().
				Str("session_id", update.SessionID).
				Str("tx_hash", update.PaymentTransactionHash).
				Str("status", string(update.Status)).
				Msg("Broadcasting session status update")

			for client := range h.Clients {
				if client.TxHash != "" && client.TxHash != update.PaymentTransactionHash {
					continue
				}
				if err := client.Conn.WriteJSON(update); err != nil {
					h.Logger.Err(err).
						Str("client_id", client.ID).
						Str("session_id", update.SessionID).
						Msg("Failed to send WebSocket message")
					client.Conn.Close()
					delete(h.Clients, client)
				}
			}
		}
	}
}

// BroadcastSessionStatus implements interfaces.StatusBroadcaster.
func (h *WsHub) BroadcastSessionStatus(update domain.SessionStatusUpdate) {
	h.Broadcast <- update
}

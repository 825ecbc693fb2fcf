package handlers

import (
	"github.com/ManifoldAI-Apps/triuno-app/internal/feed"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

type FeedHandler struct {
	hub *feed.Hub
}

func NewFeedHandler(hub *feed.Hub) *FeedHandler {
	return &FeedHandler{hub: hub}
}

// Upgrade gates the websocket handshake; non-websocket requests get 426.
func (h *FeedHandler) Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Stream pushes feed events to the connected client until it hangs up.
// Reads are drained only to detect the close frame.
func (h *FeedHandler) Stream() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		client := h.hub.Subscribe()
		defer h.hub.Unsubscribe(client)

		closed := make(chan struct{})
		go func() {
			defer close(closed)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case payload, ok := <-client.Send:
				if !ok {
					conn.WriteMessage(websocket.CloseMessage, nil)
					return
				}
				if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
					return
				}
			case <-closed:
				return
			}
		}
	})
}

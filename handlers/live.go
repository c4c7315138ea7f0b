// handlers/live.go - WebSocket room status stream
package handlers

import (
	"log"
	"time"

	"liverooms/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

var statusFeed *services.StatusFeed

// InitLiveHandlers wires the shared status feed into this package.
func InitLiveHandlers(feed *services.StatusFeed) {
	statusFeed = feed
}

// WebSocketUpgrade rejects non-websocket requests before the upgrade handler
// runs.
func WebSocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// RoomStatusStream pushes room status and interest count updates to the
// client until it disconnects.
// GET /ws/rooms/:key
func RoomStatusStream(c *websocket.Conn) {
	roomKey := c.Params("key")
	if roomKey == "" || statusFeed == nil {
		c.Close()
		return
	}

	// Send the current state first so clients don't wait for the next change.
	if roomService != nil {
		if room, err := roomService.GetRoomByKey(roomKey); err == nil {
			initial := services.RoomEvent{
				RoomKey:              room.RoomKey,
				Status:               room.Status,
				CurrentInterestCount: room.CurrentInterestCount,
				InterestThreshold:    room.InterestThreshold,
			}
			if err := c.WriteJSON(initial); err != nil {
				c.Close()
				return
			}
		}
	}

	events := statusFeed.Subscribe(roomKey)
	defer statusFeed.Unsubscribe(roomKey, events)

	// Reader goroutine: we never expect client messages, but reading is the
	// only way to notice a closed connection.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(30 * time.Second)
	defer ping.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			if err := c.WriteJSON(event); err != nil {
				log.Printf("ws write failed for room %s: %v", roomKey, err)
				return
			}
		case <-ping.C:
			if err := c.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

package websocket

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs registers a staff connection and blocks until it closes.
func ServeWs(hub *Hub, c *websocket.Conn, staffID uuid.UUID) {
	client := &Client{Hub: hub, Conn: c, StaffID: staffID, Send: make(chan []byte, 256)}
	client.Hub.register <- client

	go client.writePump()
	client.readPump()
}

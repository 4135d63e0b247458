package realtime

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// inboundPayload is what clients send. join_trip_room is the only action.
type inboundPayload struct {
	Action string `json:"action"`
	TripID string `json:"trip_id"`
}

// WebSocketHandler upgrades the connection and waits for a join_trip_room
// message naming the trip. Room join is unauthenticated: trip ids double as
// shareable links.
func WebSocketHandler(hub *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade:", err)
			return
		}

		client := &Client{
			Conn: conn,
			Send: make(chan []byte, 256),
		}

		go writePump(client)
		go readPump(client, hub)
	}
}

func writePump(c *Client) {
	defer c.Conn.Close()
	for msg := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

func readPump(c *Client, hub *Hub) {
	defer func() {
		if c.Room != "" {
			hub.remove(c)
		}
		c.Conn.Close()
	}()

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			break
		}

		var in inboundPayload
		if err := json.Unmarshal(raw, &in); err != nil {
			log.Println("invalid payload:", err)
			continue
		}

		switch in.Action {
		case "join_trip_room":
			if in.TripID == "" || c.Room != "" {
				continue
			}
			c.Room = in.TripID
			hub.add(c)
			log.Printf("client joined room: %s", c.Room)

		default:
			log.Println("unknown action:", in.Action)
		}
	}
}

package ws

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/MortiPrime/rent-a-waifu-online-sub000/config"
	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type chatMessage struct {
	Type string `json:"type"`
	From string `json:"from,omitempty"`
	Text string `json:"text"`
}

// UpgradeChatWS upgrades the connection for the chat channel. Message
// generation is out of scope; the companion side is a canned responder that
// acknowledges each client message. Token arrives as a query param because
// browsers cannot set headers on WebSocket dials.
func UpgradeChatWS(cfg *config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		token := c.Query("token")
		if token == "" {
			conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"token required"}`))
			return
		}
		if _, err := auth.ParseAccessToken(cfg, token); err != nil {
			conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"invalid token"}`))
			return
		}

		conn.SetReadDeadline(time.Now().Add(5 * time.Minute))
		for {
			_, raw, err := conn.ReadMessage()
			if err != nil {
				return
			}
			conn.SetReadDeadline(time.Now().Add(5 * time.Minute))
			var in chatMessage
			if err := json.Unmarshal(raw, &in); err != nil || in.Text == "" {
				continue
			}
			reply, _ := json.Marshal(chatMessage{
				Type: "message",
				From: "companion",
				Text: "Thanks for your message! I'll get back to you soon.",
			})
			if err := conn.WriteMessage(websocket.TextMessage, reply); err != nil {
				return
			}
		}
	}
}

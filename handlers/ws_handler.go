package handlers

import (
	"log"
	"net/http"

	"github.com/Salman534-web/WooCommerce-Enhancements/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ServeWs 页面带着 session_id 来订阅自己那个倒计时的每秒推送
func ServeWs(hub *services.Hub, c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(400, gin.H{"error": "缺少 session_id"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("Upgrade Error:", err)
		return
	}

	client := &services.Client{Hub: hub, Conn: conn, SessionID: sessionID, Send: make(chan []byte, 256)}
	client.Hub.Register <- client

	// 启动读写协程
	go client.WritePump()
	go client.ReadPump()
}

package services

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/Salman534-web/WooCommerce-Enhancements/models"

	"github.com/gorilla/websocket"
)

// Client 是连接与 Hub 之间的桥梁，每个连接订阅一个倒计时会话
type Client struct {
	Hub       *Hub
	Conn      *websocket.Conn
	SessionID string
	Send      chan []byte // 每个客户端独立的待发送消息队列
}

type sessionMessage struct {
	sessionID string
	payload   []byte
}

// Hub 负责维护所有活跃客户端，并把消息按会话分发
type Hub struct {
	Clients    map[*Client]bool
	broadcast  chan sessionMessage // 待分发的消息管道
	Register   chan *Client        // 注册请求管道
	Unregister chan *Client        // 注销请求管道
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan sessionMessage),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Clients:    make(map[*Client]bool),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.Clients[client] = true
			log.Printf("📱 新客户端已连接 [会话:%s]", client.SessionID)
		case client := <-h.Unregister:
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				close(client.Send)
				log.Println("👋 客户端已断开")
			}
		case message := <-h.broadcast:
			// 只发给订阅了该会话的客户端，不阻塞分发管道
			for client := range h.Clients {
				if client.SessionID != message.sessionID {
					continue
				}
				select {
				case client.Send <- message.payload:
				default:
					close(client.Send)
					delete(h.Clients, client)
				}
			}
		}
	}
}

// BroadcastToSession 把信封发给某个倒计时会话的所有订阅者
func (h *Hub) BroadcastToSession(sessionID string, payload models.WSMessage) {
	message, _ := json.Marshal(payload)
	h.broadcast <- sessionMessage{sessionID: sessionID, payload: message}
}

// --- Client 相关方法 ---

func (c *Client) ReadPump() {
	defer func() {
		c.Hub.Unregister <- c
		c.Conn.Close()
	}()
	// 此处主要用于监听心跳或客户端主动关闭信号
	for {
		_, _, err := c.Conn.ReadMessage()
		if err != nil {
			break
		}
	}
}

func (c *Client) WritePump() {
	defer func() {
		c.Conn.Close()
	}()
	for message := range c.Send {
		c.Conn.WriteMessage(websocket.TextMessage, message)
	}
	c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}

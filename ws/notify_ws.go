package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/alexkanav/cafe-ordering-system/entity"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// NotifyHub กระจาย AdminNotification ใหม่ให้ staff ทุกคนที่ต่อ WS ค้างไว้
// ไม่มีห้องแยก — staff ทุก connection คือ audience เดียวกัน
type NotifyHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan *entity.AdminNotification
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

func NewNotifyHub() *NotifyHub {
	return &NotifyHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan *entity.AdminNotification),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

// คอยฟัง register/unregister/broadcast ตลอดเวลา
func (h *NotifyHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case n := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(n); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Push ให้ NotificationService เรียกตอนสร้าง notification ใหม่
func (h *NotifyHub) Push(n *entity.AdminNotification) {
	h.broadcast <- n
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/admin/notifications (ผ่าน WSAuthMiddleware role staff มาแล้ว)
func (h *NotifyHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	h.register <- conn

	go h.listen(conn)
}

// listen อ่านทิ้งจนกว่าฝั่ง client จะตัด — feed นี้เป็นขาออกอย่างเดียว
func (h *NotifyHub) listen(conn *websocket.Conn) {
	defer func() { h.unregister <- conn }()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

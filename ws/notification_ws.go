package ws

import (
	"log"
	"net/http"
	"sync"

	"storefront/entity"
	"storefront/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// NotificationHub fans order-status notifications out to a user's live
// connections. Clients without an open socket fall back to polling
// GET /notifications.
type NotificationHub struct {
	clients    map[uint]map[*websocket.Conn]bool // userID -> set of connections
	broadcast  chan pushMessage
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
}

type subscription struct {
	Conn   *websocket.Conn
	UserID uint
}

type pushMessage struct {
	UserID       uint
	Notification *entity.Notification
}

func NewNotificationHub() *NotificationHub {
	return &NotificationHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan pushMessage),
		register:   make(chan subscription),
		unregister: make(chan subscription),
	}
}

func (h *NotificationHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.UserID] == nil {
				h.clients[sub.UserID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.UserID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.UserID][sub.Conn]; ok {
				delete(h.clients[sub.UserID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[msg.UserID] {
				if err := conn.WriteJSON(msg.Notification); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[msg.UserID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Push implements services.Pusher. Non-blocking callers: the hub goroutine
// does the delivery.
func (h *NotificationHub) Push(userID uint, n *entity.Notification) {
	h.broadcast <- pushMessage{UserID: userID, Notification: n}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/notifications (auth middleware runs first)
func (h *NotificationHub) HandleWebSocket(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{Conn: conn, UserID: userID}
	h.register <- sub

	// the socket is push-only; the read loop just detects disconnects
	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

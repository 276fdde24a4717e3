package admin

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.mongodb.org/mongo-driver/bson"

	"banhmai_back_end/internal/database"
	"banhmai_back_end/internal/events"
	"banhmai_back_end/internal/orders"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type pendingSnapshot struct {
	PendingOrders int64 `json:"pending_orders"`
}

//
// 📡 GET /api/admin/orders/feed — websocket pushing the pending-order count.
// The count is a read-only, eventually-consistent snapshot: a fresh value is
// sent on connect and after every published order change.
//
func OrderFeed(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("❌ websocket upgrade failed:", err)
		return
	}
	defer conn.Close()

	ch, cancel := Bus.Subscribe(events.OrdersChanged)
	defer cancel()

	// Drain client frames so pings and the close handshake are processed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := sendPendingCount(c, conn); err != nil {
		return
	}

	for {
		select {
		case <-done:
			return
		case <-c.Request.Context().Done():
			return
		case _, ok := <-ch:
			if !ok {
				return
			}
			if err := sendPendingCount(c, conn); err != nil {
				return
			}
		}
	}
}

func sendPendingCount(c *gin.Context, conn *websocket.Conn) error {
	n, err := database.Orders().CountDocuments(c.Request.Context(),
		bson.M{"status": string(orders.StatusPending)})
	if err != nil {
		log.Println("⚠️ pending count failed:", err)
		return err
	}
	return conn.WriteJSON(pendingSnapshot{PendingOrders: n})
}

// order_websocket.go
package orderControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/Dhanasriganesh/powder/models"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	wsMu      sync.Mutex
	wsClients = make(map[*websocket.Conn]bool)
)

func addFeedClient(conn *websocket.Conn) {
	wsMu.Lock()
	wsClients[conn] = true
	wsMu.Unlock()
}

func removeFeedClient(conn *websocket.Conn) {
	wsMu.Lock()
	delete(wsClients, conn)
	wsMu.Unlock()
}

// Live feed for the admin dashboard: every recorded order is pushed to
// connected clients.
func OrderFeedHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()
	addFeedClient(conn)

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			removeFeedClient(conn)
			break
		}
	}
}

// BroadcastOrder pushes a freshly persisted order to every feed client.
// Runs on the request goroutine that recorded the order, so the client
// set and the conn writes are guarded by wsMu.
func BroadcastOrder(order models.Order) {
	data, err := json.Marshal(order)
	if err != nil {
		return
	}
	wsMu.Lock()
	defer wsMu.Unlock()
	for client := range wsClients {
		client.WriteMessage(websocket.TextMessage, data)
	}
}

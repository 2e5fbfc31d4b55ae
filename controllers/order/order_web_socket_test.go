package orderControllers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Dhanasriganesh/powder/models"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFeedServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws", OrderFeedHandler)
	srv := httptest.NewServer(r)
	return srv, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func feedClientCount() int {
	wsMu.Lock()
	defer wsMu.Unlock()
	return len(wsClients)
}

func TestOrderFeedReceivesBroadcast(t *testing.T) {
	srv, url := newFeedServer(t)
	defer srv.Close()

	before := feedClientCount()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	// The handler registers the client on its own goroutine after the
	// handshake, so wait for it before broadcasting.
	require.Eventually(t, func() bool {
		return feedClientCount() > before
	}, time.Second, 5*time.Millisecond)

	BroadcastOrder(models.Order{OrderRef: "1700000000-feed", Status: models.OrderStatusPending})

	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var got models.Order
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "1700000000-feed", got.OrderRef)
}

func TestBroadcastOrderDuringClientChurn(t *testing.T) {
	srv, url := newFeedServer(t)
	defer srv.Close()

	done := make(chan struct{})
	var broadcasts sync.WaitGroup
	broadcasts.Add(1)
	go func() {
		defer broadcasts.Done()
		for {
			select {
			case <-done:
				return
			default:
				BroadcastOrder(models.Order{OrderRef: "order_1"})
			}
		}
	}()

	var churn sync.WaitGroup
	for i := 0; i < 8; i++ {
		churn.Add(1)
		go func() {
			defer churn.Done()
			conn, _, err := websocket.DefaultDialer.Dial(url, nil)
			if err != nil {
				return
			}
			conn.ReadMessage()
			conn.Close()
		}()
	}
	churn.Wait()

	close(done)
	broadcasts.Wait()
}

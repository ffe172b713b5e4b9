package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kahvecikaan/product-registry/internal/events"
)

func TestHandleWebSocket_StreamsProductAdded(t *testing.T) {
	bus := events.NewEventBus[any]()
	h := NewHandler(hclog.NewNullLogger(), bus)

	srv := httptest.NewServer(http.HandlerFunc(h.HandleWebSocket))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return bus.Subscribers() == 1 }, time.Second, 10*time.Millisecond)

	bus.Publish("ignored")
	bus.Publish(events.ProductAdded{ProductID: 1, Name: "상품명", Price: 1000, DiscountPolicy: "NONE"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg struct {
		EventType string              `json:"event-type"`
		Data      events.ProductAdded `json:"data"`
	}
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "product_added", msg.EventType)
	assert.Equal(t, "상품명", msg.Data.Name)
}

package realtime

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

func dialHub(t *testing.T, hub *Hub, userID, role, token string) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.ServeWS(w, r, userID, role, token)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitConnected(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if len(hub.Connected()) == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("connected count never reached %d", want)
}

func TestSendToUser(t *testing.T) {
	hub := NewHub(zap.NewNop())
	defer hub.Close()

	conn := dialHub(t, hub, "u1", "parent", "tok-1")
	waitConnected(t, hub, 1)

	subs := hub.Connected()
	if subs[0].UserID != "u1" || subs[0].Role != "parent" || subs[0].Token != "tok-1" {
		t.Fatalf("subscriber = %+v", subs[0])
	}

	if ok := hub.SendToUser("u1", map[string]string{"type": "refresh"}); !ok {
		t.Fatal("send to connected user must succeed")
	}
	conn.SetReadDeadline(time.Now().Add(time.Second))
	var payload map[string]string
	if err := conn.ReadJSON(&payload); err != nil {
		t.Fatalf("client read failed: %v", err)
	}
	if payload["type"] != "refresh" {
		t.Fatalf("payload = %v", payload)
	}

	if ok := hub.SendToUser("nobody", "x"); ok {
		t.Fatal("send to unknown user must report false")
	}
}

func TestClientDisconnectUnregisters(t *testing.T) {
	hub := NewHub(zap.NewNop())
	defer hub.Close()

	conn := dialHub(t, hub, "u1", "parent", "tok-1")
	waitConnected(t, hub, 1)

	conn.Close()
	waitConnected(t, hub, 0)

	if ok := hub.SendToUser("u1", "x"); ok {
		t.Fatal("send after disconnect must report false")
	}
}

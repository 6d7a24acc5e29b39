package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)
	return hub
}

func TestTopic(t *testing.T) {
	t.Parallel()

	if got := Topic("batch", 3); got != "batch:3" {
		t.Fatalf("Topic() = %q, want batch:3", got)
	}
}

func TestListenerReceivesPublished(t *testing.T) {
	t.Parallel()

	hub := startHub(t)
	ch := make(chan *Notification, 1)
	hub.AddListener(ch)

	hub.Publish(&Notification{Type: "message.created", Topic: "student:1", Data: map[string]int{"id": 1}})

	select {
	case n := <-ch:
		if n.Topic != "student:1" || n.Timestamp.IsZero() {
			t.Fatalf("notification = %+v", n)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("listener did not receive notification")
	}

	hub.RemoveListener(ch)
	hub.Publish(&Notification{Topic: "student:1"})
	select {
	case n := <-ch:
		t.Fatalf("removed listener received %+v", n)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSubscriberReceivesOnlyItsTopic(t *testing.T) {
	t.Parallel()

	hub := startHub(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := ServeWS(hub, w, r, r.URL.Query().Get("topic"), zerolog.Nop()); err != nil {
			t.Errorf("ServeWS: %v", err)
		}
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/?topic=batch:3"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientsCount("batch:3") == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	hub.Publish(&Notification{Type: "message.created", Topic: "batch:4", Data: "other"})
	hub.Publish(&Notification{Type: "message.created", Topic: "batch:3", Data: "mine"})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var got Notification
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal %q: %v", raw, err)
	}
	if got.Topic != "batch:3" || got.Data != "mine" {
		t.Fatalf("notification = %+v, want batch:3/mine", got)
	}
}

func TestPublishAfterStopDoesNotBlock(t *testing.T) {
	t.Parallel()

	hub := NewHub(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()
	cancel()
	<-stopped

	done := make(chan struct{})
	go func() {
		for i := 0; i < 300; i++ {
			hub.Publish(&Notification{Topic: "x:1"})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked after hub stopped")
	}
}

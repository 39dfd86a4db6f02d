package pusher_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/htmlpg/pvfll-portal/internal/domains/pusher"
	"github.com/htmlpg/pvfll-portal/internal/errs"
)

type frame struct {
	Event   string          `json:"event"`
	Channel string          `json:"channel,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// fakePusher runs script against each accepted websocket connection.
func fakePusher(t *testing.T, script func(conn *websocket.Conn)) string {
	t.Helper()

	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/app/key") {
			http.NotFound(w, r)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		script(conn)
	}))
	t.Cleanup(server.Close)

	return "ws://" + strings.TrimPrefix(server.URL, "http://")
}

func sendFrame(conn *websocket.Conn, f frame) error {
	return conn.WriteJSON(f)
}

func readFrame(conn *websocket.Conn) (f frame, err error) {
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	err = conn.ReadJSON(&f)
	return f, err
}

// drain reads until the client goes away.
func drain(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func TestService_Connect(t *testing.T) {
	var (
		subscribed = make(chan string, 1)
		ponged     = make(chan struct{}, 1)
	)

	host := fakePusher(t, func(conn *websocket.Conn) {
		if err := sendFrame(conn, frame{
			Event: "pusher:connection_established",
			Data:  json.RawMessage(`"{\"socket_id\":\"1.2\",\"activity_timeout\":120}"`),
		}); err != nil {
			return
		}

		sub, err := readFrame(conn)
		if err != nil || sub.Event != "pusher:subscribe" {
			return
		}
		var data struct {
			Channel string `json:"channel"`
		}
		_ = json.Unmarshal(sub.Data, &data)
		subscribed <- data.Channel

		_ = sendFrame(conn, frame{Event: "pusher_internal:subscription_succeeded", Channel: "garden", Data: json.RawMessage(`"{}"`)})
		_ = sendFrame(conn, frame{Event: "pusher:ping", Data: json.RawMessage(`{}`)})
		pong, err := readFrame(conn)
		if err == nil && pong.Event == "pusher:pong" {
			ponged <- struct{}{}
		}

		_ = sendFrame(conn, frame{Event: "file-uploaded", Channel: "other", Data: json.RawMessage(`"{\"boxNumber\":1}"`)})
		_ = sendFrame(conn, frame{Event: "file-uploaded", Channel: "garden", Data: json.RawMessage(`"{\"boxNumber\":0}"`)})
		_ = sendFrame(conn, frame{Event: "file-uploaded", Channel: "garden", Data: json.RawMessage(`"{\"boxNumber\":\" 3 \"}"`)})
		_ = sendFrame(conn, frame{Event: "file-deleted", Channel: "garden", Data: json.RawMessage(`{"boxNumber":2}`)})

		drain(conn)
	})

	s := pusher.NewService("key", "us2", "garden", host)
	require.NoError(t, s.Connect(context.Background()))
	defer s.Disconnect()

	assert.True(t, s.IsConnected())
	assert.Equal(t, "garden", <-subscribed)

	select {
	case <-ponged:
	case <-time.After(5 * time.Second):
		t.Fatal("pong not received")
	}

	for _, want := range []int{3, 2} {
		select {
		case got := <-s.Updates():
			assert.Equal(t, want, got)
		case <-time.After(5 * time.Second):
			t.Fatalf("update %d not received", want)
		}
	}

	s.Disconnect()
	assert.False(t, s.IsConnected())
}

func TestService_ConnectPusherError(t *testing.T) {
	host := fakePusher(t, func(conn *websocket.Conn) {
		_ = sendFrame(conn, frame{
			Event: "pusher:error",
			Data:  json.RawMessage(`{"message":"App key not in this cluster","code":4001}`),
		})
		drain(conn)
	})

	s := pusher.NewService("key", "us2", "garden", host)
	err := s.Connect(context.Background())
	require.ErrorIs(t, err, errs.ErrPusherConnect)
	assert.Contains(t, err.Error(), "4001")
	assert.False(t, s.IsConnected())
}

func TestService_ConnectionLost(t *testing.T) {
	host := fakePusher(t, func(conn *websocket.Conn) {
		_ = sendFrame(conn, frame{Event: "pusher:connection_established", Data: json.RawMessage(`"{}"`)})
		_, _ = readFrame(conn)
	})

	s := pusher.NewService("key", "us2", "garden", host)
	require.NoError(t, s.Connect(context.Background()))
	defer s.Disconnect()

	assert.Eventually(t, func() bool {
		return !s.IsConnected()
	}, 5*time.Second, 10*time.Millisecond)
}

func TestService_PingWhenQuiet(t *testing.T) {
	pinged := make(chan struct{}, 1)
	host := fakePusher(t, func(conn *websocket.Conn) {
		_ = sendFrame(conn, frame{Event: "pusher:connection_established", Data: json.RawMessage(`"{}"`)})
		_, _ = readFrame(conn)

		f, err := readFrame(conn)
		if err == nil && f.Event == "pusher:ping" {
			pinged <- struct{}{}
		}
		drain(conn)
	})

	s := pusher.NewService("key", "us2", "garden", host)
	s.SetActivityTimeout(50*time.Millisecond, time.Second)
	require.NoError(t, s.Connect(context.Background()))
	defer s.Disconnect()

	select {
	case <-pinged:
	case <-time.After(5 * time.Second):
		t.Fatal("ping not sent")
	}
}

func TestService_ConnectNotConfigured(t *testing.T) {
	s := pusher.NewService("", "us2", "garden", "")
	require.ErrorIs(t, s.Connect(context.Background()), errs.ErrPusherNotConfigured)
}

func TestService_ConnectRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	host := "ws://" + strings.TrimPrefix(server.URL, "http://")
	server.Close()

	s := pusher.NewService("key", "us2", "garden", host)
	require.ErrorIs(t, s.Connect(context.Background()), errs.ErrPusherConnect)
}

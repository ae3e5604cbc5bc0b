package network

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cbodonnell/hanabi/pkg/game/constants"
	"github.com/cbodonnell/hanabi/pkg/messages"
	"github.com/cbodonnell/hanabi/pkg/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nhooyr.io/websocket"
)

// echoServer decodes every client message onto received and answers each
// one with a warning.
func echoServer(t *testing.T, received chan<- *messages.Message) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "")

		ctx := r.Context()
		for {
			_, b, err := conn.Read(ctx)
			if err != nil {
				return
			}
			msg, err := messages.DeserializeMessage(b)
			if err != nil {
				return
			}
			received <- msg

			reply, err := messages.NewMessage(0, messages.MessageTypeServerWarning, messages.ServerWarning{Warning: "not your turn"})
			if err != nil {
				return
			}
			out, err := messages.SerializeMessage(reply)
			if err != nil {
				return
			}
			if err := conn.Write(ctx, websocket.MessageBinary, out); err != nil {
				return
			}
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func wsURL(server *httptest.Server) string {
	return "ws" + strings.TrimPrefix(server.URL, "http")
}

func TestWSClient_SendAndReceive(t *testing.T) {
	received := make(chan *messages.Message, 1)
	server := echoServer(t, received)
	inbound := queue.NewInMemoryQueue[*messages.Message](4)

	client := NewWSClient(NewWSClientOptions{
		ServerURL: wsURL(server),
		ClientID:  7,
		Inbound:   inbound,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, client.Connect(ctx))

	runErr := make(chan error, 1)
	go func() { runErr <- client.Run(ctx) }()

	client.Send(messages.MessageTypeClientAction, messages.ClientAction{Type: constants.ActionTypePlay, Target: 3})

	select {
	case msg := <-received:
		assert.Equal(t, uint32(7), msg.ClientID)
		assert.Equal(t, messages.MessageTypeClientAction, msg.Type)
		action := messages.ClientAction{}
		require.NoError(t, json.Unmarshal(msg.Payload, &action))
		assert.Equal(t, messages.ClientAction{Type: constants.ActionTypePlay, Target: 3}, action)
	case <-ctx.Done():
		t.Fatal("server did not receive the message")
	}

	select {
	case msg := <-inbound.C():
		assert.Equal(t, messages.MessageTypeServerWarning, msg.Type)
	case <-ctx.Done():
		t.Fatal("client did not receive the warning")
	}

	cancel()
	assert.NoError(t, <-runErr)
}

func TestWSClient_SendDropsWhenFull(t *testing.T) {
	client := NewWSClient(NewWSClientOptions{ServerURL: "ws://localhost:0", OutboundQueueSize: 1})

	client.Send(messages.MessageTypeClientPing, nil)
	client.Send(messages.MessageTypeClientPing, nil)
	assert.Equal(t, 1, client.outbound.Size())

	assert.NoError(t, client.Close())
	assert.Equal(t, 0, client.outbound.Size())
	assert.NotPanics(t, func() { client.Send(messages.MessageTypeClientPing, nil) })
	assert.Equal(t, 0, client.outbound.Size())
}

func TestWSClient_RunWithoutConnect(t *testing.T) {
	client := NewWSClient(NewWSClientOptions{ServerURL: "ws://localhost:0"})
	err := client.Run(context.Background())
	assert.True(t, errors.Is(err, ErrNotConnected))
}

func TestWSClient_serverClose(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		conn.Close(websocket.StatusGoingAway, "shutting down")
	}))
	defer server.Close()

	client := NewWSClient(NewWSClientOptions{ServerURL: wsURL(server)})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, client.Connect(ctx))

	err := client.Run(ctx)
	var closed *ErrConnectionClosedByServer
	require.ErrorAs(t, err, &closed)
	assert.Equal(t, "shutting down", closed.Reason)
}

func TestWSClient_ConnectFails(t *testing.T) {
	client := NewWSClient(NewWSClientOptions{ServerURL: "ws://127.0.0.1:1"})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.Error(t, client.Connect(ctx))
}

package network

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cbodonnell/hanabi/pkg/log"
	"github.com/cbodonnell/hanabi/pkg/messages"
	"github.com/cbodonnell/hanabi/pkg/queue"
	"nhooyr.io/websocket"
)

const (
	DefaultOutboundQueueSize = 64
	DefaultWriteTimeout      = 5 * time.Second
)

// WSClient sends table actions to the server over a websocket.
// Send never blocks: messages are queued and written by a single goroutine.
type WSClient struct {
	serverURL    string
	clientID     uint32
	compress     bool
	pingInterval time.Duration
	writeTimeout time.Duration

	outbound queue.Queue[*messages.Message]
	inbound  queue.Queue[*messages.Message]

	connLock sync.Mutex
	conn     *websocket.Conn
	rtts     rttTracker
}

type NewWSClientOptions struct {
	// ServerURL is a ws:// or wss:// URL.
	ServerURL string
	ClientID  uint32
	// OutboundQueueSize bounds the messages waiting to be written.
	OutboundQueueSize int
	// Inbound receives every message from the server. Nil drops them after logging.
	Inbound queue.Queue[*messages.Message]
	// Compress negotiates per-message deflate.
	Compress bool
	// PingInterval enables keepalive pings. Zero disables them.
	PingInterval time.Duration
	WriteTimeout time.Duration
}

func NewWSClient(opts NewWSClientOptions) *WSClient {
	size := opts.OutboundQueueSize
	if size <= 0 {
		size = DefaultOutboundQueueSize
	}
	writeTimeout := opts.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = DefaultWriteTimeout
	}
	return &WSClient{
		serverURL:    opts.ServerURL,
		clientID:     opts.ClientID,
		compress:     opts.Compress,
		pingInterval: opts.PingInterval,
		writeTimeout: writeTimeout,
		outbound:     queue.NewInMemoryQueue[*messages.Message](size),
		inbound:      opts.Inbound,
	}
}

// Connect dials the server.
func (c *WSClient) Connect(ctx context.Context) error {
	log.Info("Connecting to WebSocket server at %s", c.serverURL)
	compression := websocket.CompressionDisabled
	if c.compress {
		compression = websocket.CompressionContextTakeover
	}
	conn, _, err := websocket.Dial(ctx, c.serverURL, &websocket.DialOptions{
		CompressionMode: compression,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to server: %v", err)
	}

	c.connLock.Lock()
	c.conn = conn
	c.connLock.Unlock()
	return nil
}

// Run writes queued messages and reads server messages until the context is
// cancelled or the connection fails. It closes the connection before returning
// and returns nil only when the context was cancelled.
func (c *WSClient) Run(ctx context.Context) error {
	conn := c.getConn()
	if conn == nil {
		return ErrNotConnected
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errChan := make(chan error, 2)
	go func() { errChan <- c.writeMessages(ctx, conn) }()
	go func() { errChan <- c.readMessages(ctx, conn) }()

	err := <-errChan
	cancel()
	conn.Close(websocket.StatusNormalClosure, "")
	<-errChan
	return err
}

// Send queues a message for the server. A full or closed queue drops the message.
func (c *WSClient) Send(messageType messages.MessageType, payload interface{}) {
	msg, err := messages.NewMessage(c.clientID, messageType, payload)
	if err != nil {
		log.Error("Failed to create %s message: %v", messageType, err)
		return
	}
	if err := c.outbound.TryEnqueue(msg); err != nil {
		log.Warn("Dropping %s message: %v", messageType, err)
		return
	}
	log.Trace("Queued %s message %s", messageType, msg.ID)
}

// Ping returns the smoothed round trip time in milliseconds.
func (c *WSClient) Ping() float64 {
	return c.rtts.ping()
}

// Close stops accepting messages, drops any that were not yet written and
// closes the connection.
func (c *WSClient) Close() error {
	c.outbound.Close()
	if pending := c.outbound.ReadAllMessages(); len(pending) > 0 {
		log.Warn("Dropping %d unsent messages", len(pending))
	}
	conn := c.getConn()
	if conn == nil {
		log.Warn("WebSocket connection is already closed")
		return nil
	}
	c.connLock.Lock()
	c.conn = nil
	c.connLock.Unlock()
	if err := conn.Close(websocket.StatusNormalClosure, ""); err != nil {
		return fmt.Errorf("failed to close websocket: %v", err)
	}
	return nil
}

func (c *WSClient) getConn() *websocket.Conn {
	c.connLock.Lock()
	defer c.connLock.Unlock()
	return c.conn
}

// writeMessages is the only writer on the connection.
func (c *WSClient) writeMessages(ctx context.Context, conn *websocket.Conn) error {
	var pings <-chan time.Time
	if c.pingInterval > 0 {
		ticker := time.NewTicker(c.pingInterval)
		defer ticker.Stop()
		pings = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-c.outbound.C():
			if !ok {
				return &ErrConnectionClosedByClient{}
			}
			if err := c.writeMessage(ctx, conn, msg); err != nil {
				return err
			}
		case <-pings:
			if err := c.ping(ctx, conn); err != nil {
				return err
			}
		}
	}
}

func (c *WSClient) writeMessage(ctx context.Context, conn *websocket.Conn, msg *messages.Message) error {
	b, err := messages.SerializeMessage(msg)
	if err != nil {
		log.Error("Failed to serialize %s message: %v", msg.Type, err)
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.writeTimeout)
	defer cancel()
	if err := conn.Write(ctx, websocket.MessageBinary, b); err != nil {
		return fmt.Errorf("failed to write message to WebSocket connection: %v", err)
	}
	log.Trace("Sent %s message %s", msg.Type, msg.ID)
	return nil
}

func (c *WSClient) ping(ctx context.Context, conn *websocket.Conn) error {
	ctx, cancel := context.WithTimeout(ctx, c.writeTimeout)
	defer cancel()
	start := time.Now()
	if err := conn.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping server: %v", err)
	}
	c.rtts.add(time.Since(start).Milliseconds())
	return nil
}

func (c *WSClient) readMessages(ctx context.Context, conn *websocket.Conn) error {
	for {
		_, b, err := conn.Read(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			var closeErr websocket.CloseError
			if errors.As(err, &closeErr) {
				return &ErrConnectionClosedByServer{Reason: closeErr.Reason}
			}
			return fmt.Errorf("failed to read from WebSocket connection: %v", err)
		}

		if err := c.handleMessage(b); err != nil {
			log.Error("Failed to handle message: %v", err)
		}
	}
}

// handleMessage processes a received message.
func (c *WSClient) handleMessage(b []byte) error {
	msg, err := messages.DeserializeMessage(b)
	if err != nil {
		return fmt.Errorf("failed to deserialize message: %v", err)
	}
	log.Trace("Received message from WebSocket server of type %s", msg.Type)

	switch msg.Type {
	case messages.MessageTypeServerWarning:
		warning := &messages.ServerWarning{}
		if err := json.Unmarshal(msg.Payload, warning); err != nil {
			return fmt.Errorf("failed to deserialize server warning message: %v", err)
		}
		log.Warn("Server warning: %s", warning.Warning)
	case messages.MessageTypeServerPong:
		log.Debug("Received server pong")
		return nil
	}

	if c.inbound == nil {
		return nil
	}
	if err := c.inbound.TryEnqueue(msg); err != nil {
		return fmt.Errorf("failed to enqueue message: %v", err)
	}
	return nil
}

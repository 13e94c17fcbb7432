package ws

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sasha-s/go-deadlock"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// Frame is one outgoing websocket message. Binary frames carry msgpack,
// text frames carry JSON.
type Frame struct {
	Binary bool
	Data   []byte
}

// Client represents a single WebSocket connection.
type Client struct {
	ID   string
	Hub  *Hub
	Conn *websocket.Conn
	Send chan Frame

	mu     deadlock.Mutex
	closed bool
}

// NewClient creates a new Client.
func NewClient(id string, hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		ID:   id,
		Hub:  hub,
		Conn: conn,
		Send: make(chan Frame, 256),
	}
}

// ReadPump pumps text frames from the WebSocket connection to the hub until
// the connection fails or the hub stops. Binary frames are ignored.
func (c *Client) ReadPump() {
	defer func() {
		select {
		case c.Hub.Unregister <- c:
		case <-c.Hub.Done():
		}
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		kind, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Error("websocket read error", "client", c.ID, "error", err)
			}
			return
		}
		if kind != websocket.TextMessage {
			slog.Debug("ignoring non-text frame", "client", c.ID)
			continue
		}
		select {
		case c.Hub.Incoming <- &ClientMessage{Client: c, Data: message}:
		case <-c.Hub.Done():
			return
		}
	}
}

// WritePump pumps messages from the hub to the WebSocket connection.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			kind := websocket.TextMessage
			if frame.Binary {
				kind = websocket.BinaryMessage
			}
			if err := c.Conn.WriteMessage(kind, frame.Data); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// SendMessage sends a JSON Message to this client.
func (c *Client) SendMessage(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("failed to marshal message", "error", err)
		return
	}
	c.enqueue(Frame{Data: data})
}

// SendBinary sends an already encoded binary frame to this client.
func (c *Client) SendBinary(data []byte) {
	c.enqueue(Frame{Binary: true, Data: data})
}

// enqueue drops the frame instead of blocking when the client is slow.
func (c *Client) enqueue(f Frame) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.Send <- f:
	default:
		slog.Warn("client send buffer full, dropping message", "client", c.ID)
	}
}

// close closes Send once. Later sends are ignored.
func (c *Client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.Send)
	}
}

// ClientMessage wraps a raw message with its source client.
type ClientMessage struct {
	Client *Client
	Data   []byte
}

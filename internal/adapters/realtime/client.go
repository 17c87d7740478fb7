package realtime

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	ws "github.com/gorilla/websocket"
	"weathermap.app/internal/ports"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 256
)

var errHubStopped = errors.New("render hub stopped")

var upgrader = ws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Client is one connected viewer page
type Client struct {
	logger ports.Logger
	hub    *Hub
	conn   *ws.Conn
	send   chan []byte
	name   string
}

// NewClient upgrades the request to a websocket and names the client with a
// random UUID
func NewClient(hub *Hub, w http.ResponseWriter, r *http.Request) (*Client, error) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return nil, err
	}

	return &Client{
		logger: hub.logger,
		hub:    hub,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		name:   uuid.NewString(),
	}, nil
}

// Name returns the client identifier
func (c *Client) Name() string {
	return c.name
}

// ReadPump discards inbound frames and keeps the pong deadline fresh. It
// returns when the page goes away.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.remove(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.logger.Warn("Web socket set read deadline failed", ports.F("client", c.name), ports.F("error", err))
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if ws.IsUnexpectedCloseError(err, ws.CloseGoingAway, ws.CloseNormalClosure) {
				c.logger.Debug("Web socket closed unexpectedly", ports.F("client", c.name), ports.F("error", err))
			}
			return
		}
	}
}

// WritePump forwards queued render events to the page and pings it periodically
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		c.hub.remove(c)
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.logger.Warn("Web socket set write deadline failed", ports.F("client", c.name), ports.F("error", err))
				return
			}

			if !ok {
				if err := c.conn.WriteMessage(ws.CloseMessage, []byte{}); err != nil {
					c.logger.Debug("Web socket close message failed", ports.F("client", c.name), ports.F("error", err))
				}
				return
			}

			if err := c.conn.WriteMessage(ws.TextMessage, msg); err != nil {
				c.logger.Warn("Web socket write failed", ports.F("client", c.name), ports.F("error", err))
				return
			}

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.logger.Warn("Web socket set write deadline failed", ports.F("client", c.name), ports.F("error", err))
				return
			}
			if err := c.conn.WriteMessage(ws.PingMessage, nil); err != nil {
				c.logger.Debug("Web socket ping failed", ports.F("client", c.name), ports.F("error", err))
				return
			}
		}
	}
}

// Serve upgrades the request, registers the client and starts its pumps
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request) error {
	client, err := NewClient(h, w, r)
	if err != nil {
		return err
	}
	if err := h.Register(r.Context(), client); err != nil {
		client.conn.Close()
		return err
	}
	go client.WritePump()
	go client.ReadPump()
	return nil
}

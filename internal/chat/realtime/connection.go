package realtime

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"gotravel/internal/chat/models"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxInboundSize = 512
	sendBufferSize = 128
)

var errConnectionClosed = errors.New("connection closed")

// Connection is one WebSocket listener on a room. Outbound writes go through
// a buffered channel drained by a single write loop.
type Connection struct {
	ID        string
	AccountID string
	RoomID    string

	ws    *websocket.Conn
	send  chan []byte
	once  sync.Once
	close chan struct{}
}

func NewConnection(accountID, roomID string, ws *websocket.Conn) *Connection {
	return &Connection{
		ID:        uuid.NewString(),
		AccountID: accountID,
		RoomID:    roomID,
		ws:        ws,
		send:      make(chan []byte, sendBufferSize),
		close:     make(chan struct{}),
	}
}

// Serve subscribes the connection to its room and blocks until the peer goes
// away or notifier is closed. In the latter case the socket is closed with
// CloseGoingAway.
func (c *Connection) Serve(notifier Notifier) {
	unsubscribe := notifier.Subscribe(c.RoomID, c.Deliver)
	defer unsubscribe()

	go func() {
		select {
		case <-notifier.Done():
			c.Close(websocket.CloseGoingAway, "server shutting down")
		case <-c.close:
		}
	}()
	go c.writeLoop()
	c.readLoop()
	c.Close(websocket.CloseNormalClosure, "")
}

// Deliver encodes msg and queues it. A slow client is disconnected rather
// than allowed to hold messages without bound.
func (c *Connection) Deliver(msg *models.Message) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}
	_ = c.Send(payload)
}

func (c *Connection) Send(payload []byte) error {
	select {
	case <-c.close:
		return errConnectionClosed
	default:
	}

	select {
	case <-c.close:
		return errConnectionClosed
	case c.send <- payload:
		return nil
	default:
		c.Close(websocket.CloseGoingAway, "send buffer full")
		return errors.New("connection buffer exceeded")
	}
}

// Close terminates the connection and stops the write loop.
func (c *Connection) Close(code int, reason string) {
	c.once.Do(func() {
		close(c.close)
		_ = c.ws.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason), time.Now().Add(writeWait))
		_ = c.ws.Close()
	})
}

// readLoop only services control frames. Listeners never write chat
// messages over the socket.
func (c *Connection) readLoop() {
	c.ws.SetReadLimit(maxInboundSize)
	_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.ws.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Connection) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-c.close:
			return
		case msg := <-c.send:
			if err := c.write(websocket.TextMessage, msg); err != nil {
				c.Close(websocket.CloseInternalServerErr, "write failed")
				return
			}
		case <-ticker.C:
			if err := c.write(websocket.PingMessage, nil); err != nil {
				c.Close(websocket.CloseInternalServerErr, "ping failed")
				return
			}
		}
	}
}

func (c *Connection) write(messageType int, payload []byte) error {
	if err := c.ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.ws.WriteMessage(messageType, payload)
}

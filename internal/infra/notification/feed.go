package notification

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"equipment-rental/internal/usecase/readmodel"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 4 * 1024
	sendBuffer = 64
)

const EventDispatch = "notification.dispatch"

// FeedEvent is pushed to every connected operator.
type FeedEvent struct {
	Type    string               `json:"type"`
	Payload readmodel.DispatchRM `json:"payload"`
}

type feedClient struct {
	conn *websocket.Conn
	send chan []byte
}

// Feed fans dispatch outcomes out to admin websocket clients. Slow clients
// drop events rather than block the dispatcher.
type Feed struct {
	upgrader websocket.Upgrader
	logger   *slog.Logger

	mu      sync.RWMutex
	clients map[*feedClient]struct{}
}

// NewFeed accepts upgrades only from allowedOrigins; an empty list allows
// same-host requests only (the gorilla default).
func NewFeed(allowedOrigins []string, logger *slog.Logger) *Feed {
	f := &Feed{
		logger:  logger,
		clients: make(map[*feedClient]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	if len(allowedOrigins) > 0 {
		allowed := make(map[string]struct{}, len(allowedOrigins))
		for _, o := range allowedOrigins {
			allowed[o] = struct{}{}
		}
		f.upgrader.CheckOrigin = func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}
			_, ok := allowed[origin]
			return ok
		}
	}
	return f
}

func (f *Feed) Publish(state readmodel.DispatchRM) {
	data, err := json.Marshal(FeedEvent{Type: EventDispatch, Payload: state})
	if err != nil {
		f.logger.Error("Failed to encode feed event", slog.String("error", err.Error()))
		return
	}

	f.mu.RLock()
	defer f.mu.RUnlock()
	for c := range f.clients {
		select {
		case c.send <- data:
		default:
			f.logger.Warn("Operator feed client too slow, event dropped",
				slog.String("request_id", state.RequestID))
		}
	}
}

func (f *Feed) Clients() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.clients)
}

// Serve upgrades the request and blocks until the client goes away.
func (f *Feed) Serve(w http.ResponseWriter, r *http.Request) error {
	conn, err := f.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	c := &feedClient{conn: conn, send: make(chan []byte, sendBuffer)}
	f.register(c)

	go f.writePump(c)
	f.readPump(c)
	return nil
}

// Close disconnects every client.
func (f *Feed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for c := range f.clients {
		delete(f.clients, c)
		close(c.send)
	}
}

func (f *Feed) register(c *feedClient) {
	f.mu.Lock()
	f.clients[c] = struct{}{}
	f.mu.Unlock()
	f.logger.Debug("Operator feed client connected")
}

func (f *Feed) unregister(c *feedClient) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.clients[c]; ok {
		delete(f.clients, c)
		close(c.send)
	}
}

// readPump only drains control frames; operators do not send anything.
func (f *Feed) readPump(c *feedClient) {
	defer func() {
		f.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMsgSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				f.logger.Debug("Operator feed read error", slog.String("error", err.Error()))
			}
			return
		}
	}
}

func (f *Feed) writePump(c *feedClient) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Package realtime fans out a generation's print-event stream to connected
// viewers, narrowed from this lineage's multiplayer room hub down to one
// broadcast direction: server events out, nothing client-initiated in.
package realtime

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/wordgrid/engine/pkg/grid"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Event is one token of a generation's print-event stream, framed for
// delivery to a connected viewer. Seq is monotonically increasing per
// session so a viewer can detect a dropped frame; Done marks the final
// event of a completed generation.
type Event struct {
	Seq  int        `json:"seq"`
	Grid grid.Event `json:"grid"`
	Done bool       `json:"done,omitempty"`
}

// Client is a single websocket viewer of one session's event stream.
type Client struct {
	hub       *Hub
	conn      *websocket.Conn
	send      chan []byte
	sessionID string
}

// Session groups the clients watching one generation run.
type Session struct {
	id      string
	clients map[*Client]bool
	mutex   sync.RWMutex
}

// Hub fans out generation print-events to connected viewers, one Session
// per generation run identified by its session id.
type Hub struct {
	sessions   map[string]*Session
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
}

// NewHub returns an idle Hub. Call Run in its own goroutine before serving
// any viewer.
func NewHub() *Hub {
	return &Hub{
		sessions:   make(map[string]*Session),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run processes client registration until the caller's goroutine exits.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.addClient(client)
			log.Printf("realtime: viewer joined session %s", client.sessionID)

		case client := <-h.unregister:
			h.removeClient(client)
		}
	}
}

func (h *Hub) addClient(client *Client) {
	h.mutex.Lock()
	session, ok := h.sessions[client.sessionID]
	if !ok {
		session = &Session{id: client.sessionID, clients: make(map[*Client]bool)}
		h.sessions[client.sessionID] = session
	}
	h.mutex.Unlock()

	session.mutex.Lock()
	session.clients[client] = true
	session.mutex.Unlock()
}

func (h *Hub) removeClient(client *Client) {
	h.mutex.RLock()
	session, ok := h.sessions[client.sessionID]
	h.mutex.RUnlock()
	if !ok {
		return
	}

	session.mutex.Lock()
	if _, ok := session.clients[client]; ok {
		delete(session.clients, client)
		close(client.send)
	}
	empty := len(session.clients) == 0
	session.mutex.Unlock()

	if empty {
		h.mutex.Lock()
		delete(h.sessions, client.sessionID)
		h.mutex.Unlock()
	}
}

// Serve upgrades the request to a websocket connection and registers it as
// a viewer of sessionID. It returns once the upgrade handshake completes;
// the connection's lifetime is driven by its own read/write goroutines.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, sessionID string) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	client := &Client{hub: h, conn: conn, send: make(chan []byte, 256), sessionID: sessionID}
	h.register <- client

	go client.writePump()
	go client.readPump()
	return nil
}

// Broadcast sends ev to every viewer currently watching sessionID. It is a
// no-op if nobody is watching, so callers need not check first.
func (h *Hub) Broadcast(sessionID string, ev Event) {
	h.mutex.RLock()
	session, ok := h.sessions[sessionID]
	h.mutex.RUnlock()
	if !ok {
		return
	}

	data, err := json.Marshal(ev)
	if err != nil {
		return
	}

	session.mutex.RLock()
	defer session.mutex.RUnlock()
	for client := range session.clients {
		select {
		case client.send <- data:
		default:
			// viewer too slow to keep up; drop the frame rather than
			// block the generation that is producing them.
		}
	}
}

// ViewerCount reports how many clients are currently watching sessionID.
func (h *Hub) ViewerCount(sessionID string) int {
	h.mutex.RLock()
	session, ok := h.sessions[sessionID]
	h.mutex.RUnlock()
	if !ok {
		return 0
	}
	session.mutex.RLock()
	defer session.mutex.RUnlock()
	return len(session.clients)
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// Viewers never send payloads this hub acts on; reading only drains
	// control frames and detects disconnection.
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

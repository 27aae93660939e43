package hand

import (
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Trackers run on the local network; no origin policy.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Tracker accepts websocket connections from hand-tracking processes
// and forwards their events into the sink. Multiple trackers may
// connect; the ring controller serializes whatever arrives.
type Tracker struct {
	sink Sink

	mu      sync.Mutex
	clients map[string]*websocket.Conn
	server  *http.Server
}

// NewTracker builds a tracker feed for sink.
func NewTracker(sink Sink) *Tracker {
	return &Tracker{
		sink:    sink,
		clients: make(map[string]*websocket.Conn),
	}
}

// ListenAndServe serves the tracker endpoint at /track on addr. It
// blocks until the server stops.
func (t *Tracker) ListenAndServe(addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/track", t.handleConnection)

	t.mu.Lock()
	t.server = &http.Server{Addr: addr, Handler: mux}
	server := t.server
	t.mu.Unlock()

	log.Printf("hand: tracker endpoint on ws://%s/track", addr)
	return server.ListenAndServe()
}

// Close drops all tracker connections and stops the server.
func (t *Tracker) Close() {
	t.mu.Lock()
	for id, conn := range t.clients {
		conn.Close()
		delete(t.clients, id)
	}
	server := t.server
	t.mu.Unlock()

	if server != nil {
		server.Close()
	}
}

// ClientCount returns the number of connected trackers.
func (t *Tracker) ClientCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.clients)
}

func (t *Tracker) handleConnection(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("hand: upgrade failed: %v", err)
		return
	}

	id := uuid.NewString()
	t.mu.Lock()
	t.clients[id] = conn
	count := len(t.clients)
	t.mu.Unlock()
	log.Printf("hand: tracker %s connected (%d total)", id, count)

	go t.readLoop(id, conn)
}

// readLoop pumps one tracker's messages into the sink until the
// connection drops. A lost connection counts as losing the source, so
// the ring fades out instead of hanging open.
func (t *Tracker) readLoop(id string, conn *websocket.Conn) {
	defer func() {
		t.mu.Lock()
		delete(t.clients, id)
		count := len(t.clients)
		t.mu.Unlock()
		conn.Close()
		log.Printf("hand: tracker %s disconnected (%d remaining)", id, count)
		t.sink.Deactivate()
	}()

	for {
		kind, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if kind != websocket.TextMessage {
			continue
		}
		msg, err := Decode(data)
		if err != nil {
			log.Printf("hand: tracker %s: %v", id, err)
			continue
		}
		Dispatch(msg, t.sink)
	}
}

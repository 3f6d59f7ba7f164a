// Package spectate streams game snapshots to websocket spectators.
//
// Sessions publish snapshots to a Hub; the Hub forwards them as JSON to the
// clients subscribed to that session. A client that cannot keep up is
// dropped.
package spectate

import (
	"context"
	"encoding/json"
	"io"
	"slices"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/vizard/internal/game"
)

// Message is sent to spectators for every published snapshot.
type Message struct {
	SessionID string         `json:"session_id"`
	Event     string         `json:"event"`
	Snapshot  *game.Snapshot `json:"snapshot,omitempty"`
}

const (
	// EventSnapshot carries the current state of a session.
	EventSnapshot = "snapshot"
	// EventEnded tells spectators the session is over. It has no snapshot.
	EventEnded = "ended"

	sendBuffer      = 64
	broadcastBuffer = 256
)

// Hub maintains the set of active spectators and broadcasts snapshots.
type Hub struct {
	// Registered clients by session ID, owned by Run
	sessions map[string]map[*Client]bool

	broadcast  chan *Message
	register   chan *Client
	unregister chan *Client
	done       chan struct{} // Closed when Run returns

	mu     sync.RWMutex
	latest map[string]game.Snapshot

	logger *log.Logger
}

// NewHub creates a new hub. A nil logger discards output.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Hub{
		sessions:   make(map[string]map[*Client]bool),
		broadcast:  make(chan *Message, broadcastBuffer),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		latest:     make(map[string]game.Snapshot),
		logger:     logger,
	}
}

// Run starts the hub's event loop and returns when ctx is done.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for _, clients := range h.sessions {
				for client := range clients {
					h.unregisterClient(client)
				}
			}
			close(h.done)
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			h.broadcastMessage(message)
		}
	}
}

// Publish queues a snapshot for the spectators of a session. It never
// blocks; when the hub is behind the snapshot is dropped.
func (h *Hub) Publish(sessionID string, snap game.Snapshot) {
	h.mu.Lock()
	h.latest[sessionID] = snap
	h.mu.Unlock()

	select {
	case h.broadcast <- &Message{SessionID: sessionID, Event: EventSnapshot, Snapshot: &snap}:
	default:
		h.logger.Debug("hub busy, snapshot dropped", "session", sessionID, "tick", snap.Tick)
	}
}

// Sessions returns the IDs of the sessions that published, sorted.
func (h *Hub) Sessions() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	ids := make([]string, 0, len(h.latest))
	for id := range h.latest {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Latest returns the last snapshot of a session.
func (h *Hub) Latest(sessionID string) (game.Snapshot, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	snap, ok := h.latest[sessionID]
	return snap, ok
}

// Forget drops a finished session from the session list and tells its
// spectators the session ended. Like Publish it never blocks.
func (h *Hub) Forget(sessionID string) {
	h.mu.Lock()
	_, known := h.latest[sessionID]
	delete(h.latest, sessionID)
	h.mu.Unlock()
	if !known {
		return
	}

	select {
	case h.broadcast <- &Message{SessionID: sessionID, Event: EventEnded}:
	default:
		h.logger.Debug("hub busy, end of session dropped", "session", sessionID)
	}
}

// registerClient adds a client to a session and sends it the last snapshot.
func (h *Hub) registerClient(client *Client) {
	if h.sessions[client.sessionID] == nil {
		h.sessions[client.sessionID] = make(map[*Client]bool)
	}
	h.sessions[client.sessionID][client] = true

	if snap, ok := h.Latest(client.sessionID); ok {
		if data, err := json.Marshal(&Message{SessionID: client.sessionID, Event: EventSnapshot, Snapshot: &snap}); err == nil {
			client.send <- data
		}
	}

	h.logger.Info("spectator joined",
		"session", client.sessionID,
		"spectators", len(h.sessions[client.sessionID]),
	)
}

// unregisterClient removes a client from a session.
func (h *Hub) unregisterClient(client *Client) {
	clients, ok := h.sessions[client.sessionID]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}

	delete(clients, client)
	close(client.send)

	if len(clients) == 0 {
		delete(h.sessions, client.sessionID)
	}

	h.logger.Info("spectator left",
		"session", client.sessionID,
		"spectators", len(clients),
	)
}

// broadcastMessage sends a message to all clients of its session.
func (h *Hub) broadcastMessage(message *Message) {
	clients, ok := h.sessions[message.SessionID]
	if !ok {
		return
	}

	data, err := json.Marshal(message)
	if err != nil {
		h.logger.Error("cannot marshal snapshot", "session", message.SessionID, "error", err)
		return
	}

	for client := range clients {
		select {
		case client.send <- data:
		default:
			h.logger.Warn("spectator too slow, dropping", "session", message.SessionID)
			h.unregisterClient(client)
		}
	}
}

// Package realtime implements best-effort event fan-out to WebSocket rooms.
//
// Every table session maps to one room keyed by its session token; diners at
// the table subscribe to that room and receive lifecycle events (participant
// joins, mode changes) as they happen. Delivery is strictly best-effort:
// polling the session endpoint always yields the authoritative state, so a
// slow or dead subscriber is dropped rather than allowed to apply
// backpressure to the request path.
package realtime

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Event is the wire envelope pushed to room subscribers.
type Event struct {
	Event   string    `json:"event"`
	Payload any       `json:"payload,omitempty"`
	SentAt  time.Time `json:"sent_at"`
}

// sendBuffer sizes each subscriber's outbound queue. A full queue means the
// client is not reading and gets disconnected.
const sendBuffer = 32

// client is one subscribed connection. Writes are serialized through the
// buffered send channel; the connection's writer goroutine is the only
// reader.
type client struct {
	send chan []byte
	once sync.Once
}

func (c *client) close() {
	c.once.Do(func() { close(c.send) })
}

// Hub tracks rooms and their subscribers. The zero value is not usable; use
// NewHub.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*client]struct{}
}

// NewHub constructs an empty Hub.
func NewHub() *Hub {
	return &Hub{rooms: map[string]map[*client]struct{}{}}
}

// Publish broadcasts an event to every subscriber of the room keyed by
// sessionToken. It never blocks: subscribers whose queues are full are
// evicted on the spot. Implements the session service's notifier contract.
func (h *Hub) Publish(sessionToken, event string, payload any) {
	msg, err := json.Marshal(Event{Event: event, Payload: payload, SentAt: time.Now().UTC()})
	if err != nil {
		log.Warn().Err(err).Str("event", event).Msg("realtime: drop unmarshalable event")
		return
	}

	var stale []*client
	h.mu.RLock()
	for c := range h.rooms[sessionToken] {
		select {
		case c.send <- msg:
		default:
			stale = append(stale, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range stale {
		h.unsubscribe(sessionToken, c)
		log.Debug().Str("event", event).Msg("realtime: evicted slow subscriber")
	}
}

// RoomSize reports the current subscriber count for a room.
func (h *Hub) RoomSize(sessionToken string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[sessionToken])
}

// subscribe registers a new client in the room and returns it.
func (h *Hub) subscribe(sessionToken string) *client {
	c := &client{send: make(chan []byte, sendBuffer)}
	h.mu.Lock()
	room, ok := h.rooms[sessionToken]
	if !ok {
		room = map[*client]struct{}{}
		h.rooms[sessionToken] = room
	}
	room[c] = struct{}{}
	h.mu.Unlock()
	return c
}

// unsubscribe removes a client and deletes the room once empty. Safe to call
// more than once for the same client.
func (h *Hub) unsubscribe(sessionToken string, c *client) {
	h.mu.Lock()
	if room, ok := h.rooms[sessionToken]; ok {
		if _, member := room[c]; member {
			delete(room, c)
			if len(room) == 0 {
				delete(h.rooms, sessionToken)
			}
		}
	}
	h.mu.Unlock()
	c.close()
}

package websocket

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Hub fans notifications out to the clients subscribed to each topic.
type Hub struct {
	// Registered clients organized by topic
	clients map[string]map[*Client]bool

	// Notifications waiting to be delivered
	broadcast chan *Notification

	register   chan *Client
	unregister chan *Client

	// Closed when Run returns
	done chan struct{}

	mu sync.RWMutex

	listenersMu sync.RWMutex
	listeners   []chan *Notification

	logger zerolog.Logger
}

// Notification is one event pushed to subscribers.
type Notification struct {
	// Type of event, e.g. "message.created"
	Type string `json:"type"`

	// Topic the event was published on
	Topic string `json:"topic"`

	// Event payload
	Data interface{} `json:"data"`

	Timestamp time.Time `json:"timestamp"`
}

// Topic builds the subscription key for a message recipient.
func Topic(recipientType string, recipientID int64) string {
	return recipientType + ":" + strconv.FormatInt(recipientID, 10)
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		broadcast:  make(chan *Notification, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		clients:    make(map[string]map[*Client]bool),
		logger:     logger,
	}
}

// Run handles registrations and deliveries until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		close(h.done)
		h.closeAll()
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case n := <-h.broadcast:
			h.deliver(n)
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.topic]; !ok {
		h.clients[client.topic] = make(map[*Client]bool)
	}
	h.clients[client.topic][client] = true

	h.logger.Info().
		Str("topic", client.topic).
		Str("addr", client.remoteAddr()).
		Msg("Client registered")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dropLocked(client)
}

// dropLocked removes client and closes its send channel. h.mu must be held.
func (h *Hub) dropLocked(client *Client) {
	subs, ok := h.clients[client.topic]
	if !ok || !subs[client] {
		return
	}
	delete(subs, client)
	close(client.send)
	if len(subs) == 0 {
		delete(h.clients, client.topic)
	}

	h.logger.Info().
		Str("topic", client.topic).
		Str("addr", client.remoteAddr()).
		Msg("Client unregistered")
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, subs := range h.clients {
		for client := range subs {
			h.dropLocked(client)
		}
	}
}

// deliver sends n to listeners and to every client on its topic.
func (h *Hub) deliver(n *Notification) {
	h.notifyListeners(n)

	data, err := json.Marshal(n)
	if err != nil {
		h.logger.Error().Err(err).Str("topic", n.Topic).Msg("Failed to marshal notification")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	subs, ok := h.clients[n.Topic]
	if !ok {
		h.logger.Debug().Str("topic", n.Topic).Msg("No subscribers for notification")
		return
	}

	for client := range subs {
		select {
		case client.send <- data:
		default:
			// slow consumer
			h.dropLocked(client)
		}
	}

	h.logger.Debug().
		Str("topic", n.Topic).
		Int("clientCount", len(subs)).
		Msg("Notification delivered")
}

func (h *Hub) notifyListeners(n *Notification) {
	h.listenersMu.RLock()
	defer h.listenersMu.RUnlock()

	for _, l := range h.listeners {
		select {
		case l <- n:
		default:
			h.logger.Warn().Msg("Skipped slow notification listener")
		}
	}
}

// Publish queues n for delivery. It returns without delivering once the
// hub has stopped.
func (h *Hub) Publish(n *Notification) {
	if n.Timestamp.IsZero() {
		n.Timestamp = time.Now()
	}
	select {
	case h.broadcast <- n:
	case <-h.done:
	}
}

// ClientsCount returns the number of subscribers on a topic.
func (h *Hub) ClientsCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[topic])
}

// AddListener registers a channel that receives every notification.
func (h *Hub) AddListener(listener chan *Notification) {
	h.listenersMu.Lock()
	defer h.listenersMu.Unlock()
	h.listeners = append(h.listeners, listener)
}

// RemoveListener unregisters a listener added with AddListener.
func (h *Hub) RemoveListener(listener chan *Notification) {
	h.listenersMu.Lock()
	defer h.listenersMu.Unlock()

	for i, l := range h.listeners {
		if l == listener {
			h.listeners[i] = h.listeners[len(h.listeners)-1]
			h.listeners = h.listeners[:len(h.listeners)-1]
			break
		}
	}
}

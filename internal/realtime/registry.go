package realtime

import (
	"sync"
	"time"

	"hireflow/pkg/logger"
)

// Conn is the narrow surface the registry needs from a live connection.
// *websocket.Conn satisfies it.
type Conn interface {
	WriteJSON(v interface{}) error
	SetWriteDeadline(t time.Time) error
}

// Event is the envelope pushed over a live connection.
type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

const EventNotificationNew = "notification:new"

// writeTimeout bounds a single push so a peer with a full TCP buffer cannot
// hold a write forever.
const writeTimeout = 5 * time.Second

// client pairs a connection with its own write mutex: websocket connections
// do not support concurrent writes, so pushes to the same user serialize
// here instead of on the registry lock.
type client struct {
	mu   sync.Mutex
	conn Conn
}

// Registry maps a user id to its most recent live connection. The registry
// mutex only guards the map; writes to a connection happen outside it so one
// slow peer never stalls pushes or registrations for other users.
type Registry struct {
	mu      sync.Mutex
	clients map[string]*client
	logger  *logger.Logger
}

func NewRegistry(log *logger.Logger) *Registry {
	return &Registry{
		clients: make(map[string]*client),
		logger:  log,
	}
}

// Identify records the live connection for a user. Last identify wins: a user
// connected twice only receives pushes on the most recent connection.
func (r *Registry) Identify(userID string, conn Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[userID] = &client{conn: conn}
	r.logger.Info("Registered live connection for user %s", userID)
}

// Forget drops the mapping holding this connection, scanning by handle since
// the disconnect path only knows the connection.
func (r *Registry) Forget(conn Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for userID, c := range r.clients {
		if c.conn == conn {
			delete(r.clients, userID)
			r.logger.Info("Dropped live connection for user %s", userID)
			return
		}
	}
}

// Push delivers a payload to the user's live connection if one exists.
// Returning false is not an error: the notification is durably stored and
// will be visible on the next poll or reconnect.
func (r *Registry) Push(userID string, payload interface{}) bool {
	r.mu.Lock()
	c, ok := r.clients[userID]
	r.mu.Unlock()
	if !ok {
		return false
	}

	c.mu.Lock()
	c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	err := c.conn.WriteJSON(Event{Event: EventNotificationNew, Data: payload})
	c.mu.Unlock()

	if err != nil {
		r.logger.Warn("Failed to push to user %s: %v", userID, err)
		r.drop(userID, c)
		return false
	}
	return true
}

// drop removes the mapping only if it still points at the failed client, so
// a reconnect that identified meanwhile is not torn down.
func (r *Registry) drop(userID string, c *client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.clients[userID] == c {
		delete(r.clients, userID)
	}
}

// Size returns the number of registered connections.
func (r *Registry) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

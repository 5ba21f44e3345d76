package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"gomarket/pkg/logger"
)

// Client is one connected session of a user. A user can hold several
// sessions (browser tabs, phone) at once.
type Client struct {
	UserID    string
	SessionID string
	Conn      *websocket.Conn
	Send      chan []byte
}

// FavoritesMessage is pushed when a user's favorite set changes in
// another session.
type FavoritesMessage struct {
	Type      string   `json:"type"`
	Favorites []string `json:"favorites"`
}

// Manager tracks the live sessions per user and fans favorite-set updates
// out to them.
type Manager struct {
	sessions   map[string]map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	mutex      sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		sessions:   make(map[string]map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Start runs the manager's registration loop in a goroutine.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				if m.sessions[client.UserID] == nil {
					m.sessions[client.UserID] = make(map[string]*Client)
				}
				m.sessions[client.UserID][client.SessionID] = client
				m.mutex.Unlock()
				logger.Info("Session registered: user=%s session=%s", client.UserID, client.SessionID)

			case client := <-m.Unregister:
				m.mutex.Lock()
				if set, ok := m.sessions[client.UserID]; ok {
					if _, ok := set[client.SessionID]; ok {
						delete(set, client.SessionID)
						close(client.Send)
						if len(set) == 0 {
							delete(m.sessions, client.UserID)
						}
					}
				}
				m.mutex.Unlock()
				logger.Info("Session unregistered: user=%s session=%s", client.UserID, client.SessionID)

			case <-ctx.Done():
				return
			}
		}
	}()
}

// NotifyFavorites pushes the new favorite set to every live session of
// the user except the one that caused the change.
func (m *Manager) NotifyFavorites(userID, originSession string, favorites []string) {
	payload, err := json.Marshal(FavoritesMessage{
		Type:      "favorites_changed",
		Favorites: favorites,
	})
	if err != nil {
		return
	}

	m.mutex.RLock()
	defer m.mutex.RUnlock()
	for sessionID, client := range m.sessions[userID] {
		if sessionID == originSession {
			continue
		}
		select {
		case client.Send <- payload:
		default:
			// Slow consumer; drop the update rather than block the
			// mutation path. The next profile fetch reconciles.
		}
	}
}

// ReadPump drains the connection until it closes.
func (c *Client) ReadPump(m *Manager) {
	defer func() {
		m.Unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("WebSocket read error: %v", err)
			}
			break
		}
	}
}

// WritePump sends queued messages to the connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}

// internal/handler/websocket_types.go
package handler

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"escpos-service/internal/model"
)

// Client represents a receipt feed subscriber
type Client struct {
	ID            string                   `json:"id"`
	Connection    *websocket.Conn          `json:"-"`
	Send          chan []byte              `json:"-"`
	MerchantID    string                   `json:"merchant_id,omitempty"`
	UserAgent     string                   `json:"user_agent"`
	RemoteAddr    string                   `json:"remote_addr"`
	ConnectedAt   time.Time                `json:"connected_at"`
	Subscriptions map[model.EventType]bool `json:"subscriptions,omitempty"`
	mutex         sync.RWMutex
}

// Wants reports whether the client should receive event
func (c *Client) Wants(event *model.ReceiptEvent) bool {
	if c.MerchantID != "" && c.MerchantID != event.MerchantID {
		return false
	}
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	if len(c.Subscriptions) == 0 {
		return true
	}
	return c.Subscriptions[event.EventType]
}

func (c *Client) subscribe(eventType model.EventType) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.Subscriptions == nil {
		c.Subscriptions = make(map[model.EventType]bool)
	}
	c.Subscriptions[eventType] = true
}

func (c *Client) unsubscribe(eventType model.EventType) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	delete(c.Subscriptions, eventType)
}

// WebSocketMessage represents a WebSocket message
type WebSocketMessage struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// ConnectionManager manages WebSocket connections
type ConnectionManager struct {
	clients map[string]*Client
	mutex   sync.RWMutex
}

// NewConnectionManager creates a new connection manager
func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{clients: make(map[string]*Client)}
}

// Register registers a new client
func (cm *ConnectionManager) Register(client *Client) {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()
	cm.clients[client.ID] = client
}

// Unregister removes a client and closes its send channel
func (cm *ConnectionManager) Unregister(client *Client) {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()
	if _, ok := cm.clients[client.ID]; ok {
		delete(cm.clients, client.ID)
		close(client.Send)
	}
}

// Broadcast queues message for every client that wants event and returns
// how many clients were skipped because their queue was full
func (cm *ConnectionManager) Broadcast(event *model.ReceiptEvent, message []byte) int {
	cm.mutex.RLock()
	defer cm.mutex.RUnlock()

	dropped := 0
	for _, client := range cm.clients {
		if !client.Wants(event) {
			continue
		}
		select {
		case client.Send <- message:
		default:
			dropped++
		}
	}
	return dropped
}

// GetStats returns connection statistics
func (cm *ConnectionManager) GetStats() *ConnectionStats {
	cm.mutex.RLock()
	defer cm.mutex.RUnlock()

	stats := &ConnectionStats{
		TotalConnections: len(cm.clients),
		ByMerchant:       make(map[string]int),
	}
	for _, client := range cm.clients {
		stats.ByMerchant[client.MerchantID]++
	}
	return stats
}

// ConnectionStats represents connection statistics
type ConnectionStats struct {
	TotalConnections int            `json:"total_connections"`
	ByMerchant       map[string]int `json:"by_merchant"`
}

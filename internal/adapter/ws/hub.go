// Package ws delivers the task change feed: every successful mutation is
// fanned out to the owner's connected clients as an insert/update/delete
// event over a websocket.
package ws

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"go.uber.org/zap"

	"progresstracker/internal/adapter/http/dto"
	"progresstracker/internal/adapter/http/mapper"
	"progresstracker/internal/core/domain"
	"progresstracker/internal/core/ports"
)

type ownerEvent struct {
	ownerID string
	payload []byte
}

// Hub routes events to per-owner client sets. A single goroutine owns all
// the maps, so events for one record reach each client in the order they
// were published.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	events     chan ownerEvent
	clients    map[string]map[*Client]bool
	connected  atomic.Int64
}

var _ ports.TaskEventPublisher = (*Hub)(nil)

func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		events:     make(chan ownerEvent, 256),
		clients:    make(map[string]map[*Client]bool),
	}
}

// Run owns the client registry until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case client := <-h.register:
			set := h.clients[client.ownerID]
			if set == nil {
				set = make(map[*Client]bool)
				h.clients[client.ownerID] = set
			}
			set[client] = true
			h.connected.Add(1)

		case client := <-h.unregister:
			if set, ok := h.clients[client.ownerID]; ok {
				if set[client] {
					delete(set, client)
					close(client.send)
					h.connected.Add(-1)
					if len(set) == 0 {
						delete(h.clients, client.ownerID)
					}
				}
			}

		case event := <-h.events:
			for client := range h.clients[event.ownerID] {
				select {
				case client.send <- event.payload:
				default:
					// Slow consumer: drop the client rather than stall the feed.
					delete(h.clients[event.ownerID], client)
					close(client.send)
					h.connected.Add(-1)
				}
			}

		case <-ctx.Done():
			for _, set := range h.clients {
				for client := range set {
					close(client.send)
				}
			}
			return
		}
	}
}

// ConnectedClients reports how many feed subscribers are currently attached.
func (h *Hub) ConnectedClients() int64 {
	return h.connected.Load()
}

// Publish enqueues an event for the owner's clients without blocking the
// mutating request.
func (h *Hub) Publish(ownerID string, event domain.TaskEvent) {
	payload, err := json.Marshal(dto.FeedEvent{
		Kind: string(event.Kind),
		Task: mapper.ToTaskItem(event.Task),
	})
	if err != nil {
		zap.L().Error("failed to encode feed event", zap.Error(err))
		return
	}

	select {
	case h.events <- ownerEvent{ownerID: ownerID, payload: payload}:
	default:
		zap.L().Warn("feed buffer full, dropping event", zap.String("owner_id", ownerID))
	}
}

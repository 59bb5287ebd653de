package realtime

import (
	"context"
	"sync"

	"campora/models"
	"campora/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Hub fans order change notifications out to live viewers. Each
// subscriber gets a coalescing signal channel: any write to any order
// wakes every subscriber, which then reloads its full result set and
// re-runs its projection from scratch. No per-subscriber diffing.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]chan struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]chan struct{})}
}

// Subscribe registers a viewer and returns its id and signal channel.
// The channel is buffered with one slot so bursts of writes coalesce
// into a single pending wake-up.
func (h *Hub) Subscribe() (string, <-chan struct{}) {
	id := uuid.New().String()
	ch := make(chan struct{}, 1)

	h.mu.Lock()
	h.subs[id] = ch
	h.mu.Unlock()
	return id, ch
}

// Unsubscribe removes a viewer. Safe to call after the hub stopped.
func (h *Hub) Unsubscribe(id string) {
	h.mu.Lock()
	delete(h.subs, id)
	h.mu.Unlock()
}

// SubscriberCount returns the number of live viewers.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

func (h *Hub) notifyAll() {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.subs {
		select {
		case ch <- struct{}{}:
		default:
			// Wake-up already pending; the subscriber will reload anyway.
		}
	}
}

// Run consumes order change events until ctx is cancelled or the event
// channel closes. Every event wakes every subscriber.
func (h *Hub) Run(ctx context.Context, events <-chan models.Order) {
	logger := utils.GetLogger()
	for {
		select {
		case <-ctx.Done():
			return
		case ord, ok := <-events:
			if !ok {
				return
			}
			logger.Debug("order change received",
				zap.String("orderId", ord.ID),
				zap.String("status", string(ord.Status)),
				zap.Int("subscribers", h.SubscriberCount()),
			)
			h.notifyAll()
		}
	}
}

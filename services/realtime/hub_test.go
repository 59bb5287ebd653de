package realtime

import (
	"context"
	"testing"
	"time"

	"campora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubSubscribeAndNotify(t *testing.T) {
	hub := NewHub()
	id1, ch1 := hub.Subscribe()
	_, ch2 := hub.Subscribe()
	assert.Equal(t, 2, hub.SubscriberCount())

	hub.notifyAll()

	select {
	case <-ch1:
	case <-time.After(time.Second):
		t.Fatal("subscriber 1 never woke up")
	}
	select {
	case <-ch2:
	case <-time.After(time.Second):
		t.Fatal("subscriber 2 never woke up")
	}

	hub.Unsubscribe(id1)
	assert.Equal(t, 1, hub.SubscriberCount())
}

// Bursts of writes coalesce: a slow subscriber sees at most one pending
// wake-up, and notifying never blocks the hub.
func TestHubNotifyCoalesces(t *testing.T) {
	hub := NewHub()
	_, ch := hub.Subscribe()

	for i := 0; i < 10; i++ {
		hub.notifyAll()
	}

	<-ch
	select {
	case <-ch:
		t.Fatal("expected wake-ups to coalesce into a single signal")
	default:
	}
}

func TestHubRunForwardsEvents(t *testing.T) {
	hub := NewHub()
	_, ch := hub.Subscribe()

	events := make(chan models.Order, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		hub.Run(ctx, events)
		close(done)
	}()

	events <- models.Order{ID: "order-1", Status: models.ItemConfirmed}
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("subscriber never notified of the order change")
	}

	// Closing the event stream stops the loop.
	close(events)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("hub did not stop when the event stream closed")
	}
}

func TestHubRunStopsOnCancel(t *testing.T) {
	hub := NewHub()
	events := make(chan models.Order)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		hub.Run(ctx, events)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("hub did not stop on context cancellation")
	}
	require.Equal(t, 0, hub.SubscriberCount())
}

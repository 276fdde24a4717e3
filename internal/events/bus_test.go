package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishSubscribe(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(RoleChanged)
	defer cancel()

	bus.Publish(RoleChanged, "admin")

	select {
	case ev := <-ch:
		assert.Equal(t, RoleChanged, ev.Name)
		assert.Equal(t, "admin", ev.Payload)
	case <-time.After(time.Second):
		t.Fatal("event never delivered")
	}
}

func TestSubscribeOnlyNamedEvents(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(OrdersChanged)
	defer cancel()

	bus.Publish(RoleChanged, "customer")
	bus.Publish(OrdersChanged, "order-1")

	ev := <-ch
	assert.Equal(t, OrdersChanged, ev.Name)
	assert.Empty(t, ch)
}

func TestCancelStopsDelivery(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(OrdersChanged)
	cancel()

	// Publish after cancel must not panic and must not deliver.
	bus.Publish(OrdersChanged, "order-2")

	_, open := <-ch
	require.False(t, open)
}

func TestPublishNeverBlocks(t *testing.T) {
	bus := NewBus()
	_, cancel := bus.Subscribe(OrdersChanged)
	defer cancel()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ { // far beyond the buffer
			bus.Publish(OrdersChanged, i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}

package events

import "sync"

// Event names published by the backend.
const (
	RoleChanged   = "role.changed"   // payload: models.Role
	OrdersChanged = "orders.changed" // payload: order id
)

type Event struct {
	Name    string
	Payload any
}

// Bus is a small in-process publish/subscribe channel. It replaces the old
// pattern of polling stored state for role changes: sign-in and order
// mutations publish here and interested parties (the admin pending-order
// feed, the composition root) subscribe.
type Bus struct {
	mu   sync.RWMutex
	subs map[string][]chan Event
}

func NewBus() *Bus {
	return &Bus{subs: make(map[string][]chan Event)}
}

// Subscribe returns a buffered channel receiving the named events and a
// cancel function that unregisters and closes it.
func (b *Bus) Subscribe(names ...string) (<-chan Event, func()) {
	ch := make(chan Event, 16)

	b.mu.Lock()
	for _, name := range names {
		b.subs[name] = append(b.subs[name], ch)
	}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		for _, name := range names {
			kept := b.subs[name][:0]
			for _, c := range b.subs[name] {
				if c != ch {
					kept = append(kept, c)
				}
			}
			b.subs[name] = kept
		}
		b.mu.Unlock()
		close(ch)
	}
	return ch, cancel
}

// Publish delivers to every subscriber without blocking the caller; a
// subscriber that has fallen 16 events behind misses the event.
func (b *Bus) Publish(name string, payload any) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subs[name] {
		select {
		case ch <- Event{Name: name, Payload: payload}:
		default:
		}
	}
}

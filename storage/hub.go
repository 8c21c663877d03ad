package storage

import "sync"

// Event describes one store mutation.
type Event struct {
	Collection string
	Record     interface{}
}

// Hub fans store mutations out to subscribers. Delivery is best-effort
// per event but at least one notification reaches a live subscriber
// after any change: sends never block the store, and a subscriber that
// falls behind loses intermediate events, not the subscription. A
// consumer that needs the full state re-reads the collection on
// notification, which every current consumer does.
type Hub struct {
	mu   sync.RWMutex
	subs map[int]subscriber
	next int
}

type subscriber struct {
	collection string // empty means all collections
	ch         chan Event
}

// NewHub creates an empty notification hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[int]subscriber)}
}

// Subscribe registers interest in one collection (or all collections
// when name is empty) and returns the event channel plus a cancel
// function. The channel is buffered; events that arrive while the
// buffer is full are dropped for that subscriber.
func (h *Hub) Subscribe(name string) (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.next
	h.next++
	ch := make(chan Event, 64)
	h.subs[id] = subscriber{collection: name, ch: ch}

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if sub, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(sub.ch)
		}
	}
	return ch, cancel
}

func (h *Hub) publish(collection string, record interface{}) {
	if h == nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, sub := range h.subs {
		if sub.collection != "" && sub.collection != collection {
			continue
		}
		select {
		case sub.ch <- Event{Collection: collection, Record: record}:
		default:
		}
	}
}

package events

import (
	"sync"
	"sync/atomic"
)

const defaultBufferSize = 16

// Broker fans events out to subscribers. Publishing never blocks: an event
// is dropped for a subscriber whose buffer is full.
type Broker struct {
	subscribers map[EventType][]chan Event
	mu          sync.RWMutex
	bufferSize  int
	dropped     atomic.Int64
}

// NewBroker creates a new event broker
func NewBroker() *Broker {
	return &Broker{
		subscribers: make(map[EventType][]chan Event),
		bufferSize:  defaultBufferSize,
	}
}

// Subscribe creates a subscription to specific event types, or to every
// event when none are given.
func (b *Broker) Subscribe(eventTypes ...EventType) <-chan Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, b.bufferSize)

	if len(eventTypes) == 0 {
		eventTypes = []EventType{"*"} // wildcard
	}
	for _, eventType := range eventTypes {
		b.subscribers[eventType] = append(b.subscribers[eventType], ch)
	}
	return ch
}

// Publish sends an event to all subscribers
func (b *Broker) Publish(event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	b.deliver(b.subscribers[event.Type], event)
	b.deliver(b.subscribers["*"], event)
}

func (b *Broker) deliver(subscribers []chan Event, event Event) {
	for _, ch := range subscribers {
		select {
		case ch <- event:
		default:
			b.dropped.Add(1)
		}
	}
}

// Dropped returns how many deliveries were skipped because a subscriber was
// not keeping up.
func (b *Broker) Dropped() int64 {
	return b.dropped.Load()
}

// Close closes every subscription. Receivers see a closed channel.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	closed := make(map[chan Event]bool)
	for _, subscribers := range b.subscribers {
		for _, ch := range subscribers {
			if !closed[ch] {
				close(ch)
				closed[ch] = true
			}
		}
	}
	b.subscribers = make(map[EventType][]chan Event)
}

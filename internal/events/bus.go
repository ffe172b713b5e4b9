package events

import (
	"sync"
	"sync/atomic"
)

// DefaultBufferSize is the channel capacity given to each subscriber.
const DefaultBufferSize = 100

// Event is a generic type placeholder for any event type
type Event any

// Subscriber is a channel that transports events of type T
type Subscriber[T Event] chan T

type EventBus[T Event] struct {
	subscribers map[Subscriber[T]]struct{}
	bufferSize  int
	dropped     atomic.Uint64
	mutex       sync.RWMutex
}

func NewEventBus[T Event]() *EventBus[T] {
	return NewEventBusWithBuffer[T](DefaultBufferSize)
}

// NewEventBusWithBuffer creates a bus whose subscribers buffer up to size events.
func NewEventBusWithBuffer[T Event](size int) *EventBus[T] {
	if size < 0 {
		size = 0
	}
	return &EventBus[T]{
		subscribers: make(map[Subscriber[T]]struct{}),
		bufferSize:  size,
	}
}

func (bus *EventBus[T]) Subscribe() Subscriber[T] {
	ch := make(Subscriber[T], bus.bufferSize)
	bus.mutex.Lock()
	bus.subscribers[ch] = struct{}{}
	bus.mutex.Unlock()
	return ch
}

// Unsubscribe removes ch from the bus and closes it. Unknown channels are ignored.
func (bus *EventBus[T]) Unsubscribe(ch Subscriber[T]) {
	bus.mutex.Lock()
	defer bus.mutex.Unlock()
	if _, ok := bus.subscribers[ch]; !ok {
		return
	}
	delete(bus.subscribers, ch)
	close(ch)
}

// Publish broadcasts an event of type T to all registered subscribers.
// Subscribers whose buffer is full miss the event.
func (bus *EventBus[T]) Publish(event T) {
	bus.mutex.RLock()
	defer bus.mutex.RUnlock()
	for subscriber := range bus.subscribers {
		select {
		case subscriber <- event:
		default:
			bus.dropped.Add(1)
		}
	}
}

// Subscribers returns the number of registered subscribers.
func (bus *EventBus[T]) Subscribers() int {
	bus.mutex.RLock()
	defer bus.mutex.RUnlock()
	return len(bus.subscribers)
}

// Dropped returns how many deliveries were skipped because a subscriber was full.
func (bus *EventBus[T]) Dropped() uint64 {
	return bus.dropped.Load()
}

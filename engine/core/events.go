package core

// Event represents an engine event
type Event struct {
	Type    EventType
	Frame   uint64
	Payload interface{}
}

type EventType uint16

const (
	EvtMouseButtonPressed EventType = iota
	EvtMouseButtonReleased
	EvtGridSpawned
)

func (t EventType) String() string {
	switch t {
	case EvtMouseButtonPressed:
		return "MouseButtonPressed"
	case EvtMouseButtonReleased:
		return "MouseButtonReleased"
	case EvtGridSpawned:
		return "GridSpawned"
	}
	return "Unknown"
}

// GridSpawned is the payload of EvtGridSpawned
type GridSpawned struct {
	Tiles     int
	Meshes    int
	Materials int
}

// EventBus dispatches events to listeners
type EventBus struct {
	listeners map[EventType][]EventHandler
	queue     []Event
}

type EventHandler func(e Event)

func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[EventType][]EventHandler),
	}
}

// On registers a handler for an event type
func (eb *EventBus) On(t EventType, h EventHandler) {
	eb.listeners[t] = append(eb.listeners[t], h)
}

// Emit queues an event for dispatch
func (eb *EventBus) Emit(e Event) {
	eb.queue = append(eb.queue, e)
}

// Pending returns the number of queued events
func (eb *EventBus) Pending() int { return len(eb.queue) }

// Dispatch processes all queued events. Events emitted by handlers are
// delivered on the next call.
func (eb *EventBus) Dispatch() {
	queue := eb.queue
	eb.queue = nil
	for _, e := range queue {
		for _, h := range eb.listeners[e.Type] {
			h(e)
		}
	}
}

// internal/event/event.go
package event

// Type identifies a kind of game event.
type Type string

// Event carries a game occurrence to subscribers.
type Event struct {
	Type Type
	Data interface{}
}

// Listener receives dispatched events.
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher routes events to subscribers. Dispatch is synchronous; the
// game loop is single-threaded and listeners run inside the frame that
// raised the event.
type Dispatcher struct {
	listeners map[Type][]Listener
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[Type][]Listener),
	}
}

// Subscribe registers a listener for an event type.
func (d *Dispatcher) Subscribe(t Type, listener Listener) {
	d.listeners[t] = append(d.listeners[t], listener)
}

// Unsubscribe removes a previously registered listener.
func (d *Dispatcher) Unsubscribe(t Type, listener Listener) {
	if listeners, exists := d.listeners[t]; exists {
		for i, l := range listeners {
			if l == listener {
				d.listeners[t] = append(listeners[:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Dispatch delivers the event to every subscriber of its type.
func (d *Dispatcher) Dispatch(event Event) {
	if listeners, exists := d.listeners[event.Type]; exists {
		for _, listener := range listeners {
			listener.OnEvent(event)
		}
	}
}

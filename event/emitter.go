package event

type Listener interface {
	OnEvent(Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) {
	f(e)
}

type Emitter struct {
	listeners []Listener
}

func NewEmitter() *Emitter {
	return &Emitter{}
}

func (e *Emitter) AddListener(listener Listener) {
	e.listeners = append(e.listeners, listener)
}

// Emit delivers events to every listener in registration order.
func (e *Emitter) Emit(events ...Event) {
	for _, ev := range events {
		for _, listener := range e.listeners {
			listener.OnEvent(ev)
		}
	}
}

// Find returns the first event of the given kind.
func Find(events []Event, kind Kind) (Event, bool) {
	for _, ev := range events {
		if ev.Kind() == kind {
			return ev, true
		}
	}
	return nil, false
}

func Count(events []Event, kind Kind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind() == kind {
			n++
		}
	}
	return n
}

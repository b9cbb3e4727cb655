package event

type DummyListener struct {
	receivedEvents []Event
}

func NewDummyListener() *DummyListener {
	return &DummyListener{receivedEvents: make([]Event, 0)}
}

func (l *DummyListener) ReceivedEvents() []Event {
	return l.receivedEvents
}

func (l *DummyListener) OnEvent(e Event) {
	l.receivedEvents = append(l.receivedEvents, e)
}

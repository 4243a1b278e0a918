package field

type EventType int

const (
	EventResize EventType = iota
	EventPointerMove
	EventClick
)

// Event is host input translated into surface coordinates.
type Event struct {
	Type          EventType
	X, Y          float64
	Width, Height int // EventResize only
}

type EventHandler func(Event)

// EventBus fans host input out to subscribers synchronously, in subscription
// order.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}

// Handle applies a single input event to the field.
func (f *Field) Handle(e Event) {
	switch e.Type {
	case EventResize:
		f.Resize(e.Width, e.Height)
	case EventPointerMove:
		f.MovePointer(e.X, e.Y)
	case EventClick:
		f.Burst(e.X, e.Y)
	}
}

// Attach subscribes the field to every input event on bus.
func (f *Field) Attach(bus *EventBus) {
	for _, t := range []EventType{EventResize, EventPointerMove, EventClick} {
		bus.Subscribe(t, f.Handle)
	}
}

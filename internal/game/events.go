package game

import "github.com/go-gl/mathgl/mgl64"

type EventType int

const (
	EventThrow EventType = iota
	EventDelivery
	EventCrash
	EventRampJump
	EventPaperExpired
	EventGameOver
)

type Event struct {
	Type EventType
	Pos  mgl64.Vec3
	Data int // Generic payload (e.g. points for a delivery).
}

type EventHandler func(Event)

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
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}

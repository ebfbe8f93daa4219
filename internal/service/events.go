package service

// EventType defines the type of event
type EventType string

const (
	EventRunStarted     EventType = "run_started"
	EventSetsLoaded     EventType = "sets_loaded"
	EventRelationsReady EventType = "relations_computed"
	EventFigureRendered EventType = "figure_rendered"
	EventOutputsWritten EventType = "outputs_written"
	EventRunArchived    EventType = "run_archived"
	EventRunCompleted   EventType = "run_completed"
	EventRunFailed      EventType = "run_failed"
)

// Event represents an event that occurred in the pipeline
type Event struct {
	Type    EventType   `json:"type"`
	RunID   string      `json:"run_id"`
	Payload interface{} `json:"payload,omitempty"`
}

// EventBus allows publishing and subscribing to events
type EventBus struct {
	subscribers []chan<- Event
}

// NewEventBus creates a new event bus
func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make([]chan<- Event, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (eb *EventBus) Subscribe(ch chan<- Event) {
	eb.subscribers = append(eb.subscribers, ch)
}

// Publish sends an event to all subscribers
func (eb *EventBus) Publish(event Event) {
	if eb == nil {
		return
	}
	for _, ch := range eb.subscribers {
		select {
		case ch <- event:
		default:
			// Subscriber is slow, skip
		}
	}
}

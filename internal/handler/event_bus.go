// internal/handler/event_bus.go
package handler

import (
	"sync"

	"go.uber.org/zap"

	"escpos-service/internal/model"
)

// EventBus fans receipt events out to subscribers
type EventBus struct {
	subscribers map[chan *model.ReceiptEvent]struct{}
	events      chan *model.ReceiptEvent
	done        chan struct{}
	mutex       sync.RWMutex
	logger      *zap.Logger
	stopOnce    sync.Once
}

// NewEventBus creates a new event bus
func NewEventBus(logger *zap.Logger) *EventBus {
	return &EventBus{
		subscribers: make(map[chan *model.ReceiptEvent]struct{}),
		events:      make(chan *model.ReceiptEvent, 1000),
		done:        make(chan struct{}),
		logger:      logger,
	}
}

// Start distributes events until Stop is called
func (eb *EventBus) Start() {
	for {
		select {
		case event := <-eb.events:
			eb.distributeEvent(event)
		case <-eb.done:
			return
		}
	}
}

// Stop ends Start
func (eb *EventBus) Stop() {
	eb.stopOnce.Do(func() { close(eb.done) })
}

// Publish queues an event without blocking the caller
func (eb *EventBus) Publish(event *model.ReceiptEvent) {
	select {
	case eb.events <- event:
	default:
		eb.logger.Warn("Event bus full, dropping event",
			zap.String("event_type", string(event.EventType)),
		)
	}
}

// Subscribe returns a channel receiving every published event
func (eb *EventBus) Subscribe() <-chan *model.ReceiptEvent {
	eb.mutex.Lock()
	defer eb.mutex.Unlock()

	subscriber := make(chan *model.ReceiptEvent, 100)
	eb.subscribers[subscriber] = struct{}{}
	return subscriber
}

// Unsubscribe removes and closes a subscription
func (eb *EventBus) Unsubscribe(sub <-chan *model.ReceiptEvent) {
	eb.mutex.Lock()
	defer eb.mutex.Unlock()

	for ch := range eb.subscribers {
		if ch == sub {
			delete(eb.subscribers, ch)
			close(ch)
			return
		}
	}
}

func (eb *EventBus) distributeEvent(event *model.ReceiptEvent) {
	eb.mutex.RLock()
	defer eb.mutex.RUnlock()

	for subscriber := range eb.subscribers {
		select {
		case subscriber <- event:
		default:
			// slow subscriber
		}
	}
}

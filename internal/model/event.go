// internal/model/event.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// EventType represents the type of event
type EventType string

const (
	EventReceiptCaptured EventType = "RECEIPT_CAPTURED"
	EventReceiptDecoded  EventType = "RECEIPT_DECODED"
	EventOrderSent       EventType = "ORDER_SENT"
	EventOrderFailed     EventType = "ORDER_FAILED"
	EventCaptureError    EventType = "CAPTURE_ERROR"
)

// ReceiptEvent is published to live feed subscribers
type ReceiptEvent struct {
	ID         uuid.UUID  `json:"id"`
	EventType  EventType  `json:"event_type"`
	ReceiptID  uuid.UUID  `json:"receipt_id"`
	MerchantID string     `json:"merchant_id,omitempty"`
	Data       JSONObject `json:"data,omitempty"`
	Timestamp  time.Time  `json:"timestamp"`
	Source     string     `json:"source"`
	Severity   string     `json:"severity"` // INFO, WARNING, ERROR
}

// NewReceiptEvent stamps a new event
func NewReceiptEvent(eventType EventType, receiptID uuid.UUID, merchantID, source string, data JSONObject) *ReceiptEvent {
	severity := "INFO"
	switch eventType {
	case EventOrderFailed:
		severity = "WARNING"
	case EventCaptureError:
		severity = "ERROR"
	}
	return &ReceiptEvent{
		ID:         uuid.New(),
		EventType:  eventType,
		ReceiptID:  receiptID,
		MerchantID: merchantID,
		Data:       data,
		Timestamp:  time.Now().UTC(),
		Source:     source,
		Severity:   severity,
	}
}

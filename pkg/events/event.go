package events

import "time"

// Audit event types published by the orchestration core.
const (
	TypeToolInvoked    = "TOOL_INVOKED"
	TypeEmailDelivered = "EMAIL_DELIVERED"
	TypeEmailFailed    = "EMAIL_FAILED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "TOOL_INVOKED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is a plain value implementation of Event.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewToolInvoked records one tool dispatch outcome.
func NewToolInvoked(tool string, success bool, errMsg string) BaseEvent {
	return BaseEvent{
		Type: TypeToolInvoked,
		Data: map[string]interface{}{
			"tool":    tool,
			"success": success,
			"error":   errMsg,
		},
		OccurredAt: time.Now(),
	}
}

// NewEmailOutcome records one transport attempt for a recipient.
func NewEmailOutcome(recipient, messageId, errMsg string, success bool) BaseEvent {
	eventType := TypeEmailDelivered
	if !success {
		eventType = TypeEmailFailed
	}
	return BaseEvent{
		Type: eventType,
		Data: map[string]interface{}{
			"recipient":  recipient,
			"message_id": messageId,
			"error":      errMsg,
		},
		OccurredAt: time.Now(),
	}
}

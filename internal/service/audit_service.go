package service

import (
	"context"
	"encoding/json"
	"time"

	"ai-datachat-be/internal/pkg/logger"
	"ai-datachat-be/pkg/events"
	pkgnats "ai-datachat-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

const auditTopic = "assistant.audit"

// auditEnvelope is the wire form of an audit event on the in-process bus.
type auditEnvelope struct {
	Type       string                 `json:"type"`
	Payload    map[string]interface{} `json:"payload"`
	OccurredAt time.Time              `json:"occurred_at"`
}

// IAuditService records tool invocations and email outcomes. Recording is
// fire-and-forget: a failed audit write never fails the operation it
// describes.
type IAuditService interface {
	Record(event events.Event)
	Consume(ctx context.Context) error
}

type auditService struct {
	publisher  message.Publisher
	subscriber message.Subscriber
	sysLogger  logger.ILogger
	natsPub    *pkgnats.Publisher // nil when NATS is unavailable
}

func NewAuditService(
	publisher message.Publisher,
	subscriber message.Subscriber,
	sysLogger logger.ILogger,
	natsPub *pkgnats.Publisher,
) IAuditService {
	return &auditService{
		publisher:  publisher,
		subscriber: subscriber,
		sysLogger:  sysLogger,
		natsPub:    natsPub,
	}
}

func (s *auditService) Record(event events.Event) {
	envelope := auditEnvelope{
		Type:       event.EventType(),
		Payload:    event.Payload(),
		OccurredAt: event.Timestamp(),
	}
	data, err := json.Marshal(envelope)
	if err != nil {
		s.sysLogger.Warn("AUDIT", "Failed to marshal audit event", map[string]interface{}{"error": err.Error()})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	if err := s.publisher.Publish(auditTopic, msg); err != nil {
		s.sysLogger.Warn("AUDIT", "Failed to publish audit event", map[string]interface{}{"error": err.Error()})
	}
}

// Consume drains the audit topic, logging every event and forwarding to NATS
// when configured. Intended to run as a background goroutine from main.
func (s *auditService) Consume(ctx context.Context) error {
	messages, err := s.subscriber.Subscribe(ctx, auditTopic)
	if err != nil {
		return err
	}

	for msg := range messages {
		var envelope auditEnvelope
		if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
			s.sysLogger.Warn("AUDIT", "Dropping malformed audit event", map[string]interface{}{"error": err.Error()})
			msg.Ack()
			continue
		}

		s.sysLogger.Info("AUDIT", envelope.Type, envelope.Payload)

		if s.natsPub != nil {
			forwarded := events.BaseEvent{
				Type:       envelope.Type,
				Data:       envelope.Payload,
				OccurredAt: envelope.OccurredAt,
			}
			if err := s.natsPub.Publish(ctx, forwarded); err != nil {
				s.sysLogger.Warn("AUDIT", "Failed to forward audit event to NATS", map[string]interface{}{"error": err.Error()})
			}
		}

		msg.Ack()
	}
	return nil
}

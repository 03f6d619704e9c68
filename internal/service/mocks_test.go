package service

import (
	"context"

	"ai-datachat-be/internal/pkg/mailer"
	"ai-datachat-be/pkg/events"
	"ai-datachat-be/pkg/llm"
	"ai-datachat-be/pkg/store"

	"github.com/google/uuid"
)

// stubProvider is a canned llm.Provider for service tests.
type stubProvider struct {
	chatResponse     string
	chatErr          error
	generateResponse string
	generateErr      error
	chatCalls        int
	generateCalls    int
}

func (p *stubProvider) Chat(_ context.Context, _ []llm.Message, _ ...llm.Option) (string, error) {
	p.chatCalls++
	return p.chatResponse, p.chatErr
}

func (p *stubProvider) Generate(_ context.Context, _ string, _ ...llm.Option) (string, error) {
	p.generateCalls++
	return p.generateResponse, p.generateErr
}

// recordingAudit captures audit events synchronously instead of publishing.
type recordingAudit struct {
	events []events.Event
}

func (a *recordingAudit) Record(event events.Event) {
	a.events = append(a.events, event)
}

func (a *recordingAudit) Consume(_ context.Context) error {
	return nil
}

func (a *recordingAudit) types() []string {
	out := make([]string, 0, len(a.events))
	for _, e := range a.events {
		out = append(out, e.EventType())
	}
	return out
}

// stubEmailService simulates the SMTP layer. configErr models missing
// provider configuration; failFor maps recipient addresses to transport
// errors.
type stubEmailService struct {
	configErr error
	failFor   map[string]string
	sent      []string
}

var _ mailer.IEmailService = (*stubEmailService)(nil)

func (s *stubEmailService) Send(req mailer.SendRequest) (store.EmailSendOutcome, error) {
	return s.attempt(req.To)
}

func (s *stubEmailService) SendInvoiceReminder(in mailer.ReminderInput) (store.EmailSendOutcome, error) {
	return s.attempt(in.RecipientEmail)
}

func (s *stubEmailService) attempt(recipient string) (store.EmailSendOutcome, error) {
	if s.configErr != nil {
		return store.EmailSendOutcome{}, s.configErr
	}
	s.sent = append(s.sent, recipient)
	if msg, ok := s.failFor[recipient]; ok {
		return store.EmailSendOutcome{Success: false, Error: msg, Recipient: recipient}, nil
	}
	return store.EmailSendOutcome{Success: true, MessageId: uuid.NewString(), Recipient: recipient}, nil
}

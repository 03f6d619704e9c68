package service

import (
	"context"

	"ai-datachat-be/internal/dto"
	"ai-datachat-be/internal/pkg/mailer"
	"ai-datachat-be/internal/pkg/serverutils"
	"ai-datachat-be/pkg/events"
	"ai-datachat-be/pkg/store"
)

// IReminderService is the bulk delivery subsystem. Transport failures live
// inside the outcomes; a non-nil error always means a client error (missing
// provider configuration) and that nothing was attempted.
type IReminderService interface {
	SendRawEmail(ctx context.Context, params dto.SendEmailParams) (store.EmailSendOutcome, error)
	SendInvoiceReminder(ctx context.Context, recipient dto.ReminderRecipient, provider *mailer.ProviderConfig) (store.EmailSendOutcome, error)
	SendBulkInvoiceReminders(ctx context.Context, recipients []dto.ReminderRecipient, provider *mailer.ProviderConfig) (*store.BulkEmailResult, error)
}

type reminderService struct {
	emailService mailer.IEmailService
	auditSvc     IAuditService
}

func NewReminderService(emailService mailer.IEmailService, auditSvc IAuditService) IReminderService {
	return &reminderService{
		emailService: emailService,
		auditSvc:     auditSvc,
	}
}

func (rs *reminderService) SendRawEmail(_ context.Context, params dto.SendEmailParams) (store.EmailSendOutcome, error) {
	outcome, err := rs.emailService.Send(mailer.SendRequest{
		To:       params.To,
		Subject:  params.Subject,
		Text:     params.Text,
		HTML:     params.HTML,
		Provider: params.Provider,
	})
	if err != nil {
		return store.EmailSendOutcome{}, serverutils.NewClientError("%v", err)
	}

	rs.auditSvc.Record(events.NewEmailOutcome(outcome.Recipient, outcome.MessageId, outcome.Error, outcome.Success))
	return outcome, nil
}

func (rs *reminderService) SendInvoiceReminder(_ context.Context, recipient dto.ReminderRecipient, provider *mailer.ProviderConfig) (store.EmailSendOutcome, error) {
	outcome, err := rs.emailService.SendInvoiceReminder(mailer.ReminderInput{
		RecipientEmail: recipient.Email,
		RecipientName:  recipient.Name,
		InvoiceNumber:  recipient.InvoiceNumber,
		AmountDue:      recipient.AmountDue,
		DueDate:        recipient.DueDate,
		Provider:       provider,
	})
	if err != nil {
		return store.EmailSendOutcome{}, serverutils.NewClientError("%v", err)
	}

	rs.auditSvc.Record(events.NewEmailOutcome(outcome.Recipient, outcome.MessageId, outcome.Error, outcome.Success))
	return outcome, nil
}

// SendBulkInvoiceReminders attempts every recipient independently: one
// failure never aborts the rest, and both lists preserve input order.
func (rs *reminderService) SendBulkInvoiceReminders(ctx context.Context, recipients []dto.ReminderRecipient, provider *mailer.ProviderConfig) (*store.BulkEmailResult, error) {
	if len(recipients) == 0 {
		return nil, serverutils.NewClientError("at least one recipient is required")
	}

	result := &store.BulkEmailResult{
		Succeeded: make([]store.EmailSendOutcome, 0, len(recipients)),
		Failed:    make([]store.EmailSendOutcome, 0),
	}

	for _, recipient := range recipients {
		outcome, err := rs.SendInvoiceReminder(ctx, recipient, provider)
		if err != nil {
			// Provider configuration is shared across the batch; if it cannot
			// resolve for one recipient it cannot resolve for any.
			return nil, err
		}

		if outcome.Success {
			result.Succeeded = append(result.Succeeded, outcome)
		} else {
			result.Failed = append(result.Failed, outcome)
		}
	}

	result.TotalAttempted = len(result.Succeeded) + len(result.Failed)
	result.TotalSucceeded = len(result.Succeeded)
	return result, nil
}

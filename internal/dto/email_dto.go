package dto

import (
	"ai-datachat-be/internal/pkg/mailer"
)

// SendEmailParams is both the sendEmail tool's variant and the body of the
// raw send endpoint.
type SendEmailParams struct {
	To       string                 `json:"to" validate:"required,email"`
	Subject  string                 `json:"subject" validate:"required"`
	Text     string                 `json:"text,omitempty"`
	HTML     string                 `json:"html,omitempty"`
	Provider *mailer.ProviderConfig `json:"provider,omitempty"`
}

// ReminderRecipient is one invoice-reminder target.
type ReminderRecipient struct {
	Email         string `json:"email" validate:"required,email"`
	Name          string `json:"name" validate:"required"`
	InvoiceNumber string `json:"invoice_number" validate:"required"`
	AmountDue     string `json:"amount_due" validate:"required"`
	DueDate       string `json:"due_date" validate:"required"`
}

// SendReminderRequest sends exactly one reminder. Single and bulk are
// separate endpoints on purpose: the request shape, not the payload type,
// discriminates them.
type SendReminderRequest struct {
	ReminderRecipient
	Provider *mailer.ProviderConfig `json:"provider,omitempty"`
}

// SendBulkRemindersRequest sends reminders to many recipients with
// per-recipient fault isolation.
type SendBulkRemindersRequest struct {
	Recipients []ReminderRecipient    `json:"recipients" validate:"required,min=1,dive"`
	Provider   *mailer.ProviderConfig `json:"provider,omitempty"`
}

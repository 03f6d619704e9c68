package service

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"testing"

	"ai-datachat-be/internal/pkg/serverutils"
	"ai-datachat-be/pkg/events"

	"github.com/stretchr/testify/assert"
)

func newToolFixture(provider *stubProvider, email *stubEmailService) (IToolService, *recordingAudit) {
	audit := &recordingAudit{}
	reminders := NewReminderService(email, audit)
	ts := NewToolService(provider, reminders, audit, log.New(io.Discard, "", 0))
	return ts, audit
}

func TestInvokeUnknownTool(t *testing.T) {
	provider := &stubProvider{}
	ts, audit := newToolFixture(provider, &stubEmailService{})

	result, err := ts.Invoke(context.Background(), "dropTables", json.RawMessage(`{}`))

	var clientErr *serverutils.ClientError
	assert.ErrorAs(t, err, &clientErr)
	assert.Nil(t, result)
	assert.Zero(t, provider.generateCalls, "an unknown tool must not reach any provider")
	assert.Zero(t, provider.chatCalls)
	assert.Empty(t, audit.events, "refused dispatches are not audited")
}

func TestInvokeRejectsBadParams(t *testing.T) {
	ts, audit := newToolFixture(&stubProvider{}, &stubEmailService{})

	tests := []struct {
		name   string
		params json.RawMessage
	}{
		{"empty params", nil},
		{"malformed JSON", json.RawMessage(`{"data": `)},
		{"wrong shape", json.RawMessage(`{"data": "not an array"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ts.Invoke(context.Background(), ToolExportData, tt.params)

			var clientErr *serverutils.ClientError
			assert.ErrorAs(t, err, &clientErr)
		})
	}

	// rejected params are still audited as failed dispatches
	assert.Len(t, audit.events, len(tests))
	for _, e := range audit.events {
		assert.Equal(t, events.TypeToolInvoked, e.EventType())
		assert.Equal(t, false, e.Payload()["success"])
	}
}

func TestInvokeExportDataReturnsFile(t *testing.T) {
	ts, audit := newToolFixture(&stubProvider{}, &stubEmailService{})

	params := json.RawMessage(`{"data": [{"vendor": "Acme", "total": 12}], "filename": "vendors"}`)
	result, err := ts.Invoke(context.Background(), ToolExportData, params)

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.NotNil(t, result.File)
	assert.Nil(t, result.Payload, "a file result carries no structured payload")
	assert.Equal(t, "vendors.csv", result.File.Filename)
	assert.Equal(t, "text/csv", result.File.MimeType)
	assert.Equal(t, []string{events.TypeToolInvoked}, audit.types())
}

func TestInvokeExportDataEmptyDataset(t *testing.T) {
	ts, audit := newToolFixture(&stubProvider{}, &stubEmailService{})

	result, err := ts.Invoke(context.Background(), ToolExportData, json.RawMessage(`{"data": []}`))

	assert.NoError(t, err, "a handler failure is data, not a transport error")
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
	assert.Nil(t, result.File)

	assert.Len(t, audit.events, 1)
	assert.Equal(t, false, audit.events[0].Payload()["success"])
}

func TestInvokeGenerateInvoice(t *testing.T) {
	ts, _ := newToolFixture(&stubProvider{}, &stubEmailService{})

	params := json.RawMessage(`{"data": {"number": "INV-9", "vendor": "Acme", "amount_due": 50}}`)
	result, err := ts.Invoke(context.Background(), ToolGenerateInvoice, params)

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.NotNil(t, result.File)
	assert.Nil(t, result.Payload)
	assert.Equal(t, "invoice-INV-9.html", result.File.Filename)
	assert.Equal(t, "text/html", result.File.MimeType)
}

func TestInvokeGenerateReport(t *testing.T) {
	provider := &stubProvider{generateResponse: "# Spending Report\n\nTotals look healthy."}
	ts, _ := newToolFixture(provider, &stubEmailService{})

	params := json.RawMessage(`{"title": "Spending", "data": [{"total": 10}]}`)
	result, err := ts.Invoke(context.Background(), ToolGenerateReport, params)

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Nil(t, result.File)
	assert.Equal(t, "markdown", result.Payload["format"])
	assert.Contains(t, result.Payload["report"], "Spending Report")
}

func TestInvokeGenerateEmail(t *testing.T) {
	provider := &stubProvider{
		generateResponse: `{"subject": "Reminder", "text": "Please pay.", "html": "<p>Please pay.</p>"}`,
	}
	ts, _ := newToolFixture(provider, &stubEmailService{})

	params := json.RawMessage(`{"instruction": "remind Acme"}`)
	result, err := ts.Invoke(context.Background(), ToolGenerateEmail, params)

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Reminder", result.Payload["subject"])
	assert.Equal(t, "Please pay.", result.Payload["text"])
}

func TestInvokeSendEmail(t *testing.T) {
	email := &stubEmailService{}
	ts, audit := newToolFixture(&stubProvider{}, email)

	params := json.RawMessage(`{"to": "ap@acme.test", "subject": "Invoice INV-9", "text": "Please pay."}`)
	result, err := ts.Invoke(context.Background(), ToolSendEmail, params)

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.NotEmpty(t, result.Payload["message_id"])
	assert.Equal(t, "ap@acme.test", result.Payload["recipient"])
	assert.Equal(t, []string{"ap@acme.test"}, email.sent)

	// one delivery event plus the tool dispatch event
	assert.Equal(t, []string{events.TypeEmailDelivered, events.TypeToolInvoked}, audit.types())
}

func TestInvokeSendEmailTransportFailure(t *testing.T) {
	email := &stubEmailService{failFor: map[string]string{"ap@acme.test": "550 mailbox unavailable"}}
	ts, _ := newToolFixture(&stubProvider{}, email)

	params := json.RawMessage(`{"to": "ap@acme.test", "subject": "Invoice INV-9"}`)
	result, err := ts.Invoke(context.Background(), ToolSendEmail, params)

	assert.NoError(t, err, "a transport failure is a tool result, not a request error")
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "550 mailbox unavailable")
}

func TestInvokeSendEmailMissingConfiguration(t *testing.T) {
	email := &stubEmailService{configErr: assert.AnError}
	ts, _ := newToolFixture(&stubProvider{}, email)

	params := json.RawMessage(`{"to": "ap@acme.test", "subject": "Invoice INV-9"}`)
	result, err := ts.Invoke(context.Background(), ToolSendEmail, params)

	var clientErr *serverutils.ClientError
	assert.ErrorAs(t, err, &clientErr)
	assert.Nil(t, result)
}

func TestInvokeSendEmailRequiresRecipientAndSubject(t *testing.T) {
	ts, _ := newToolFixture(&stubProvider{}, &stubEmailService{})

	_, err := ts.Invoke(context.Background(), ToolSendEmail, json.RawMessage(`{"text": "hi"}`))

	var clientErr *serverutils.ClientError
	assert.ErrorAs(t, err, &clientErr)
}

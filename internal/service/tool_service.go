package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"ai-datachat-be/internal/dto"
	"ai-datachat-be/internal/pkg/serverutils"
	"ai-datachat-be/pkg/events"
	"ai-datachat-be/pkg/llm"
	"ai-datachat-be/pkg/store"
	"ai-datachat-be/pkg/tools/draft"
	"ai-datachat-be/pkg/tools/export"
	"ai-datachat-be/pkg/tools/invoice"
	"ai-datachat-be/pkg/tools/report"
)

// Tool names — the registry is closed; anything else is refused without
// touching a handler or provider.
const (
	ToolGenerateReport  = "generateReport"
	ToolGenerateEmail   = "generateEmail"
	ToolGenerateInvoice = "generateInvoice"
	ToolSendEmail       = "sendEmail"
	ToolExportData      = "exportData"
)

// IToolService routes a named tool with raw params to its handler. A non-nil
// error is always a client error (unknown tool, unparseable params, missing
// mail configuration); handler failures come back inside the result.
type IToolService interface {
	Invoke(ctx context.Context, toolName string, params json.RawMessage) (*store.ToolInvocationResult, error)
}

type toolService struct {
	reportGen  *report.Generator
	draftGen   *draft.Generator
	reminders  IReminderService
	auditSvc   IAuditService
	toolLogger *log.Logger
}

func NewToolService(
	llmProvider llm.Provider,
	reminders IReminderService,
	auditSvc IAuditService,
	toolLogger *log.Logger,
) IToolService {
	return &toolService{
		reportGen:  report.NewGenerator(llmProvider, toolLogger),
		draftGen:   draft.NewGenerator(llmProvider, toolLogger),
		reminders:  reminders,
		auditSvc:   auditSvc,
		toolLogger: toolLogger,
	}
}

func (ts *toolService) Invoke(ctx context.Context, toolName string, params json.RawMessage) (*store.ToolInvocationResult, error) {
	var result *store.ToolInvocationResult
	var err error

	switch toolName {
	case ToolGenerateReport:
		result, err = ts.generateReport(ctx, params)
	case ToolGenerateEmail:
		result, err = ts.generateEmail(ctx, params)
	case ToolGenerateInvoice:
		result, err = ts.generateInvoice(params)
	case ToolSendEmail:
		result, err = ts.sendEmail(ctx, params)
	case ToolExportData:
		result, err = ts.exportData(params)
	default:
		// Refused before any handler runs; no audit event either
		return nil, serverutils.NewClientError("unknown tool: %s", toolName)
	}

	if err != nil {
		ts.auditSvc.Record(events.NewToolInvoked(toolName, false, err.Error()))
		return nil, err
	}

	ts.auditSvc.Record(events.NewToolInvoked(toolName, result.Success, result.Error))
	return result, nil
}

func (ts *toolService) generateReport(ctx context.Context, params json.RawMessage) (*store.ToolInvocationResult, error) {
	var p dto.ReportParams
	if err := parseParams(params, &p); err != nil {
		return nil, err
	}

	content, err := ts.reportGen.Generate(ctx, p.Title, p.Data, p.Focus)
	if err != nil {
		return failure(err), nil
	}

	return &store.ToolInvocationResult{
		Success: true,
		Payload: map[string]interface{}{
			"report": content,
			"format": "markdown",
		},
	}, nil
}

func (ts *toolService) generateEmail(ctx context.Context, params json.RawMessage) (*store.ToolInvocationResult, error) {
	var p dto.DraftEmailParams
	if err := parseParams(params, &p); err != nil {
		return nil, err
	}

	d, err := ts.draftGen.Generate(ctx, p.Instruction, p.Data)
	if err != nil {
		return failure(err), nil
	}

	return &store.ToolInvocationResult{
		Success: true,
		Payload: map[string]interface{}{
			"subject": d.Subject,
			"text":    d.Text,
			"html":    d.HTML,
		},
	}, nil
}

func (ts *toolService) generateInvoice(params json.RawMessage) (*store.ToolInvocationResult, error) {
	var p dto.InvoiceParams
	if err := parseParams(params, &p); err != nil {
		return nil, err
	}

	file, err := invoice.Generate(p.Data, p.Context)
	if err != nil {
		return failure(err), nil
	}

	return &store.ToolInvocationResult{
		Success: true,
		File:    file,
	}, nil
}

func (ts *toolService) sendEmail(ctx context.Context, params json.RawMessage) (*store.ToolInvocationResult, error) {
	var p dto.SendEmailParams
	if err := parseParams(params, &p); err != nil {
		return nil, err
	}
	if p.To == "" || p.Subject == "" {
		return nil, serverutils.NewClientError("sendEmail requires 'to' and 'subject'")
	}

	outcome, err := ts.reminders.SendRawEmail(ctx, p)
	if err != nil {
		// Missing provider configuration is a client error, no dial attempted
		return nil, err
	}
	if !outcome.Success {
		return failure(fmt.Errorf("email delivery failed: %s", outcome.Error)), nil
	}

	return &store.ToolInvocationResult{
		Success: true,
		Payload: map[string]interface{}{
			"message_id": outcome.MessageId,
			"recipient":  outcome.Recipient,
		},
	}, nil
}

func (ts *toolService) exportData(params json.RawMessage) (*store.ToolInvocationResult, error) {
	var p dto.ExportParams
	if err := parseParams(params, &p); err != nil {
		return nil, err
	}

	file, err := export.BuildCSV(p.Data, p.Filename)
	if err != nil {
		return failure(err), nil
	}

	return &store.ToolInvocationResult{
		Success: true,
		File:    file,
	}, nil
}

func parseParams(raw json.RawMessage, target interface{}) error {
	if len(raw) == 0 {
		return serverutils.NewClientError("tool params are required")
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return serverutils.NewClientError("invalid tool params: %v", err)
	}
	return nil
}

func failure(err error) *store.ToolInvocationResult {
	return &store.ToolInvocationResult{
		Success: false,
		Error:   err.Error(),
	}
}

package dto

import (
	"encoding/json"

	"ai-datachat-be/pkg/tools/invoice"
)

// InvokeToolRequest routes a named tool with raw params; each handler parses
// the variant it expects, rejecting the rest at its own boundary.
type InvokeToolRequest struct {
	Tool   string          `json:"tool" validate:"required"`
	Params json.RawMessage `json:"params,omitempty"`
}

// ReportParams feeds the generateReport tool.
type ReportParams struct {
	Title string                   `json:"title,omitempty"`
	Focus string                   `json:"focus,omitempty"`
	Data  []map[string]interface{} `json:"data"`
}

// DraftEmailParams feeds the generateEmail tool.
type DraftEmailParams struct {
	Instruction string                   `json:"instruction"`
	Data        []map[string]interface{} `json:"data,omitempty"`
}

// InvoiceParams feeds the generateInvoice tool.
type InvoiceParams struct {
	Data    invoice.Data `json:"data"`
	Context string       `json:"context,omitempty"`
}

// ExportParams feeds the exportData tool. Records stay raw so the export can
// preserve the first record's key order for the header row.
type ExportParams struct {
	Data     []json.RawMessage `json:"data"`
	Filename string            `json:"filename,omitempty"`
}

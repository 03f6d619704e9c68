package invoice

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"ai-datachat-be/pkg/store"
)

// Data is the invoice payload supplied by the caller.
type Data struct {
	Number    string  `json:"number"`
	Vendor    string  `json:"vendor"`
	Customer  string  `json:"customer"`
	IssueDate string  `json:"issue_date"`
	DueDate   string  `json:"due_date"`
	Currency  string  `json:"currency"`
	Items     []Item  `json:"items"`
	AmountDue float64 `json:"amount_due"`
}

// Item is one invoice line.
type Item struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type templateModel struct {
	Data
	Context string
	Total   float64
}

var invoiceTemplate = template.Must(template.New("invoice").Funcs(template.FuncMap{
	"multiply": func(a, b float64) float64 { return a * b },
}).Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Invoice {{.Number}}</title></head>
<body style="font-family: Arial, sans-serif; color: #333; max-width: 720px; margin: 0 auto; padding: 24px;">
	<h1 style="border-bottom: 2px solid #333; padding-bottom: 8px;">Invoice {{.Number}}</h1>
	<table style="width: 100%; margin: 16px 0;">
		<tr>
			<td><strong>From:</strong> {{.Vendor}}</td>
			<td style="text-align: right;"><strong>To:</strong> {{.Customer}}</td>
		</tr>
		<tr>
			<td><strong>Issued:</strong> {{.IssueDate}}</td>
			<td style="text-align: right;"><strong>Due:</strong> {{.DueDate}}</td>
		</tr>
	</table>
	{{if .Items}}
	<table style="width: 100%; border-collapse: collapse; margin: 16px 0;">
		<tr style="background: #f0f0f0;">
			<th style="text-align: left; padding: 8px; border: 1px solid #ccc;">Description</th>
			<th style="text-align: right; padding: 8px; border: 1px solid #ccc;">Qty</th>
			<th style="text-align: right; padding: 8px; border: 1px solid #ccc;">Unit Price</th>
			<th style="text-align: right; padding: 8px; border: 1px solid #ccc;">Amount</th>
		</tr>
		{{range .Items}}
		<tr>
			<td style="padding: 8px; border: 1px solid #ccc;">{{.Description}}</td>
			<td style="text-align: right; padding: 8px; border: 1px solid #ccc;">{{.Quantity}}</td>
			<td style="text-align: right; padding: 8px; border: 1px solid #ccc;">{{printf "%.2f" .UnitPrice}}</td>
			<td style="text-align: right; padding: 8px; border: 1px solid #ccc;">{{printf "%.2f" (multiply .Quantity .UnitPrice)}}</td>
		</tr>
		{{end}}
	</table>
	{{end}}
	<h2 style="text-align: right;">Amount Due: {{.Currency}} {{printf "%.2f" .Total}}</h2>
	{{if .Context}}<p style="color: #666; font-size: 13px;">{{.Context}}</p>{{end}}
</body>
</html>
`))

// Generate renders the invoice document as a downloadable HTML file.
func Generate(data Data, context string) (*store.FileArtifact, error) {
	if data.Number == "" {
		return nil, fmt.Errorf("invoice number is required")
	}
	if data.Currency == "" {
		data.Currency = "USD"
	}

	total := data.AmountDue
	if total == 0 {
		for _, item := range data.Items {
			total += item.Quantity * item.UnitPrice
		}
	}

	var buf bytes.Buffer
	model := templateModel{Data: data, Context: context, Total: total}
	if err := invoiceTemplate.Execute(&buf, model); err != nil {
		return nil, fmt.Errorf("render invoice: %w", err)
	}

	safeNumber := strings.ReplaceAll(data.Number, "/", "-")
	return &store.FileArtifact{
		Filename: fmt.Sprintf("invoice-%s.html", safeNumber),
		MimeType: "text/html",
		Content:  buf.Bytes(),
	}, nil
}

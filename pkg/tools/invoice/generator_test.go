package invoice

import (
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	data := Data{
		Number:    "INV-2026-014",
		Vendor:    "Acme Corp",
		Customer:  "Globex Inc",
		IssueDate: "2026-08-01",
		DueDate:   "2026-08-31",
		Currency:  "EUR",
		Items: []Item{
			{Description: "Consulting", Quantity: 2, UnitPrice: 10},
			{Description: "Support", Quantity: 1.5, UnitPrice: 25},
		},
	}

	file, err := Generate(data, "Net 30 terms apply.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if file.Filename != "invoice-INV-2026-014.html" {
		t.Errorf("filename = %q", file.Filename)
	}
	if file.MimeType != "text/html" {
		t.Errorf("mime type = %q", file.MimeType)
	}

	html := string(file.Content)
	for _, fragment := range []string{
		"INV-2026-014",
		"Acme Corp",
		"Globex Inc",
		"Consulting",
		"EUR 57.50", // 2*10 + 1.5*25, summed because AmountDue is zero
		"Net 30 terms apply.",
	} {
		if !strings.Contains(html, fragment) {
			t.Errorf("rendered invoice is missing %q", fragment)
		}
	}
}

func TestGenerateExplicitAmountWins(t *testing.T) {
	data := Data{
		Number:    "INV-7",
		AmountDue: 99.9,
		Items:     []Item{{Description: "Ignored for total", Quantity: 1, UnitPrice: 1}},
	}

	file, err := Generate(data, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	html := string(file.Content)
	if !strings.Contains(html, "USD 99.90") {
		t.Errorf("expected explicit amount with default currency, got:\n%s", html)
	}
}

func TestGenerateRequiresNumber(t *testing.T) {
	if _, err := Generate(Data{Vendor: "Acme"}, ""); err == nil {
		t.Fatal("expected an error for missing invoice number")
	}
}

func TestGenerateSanitizesFilename(t *testing.T) {
	file, err := Generate(Data{Number: "2026/08/14"}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if file.Filename != "invoice-2026-08-14.html" {
		t.Errorf("filename = %q", file.Filename)
	}
}

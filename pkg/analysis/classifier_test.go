package analysis

import (
	"testing"
)

func TestSuggest(t *testing.T) {
	tests := []struct {
		name    string
		message string
		wantIds []string
	}{
		{
			name:    "overdue maps to email and export",
			message: "which vendors are overdue?",
			wantIds: []string{"draft-reminder-emails", "export-overdue-csv"},
		},
		{
			name:    "matching is case-insensitive",
			message: "Show OVERDUE invoices",
			wantIds: []string{"draft-reminder-emails", "export-overdue-csv"},
		},
		{
			name:    "summary maps to report",
			message: "give me a summary of spending",
			wantIds: []string{"generate-report"},
		},
		{
			name:    "overview maps to report",
			message: "I want an overview",
			wantIds: []string{"generate-report"},
		},
		{
			name:    "pivot maps to grouped export",
			message: "pivot this by month",
			wantIds: []string{"export-grouped-csv"},
		},
		{
			name:    "group maps to grouped export",
			message: "group the totals by vendor",
			wantIds: []string{"export-grouped-csv"},
		},
		{
			name:    "earlier rule wins when several match",
			message: "summary of overdue invoices",
			wantIds: []string{"draft-reminder-emails", "export-overdue-csv"},
		},
		{
			name:    "no keyword yields no suggestions",
			message: "how much did we spend in March?",
			wantIds: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggest(tt.message)

			if len(got) != len(tt.wantIds) {
				t.Fatalf("got %d suggestions, want %d: %+v", len(got), len(tt.wantIds), got)
			}
			for i, want := range tt.wantIds {
				if got[i].Id != want {
					t.Errorf("suggestion[%d].Id = %q, want %q", i, got[i].Id, want)
				}
				if got[i].Label == "" || got[i].Category == "" {
					t.Errorf("suggestion[%d] is missing label or category: %+v", i, got[i])
				}
			}
		})
	}
}

func TestSuggestReturnsCopy(t *testing.T) {
	first := Suggest("overdue")
	first[0].Label = "mutated"

	second := Suggest("overdue")
	if second[0].Label == "mutated" {
		t.Fatal("Suggest must not expose the shared rule table")
	}
}

package analysis

import (
	"strings"

	"ai-datachat-be/pkg/store"
)

// classifierRule maps a keyword predicate to a fixed suggestion set.
// Rules are evaluated top to bottom; first match wins.
type classifierRule struct {
	keywords    []string
	suggestions []store.ToolSuggestion
}

var classifierRules = []classifierRule{
	{
		keywords: []string{"overdue"},
		suggestions: []store.ToolSuggestion{
			{Id: "draft-reminder-emails", Label: "Draft reminder emails", Category: "email"},
			{Id: "export-overdue-csv", Label: "Export overdue vendors to CSV", Category: "export"},
		},
	},
	{
		keywords: []string{"summary", "overview"},
		suggestions: []store.ToolSuggestion{
			{Id: "generate-report", Label: "Generate a report", Category: "report"},
		},
	},
	{
		keywords: []string{"pivot", "group"},
		suggestions: []store.ToolSuggestion{
			{Id: "export-grouped-csv", Label: "Export grouped data to CSV", Category: "export"},
		},
	},
}

// Suggest derives tool suggestions from the user message alone. This is a
// deterministic routing hint, decoupled from the generative path on purpose.
func Suggest(message string) []store.ToolSuggestion {
	lower := strings.ToLower(message)
	for _, rule := range classifierRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				out := make([]store.ToolSuggestion, len(rule.suggestions))
				copy(out, rule.suggestions)
				return out
			}
		}
	}
	return nil
}

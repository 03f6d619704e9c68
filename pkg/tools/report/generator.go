package report

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"ai-datachat-be/pkg/llm"
)

// sampleLimit caps how many records are embedded in the report prompt.
const sampleLimit = 50

// Generator produces narrative reports over supplied dataset records.
type Generator struct {
	provider llm.Provider
	logger   *log.Logger
}

func NewGenerator(provider llm.Provider, logger *log.Logger) *Generator {
	return &Generator{
		provider: provider,
		logger:   logger,
	}
}

// Generate builds a structured narrative report. The provider error is
// returned as-is; the dispatch layer wraps it into a handler failure.
func (g *Generator) Generate(ctx context.Context, title string, records []map[string]interface{}, focus string) (string, error) {
	if len(records) == 0 {
		return "", fmt.Errorf("no data provided for report")
	}

	prompt := g.buildPrompt(title, records, focus)
	content, err := g.provider.Generate(ctx, prompt, llm.WithTemperature(0.3))
	if err != nil {
		g.logger.Printf("[REPORT] generation failed: %v", err)
		return "", fmt.Errorf("report generation failed: %w", err)
	}

	g.logger.Printf("[REPORT] report generated over %d records", len(records))
	return content, nil
}

func (g *Generator) buildPrompt(title string, records []map[string]interface{}, focus string) string {
	var prompt strings.Builder

	prompt.WriteString("<task>\n")
	prompt.WriteString("Write a business report over the dataset below.\n")
	prompt.WriteString("Structure: ## Summary, ## Key Figures, ## Notable Items, ## Recommendations.\n")
	prompt.WriteString("Use ONLY the records provided. Show totals with their currency where present.\n")
	prompt.WriteString("</task>\n\n")

	if title != "" {
		prompt.WriteString(fmt.Sprintf("Report title: %s\n", title))
	}
	if focus != "" {
		prompt.WriteString(fmt.Sprintf("Focus on: %s\n", focus))
	}

	prompt.WriteString("\n<dataset>\n")
	sample := records
	if len(sample) > sampleLimit {
		sample = sample[:sampleLimit]
		prompt.WriteString(fmt.Sprintf("(first %d of %d records)\n", sampleLimit, len(records)))
	}
	for _, rec := range sample {
		if encoded, err := json.Marshal(rec); err == nil {
			prompt.Write(encoded)
			prompt.WriteString("\n")
		}
	}
	prompt.WriteString("</dataset>\n\nReport:")

	return prompt.String()
}

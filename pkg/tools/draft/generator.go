package draft

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"ai-datachat-be/pkg/llm"
)

// Draft is a generated email that has NOT been sent.
type Draft struct {
	Subject string `json:"subject"`
	Text    string `json:"text"`
	HTML    string `json:"html"`
}

// Generator drafts email content from an instruction plus optional context
// records. Sending is a separate tool.
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

func (g *Generator) Generate(ctx context.Context, instruction string, records []map[string]interface{}) (*Draft, error) {
	if strings.TrimSpace(instruction) == "" {
		return nil, fmt.Errorf("email instruction is required")
	}

	prompt := g.buildPrompt(instruction, records)
	response, err := g.provider.Generate(ctx, prompt, llm.WithTemperature(0.4))
	if err != nil {
		g.logger.Printf("[DRAFT] generation failed: %v", err)
		return nil, fmt.Errorf("email drafting failed: %w", err)
	}

	d, err := parseDraft(response)
	if err != nil {
		g.logger.Printf("[DRAFT] parsing failed, using raw text: %v", err)
		// Fall back to the raw response as plain text rather than failing
		return &Draft{Subject: "Draft", Text: response}, nil
	}

	return d, nil
}

func (g *Generator) buildPrompt(instruction string, records []map[string]interface{}) string {
	var prompt strings.Builder

	prompt.WriteString("<task>\n")
	prompt.WriteString("Draft a professional business email. Do NOT send anything.\n")
	prompt.WriteString("Respond with ONLY a JSON object:\n")
	prompt.WriteString(`{"subject": "...", "text": "<plain text body>", "html": "<simple html body>"}` + "\n")
	prompt.WriteString("</task>\n\n")

	prompt.WriteString("<instruction>\n")
	prompt.WriteString(instruction)
	prompt.WriteString("\n</instruction>\n")

	if len(records) > 0 {
		prompt.WriteString("\n<context_records>\n")
		for _, rec := range records {
			if encoded, err := json.Marshal(rec); err == nil {
				prompt.Write(encoded)
				prompt.WriteString("\n")
			}
		}
		prompt.WriteString("</context_records>\n")
	}

	return prompt.String()
}

func parseDraft(response string) (*Draft, error) {
	startIdx := strings.Index(response, "{")
	endIdx := strings.LastIndex(response, "}")
	if startIdx == -1 || endIdx <= startIdx {
		return nil, fmt.Errorf("no JSON found in response")
	}

	var d Draft
	if err := json.Unmarshal([]byte(response[startIdx:endIdx+1]), &d); err != nil {
		return nil, fmt.Errorf("JSON unmarshal failed: %w", err)
	}
	if strings.TrimSpace(d.Subject) == "" && strings.TrimSpace(d.Text) == "" {
		return nil, fmt.Errorf("draft has no subject or body")
	}
	return &d, nil
}

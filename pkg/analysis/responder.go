package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"ai-datachat-be/pkg/llm"
	"ai-datachat-be/pkg/store"
)

// rowSampleLimit caps how many result rows are embedded in the prompt.
const rowSampleLimit = 30

// Responder turns already-computed tabular results into a narrative reply.
type Responder struct {
	provider           llm.Provider
	logger             *log.Logger
	unavailableMessage string
}

func NewResponder(provider llm.Provider, logger *log.Logger, unavailableMessage string) *Responder {
	return &Responder{
		provider:           provider,
		logger:             logger,
		unavailableMessage: unavailableMessage,
	}
}

// Analyze produces a narrative over the supplied rows plus keyword-derived
// tool suggestions. Suggestions never depend on the completion service; a
// provider failure only degrades the narrative to a deterministic message.
func (r *Responder) Analyze(
	ctx context.Context,
	message string,
	rows []map[string]interface{},
	schemas []store.TableSchema,
	history []llm.Message,
) (string, []store.ToolSuggestion) {

	suggestions := Suggest(message)

	prompt := r.buildPrompt(message, rows, schemas)
	fullHistory := append(history, llm.Message{Role: "user", Content: prompt})

	content, err := r.provider.Chat(ctx, fullHistory)
	if err != nil {
		r.logger.Printf("[ANALYSIS] narrative generation failed: %v", err)
		return r.unavailableMessage, suggestions
	}

	r.logger.Printf("[ANALYSIS] narrative generated over %d rows (%d suggestions)", len(rows), len(suggestions))
	return content, suggestions
}

func (r *Responder) buildPrompt(message string, rows []map[string]interface{}, schemas []store.TableSchema) string {
	var prompt strings.Builder

	prompt.WriteString("<computed_results>\n")
	prompt.WriteString(fmt.Sprintf("The query returned %d rows. ", len(rows)))
	sample := rows
	if len(sample) > rowSampleLimit {
		sample = sample[:rowSampleLimit]
		prompt.WriteString(fmt.Sprintf("Showing the first %d:\n", rowSampleLimit))
	} else {
		prompt.WriteString("All rows:\n")
	}
	for _, row := range sample {
		if encoded, err := json.Marshal(row); err == nil {
			prompt.Write(encoded)
			prompt.WriteString("\n")
		}
	}
	prompt.WriteString("</computed_results>\n\n")

	if len(schemas) > 0 {
		prompt.WriteString("<column_types>\n")
		for _, table := range schemas {
			for _, col := range table.Columns {
				prompt.WriteString(fmt.Sprintf("%s: %s\n", col.Name, col.Type))
			}
		}
		prompt.WriteString("</column_types>\n\n")
	}

	prompt.WriteString("<task_instructions>\n")
	prompt.WriteString("You are a data analyst describing query results to the user.\n")
	prompt.WriteString("1. Answer the user's question directly from the rows above.\n")
	prompt.WriteString("2. Call out totals, outliers, and date ranges where relevant.\n")
	prompt.WriteString("3. Treat currency columns as money and format them accordingly.\n")
	prompt.WriteString("4. Keep it to a few short paragraphs. No markdown tables unless comparing.\n")
	prompt.WriteString("5. Use ONLY the rows provided. Do not invent data.\n")
	prompt.WriteString("</task_instructions>\n\n")

	prompt.WriteString("<user_question>\n")
	prompt.WriteString(message)
	prompt.WriteString("\n</user_question>\n\nAnswer:")

	return prompt.String()
}
